// Package mock provides test doubles for the ai interfaces.
//
// The mocks default to deterministic behavior (fallback intents, canned
// answers, hash-derived embedding vectors) so tests are reproducible without
// any external service. Custom behavior is injected through the exported
// function fields, and CallCount/Reset support assertion and reuse.
package mock
