package ai

import (
	"testing"

	"github.com/poiesic/searchit/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, cfg.AnalyzerHost, cfg.GeneratorHost)
	assert.Equal(t, cfg.AnalyzerHost, cfg.EmbeddingHost)
}

func TestNewConfigOptions(t *testing.T) {
	t.Run("with host sets all hosts", func(t *testing.T) {
		cfg := NewConfig(WithHost("http://example.com:9100"))
		require.NoError(t, cfg.Validate())
		assert.Equal(t, "http://example.com:9100/v1", cfg.AnalyzerHost)
		assert.Equal(t, "http://example.com:9100/v1", cfg.GeneratorHost)
		assert.Equal(t, "http://example.com:9100/v1", cfg.EmbeddingHost)
	})

	t.Run("split hosts", func(t *testing.T) {
		cfg := NewConfig(
			WithAnalyzerHost("http://a.local"),
			WithGeneratorHost("http://g.local"),
			WithEmbeddingHost("http://e.local"),
			WithAnalyzerModel("model-a"),
			WithGeneratorModel("model-g"),
			WithEmbeddingModel("model-e"),
			WithToken("secret"),
		)
		require.NoError(t, cfg.Validate())
		assert.Equal(t, "http://a.local/v1", cfg.AnalyzerHost)
		assert.Equal(t, "http://g.local/v1", cfg.GeneratorHost)
		assert.Equal(t, "http://e.local/v1", cfg.EmbeddingHost)
		assert.Equal(t, "model-g", cfg.GeneratorModel)
		assert.Equal(t, "secret", cfg.Token)
	})
}

func TestConfigNormalize(t *testing.T) {
	t.Run("adds v1 suffix", func(t *testing.T) {
		cfg := NewConfig(WithHost("http://localhost:11434"))
		cfg.Normalize()
		assert.Equal(t, "http://localhost:11434/v1", cfg.AnalyzerHost)
	})

	t.Run("trims trailing slash before adding v1", func(t *testing.T) {
		cfg := NewConfig(WithHost("http://localhost:11434/"))
		cfg.Normalize()
		assert.Equal(t, "http://localhost:11434/v1", cfg.AnalyzerHost)
	})

	t.Run("leaves v1 suffix alone", func(t *testing.T) {
		cfg := NewConfig(WithHost("http://localhost:11434/v1"))
		cfg.Normalize()
		assert.Equal(t, "http://localhost:11434/v1", cfg.AnalyzerHost)
	})
}

func TestConfigValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"missing analyzer host", func(c *Config) { c.AnalyzerHost = "" }},
		{"missing generator host", func(c *Config) { c.GeneratorHost = "" }},
		{"missing embedding host", func(c *Config) { c.EmbeddingHost = "" }},
		{"missing analyzer model", func(c *Config) { c.AnalyzerModel = "" }},
		{"missing generator model", func(c *Config) { c.GeneratorModel = "" }},
		{"missing embedding model", func(c *Config) { c.EmbeddingModel = "" }},
		{"missing token", func(c *Config) { c.Token = "" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestFallbackIntent(t *testing.T) {
	t.Run("shape", func(t *testing.T) {
		intent := FallbackIntent("what is AI?")
		assert.Equal(t, []string{
			"what is AI?",
			"what is AI? explanation",
			"what is AI? definition",
		}, intent.SuggestedSearches)
		assert.Equal(t, 5, intent.ComplexityScore)
		assert.False(t, intent.RequiresRealTime)
		assert.Equal(t, "User wants information about: what is AI?", intent.SearchIntent)
	})

	t.Run("always valid", func(t *testing.T) {
		require.NoError(t, core.ValidateQueryIntent(FallbackIntent("")))
		require.NoError(t, core.ValidateQueryIntent(FallbackIntent("what is AI?")))
	})

	t.Run("long query entity truncated", func(t *testing.T) {
		long := ""
		for i := 0; i < 50; i++ {
			long += "wordsover"
		}
		intent := FallbackIntent(long)
		assert.Len(t, []rune(intent.KeyEntities[0]), 200)
	})
}
