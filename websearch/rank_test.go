package websearch

import (
	"strings"
	"testing"

	"github.com/poiesic/searchit/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDedupeByURL(t *testing.T) {
	t.Run("first occurrence wins", func(t *testing.T) {
		items := []core.EvidenceItem{
			{Title: "first", URL: "https://a.example"},
			{Title: "second", URL: "https://b.example"},
			{Title: "dup", URL: "https://a.example"},
		}
		unique := dedupeByURL(items)
		require.Len(t, unique, 2)
		assert.Equal(t, "first", unique[0].Title)
		assert.Equal(t, "second", unique[1].Title)
	})

	t.Run("empty urls all kept", func(t *testing.T) {
		items := []core.EvidenceItem{
			{Title: "one", URL: ""},
			{Title: "two", URL: ""},
		}
		assert.Len(t, dedupeByURL(items), 2)
	})
}

func TestComputeScore(t *testing.T) {
	longContent := make([]byte, 501)
	for i := range longContent {
		longContent[i] = 'x'
	}

	cases := []struct {
		name string
		item core.EvidenceItem
		want float64
	}{
		{
			name: "short content plain domain",
			item: core.EvidenceItem{URL: "https://blog.example", Content: "short", RelevanceScore: 0.4},
			want: 0.4,
		},
		{
			name: "medium content",
			item: core.EvidenceItem{URL: "https://blog.example", Content: string(longContent[:201]), RelevanceScore: 0.4},
			want: 0.9,
		},
		{
			name: "long content",
			item: core.EvidenceItem{URL: "https://blog.example", Content: string(longContent), RelevanceScore: 0.4},
			want: 1.4,
		},
		{
			name: "reputable domain bonus",
			item: core.EvidenceItem{URL: "https://en.Wikipedia.org/wiki/Go", Content: "short", RelevanceScore: 0.4},
			want: 0.55,
		},
		{
			// 250 characters but 750 bytes: only the medium bonus applies.
			name: "multibyte content counted in characters",
			item: core.EvidenceItem{URL: "https://blog.example", Content: strings.Repeat("好", 250), RelevanceScore: 0.4},
			want: 0.9,
		},
		{
			name: "long multibyte content",
			item: core.EvidenceItem{URL: "https://blog.example", Content: strings.Repeat("好", 501), RelevanceScore: 0.4},
			want: 1.4,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, computeScore(tc.item), 1e-9)
		})
	}
}

func TestRankResults(t *testing.T) {
	t.Run("descending by computed score", func(t *testing.T) {
		items := []core.EvidenceItem{
			{Title: "low", URL: "https://a.example", RelevanceScore: 0.1},
			{Title: "high", URL: "https://b.example", RelevanceScore: 0.9},
		}
		ranked := rankResults(items)
		assert.Equal(t, "high", ranked[0].Title)
		assert.Equal(t, "low", ranked[1].Title)
	})

	t.Run("stable on ties", func(t *testing.T) {
		items := []core.EvidenceItem{
			{Title: "first", URL: "https://a.example", RelevanceScore: 0.5},
			{Title: "second", URL: "https://b.example", RelevanceScore: 0.5},
			{Title: "third", URL: "https://c.example", RelevanceScore: 0.5},
		}
		ranked := rankResults(items)
		assert.Equal(t, "first", ranked[0].Title)
		assert.Equal(t, "second", ranked[1].Title)
		assert.Equal(t, "third", ranked[2].Title)
	})

	t.Run("score attached to every item", func(t *testing.T) {
		items := []core.EvidenceItem{
			{URL: "https://a.example", RelevanceScore: 0.1},
			{URL: "https://b.example", RelevanceScore: 0.9},
		}
		for _, item := range rankResults(items) {
			require.NotNil(t, item.ComputedScore)
		}
	})
}
