package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWordFrequency(t *testing.T) {
	counts := WordFrequency("Go scrapers scrape; go scrapers persist.")

	assert.Equal(t, 2, counts["go"])
	assert.Equal(t, 2, counts["scrapers"])
	assert.Equal(t, 1, counts["scrape"])
	assert.Equal(t, 1, counts["persist"])
}

func TestWordFrequency_SkipsStopwords(t *testing.T) {
	counts := WordFrequency("the quick fox and the lazy dog")

	assert.NotContains(t, counts, "the")
	assert.NotContains(t, counts, "and")
	assert.Equal(t, 1, counts["quick"])
	assert.Equal(t, 1, counts["fox"])
}

func TestWordFrequency_TrimsPunctuation(t *testing.T) {
	counts := WordFrequency(`"hello," (world)!`)

	assert.Equal(t, 1, counts["hello"])
	assert.Equal(t, 1, counts["world"])
}

func TestWordFrequency_Empty(t *testing.T) {
	assert.Empty(t, WordFrequency(""))
	assert.Empty(t, WordFrequency("   \n  "))
}

func TestIsStopword(t *testing.T) {
	assert.True(t, IsStopword("the"))
	assert.True(t, IsStopword("The"))
	assert.False(t, IsStopword("scraper"))
}

func TestMerge(t *testing.T) {
	merged := Merge([]map[string]int{
		{"go": 2, "web": 1},
		{"go": 3, "data": 4},
	})

	assert.Equal(t, 5, merged["go"])
	assert.Equal(t, 1, merged["web"])
	assert.Equal(t, 4, merged["data"])
}

func TestTopKeywords(t *testing.T) {
	counts := map[string]int{"alpha": 3, "beta": 5, "gamma": 1, "delta": 3}

	top := TopKeywords(counts, 3)

	assert.Equal(t, []Keyword{
		{Word: "beta", Count: 5},
		{Word: "alpha", Count: 3},
		{Word: "delta", Count: 3},
	}, top)
}

func TestTopKeywords_FewerThanN(t *testing.T) {
	top := TopKeywords(map[string]int{"solo": 1}, 10)
	assert.Len(t, top, 1)
}
