// Package analytics computes word-frequency statistics over scraped page
// content for the reporting layer.
package analytics

import (
	"sort"
	"strings"
)

// stopwords are high-frequency words excluded from frequency analysis,
// plus common web chrome noise.
var stopwords = map[string]struct{}{
	"a": {}, "about": {}, "after": {}, "again": {}, "all": {}, "also": {},
	"an": {}, "and": {}, "any": {}, "are": {}, "as": {}, "at": {},
	"be": {}, "because": {}, "been": {}, "before": {}, "being": {},
	"between": {}, "both": {}, "but": {}, "by": {},
	"can": {}, "could": {},
	"did": {}, "do": {}, "does": {}, "doing": {}, "down": {}, "during": {},
	"each": {}, "few": {}, "for": {}, "from": {}, "further": {},
	"had": {}, "has": {}, "have": {}, "having": {}, "he": {}, "her": {},
	"here": {}, "hers": {}, "him": {}, "his": {}, "how": {},
	"i": {}, "if": {}, "in": {}, "into": {}, "is": {}, "it": {}, "its": {},
	"just": {},
	"me": {}, "more": {}, "most": {}, "my": {},
	"no": {}, "nor": {}, "not": {}, "now": {},
	"of": {}, "off": {}, "on": {}, "once": {}, "only": {}, "or": {},
	"other": {}, "our": {}, "out": {}, "over": {}, "own": {},
	"same": {}, "she": {}, "should": {}, "so": {}, "some": {}, "such": {},
	"than": {}, "that": {}, "the": {}, "their": {}, "them": {}, "then": {},
	"there": {}, "these": {}, "they": {}, "this": {}, "those": {},
	"through": {}, "to": {}, "too": {},
	"under": {}, "until": {}, "up": {}, "us": {},
	"very": {}, "via": {},
	"was": {}, "we": {}, "were": {}, "what": {}, "when": {}, "where": {},
	"which": {}, "while": {}, "who": {}, "why": {}, "will": {}, "with": {},
	"would": {},
	"you": {}, "your": {},

	// Common web/UI noise words
	"click": {}, "menu": {}, "home": {}, "page": {}, "pages": {},
	"site": {}, "search": {}, "loading": {},
}

// IsStopword checks if a word is filtered out of frequency analysis.
func IsStopword(word string) bool {
	_, exists := stopwords[strings.ToLower(word)]
	return exists
}

// WordFrequency counts word occurrences in text. Input is lowercased, words
// are trimmed to letters and digits, and stopwords are skipped.
func WordFrequency(text string) map[string]int {
	frequencies := make(map[string]int)

	for _, word := range strings.Fields(strings.ToLower(text)) {
		word = strings.TrimFunc(word, func(r rune) bool {
			return ('a' > r || r > 'z') && ('0' > r || r > '9')
		})

		if _, skip := stopwords[word]; skip || word == "" {
			continue
		}
		frequencies[word]++
	}

	return frequencies
}

// Merge aggregates per-page frequency maps into one.
func Merge(maps []map[string]int) map[string]int {
	merged := make(map[string]int)
	for _, counts := range maps {
		for word, count := range counts {
			merged[word] += count
		}
	}
	return merged
}

// Keyword is a word with its aggregate count.
type Keyword struct {
	Word  string
	Count int
}

// TopKeywords returns the n most frequent keywords, most frequent first.
// Ties break alphabetically so output is deterministic.
func TopKeywords(counts map[string]int, n int) []Keyword {
	keywords := make([]Keyword, 0, len(counts))
	for word, count := range counts {
		keywords = append(keywords, Keyword{Word: word, Count: count})
	}

	sort.Slice(keywords, func(i, j int) bool {
		if keywords[i].Count != keywords[j].Count {
			return keywords[i].Count > keywords[j].Count
		}
		return keywords[i].Word < keywords[j].Word
	})

	if n < len(keywords) {
		keywords = keywords[:n]
	}
	return keywords
}
