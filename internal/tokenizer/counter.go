package tokenizer

import (
	"sort"

	"github.com/badele/textkit/internal/types"
)

// DefaultTopN is the ranking size used when the caller has no preference.
const DefaultTopN = 5

type countOptions struct {
	ignoreShort      int
	stripPunctuation bool
}

// CountOption filters the words counted by CountWords.
type CountOption func(*countOptions)

// WithIgnoreShort skips words of n characters or fewer. n <= 0 keeps every word.
func WithIgnoreShort(n int) CountOption {
	return func(o *countOptions) {
		o.ignoreShort = n
	}
}

// WithStripPunctuation removes punctuation from the text before it is split
// into words. Apostrophes are punctuation here, so "it's" is counted as "its".
func WithStripPunctuation() CountOption {
	return func(o *countOptions) {
		o.stripPunctuation = true
	}
}

// CountWords returns the number of words in text. Without options it equals
// len(Normalize(text)).
func CountWords(text string, opts ...CountOption) int {
	var o countOptions
	for _, opt := range opts {
		opt(&o)
	}

	if o.stripPunctuation {
		text = stripPunctuation(text)
	}

	words := Normalize(text)
	if o.ignoreShort <= 0 {
		return len(words)
	}

	count := 0
	for _, w := range words {
		if len(w) > o.ignoreShort {
			count++
		}
	}
	return count
}

// WordFrequencies counts each distinct word of text.
func WordFrequencies(text string) *types.FrequencyTable {
	return types.NewFrequencyTable(Normalize(text))
}

// MostCommonWords returns at most n words by descending count. Words with the
// same count keep the order of their first appearance.
func MostCommonWords(text string, n int) []types.WordCount {
	if n <= 0 {
		return []types.WordCount{}
	}

	entries := WordFrequencies(text).Entries()
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})

	if len(entries) > n {
		entries = entries[:n]
	}
	return entries
}

// CountUniqueWords returns the number of distinct words in text.
func CountUniqueWords(text string) int {
	return WordFrequencies(text).Len()
}
