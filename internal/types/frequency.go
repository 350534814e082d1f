package types

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

/////////////////////////////////////////////////////////////////////////////
// FREQUENCY TABLE
/////////////////////////////////////////////////////////////////////////////

// FrequencyTable maps each distinct token to its number of occurrences.
// Iteration follows the order in which tokens were first seen.
type FrequencyTable struct {
	counts *orderedmap.OrderedMap[string, int]
}

// NewFrequencyTable counts the given token values.
func NewFrequencyTable(words []string) *FrequencyTable {
	counts := orderedmap.New[string, int]()
	for _, w := range words {
		n, _ := counts.Get(w)
		counts.Set(w, n+1)
	}
	return &FrequencyTable{counts: counts}
}

// Get returns the count of word, 0 when absent.
func (f *FrequencyTable) Get(word string) int {
	if f == nil || f.counts == nil {
		return 0
	}
	n, _ := f.counts.Get(word)
	return n
}

// Len returns the number of distinct words.
func (f *FrequencyTable) Len() int {
	if f == nil || f.counts == nil {
		return 0
	}
	return f.counts.Len()
}

// Entries returns the table in first-seen order.
func (f *FrequencyTable) Entries() []WordCount {
	entries := make([]WordCount, 0, f.Len())
	if f.Len() == 0 {
		return entries
	}
	for pair := f.counts.Oldest(); pair != nil; pair = pair.Next() {
		entries = append(entries, WordCount{Word: pair.Key, Count: pair.Value})
	}
	return entries
}

// Map returns a plain map copy of the table.
func (f *FrequencyTable) Map() map[string]int {
	m := make(map[string]int, f.Len())
	for _, e := range f.Entries() {
		m[e.Word] = e.Count
	}
	return m
}

func (f *FrequencyTable) MarshalJSON() ([]byte, error) {
	if f.Len() == 0 {
		return []byte("{}"), nil
	}
	return f.counts.MarshalJSON()
}

func (f *FrequencyTable) UnmarshalJSON(data []byte) error {
	counts := orderedmap.New[string, int]()
	if err := counts.UnmarshalJSON(data); err != nil {
		return err
	}
	f.counts = counts
	return nil
}
