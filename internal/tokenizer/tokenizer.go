// Package tokenizer extracts normalized words from text and counts them.
//
// A word is a maximal run of ASCII letters and apostrophes taken from the
// lowercased text, so contractions such as "it's" stay a single word.
// Every count in this module, and in the statistics built on top of it, goes
// through Normalize.
package tokenizer

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/badele/textkit/internal/types"
)

var wordPattern = regexp.MustCompile(`[a-zA-Z']+`)

// Normalize lowercases text and returns its words in order.
func Normalize(text string) []string {
	if text == "" {
		return nil
	}
	// A Caser keeps state between calls, so each call gets its own.
	lower := cases.Lower(language.Und).String(text)
	return wordPattern.FindAllString(lower, -1)
}

// stripPunctuation drops every rune that is neither alphanumeric nor space.
func stripPunctuation(text string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			return r
		}
		return -1
	}, text)
}

/////////////////////////////////////////////////////////////////////////////
// TOKENIZER
/////////////////////////////////////////////////////////////////////////////

type Tokenizer struct {
	input string
}

func NewTokenizer(text string) *Tokenizer {
	return &Tokenizer{input: text}
}

// Tokenize returns the words of the input with their ordinal position.
func (t *Tokenizer) Tokenize() []types.Token {
	words := Normalize(t.input)
	tokens := make([]types.Token, len(words))
	for i, w := range words {
		tokens[i] = types.Token{Value: w, Pos: i}
	}
	return tokens
}

// Frequencies returns the word counts of the input in first-seen order.
func (t *Tokenizer) Frequencies() *types.FrequencyTable {
	return types.NewFrequencyTable(Normalize(t.input))
}

func (t *Tokenizer) GetStats() types.TokenStats {
	stats := types.TokenStats{
		InputSize:      len(t.input),
		TokensByLength: make(map[int]int),
	}

	tokens := t.Tokenize()
	seen := make(map[string]struct{}, len(tokens))
	for _, tok := range tokens {
		stats.TotalTokens++
		stats.TotalTextLength += tok.Len()
		stats.TokensByLength[tok.Len()]++
		if tok.Len() > len(stats.LongestToken) {
			stats.LongestToken = tok.Value
		}
		seen[tok.Value] = struct{}{}
	}
	stats.UniqueTokens = len(seen)

	return stats
}
