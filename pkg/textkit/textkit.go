// Package textkit provides a public API for word counting and readability
// statistics.
//
// This package provides functions to:
//   - Extract normalized words (lowercase ASCII letters and apostrophes)
//   - Count words, distinct words and word frequencies
//   - Rank the most common words
//   - Compute average word length, sentence count, vocabulary richness
//     and a coarse reading difficulty
//   - Convert legacy encodings (CP437, CP850, ISO-8859-1, Windows-1252) to UTF-8
//
// Example usage:
//
//	import "github.com/badele/textkit/pkg/textkit"
//
//	summary := textkit.TextSummary("The quick brown fox. The lazy dog.")
//	fmt.Println(summary.WordCount, summary.ReadingDifficulty)
//
//	n := textkit.CountWords(text, textkit.WithIgnoreShort(3))
package textkit

import (
	"github.com/badele/textkit/internal/importer"
	"github.com/badele/textkit/internal/stats"
	"github.com/badele/textkit/internal/tokenizer"
	"github.com/badele/textkit/internal/types"
)

// Type aliases for public API
type (
	// Token is a normalized word with its position in the word sequence
	Token = types.Token

	// WordCount is one entry of a word ranking
	WordCount = types.WordCount

	// FrequencyTable maps words to their count in first-seen order
	FrequencyTable = types.FrequencyTable

	// TokenStats contains counters about a tokenized text
	TokenStats = types.TokenStats

	// Difficulty is the coarse reading difficulty of a text
	Difficulty = types.Difficulty

	// Summary aggregates every statistic of a text
	Summary = types.Summary

	// Tokenizer is the word tokenizer
	Tokenizer = tokenizer.Tokenizer

	// CountOption filters the words counted by CountWords
	CountOption = tokenizer.CountOption
)

// Difficulty constants
const (
	DifficultyEasy     = types.DifficultyEasy
	DifficultyModerate = types.DifficultyModerate
	DifficultyHard     = types.DifficultyHard
)

// DefaultTopN is the default ranking size of MostCommonWords
const DefaultTopN = tokenizer.DefaultTopN

// ErrUnsupportedEncoding is returned by ConvertToUTF8 for unknown encodings
var ErrUnsupportedEncoding = importer.ErrUnsupportedEncoding

// NewTokenizer creates a word tokenizer for text.
func NewTokenizer(text string) *Tokenizer {
	return tokenizer.NewTokenizer(text)
}

// Normalize lowercases text and returns its words in order.
func Normalize(text string) []string {
	return tokenizer.Normalize(text)
}

// CountWords returns the number of words in text.
func CountWords(text string, opts ...CountOption) int {
	return tokenizer.CountWords(text, opts...)
}

// WithIgnoreShort skips words of n characters or fewer.
func WithIgnoreShort(n int) CountOption {
	return tokenizer.WithIgnoreShort(n)
}

// WithStripPunctuation removes punctuation, apostrophes included, before counting.
func WithStripPunctuation() CountOption {
	return tokenizer.WithStripPunctuation()
}

// WordFrequencies counts each distinct word of text.
func WordFrequencies(text string) *FrequencyTable {
	return tokenizer.WordFrequencies(text)
}

// MostCommonWords returns the n most frequent words, ties in order of first appearance.
func MostCommonWords(text string, n int) []WordCount {
	return tokenizer.MostCommonWords(text, n)
}

// CountUniqueWords returns the number of distinct words in text.
func CountUniqueWords(text string) int {
	return tokenizer.CountUniqueWords(text)
}

// AverageWordLength returns the mean word length, 0 for a text without words.
func AverageWordLength(text string) float64 {
	return stats.AverageWordLength(text)
}

// SentenceCount returns the number of sentences delimited by '.', '!' or '?'.
func SentenceCount(text string) int {
	return stats.SentenceCount(text)
}

// ReadingDifficulty estimates how hard text is to read.
func ReadingDifficulty(text string) Difficulty {
	return stats.ReadingDifficulty(text)
}

// VocabularyRichness returns the ratio of distinct words to words.
func VocabularyRichness(text string) float64 {
	return stats.VocabularyRichness(text)
}

// TextSummary computes every statistic of text.
func TextSummary(text string) Summary {
	return stats.TextSummary(text)
}

// ConvertToUTF8 converts data from a source encoding to UTF-8 text.
// Supported encodings: "utf8", "cp437", "cp850", "iso-8859-1", "windows-1252".
// The UTF-8 BOM (Byte Order Mark) is stripped if present.
func ConvertToUTF8(data []byte, sourceEncoding string) (string, error) {
	return importer.Decode(data, sourceEncoding)
}
