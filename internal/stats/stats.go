// Package stats derives readability metrics from the words found by the
// tokenizer package.
package stats

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/badele/textkit/internal/tokenizer"
	"github.com/badele/textkit/internal/types"
)

// Reading difficulty thresholds.
const (
	easyMaxWordLength       = 4
	easyMaxWordsPerSentence = 12
	hardMinWordLength       = 6
	hardMinWordsPerSentence = 20
)

// SummaryTopN is the number of ranked words kept in a Summary.
const SummaryTopN = 3

var sentenceTerminators = regexp.MustCompile(`[.!?]+`)

// AverageWordLength returns the mean length of the words of text, 0 when
// there are none.
func AverageWordLength(text string) float64 {
	words := tokenizer.Normalize(text)
	if len(words) == 0 {
		return 0.0
	}

	total := 0
	for _, w := range words {
		total += len(w)
	}
	return float64(total) / float64(len(words))
}

// SentenceCount counts the non-blank segments between runs of '.', '!' and '?'.
func SentenceCount(text string) int {
	count := 0
	for _, segment := range sentenceTerminators.Split(text, -1) {
		if strings.TrimSpace(segment) != "" {
			count++
		}
	}
	return count
}

// ReadingDifficulty classifies text from its average word length and its
// number of words per sentence. The easy range is checked before the hard one.
func ReadingDifficulty(text string) types.Difficulty {
	sentences := SentenceCount(text)
	if sentences == 0 {
		return types.DifficultyEasy
	}

	avgLen := AverageWordLength(text)
	wordsPerSentence := float64(tokenizer.CountWords(text)) / float64(sentences)

	return classify(avgLen, wordsPerSentence)
}

func classify(avgLen, wordsPerSentence float64) types.Difficulty {
	switch {
	case avgLen <= easyMaxWordLength && wordsPerSentence <= easyMaxWordsPerSentence:
		return types.DifficultyEasy
	case avgLen >= hardMinWordLength || wordsPerSentence >= hardMinWordsPerSentence:
		return types.DifficultyHard
	default:
		return types.DifficultyModerate
	}
}

// VocabularyRichness returns the ratio of distinct words to words, in [0, 1].
func VocabularyRichness(text string) float64 {
	total := tokenizer.CountWords(text)
	if total == 0 {
		return 0.0
	}
	return float64(tokenizer.CountUniqueWords(text)) / float64(total)
}

// TextSummary computes every statistic of text at once.
func TextSummary(text string) types.Summary {
	return types.Summary{
		WordCount:          tokenizer.CountWords(text),
		SentenceCount:      SentenceCount(text),
		AverageWordLength:  Round2(AverageWordLength(text)),
		ReadingDifficulty:  ReadingDifficulty(text),
		VocabularyRichness: Round2(VocabularyRichness(text)),
		WordFrequencies:    tokenizer.WordFrequencies(text),
		TopWords:           tokenizer.MostCommonWords(text, SummaryTopN),
	}
}

// Round2 rounds the exact binary value of x to 2 decimals, exact ties to even.
func Round2(x float64) float64 {
	v, _ := strconv.ParseFloat(strconv.FormatFloat(x, 'f', 2, 64), 64)
	return v
}
