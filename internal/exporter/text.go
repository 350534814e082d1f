package exporter

import (
	"fmt"
	"io"

	"github.com/badele/textkit/internal/types"
)

// WriteSummaryText writes a human readable report of summary.
func WriteSummaryText(w io.Writer, source string, summary types.Summary, stats types.TokenStats) error {
	ew := &errWriter{w: w}

	ew.printf("=== Text Summary: %s ===\n\n", source)
	ew.printf("  %-22s: %d bytes\n", "Input size", stats.InputSize)
	ew.printf("  %-22s: %d\n", "Words", summary.WordCount)
	ew.printf("  %-22s: %d\n", "Unique words", stats.UniqueTokens)
	ew.printf("  %-22s: %d\n", "Sentences", summary.SentenceCount)
	ew.printf("  %-22s: %.2f\n", "Average word length", summary.AverageWordLength)
	ew.printf("  %-22s: %.2f\n", "Vocabulary richness", summary.VocabularyRichness)
	ew.printf("  %-22s: %s\n", "Reading difficulty", summary.ReadingDifficulty)
	if stats.LongestToken != "" {
		ew.printf("  %-22s: %s\n", "Longest word", stats.LongestToken)
	}

	if len(summary.TopWords) > 0 {
		ew.printf("\n--- Top Words\n")
		for _, wc := range summary.TopWords {
			ew.printf("  %-30s: %5d\n", wc.Word, wc.Count)
		}
	}

	return ew.err
}

// WriteWordCountsText writes one "word: count" line per entry.
func WriteWordCountsText(w io.Writer, words []types.WordCount) error {
	ew := &errWriter{w: w}
	for _, wc := range words {
		ew.printf("%-30s: %5d\n", wc.Word, wc.Count)
	}
	return ew.err
}

// errWriter keeps the first write error and skips the writes after it.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...any) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}
