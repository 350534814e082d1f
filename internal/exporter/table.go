package exporter

import (
	"io"

	"github.com/badele/textkit/internal/types"
)

const tableWordWidth = 30

// WriteTopWordsTable draws the ranking as a box table.
func WriteTopWordsTable(w io.Writer, words []types.WordCount) error {
	ew := &errWriter{w: w}

	ew.printf("┌──────┬────────────────────────────────┬─────────┐\n")
	ew.printf("│ %-4s │ %-30s │ %7s │\n", "Rank", "Word", "Count")
	ew.printf("├──────┼────────────────────────────────┼─────────┤\n")

	for i, wc := range words {
		ew.printf("│ %4d │ %-30s │ %7d │\n", i+1, truncate(wc.Word, tableWordWidth), wc.Count)
	}

	ew.printf("└──────┴────────────────────────────────┴─────────┘\n")

	return ew.err
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
