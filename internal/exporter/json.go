package exporter

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/badele/textkit/internal/types"
)

type SummaryJSONOutput struct {
	Source  string           `json:"source"`
	Summary types.Summary    `json:"summary"`
	Stats   types.TokenStats `json:"stats"`
}

func WriteSummaryJSON(w io.Writer, source string, summary types.Summary, stats types.TokenStats) error {
	return writeJSON(w, SummaryJSONOutput{
		Source:  source,
		Summary: summary,
		Stats:   stats,
	})
}

// WriteFrequenciesJSON writes table as a JSON object in first-seen order.
func WriteFrequenciesJSON(w io.Writer, table *types.FrequencyTable) error {
	if table == nil {
		table = types.NewFrequencyTable(nil)
	}
	return writeJSON(w, table)
}

func WriteTopWordsJSON(w io.Writer, words []types.WordCount) error {
	if words == nil {
		words = []types.WordCount{}
	}
	return writeJSON(w, words)
}

// WriteMetricJSON writes a single named value as a JSON object.
func WriteMetricJSON(w io.Writer, name string, value any) error {
	return writeJSON(w, map[string]any{name: value})
}

func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("JSON serialization error: %w", err)
	}
	data = append(data, '\n')

	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("JSON write error: %w", err)
	}
	return nil
}
