package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/badele/textkit/internal/config"
	"github.com/badele/textkit/internal/exporter"
	"github.com/badele/textkit/internal/importer"
	"github.com/badele/textkit/internal/stats"
	"github.com/badele/textkit/internal/tokenizer"
)

var ErrUnsupportedFormat = errors.New("unsupported output format")

type runContext struct {
	cfg    config.Config
	logger *slog.Logger
	stdin  io.Reader
	stdout io.Writer
}

// requireFormat fails unless the configured format is one of allowed.
func (rc *runContext) requireFormat(command string, allowed ...string) error {
	for _, f := range allowed {
		if rc.cfg.Format == f {
			return nil
		}
	}
	return fmt.Errorf("%w: %s does not support %q (use %v)", ErrUnsupportedFormat, command, rc.cfg.Format, allowed)
}

func (rc *runContext) writeMetric(name string, value any) error {
	if rc.cfg.Format == config.FormatJSON {
		return exporter.WriteMetricJSON(rc.stdout, name, value)
	}
	_, err := fmt.Fprintln(rc.stdout, value)
	return err
}

type Input struct {
	File string `arg:"" optional:"" help:"Input file, stdin when omitted or '-'." placeholder:"FILE"`
}

// load reads and decodes the input, returning the text and a display name.
func (in Input) load(rc *runContext) (string, string, error) {
	data, name, err := importer.ReadInput(in.File, rc.stdin)
	if err != nil {
		return "", "", err
	}

	text, err := importer.Decode(data, rc.cfg.Encoding)
	if err != nil {
		return "", "", err
	}

	rc.logger.Debug("input loaded", "source", name, "bytes", len(data), "encoding", rc.cfg.Encoding)
	return text, name, nil
}

/////////////////////////////////////////////////////////////////////////////
// COMMANDS
/////////////////////////////////////////////////////////////////////////////

type SummaryCmd struct {
	Input
}

func (c *SummaryCmd) Run(rc *runContext) error {
	if err := rc.requireFormat("summary", config.FormatText, config.FormatJSON); err != nil {
		return err
	}

	text, name, err := c.load(rc)
	if err != nil {
		return err
	}

	summary := stats.TextSummary(text)
	tokStats := tokenizer.NewTokenizer(text).GetStats()
	rc.logger.Debug("summary computed", "words", summary.WordCount, "sentences", summary.SentenceCount)

	if rc.cfg.Format == config.FormatJSON {
		return exporter.WriteSummaryJSON(rc.stdout, name, summary, tokStats)
	}
	return exporter.WriteSummaryText(rc.stdout, name, summary, tokStats)
}

type CountCmd struct {
	Input

	IgnoreShort      int  `help:"Skip words of N characters or fewer (config value when negative)." default:"-1" placeholder:"N"`
	StripPunctuation bool `help:"Remove punctuation, apostrophes included, before counting."`
	Unique           bool `short:"u" help:"Count distinct words instead."`
}

func (c *CountCmd) Run(rc *runContext) error {
	if err := rc.requireFormat("count", config.FormatText, config.FormatJSON); err != nil {
		return err
	}

	text, _, err := c.load(rc)
	if err != nil {
		return err
	}

	if c.Unique {
		return rc.writeMetric("unique_words", tokenizer.CountUniqueWords(text))
	}

	ignoreShort := rc.cfg.IgnoreShort
	if c.IgnoreShort >= 0 {
		ignoreShort = c.IgnoreShort
	}
	opts := []tokenizer.CountOption{tokenizer.WithIgnoreShort(ignoreShort)}
	if c.StripPunctuation || rc.cfg.StripPunctuation {
		opts = append(opts, tokenizer.WithStripPunctuation())
	}

	return rc.writeMetric("word_count", tokenizer.CountWords(text, opts...))
}

type FreqCmd struct {
	Input
}

func (c *FreqCmd) Run(rc *runContext) error {
	if err := rc.requireFormat("freq", config.FormatText, config.FormatJSON); err != nil {
		return err
	}

	text, _, err := c.load(rc)
	if err != nil {
		return err
	}

	freqs := tokenizer.WordFrequencies(text)
	if rc.cfg.Format == config.FormatJSON {
		return exporter.WriteFrequenciesJSON(rc.stdout, freqs)
	}
	return exporter.WriteWordCountsText(rc.stdout, freqs.Entries())
}

type TopCmd struct {
	Input

	N int `short:"n" help:"Number of words (config value when negative)." default:"-1"`
}

func (c *TopCmd) Run(rc *runContext) error {
	text, _, err := c.load(rc)
	if err != nil {
		return err
	}

	n := rc.cfg.Top
	if c.N >= 0 {
		n = c.N
	}
	words := tokenizer.MostCommonWords(text, n)

	switch rc.cfg.Format {
	case config.FormatJSON:
		return exporter.WriteTopWordsJSON(rc.stdout, words)
	case config.FormatTable:
		return exporter.WriteTopWordsTable(rc.stdout, words)
	default:
		return exporter.WriteWordCountsText(rc.stdout, words)
	}
}

type SentencesCmd struct {
	Input
}

func (c *SentencesCmd) Run(rc *runContext) error {
	if err := rc.requireFormat("sentences", config.FormatText, config.FormatJSON); err != nil {
		return err
	}

	text, _, err := c.load(rc)
	if err != nil {
		return err
	}
	return rc.writeMetric("sentence_count", stats.SentenceCount(text))
}

type DifficultyCmd struct {
	Input
}

func (c *DifficultyCmd) Run(rc *runContext) error {
	if err := rc.requireFormat("difficulty", config.FormatText, config.FormatJSON); err != nil {
		return err
	}

	text, _, err := c.load(rc)
	if err != nil {
		return err
	}
	return rc.writeMetric("reading_difficulty", stats.ReadingDifficulty(text))
}

type ChartCmd struct {
	Input

	N      int `short:"n" help:"Number of words (config value when negative)." default:"-1"`
	Width  int `help:"Chart width in columns (config value when zero)." default:"0"`
	Height int `help:"Maximum number of bars (config value when zero)." default:"0"`
}

func (c *ChartCmd) Run(rc *runContext) error {
	if err := rc.requireFormat("chart", config.FormatText); err != nil {
		return err
	}

	text, _, err := c.load(rc)
	if err != nil {
		return err
	}

	n, width, height := rc.cfg.Top, rc.cfg.Chart.Width, rc.cfg.Chart.Height
	if c.N >= 0 {
		n = c.N
	}
	if c.Width > 0 {
		width = c.Width
	}
	if c.Height > 0 {
		height = c.Height
	}

	chart, err := exporter.RenderBarChart(tokenizer.MostCommonWords(text, n), width, height)
	if err != nil {
		return err
	}
	if chart == "" {
		return nil
	}
	_, err = fmt.Fprintln(rc.stdout, chart)
	return err
}
