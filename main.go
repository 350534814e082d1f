package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/badele/textkit/internal/config"
	"github.com/badele/textkit/internal/importer"
)

var version = "dev"

type Globals struct {
	Config   string `help:"YAML configuration file." env:"TEXTKIT_CONFIG" placeholder:"FILE"`
	LogLevel string `help:"Log level: debug, info, warn or error." placeholder:"LEVEL"`
	Encoding string `short:"e" help:"Input encoding: ${encodings}." placeholder:"ENC"`
	Format   string `short:"f" help:"Output format: text, json or table." placeholder:"FORMAT"`

	Version kong.VersionFlag `help:"Show version and exit."`
}

// resolve merges the configuration file with the flags given on the command line.
func (g *Globals) resolve() (config.Config, error) {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return cfg, err
	}

	if g.LogLevel != "" {
		cfg.LogLevel = strings.ToLower(g.LogLevel)
	}
	if g.Encoding != "" {
		cfg.Encoding = strings.ToLower(g.Encoding)
	}
	if g.Format != "" {
		cfg.Format = strings.ToLower(g.Format)
	}
	return cfg, cfg.Validate()
}

type CLI struct {
	Globals

	Summary    SummaryCmd    `cmd:"" default:"withargs" help:"Show every statistic of the text (default)."`
	Count      CountCmd      `cmd:"" help:"Count words."`
	Freq       FreqCmd       `cmd:"" help:"Show the count of every word in order of first appearance."`
	Top        TopCmd        `cmd:"" help:"Show the most common words."`
	Sentences  SentencesCmd  `cmd:"" help:"Count sentences."`
	Difficulty DifficultyCmd `cmd:"" help:"Estimate reading difficulty (easy, moderate, hard)."`
	Chart      ChartCmd      `cmd:"" help:"Draw a bar chart of the most common words."`
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name("textkit"),
		kong.Description("Word counts and readability statistics for plain text.\n\nReads FILE, or stdin when FILE is omitted or '-'."),
		kong.Writers(stdout, stderr),
		kong.UsageOnError(),
		kong.Vars{
			"version":   version,
			"encodings": strings.Join(importer.Encodings(), ", "),
		},
	)
	if err != nil {
		return err
	}

	ctx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	cfg, err := cli.Globals.resolve()
	if err != nil {
		return err
	}

	logger := newLogger(stderr, cfg.LogLevel)
	logger.Debug("configuration resolved",
		"config", cli.Config,
		"command", ctx.Command(),
		"encoding", cfg.Encoding,
		"format", cfg.Format,
	)

	return ctx.Run(&runContext{
		cfg:    cfg,
		logger: logger,
		stdin:  stdin,
		stdout: stdout,
	})
}

func main() {
	var stdin io.Reader = os.Stdin
	// Without a pipe there is nothing to read
	if importer.IsInteractive(os.Stdin) {
		stdin = nil
	}

	if err := run(os.Args[1:], stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "textkit: error: %v\n", err)
		os.Exit(1)
	}
}
