package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/lox/pokerhands/internal/config"
	"github.com/lox/pokerhands/internal/fileutil"
	"github.com/lox/pokerhands/internal/match"
	"github.com/lox/pokerhands/internal/report"
)

// TallyCmd reads lines of two hands each and counts the winners
type TallyCmd struct {
	Files   []string `arg:"" optional:"" type:"existingfile" help:"Input files, read in order (default: stdin)"`
	Workers int      `short:"w" help:"Classification workers (default: from config, else one per CPU)"`
	OnError string   `name:"on-error" help:"What to do with a malformed line: stop, skip or fail"`
	Format  string   `short:"f" help:"Output format: text, table or json"`
	Output  string   `short:"o" type:"path" help:"Write the report to a file instead of stdout"`
	NoColor bool     `help:"Disable coloured output"`
}

func (cmd *TallyCmd) Run(g *Globals) error {
	cfg, err := cmd.loadConfig(g.Config)
	if err != nil {
		return err
	}

	logger := setupLogger(cfg.LogLevel(), g.Debug)
	ctx, cancel := setupSignalHandler(logger)
	defer cancel()

	in, closeInputs, err := openInputs(cmd.Files)
	if err != nil {
		return err
	}
	defer closeInputs()

	return runTally(ctx, cfg, logger, in, os.Stdout)
}

// loadConfig reads the config file and applies flag overrides
func (cmd *TallyCmd) loadConfig(path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("loading config %s: %w", path, err)
	}

	if cmd.Workers != 0 {
		cfg.Tally.Workers = cmd.Workers
	}
	if cmd.OnError != "" {
		cfg.Tally.OnParseError = cmd.OnError
	}
	if cmd.Format != "" {
		cfg.Report.Format = cmd.Format
	}
	if cmd.Output != "" {
		cfg.Report.Output = cmd.Output
	}
	if cmd.NoColor {
		color := false
		cfg.Report.Color = &color
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func runTally(ctx context.Context, cfg *config.Config, logger *log.Logger, in io.Reader, stdout io.Writer) error {
	runner := match.NewRunner(
		match.WithWorkers(cfg.Tally.Workers),
		match.WithPolicy(cfg.Policy()),
		match.WithLogger(logger),
	)

	summary, err := runner.Run(ctx, in)
	if err != nil {
		return err
	}
	if err := summary.Tally.Validate(); err != nil {
		return fmt.Errorf("inconsistent tally: %w", err)
	}

	if cfg.Report.Output == "" {
		return writeReport(stdout, cfg, summary, cfg.ColorEnabled())
	}

	if err := fileutil.WriteAtomic(cfg.Report.Output, 0644, func(w io.Writer) error {
		return writeReport(w, cfg, summary, false)
	}); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	logger.Info("report written", "path", cfg.Report.Output, "format", cfg.Report.Format)
	return nil
}

func writeReport(w io.Writer, cfg *config.Config, summary *match.Summary, color bool) error {
	switch cfg.Report.Format {
	case config.FormatJSON:
		data, err := report.MarshalJSON(summary)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	case config.FormatTable:
		return report.NewRenderer(w, color).WriteTable(summary)
	default:
		return report.WriteText(w, summary.Tally)
	}
}

// openInputs returns stdin when no files are named, otherwise the files
// joined in order with a newline between them.
func openInputs(files []string) (io.Reader, func(), error) {
	if len(files) == 0 {
		return os.Stdin, func() {}, nil
	}

	var (
		readers []io.Reader
		opened  []*os.File
	)
	closeAll := func() {
		for _, f := range opened {
			f.Close()
		}
	}

	for _, name := range files {
		f, err := os.Open(filepath.Clean(name))
		if err != nil {
			closeAll()
			return nil, nil, fmt.Errorf("opening input: %w", err)
		}
		opened = append(opened, f)
		readers = append(readers, f, strings.NewReader("\n"))
	}
	return io.MultiReader(readers...), closeAll, nil
}
