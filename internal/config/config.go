package config

import (
	"fmt"
	"os"
	"runtime"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/pokerhands/internal/match"
)

// DefaultFile is the configuration file looked up when none is given
const DefaultFile = "pokerhands.hcl"

// Config represents the complete tool configuration
type Config struct {
	Tally  *TallySettings  `hcl:"tally,block"`
	Log    *LogSettings    `hcl:"log,block"`
	Report *ReportSettings `hcl:"report,block"`
}

// TallySettings controls how input lines are processed
type TallySettings struct {
	Workers      int    `hcl:"workers,optional"`
	OnParseError string `hcl:"on_parse_error,optional"`
}

// LogSettings controls diagnostic output on stderr
type LogSettings struct {
	Level string `hcl:"level,optional"`
}

// ReportSettings controls how the final tally is printed
type ReportSettings struct {
	Format string `hcl:"format,optional"`
	Color  *bool  `hcl:"color,optional"`
	Output string `hcl:"output,optional"`
}

// Report formats
const (
	FormatText  = "text"
	FormatTable = "table"
	FormatJSON  = "json"
)

// Default returns the default configuration
func Default() *Config {
	color := true
	return &Config{
		Tally: &TallySettings{
			Workers:      runtime.NumCPU(),
			OnParseError: match.PolicyStop.String(),
		},
		Log: &LogSettings{
			Level: "warn",
		},
		Report: &ReportSettings{
			Format: FormatText,
			Color:  &color,
		},
	}
}

// Load loads configuration from an HCL file. A missing file yields the defaults.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	def := Default()
	if c.Tally == nil {
		c.Tally = def.Tally
	}
	if c.Tally.Workers == 0 {
		c.Tally.Workers = def.Tally.Workers
	}
	if c.Tally.OnParseError == "" {
		c.Tally.OnParseError = def.Tally.OnParseError
	}

	if c.Log == nil {
		c.Log = def.Log
	}
	if c.Log.Level == "" {
		c.Log.Level = def.Log.Level
	}

	if c.Report == nil {
		c.Report = def.Report
	}
	if c.Report.Format == "" {
		c.Report.Format = def.Report.Format
	}
	if c.Report.Color == nil {
		c.Report.Color = def.Report.Color
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Tally.Workers < 1 || c.Tally.Workers > 1024 {
		return fmt.Errorf("tally: workers must be between 1 and 1024, got %d", c.Tally.Workers)
	}
	if _, err := match.ParsePolicy(c.Tally.OnParseError); err != nil {
		return fmt.Errorf("tally: %w", err)
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log: %w", err)
	}

	switch c.Report.Format {
	case FormatText, FormatTable, FormatJSON:
	default:
		return fmt.Errorf("report: invalid format %q", c.Report.Format)
	}
	return nil
}

// Policy returns the parse-error policy. Call after Validate.
func (c *Config) Policy() match.Policy {
	p, _ := match.ParsePolicy(c.Tally.OnParseError)
	return p
}

// LogLevel returns the configured log level. Call after Validate.
func (c *Config) LogLevel() log.Level {
	level, _ := log.ParseLevel(c.Log.Level)
	return level
}

// ColorEnabled reports whether styled output is allowed
func (c *Config) ColorEnabled() bool {
	return c.Report.Color == nil || *c.Report.Color
}
