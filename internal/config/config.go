// Package config parses the application configuration from command-line
// flags with environment variable defaults (STEPBAR_* overrides flag
// defaults; explicit flags always win).
package config

import (
	"flag"
	"io"
	"time"

	apperrors "github.com/agbru/stepbar/internal/errors"
	"github.com/agbru/stepbar/internal/format"
)

// Preset names accepted by the -preset flag.
const (
	PresetSimple   = "simple"
	PresetRegular  = "regular"
	PresetAdvanced = "advanced"
)

// AppConfig holds the full application configuration.
type AppConfig struct {
	// TotalSteps is the step total of the simulated workload.
	TotalSteps int
	// BatchSize is the number of steps reported per update.
	BatchSize int
	// StepDelay is the simulated work time per batch.
	StepDelay time.Duration
	// Warmup is how long the indeterminate spinner runs before the first step.
	Warmup time.Duration

	// Preset selects the display preset: simple, regular or advanced.
	Preset string
	// BarWidth is the bar length in cells.
	BarWidth int
	// Label is an optional line prefix.
	Label string
	// ASCII selects the fallback glyph set for terminals without
	// block-element support.
	ASCII bool
	// NoColor disables ANSI colors.
	NoColor bool
	// Quiet suppresses the progress display entirely.
	Quiet bool
	// TUI selects the live full-screen view instead of the plain line.
	TUI bool

	// MetricsAddr, when non-empty, serves Prometheus metrics on this address.
	MetricsAddr string
	// LogLevel is the zerolog level name: debug, info, warn or error.
	LogLevel string
}

// ParseConfig parses cmdArgs into an AppConfig. Flag defaults come from
// STEPBAR_* environment variables where set. Usage and parse errors are
// written to errWriter by the flag package.
func ParseConfig(programName string, cmdArgs []string, errWriter io.Writer) (AppConfig, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errWriter)

	var cfg AppConfig
	fs.IntVar(&cfg.TotalSteps, "steps", getEnvInt("STEPS", 150), "total number of steps in the simulated workload")
	fs.IntVar(&cfg.BatchSize, "batch", getEnvInt("BATCH", 1), "steps reported per update")
	fs.DurationVar(&cfg.StepDelay, "delay", getEnvDuration("DELAY", 50*time.Millisecond), "simulated work time per batch")
	fs.DurationVar(&cfg.Warmup, "warmup", getEnvDuration("WARMUP", 0), "spinner warm-up before the first step")
	fs.StringVar(&cfg.Preset, "preset", getEnvString("PRESET", PresetAdvanced), "display preset: simple, regular or advanced")
	fs.IntVar(&cfg.BarWidth, "width", getEnvInt("WIDTH", format.DefaultBarWidth), "bar width in cells")
	fs.StringVar(&cfg.Label, "label", getEnvString("LABEL", ""), "optional label prefixing the progress line")
	fs.BoolVar(&cfg.ASCII, "ascii", getEnvBool("ASCII", false), "draw the bar with ASCII glyphs")
	fs.BoolVar(&cfg.NoColor, "no-color", getEnvBool("NO_COLOR", false), "disable colored output")
	fs.BoolVar(&cfg.Quiet, "quiet", getEnvBool("QUIET", false), "suppress the progress display")
	fs.BoolVar(&cfg.TUI, "tui", getEnvBool("TUI", false), "render in the live full-screen view")
	fs.StringVar(&cfg.MetricsAddr, "metrics-addr", getEnvString("METRICS_ADDR", ""), "serve Prometheus metrics on this address (empty disables)")
	fs.StringVar(&cfg.LogLevel, "log-level", getEnvString("LOG_LEVEL", "info"), "log level: debug, info, warn or error")

	if err := fs.Parse(cmdArgs); err != nil {
		return AppConfig{}, err
	}
	if err := Validate(cfg); err != nil {
		return AppConfig{}, err
	}
	return cfg, nil
}

// Validate checks the configuration for values the core would reject later.
func Validate(cfg AppConfig) error {
	if cfg.TotalSteps <= 0 {
		return apperrors.NewConfigError("-steps must be positive, got %d", cfg.TotalSteps)
	}
	if cfg.BatchSize <= 0 {
		return apperrors.NewConfigError("-batch must be positive, got %d", cfg.BatchSize)
	}
	if cfg.StepDelay < 0 {
		return apperrors.NewConfigError("-delay must not be negative, got %s", cfg.StepDelay)
	}
	if cfg.Warmup < 0 {
		return apperrors.NewConfigError("-warmup must not be negative, got %s", cfg.Warmup)
	}
	if cfg.BarWidth <= 0 {
		return apperrors.NewConfigError("-width must be positive, got %d", cfg.BarWidth)
	}
	switch cfg.Preset {
	case PresetSimple, PresetRegular, PresetAdvanced:
	default:
		return apperrors.NewConfigError("unknown preset %q, want simple, regular or advanced", cfg.Preset)
	}
	return nil
}

// DisplayConfig maps the application configuration onto a format.Config.
func DisplayConfig(cfg AppConfig) format.Config {
	var display format.Config
	switch cfg.Preset {
	case PresetSimple:
		display = format.Simple()
	case PresetRegular:
		display = format.Regular()
	default:
		display = format.Advanced()
	}
	display.BarWidth = cfg.BarWidth
	display.Label = cfg.Label
	if cfg.ASCII {
		display.Style = format.ASCIIBlocks
	}
	return display
}
