// Package app wires configuration, logging, metrics and the render loop
// into the stepbar demo application.
package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"github.com/agbru/stepbar/internal/config"
	apperrors "github.com/agbru/stepbar/internal/errors"
	"github.com/agbru/stepbar/internal/logging"
	"github.com/agbru/stepbar/internal/ui"
)

// Application represents the stepbar application instance.
type Application struct {
	Config    config.AppConfig
	Logger    logging.Logger
	ErrWriter io.Writer
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithLogger sets a custom Logger for the application.
func WithLogger(l logging.Logger) AppOption {
	return func(a *Application) { a.Logger = l }
}

// New creates a new Application instance by parsing command-line arguments.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter}
	for _, opt := range opts {
		opt(app)
	}

	programName := "stepbar"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter)
	if err != nil {
		if !IsHelpError(err) {
			fmt.Fprintf(errWriter, "stepbar: %v\n", err)
		}
		return nil, err
	}
	app.Config = cfg

	if app.Logger == nil {
		app.Logger = logging.NewLeveledLogger(errWriter, "stepbar", cfg.LogLevel)
	}
	return app, nil
}

// IsHelpError reports whether err is the flag package's help pseudo-error.
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}

// Run executes the application and returns the process exit code.
// It installs SIGINT/SIGTERM handling: cancellation stops the workload and
// maps to the canceled exit code.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ui.InitTheme(a.Config.NoColor)

	var err error
	if a.Config.TUI {
		err = a.runTUI(ctx, out)
	} else {
		err = a.runCLI(ctx, out)
	}
	if err != nil {
		if apperrors.IsContextError(err) {
			a.Logger.Warn("run canceled")
		} else {
			a.Logger.Error("run failed", err)
		}
	}
	return apperrors.ExitCodeForError(err)
}
