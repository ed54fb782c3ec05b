package cli

import (
	"time"

	"github.com/briandowns/spinner"
)

const (
	// RefreshRate defines the redraw frequency of the progress line.
	// 200ms keeps updates visible without hammering the terminal.
	RefreshRate = 200 * time.Millisecond
)

// Spinner is an interface that abstracts the behavior of a terminal spinner.
// It decouples the warm-up display from a specific spinner implementation,
// which keeps the render path testable.
type Spinner interface {
	// Start begins the spinner animation.
	Start()
	// Stop halts the spinner animation.
	Stop()
	// UpdateSuffix sets the text that is displayed after the spinner.
	UpdateSuffix(suffix string)
}

// realSpinner wraps spinner.Spinner in the Spinner interface.
type realSpinner struct {
	s *spinner.Spinner
}

// Start begins the spinner animation.
func (rs *realSpinner) Start() {
	rs.s.Start()
}

// Stop halts the spinner animation.
func (rs *realSpinner) Stop() {
	rs.s.Stop()
}

// UpdateSuffix sets the text that is displayed after the spinner.
func (rs *realSpinner) UpdateSuffix(suffix string) {
	rs.s.Suffix = suffix
}

// newSpinner constructs the warm-up spinner. Declared as a variable so tests
// can substitute a fake.
var newSpinner = func(options ...spinner.Option) Spinner {
	// Same interval as RefreshRate to keep both displays in step.
	s := spinner.New(spinner.CharSets[11], RefreshRate, options...)
	return &realSpinner{s}
}

// NewSpinner returns a Spinner suitable for the phase before the first step
// is recorded, when there is nothing determinate to draw yet.
func NewSpinner(options ...spinner.Option) Spinner {
	return newSpinner(options...)
}
