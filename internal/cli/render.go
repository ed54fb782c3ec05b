package cli

import (
	"time"

	"github.com/agbru/stepbar/internal/format"
	"github.com/agbru/stepbar/internal/progress"
	"github.com/agbru/stepbar/internal/ui"
)

// Renderer throttles and colorizes progress-line redraws for one process.
// It is driven from the same goroutine that updates the process: call Tick
// after each update and Done once the work is finished.
type Renderer struct {
	lw      *LineWriter
	cfg     format.Config
	refresh time.Duration
	last    time.Time

	// now is the clock source, overridable in tests.
	now func() time.Time
}

// NewRenderer creates a Renderer drawing with cfg through lw. A
// non-positive refresh disables throttling so every Tick redraws.
func NewRenderer(lw *LineWriter, cfg format.Config, refresh time.Duration) *Renderer {
	return &Renderer{
		lw:      lw,
		cfg:     cfg,
		refresh: refresh,
		now:     time.Now,
	}
}

// Tick redraws the progress line unless the previous redraw was less than
// the refresh interval ago. Call it after every process update.
func (r *Renderer) Tick(proc *progress.Process, times format.TimeSummarizer) {
	now := r.now()
	if r.refresh > 0 && now.Sub(r.last) < r.refresh {
		return
	}
	r.last = now
	line := r.cfg.FormatLine(proc.CurrentStep(), proc.TotalSteps(), times)
	r.lw.WriteLine(ui.ColorPrimary() + line + ui.ColorReset())
}

// Done draws the final state unthrottled, in the success color, and
// terminates the in-place line.
func (r *Renderer) Done(proc *progress.Process, times format.TimeSummarizer) {
	line := r.cfg.FormatLine(proc.CurrentStep(), proc.TotalSteps(), times)
	r.lw.WriteLine(ui.ColorSuccess() + line + ui.ColorReset())
	r.lw.Finish()
}
