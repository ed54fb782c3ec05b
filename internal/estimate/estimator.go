package estimate

import (
	"time"

	apperrors "github.com/agbru/stepbar/internal/errors"
	"github.com/agbru/stepbar/internal/format"
	"github.com/agbru/stepbar/internal/progress"
)

// Estimate holds the derived time metrics for a running process.
// Values are only meaningful once the estimator has seen at least one
// nonzero step; before that Estimator.Current reports not-yet-available.
type Estimate struct {
	// AveragePerStep is the mean wall-clock time spent per completed step.
	AveragePerStep time.Duration
	// Remaining is the projected runtime still ahead. It is zero or
	// negative when the process has reached or overshot its total; it is
	// deliberately not clamped.
	Remaining time.Duration
	// Finish is the projected completion timestamp.
	Finish time.Time
}

// Estimator derives time statistics for one process from elapsed wall-clock
// time and step counts. It registers itself as an observer at construction
// and recomputes synchronously inside every nonzero-step notification.
//
// The estimator never mutates the process it watches; it only updates its
// own derived fields, so it is as single-goroutine as the process itself.
type Estimator struct {
	process      *progress.Process
	runtimeBegin time.Time
	current      Estimate
	valid        bool

	// now is the clock source, overridable in tests.
	now func() time.Time
}

// NewEstimator creates an Estimator for p and registers its recompute
// callback as one of p's observers.
//
// It returns an InvalidArgumentError when p is nil and an InvalidStateError
// when p has already advanced past its initial state; in both cases no
// observer is registered.
func NewEstimator(p *progress.Process) (*Estimator, error) {
	if p == nil {
		return nil, apperrors.NewInvalidArgument("process", "must not be nil")
	}
	if p.Started() {
		return nil, apperrors.NewInvalidState("NewEstimator", "process already advanced to step %d", p.CurrentStep())
	}
	e := &Estimator{
		process: p,
		now:     time.Now,
	}
	e.runtimeBegin = e.now()
	if err := p.Observe(e.onUpdate); err != nil {
		return nil, err
	}
	return e, nil
}

// onUpdate recomputes the derived metrics from a single clock sample.
// Guard: a process that somehow reports zero steps is left alone, matching
// the zero-step no-op contract of Update.
func (e *Estimator) onUpdate() {
	current := e.process.CurrentStep()
	if current == 0 {
		return
	}
	now := e.now()
	elapsed := now.Sub(e.runtimeBegin)
	avg := elapsed / time.Duration(current)
	remaining := time.Duration(e.process.TotalSteps()-current) * avg

	e.current = Estimate{
		AveragePerStep: avg,
		Remaining:      remaining,
		Finish:         now.Add(remaining),
	}
	e.valid = true
}

// RuntimeBegin returns the timestamp captured at construction.
func (e *Estimator) RuntimeBegin() time.Time { return e.runtimeBegin }

// Current returns the latest derived metrics. The second return value is
// false until the first nonzero step has been recorded.
func (e *Estimator) Current() (Estimate, bool) {
	return e.current, e.valid
}

// Summary renders the time statistics as a bracketed three-field line:
// start time, projected finish time, and average time per step, e.g.
// "[14:03|14:27|00:00:09]". Metrics that are not yet available render as
// dash placeholders.
func (e *Estimator) Summary() string {
	finish := format.ClockPlaceholder
	avg := format.DurationPlaceholder
	if e.valid {
		finish = format.FormatClock(e.current.Finish)
		avg = format.FormatDuration(e.current.AveragePerStep)
	}
	return "[" + format.FormatClock(e.runtimeBegin) + "|" + finish + "|" + avg + "]"
}
