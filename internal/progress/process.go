package progress

import (
	apperrors "github.com/agbru/stepbar/internal/errors"
)

// Observer is a callback invoked after every nonzero step update.
// Observers run synchronously on the updater's goroutine, in registration
// order, so they must be fast; a slow observer directly delays Update.
type Observer func()

// Process tracks step-based completion of a single long-running task.
// It holds the immutable step total, the accumulated current step, and the
// ordered observer list.
//
// A Process is owned by a single goroutine: it performs no internal locking,
// and callers that share one across goroutines must serialize access
// themselves.
type Process struct {
	totalSteps  int
	currentStep int
	observers   []Observer
}

// NewProcess creates a Process for a task consisting of totalSteps units of
// work. It returns an InvalidArgumentError when totalSteps is not positive.
func NewProcess(totalSteps int) (*Process, error) {
	if totalSteps <= 0 {
		return nil, apperrors.NewInvalidArgument("totalSteps", "got %d, want > 0", totalSteps)
	}
	return &Process{totalSteps: totalSteps}, nil
}

// Observe registers fn to be invoked on every nonzero update.
//
// Registration is only allowed while the process is still in its initial
// state; once any step has been recorded the observer list is fixed and
// Observe returns an InvalidStateError. A nil callback is rejected with an
// InvalidArgumentError. Neither failure mutates the process.
func (p *Process) Observe(fn Observer) error {
	if fn == nil {
		return apperrors.NewInvalidArgument("fn", "observer callback must not be nil")
	}
	if p.currentStep != 0 {
		return apperrors.NewInvalidState("Observe", "process already advanced to step %d", p.currentStep)
	}
	p.observers = append(p.observers, fn)
	return nil
}

// Update records steps additional units of completed work and notifies every
// registered observer, in registration order, synchronously on the caller's
// goroutine.
//
// A negative delta is rejected with an InvalidArgumentError. A zero delta is
// a documented no-op: the current step does not change and no observer runs.
// Observer panics are not recovered; they propagate to the caller.
//
// The current step may exceed the total. Overshoot is not an error here; it
// is reported downstream as a completion above 100%.
func (p *Process) Update(steps int) error {
	if steps < 0 {
		return apperrors.NewInvalidArgument("steps", "got %d, want >= 0", steps)
	}
	if steps == 0 {
		return nil
	}
	p.currentStep += steps
	for _, fn := range p.observers {
		fn()
	}
	return nil
}

// CurrentStep returns the number of steps recorded so far.
func (p *Process) CurrentStep() int { return p.currentStep }

// TotalSteps returns the immutable step total the process was created with.
func (p *Process) TotalSteps() int { return p.totalSteps }

// Started reports whether any step has been recorded yet.
func (p *Process) Started() bool { return p.currentStep != 0 }

// Fraction returns currentStep/totalSteps as a float. The result exceeds 1
// when the process has overshot its total.
func (p *Process) Fraction() float64 {
	return float64(p.currentStep) / float64(p.totalSteps)
}
