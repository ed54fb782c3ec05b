// Package progress implements the step-based process state at the heart of
// the indicator: an immutable step total, an accumulating current step, and
// an ordered list of observers notified synchronously on every nonzero
// update.
package progress
