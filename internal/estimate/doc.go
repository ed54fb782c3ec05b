// Package estimate derives time statistics for a tracked process: average
// wall-clock time per step, projected remaining runtime, and projected
// finish time. An Estimator observes a progress.Process and recomputes
// inside every notification.
package estimate
