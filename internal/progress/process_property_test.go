package progress

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestUpdateAccumulation_PropertyBased verifies that for any sequence of
// non-negative deltas, the final current step equals the sum of the deltas
// and each nonzero delta notifies every observer exactly once.
func TestUpdateAccumulation_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("current step is the sum of deltas", prop.ForAll(
		func(deltas []int) bool {
			p, err := NewProcess(1000)
			if err != nil {
				return false
			}
			sum := 0
			for _, d := range deltas {
				if err := p.Update(d); err != nil {
					return false
				}
				sum += d
			}
			return p.CurrentStep() == sum
		},
		gen.SliceOf(gen.IntRange(0, 50)),
	))

	properties.Property("each nonzero delta notifies every observer once", prop.ForAll(
		func(deltas []int, numObservers int) bool {
			p, err := NewProcess(1000)
			if err != nil {
				return false
			}
			counts := make([]int, numObservers)
			for i := 0; i < numObservers; i++ {
				i := i
				if err := p.Observe(func() { counts[i]++ }); err != nil {
					return false
				}
			}
			nonzero := 0
			for _, d := range deltas {
				if err := p.Update(d); err != nil {
					return false
				}
				if d > 0 {
					nonzero++
				}
			}
			for _, c := range counts {
				if c != nonzero {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.IntRange(0, 50)),
		gen.IntRange(1, 5),
	))

	properties.TestingRun(t)
}
