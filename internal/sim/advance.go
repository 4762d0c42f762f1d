package sim

import "time"

// Gate decides when the loop may run a step. timing.StepGate satisfies it.
type Gate interface {
	Ready(now time.Duration) bool
}

// Advance steps e when g fires at now and the frontier is non-empty. The gate
// is consulted (and re-armed) even after the outbreak is over.
func Advance(g Gate, e *Engine, now time.Duration) (StepResult, bool) {
	if !g.Ready(now) || e.Done() {
		return StepResult{}, false
	}
	return e.Step(), true
}
