package schedulers

import "github.com/ankan123basu/CPUXpert/internal/core"

// shortestJobFirst is non-preemptive: among arrived processes the smallest
// burst runs to completion, ties going to the earliest in input order.
func (s *Scheduler) shortestJobFirst() core.Schedule {
	return s.runToCompletion(byBurst)
}

// shortestRemainingTimeFirst re-picks the smallest remaining time every unit.
func (s *Scheduler) shortestRemainingTimeFirst() core.Schedule {
	return s.runUnitSlices(byRemaining)
}
