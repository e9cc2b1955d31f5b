package schedulers

import (
	"golang.org/x/exp/slices"

	"github.com/ankan123basu/CPUXpert/internal/core"
)

// runToCompletion is the shared loop of the non-preemptive policies: pick the
// first eligible process that is minimal under less, run it to completion in
// one slot, and jump the clock over idle gaps.
func (s *Scheduler) runToCompletion(less comparator) core.Schedule {
	pending := slices.Clone(s.processes)
	schedule := make(core.Schedule, 0, len(pending))
	clock := 0

	for len(pending) > 0 {
		ready := arrived(pending, clock)
		if len(ready) == 0 {
			clock = nextArrival(pending)
			continue
		}

		next := slices.MinFunc(ready, less)
		slot := s.dispatch(next, clock, next.RemainingTime)
		schedule = append(schedule, slot)
		clock = slot.End
		pending = remove(pending, next)
	}
	return schedule
}
