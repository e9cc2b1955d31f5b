package schedulers

import (
	"golang.org/x/exp/slices"

	"github.com/ankan123basu/CPUXpert/internal/core"
)

// runUnitSlices is the shared loop of the preemptive policies. Every time
// unit the ready queue is stable-sorted by less and its head runs for one
// unit. The queue keeps its sorted order between units, so ties resolve by
// the current queue order and newcomers join at the back.
func (s *Scheduler) runUnitSlices(less comparator) core.Schedule {
	incoming := slices.Clone(s.processes)
	var ready []*core.Process
	schedule := make(core.Schedule, 0, len(incoming))
	clock := 0

	for len(incoming) > 0 || len(ready) > 0 {
		ready, incoming = admit(ready, incoming, clock)
		if len(ready) == 0 {
			clock = nextArrival(incoming)
			continue
		}

		slices.SortStableFunc(ready, less)
		current := ready[0]
		slot := s.dispatch(current, clock, 1)
		schedule = append(schedule, slot)
		clock = slot.End

		if current.Completed() {
			ready = ready[1:]
		}
	}
	return schedule
}
