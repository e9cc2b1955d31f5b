package schedulers

import (
	"golang.org/x/exp/slices"

	"github.com/ankan123basu/CPUXpert/internal/core"
)

// roundRobin serves a FIFO ready queue in slices of at most timeQuantum.
// A process preempted by quantum expiry is requeued behind everything that
// arrived during its slice.
func (s *Scheduler) roundRobin(timeQuantum int) core.Schedule {
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

		current := ready[0]
		ready = ready[1:]
		slot := s.dispatch(current, clock, min(timeQuantum, current.RemainingTime))
		schedule = append(schedule, slot)
		clock = slot.End

		if !current.Completed() {
			ready, incoming = admit(ready, incoming, clock)
			ready = append(ready, current)
		}
	}
	return schedule
}
