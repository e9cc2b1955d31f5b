package schedulers

import "github.com/ankan123basu/CPUXpert/internal/core"

// priority is non-preemptive: the highest priority value among arrived
// processes runs to completion.
func (s *Scheduler) priority() core.Schedule {
	return s.runToCompletion(byPriorityDesc)
}

// priorityPreemptive re-picks the highest priority every unit.
func (s *Scheduler) priorityPreemptive() core.Schedule {
	return s.runUnitSlices(byPriorityDesc)
}
