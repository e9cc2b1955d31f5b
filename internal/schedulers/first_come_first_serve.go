package schedulers

import "github.com/ankan123basu/CPUXpert/internal/core"

// firstComeFirstServe runs processes to completion in arrival order; equal
// arrivals keep their input order.
func (s *Scheduler) firstComeFirstServe() core.Schedule {
	return s.runToCompletion(byArrival)
}
