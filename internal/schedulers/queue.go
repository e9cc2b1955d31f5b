package schedulers

import (
	"cmp"

	"golang.org/x/exp/slices"

	"github.com/ankan123basu/CPUXpert/internal/core"
)

// comparator orders two processes for one dispatch rule; the first
// minimum wins.
type comparator func(a, b *core.Process) int

func byArrival(a, b *core.Process) int {
	return cmp.Compare(a.ArrivalTime, b.ArrivalTime)
}

func byBurst(a, b *core.Process) int {
	return cmp.Compare(a.BurstTime, b.BurstTime)
}

func byRemaining(a, b *core.Process) int {
	return cmp.Compare(a.RemainingTime, b.RemainingTime)
}

func byPriorityDesc(a, b *core.Process) int {
	return cmp.Compare(b.Priority, a.Priority)
}

// arrived returns the pending processes eligible at clock, keeping order.
func arrived(pending []*core.Process, clock int) []*core.Process {
	var ready []*core.Process
	for _, p := range pending {
		if p.ArrivalTime <= clock {
			ready = append(ready, p)
		}
	}
	return ready
}

// admit moves every incoming process that has arrived by clock to the back
// of ready, in incoming order.
func admit(ready, incoming []*core.Process, clock int) ([]*core.Process, []*core.Process) {
	rest := make([]*core.Process, 0, len(incoming))
	for _, p := range incoming {
		if p.ArrivalTime <= clock {
			ready = append(ready, p)
		} else {
			rest = append(rest, p)
		}
	}
	return ready, rest
}

// nextArrival is the earliest arrival among processes. processes must not be empty.
func nextArrival(processes []*core.Process) int {
	return slices.MinFunc(processes, byArrival).ArrivalTime
}

func remove(processes []*core.Process, target *core.Process) []*core.Process {
	return slices.DeleteFunc(processes, func(p *core.Process) bool { return p == target })
}
