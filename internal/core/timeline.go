package core

// Slot is one contiguous grant of the CPU to a process over [Start, End).
type Slot struct {
	ProcessID string `json:"process_id"`
	Start     int    `json:"start"`
	End       int    `json:"end"`
}

func (s Slot) Duration() int {
	return s.End - s.Start
}

// Schedule is the ordered execution timeline of one run. Gaps between
// consecutive slots are idle CPU time.
type Schedule []Slot

func (s Schedule) Clone() Schedule {
	if s == nil {
		return nil
	}
	out := make(Schedule, len(s))
	copy(out, s)
	return out
}

// Makespan is the end of the last slot.
func (s Schedule) Makespan() int {
	makespan := 0
	for _, slot := range s {
		if slot.End > makespan {
			makespan = slot.End
		}
	}
	return makespan
}

// BusyTime is the total CPU time granted across all slots.
func (s Schedule) BusyTime() int {
	busy := 0
	for _, slot := range s {
		busy += slot.Duration()
	}
	return busy
}

// IdleTime is the part of the makespan during which nothing ran.
func (s Schedule) IdleTime() int {
	return s.Makespan() - s.BusyTime()
}

// TimeFor sums the CPU time granted to one process.
func (s Schedule) TimeFor(processID string) int {
	total := 0
	for _, slot := range s {
		if slot.ProcessID == processID {
			total += slot.Duration()
		}
	}
	return total
}
