package core

// State is the execution state of a process inside one simulation run.
type State int

const (
	Unstarted State = iota
	Running
	Completed
)

func (s State) String() string {
	switch s {
	case Unstarted:
		return "Unstarted"
	case Running:
		return "Running"
	case Completed:
		return "Completed"
	}
	return "Unknown"
}

// Process is a CPU-bound job. ID, ArrivalTime, BurstTime and Priority are
// fixed at creation; the rest is execution state owned by the scheduler.
//
// StartTime is meaningful once State leaves Unstarted, CompletionTime only
// when State is Completed.
type Process struct {
	ID          string
	ArrivalTime int
	BurstTime   int
	Priority    int // larger value = higher priority

	RemainingTime  int
	State          State
	StartTime      int
	CompletionTime int
}

func NewProcess(id string, arrivalTime, burstTime, priority int) Process {
	p := Process{
		ID:          id,
		ArrivalTime: arrivalTime,
		BurstTime:   burstTime,
		Priority:    priority,
	}
	p.Reset()
	return p
}

// Reset restores the process to its pre-run state.
func (p *Process) Reset() {
	p.RemainingTime = p.BurstTime
	p.State = Unstarted
	p.StartTime = 0
	p.CompletionTime = 0
}

// Run grants the process units of CPU time starting at start and returns the
// resulting slot. The first call records the start time; the call that drains
// RemainingTime records the completion time.
func (p *Process) Run(start, units int) Slot {
	if p.State == Unstarted {
		p.State = Running
		p.StartTime = start
	}
	end := start + units
	p.RemainingTime -= units
	if p.RemainingTime <= 0 {
		p.RemainingTime = 0
		p.State = Completed
		p.CompletionTime = end
	}
	return Slot{ProcessID: p.ID, Start: start, End: end}
}

func (p *Process) Started() bool   { return p.State != Unstarted }
func (p *Process) Completed() bool { return p.State == Completed }

// TurnaroundTime is completion minus arrival, or 0 for an unfinished process.
func (p *Process) TurnaroundTime() int {
	if !p.Completed() {
		return 0
	}
	return p.CompletionTime - p.ArrivalTime
}

// WaitingTime is the time spent ready but not running.
func (p *Process) WaitingTime() int {
	if !p.Completed() {
		return 0
	}
	return p.TurnaroundTime() - p.BurstTime
}

// ResponseTime is the delay between arrival and first dispatch, or 0 when the
// process never ran.
func (p *Process) ResponseTime() int {
	if !p.Started() {
		return 0
	}
	return p.StartTime - p.ArrivalTime
}
