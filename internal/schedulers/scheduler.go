package schedulers

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/ankan123basu/CPUXpert/internal/core"
)

// Scheduler owns a private copy of a process set and simulates one
// algorithm over it at a time. All accessors return copies, so readers on
// other goroutines never observe a run in progress.
type Scheduler struct {
	mu          sync.RWMutex
	logger      *slog.Logger
	processes   []*core.Process
	algorithm   Algorithm
	timeQuantum int
	schedule    core.Schedule
}

func New(logger *slog.Logger) *Scheduler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Scheduler{logger: logger.With("component", "scheduler")}
}

// SetProcesses replaces the working set with copies of processes and
// discards the previous schedule.
func (s *Scheduler) SetProcesses(processes []core.Process) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.processes = make([]*core.Process, 0, len(processes))
	for _, p := range processes {
		working := p
		s.processes = append(s.processes, &working)
	}
	s.schedule = nil
}

// SetAlgorithm selects the policy for the next Run. timeQuantum is only
// used by RoundRobin.
func (s *Scheduler) SetAlgorithm(algorithm Algorithm, timeQuantum int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.algorithm = algorithm
	s.timeQuantum = timeQuantum
}

// Run resets every process and simulates the selected algorithm. On error
// nothing is mutated and the previous results stay readable.
func (s *Scheduler) Run() (core.Schedule, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.algorithm.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidAlgorithm, s.algorithm)
	}
	if s.algorithm == RoundRobin && s.timeQuantum <= 0 {
		return nil, fmt.Errorf("%w: round robin needs a positive quantum, got %d", ErrInvalidQuantum, s.timeQuantum)
	}
	if err := validate(s.processes); err != nil {
		return nil, err
	}

	for _, p := range s.processes {
		p.Reset()
	}

	var schedule core.Schedule
	switch s.algorithm {
	case FirstComeFirstServe:
		schedule = s.firstComeFirstServe()
	case ShortestJobFirst:
		schedule = s.shortestJobFirst()
	case ShortestRemainingTimeFirst:
		schedule = s.shortestRemainingTimeFirst()
	case Priority:
		schedule = s.priority()
	case PriorityPreemptive:
		schedule = s.priorityPreemptive()
	case RoundRobin:
		schedule = s.roundRobin(s.timeQuantum)
	default:
		return nil, fmt.Errorf("%w: %s", ErrInvalidAlgorithm, s.algorithm)
	}
	s.schedule = schedule

	s.logger.Info("schedule complete",
		"algorithm", s.algorithm.String(),
		"processes", len(s.processes),
		"slots", len(schedule),
		"makespan", schedule.Makespan(),
	)
	return schedule.Clone(), nil
}

// Schedule returns a copy of the last produced schedule.
func (s *Scheduler) Schedule() core.Schedule {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.schedule.Clone()
}

// Processes returns value copies of the working set in input order.
func (s *Scheduler) Processes() []core.Process {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]core.Process, 0, len(s.processes))
	for _, p := range s.processes {
		out = append(out, *p)
	}
	return out
}

func (s *Scheduler) Algorithm() (Algorithm, int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.algorithm, s.timeQuantum
}

// Metrics derives aggregate metrics from the last run.
func (s *Scheduler) Metrics() Metrics {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return computeMetrics(s.processes, s.schedule)
}

// Recommend scores the working set; it does not depend on any run.
func (s *Scheduler) Recommend() (Recommendation, error) {
	return Recommend(s.Processes())
}

// dispatch grants p units of CPU at clock. Must be called with s.mu held.
func (s *Scheduler) dispatch(p *core.Process, clock, units int) core.Slot {
	slot := p.Run(clock, units)
	s.logger.Debug("dispatch", "pid", p.ID, "start", slot.Start, "end", slot.End, "remaining", p.RemainingTime)
	return slot
}

func validate(processes []*core.Process) error {
	seen := make(map[string]struct{}, len(processes))
	for _, p := range processes {
		switch {
		case p.ID == "":
			return fmt.Errorf("%w: process id must not be empty", ErrInvalidProcess)
		case p.BurstTime <= 0:
			return fmt.Errorf("%w: %s: burst time must be positive, got %d", ErrInvalidProcess, p.ID, p.BurstTime)
		case p.ArrivalTime < 0:
			return fmt.Errorf("%w: %s: arrival time must not be negative, got %d", ErrInvalidProcess, p.ID, p.ArrivalTime)
		}
		if _, dup := seen[p.ID]; dup {
			return fmt.Errorf("%w: duplicate process id %s", ErrInvalidProcess, p.ID)
		}
		seen[p.ID] = struct{}{}
	}
	return nil
}
