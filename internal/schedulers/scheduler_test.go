package schedulers

import (
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ankan123basu/CPUXpert/internal/core"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func proc(id string, arrival, burst int) core.Process {
	return core.NewProcess(id, arrival, burst, 0)
}

func prio(id string, arrival, burst, priority int) core.Process {
	return core.NewProcess(id, arrival, burst, priority)
}

func slot(id string, start, end int) core.Slot {
	return core.Slot{ProcessID: id, Start: start, End: end}
}

func run(t *testing.T, algorithm Algorithm, quantum int, processes ...core.Process) (core.Schedule, *Scheduler) {
	t.Helper()
	s := New(testLogger())
	s.SetProcesses(processes)
	s.SetAlgorithm(algorithm, quantum)
	schedule, err := s.Run()
	require.NoError(t, err)
	return schedule, s
}

// mixedWorkload has priorities, overlapping arrivals and an idle gap before P5.
func mixedWorkload() []core.Process {
	return []core.Process{
		prio("P1", 0, 7, 2),
		prio("P2", 2, 4, 1),
		prio("P3", 4, 1, 3),
		prio("P4", 5, 4, 2),
		prio("P5", 20, 3, 1),
	}
}

func TestFirstComeFirstServe_TwoProcesses(t *testing.T) {
	schedule, s := run(t, FirstComeFirstServe, 0, proc("P1", 0, 5), proc("P2", 2, 3))

	assert.Equal(t, core.Schedule{slot("P1", 0, 5), slot("P2", 5, 8)}, schedule)

	m := s.Metrics()
	assert.InDelta(t, 5.5, m.AverageTurnaroundTime, 1e-9)
	assert.InDelta(t, 1.5, m.AverageWaitingTime, 1e-9)
	assert.InDelta(t, 1.5, m.AverageResponseTime, 1e-9)
	assert.InDelta(t, 100.0, m.CpuUtilization, 1e-9)
	assert.Equal(t, 8, m.Makespan)
	assert.Zero(t, m.IdleTime)
}

func TestFirstComeFirstServe_OrdersByArrivalThenInput(t *testing.T) {
	schedule, _ := run(t, FirstComeFirstServe, 0,
		proc("C", 3, 1),
		proc("B", 0, 2),
		proc("A", 0, 1),
	)

	assert.Equal(t, core.Schedule{slot("B", 0, 2), slot("A", 2, 3), slot("C", 3, 4)}, schedule)
}

func TestFirstComeFirstServe_JumpsOverIdleGap(t *testing.T) {
	schedule, s := run(t, FirstComeFirstServe, 0, proc("P1", 0, 2), proc("P2", 5, 3))

	assert.Equal(t, core.Schedule{slot("P1", 0, 2), slot("P2", 5, 8)}, schedule)

	m := s.Metrics()
	assert.InDelta(t, 62.5, m.CpuUtilization, 1e-9)
	assert.Equal(t, 3, m.IdleTime)
	assert.InDelta(t, 0.25, m.Throughput, 1e-9)
}

func TestShortestJobFirst_PicksShortestArrived(t *testing.T) {
	schedule, _ := run(t, ShortestJobFirst, 0, proc("P1", 0, 6), proc("P2", 1, 2), proc("P3", 2, 4))

	assert.Equal(t, core.Schedule{slot("P1", 0, 6), slot("P2", 6, 8), slot("P3", 8, 12)}, schedule)
}

func TestShortestJobFirst_TieGoesToInputOrder(t *testing.T) {
	schedule, _ := run(t, ShortestJobFirst, 0, proc("A", 0, 3), proc("B", 0, 3), proc("C", 0, 1))

	assert.Equal(t, core.Schedule{slot("C", 0, 1), slot("A", 1, 4), slot("B", 4, 7)}, schedule)
}

func TestShortestRemainingTimeFirst_Preempts(t *testing.T) {
	schedule, s := run(t, ShortestRemainingTimeFirst, 0, proc("P1", 0, 8), proc("P2", 1, 4), proc("P3", 2, 2))

	want := core.Schedule{
		slot("P1", 0, 1),
		slot("P2", 1, 2),
		slot("P3", 2, 3),
		slot("P3", 3, 4),
		slot("P2", 4, 5),
		slot("P2", 5, 6),
		slot("P2", 6, 7),
	}
	for t0 := 7; t0 < 14; t0++ {
		want = append(want, slot("P1", t0, t0+1))
	}
	assert.Equal(t, want, schedule)

	m := s.Metrics()
	assert.InDelta(t, 22.0/3, m.AverageTurnaroundTime, 1e-9)
	assert.InDelta(t, 8.0/3, m.AverageWaitingTime, 1e-9)
	assert.Zero(t, m.AverageResponseTime)
}

func TestShortestRemainingTimeFirst_EmitsUnitSlots(t *testing.T) {
	schedule, _ := run(t, ShortestRemainingTimeFirst, 0, proc("A", 0, 2), proc("B", 0, 2))

	assert.Equal(t, core.Schedule{
		slot("A", 0, 1),
		slot("A", 1, 2),
		slot("B", 2, 3),
		slot("B", 3, 4),
	}, schedule)
}

func TestPriority_NonPreemptive(t *testing.T) {
	schedule, _ := run(t, Priority, 0, prio("P1", 0, 4, 1), prio("P2", 1, 2, 3), prio("P3", 2, 1, 2))

	assert.Equal(t, core.Schedule{slot("P1", 0, 4), slot("P2", 4, 6), slot("P3", 6, 7)}, schedule)
}

func TestPriority_TieGoesToInputOrder(t *testing.T) {
	schedule, _ := run(t, Priority, 0, prio("A", 0, 1, 2), prio("B", 0, 1, 5), prio("C", 0, 1, 5))

	assert.Equal(t, core.Schedule{slot("B", 0, 1), slot("C", 1, 2), slot("A", 2, 3)}, schedule)
}

func TestPriorityPreemptive_Preempts(t *testing.T) {
	schedule, _ := run(t, PriorityPreemptive, 0, prio("P1", 0, 4, 1), prio("P2", 1, 2, 3), prio("P3", 2, 1, 2))

	assert.Equal(t, core.Schedule{
		slot("P1", 0, 1),
		slot("P2", 1, 2),
		slot("P2", 2, 3),
		slot("P3", 3, 4),
		slot("P1", 4, 5),
		slot("P1", 5, 6),
		slot("P1", 6, 7),
	}, schedule)
}

func TestRoundRobin_NewArrivalsQueueAheadOfPreempted(t *testing.T) {
	schedule, s := run(t, RoundRobin, 2, proc("P1", 0, 5), proc("P2", 1, 3))

	assert.Equal(t, core.Schedule{
		slot("P1", 0, 2),
		slot("P2", 2, 4),
		slot("P1", 4, 6),
		slot("P2", 6, 7),
		slot("P1", 7, 8),
	}, schedule)

	processes := s.Processes()
	assert.Equal(t, 8, processes[0].CompletionTime)
	assert.Equal(t, 7, processes[1].CompletionTime)
}

func TestRoundRobin_LargeQuantumIsFirstComeFirstServe(t *testing.T) {
	workload := mixedWorkload()
	rr, _ := run(t, RoundRobin, 100, workload...)
	fcfs, _ := run(t, FirstComeFirstServe, 0, workload...)

	assert.Equal(t, fcfs, rr)
}

func TestRoundRobin_JumpsOverIdleGap(t *testing.T) {
	schedule, _ := run(t, RoundRobin, 2, proc("P1", 0, 1), proc("P2", 4, 3))

	assert.Equal(t, core.Schedule{slot("P1", 0, 1), slot("P2", 4, 6), slot("P2", 6, 7)}, schedule)
}

func TestAllAlgorithms_ScheduleProperties(t *testing.T) {
	for _, algorithm := range Algorithms() {
		t.Run(algorithm.Slug(), func(t *testing.T) {
			schedule, s := run(t, algorithm, 3, mixedWorkload()...)
			processes := s.Processes()

			// every burst is fully accounted for
			for _, p := range processes {
				assert.Equal(t, p.BurstTime, schedule.TimeFor(p.ID), "process %s", p.ID)
				assert.True(t, p.Completed(), "process %s", p.ID)
				assert.Zero(t, p.RemainingTime)
				assert.GreaterOrEqual(t, p.StartTime, p.ArrivalTime)
				assert.LessOrEqual(t, p.StartTime, p.CompletionTime)
			}

			// slots are ordered and never overlap
			for i, sl := range schedule {
				assert.Greater(t, sl.End, sl.Start)
				if i > 0 {
					assert.GreaterOrEqual(t, sl.Start, schedule[i-1].End)
				}
			}

			// nothing was eligible during an idle gap
			prevEnd := 0
			for _, sl := range schedule {
				if sl.Start > prevEnd {
					for _, p := range processes {
						eligible := p.ArrivalTime < sl.Start && p.CompletionTime > prevEnd
						assert.False(t, eligible, "process %s idle in [%d,%d)", p.ID, prevEnd, sl.Start)
					}
				}
				prevEnd = sl.End
			}

			assert.Equal(t, 23, schedule.Makespan())
			assert.Equal(t, 4, s.Metrics().IdleTime)
		})
	}
}

func TestRun_IsIdempotent(t *testing.T) {
	for _, algorithm := range Algorithms() {
		s := New(testLogger())
		s.SetProcesses(mixedWorkload())
		s.SetAlgorithm(algorithm, 2)

		first, err := s.Run()
		require.NoError(t, err)
		second, err := s.Run()
		require.NoError(t, err)

		assert.Equal(t, first, second, algorithm.String())
	}
}

func TestRun_SwitchingAlgorithmsHasNoSideEffects(t *testing.T) {
	s := New(testLogger())
	s.SetProcesses(mixedWorkload())

	s.SetAlgorithm(FirstComeFirstServe, 0)
	first, err := s.Run()
	require.NoError(t, err)
	firstMetrics := s.Metrics()

	s.SetAlgorithm(ShortestRemainingTimeFirst, 0)
	_, err = s.Run()
	require.NoError(t, err)

	s.SetAlgorithm(FirstComeFirstServe, 0)
	again, err := s.Run()
	require.NoError(t, err)

	assert.Equal(t, first, again)
	assert.Equal(t, firstMetrics, s.Metrics())
}

func TestRun_DoesNotMutateCallerProcesses(t *testing.T) {
	workload := mixedWorkload()
	run(t, RoundRobin, 2, workload...)

	for _, p := range workload {
		assert.Equal(t, core.Unstarted, p.State)
		assert.Equal(t, p.BurstTime, p.RemainingTime)
	}
}

func TestRun_ReturnedScheduleIsACopy(t *testing.T) {
	schedule, s := run(t, FirstComeFirstServe, 0, proc("P1", 0, 2))
	schedule[0].End = 99

	assert.Equal(t, 2, s.Schedule()[0].End)
}

func TestRun_EmptyWorkload(t *testing.T) {
	schedule, s := run(t, RoundRobin, 2)

	assert.NotNil(t, schedule)
	assert.Empty(t, schedule)
	assert.Equal(t, Metrics{}, s.Metrics())
}

func TestMetrics_BeforeRun(t *testing.T) {
	s := New(testLogger())
	s.SetProcesses(mixedWorkload())

	assert.Equal(t, Metrics{}, s.Metrics())
}

func TestRun_Errors(t *testing.T) {
	tests := []struct {
		name      string
		algorithm Algorithm
		quantum   int
		processes []core.Process
		want      error
	}{
		{"unset algorithm", 0, 0, []core.Process{proc("P1", 0, 1)}, ErrInvalidAlgorithm},
		{"unknown algorithm", Algorithm(42), 0, []core.Process{proc("P1", 0, 1)}, ErrInvalidAlgorithm},
		{"missing quantum", RoundRobin, 0, []core.Process{proc("P1", 0, 1)}, ErrInvalidQuantum},
		{"negative quantum", RoundRobin, -2, []core.Process{proc("P1", 0, 1)}, ErrInvalidQuantum},
		{"zero burst", FirstComeFirstServe, 0, []core.Process{proc("P1", 0, 0)}, ErrInvalidProcess},
		{"negative burst", ShortestRemainingTimeFirst, 0, []core.Process{proc("P1", 0, -3)}, ErrInvalidProcess},
		{"negative arrival", Priority, 0, []core.Process{proc("P1", -1, 2)}, ErrInvalidProcess},
		{"duplicate id", ShortestJobFirst, 0, []core.Process{proc("P1", 0, 2), proc("P1", 1, 2)}, ErrInvalidProcess},
		{"empty id", PriorityPreemptive, 0, []core.Process{proc("", 0, 2)}, ErrInvalidProcess},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(testLogger())
			s.SetProcesses(tt.processes)
			s.SetAlgorithm(tt.algorithm, tt.quantum)

			schedule, err := s.Run()

			assert.ErrorIs(t, err, tt.want)
			assert.True(t, IsValidationError(err))
			assert.Nil(t, schedule)
			assert.Nil(t, s.Schedule())
		})
	}
}

func TestRun_FailureKeepsPreviousResults(t *testing.T) {
	schedule, s := run(t, FirstComeFirstServe, 0, mixedWorkload()...)
	metrics := s.Metrics()

	s.SetAlgorithm(RoundRobin, 0)
	_, err := s.Run()
	require.ErrorIs(t, err, ErrInvalidQuantum)

	assert.Equal(t, schedule, s.Schedule())
	assert.Equal(t, metrics, s.Metrics())
}

func TestScheduler_ConcurrentReadersSeeWholeRuns(t *testing.T) {
	s := New(testLogger())
	s.SetProcesses(mixedWorkload())
	s.SetAlgorithm(ShortestRemainingTimeFirst, 0)
	full, err := s.Run()
	require.NoError(t, err)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 50; i++ {
			_, _ = s.Run()
		}
	}()

	for r := 0; r < 4; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				assert.Equal(t, full, s.Schedule())
				for _, p := range s.Processes() {
					assert.True(t, p.Completed())
				}
			}
		}()
	}
	wg.Wait()
}
