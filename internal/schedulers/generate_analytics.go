package schedulers

import (
	"github.com/ankan123basu/CPUXpert/internal/core"
	"github.com/ankan123basu/CPUXpert/internal/responses"
	"github.com/ankan123basu/CPUXpert/internal/util"
)

// Metrics aggregates a finished run. Averages cover completed processes only.
type Metrics struct {
	AverageTurnaroundTime float64
	AverageWaitingTime    float64
	AverageResponseTime   float64
	CpuUtilization        float64 // percent of the makespan the CPU was busy

	Makespan   int
	IdleTime   int
	Throughput float64 // completed processes per time unit
}

func computeMetrics(processes []*core.Process, schedule core.Schedule) Metrics {
	if len(processes) == 0 || len(schedule) == 0 {
		return Metrics{}
	}

	var turnaround, waiting, response []int
	makespan, totalBurst := 0, 0
	for _, p := range processes {
		totalBurst += p.BurstTime
		if !p.Completed() {
			continue
		}
		turnaround = append(turnaround, p.TurnaroundTime())
		waiting = append(waiting, p.WaitingTime())
		response = append(response, p.ResponseTime())
		makespan = max(makespan, p.CompletionTime)
	}
	if len(turnaround) == 0 {
		return Metrics{}
	}

	m := Metrics{
		AverageTurnaroundTime: util.Mean(turnaround),
		AverageWaitingTime:    util.Mean(waiting),
		AverageResponseTime:   util.Mean(response),
		CpuUtilization:        util.Percent(totalBurst, makespan),
		Makespan:              makespan,
		IdleTime:              max(0, makespan-schedule.BusyTime()),
	}
	if makespan > 0 {
		m.Throughput = float64(len(turnaround)) / float64(makespan)
	}
	return m
}

// GenerateResponse renders a finished run into its API shape.
func GenerateResponse(algorithm Algorithm, timeQuantum int, schedule core.Schedule, processes []core.Process, metrics Metrics) responses.ScheduleResponse {
	response := responses.ScheduleResponse{
		Algorithm:             algorithm.String(),
		TotalTime:             float64(metrics.Makespan),
		IdleTime:              float64(metrics.IdleTime),
		AverageWaitingTime:    metrics.AverageWaitingTime,
		AverageResponseTime:   metrics.AverageResponseTime,
		AverageTurnAroundTime: metrics.AverageTurnaroundTime,
		CpuUtilization:        metrics.CpuUtilization,
		CpuThroughput:         metrics.Throughput,
		Timeline:              make([]responses.SlotResponse, 0, len(schedule)),
		Details:               make([]responses.ProcessResponse, 0, len(processes)),
	}
	if algorithm == RoundRobin {
		response.TimeQuantum = timeQuantum
	}
	for _, slot := range schedule {
		response.Timeline = append(response.Timeline, responses.SlotResponse{
			ProcessId: slot.ProcessID,
			Start:     slot.Start,
			End:       slot.End,
		})
	}
	for _, p := range processes {
		response.Details = append(response.Details, generateProcessDetails(p))
	}
	return response
}

func generateProcessDetails(process core.Process) responses.ProcessResponse {
	details := responses.ProcessResponse{
		ProcessId:      process.ID,
		State:          process.State.String(),
		ArrivalTime:    process.ArrivalTime,
		BurstTime:      process.BurstTime,
		Priority:       process.Priority,
		RemainingTime:  process.RemainingTime,
		ResponseTime:   float64(process.ResponseTime()),
		TurnAroundTime: float64(process.TurnaroundTime()),
		WaitingTime:    float64(process.WaitingTime()),
	}
	if process.Started() {
		start := process.StartTime
		details.StartTime = &start
	}
	if process.Completed() {
		completion := process.CompletionTime
		details.CompletionTime = &completion
	}
	return details
}
