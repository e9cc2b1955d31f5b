package requests

import "github.com/ankan123basu/CPUXpert/internal/core"

type Process struct {
	ProcessId   string `json:"process_id"`
	ArrivalTime int    `json:"arrival_time"`
	BurstTime   int    `json:"burst_time"`
	Priority    int    `json:"priority"`
}

type ScheduleRequest struct {
	Processes   []Process `json:"processes"`
	TimeQuantum int       `json:"time_quantum,omitempty"`
}

// ToProcesses converts the request into fresh, reset processes in input order.
func (r ScheduleRequest) ToProcesses() []core.Process {
	processes := make([]core.Process, 0, len(r.Processes))
	for _, p := range r.Processes {
		processes = append(processes, core.NewProcess(p.ProcessId, p.ArrivalTime, p.BurstTime, p.Priority))
	}
	return processes
}
