package requests

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ankan123basu/CPUXpert/internal/core"
)

func TestScheduleRequest_ToProcesses(t *testing.T) {
	req := ScheduleRequest{Processes: []Process{
		{ProcessId: "P2", ArrivalTime: 3, BurstTime: 2, Priority: 1},
		{ProcessId: "P1", ArrivalTime: 0, BurstTime: 5},
	}}

	processes := req.ToProcesses()

	assert.Len(t, processes, 2)
	assert.Equal(t, "P2", processes[0].ID)
	assert.Equal(t, 2, processes[0].RemainingTime)
	assert.Equal(t, 1, processes[0].Priority)
	assert.Equal(t, core.Unstarted, processes[1].State)
}
