package schedulers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ankan123basu/CPUXpert/internal/requests"
)

func twoProcessRequest() requests.ScheduleRequest {
	return requests.ScheduleRequest{Processes: []requests.Process{
		{ProcessId: "P1", ArrivalTime: 0, BurstTime: 5},
		{ProcessId: "P2", ArrivalTime: 2, BurstTime: 3},
	}}
}

func TestSimulate_BuildsResponse(t *testing.T) {
	resp, err := Simulate(twoProcessRequest(), RoundRobin, 2, testLogger())
	require.NoError(t, err)

	assert.Equal(t, "Round Robin", resp.Algorithm)
	assert.Equal(t, 2, resp.TimeQuantum)
	assert.Equal(t, 8.0, resp.TotalTime)
	assert.Zero(t, resp.IdleTime)
	assert.Len(t, resp.Timeline, 5)
	require.Len(t, resp.Details, 2)

	p2 := resp.Details[1]
	assert.Equal(t, "P2", p2.ProcessId)
	assert.Equal(t, "Completed", p2.State)
	require.NotNil(t, p2.StartTime)
	require.NotNil(t, p2.CompletionTime)
	assert.Equal(t, 2, *p2.StartTime)
	assert.Equal(t, 7, *p2.CompletionTime)
	assert.Equal(t, 5.0, p2.TurnAroundTime)
	assert.Equal(t, 2.0, p2.WaitingTime)
}

func TestSimulate_OmitsQuantumForOtherAlgorithms(t *testing.T) {
	resp, err := Simulate(twoProcessRequest(), FirstComeFirstServe, 4, testLogger())
	require.NoError(t, err)

	assert.Zero(t, resp.TimeQuantum)
	assert.InDelta(t, 5.5, resp.AverageTurnAroundTime, 1e-9)
	assert.InDelta(t, 100.0, resp.CpuUtilization, 1e-9)
	assert.InDelta(t, 0.25, resp.CpuThroughput, 1e-9)
}

func TestSimulate_PropagatesValidationErrors(t *testing.T) {
	req := twoProcessRequest()
	req.Processes[0].BurstTime = 0

	_, err := Simulate(req, ShortestJobFirst, 0, testLogger())

	assert.ErrorIs(t, err, ErrInvalidProcess)
}

func TestCompareAll(t *testing.T) {
	compare, err := CompareAll(twoProcessRequest(), 2, testLogger())
	require.NoError(t, err)

	require.Len(t, compare.Results, len(Algorithms()))
	for i, a := range Algorithms() {
		assert.Equal(t, a.String(), compare.Results[i].Algorithm)
	}
	require.NotNil(t, compare.Recommendation)
}

func TestCompareAll_EmptyWorkload(t *testing.T) {
	compare, err := CompareAll(requests.ScheduleRequest{}, 2, testLogger())
	require.NoError(t, err)

	assert.Len(t, compare.Results, len(Algorithms()))
	assert.Nil(t, compare.Recommendation)
	assert.Empty(t, compare.Results[0].Timeline)
}
