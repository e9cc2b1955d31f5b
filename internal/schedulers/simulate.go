package schedulers

import (
	"log/slog"

	"github.com/ankan123basu/CPUXpert/internal/requests"
	"github.com/ankan123basu/CPUXpert/internal/responses"
)

// Simulate runs one algorithm over the request's processes on a fresh
// Scheduler.
func Simulate(request requests.ScheduleRequest, algorithm Algorithm, timeQuantum int, logger *slog.Logger) (responses.ScheduleResponse, error) {
	s := New(logger)
	s.SetProcesses(request.ToProcesses())
	s.SetAlgorithm(algorithm, timeQuantum)
	schedule, err := s.Run()
	if err != nil {
		return responses.ScheduleResponse{}, err
	}
	return GenerateResponse(algorithm, timeQuantum, schedule, s.Processes(), s.Metrics()), nil
}

// CompareAll runs every algorithm over the same processes and attaches a
// recommendation when the workload is not empty.
func CompareAll(request requests.ScheduleRequest, timeQuantum int, logger *slog.Logger) (responses.CompareResponse, error) {
	var compare responses.CompareResponse
	for _, algorithm := range Algorithms() {
		response, err := Simulate(request, algorithm, timeQuantum, logger)
		if err != nil {
			return responses.CompareResponse{}, err
		}
		compare.Results = append(compare.Results, response)
	}
	if len(request.Processes) > 0 {
		recommendation := RecommendFor(AnalyzeWorkload(request.ToProcesses())).Response()
		compare.Recommendation = &recommendation
	}
	return compare, nil
}
