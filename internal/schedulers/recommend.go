package schedulers

import (
	"strings"

	"github.com/ankan123basu/CPUXpert/internal/core"
	"github.com/ankan123basu/CPUXpert/internal/responses"
	"github.com/ankan123basu/CPUXpert/internal/util"
)

type ArrivalPattern string

const (
	BulkArrival      ArrivalPattern = "Bulk"
	ScatteredArrival ArrivalPattern = "Scattered"
)

type BurstPattern string

const (
	UniformBurst BurstPattern = "Uniform"
	VariedBurst  BurstPattern = "Varied"
)

const (
	uniformVarianceLimit = 5
	shortBurstLimit      = 10
	manyProcesses        = 5
	maxScore             = 100
	pointsPerStar        = 20
)

// recommendationOrder breaks score ties: the earliest entry wins.
var recommendationOrder = []Algorithm{
	FirstComeFirstServe,
	ShortestJobFirst,
	Priority,
	RoundRobin,
	ShortestRemainingTimeFirst,
	PriorityPreemptive,
}

// Workload summarizes the statistics the recommendation is scored on.
type Workload struct {
	ProcessCount       int
	AverageBurstTime   float64
	AverageArrivalTime float64
	BurstVariance      float64
	ArrivalPattern     ArrivalPattern
	BurstPattern       BurstPattern
	HasPriority        bool
}

type Score struct {
	Algorithm Algorithm
	Points    int
}

// Recommendation is advisory; it never influences a simulation.
type Recommendation struct {
	Algorithm Algorithm
	Score     int // capped at 100
	Rating    int // stars, Score / 20
	Reasons   []string
	Benefits  []string
	Scores    []Score // every candidate, in tie-break order
	Workload  Workload
}

func AnalyzeWorkload(processes []core.Process) Workload {
	bursts := make([]int, 0, len(processes))
	arrivals := make([]int, 0, len(processes))
	w := Workload{
		ProcessCount:   len(processes),
		ArrivalPattern: BulkArrival,
		BurstPattern:   UniformBurst,
	}
	for _, p := range processes {
		bursts = append(bursts, p.BurstTime)
		arrivals = append(arrivals, p.ArrivalTime)
		if p.ArrivalTime != 0 {
			w.ArrivalPattern = ScatteredArrival
		}
		if p.Priority > 0 {
			w.HasPriority = true
		}
	}
	w.AverageBurstTime = util.Mean(bursts)
	w.AverageArrivalTime = util.Mean(arrivals)
	w.BurstVariance = util.Variance(bursts)
	if w.BurstVariance >= uniformVarianceLimit {
		w.BurstPattern = VariedBurst
	}
	return w
}

// Recommend scores every algorithm against the workload of processes.
func Recommend(processes []core.Process) (Recommendation, error) {
	if len(processes) == 0 {
		return Recommendation{}, ErrEmptyWorkload
	}
	return RecommendFor(AnalyzeWorkload(processes)), nil
}

// RecommendFor is a pure function of the workload statistics.
func RecommendFor(w Workload) Recommendation {
	points := make(map[Algorithm]int, len(recommendationOrder))
	var reasons []string
	award := func(reason string, awards map[Algorithm]int) {
		for a, n := range awards {
			points[a] += n
		}
		reasons = append(reasons, reason)
	}

	if w.ArrivalPattern == BulkArrival {
		award("FCFS works well for bulk arrivals", map[Algorithm]int{FirstComeFirstServe: 30})
	}
	if w.BurstPattern == UniformBurst {
		award("FCFS is fair when processes have similar burst times", map[Algorithm]int{FirstComeFirstServe: 20})
	}
	if w.BurstPattern == VariedBurst {
		award("SJF/SRTF optimal for varied burst times", map[Algorithm]int{ShortestJobFirst: 35, ShortestRemainingTimeFirst: 40})
	}
	if w.AverageBurstTime < shortBurstLimit {
		award("SJF efficient for short processes", map[Algorithm]int{ShortestJobFirst: 15})
	}
	if w.HasPriority {
		award("Priority-based scheduling optimal for prioritized workload", map[Algorithm]int{Priority: 35, PriorityPreemptive: 40})
	}
	if w.ArrivalPattern == ScatteredArrival {
		award("Round Robin ensures fairness for scattered arrivals", map[Algorithm]int{RoundRobin: 25})
	}
	if w.ProcessCount > manyProcesses {
		award("Round Robin good for many concurrent processes", map[Algorithm]int{RoundRobin: 15})
	}
	if w.ArrivalPattern == ScatteredArrival && w.BurstPattern == VariedBurst {
		award("Preemptive scheduling better for varied workloads", map[Algorithm]int{ShortestRemainingTimeFirst: 20, PriorityPreemptive: 20})
	}

	scores := make([]Score, 0, len(recommendationOrder))
	best := Score{Algorithm: recommendationOrder[0], Points: -1}
	for _, a := range recommendationOrder {
		score := Score{Algorithm: a, Points: points[a]}
		scores = append(scores, score)
		if score.Points > best.Points {
			best = score
		}
	}

	capped := min(best.Points, maxScore)
	return Recommendation{
		Algorithm: best.Algorithm,
		Score:     capped,
		Rating:    capped / pointsPerStar,
		Reasons:   reasons,
		Benefits:  benefits(best.Algorithm),
		Scores:    scores,
		Workload:  w,
	}
}

func benefits(a Algorithm) []string {
	name := a.String()
	var first, second string
	switch {
	case strings.Contains(name, "Priority"):
		first = "Optimal for priority-based execution"
	case strings.Contains(name, "SJF"):
		first = "Minimizes average waiting time"
	case a == RoundRobin:
		first = "Fair CPU distribution"
	default:
		first = "Simple and predictable execution"
	}
	switch {
	case strings.Contains(name, "Preemptive"):
		second = "Responsive to high-priority tasks"
	case a == FirstComeFirstServe:
		second = "No context switching overhead"
	default:
		second = "Balanced resource utilization"
	}
	return []string{first, second}
}

// Response renders the recommendation into its API shape.
func (r Recommendation) Response() responses.RecommendationResponse {
	scores := make([]responses.AlgorithmScore, 0, len(r.Scores))
	for _, s := range r.Scores {
		scores = append(scores, responses.AlgorithmScore{Algorithm: s.Algorithm.String(), Score: s.Points})
	}
	return responses.RecommendationResponse{
		Algorithm: r.Algorithm.String(),
		Score:     r.Score,
		Rating:    r.Rating,
		Reasons:   r.Reasons,
		Benefits:  r.Benefits,
		Scores:    scores,
		Workload: responses.WorkloadResponse{
			ProcessCount:       r.Workload.ProcessCount,
			AverageBurstTime:   r.Workload.AverageBurstTime,
			AverageArrivalTime: r.Workload.AverageArrivalTime,
			BurstVariance:      r.Workload.BurstVariance,
			ArrivalPattern:     string(r.Workload.ArrivalPattern),
			BurstPattern:       string(r.Workload.BurstPattern),
			HasPriority:        r.Workload.HasPriority,
		},
	}
}
