package responses

import (
	"time"

	"github.com/ankan123basu/CPUXpert/internal/requests"
)

type SlotResponse struct {
	ProcessId string `json:"process_id"`
	Start     int    `json:"start"`
	End       int    `json:"end"`
}

type ProcessResponse struct {
	ProcessId      string  `json:"process_id"`
	State          string  `json:"state"`
	ArrivalTime    int     `json:"arrival_time"`
	BurstTime      int     `json:"burst_time"`
	Priority       int     `json:"priority"`
	RemainingTime  int     `json:"remaining_time"`
	StartTime      *int    `json:"start_time"`
	CompletionTime *int    `json:"completion_time"`
	ResponseTime   float64 `json:"response_time"`
	TurnAroundTime float64 `json:"turn_around_time"`
	WaitingTime    float64 `json:"waiting_time"`
}

type ScheduleResponse struct {
	RunId                 string            `json:"run_id,omitempty"`
	Algorithm             string            `json:"algorithm"`
	TimeQuantum           int               `json:"time_quantum,omitempty"`
	TotalTime             float64           `json:"total_time"`
	IdleTime              float64           `json:"idle_time"`
	AverageWaitingTime    float64           `json:"average_waiting_time"`
	AverageResponseTime   float64           `json:"average_response_time"`
	AverageTurnAroundTime float64           `json:"average_turn_around_time"`
	CpuUtilization        float64           `json:"cpu_utilization"`
	CpuThroughput         float64           `json:"cpu_throughput"`
	Timeline              []SlotResponse    `json:"timeline"`
	Details               []ProcessResponse `json:"details"`
}

type AlgorithmScore struct {
	Algorithm string `json:"algorithm"`
	Score     int    `json:"score"`
}

type WorkloadResponse struct {
	ProcessCount       int     `json:"process_count"`
	AverageBurstTime   float64 `json:"average_burst_time"`
	AverageArrivalTime float64 `json:"average_arrival_time"`
	BurstVariance      float64 `json:"burst_variance"`
	ArrivalPattern     string  `json:"arrival_pattern"`
	BurstPattern       string  `json:"burst_pattern"`
	HasPriority        bool    `json:"has_priority"`
}

type RecommendationResponse struct {
	Algorithm string           `json:"algorithm"`
	Score     int              `json:"score"`
	Rating    int              `json:"rating"`
	Reasons   []string         `json:"reasons"`
	Benefits  []string         `json:"benefits"`
	Scores    []AlgorithmScore `json:"scores"`
	Workload  WorkloadResponse `json:"workload"`
}

type CompareResponse struct {
	Results        []ScheduleResponse      `json:"results"`
	Recommendation *RecommendationResponse `json:"recommendation,omitempty"`
}

type RunResponse struct {
	RunId       string                   `json:"run_id"`
	Algorithm   string                   `json:"algorithm"`
	TimeQuantum int                      `json:"time_quantum,omitempty"`
	CreatedAt   time.Time                `json:"created_at"`
	Request     requests.ScheduleRequest `json:"request"`
	Result      ScheduleResponse         `json:"result"`
}
