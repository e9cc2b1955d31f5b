package store

import (
	"context"
	"errors"
	"time"

	"github.com/ankan123basu/CPUXpert/internal/requests"
	"github.com/ankan123basu/CPUXpert/internal/responses"
)

var ErrNotFound = errors.New("run not found")

// Run is one persisted simulation: the submitted workload and its result.
type Run struct {
	ID          string
	Algorithm   string
	TimeQuantum int
	Request     requests.ScheduleRequest
	Response    responses.ScheduleResponse
	CreatedAt   time.Time
}

// Store persists simulation runs.
type Store interface {
	SaveRun(ctx context.Context, run *Run) error
	GetRun(ctx context.Context, id string) (*Run, error)
	ListRuns(ctx context.Context, limit int) ([]*Run, error)
	Close() error
}
