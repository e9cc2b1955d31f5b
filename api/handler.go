package api

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/ankan123basu/CPUXpert/config"
	"github.com/ankan123basu/CPUXpert/internal/requests"
	"github.com/ankan123basu/CPUXpert/internal/responses"
	"github.com/ankan123basu/CPUXpert/internal/schedulers"
	"github.com/ankan123basu/CPUXpert/internal/store"
)

type SchedulerHandler interface {
	FirstComeFirstServe(ctx *fiber.Ctx) error
	ShortestJobFirst(ctx *fiber.Ctx) error
	ShortestRemainingTimeFirst(ctx *fiber.Ctx) error
	Priority(ctx *fiber.Ctx) error
	PriorityPreemptive(ctx *fiber.Ctx) error
	RoundRobin(ctx *fiber.Ctx) error
	ScheduleByName(ctx *fiber.Ctx) error
	AllAlgorithms(ctx *fiber.Ctx) error
	Suggest(ctx *fiber.Ctx) error
	GetRun(ctx *fiber.Ctx) error
	ListRuns(ctx *fiber.Ctx) error
}

type SchedulerHandlerImpl struct {
	config *config.SchedulerConfig
	store  store.Store
	logger *slog.Logger
}

func NewSchedulerHandlerImpl(config *config.SchedulerConfig, store store.Store, logger *slog.Logger) *SchedulerHandlerImpl {
	return &SchedulerHandlerImpl{
		config: config,
		store:  store,
		logger: logger.With("component", "api"),
	}
}

func (s *SchedulerHandlerImpl) FirstComeFirstServe(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.FirstComeFirstServe)
}

func (s *SchedulerHandlerImpl) ShortestJobFirst(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.ShortestJobFirst)
}

func (s *SchedulerHandlerImpl) ShortestRemainingTimeFirst(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.ShortestRemainingTimeFirst)
}

func (s *SchedulerHandlerImpl) Priority(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.Priority)
}

func (s *SchedulerHandlerImpl) PriorityPreemptive(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.PriorityPreemptive)
}

func (s *SchedulerHandlerImpl) RoundRobin(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.RoundRobin)
}

func (s *SchedulerHandlerImpl) ScheduleByName(ctx *fiber.Ctx) error {
	algorithm, err := schedulers.ParseAlgorithm(ctx.Params("algorithm"))
	if err != nil {
		return s.fail(ctx, err)
	}
	return s.schedule(ctx, algorithm)
}

func (s *SchedulerHandlerImpl) AllAlgorithms(ctx *fiber.Ctx) error {
	request, ok := s.parse(ctx)
	if !ok {
		return nil
	}
	compare, err := schedulers.CompareAll(request, s.timeQuantum(request), s.logger)
	if err != nil {
		return s.fail(ctx, err)
	}
	for i := range compare.Results {
		if err := s.save(ctx, request, &compare.Results[i]); err != nil {
			return s.fail(ctx, err)
		}
	}
	return ctx.JSON(compare)
}

func (s *SchedulerHandlerImpl) Suggest(ctx *fiber.Ctx) error {
	request, ok := s.parse(ctx)
	if !ok {
		return nil
	}
	recommendation, err := schedulers.Recommend(request.ToProcesses())
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(recommendation.Response())
}

func (s *SchedulerHandlerImpl) GetRun(ctx *fiber.Ctx) error {
	run, err := s.store.GetRun(ctx.UserContext(), ctx.Params("id"))
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(runResponse(run))
}

func (s *SchedulerHandlerImpl) ListRuns(ctx *fiber.Ctx) error {
	runs, err := s.store.ListRuns(ctx.UserContext(), ctx.QueryInt("limit", 20))
	if err != nil {
		return s.fail(ctx, err)
	}
	out := make([]responses.RunResponse, 0, len(runs))
	for _, run := range runs {
		out = append(out, runResponse(run))
	}
	return ctx.JSON(out)
}

func (s *SchedulerHandlerImpl) schedule(ctx *fiber.Ctx, algorithm schedulers.Algorithm) error {
	request, ok := s.parse(ctx)
	if !ok {
		return nil
	}
	response, err := schedulers.Simulate(request, algorithm, s.timeQuantum(request), s.logger)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err := s.save(ctx, request, &response); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(response)
}

// parse writes the 400 itself and reports whether handling should continue.
func (s *SchedulerHandlerImpl) parse(ctx *fiber.Ctx) (requests.ScheduleRequest, bool) {
	var request requests.ScheduleRequest
	if err := ctx.BodyParser(&request); err != nil {
		s.logger.Warn("invalid request body", "path", ctx.Path(), "error", err)
		_ = ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request format",
		})
		return request, false
	}
	return request, true
}

// timeQuantum falls back to the configured default when the request has none.
func (s *SchedulerHandlerImpl) timeQuantum(request requests.ScheduleRequest) int {
	if request.TimeQuantum == 0 {
		return s.config.RoundRobinTimeQuantum
	}
	return request.TimeQuantum
}

func (s *SchedulerHandlerImpl) save(ctx *fiber.Ctx, request requests.ScheduleRequest, response *responses.ScheduleResponse) error {
	response.RunId = uuid.NewString()
	return s.store.SaveRun(ctx.UserContext(), &store.Run{
		ID:          response.RunId,
		Algorithm:   response.Algorithm,
		TimeQuantum: response.TimeQuantum,
		Request:     request,
		Response:    *response,
	})
}

func (s *SchedulerHandlerImpl) fail(ctx *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case schedulers.IsValidationError(err):
		status = fiber.StatusBadRequest
	case errors.Is(err, store.ErrNotFound):
		status = fiber.StatusNotFound
	}
	if status == fiber.StatusInternalServerError {
		s.logger.Error("request failed", "path", ctx.Path(), "error", err)
	} else {
		s.logger.Warn("request rejected", "path", ctx.Path(), "status", status, "error", err)
	}
	return ctx.Status(status).JSON(fiber.Map{"error": err.Error()})
}

func runResponse(run *store.Run) responses.RunResponse {
	return responses.RunResponse{
		RunId:       run.ID,
		Algorithm:   run.Algorithm,
		TimeQuantum: run.TimeQuantum,
		CreatedAt:   run.CreatedAt,
		Request:     run.Request,
		Result:      run.Response,
	}
}
