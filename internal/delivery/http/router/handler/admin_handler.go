package handler

import (
	"context"
	"log/slog"
	"net/http"

	"foodlink/internal/delivery/http/response"
	"foodlink/internal/delivery/scheduler"
	"foodlink/internal/errors"
	"foodlink/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// JobGuard runs on-demand work under the same exclusion as the scheduled job it replaces.
type JobGuard interface {
	RunExclusive(ctx context.Context, name string, fn func(ctx context.Context) error) error
}

// AdminHandlerParams holds dependencies for AdminHandler, injected by Fx.
type AdminHandlerParams struct {
	fx.In

	ReliabilityUC  usecase.ReliabilityUsecase
	ReassignmentUC usecase.ReassignmentUsecase
	Jobs           JobGuard
	Logger         *slog.Logger
}

// AdminHandler lets operators run the periodic jobs on demand
type AdminHandler struct {
	reliabilityUC  usecase.ReliabilityUsecase
	reassignmentUC usecase.ReassignmentUsecase
	jobs           JobGuard
	logger         *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler
func NewAdminHandler(params AdminHandlerParams) *AdminHandler {
	return &AdminHandler{
		reliabilityUC:  params.ReliabilityUC,
		reassignmentUC: params.ReassignmentUC,
		jobs:           params.Jobs,
		logger:         params.Logger,
	}
}

// RecalculateReliabilityRequest optionally narrows the recalculation to one organization
type RecalculateReliabilityRequest struct {
	OrganizationID string `json:"organization_id"`
}

// RecalculateReliabilityResponse reports how many scores were written
type RecalculateReliabilityResponse struct {
	Updated int `json:"updated"`
}

// RecalculateReliability recomputes reliability for one organization or all active ones
func (h *AdminHandler) RecalculateReliability(c echo.Context) error {
	var req RecalculateReliabilityRequest
	if err := bindOptional(c, &req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid recalculation input")
	}

	// Echo only binds query parameters for GET and DELETE.
	if req.OrganizationID == "" {
		req.OrganizationID = c.QueryParam("organization_id")
	}

	var organizationID *uuid.UUID
	if req.OrganizationID != "" {
		id, err := uuid.Parse(req.OrganizationID)
		if err != nil {
			return response.BadRequest(c, "INVALID_ID", "Invalid organization ID")
		}
		organizationID = &id
	}

	updated, err := h.reliabilityUC.RecalculateReliability(c.Request().Context(), organizationID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, &RecalculateReliabilityResponse{Updated: updated})
}

// RunReassignmentSweep runs one stale-acceptance sweep immediately
func (h *AdminHandler) RunReassignmentSweep(c echo.Context) error {
	return h.runSweep(c, scheduler.JobReassignmentSweep, h.reassignmentUC.RunReassignmentSweep)
}

// RunExpirySweep expires overdue available donations immediately
func (h *AdminHandler) RunExpirySweep(c echo.Context) error {
	return h.runSweep(c, scheduler.JobExpirySweep, h.reassignmentUC.RunExpirySweep)
}

func (h *AdminHandler) runSweep(c echo.Context, job string, sweep func(ctx context.Context) (*usecase.SweepResult, error)) error {
	var result *usecase.SweepResult
	err := h.jobs.RunExclusive(c.Request().Context(), job, func(ctx context.Context) error {
		var err error
		result, err = sweep(ctx)

		return err
	})
	if errors.Is(err, scheduler.ErrJobBusy) {
		h.logger.Info("Sweep requested while already running", slog.String("job", job))

		return response.Error(c, http.StatusConflict, "SWEEP_IN_PROGRESS", "The sweep is already running", nil)
	}
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}
