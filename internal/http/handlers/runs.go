package handlers

import (
	"context"
	"errors"
	"time"

	"github.com/geocoder89/runtrack/internal/config"
	"github.com/geocoder89/runtrack/internal/domain/run"
	"github.com/gin-gonic/gin"
)

type RunStore interface {
	Create(ctx context.Context, rn run.Run) (run.Run, error)
	GetByID(ctx context.Context, id int64) (run.Run, error)
	Update(ctx context.Context, rn run.Run) (run.Run, error)
	SoftDelete(ctx context.Context, id int64) error
	Restore(ctx context.Context, id int64) error
	List(ctx context.Context) ([]run.Run, error)
	ListByUser(ctx context.Context, userID int64) ([]run.Run, error)
	ListDeletedByUser(ctx context.Context, userID int64) ([]run.Run, error)
	ListRecentByUser(ctx context.Context, userID int64) ([]run.Run, error)
}

type RunsHandler struct {
	store RunStore
}

func NewRunsHandler(store RunStore) *RunsHandler {
	return &RunsHandler{store: store}
}

const runFieldsRequiredMessage = "Run date, distance, and duration are required"

func (h *RunsHandler) ListRuns(ctx *gin.Context) {
	cctx, cancel := config.WithTimeout(3 * time.Second)
	defer cancel()

	runs, err := h.store.List(cctx)

	if err != nil {
		RespondInternal(ctx, "Could not list runs")
		return
	}

	RespondOK(ctx, "All runs retrieved", runs)
}

func (h *RunsHandler) GetRunByID(ctx *gin.Context) {
	id, ok := PathID(ctx, "id")
	if !ok {
		return
	}

	cctx, cancel := config.WithTimeout(3 * time.Second)
	defer cancel()

	rn, err := h.store.GetByID(cctx, id)

	if err != nil {
		if errors.Is(err, run.ErrNotFound) {
			RespondNotFound(ctx, "Run not found")
			return
		}

		RespondInternal(ctx, "Could not fetch run")
		return
	}

	RespondOK(ctx, "Run retrieved", rn)
}

func (h *RunsHandler) CreateRun(ctx *gin.Context) {
	var req run.CreateRunRequest

	if !BindJSON(ctx, &req) {
		return
	}

	// required fields are checked before any statement runs
	if err := req.Validate(); err != nil {
		RespondBadRequest(ctx, runFieldsRequiredMessage)
		return
	}

	cctx, cancel := config.WithTimeout(3 * time.Second)
	defer cancel()

	created, err := h.store.Create(cctx, runFromRequest(0, req))

	if err != nil {
		RespondInternal(ctx, "Could not create run")
		return
	}

	RespondOK(ctx, "Run added successfully", created)
}

func (h *RunsHandler) UpdateRun(ctx *gin.Context) {
	id, ok := PathID(ctx, "id")
	if !ok {
		return
	}

	var req run.UpdateRunRequest

	if !BindJSON(ctx, &req) {
		return
	}

	if err := req.Validate(); err != nil {
		RespondBadRequest(ctx, runFieldsRequiredMessage)
		return
	}

	cctx, cancel := config.WithTimeout(3 * time.Second)
	defer cancel()

	updated, err := h.store.Update(cctx, runFromRequest(id, req))

	if err != nil {
		if errors.Is(err, run.ErrNotFound) {
			RespondNotFound(ctx, "Run not found")
			return
		}

		RespondInternal(ctx, "Could not update run")
		return
	}

	RespondOK(ctx, "Run updated successfully", updated)
}

func (h *RunsHandler) DeleteRun(ctx *gin.Context) {
	id, ok := PathID(ctx, "id")
	if !ok {
		return
	}

	cctx, cancel := config.WithTimeout(3 * time.Second)
	defer cancel()

	err := h.store.SoftDelete(cctx, id)

	if err != nil {
		if errors.Is(err, run.ErrNotFound) {
			RespondNotFound(ctx, "Run not found or already deleted")
			return
		}

		RespondInternal(ctx, "Could not delete run")
		return
	}

	RespondOK(ctx, "Run deleted successfully", nil)
}

func (h *RunsHandler) RestoreRun(ctx *gin.Context) {
	id, ok := PathID(ctx, "id")
	if !ok {
		return
	}

	cctx, cancel := config.WithTimeout(3 * time.Second)
	defer cancel()

	err := h.store.Restore(cctx, id)

	if err != nil {
		if errors.Is(err, run.ErrNotFound) {
			RespondNotFound(ctx, "Run not found or not deleted")
			return
		}

		RespondInternal(ctx, "Could not restore run")
		return
	}

	restored, err := h.store.GetByID(cctx, id)

	if err != nil {
		RespondInternal(ctx, "Could not restore run")
		return
	}

	RespondOK(ctx, "Run restored successfully", restored)
}

func (h *RunsHandler) ListRunsByUser(ctx *gin.Context) {
	h.listForUser(ctx, "Runs for user retrieved", h.store.ListByUser)
}

func (h *RunsHandler) ListDeletedRunsByUser(ctx *gin.Context) {
	h.listForUser(ctx, "Deleted runs retrieved", h.store.ListDeletedByUser)
}

func (h *RunsHandler) ListRecentRunsByUser(ctx *gin.Context) {
	h.listForUser(ctx, "Recent runs retrieved", h.store.ListRecentByUser)
}

func (h *RunsHandler) listForUser(ctx *gin.Context, message string, list func(context.Context, int64) ([]run.Run, error)) {
	userID, ok := PathID(ctx, "id")
	if !ok {
		return
	}

	cctx, cancel := config.WithTimeout(3 * time.Second)
	defer cancel()

	runs, err := list(cctx, userID)

	if err != nil {
		RespondInternal(ctx, "Could not list runs")
		return
	}

	RespondOK(ctx, message, runs)
}

// runFromRequest trusts the user id supplied in the body; the store does not
// cross-check it against the authenticated caller.
func runFromRequest(id int64, req run.CreateRunRequest) run.Run {
	return run.Run{
		ID:       id,
		UserID:   req.UserID,
		Date:     *req.Date,
		Distance: *req.Distance,
		Duration: *req.Duration,
		Speed:    req.DeriveSpeed(),
		Unit:     defaultUnit(req.Unit),
		Notes:    req.Notes,
	}
}
