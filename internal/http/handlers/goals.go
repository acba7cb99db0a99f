package handlers

import (
	"context"
	"errors"
	"time"

	"github.com/geocoder89/runtrack/internal/config"
	"github.com/geocoder89/runtrack/internal/domain/goal"
	"github.com/gin-gonic/gin"
)

type GoalStore interface {
	Create(ctx context.Context, g goal.Goal) (goal.Goal, error)
	GetByID(ctx context.Context, id int64) (goal.Goal, error)
	Update(ctx context.Context, g goal.Goal) (goal.Goal, error)
	SoftDelete(ctx context.Context, id int64) error
	Restore(ctx context.Context, id int64) error
	List(ctx context.Context) ([]goal.Goal, error)
	ListByUser(ctx context.Context, userID int64) ([]goal.Goal, error)
	ListDeletedByUser(ctx context.Context, userID int64) ([]goal.Goal, error)
}

type GoalsHandler struct {
	store GoalStore
}

func NewGoalsHandler(store GoalStore) *GoalsHandler {
	return &GoalsHandler{store: store}
}

func goalValidationMessage(err error) string {
	switch {
	case errors.Is(err, goal.ErrTargetRequired):
		return "Either goal distance or frequency must be provided."
	case errors.Is(err, goal.ErrNameRequired):
		return "Goal name is required."
	case errors.Is(err, goal.ErrNoTarget):
		return "At least one of distance or frequency must be specified."
	default:
		return "Invalid goal"
	}
}

func (h *GoalsHandler) ListGoals(ctx *gin.Context) {
	cctx, cancel := config.WithTimeout(3 * time.Second)
	defer cancel()

	goals, err := h.store.List(cctx)

	if err != nil {
		RespondInternal(ctx, "Could not list goals")
		return
	}

	RespondOK(ctx, "All goals retrieved", goals)
}

func (h *GoalsHandler) GetGoalByID(ctx *gin.Context) {
	id, ok := PathID(ctx, "id")
	if !ok {
		return
	}

	cctx, cancel := config.WithTimeout(3 * time.Second)
	defer cancel()

	g, err := h.store.GetByID(cctx, id)

	if err != nil {
		if errors.Is(err, goal.ErrNotFound) {
			RespondNotFound(ctx, "Goal not found")
			return
		}

		RespondInternal(ctx, "Could not fetch goal")
		return
	}

	RespondOK(ctx, "Goal retrieved", g)
}

func (h *GoalsHandler) CreateGoal(ctx *gin.Context) {
	var req goal.CreateGoalRequest

	if !BindJSON(ctx, &req) {
		return
	}

	if err := req.Validate(); err != nil {
		RespondBadRequest(ctx, goalValidationMessage(err))
		return
	}

	cctx, cancel := config.WithTimeout(3 * time.Second)
	defer cancel()

	created, err := h.store.Create(cctx, goal.Goal{
		UserID:     req.UserID,
		Name:       req.Name,
		Distance:   req.Distance,
		Frequency:  req.Frequency,
		TargetDate: req.TargetDate,
		Unit:       defaultUnit(req.Unit),
	})

	if err != nil {
		RespondInternal(ctx, "Could not create goal")
		return
	}

	RespondOK(ctx, "Goal created successfully", created)
}

func (h *GoalsHandler) UpdateGoal(ctx *gin.Context) {
	id, ok := PathID(ctx, "id")
	if !ok {
		return
	}

	var req goal.UpdateGoalRequest

	if !BindJSON(ctx, &req) {
		return
	}

	if err := req.Validate(); err != nil {
		RespondBadRequest(ctx, goalValidationMessage(err))
		return
	}

	cctx, cancel := config.WithTimeout(3 * time.Second)
	defer cancel()

	updated, err := h.store.Update(cctx, goal.Goal{
		ID:         id,
		Name:       req.Name,
		Distance:   req.Distance,
		Frequency:  req.Frequency,
		TargetDate: req.TargetDate,
		Unit:       defaultUnit(req.Unit),
	})

	if err != nil {
		if errors.Is(err, goal.ErrNotFound) {
			RespondNotFound(ctx, "Goal not found or not updated")
			return
		}

		RespondInternal(ctx, "Could not update goal")
		return
	}

	RespondOK(ctx, "Goal updated successfully", updated)
}

func (h *GoalsHandler) DeleteGoal(ctx *gin.Context) {
	id, ok := PathID(ctx, "id")
	if !ok {
		return
	}

	cctx, cancel := config.WithTimeout(3 * time.Second)
	defer cancel()

	err := h.store.SoftDelete(cctx, id)

	if err != nil {
		if errors.Is(err, goal.ErrNotFound) {
			RespondNotFound(ctx, "Goal not found or already deleted")
			return
		}

		RespondInternal(ctx, "Could not delete goal")
		return
	}

	RespondOK(ctx, "Goal deleted successfully", nil)
}

func (h *GoalsHandler) RestoreGoal(ctx *gin.Context) {
	id, ok := PathID(ctx, "id")
	if !ok {
		return
	}

	cctx, cancel := config.WithTimeout(3 * time.Second)
	defer cancel()

	err := h.store.Restore(cctx, id)

	if err != nil {
		if errors.Is(err, goal.ErrNotFound) {
			RespondNotFound(ctx, "Goal not found or not deleted")
			return
		}

		RespondInternal(ctx, "Could not restore goal")
		return
	}

	restored, err := h.store.GetByID(cctx, id)

	if err != nil {
		RespondInternal(ctx, "Could not restore goal")
		return
	}

	RespondOK(ctx, "Goal restored successfully", restored)
}

func (h *GoalsHandler) ListGoalsByUser(ctx *gin.Context) {
	h.listForUser(ctx, "Goals retrieved for user", h.store.ListByUser)
}

func (h *GoalsHandler) ListDeletedGoalsByUser(ctx *gin.Context) {
	h.listForUser(ctx, "Deleted goals retrieved", h.store.ListDeletedByUser)
}

func (h *GoalsHandler) listForUser(ctx *gin.Context, message string, list func(context.Context, int64) ([]goal.Goal, error)) {
	userID, ok := PathID(ctx, "id")
	if !ok {
		return
	}

	cctx, cancel := config.WithTimeout(3 * time.Second)
	defer cancel()

	goals, err := list(cctx, userID)

	if err != nil {
		RespondInternal(ctx, "Could not list goals")
		return
	}

	RespondOK(ctx, message, goals)
}
