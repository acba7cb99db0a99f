package handlers

import (
	"context"
	"errors"
	"time"

	"github.com/geocoder89/runtrack/internal/config"
	"github.com/geocoder89/runtrack/internal/domain/goaltype"
	"github.com/gin-gonic/gin"
)

type GoalTypeStore interface {
	Create(ctx context.Context, gt goaltype.GoalType) (goaltype.GoalType, error)
	GetByID(ctx context.Context, id int64) (goaltype.GoalType, error)
	Update(ctx context.Context, gt goaltype.GoalType) (goaltype.GoalType, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]goaltype.GoalType, error)
}

// Goal types are shared templates: no owner, no soft delete.
type GoalTypesHandler struct {
	store GoalTypeStore
}

func NewGoalTypesHandler(store GoalTypeStore) *GoalTypesHandler {
	return &GoalTypesHandler{store: store}
}

func (h *GoalTypesHandler) ListGoalTypes(ctx *gin.Context) {
	cctx, cancel := config.WithTimeout(3 * time.Second)
	defer cancel()

	goalTypes, err := h.store.List(cctx)

	if err != nil {
		RespondInternal(ctx, "Could not list goal types")
		return
	}

	RespondOK(ctx, "All goal types retrieved", goalTypes)
}

func (h *GoalTypesHandler) GetGoalTypeByID(ctx *gin.Context) {
	id, ok := PathID(ctx, "id")
	if !ok {
		return
	}

	cctx, cancel := config.WithTimeout(3 * time.Second)
	defer cancel()

	gt, err := h.store.GetByID(cctx, id)

	if err != nil {
		if errors.Is(err, goaltype.ErrNotFound) {
			RespondNotFound(ctx, "Goal type not found")
			return
		}

		RespondInternal(ctx, "Could not fetch goal type")
		return
	}

	RespondOK(ctx, "Goal type retrieved", gt)
}

func (h *GoalTypesHandler) CreateGoalType(ctx *gin.Context) {
	var req goaltype.CreateGoalTypeRequest

	if !BindJSON(ctx, &req) {
		return
	}

	cctx, cancel := config.WithTimeout(3 * time.Second)
	defer cancel()

	created, err := h.store.Create(cctx, goaltype.GoalType{
		Distance:  req.Distance,
		Frequency: req.Frequency,
		Pace:      req.Pace,
	})

	if err != nil {
		RespondInternal(ctx, "Could not create goal type")
		return
	}

	RespondOK(ctx, "Goal type created successfully", created)
}

func (h *GoalTypesHandler) UpdateGoalType(ctx *gin.Context) {
	id, ok := PathID(ctx, "id")
	if !ok {
		return
	}

	var req goaltype.UpdateGoalTypeRequest

	if !BindJSON(ctx, &req) {
		return
	}

	cctx, cancel := config.WithTimeout(3 * time.Second)
	defer cancel()

	updated, err := h.store.Update(cctx, goaltype.GoalType{
		ID:        id,
		Distance:  req.Distance,
		Frequency: req.Frequency,
		Pace:      req.Pace,
	})

	if err != nil {
		if errors.Is(err, goaltype.ErrNotFound) {
			RespondNotFound(ctx, "Goal type not found")
			return
		}

		RespondInternal(ctx, "Could not update goal type")
		return
	}

	RespondOK(ctx, "Goal type updated successfully", updated)
}

// DeleteGoalType removes the row permanently; there is no restore.
func (h *GoalTypesHandler) DeleteGoalType(ctx *gin.Context) {
	id, ok := PathID(ctx, "id")
	if !ok {
		return
	}

	cctx, cancel := config.WithTimeout(3 * time.Second)
	defer cancel()

	err := h.store.Delete(cctx, id)

	if err != nil {
		if errors.Is(err, goaltype.ErrNotFound) {
			RespondNotFound(ctx, "Goal type not found")
			return
		}

		RespondInternal(ctx, "Could not delete goal type")
		return
	}

	RespondOK(ctx, "Goal type deleted successfully", nil)
}
