package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/geocoder89/runtrack/internal/domain/goaltype"
	"github.com/gin-gonic/gin"
)

type fakeGoalTypeStore struct {
	create  func(ctx context.Context, gt goaltype.GoalType) (goaltype.GoalType, error)
	getByID func(ctx context.Context, id int64) (goaltype.GoalType, error)
	update  func(ctx context.Context, gt goaltype.GoalType) (goaltype.GoalType, error)
	delete  func(ctx context.Context, id int64) error
	list    func(ctx context.Context) ([]goaltype.GoalType, error)
}

func (f *fakeGoalTypeStore) Create(ctx context.Context, gt goaltype.GoalType) (goaltype.GoalType, error) {
	return f.create(ctx, gt)
}

func (f *fakeGoalTypeStore) GetByID(ctx context.Context, id int64) (goaltype.GoalType, error) {
	return f.getByID(ctx, id)
}

func (f *fakeGoalTypeStore) Update(ctx context.Context, gt goaltype.GoalType) (goaltype.GoalType, error) {
	return f.update(ctx, gt)
}

func (f *fakeGoalTypeStore) Delete(ctx context.Context, id int64) error {
	return f.delete(ctx, id)
}

func (f *fakeGoalTypeStore) List(ctx context.Context) ([]goaltype.GoalType, error) {
	return f.list(ctx)
}

func goalTypesRouter(store GoalTypeStore) *gin.Engine {
	h := NewGoalTypesHandler(store)

	r := gin.New()
	r.GET("/api/goaltypes", h.ListGoalTypes)
	r.GET("/api/goaltypes/:id", h.GetGoalTypeByID)
	r.POST("/api/goaltypes", h.CreateGoalType)
	r.PUT("/api/goaltypes/:id", h.UpdateGoalType)
	r.DELETE("/api/goaltypes/:id", h.DeleteGoalType)

	return r
}

func TestGetGoalTypeNotFound(t *testing.T) {
	store := &fakeGoalTypeStore{
		getByID: func(_ context.Context, _ int64) (goaltype.GoalType, error) {
			return goaltype.GoalType{}, goaltype.ErrNotFound
		},
	}

	w := perform(t, goalTypesRouter(store), http.MethodGet, "/api/goaltypes/99", "")

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}

	env := decodeEnvelope(t, w)

	if env.Message != "Goal type not found" {
		t.Errorf("message = %q", env.Message)
	}
}

func TestCreateGoalType(t *testing.T) {
	var stored goaltype.GoalType

	store := &fakeGoalTypeStore{
		create: func(_ context.Context, gt goaltype.GoalType) (goaltype.GoalType, error) {
			gt.ID = 3
			stored = gt
			return gt, nil
		},
	}

	body := `{"distance":21.1,"frequency":"weekly","pace":"5:30"}`
	w := perform(t, goalTypesRouter(store), http.MethodPost, "/api/goaltypes", body)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d (body %s)", w.Code, w.Body.String())
	}

	if stored.Distance != 21.1 || stored.Frequency != "weekly" || stored.Pace != "5:30" {
		t.Errorf("stored = %+v", stored)
	}

	var created goaltype.GoalType
	decodeData(t, decodeEnvelope(t, w), &created)

	if created.ID != 3 {
		t.Errorf("created ID = %d, want 3", created.ID)
	}
}

func TestDeleteGoalType(t *testing.T) {
	t.Run("existing row", func(t *testing.T) {
		var deleted int64

		store := &fakeGoalTypeStore{
			delete: func(_ context.Context, id int64) error {
				deleted = id
				return nil
			},
		}

		w := perform(t, goalTypesRouter(store), http.MethodDelete, "/api/goaltypes/3", "")

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d (body %s)", w.Code, w.Body.String())
		}

		if deleted != 3 {
			t.Errorf("deleted id = %d, want 3", deleted)
		}
	})

	t.Run("missing row", func(t *testing.T) {
		store := &fakeGoalTypeStore{
			delete: func(_ context.Context, _ int64) error {
				return goaltype.ErrNotFound
			},
		}

		w := perform(t, goalTypesRouter(store), http.MethodDelete, "/api/goaltypes/99", "")

		if w.Code != http.StatusNotFound {
			t.Fatalf("status = %d, want 404", w.Code)
		}
	})
}
