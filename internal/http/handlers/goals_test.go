package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/geocoder89/runtrack/internal/domain/goal"
	"github.com/gin-gonic/gin"
)

type fakeGoalStore struct {
	create            func(ctx context.Context, g goal.Goal) (goal.Goal, error)
	getByID           func(ctx context.Context, id int64) (goal.Goal, error)
	update            func(ctx context.Context, g goal.Goal) (goal.Goal, error)
	softDelete        func(ctx context.Context, id int64) error
	restore           func(ctx context.Context, id int64) error
	list              func(ctx context.Context) ([]goal.Goal, error)
	listByUser        func(ctx context.Context, userID int64) ([]goal.Goal, error)
	listDeletedByUser func(ctx context.Context, userID int64) ([]goal.Goal, error)
}

func (f *fakeGoalStore) Create(ctx context.Context, g goal.Goal) (goal.Goal, error) {
	return f.create(ctx, g)
}

func (f *fakeGoalStore) GetByID(ctx context.Context, id int64) (goal.Goal, error) {
	return f.getByID(ctx, id)
}

func (f *fakeGoalStore) Update(ctx context.Context, g goal.Goal) (goal.Goal, error) {
	return f.update(ctx, g)
}

func (f *fakeGoalStore) SoftDelete(ctx context.Context, id int64) error {
	return f.softDelete(ctx, id)
}

func (f *fakeGoalStore) Restore(ctx context.Context, id int64) error {
	return f.restore(ctx, id)
}

func (f *fakeGoalStore) List(ctx context.Context) ([]goal.Goal, error) {
	return f.list(ctx)
}

func (f *fakeGoalStore) ListByUser(ctx context.Context, userID int64) ([]goal.Goal, error) {
	return f.listByUser(ctx, userID)
}

func (f *fakeGoalStore) ListDeletedByUser(ctx context.Context, userID int64) ([]goal.Goal, error) {
	return f.listDeletedByUser(ctx, userID)
}

func goalsRouter(store GoalStore) *gin.Engine {
	h := NewGoalsHandler(store)

	r := gin.New()
	r.GET("/api/goals", h.ListGoals)
	r.GET("/api/goals/:id", h.GetGoalByID)
	r.POST("/api/goals", h.CreateGoal)
	r.PUT("/api/goals/:id", h.UpdateGoal)
	r.DELETE("/api/goals/:id", h.DeleteGoal)
	r.PUT("/api/goals/:id/restore", h.RestoreGoal)
	r.GET("/api/users/:id/goals", h.ListGoalsByUser)
	r.GET("/api/users/:id/goals/deleted", h.ListDeletedGoalsByUser)

	return r
}

func rejectingGoalStore(t *testing.T) *fakeGoalStore {
	return &fakeGoalStore{
		create: func(_ context.Context, _ goal.Goal) (goal.Goal, error) {
			t.Fatal("store must not be called")
			return goal.Goal{}, nil
		},
		update: func(_ context.Context, _ goal.Goal) (goal.Goal, error) {
			t.Fatal("store must not be called")
			return goal.Goal{}, nil
		},
	}
}

func TestCreateGoalRequiresTarget(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"nothing given", `{"userID":1,"goalName":"5k"}`},
		// zero is treated the same as absent on create
		{"zero distance", `{"userID":1,"goalName":"5k","goalDistance":0}`},
		{"blank frequency", `{"userID":1,"goalName":"5k","goalFrequency":"  "}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := perform(t, goalsRouter(rejectingGoalStore(t)), http.MethodPost, "/api/goals", tc.body)

			if w.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400 (body %s)", w.Code, w.Body.String())
			}

			env := decodeEnvelope(t, w)

			if env.Message != "Either goal distance or frequency must be provided." {
				t.Errorf("message = %q", env.Message)
			}
		})
	}
}

func TestCreateGoalWithDistance(t *testing.T) {
	var stored goal.Goal

	store := &fakeGoalStore{
		create: func(_ context.Context, g goal.Goal) (goal.Goal, error) {
			g.ID = 2
			stored = g
			return g, nil
		},
	}

	body := `{"userID":1,"goalName":"Autumn 10k","goalDistance":10,"targetDate":"2026-10-01"}`
	w := perform(t, goalsRouter(store), http.MethodPost, "/api/goals", body)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d (body %s)", w.Code, w.Body.String())
	}

	if stored.UserID != 1 || stored.Distance == nil || *stored.Distance != 10 {
		t.Errorf("stored = %+v", stored)
	}

	if stored.TargetDate == nil || stored.TargetDate.String() != "2026-10-01" {
		t.Errorf("target date = %v", stored.TargetDate)
	}

	if stored.Unit != "km" {
		t.Errorf("unit = %q, want default km", stored.Unit)
	}
}

func TestUpdateGoalValidation(t *testing.T) {
	cases := []struct {
		name    string
		body    string
		message string
	}{
		{"blank name", `{"goalName":"  ","goalDistance":5}`, "Goal name is required."},
		{"no target at all", `{"goalName":"5k"}`, "At least one of distance or frequency must be specified."},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := perform(t, goalsRouter(rejectingGoalStore(t)), http.MethodPut, "/api/goals/3", tc.body)

			if w.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400 (body %s)", w.Code, w.Body.String())
			}

			env := decodeEnvelope(t, w)

			if env.Message != tc.message {
				t.Errorf("message = %q, want %q", env.Message, tc.message)
			}
		})
	}
}

func TestUpdateGoalAcceptsExplicitZeroDistance(t *testing.T) {
	// create treats zero as absent, update does not
	store := &fakeGoalStore{
		update: func(_ context.Context, g goal.Goal) (goal.Goal, error) {
			return g, nil
		},
	}

	w := perform(t, goalsRouter(store), http.MethodPut, "/api/goals/3", `{"goalName":"5k","goalDistance":0}`)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body %s)", w.Code, w.Body.String())
	}
}

func TestRestoreGoalNotDeleted(t *testing.T) {
	store := &fakeGoalStore{
		restore: func(_ context.Context, _ int64) error {
			return goal.ErrNotFound
		},
	}

	w := perform(t, goalsRouter(store), http.MethodPut, "/api/goals/3/restore", "")

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}

	env := decodeEnvelope(t, w)

	if env.Message != "Goal not found or not deleted" {
		t.Errorf("message = %q", env.Message)
	}
}

func TestListDeletedGoalsByUser(t *testing.T) {
	store := &fakeGoalStore{
		listDeletedByUser: func(_ context.Context, userID int64) ([]goal.Goal, error) {
			return []goal.Goal{{ID: 1, UserID: userID, IsDeleted: true}}, nil
		},
	}

	w := perform(t, goalsRouter(store), http.MethodGet, "/api/users/6/goals/deleted", "")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d (body %s)", w.Code, w.Body.String())
	}

	var goals []goal.Goal
	decodeData(t, decodeEnvelope(t, w), &goals)

	if len(goals) != 1 || !goals[0].IsDeleted {
		t.Errorf("goals = %+v", goals)
	}
}
