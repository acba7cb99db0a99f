package memory

import (
	"context"
	"sync"

	"github.com/geocoder89/runtrack/internal/domain/goal"
)

type GoalsRepo struct {
	mu     sync.RWMutex
	items  map[int64]goal.Goal
	nextID int64
}

func NewGoalsRepo() *GoalsRepo {
	return &GoalsRepo{
		items:  make(map[int64]goal.Goal),
		nextID: 1,
	}
}

func (r *GoalsRepo) Create(_ context.Context, g goal.Goal) (goal.Goal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	g.ID = r.nextID
	r.nextID++
	g.IsDeleted = false
	r.items[g.ID] = g

	return g, nil
}

func (r *GoalsRepo) GetByID(_ context.Context, id int64) (goal.Goal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	g, ok := r.items[id]

	if !ok {
		return goal.Goal{}, goal.ErrNotFound
	}

	return g, nil
}

func (r *GoalsRepo) Update(_ context.Context, g goal.Goal) (goal.Goal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.items[g.ID]

	if !ok {
		return goal.Goal{}, goal.ErrNotFound
	}

	// ownership and delete state survive an update
	g.UserID = existing.UserID
	g.IsDeleted = existing.IsDeleted
	r.items[g.ID] = g

	return g, nil
}

func (r *GoalsRepo) SoftDelete(_ context.Context, id int64) error {
	return r.setDeleted(id, true)
}

func (r *GoalsRepo) Restore(_ context.Context, id int64) error {
	return r.setDeleted(id, false)
}

func (r *GoalsRepo) setDeleted(id int64, deleted bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	g, ok := r.items[id]

	if !ok || g.IsDeleted == deleted {
		return goal.ErrNotFound
	}

	g.IsDeleted = deleted
	r.items[id] = g

	return nil
}

func (r *GoalsRepo) List(_ context.Context) ([]goal.Goal, error) {
	return r.collect(func(g goal.Goal) bool {
		return !g.IsDeleted
	}), nil
}

func (r *GoalsRepo) ListByUser(_ context.Context, userID int64) ([]goal.Goal, error) {
	return r.collect(func(g goal.Goal) bool {
		return g.UserID == userID && !g.IsDeleted
	}), nil
}

func (r *GoalsRepo) ListDeletedByUser(_ context.Context, userID int64) ([]goal.Goal, error) {
	return r.collect(func(g goal.Goal) bool {
		return g.UserID == userID && g.IsDeleted
	}), nil
}

func (r *GoalsRepo) collect(keep func(goal.Goal) bool) []goal.Goal {
	r.mu.RLock()
	defer r.mu.RUnlock()

	output := make([]goal.Goal, 0)

	for id := int64(1); id < r.nextID; id++ {
		g, ok := r.items[id]

		if ok && keep(g) {
			output = append(output, g)
		}
	}

	return output
}
