package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/geocoder89/runtrack/internal/domain/civil"
	"github.com/geocoder89/runtrack/internal/domain/run"
)

type RunsRepo struct {
	mu     sync.RWMutex
	items  map[int64]run.Run
	nextID int64

	// Today is overridable so the recency window can be pinned in tests.
	Today func() civil.Date
}

func NewRunsRepo() *RunsRepo {
	return &RunsRepo{
		items:  make(map[int64]run.Run),
		nextID: 1,
		Today:  civil.Today,
	}
}

func (r *RunsRepo) Create(_ context.Context, rn run.Run) (run.Run, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rn.ID = r.nextID
	r.nextID++
	rn.IsDeleted = false
	r.items[rn.ID] = rn

	return rn, nil
}

func (r *RunsRepo) GetByID(_ context.Context, id int64) (run.Run, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rn, ok := r.items[id]

	if !ok {
		return run.Run{}, run.ErrNotFound
	}

	return rn, nil
}

func (r *RunsRepo) Update(_ context.Context, rn run.Run) (run.Run, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.items[rn.ID]

	if !ok {
		return run.Run{}, run.ErrNotFound
	}

	rn.IsDeleted = existing.IsDeleted
	r.items[rn.ID] = rn

	return rn, nil
}

func (r *RunsRepo) SoftDelete(_ context.Context, id int64) error {
	return r.setDeleted(id, true)
}

func (r *RunsRepo) Restore(_ context.Context, id int64) error {
	return r.setDeleted(id, false)
}

func (r *RunsRepo) setDeleted(id int64, deleted bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	rn, ok := r.items[id]

	if !ok || rn.IsDeleted == deleted {
		return run.ErrNotFound
	}

	rn.IsDeleted = deleted
	r.items[id] = rn

	return nil
}

func (r *RunsRepo) List(_ context.Context) ([]run.Run, error) {
	return r.collect(func(rn run.Run) bool {
		return !rn.IsDeleted
	}, false), nil
}

func (r *RunsRepo) ListByUser(_ context.Context, userID int64) ([]run.Run, error) {
	return r.collect(func(rn run.Run) bool {
		return rn.UserID == userID && !rn.IsDeleted
	}, true), nil
}

func (r *RunsRepo) ListDeletedByUser(_ context.Context, userID int64) ([]run.Run, error) {
	return r.collect(func(rn run.Run) bool {
		return rn.UserID == userID && rn.IsDeleted
	}, true), nil
}

func (r *RunsRepo) ListRecentByUser(_ context.Context, userID int64) ([]run.Run, error) {
	cutoff := r.Today().AddDays(-7)

	return r.collect(func(rn run.Run) bool {
		return rn.UserID == userID && !rn.IsDeleted && !rn.Date.Before(cutoff.Time)
	}, true), nil
}

func (r *RunsRepo) collect(keep func(run.Run) bool, byDateDesc bool) []run.Run {
	r.mu.RLock()
	defer r.mu.RUnlock()

	output := make([]run.Run, 0)

	for id := int64(1); id < r.nextID; id++ {
		rn, ok := r.items[id]

		if ok && keep(rn) {
			output = append(output, rn)
		}
	}

	if byDateDesc {
		sort.SliceStable(output, func(i, j int) bool {
			return output[i].Date.After(output[j].Date.Time)
		})
	}

	return output
}
