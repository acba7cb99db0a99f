package memory

import (
	"context"
	"sync"

	"github.com/geocoder89/runtrack/internal/domain/goaltype"
)

// GoalTypesRepo hard deletes; there is no restore path for templates.
type GoalTypesRepo struct {
	mu     sync.RWMutex
	items  map[int64]goaltype.GoalType
	nextID int64
}

func NewGoalTypesRepo() *GoalTypesRepo {
	return &GoalTypesRepo{
		items:  make(map[int64]goaltype.GoalType),
		nextID: 1,
	}
}

func (r *GoalTypesRepo) Create(_ context.Context, gt goaltype.GoalType) (goaltype.GoalType, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	gt.ID = r.nextID
	r.nextID++
	r.items[gt.ID] = gt

	return gt, nil
}

func (r *GoalTypesRepo) GetByID(_ context.Context, id int64) (goaltype.GoalType, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	gt, ok := r.items[id]

	if !ok {
		return goaltype.GoalType{}, goaltype.ErrNotFound
	}

	return gt, nil
}

func (r *GoalTypesRepo) Update(_ context.Context, gt goaltype.GoalType) (goaltype.GoalType, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.items[gt.ID]

	if !ok {
		return goaltype.GoalType{}, goaltype.ErrNotFound
	}

	r.items[gt.ID] = gt

	return gt, nil
}

func (r *GoalTypesRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.items[id]

	if !ok {
		return goaltype.ErrNotFound
	}

	delete(r.items, id)

	return nil
}

func (r *GoalTypesRepo) List(_ context.Context) ([]goaltype.GoalType, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	output := make([]goaltype.GoalType, 0, len(r.items))

	for id := int64(1); id < r.nextID; id++ {
		gt, ok := r.items[id]

		if ok {
			output = append(output, gt)
		}
	}

	return output, nil
}
