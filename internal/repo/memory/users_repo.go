// Package memory holds mutex-guarded map implementations of the store
// contracts. They mirror the postgres semantics (state-guarded soft delete,
// global username uniqueness) and back tests and local development.
package memory

import (
	"context"
	"sync"

	"github.com/geocoder89/runtrack/internal/domain/user"
)

type UsersRepo struct {
	mu     sync.RWMutex
	items  map[int64]user.User
	nextID int64
}

func NewUsersRepo() *UsersRepo {
	return &UsersRepo{
		items:  make(map[int64]user.User),
		nextID: 1,
	}
}

func (r *UsersRepo) Create(_ context.Context, u user.User) (user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	// the unique index spans soft-deleted rows too
	for _, existing := range r.items {
		if existing.Username == u.Username {
			return user.User{}, user.ErrUsernameTaken
		}
	}

	u.ID = r.nextID
	r.nextID++
	u.IsDeleted = false
	r.items[u.ID] = u

	return u, nil
}

func (r *UsersRepo) GetByID(_ context.Context, id int64) (user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.items[id]

	if !ok {
		return user.User{}, user.ErrNotFound
	}

	return u, nil
}

func (r *UsersRepo) GetByUsername(_ context.Context, username string) (user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.items {
		if u.Username == username && !u.IsDeleted {
			return u, nil
		}
	}

	return user.User{}, user.ErrNotFound
}

func (r *UsersRepo) List(_ context.Context) ([]user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	output := make([]user.User, 0, len(r.items))

	for id := int64(1); id < r.nextID; id++ {
		u, ok := r.items[id]

		if ok && !u.IsDeleted {
			output = append(output, u)
		}
	}

	return output, nil
}

func (r *UsersRepo) Update(_ context.Context, u user.User) (user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.items[u.ID]

	if !ok {
		return user.User{}, user.ErrNotFound
	}

	for id, other := range r.items {
		if id != u.ID && other.Username == u.Username {
			return user.User{}, user.ErrUsernameTaken
		}
	}

	existing.Username = u.Username
	existing.Name = u.Name
	existing.PasswordHash = u.PasswordHash
	existing.UnitPreference = u.UnitPreference
	r.items[u.ID] = existing

	return existing, nil
}

func (r *UsersRepo) SoftDelete(_ context.Context, id int64) error {
	return r.setDeleted(id, true)
}

func (r *UsersRepo) Restore(_ context.Context, id int64) error {
	return r.setDeleted(id, false)
}

func (r *UsersRepo) setDeleted(id int64, deleted bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.items[id]

	// a same-state flip affects zero rows, matching the SQL guard
	if !ok || u.IsDeleted == deleted {
		return user.ErrNotFound
	}

	u.IsDeleted = deleted
	r.items[id] = u

	return nil
}
