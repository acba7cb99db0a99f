package handlers

import (
	"context"
	"errors"
	"time"

	"github.com/geocoder89/runtrack/internal/config"
	"github.com/geocoder89/runtrack/internal/domain/user"
	"github.com/geocoder89/runtrack/internal/security"
	"github.com/gin-gonic/gin"
)

type UserStore interface {
	Create(ctx context.Context, u user.User) (user.User, error)
	GetByID(ctx context.Context, id int64) (user.User, error)
	GetByUsername(ctx context.Context, username string) (user.User, error)
	List(ctx context.Context) ([]user.User, error)
	Update(ctx context.Context, u user.User) (user.User, error)
	SoftDelete(ctx context.Context, id int64) error
	Restore(ctx context.Context, id int64) error
}

type UsersHandler struct {
	store UserStore
}

func NewUsersHandler(store UserStore) *UsersHandler {
	return &UsersHandler{store: store}
}

func defaultUnit(unit string) string {
	if unit == "" {
		return "km"
	}
	return unit
}

func (h *UsersHandler) ListUsers(ctx *gin.Context) {
	cctx, cancel := config.WithTimeout(3 * time.Second)
	defer cancel()

	users, err := h.store.List(cctx)

	if err != nil {
		RespondInternal(ctx, "Could not list users")
		return
	}

	RespondOK(ctx, "All users retrieved", users)
}

func (h *UsersHandler) GetUserByID(ctx *gin.Context) {
	id, ok := PathID(ctx, "id")
	if !ok {
		return
	}

	cctx, cancel := config.WithTimeout(3 * time.Second)
	defer cancel()

	u, err := h.store.GetByID(cctx, id)

	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			RespondNotFound(ctx, "User not found")
			return
		}

		RespondInternal(ctx, "Could not fetch user")
		return
	}

	RespondOK(ctx, "User retrieved", u)
}

func (h *UsersHandler) CreateUser(ctx *gin.Context) {
	var req user.CreateUserRequest

	if !BindJSON(ctx, &req) {
		return
	}

	hash, err := security.HashPassword(req.Password)

	if err != nil {
		RespondInternal(ctx, "Could not create user")
		return
	}

	cctx, cancel := config.WithTimeout(3 * time.Second)
	defer cancel()

	created, err := h.store.Create(cctx, user.User{
		Username:       req.Username,
		Name:           req.Name,
		PasswordHash:   hash,
		UnitPreference: defaultUnit(req.UnitPreference),
	})

	if err != nil {
		if errors.Is(err, user.ErrUsernameTaken) {
			RespondBadRequest(ctx, "Username already exists. Please choose a different username.")
			return
		}

		RespondInternal(ctx, "Could not create user")
		return
	}

	RespondOK(ctx, "User created successfully", created)
}

func (h *UsersHandler) UpdateUser(ctx *gin.Context) {
	id, ok := PathID(ctx, "id")
	if !ok {
		return
	}

	var req user.UpdateUserRequest

	if !BindJSON(ctx, &req) {
		return
	}

	// the password arrives in plaintext on every update and is re-hashed,
	// unchanged or not
	hash, err := security.HashPassword(req.Password)

	if err != nil {
		RespondInternal(ctx, "Could not update user")
		return
	}

	cctx, cancel := config.WithTimeout(3 * time.Second)
	defer cancel()

	updated, err := h.store.Update(cctx, user.User{
		ID:             id,
		Username:       req.Username,
		Name:           req.Name,
		PasswordHash:   hash,
		UnitPreference: defaultUnit(req.UnitPreference),
	})

	if err != nil {
		if errors.Is(err, user.ErrUsernameTaken) {
			RespondBadRequest(ctx, "Error updating user: duplicate username. Please change the username and try again.")
			return
		}

		if errors.Is(err, user.ErrNotFound) {
			RespondNotFound(ctx, "User not found")
			return
		}

		RespondInternal(ctx, "Could not update user")
		return
	}

	RespondOK(ctx, "User updated successfully", updated)
}

func (h *UsersHandler) DeleteUser(ctx *gin.Context) {
	id, ok := PathID(ctx, "id")
	if !ok {
		return
	}

	cctx, cancel := config.WithTimeout(3 * time.Second)
	defer cancel()

	err := h.store.SoftDelete(cctx, id)

	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			RespondNotFound(ctx, "User not found or already deleted")
			return
		}

		RespondInternal(ctx, "Could not delete user")
		return
	}

	RespondOK(ctx, "User deleted successfully", nil)
}

func (h *UsersHandler) RestoreUser(ctx *gin.Context) {
	id, ok := PathID(ctx, "id")
	if !ok {
		return
	}

	cctx, cancel := config.WithTimeout(3 * time.Second)
	defer cancel()

	err := h.store.Restore(cctx, id)

	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			RespondNotFound(ctx, "User not found or not deleted")
			return
		}

		RespondInternal(ctx, "Could not restore user")
		return
	}

	restored, err := h.store.GetByID(cctx, id)

	if err != nil {
		RespondInternal(ctx, "Could not restore user")
		return
	}

	RespondOK(ctx, "User restored successfully", restored)
}
