package handlers

import (
	"context"
	"log/slog"
	"time"

	"github.com/geocoder89/runtrack/internal/config"
	"github.com/geocoder89/runtrack/internal/domain/user"
	"github.com/geocoder89/runtrack/internal/observability"
	"github.com/geocoder89/runtrack/internal/security"
	"github.com/gin-gonic/gin"
)

type UserReader interface {
	GetByUsername(ctx context.Context, username string) (user.User, error)
}

type AuthHandler struct {
	users UserReader
	log   *slog.Logger
	prom  *observability.Prom
}

func NewAuthHandler(users UserReader, log *slog.Logger, prom *observability.Prom) *AuthHandler {
	return &AuthHandler{
		users: users,
		log:   log,
		prom:  prom,
	}
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// The client-visible failure body never says whether the username existed;
// that would let anyone enumerate accounts. The distinction lives in the
// server log only.
const loginFailedMessage = "Invalid username or password"

func (h *AuthHandler) Login(ctx *gin.Context) {
	var req LoginRequest

	if !BindJSON(ctx, &req) {
		return
	}

	// short timeout for the DB lookup
	cctx, cancel := config.WithTimeout(2 * time.Second)
	defer cancel()

	foundUser, err := h.users.GetByUsername(cctx, req.Username)

	if err != nil {
		h.log.Warn("login rejected", "reason", "unknown username", "username", req.Username)
		h.countLogin("rejected")
		RespondUnauthorized(ctx, loginFailedMessage)
		return
	}

	err = security.CheckPassword(foundUser.PasswordHash, req.Password)

	if err != nil {
		h.log.Warn("login rejected", "reason", "password mismatch", "username", req.Username)
		h.countLogin("rejected")
		RespondUnauthorized(ctx, loginFailedMessage)
		return
	}

	h.countLogin("ok")

	// the hash is structurally excluded from the JSON shape of user.User
	RespondOK(ctx, "Login successful", foundUser)
}

func (h *AuthHandler) countLogin(outcome string) {
	if h.prom != nil {
		h.prom.LoginsTotal.WithLabelValues(outcome).Inc()
	}
}
