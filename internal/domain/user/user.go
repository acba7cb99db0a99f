package user

import "errors"

var (
	ErrNotFound      = errors.New("user not found")
	ErrUsernameTaken = errors.New("username already exists")
)

type User struct {
	ID             int64  `json:"userID"`
	Username       string `json:"username"`
	Name           string `json:"name"`
	PasswordHash   string `json:"-"` // never expose hash in JSON
	UnitPreference string `json:"unitPreference"`
	IsDeleted      bool   `json:"isDeleted"`
}

type CreateUserRequest struct {
	Username       string `json:"username" binding:"required,max=60"`
	Name           string `json:"name" binding:"omitempty,max=120"`
	Password       string `json:"password" binding:"required"`
	UnitPreference string `json:"unitPreference" binding:"omitempty,oneof=km miles"`
}

// A full overwrite. The password field is mandatory even when unchanged, the
// handler re-hashes whatever is sent.
type UpdateUserRequest struct {
	Username       string `json:"username" binding:"required,max=60"`
	Name           string `json:"name" binding:"omitempty,max=120"`
	Password       string `json:"password" binding:"required"`
	UnitPreference string `json:"unitPreference" binding:"omitempty,oneof=km miles"`
}
