package goal

import (
	"errors"
	"strings"

	"github.com/geocoder89/runtrack/internal/domain/civil"
)

var (
	ErrNotFound       = errors.New("goal not found")
	ErrTargetRequired = errors.New("either goal distance or frequency must be provided")
	ErrNameRequired   = errors.New("goal name is required")
	ErrNoTarget       = errors.New("at least one of distance or frequency must be specified")
)

type Goal struct {
	ID         int64       `json:"goalID"`
	UserID     int64       `json:"userID"`
	Name       string      `json:"goalName"`
	Distance   *float64    `json:"goalDistance"`
	Frequency  *string     `json:"goalFrequency"`
	TargetDate *civil.Date `json:"targetDate"`
	Unit       string      `json:"unit"`
	IsDeleted  bool        `json:"isDeleted"`
}

type CreateGoalRequest struct {
	UserID     int64       `json:"userID" binding:"required"`
	Name       string      `json:"goalName" binding:"omitempty,max=120"`
	Distance   *float64    `json:"goalDistance"`
	Frequency  *string     `json:"goalFrequency"`
	TargetDate *civil.Date `json:"targetDate"`
	Unit       string      `json:"unit" binding:"omitempty,oneof=km miles"`
}

type UpdateGoalRequest struct {
	Name       string      `json:"goalName" binding:"omitempty,max=120"`
	Distance   *float64    `json:"goalDistance"`
	Frequency  *string     `json:"goalFrequency"`
	TargetDate *civil.Date `json:"targetDate"`
	Unit       string      `json:"unit" binding:"omitempty,oneof=km miles"`
}

// Validate rejects a goal that names no target at all. A zero distance counts
// as absent here.
func (r CreateGoalRequest) Validate() error {
	noDistance := r.Distance == nil || *r.Distance == 0
	noFrequency := r.Frequency == nil || strings.TrimSpace(*r.Frequency) == ""

	if noDistance && noFrequency {
		return ErrTargetRequired
	}

	return nil
}

// Validate for updates checks the name and that at least one target field is
// present. Unlike create, an explicit zero distance passes; only a missing
// field counts as absent.
func (r UpdateGoalRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return ErrNameRequired
	}

	if r.Distance == nil && r.Frequency == nil {
		return ErrNoTarget
	}

	return nil
}
