package run

import (
	"errors"
	"math"

	"github.com/geocoder89/runtrack/internal/domain/civil"
)

var (
	ErrNotFound      = errors.New("run not found")
	ErrMissingFields = errors.New("run date, distance, and duration are required")
)

type Run struct {
	ID        int64           `json:"runID"`
	UserID    int64           `json:"userID"`
	Date      civil.Date      `json:"runDate"`
	Distance  float64         `json:"runDistance"`
	Duration  civil.TimeOfDay `json:"runDuration"`
	Speed     float64         `json:"runSpeed"`
	Unit      string          `json:"unit"`
	Notes     string          `json:"additionalDetails"`
	IsDeleted bool            `json:"isDeleted"`
}

// Date, distance and duration are pointers so that a missing field is
// distinguishable from a zero one; Validate rejects only absence.
type CreateRunRequest struct {
	UserID   int64            `json:"userID" binding:"required"`
	Date     *civil.Date      `json:"runDate"`
	Distance *float64         `json:"runDistance"`
	Duration *civil.TimeOfDay `json:"runDuration"`
	Speed    *float64         `json:"runSpeed"`
	Unit     string           `json:"unit" binding:"omitempty,oneof=km miles"`
	Notes    string           `json:"additionalDetails" binding:"omitempty,max=1000"`
}

type UpdateRunRequest = CreateRunRequest

func (r CreateRunRequest) Validate() error {
	if r.Date == nil || r.Distance == nil || r.Duration == nil {
		return ErrMissingFields
	}
	return nil
}

// DeriveSpeed returns the caller-supplied speed when present, otherwise
// distance over duration in units per hour, rounded to two decimals.
// Call only after Validate.
func (r CreateRunRequest) DeriveSpeed() float64 {
	if r.Speed != nil {
		return *r.Speed
	}

	hours := r.Duration.Hours()

	if hours <= 0 {
		return 0
	}

	return math.Round(*r.Distance/hours*100) / 100
}
