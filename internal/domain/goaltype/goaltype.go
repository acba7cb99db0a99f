package goaltype

import "errors"

var ErrNotFound = errors.New("goal type not found")

// GoalType is a reusable goal template (e.g. 10 km, 3x/week, 5:30 min/km).
// Not owned by a user and never soft deleted.
type GoalType struct {
	ID        int64   `json:"goalTypeID"`
	Distance  float64 `json:"distance"`
	Frequency string  `json:"frequency"`
	Pace      string  `json:"pace"`
}

type CreateGoalTypeRequest struct {
	Distance  float64 `json:"distance"`
	Frequency string  `json:"frequency" binding:"omitempty,max=60"`
	Pace      string  `json:"pace" binding:"omitempty,max=60"`
}

type UpdateGoalTypeRequest = CreateGoalTypeRequest
