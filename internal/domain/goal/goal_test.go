package goal

import (
	"errors"
	"testing"
)

func f(v float64) *float64 { return &v }
func s(v string) *string   { return &v }

func TestCreateGoalRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     CreateGoalRequest
		wantErr error
	}{
		{"distance only", CreateGoalRequest{UserID: 1, Distance: f(10)}, nil},
		{"frequency only", CreateGoalRequest{UserID: 1, Frequency: s("3x/week")}, nil},
		{"both", CreateGoalRequest{UserID: 1, Distance: f(5), Frequency: s("2x/week")}, nil},
		{"neither", CreateGoalRequest{UserID: 1}, ErrTargetRequired},
		{"zero distance counts as absent", CreateGoalRequest{UserID: 1, Distance: f(0)}, ErrTargetRequired},
		{"blank frequency counts as absent", CreateGoalRequest{UserID: 1, Frequency: s("   ")}, ErrTargetRequired},
		{"zero distance but real frequency", CreateGoalRequest{UserID: 1, Distance: f(0), Frequency: s("3x/week")}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()

			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestUpdateGoalRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     UpdateGoalRequest
		wantErr error
	}{
		{"name and distance", UpdateGoalRequest{Name: "10K prep", Distance: f(10)}, nil},
		{"name and frequency", UpdateGoalRequest{Name: "Habit", Frequency: s("4x/week")}, nil},
		{"blank name", UpdateGoalRequest{Name: "  ", Distance: f(10)}, ErrNameRequired},
		{"no targets at all", UpdateGoalRequest{Name: "X"}, ErrNoTarget},
		// update is looser than create: an explicit zero distance is accepted
		{"explicit zero distance passes", UpdateGoalRequest{Name: "X", Distance: f(0)}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()

			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
