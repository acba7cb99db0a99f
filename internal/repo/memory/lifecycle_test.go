package memory

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/geocoder89/runtrack/internal/domain/civil"
	"github.com/geocoder89/runtrack/internal/domain/goal"
	"github.com/geocoder89/runtrack/internal/domain/goaltype"
	"github.com/geocoder89/runtrack/internal/domain/run"
	"github.com/geocoder89/runtrack/internal/domain/user"
)

func date(t *testing.T, s string) civil.Date {
	t.Helper()

	d, err := civil.ParseDate(s)
	if err != nil {
		t.Fatalf("ParseDate(%q): %v", s, err)
	}

	return d
}

func TestUsersRepo_UsernameUniqueness(t *testing.T) {
	ctx := context.Background()
	repo := NewUsersRepo()

	first, err := repo.Create(ctx, user.User{Username: "ana", Name: "Ana", PasswordHash: "h1", UnitPreference: "km"})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	if _, err := repo.Create(ctx, user.User{Username: "ana", PasswordHash: "h2"}); !errors.Is(err, user.ErrUsernameTaken) {
		t.Fatalf("duplicate create = %v, want ErrUsernameTaken", err)
	}

	// first record untouched by the failed second insert
	got, err := repo.GetByID(ctx, first.ID)
	if err != nil {
		t.Fatalf("GetByID error: %v", err)
	}

	if !reflect.DeepEqual(got, first) {
		t.Fatalf("first user changed: %+v vs %+v", got, first)
	}

	// the name stays taken even after a soft delete
	if err := repo.SoftDelete(ctx, first.ID); err != nil {
		t.Fatalf("SoftDelete error: %v", err)
	}

	if _, err := repo.Create(ctx, user.User{Username: "ana", PasswordHash: "h3"}); !errors.Is(err, user.ErrUsernameTaken) {
		t.Fatalf("create over soft-deleted name = %v, want ErrUsernameTaken", err)
	}
}

func TestUsersRepo_SoftDeleteRestoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewUsersRepo()

	created, err := repo.Create(ctx, user.User{Username: "ben", Name: "Ben", PasswordHash: "h", UnitPreference: "miles"})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	if err := repo.SoftDelete(ctx, created.ID); err != nil {
		t.Fatalf("SoftDelete error: %v", err)
	}

	// deleted rows disappear from login lookups but stay readable by id
	if _, err := repo.GetByUsername(ctx, "ben"); !errors.Is(err, user.ErrNotFound) {
		t.Fatalf("GetByUsername after delete = %v, want ErrNotFound", err)
	}

	// a second delete affects nothing
	if err := repo.SoftDelete(ctx, created.ID); !errors.Is(err, user.ErrNotFound) {
		t.Fatalf("double delete = %v, want ErrNotFound", err)
	}

	if err := repo.Restore(ctx, created.ID); err != nil {
		t.Fatalf("Restore error: %v", err)
	}

	got, err := repo.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID error: %v", err)
	}

	if !reflect.DeepEqual(got, created) {
		t.Fatalf("restore did not round-trip: %+v vs %+v", got, created)
	}

	// restoring an active row affects nothing
	if err := repo.Restore(ctx, created.ID); !errors.Is(err, user.ErrNotFound) {
		t.Fatalf("restore of active row = %v, want ErrNotFound", err)
	}
}

func TestRunsRepo_RecentWindow(t *testing.T) {
	ctx := context.Background()
	repo := NewRunsRepo()

	today := date(t, "2026-08-29")
	repo.Today = func() civil.Date { return today }

	add := func(userID int64, day string) run.Run {
		t.Helper()

		rn, err := repo.Create(ctx, run.Run{
			UserID:   userID,
			Date:     date(t, day),
			Distance: 5,
			Duration: civil.TimeOfDay{},
			Unit:     "km",
		})
		if err != nil {
			t.Fatalf("Create error: %v", err)
		}

		return rn
	}

	onBoundary := add(1, "2026-08-22") // exactly 7 days back, included
	outside := add(1, "2026-08-21")    // 8 days back, excluded
	newest := add(1, "2026-08-28")
	otherUser := add(2, "2026-08-28")

	deleted := add(1, "2026-08-27")
	if err := repo.SoftDelete(ctx, deleted.ID); err != nil {
		t.Fatalf("SoftDelete error: %v", err)
	}

	recent, err := repo.ListRecentByUser(ctx, 1)
	if err != nil {
		t.Fatalf("ListRecentByUser error: %v", err)
	}

	if len(recent) != 2 {
		t.Fatalf("got %d recent runs, want 2: %+v", len(recent), recent)
	}

	// date descending
	if recent[0].ID != newest.ID || recent[1].ID != onBoundary.ID {
		t.Fatalf("wrong order: %+v", recent)
	}

	for _, rn := range recent {
		if rn.ID == outside.ID || rn.ID == otherUser.ID || rn.ID == deleted.ID {
			t.Fatalf("unexpected run in window: %+v", rn)
		}
	}
}

func TestRunsRepo_CreateGetRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewRunsRepo()

	tod, err := civil.ParseTimeOfDay("00:42:10")
	if err != nil {
		t.Fatalf("ParseTimeOfDay error: %v", err)
	}

	in := run.Run{
		UserID:   3,
		Date:     date(t, "2026-05-05"),
		Distance: 7.25,
		Duration: tod,
		Speed:    10.32,
		Unit:     "km",
		Notes:    "intervals",
	}

	created, err := repo.Create(ctx, in)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	got, err := repo.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID error: %v", err)
	}

	in.ID = created.ID

	if !reflect.DeepEqual(got, in) {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", got, in)
	}
}

func TestGoalsRepo_Lifecycle(t *testing.T) {
	ctx := context.Background()
	repo := NewGoalsRepo()

	dist := 21.1
	created, err := repo.Create(ctx, goal.Goal{UserID: 1, Name: "Half", Distance: &dist, Unit: "km"})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	if err := repo.SoftDelete(ctx, created.ID); err != nil {
		t.Fatalf("SoftDelete error: %v", err)
	}

	deletedList, err := repo.ListDeletedByUser(ctx, 1)
	if err != nil {
		t.Fatalf("ListDeletedByUser error: %v", err)
	}

	if len(deletedList) != 1 || deletedList[0].ID != created.ID {
		t.Fatalf("deleted list wrong: %+v", deletedList)
	}

	active, err := repo.ListByUser(ctx, 1)
	if err != nil {
		t.Fatalf("ListByUser error: %v", err)
	}

	if len(active) != 0 {
		t.Fatalf("deleted goal still listed: %+v", active)
	}

	if err := repo.Restore(ctx, created.ID); err != nil {
		t.Fatalf("Restore error: %v", err)
	}

	got, err := repo.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID error: %v", err)
	}

	if !reflect.DeepEqual(got, created) {
		t.Fatalf("restore did not round-trip: %+v vs %+v", got, created)
	}

	if err := repo.Restore(ctx, created.ID); !errors.Is(err, goal.ErrNotFound) {
		t.Fatalf("restore of active goal = %v, want ErrNotFound", err)
	}
}

func TestGoalTypesRepo_HardDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewGoalTypesRepo()

	created, err := repo.Create(ctx, goaltype.GoalType{Distance: 10, Frequency: "1x/week", Pace: "5:30/km"})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	if err := repo.Delete(ctx, created.ID); err != nil {
		t.Fatalf("Delete error: %v", err)
	}

	if _, err := repo.GetByID(ctx, created.ID); !errors.Is(err, goaltype.ErrNotFound) {
		t.Fatalf("GetByID after delete = %v, want ErrNotFound", err)
	}

	// gone for good
	if err := repo.Delete(ctx, created.ID); !errors.Is(err, goaltype.ErrNotFound) {
		t.Fatalf("second delete = %v, want ErrNotFound", err)
	}
}
