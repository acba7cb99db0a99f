package postgres

import (
	"context"
	"errors"

	"github.com/geocoder89/runtrack/internal/domain/civil"
	"github.com/geocoder89/runtrack/internal/domain/run"
	"github.com/geocoder89/runtrack/internal/observability"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type RunsRepo struct {
	pool *pgxpool.Pool
	prom *observability.Prom
}

func NewRunsRepo(pool *pgxpool.Pool, prom *observability.Prom) *RunsRepo {
	return &RunsRepo{
		pool: pool,
		prom: prom,
	}
}

func (r *RunsRepo) observe(op string, fn func() error) error {
	if r.prom != nil {
		return r.prom.ObserveDB(op, fn)
	}
	return fn()
}

const runColumns = `run_id, user_id, run_date, run_distance, run_duration, run_speed, unit, notes, is_deleted`

func scanRun(row pgx.Row) (run.Run, error) {
	var (
		rn       run.Run
		duration pgtype.Time
	)

	err := row.Scan(&rn.ID, &rn.UserID, &rn.Date.Time, &rn.Distance, &duration, &rn.Speed, &rn.Unit, &rn.Notes, &rn.IsDeleted)

	if err != nil {
		return run.Run{}, err
	}

	rn.Duration = civil.FromMicroseconds(duration.Microseconds)

	return rn, nil
}

func encodeDuration(tod civil.TimeOfDay) pgtype.Time {
	return pgtype.Time{Microseconds: tod.Microseconds(), Valid: true}
}

func (r *RunsRepo) Create(ctx context.Context, rn run.Run) (run.Run, error) {
	err := r.observe("runs.create", func() error {
		return r.pool.QueryRow(ctx,
			`INSERT INTO runs (user_id, run_date, run_distance, run_duration, run_speed, unit, notes)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)
			 RETURNING run_id`,
			rn.UserID, rn.Date.Time, rn.Distance, encodeDuration(rn.Duration), rn.Speed, rn.Unit, rn.Notes,
		).Scan(&rn.ID)
	})

	if err != nil {
		return run.Run{}, err
	}

	return rn, nil
}

func (r *RunsRepo) GetByID(ctx context.Context, id int64) (run.Run, error) {
	var rn run.Run

	err := r.observe("runs.get_by_id", func() error {
		var scanErr error
		rn, scanErr = scanRun(r.pool.QueryRow(ctx,
			`SELECT `+runColumns+` FROM runs WHERE run_id = $1`, id))
		return scanErr
	})

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return run.Run{}, run.ErrNotFound
		}

		return run.Run{}, err
	}

	return rn, nil
}

// Update trusts the caller-supplied user id; ownership is not re-checked
// against the stored row.
func (r *RunsRepo) Update(ctx context.Context, rn run.Run) (run.Run, error) {
	var updated run.Run

	err := r.observe("runs.update", func() error {
		var scanErr error
		updated, scanErr = scanRun(r.pool.QueryRow(ctx,
			`UPDATE runs
			 SET user_id = $2, run_date = $3, run_distance = $4, run_duration = $5,
			     run_speed = $6, unit = $7, notes = $8
			 WHERE run_id = $1
			 RETURNING `+runColumns,
			rn.ID, rn.UserID, rn.Date.Time, rn.Distance, encodeDuration(rn.Duration), rn.Speed, rn.Unit, rn.Notes))
		return scanErr
	})

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return run.Run{}, run.ErrNotFound
		}

		return run.Run{}, err
	}

	return updated, nil
}

func (r *RunsRepo) SoftDelete(ctx context.Context, id int64) error {
	return r.setDeleted(ctx, "runs.soft_delete", id, true)
}

func (r *RunsRepo) Restore(ctx context.Context, id int64) error {
	return r.setDeleted(ctx, "runs.restore", id, false)
}

func (r *RunsRepo) setDeleted(ctx context.Context, op string, id int64, deleted bool) error {
	var tag pgconn.CommandTag

	err := r.observe(op, func() error {
		var execErr error
		tag, execErr = r.pool.Exec(ctx,
			`UPDATE runs SET is_deleted = $2 WHERE run_id = $1 AND is_deleted = $3`,
			id, deleted, !deleted)
		return execErr
	})

	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return run.ErrNotFound
	}

	return nil
}

func (r *RunsRepo) List(ctx context.Context) ([]run.Run, error) {
	return r.query(ctx, "runs.list",
		`SELECT `+runColumns+` FROM runs WHERE is_deleted = FALSE ORDER BY run_id`)
}

func (r *RunsRepo) ListByUser(ctx context.Context, userID int64) ([]run.Run, error) {
	return r.query(ctx, "runs.list_by_user",
		`SELECT `+runColumns+` FROM runs
		 WHERE user_id = $1 AND is_deleted = FALSE
		 ORDER BY run_date DESC`, userID)
}

func (r *RunsRepo) ListDeletedByUser(ctx context.Context, userID int64) ([]run.Run, error) {
	return r.query(ctx, "runs.list_deleted_by_user",
		`SELECT `+runColumns+` FROM runs
		 WHERE user_id = $1 AND is_deleted = TRUE
		 ORDER BY run_date DESC`, userID)
}

// ListRecentByUser returns the trailing seven days of runs, the boundary day
// included.
func (r *RunsRepo) ListRecentByUser(ctx context.Context, userID int64) ([]run.Run, error) {
	return r.query(ctx, "runs.list_recent_by_user",
		`SELECT `+runColumns+` FROM runs
		 WHERE user_id = $1
		   AND run_date >= CURRENT_DATE - 7
		   AND is_deleted = FALSE
		 ORDER BY run_date DESC`, userID)
}

func (r *RunsRepo) query(ctx context.Context, op, sql string, args ...any) ([]run.Run, error) {
	var output []run.Run

	err := r.observe(op, func() error {
		rows, err := r.pool.Query(ctx, sql, args...)

		if err != nil {
			return err
		}

		defer rows.Close()

		output = make([]run.Run, 0)

		for rows.Next() {
			rn, err := scanRun(rows)

			if err != nil {
				return err
			}

			output = append(output, rn)
		}

		return rows.Err()
	})

	if err != nil {
		return nil, err
	}

	return output, nil
}
