package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/geocoder89/runtrack/internal/domain/civil"
	"github.com/geocoder89/runtrack/internal/domain/goal"
	"github.com/geocoder89/runtrack/internal/observability"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type GoalsRepo struct {
	pool *pgxpool.Pool
	prom *observability.Prom
}

func NewGoalsRepo(pool *pgxpool.Pool, prom *observability.Prom) *GoalsRepo {
	return &GoalsRepo{
		pool: pool,
		prom: prom,
	}
}

func (r *GoalsRepo) observe(op string, fn func() error) error {
	if r.prom != nil {
		return r.prom.ObserveDB(op, fn)
	}
	return fn()
}

const goalColumns = `goal_id, user_id, goal_name, goal_distance, goal_frequency, target_date, unit, is_deleted`

func scanGoal(row pgx.Row) (goal.Goal, error) {
	var (
		g          goal.Goal
		targetDate *time.Time
	)

	err := row.Scan(&g.ID, &g.UserID, &g.Name, &g.Distance, &g.Frequency, &targetDate, &g.Unit, &g.IsDeleted)

	if err != nil {
		return goal.Goal{}, err
	}

	if targetDate != nil {
		d := civil.DateOf(*targetDate)
		g.TargetDate = &d
	}

	return g, nil
}

func encodeTargetDate(d *civil.Date) *time.Time {
	if d == nil {
		return nil
	}
	return &d.Time
}

func (r *GoalsRepo) Create(ctx context.Context, g goal.Goal) (goal.Goal, error) {
	err := r.observe("goals.create", func() error {
		return r.pool.QueryRow(ctx,
			`INSERT INTO goals (user_id, goal_name, goal_distance, goal_frequency, target_date, unit)
			 VALUES ($1, $2, $3, $4, $5, $6)
			 RETURNING goal_id`,
			g.UserID, g.Name, g.Distance, g.Frequency, encodeTargetDate(g.TargetDate), g.Unit,
		).Scan(&g.ID)
	})

	if err != nil {
		return goal.Goal{}, err
	}

	return g, nil
}

func (r *GoalsRepo) GetByID(ctx context.Context, id int64) (goal.Goal, error) {
	var g goal.Goal

	err := r.observe("goals.get_by_id", func() error {
		var scanErr error
		g, scanErr = scanGoal(r.pool.QueryRow(ctx,
			`SELECT `+goalColumns+` FROM goals WHERE goal_id = $1`, id))
		return scanErr
	})

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return goal.Goal{}, goal.ErrNotFound
		}

		return goal.Goal{}, err
	}

	return g, nil
}

func (r *GoalsRepo) Update(ctx context.Context, g goal.Goal) (goal.Goal, error) {
	var updated goal.Goal

	err := r.observe("goals.update", func() error {
		var scanErr error
		updated, scanErr = scanGoal(r.pool.QueryRow(ctx,
			`UPDATE goals
			 SET goal_name = $2, goal_distance = $3, goal_frequency = $4, target_date = $5, unit = $6
			 WHERE goal_id = $1
			 RETURNING `+goalColumns,
			g.ID, g.Name, g.Distance, g.Frequency, encodeTargetDate(g.TargetDate), g.Unit))
		return scanErr
	})

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return goal.Goal{}, goal.ErrNotFound
		}

		return goal.Goal{}, err
	}

	return updated, nil
}

func (r *GoalsRepo) SoftDelete(ctx context.Context, id int64) error {
	return r.setDeleted(ctx, "goals.soft_delete", id, true)
}

func (r *GoalsRepo) Restore(ctx context.Context, id int64) error {
	return r.setDeleted(ctx, "goals.restore", id, false)
}

func (r *GoalsRepo) setDeleted(ctx context.Context, op string, id int64, deleted bool) error {
	var tag pgconn.CommandTag

	err := r.observe(op, func() error {
		var execErr error
		tag, execErr = r.pool.Exec(ctx,
			`UPDATE goals SET is_deleted = $2 WHERE goal_id = $1 AND is_deleted = $3`,
			id, deleted, !deleted)
		return execErr
	})

	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return goal.ErrNotFound
	}

	return nil
}

func (r *GoalsRepo) List(ctx context.Context) ([]goal.Goal, error) {
	return r.query(ctx, "goals.list",
		`SELECT `+goalColumns+` FROM goals WHERE is_deleted = FALSE ORDER BY goal_id`)
}

func (r *GoalsRepo) ListByUser(ctx context.Context, userID int64) ([]goal.Goal, error) {
	return r.query(ctx, "goals.list_by_user",
		`SELECT `+goalColumns+` FROM goals
		 WHERE user_id = $1 AND is_deleted = FALSE
		 ORDER BY goal_id`, userID)
}

func (r *GoalsRepo) ListDeletedByUser(ctx context.Context, userID int64) ([]goal.Goal, error) {
	return r.query(ctx, "goals.list_deleted_by_user",
		`SELECT `+goalColumns+` FROM goals
		 WHERE user_id = $1 AND is_deleted = TRUE
		 ORDER BY goal_id`, userID)
}

func (r *GoalsRepo) query(ctx context.Context, op, sql string, args ...any) ([]goal.Goal, error) {
	var output []goal.Goal

	err := r.observe(op, func() error {
		rows, err := r.pool.Query(ctx, sql, args...)

		if err != nil {
			return err
		}

		defer rows.Close()

		output = make([]goal.Goal, 0)

		for rows.Next() {
			g, err := scanGoal(rows)

			if err != nil {
				return err
			}

			output = append(output, g)
		}

		return rows.Err()
	})

	if err != nil {
		return nil, err
	}

	return output, nil
}
