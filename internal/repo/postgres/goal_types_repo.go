package postgres

import (
	"context"
	"errors"

	"github.com/geocoder89/runtrack/internal/domain/goaltype"
	"github.com/geocoder89/runtrack/internal/observability"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// GoalTypesRepo has no soft-delete state machine; Delete removes the row for
// good.
type GoalTypesRepo struct {
	pool *pgxpool.Pool
	prom *observability.Prom
}

func NewGoalTypesRepo(pool *pgxpool.Pool, prom *observability.Prom) *GoalTypesRepo {
	return &GoalTypesRepo{
		pool: pool,
		prom: prom,
	}
}

func (r *GoalTypesRepo) observe(op string, fn func() error) error {
	if r.prom != nil {
		return r.prom.ObserveDB(op, fn)
	}
	return fn()
}

func (r *GoalTypesRepo) Create(ctx context.Context, gt goaltype.GoalType) (goaltype.GoalType, error) {
	err := r.observe("goal_types.create", func() error {
		return r.pool.QueryRow(ctx,
			`INSERT INTO goal_types (distance, frequency, pace)
			 VALUES ($1, $2, $3)
			 RETURNING goal_type_id`,
			gt.Distance, gt.Frequency, gt.Pace,
		).Scan(&gt.ID)
	})

	if err != nil {
		return goaltype.GoalType{}, err
	}

	return gt, nil
}

func (r *GoalTypesRepo) GetByID(ctx context.Context, id int64) (goaltype.GoalType, error) {
	var gt goaltype.GoalType

	err := r.observe("goal_types.get_by_id", func() error {
		return r.pool.QueryRow(ctx,
			`SELECT goal_type_id, distance, frequency, pace FROM goal_types WHERE goal_type_id = $1`,
			id,
		).Scan(&gt.ID, &gt.Distance, &gt.Frequency, &gt.Pace)
	})

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return goaltype.GoalType{}, goaltype.ErrNotFound
		}

		return goaltype.GoalType{}, err
	}

	return gt, nil
}

func (r *GoalTypesRepo) Update(ctx context.Context, gt goaltype.GoalType) (goaltype.GoalType, error) {
	var updated goaltype.GoalType

	err := r.observe("goal_types.update", func() error {
		return r.pool.QueryRow(ctx,
			`UPDATE goal_types
			 SET distance = $2, frequency = $3, pace = $4
			 WHERE goal_type_id = $1
			 RETURNING goal_type_id, distance, frequency, pace`,
			gt.ID, gt.Distance, gt.Frequency, gt.Pace,
		).Scan(&updated.ID, &updated.Distance, &updated.Frequency, &updated.Pace)
	})

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return goaltype.GoalType{}, goaltype.ErrNotFound
		}

		return goaltype.GoalType{}, err
	}

	return updated, nil
}

func (r *GoalTypesRepo) Delete(ctx context.Context, id int64) error {
	var tag pgconn.CommandTag

	err := r.observe("goal_types.delete", func() error {
		var execErr error
		tag, execErr = r.pool.Exec(ctx, `DELETE FROM goal_types WHERE goal_type_id = $1`, id)
		return execErr
	})

	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return goaltype.ErrNotFound
	}

	return nil
}

func (r *GoalTypesRepo) List(ctx context.Context) ([]goaltype.GoalType, error) {
	var output []goaltype.GoalType

	err := r.observe("goal_types.list", func() error {
		rows, err := r.pool.Query(ctx,
			`SELECT goal_type_id, distance, frequency, pace FROM goal_types ORDER BY goal_type_id`)

		if err != nil {
			return err
		}

		defer rows.Close()

		output = make([]goaltype.GoalType, 0)

		for rows.Next() {
			var gt goaltype.GoalType

			if err := rows.Scan(&gt.ID, &gt.Distance, &gt.Frequency, &gt.Pace); err != nil {
				return err
			}

			output = append(output, gt)
		}

		return rows.Err()
	})

	if err != nil {
		return nil, err
	}

	return output, nil
}
