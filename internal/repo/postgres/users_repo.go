package postgres

import (
	"context"
	"errors"

	"github.com/geocoder89/runtrack/internal/domain/user"
	"github.com/geocoder89/runtrack/internal/observability"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UsersRepo struct {
	pool *pgxpool.Pool
	prom *observability.Prom
}

func NewUsersRepo(pool *pgxpool.Pool, prom *observability.Prom) *UsersRepo {
	return &UsersRepo{
		pool: pool,
		prom: prom,
	}
}

func (r *UsersRepo) observe(op string, fn func() error) error {
	if r.prom != nil {
		return r.prom.ObserveDB(op, fn)
	}
	return fn()
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError

	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}

const userColumns = `user_id, username, name, password_hash, unit_preference, is_deleted`

func scanUser(row pgx.Row) (user.User, error) {
	var u user.User

	err := row.Scan(&u.ID, &u.Username, &u.Name, &u.PasswordHash, &u.UnitPreference, &u.IsDeleted)

	return u, err
}

// Create inserts the user and fills in the generated id. The username unique
// index covers soft-deleted rows too, so a name once used stays taken.
func (r *UsersRepo) Create(ctx context.Context, u user.User) (user.User, error) {
	err := r.observe("users.create", func() error {
		return r.pool.QueryRow(ctx,
			`INSERT INTO users (username, name, password_hash, unit_preference)
			 VALUES ($1, $2, $3, $4)
			 RETURNING user_id`,
			u.Username, u.Name, u.PasswordHash, u.UnitPreference,
		).Scan(&u.ID)
	})

	if err != nil {
		if isUniqueViolation(err) {
			return user.User{}, user.ErrUsernameTaken
		}

		return user.User{}, err
	}

	return u, nil
}

func (r *UsersRepo) GetByID(ctx context.Context, id int64) (user.User, error) {
	var u user.User

	err := r.observe("users.get_by_id", func() error {
		var scanErr error
		u, scanErr = scanUser(r.pool.QueryRow(ctx,
			`SELECT `+userColumns+` FROM users WHERE user_id = $1`, id))
		return scanErr
	})

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrNotFound
		}

		return user.User{}, err
	}

	return u, nil
}

// GetByUsername only sees non-deleted accounts; it backs the login flow.
func (r *UsersRepo) GetByUsername(ctx context.Context, username string) (user.User, error) {
	var u user.User

	err := r.observe("users.get_by_username", func() error {
		var scanErr error
		u, scanErr = scanUser(r.pool.QueryRow(ctx,
			`SELECT `+userColumns+` FROM users WHERE username = $1 AND is_deleted = FALSE`, username))
		return scanErr
	})

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrNotFound
		}

		return user.User{}, err
	}

	return u, nil
}

func (r *UsersRepo) List(ctx context.Context) ([]user.User, error) {
	var output []user.User

	err := r.observe("users.list", func() error {
		rows, err := r.pool.Query(ctx,
			`SELECT `+userColumns+` FROM users WHERE is_deleted = FALSE ORDER BY user_id`)

		if err != nil {
			return err
		}

		defer rows.Close()

		output = make([]user.User, 0)

		for rows.Next() {
			u, err := scanUser(rows)

			if err != nil {
				return err
			}

			output = append(output, u)
		}

		return rows.Err()
	})

	if err != nil {
		return nil, err
	}

	return output, nil
}

// Update overwrites every mutable field by id. Callers supply an already
// hashed password, unchanged or not.
func (r *UsersRepo) Update(ctx context.Context, u user.User) (user.User, error) {
	var updated user.User

	err := r.observe("users.update", func() error {
		var scanErr error
		updated, scanErr = scanUser(r.pool.QueryRow(ctx,
			`UPDATE users
			 SET username = $2, name = $3, password_hash = $4, unit_preference = $5
			 WHERE user_id = $1
			 RETURNING `+userColumns,
			u.ID, u.Username, u.Name, u.PasswordHash, u.UnitPreference))
		return scanErr
	})

	if err != nil {
		if isUniqueViolation(err) {
			return user.User{}, user.ErrUsernameTaken
		}

		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrNotFound
		}

		return user.User{}, err
	}

	return updated, nil
}

// SoftDelete flips the deleted flag. The state guard in the WHERE clause makes
// a second delete report zero rows, which surfaces as not found.
func (r *UsersRepo) SoftDelete(ctx context.Context, id int64) error {
	return r.setDeleted(ctx, "users.soft_delete", id, true)
}

func (r *UsersRepo) Restore(ctx context.Context, id int64) error {
	return r.setDeleted(ctx, "users.restore", id, false)
}

func (r *UsersRepo) setDeleted(ctx context.Context, op string, id int64, deleted bool) error {
	var tag pgconn.CommandTag

	err := r.observe(op, func() error {
		var execErr error
		tag, execErr = r.pool.Exec(ctx,
			`UPDATE users SET is_deleted = $2 WHERE user_id = $1 AND is_deleted = $3`,
			id, deleted, !deleted)
		return execErr
	})

	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return user.ErrNotFound
	}

	return nil
}
