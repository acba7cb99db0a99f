package db

import (
	"context"
	"errors"

	"github.com/geocoder89/runtrack/internal/config"
	"github.com/geocoder89/runtrack/internal/security"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// EnsureSeedUser creates the configured bootstrap account if it does not
// exist yet. A no-op when SEED_USERNAME/SEED_PASSWORD are unset.
func EnsureSeedUser(ctx context.Context, pool *pgxpool.Pool, cfg config.Config) error {
	if cfg.SeedUsername == "" || cfg.SeedPassword == "" {
		return nil
	}

	// check if the user exists

	var dummy int64

	err := pool.QueryRow(ctx, `SELECT user_id FROM users WHERE username = $1`, cfg.SeedUsername).Scan(&dummy)

	if err == nil {
		return nil
	}

	if !errors.Is(err, pgx.ErrNoRows) {
		return err
	}

	hash, err := security.HashPassword(cfg.SeedPassword)

	if err != nil {
		return err
	}

	_, err = pool.Exec(ctx,
		`INSERT INTO users (username, name, password_hash, unit_preference)
		 VALUES ($1, $2, $3, 'km')`,
		cfg.SeedUsername, cfg.SeedName, hash,
	)

	return err
}
