package db

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"morisco/internal/domain/auth"
	"morisco/internal/platform/config"
)

// Seed ensures the admin account from config exists. Existing users are
// never overwritten.
func Seed(ctx context.Context, pool *pgxpool.Pool, cfg config.Config) error {
	email := strings.TrimSpace(cfg.SeedAdminEmail)
	if email == "" || cfg.SeedAdminPassword == "" {
		return nil
	}

	var count int
	if err := pool.QueryRow(ctx, "SELECT COUNT(1) FROM users WHERE lower(email) = lower($1)", email).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := auth.HashPassword(cfg.SeedAdminPassword)
	if err != nil {
		return err
	}

	_, err = pool.Exec(ctx, `
    INSERT INTO users (email, name, role, password_hash)
    VALUES ($1, $2, 'admin', $3)
  `, email, cfg.SeedAdminName, hash)
	return err
}
