package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

type AdminTokenRepository struct {
	db *sqlx.DB
}

func NewAdminTokenRepository(db *sqlx.DB) *AdminTokenRepository {
	return &AdminTokenRepository{db: db}
}

func (r *AdminTokenRepository) ExistsActive(ctx context.Context, token string) (bool, error) {
	const query = `
SELECT EXISTS (
    SELECT 1
    FROM admin_tokens
    WHERE token = $1
      AND is_active = TRUE
)`

	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, token); err != nil {
		return false, fmt.Errorf("check admin token: %w", err)
	}

	return exists, nil
}
