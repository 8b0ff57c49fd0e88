package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/bergomi/bergomi-store/internal/domain/contactlink"
	qb "github.com/bergomi/bergomi-store/internal/platform/querybuilder"
)

type linkTableModel struct {
	ID        int64     `db:"id"`
	PublicID  string    `db:"public_id"`
	Link      string    `db:"link"`
	IsActive  bool      `db:"is_active"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

type linkInsertModel struct {
	PublicID string `db:"public_id"`
	Link     string `db:"link"`
	IsActive bool   `db:"is_active"`
}

type ContactLinkRepository struct {
	db *sqlx.DB
}

func NewContactLinkRepository(db *sqlx.DB) *ContactLinkRepository {
	return &ContactLinkRepository{db: db}
}

func (r *ContactLinkRepository) GetActive(ctx context.Context) (contactlink.Link, bool, error) {
	query, args, err := qb.Select("id", "public_id", "link", "is_active", "created_at", "updated_at").
		From("whatsapp_links").
		Where(qb.Eq("is_active", true)).
		OrderBy("created_at DESC", "id DESC").
		Limit(1).
		ToSQL()
	if err != nil {
		return contactlink.Link{}, false, fmt.Errorf("build get active link query: %w", err)
	}

	var row linkTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return contactlink.Link{}, false, nil
		}
		return contactlink.Link{}, false, fmt.Errorf("get active link: %w", err)
	}

	return linkFromRow(row), true, nil
}

func (r *ContactLinkRepository) DeactivateAll(ctx context.Context) error {
	query, args, err := qb.Update("whatsapp_links").
		Set("is_active", false).
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("is_active", true)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build deactivate links query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("deactivate links: %w", err)
	}

	return nil
}

func (r *ContactLinkRepository) Create(ctx context.Context, item contactlink.Link) (contactlink.Link, error) {
	query, args, err := qb.InsertModel("whatsapp_links", linkInsertModel{
		PublicID: item.ID,
		Link:     item.URL,
		IsActive: item.IsActive,
	}, "RETURNING created_at, updated_at")
	if err != nil {
		return contactlink.Link{}, fmt.Errorf("build insert link query: %w", err)
	}

	var createdAt, updatedAt time.Time
	if err := r.db.QueryRowxContext(ctx, query, args...).Scan(&createdAt, &updatedAt); err != nil {
		return contactlink.Link{}, fmt.Errorf("insert link: %w", err)
	}

	item.CreatedAt = createdAt
	item.UpdatedAt = updatedAt
	return item, nil
}

func linkFromRow(row linkTableModel) contactlink.Link {
	return contactlink.Link{
		ID:        row.PublicID,
		URL:       row.Link,
		IsActive:  row.IsActive,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}
