package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/bergomi/bergomi-store/internal/domain/account"
	qb "github.com/bergomi/bergomi-store/internal/platform/querybuilder"
)

type AccountRepository struct {
	db *sqlx.DB
}

func NewAccountRepository(db *sqlx.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

func (r *AccountRepository) ListActive(ctx context.Context) ([]account.Account, error) {
	query, args, err := accountBaseSelectBuilder().
		Where(qb.Eq("is_active", true)).
		OrderBy("created_at DESC", "id DESC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list active accounts query: %w", err)
	}

	var rows []accountTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list active accounts: %w", err)
	}
	if len(rows) == 0 {
		return []account.Account{}, nil
	}

	ids := make([]string, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.PublicID)
	}

	cardsByAccount, err := r.listCardsByAccounts(ctx, ids)
	if err != nil {
		return nil, err
	}

	out := make([]account.Account, 0, len(rows))
	for _, row := range rows {
		out = append(out, accountFromRow(row, cardsByAccount[row.PublicID]))
	}
	return out, nil
}

func (r *AccountRepository) GetByID(ctx context.Context, id string) (account.Account, bool, error) {
	query, args, err := accountBaseSelectBuilder().
		Where(qb.Eq("public_id", id)).
		ToSQL()
	if err != nil {
		return account.Account{}, false, fmt.Errorf("build get account query: %w", err)
	}

	var row accountTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return account.Account{}, false, nil
		}
		return account.Account{}, false, fmt.Errorf("get account: %w", err)
	}

	cardsByAccount, err := r.listCardsByAccounts(ctx, []string{row.PublicID})
	if err != nil {
		return account.Account{}, false, err
	}

	return accountFromRow(row, cardsByAccount[row.PublicID]), true, nil
}

func (r *AccountRepository) Create(ctx context.Context, item account.Account) (account.Account, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return account.Account{}, fmt.Errorf("begin tx for account create: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	query, args, err := qb.InsertModel("accounts", accountInsertFromDomain(item), "RETURNING created_at, updated_at")
	if err != nil {
		return account.Account{}, fmt.Errorf("build insert account query: %w", err)
	}

	var createdAt, updatedAt time.Time
	rows, err := tx.QueryxContext(ctx, query, args...)
	if err != nil {
		return account.Account{}, fmt.Errorf("insert account: %w", err)
	}
	defer rows.Close()
	if rows.Next() {
		if err := rows.Scan(&createdAt, &updatedAt); err != nil {
			return account.Account{}, fmt.Errorf("scan inserted account: %w", err)
		}
	} else {
		return account.Account{}, fmt.Errorf("insert account: no row returned")
	}
	rows.Close()

	cards, err := insertCards(ctx, tx, item.ID, item.Cards)
	if err != nil {
		return account.Account{}, err
	}

	if err := tx.Commit(); err != nil {
		return account.Account{}, fmt.Errorf("commit account create tx: %w", err)
	}

	item.Cards = cards
	item.CreatedAt = createdAt
	item.UpdatedAt = updatedAt
	return item, nil
}

func (r *AccountRepository) Replace(ctx context.Context, item account.Account) (account.Account, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return account.Account{}, fmt.Errorf("begin tx for account replace: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	query, args, err := qb.Update("accounts").
		Set("name", item.Name).
		Set("price", item.Price).
		Set("promo_price", nullDecimalFromPtr(item.PromoPrice)).
		Set("rating", item.Rating).
		Set("image_normal", item.ImageNormal).
		Set("image_hover", item.ImageHover).
		Set("image_detail", item.ImageDetail).
		Set("description", item.Description).
		Set("is_active", item.IsActive).
		Set("is_new", item.IsNew).
		Set("is_promo", item.IsPromo).
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("public_id", item.ID)).
		Suffix("RETURNING created_at, updated_at").
		ToSQL()
	if err != nil {
		return account.Account{}, fmt.Errorf("build update account query: %w", err)
	}

	var createdAt, updatedAt time.Time
	rows, err := tx.QueryxContext(ctx, query, args...)
	if err != nil {
		return account.Account{}, fmt.Errorf("update account: %w", err)
	}
	defer rows.Close()
	if rows.Next() {
		if err := rows.Scan(&createdAt, &updatedAt); err != nil {
			return account.Account{}, fmt.Errorf("scan updated account: %w", err)
		}
	} else {
		return account.Account{}, fmt.Errorf("update account: no row returned")
	}
	rows.Close()

	deleteQuery, deleteArgs, err := qb.DeleteFrom("player_cards").
		Where(qb.Eq("account_public_id", item.ID)).
		ToSQL()
	if err != nil {
		return account.Account{}, fmt.Errorf("build delete cards query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return account.Account{}, fmt.Errorf("delete existing cards: %w", err)
	}

	cards, err := insertCards(ctx, tx, item.ID, item.Cards)
	if err != nil {
		return account.Account{}, err
	}

	if err := tx.Commit(); err != nil {
		return account.Account{}, fmt.Errorf("commit account replace tx: %w", err)
	}

	item.Cards = cards
	item.CreatedAt = createdAt
	item.UpdatedAt = updatedAt
	return item, nil
}

func (r *AccountRepository) Delete(ctx context.Context, id string) (bool, error) {
	// Cards go with the account through ON DELETE CASCADE.
	query, args, err := qb.DeleteFrom("accounts").
		Where(qb.Eq("public_id", id)).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build delete account query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("delete account: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete account rows affected: %w", err)
	}

	return affected > 0, nil
}

func (r *AccountRepository) listCardsByAccounts(ctx context.Context, accountIDs []string) (map[string][]account.PlayerCard, error) {
	query, args, err := qb.Select(
		"id", "public_id", "account_public_id", "image", "category", "created_at",
	).
		From("player_cards").
		Where(qb.AnyOf("account_public_id", pq.Array(accountIDs))).
		OrderBy("account_public_id", "category", "created_at", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list cards query: %w", err)
	}

	var rows []cardTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list player cards: %w", err)
	}

	out := make(map[string][]account.PlayerCard, len(accountIDs))
	for _, row := range rows {
		out[row.AccountPublicID] = append(out[row.AccountPublicID], cardFromRow(row))
	}
	return out, nil
}

func insertCards(ctx context.Context, tx *sqlx.Tx, accountID string, cards []account.PlayerCard) ([]account.PlayerCard, error) {
	const insertCardQuery = `
INSERT INTO player_cards (public_id, account_public_id, image, category)
VALUES (:public_id, :account_public_id, :image, :category)
RETURNING created_at`

	out := make([]account.PlayerCard, 0, len(cards))
	for _, card := range cards {
		cardSQL, cardArgs, err := sqlx.Named(insertCardQuery, map[string]any{
			"public_id":         card.ID,
			"account_public_id": accountID,
			"image":             card.Image,
			"category":          string(card.Category),
		})
		if err != nil {
			return nil, fmt.Errorf("bind insert card=%s query: %w", card.ID, err)
		}
		cardSQL = tx.Rebind(cardSQL)

		var createdAt time.Time
		if err := tx.QueryRowxContext(ctx, cardSQL, cardArgs...).Scan(&createdAt); err != nil {
			return nil, fmt.Errorf("insert card=%s: %w", card.ID, err)
		}

		card.AccountID = accountID
		card.CreatedAt = createdAt
		out = append(out, card)
	}

	return out, nil
}

func accountBaseSelectBuilder() *qb.SelectBuilder {
	return qb.Select(
		"id", "public_id", "name", "price", "promo_price", "rating",
		"image_normal", "image_hover", "image_detail", "description",
		"is_active", "is_new", "is_promo", "created_at", "updated_at",
	).From("accounts")
}
