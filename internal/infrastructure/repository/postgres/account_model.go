package postgres

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/bergomi/bergomi-store/internal/domain/account"
)

type accountTableModel struct {
	ID          int64               `db:"id"`
	PublicID    string              `db:"public_id"`
	Name        string              `db:"name"`
	Price       decimal.Decimal     `db:"price"`
	PromoPrice  decimal.NullDecimal `db:"promo_price"`
	Rating      int                 `db:"rating"`
	ImageNormal string              `db:"image_normal"`
	ImageHover  string              `db:"image_hover"`
	ImageDetail string              `db:"image_detail"`
	Description string              `db:"description"`
	IsActive    bool                `db:"is_active"`
	IsNew       bool                `db:"is_new"`
	IsPromo     bool                `db:"is_promo"`
	CreatedAt   time.Time           `db:"created_at"`
	UpdatedAt   time.Time           `db:"updated_at"`
}

type accountInsertModel struct {
	PublicID    string              `db:"public_id"`
	Name        string              `db:"name"`
	Price       decimal.Decimal     `db:"price"`
	PromoPrice  decimal.NullDecimal `db:"promo_price"`
	Rating      int                 `db:"rating"`
	ImageNormal string              `db:"image_normal"`
	ImageHover  string              `db:"image_hover"`
	ImageDetail string              `db:"image_detail"`
	Description string              `db:"description"`
	IsActive    bool                `db:"is_active"`
	IsNew       bool                `db:"is_new"`
	IsPromo     bool                `db:"is_promo"`
}

type cardTableModel struct {
	ID              int64     `db:"id"`
	PublicID        string    `db:"public_id"`
	AccountPublicID string    `db:"account_public_id"`
	Image           string    `db:"image"`
	Category        string    `db:"category"`
	CreatedAt       time.Time `db:"created_at"`
}

func accountInsertFromDomain(item account.Account) accountInsertModel {
	return accountInsertModel{
		PublicID:    item.ID,
		Name:        item.Name,
		Price:       item.Price,
		PromoPrice:  nullDecimalFromPtr(item.PromoPrice),
		Rating:      item.Rating,
		ImageNormal: item.ImageNormal,
		ImageHover:  item.ImageHover,
		ImageDetail: item.ImageDetail,
		Description: item.Description,
		IsActive:    item.IsActive,
		IsNew:       item.IsNew,
		IsPromo:     item.IsPromo,
	}
}

func accountFromRow(row accountTableModel, cards []account.PlayerCard) account.Account {
	return account.Account{
		ID:          row.PublicID,
		Name:        row.Name,
		Price:       row.Price,
		PromoPrice:  ptrFromNullDecimal(row.PromoPrice),
		Rating:      row.Rating,
		ImageNormal: row.ImageNormal,
		ImageHover:  row.ImageHover,
		ImageDetail: row.ImageDetail,
		Description: row.Description,
		IsActive:    row.IsActive,
		IsNew:       row.IsNew,
		IsPromo:     row.IsPromo,
		Cards:       cards,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}

func cardFromRow(row cardTableModel) account.PlayerCard {
	return account.PlayerCard{
		ID:        row.PublicID,
		AccountID: row.AccountPublicID,
		Image:     row.Image,
		Category:  account.CardCategory(row.Category),
		CreatedAt: row.CreatedAt,
	}
}

func nullDecimalFromPtr(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: *d, Valid: true}
}

func ptrFromNullDecimal(d decimal.NullDecimal) *decimal.Decimal {
	if !d.Valid {
		return nil
	}
	v := d.Decimal
	return &v
}
