package account

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// CardCategory classifies a player card within an account listing.
type CardCategory string

const (
	CategoryManager    CardCategory = "manager"
	CategoryDefender   CardCategory = "defender"
	CategoryMidfielder CardCategory = "midfielder"
	CategoryForward    CardCategory = "forward"
)

var AllCategories = map[CardCategory]struct{}{
	CategoryManager:    {},
	CategoryDefender:   {},
	CategoryMidfielder: {},
	CategoryForward:    {},
}

// recentWindow is how long after creation a listing counts as recently created.
const recentWindow = 7 * 24 * time.Hour

// Account is a sellable catalog listing with its owned player cards.
type Account struct {
	ID          string
	Name        string
	Price       decimal.Decimal
	PromoPrice  *decimal.Decimal
	Rating      int
	ImageNormal string
	ImageHover  string
	ImageDetail string
	Description string
	IsActive    bool
	IsNew       bool
	IsPromo     bool
	Cards       []PlayerCard
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (a Account) Validate() error {
	if a.ID == "" {
		return fmt.Errorf("account id is required")
	}
	if strings.TrimSpace(a.Name) == "" {
		return fmt.Errorf("account name is required")
	}
	if a.Price.IsNegative() {
		return fmt.Errorf("account price must not be negative")
	}
	if a.PromoPrice != nil && a.PromoPrice.IsNegative() {
		return fmt.Errorf("account promo price must not be negative")
	}
	if a.Rating < 1 || a.Rating > 5 {
		return fmt.Errorf("account rating must be between 1 and 5")
	}
	if a.ImageNormal == "" {
		return fmt.Errorf("account normal image is required")
	}
	if a.ImageHover == "" {
		return fmt.Errorf("account hover image is required")
	}
	if a.ImageDetail == "" {
		return fmt.Errorf("account detail image is required")
	}
	if strings.TrimSpace(a.Description) == "" {
		return fmt.Errorf("account description is required")
	}

	return nil
}

// EffectivePrice is the price actually charged: the promo price while a
// promotion is running and a promo price is set, the base price otherwise.
// Computed on every read, never stored.
func (a Account) EffectivePrice() decimal.Decimal {
	if a.IsPromo && a.PromoPrice != nil {
		return *a.PromoPrice
	}
	return a.Price
}

// HasDiscount reports whether the running promotion actually undercuts the
// base price.
func (a Account) HasDiscount() bool {
	return a.IsPromo && a.PromoPrice != nil && a.PromoPrice.LessThan(a.Price)
}

// IsRecentlyCreated reports whether the listing was created within the last
// seven days of the given evaluation time.
func (a Account) IsRecentlyCreated(now time.Time) bool {
	return !a.CreatedAt.Before(now.Add(-recentWindow))
}

// PlayerCard is a categorized sub-image owned by exactly one account.
type PlayerCard struct {
	ID        string
	AccountID string
	Image     string
	Category  CardCategory
	CreatedAt time.Time
}

func (c PlayerCard) Validate() error {
	if c.Image == "" {
		return fmt.Errorf("player card image is required")
	}
	if _, ok := AllCategories[c.Category]; !ok {
		return fmt.Errorf("invalid player card category: %s", c.Category)
	}

	return nil
}
