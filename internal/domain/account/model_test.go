package account

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestAccount_EffectivePrice(t *testing.T) {
	tests := []struct {
		name       string
		price      string
		promoPrice *decimal.Decimal
		isPromo    bool
		want       string
	}{
		{"promo active with promo price", "100.00", decPtr("75.50"), true, "75.50"},
		{"promo active without promo price", "100.00", nil, true, "100.00"},
		{"promo inactive with promo price", "100.00", decPtr("75.50"), false, "100.00"},
		{"promo inactive without promo price", "100.00", nil, false, "100.00"},
		{"promo price above base price still wins while promo runs", "100.00", decPtr("120.00"), true, "120.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := Account{Price: dec(tt.price), PromoPrice: tt.promoPrice, IsPromo: tt.isPromo}
			assert.True(t, a.EffectivePrice().Equal(dec(tt.want)),
				"effective price = %s, want %s", a.EffectivePrice(), tt.want)
		})
	}
}

func TestAccount_HasDiscount(t *testing.T) {
	tests := []struct {
		name       string
		price      string
		promoPrice *decimal.Decimal
		isPromo    bool
		want       bool
	}{
		{"promo below price", "100.00", decPtr("75.50"), true, true},
		{"promo price absent", "100.00", nil, true, false},
		{"promo equals price", "100.00", decPtr("100.00"), true, false},
		{"promo above price", "100.00", decPtr("120.00"), true, false},
		{"promo flag off even with cheaper promo price", "100.00", decPtr("75.50"), false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := Account{Price: dec(tt.price), PromoPrice: tt.promoPrice, IsPromo: tt.isPromo}
			assert.Equal(t, tt.want, a.HasDiscount())
		})
	}
}

func TestAccount_IsRecentlyCreated(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	fresh := Account{CreatedAt: now.Add(-6 * 24 * time.Hour)}
	assert.True(t, fresh.IsRecentlyCreated(now))

	boundary := Account{CreatedAt: now.Add(-7 * 24 * time.Hour)}
	assert.True(t, boundary.IsRecentlyCreated(now))

	stale := Account{CreatedAt: now.Add(-7*24*time.Hour - time.Second)}
	assert.False(t, stale.IsRecentlyCreated(now))
}

func TestAccount_Validate(t *testing.T) {
	valid := Account{
		ID:          "acc-1",
		Name:        "FC 25 Ultimate",
		Price:       dec("49.90"),
		Rating:      5,
		ImageNormal: "data:image/png;base64,AAAA",
		ImageHover:  "data:image/png;base64,BBBB",
		ImageDetail: "data:image/png;base64,CCCC",
		Description: "Stacked squad",
	}
	assert.NoError(t, valid.Validate())

	noName := valid
	noName.Name = "  "
	assert.Error(t, noName.Validate())

	badRating := valid
	badRating.Rating = 6
	assert.Error(t, badRating.Validate())

	negativePrice := valid
	negativePrice.Price = dec("-1")
	assert.Error(t, negativePrice.Validate())

	noImage := valid
	noImage.ImageDetail = ""
	assert.Error(t, noImage.Validate())
}

func TestPlayerCard_Validate(t *testing.T) {
	valid := PlayerCard{Image: "data:image/png;base64,AAAA", Category: CategoryForward}
	assert.NoError(t, valid.Validate())

	badCategory := PlayerCard{Image: "data:image/png;base64,AAAA", Category: "striker"}
	assert.Error(t, badCategory.Validate())

	noImage := PlayerCard{Category: CategoryManager}
	assert.Error(t, noImage.Validate())
}
