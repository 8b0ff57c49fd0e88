package httpapi

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"
	"github.com/shopspring/decimal"

	"github.com/bergomi/bergomi-store/internal/domain/account"
	"github.com/bergomi/bergomi-store/internal/platform/logging"
	"github.com/bergomi/bergomi-store/internal/usecase"
)

type Handler struct {
	accountService     *usecase.AccountService
	contactLinkService *usecase.ContactLinkService
	adminService       *usecase.AdminService
	logger             *logging.Logger
	validator          *validator.Validate
	now                func() time.Time
}

func NewHandler(
	accountService *usecase.AccountService,
	contactLinkService *usecase.ContactLinkService,
	adminService *usecase.AdminService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		accountService:     accountService,
		contactLinkService: contactLinkService,
		adminService:       adminService,
		logger:             logger,
		validator:          validator.New(),
		now:                func() time.Time { return time.Now().UTC() },
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) ListAccounts(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListAccounts")
	defer span.End()

	items, err := h.accountService.List(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list accounts failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	now := h.now()
	dtos := make([]accountDTO, 0, len(items))
	for _, item := range items {
		dtos = append(dtos, accountToDTO(item, now))
	}

	writeSuccess(ctx, w, http.StatusOK, dtos)
}

func (h *Handler) GetAccount(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetAccount")
	defer span.End()

	accountID := strings.TrimSpace(r.PathValue("accountID"))
	item, err := h.accountService.Get(ctx, accountID)
	if err != nil {
		h.logger.WarnContext(ctx, "get account failed", "account_id", accountID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, accountToDTO(item, h.now()))
}

func (h *Handler) CreateAccount(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateAccount")
	defer span.End()

	req, err := h.decodeAccountPayload(ctx, r.Body)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.accountService.Create(ctx, req.toInput())
	if err != nil {
		h.logger.WarnContext(ctx, "create account failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, accountToDTO(item, h.now()))
}

func (h *Handler) UpdateAccount(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateAccount")
	defer span.End()

	accountID := strings.TrimSpace(r.PathValue("accountID"))
	req, err := h.decodeAccountPayload(ctx, r.Body)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.accountService.Update(ctx, accountID, req.toInput())
	if err != nil {
		h.logger.WarnContext(ctx, "update account failed", "account_id", accountID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, accountToDTO(item, h.now()))
}

func (h *Handler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteAccount")
	defer span.End()

	accountID := strings.TrimSpace(r.PathValue("accountID"))
	if err := h.accountService.Delete(ctx, accountID); err != nil {
		h.logger.WarnContext(ctx, "delete account failed", "account_id", accountID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, nil)
}

func (h *Handler) decodeAccountPayload(ctx context.Context, body io.Reader) (accountPayload, error) {
	var req accountPayload
	decoder := jsoniter.ConfigCompatibleWithStandardLibrary.NewDecoder(body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		return accountPayload{}, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}
	if err := h.validateRequest(ctx, req); err != nil {
		return accountPayload{}, err
	}

	return req, nil
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

// cardPayload carries no category validation tag: entries with an empty image
// are discarded before category checks, so only the service may reject one.
type cardPayload struct {
	Image    string `json:"image"`
	Category string `json:"category"`
}

type accountPayload struct {
	Name        *string          `json:"name" validate:"omitempty,min=1"`
	Price       *decimal.Decimal `json:"price"`
	PromoPrice  *decimal.Decimal `json:"promo_price"`
	Rating      *int             `json:"rating" validate:"omitempty,gte=1,lte=5"`
	ImageNormal *string          `json:"image_normal"`
	ImageHover  *string          `json:"image_hover"`
	ImageDetail *string          `json:"image_detail"`
	Description *string          `json:"description"`
	IsActive    *bool            `json:"is_active"`
	IsNew       *bool            `json:"is_new"`
	IsPromo     *bool            `json:"is_promo"`
	PlayerCards []cardPayload    `json:"player_cards" validate:"omitempty,dive"`
}

func (p accountPayload) toInput() usecase.AccountInput {
	cards := make([]usecase.CardInput, 0, len(p.PlayerCards))
	for _, card := range p.PlayerCards {
		cards = append(cards, usecase.CardInput{
			Image:    card.Image,
			Category: card.Category,
		})
	}

	return usecase.AccountInput{
		Name:        p.Name,
		Price:       p.Price,
		PromoPrice:  p.PromoPrice,
		Rating:      p.Rating,
		ImageNormal: p.ImageNormal,
		ImageHover:  p.ImageHover,
		ImageDetail: p.ImageDetail,
		Description: p.Description,
		IsActive:    p.IsActive,
		IsNew:       p.IsNew,
		IsPromo:     p.IsPromo,
		Cards:       cards,
	}
}

type cardDTO struct {
	ID        string    `json:"id"`
	Image     string    `json:"image"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"created_at"`
}

type accountDTO struct {
	ID                string           `json:"id"`
	Name              string           `json:"name"`
	Price             decimal.Decimal  `json:"price"`
	PromoPrice        *decimal.Decimal `json:"promo_price"`
	EffectivePrice    decimal.Decimal  `json:"effective_price"`
	HasDiscount       bool             `json:"has_discount"`
	Rating            int              `json:"rating"`
	ImageNormal       string           `json:"image_normal"`
	ImageHover        string           `json:"image_hover"`
	ImageDetail       string           `json:"image_detail"`
	Description       string           `json:"description"`
	IsActive          bool             `json:"is_active"`
	IsNew             bool             `json:"is_new"`
	IsPromo           bool             `json:"is_promo"`
	IsRecentlyCreated bool             `json:"is_recently_created"`
	PlayerCards       []cardDTO        `json:"player_cards"`
	CreatedAt         time.Time        `json:"created_at"`
	UpdatedAt         time.Time        `json:"updated_at"`
}

func accountToDTO(item account.Account, now time.Time) accountDTO {
	cards := make([]cardDTO, 0, len(item.Cards))
	for _, card := range item.Cards {
		cards = append(cards, cardDTO{
			ID:        card.ID,
			Image:     card.Image,
			Category:  string(card.Category),
			CreatedAt: card.CreatedAt,
		})
	}

	return accountDTO{
		ID:                item.ID,
		Name:              item.Name,
		Price:             item.Price,
		PromoPrice:        item.PromoPrice,
		EffectivePrice:    item.EffectivePrice(),
		HasDiscount:       item.HasDiscount(),
		Rating:            item.Rating,
		ImageNormal:       item.ImageNormal,
		ImageHover:        item.ImageHover,
		ImageDetail:       item.ImageDetail,
		Description:       item.Description,
		IsActive:          item.IsActive,
		IsNew:             item.IsNew,
		IsPromo:           item.IsPromo,
		IsRecentlyCreated: item.IsRecentlyCreated(now),
		PlayerCards:       cards,
		CreatedAt:         item.CreatedAt,
		UpdatedAt:         item.UpdatedAt,
	}
}
