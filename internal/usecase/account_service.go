package usecase

import (
	"context"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/shopspring/decimal"

	"github.com/bergomi/bergomi-store/internal/domain/account"
	idgen "github.com/bergomi/bergomi-store/internal/platform/id"
	"github.com/bergomi/bergomi-store/internal/platform/logging"
)

const defaultRating = 5

// CardInput is one player card sub-payload. Entries with an empty image are
// skipped silently, matching how the storefront admin submits sparse card
// grids.
type CardInput struct {
	Image    string
	Category string
}

// AccountInput carries account scalar fields plus the full replacement card
// set. Nil pointers mean "not provided": required on create, left unchanged
// on update.
type AccountInput struct {
	Name        *string
	Price       *decimal.Decimal
	PromoPrice  *decimal.Decimal
	Rating      *int
	ImageNormal *string
	ImageHover  *string
	ImageDetail *string
	Description *string
	IsActive    *bool
	IsNew       *bool
	IsPromo     *bool
	Cards       []CardInput
}

type AccountService struct {
	repo   account.Repository
	ids    idgen.Generator
	logger *logging.Logger
}

func NewAccountService(repo account.Repository, ids idgen.Generator, logger *logging.Logger) *AccountService {
	if logger == nil {
		logger = logging.Default()
	}

	return &AccountService{
		repo:   repo,
		ids:    ids,
		logger: logger,
	}
}

// List returns active listings only, newest first.
func (s *AccountService) List(ctx context.Context) ([]account.Account, error) {
	items, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list active accounts")
	}

	return items, nil
}

// Get fetches one account by public id without the active filter; the admin
// panel edits deactivated listings through this path.
func (s *AccountService) Get(ctx context.Context, accountID string) (account.Account, error) {
	accountID = strings.TrimSpace(accountID)
	if accountID == "" {
		return account.Account{}, errors.Wrap(ErrInvalidInput, "account id is required")
	}

	item, exists, err := s.repo.GetByID(ctx, accountID)
	if err != nil {
		return account.Account{}, errors.Wrap(err, "get account by id")
	}
	if !exists {
		return account.Account{}, errors.Wrapf(ErrNotFound, "account=%s", accountID)
	}

	return item, nil
}

// Create validates and persists a new listing together with its card set as
// one atomic unit. A failure anywhere leaves nothing behind.
func (s *AccountService) Create(ctx context.Context, input AccountInput) (account.Account, error) {
	if err := requireCreateFields(input); err != nil {
		return account.Account{}, err
	}

	newID, err := s.ids.NewID()
	if err != nil {
		return account.Account{}, errors.Wrap(err, "generate account id")
	}

	item := account.Account{
		ID:       newID,
		Rating:   defaultRating,
		IsActive: true,
	}
	applyInput(&item, input)

	cards, err := s.buildCards(newID, input.Cards)
	if err != nil {
		return account.Account{}, err
	}
	item.Cards = cards

	if err := item.Validate(); err != nil {
		return account.Account{}, errors.Wrapf(ErrInvalidInput, "%v", err)
	}

	created, err := s.repo.Create(ctx, item)
	if err != nil {
		return account.Account{}, errors.Wrap(err, "create account")
	}

	s.logger.InfoContext(ctx, "account created", "account_id", created.ID, "cards", len(created.Cards))

	return created, nil
}

// Update applies the provided scalar fields to an existing listing and
// replaces its entire card set from the payload. The old cards are always
// discarded, even when the payload carries none.
func (s *AccountService) Update(ctx context.Context, accountID string, input AccountInput) (account.Account, error) {
	accountID = strings.TrimSpace(accountID)
	if accountID == "" {
		return account.Account{}, errors.Wrap(ErrInvalidInput, "account id is required")
	}

	existing, exists, err := s.repo.GetByID(ctx, accountID)
	if err != nil {
		return account.Account{}, errors.Wrap(err, "get account before update")
	}
	if !exists {
		return account.Account{}, errors.Wrapf(ErrNotFound, "account=%s", accountID)
	}

	item := existing
	applyInput(&item, input)

	cards, err := s.buildCards(accountID, input.Cards)
	if err != nil {
		return account.Account{}, err
	}
	item.Cards = cards

	if err := item.Validate(); err != nil {
		return account.Account{}, errors.Wrapf(ErrInvalidInput, "%v", err)
	}

	updated, err := s.repo.Replace(ctx, item)
	if err != nil {
		return account.Account{}, errors.Wrap(err, "replace account")
	}

	s.logger.InfoContext(ctx, "account updated", "account_id", updated.ID, "cards", len(updated.Cards))

	return updated, nil
}

// Delete removes the listing and, through ownership, all of its cards.
func (s *AccountService) Delete(ctx context.Context, accountID string) error {
	accountID = strings.TrimSpace(accountID)
	if accountID == "" {
		return errors.Wrap(ErrInvalidInput, "account id is required")
	}

	found, err := s.repo.Delete(ctx, accountID)
	if err != nil {
		return errors.Wrap(err, "delete account")
	}
	if !found {
		return errors.Wrapf(ErrNotFound, "account=%s", accountID)
	}

	s.logger.InfoContext(ctx, "account deleted", "account_id", accountID)

	return nil
}

func (s *AccountService) buildCards(accountID string, inputs []CardInput) ([]account.PlayerCard, error) {
	cards := make([]account.PlayerCard, 0, len(inputs))
	for _, in := range inputs {
		if strings.TrimSpace(in.Image) == "" {
			// Sparse grid slot, not an error.
			continue
		}

		cardID, err := s.ids.NewID()
		if err != nil {
			return nil, errors.Wrap(err, "generate card id")
		}

		card := account.PlayerCard{
			ID:        cardID,
			AccountID: accountID,
			Image:     in.Image,
			Category:  account.CardCategory(in.Category),
		}
		if err := card.Validate(); err != nil {
			return nil, errors.Wrapf(ErrInvalidInput, "%v", err)
		}

		cards = append(cards, card)
	}

	return cards, nil
}

func requireCreateFields(input AccountInput) error {
	required := []struct {
		present bool
		field   string
	}{
		{input.Name != nil, "name"},
		{input.Price != nil, "price"},
		{input.ImageNormal != nil, "image_normal"},
		{input.ImageHover != nil, "image_hover"},
		{input.ImageDetail != nil, "image_detail"},
		{input.Description != nil, "description"},
	}
	for _, r := range required {
		if !r.present {
			return errors.Wrapf(ErrInvalidInput, "%s is required", r.field)
		}
	}

	return nil
}

func applyInput(item *account.Account, input AccountInput) {
	if input.Name != nil {
		item.Name = *input.Name
	}
	if input.Price != nil {
		item.Price = *input.Price
	}
	if input.PromoPrice != nil {
		item.PromoPrice = input.PromoPrice
	}
	if input.Rating != nil {
		item.Rating = *input.Rating
	}
	if input.ImageNormal != nil {
		item.ImageNormal = *input.ImageNormal
	}
	if input.ImageHover != nil {
		item.ImageHover = *input.ImageHover
	}
	if input.ImageDetail != nil {
		item.ImageDetail = *input.ImageDetail
	}
	if input.Description != nil {
		item.Description = *input.Description
	}
	if input.IsActive != nil {
		item.IsActive = *input.IsActive
	}
	if input.IsNew != nil {
		item.IsNew = *input.IsNew
	}
	if input.IsPromo != nil {
		item.IsPromo = *input.IsPromo
	}
}
