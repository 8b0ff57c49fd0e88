package usecase

import (
	"context"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/bergomi/bergomi-store/internal/domain/contactlink"
	idgen "github.com/bergomi/bergomi-store/internal/platform/id"
	"github.com/bergomi/bergomi-store/internal/platform/logging"
)

// ContactLinkService is the active-link registry for the storefront's
// WhatsApp contact button: one current link on top of an append-only history.
type ContactLinkService struct {
	repo   contactlink.Repository
	ids    idgen.Generator
	logger *logging.Logger
}

func NewContactLinkService(repo contactlink.Repository, ids idgen.Generator, logger *logging.Logger) *ContactLinkService {
	if logger == nil {
		logger = logging.Default()
	}

	return &ContactLinkService{
		repo:   repo,
		ids:    ids,
		logger: logger,
	}
}

// GetActive returns the newest active link. A store without any configured
// link is a normal state: the second return is false and no error is raised.
func (s *ContactLinkService) GetActive(ctx context.Context) (contactlink.Link, bool, error) {
	item, exists, err := s.repo.GetActive(ctx)
	if err != nil {
		return contactlink.Link{}, false, errors.Wrap(err, "get active contact link")
	}

	return item, exists, nil
}

// SetActive deactivates every stored link and inserts the new one as active.
// The two steps run sequentially without a transaction: concurrent calls can
// race and briefly leave zero (or, losing the race, two) active rows. Readers
// tolerate this by always taking the newest active row.
func (s *ContactLinkService) SetActive(ctx context.Context, url string) (contactlink.Link, error) {
	newID, err := s.ids.NewID()
	if err != nil {
		return contactlink.Link{}, errors.Wrap(err, "generate link id")
	}

	item := contactlink.Link{
		ID:       newID,
		URL:      strings.TrimSpace(url),
		IsActive: true,
	}
	if err := item.Validate(); err != nil {
		return contactlink.Link{}, errors.Wrapf(ErrInvalidInput, "%v", err)
	}

	if err := s.repo.DeactivateAll(ctx); err != nil {
		return contactlink.Link{}, errors.Wrap(err, "deactivate previous contact links")
	}

	created, err := s.repo.Create(ctx, item)
	if err != nil {
		return contactlink.Link{}, errors.Wrap(err, "create contact link")
	}

	s.logger.InfoContext(ctx, "contact link replaced", "link_id", created.ID)

	return created, nil
}
