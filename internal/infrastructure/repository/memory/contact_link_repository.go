package memory

import (
	"context"
	"sync"
	"time"

	"github.com/bergomi/bergomi-store/internal/domain/contactlink"
)

// ContactLinkRepository keeps the append-only link history in insertion order.
type ContactLinkRepository struct {
	mu    sync.RWMutex
	items []contactlink.Link
	now   func() time.Time
}

func NewContactLinkRepository() *ContactLinkRepository {
	return &ContactLinkRepository{now: time.Now}
}

func (r *ContactLinkRepository) GetActive(_ context.Context) (contactlink.Link, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	// Newest first; creation order breaks created_at ties.
	for i := len(r.items) - 1; i >= 0; i-- {
		if r.items[i].IsActive {
			return r.items[i], true, nil
		}
	}

	return contactlink.Link{}, false, nil
}

func (r *ContactLinkRepository) DeactivateAll(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now().UTC()
	for i := range r.items {
		if r.items[i].IsActive {
			r.items[i].IsActive = false
			r.items[i].UpdatedAt = now
		}
	}

	return nil
}

func (r *ContactLinkRepository) Create(_ context.Context, item contactlink.Link) (contactlink.Link, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now().UTC()
	item.CreatedAt = now
	item.UpdatedAt = now
	r.items = append(r.items, item)

	return item, nil
}
