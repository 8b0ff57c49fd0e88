package memory

import (
	"context"
	"sync"
	"time"

	"github.com/bergomi/bergomi-store/internal/domain/admintoken"
)

type AdminTokenRepository struct {
	mu    sync.RWMutex
	items map[string]admintoken.Token
}

func NewAdminTokenRepository(seed ...admintoken.Token) *AdminTokenRepository {
	items := make(map[string]admintoken.Token, len(seed))
	for _, t := range seed {
		if t.CreatedAt.IsZero() {
			t.CreatedAt = time.Now().UTC()
		}
		items[t.Token] = t
	}

	return &AdminTokenRepository{items: items}
}

func (r *AdminTokenRepository) ExistsActive(_ context.Context, token string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.items[token]
	return ok && t.IsActive, nil
}
