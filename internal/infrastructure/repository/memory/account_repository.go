package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/bergomi/bergomi-store/internal/domain/account"
)

// AccountRepository is a map-backed account.Repository. Create and Replace
// validate the full payload before touching the map, so a failed write leaves
// the store untouched, mirroring the transactional SQL implementation.
type AccountRepository struct {
	mu    sync.RWMutex
	items map[string]accountRecord
	seq   int64
	now   func() time.Time
}

type accountRecord struct {
	item account.Account
	seq  int64
}

func NewAccountRepository() *AccountRepository {
	return &AccountRepository{
		items: make(map[string]accountRecord),
		now:   time.Now,
	}
}

func (r *AccountRepository) ListActive(_ context.Context) ([]account.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	records := make([]accountRecord, 0, len(r.items))
	for _, rec := range r.items {
		if !rec.item.IsActive {
			continue
		}
		records = append(records, rec)
	}

	sort.Slice(records, func(i, j int) bool {
		if !records[i].item.CreatedAt.Equal(records[j].item.CreatedAt) {
			return records[i].item.CreatedAt.After(records[j].item.CreatedAt)
		}
		return records[i].seq > records[j].seq
	})

	out := make([]account.Account, 0, len(records))
	for _, rec := range records {
		out = append(out, cloneAccount(rec.item))
	}
	return out, nil
}

func (r *AccountRepository) GetByID(_ context.Context, id string) (account.Account, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.items[id]
	if !ok {
		return account.Account{}, false, nil
	}

	return cloneAccount(rec.item), true, nil
}

func (r *AccountRepository) Create(_ context.Context, item account.Account) (account.Account, error) {
	if err := validateAccountWrite(item); err != nil {
		return account.Account{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[item.ID]; exists {
		return account.Account{}, fmt.Errorf("account %s already exists", item.ID)
	}

	now := r.now().UTC()
	stored := cloneAccount(item)
	stored.CreatedAt = now
	stored.UpdatedAt = now
	for i := range stored.Cards {
		stored.Cards[i].CreatedAt = now
	}
	sortCards(stored.Cards)

	r.seq++
	r.items[item.ID] = accountRecord{item: stored, seq: r.seq}

	return cloneAccount(stored), nil
}

func (r *AccountRepository) Replace(_ context.Context, item account.Account) (account.Account, error) {
	if err := validateAccountWrite(item); err != nil {
		return account.Account{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.items[item.ID]
	if !ok {
		return account.Account{}, fmt.Errorf("account %s does not exist", item.ID)
	}

	now := r.now().UTC()
	stored := cloneAccount(item)
	stored.CreatedAt = rec.item.CreatedAt
	stored.UpdatedAt = now
	for i := range stored.Cards {
		stored.Cards[i].CreatedAt = now
	}
	sortCards(stored.Cards)

	r.items[item.ID] = accountRecord{item: stored, seq: rec.seq}

	return cloneAccount(stored), nil
}

func (r *AccountRepository) Delete(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return false, nil
	}
	delete(r.items, id)

	return true, nil
}

func validateAccountWrite(item account.Account) error {
	if err := item.Validate(); err != nil {
		return fmt.Errorf("invalid account: %w", err)
	}
	for _, card := range item.Cards {
		if err := card.Validate(); err != nil {
			return fmt.Errorf("invalid player card: %w", err)
		}
	}
	return nil
}

func sortCards(cards []account.PlayerCard) {
	sort.SliceStable(cards, func(i, j int) bool {
		if cards[i].Category != cards[j].Category {
			return cards[i].Category < cards[j].Category
		}
		return cards[i].CreatedAt.Before(cards[j].CreatedAt)
	})
}

func cloneAccount(a account.Account) account.Account {
	copied := a
	copied.Cards = append([]account.PlayerCard(nil), a.Cards...)
	if a.PromoPrice != nil {
		promo := *a.PromoPrice
		copied.PromoPrice = &promo
	}
	return copied
}
