package account

import "context"

// Repository describes account persistence needs from use cases.
//
// Create and Replace persist the account row together with its full card set
// as one atomic unit: either everything in the call lands or nothing does.
// Replace discards every previously stored card before writing the new set.
type Repository interface {
	ListActive(ctx context.Context) ([]Account, error)
	GetByID(ctx context.Context, id string) (Account, bool, error)
	Create(ctx context.Context, item Account) (Account, error)
	Replace(ctx context.Context, item Account) (Account, error)
	Delete(ctx context.Context, id string) (bool, error)
}
