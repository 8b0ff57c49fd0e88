package contactlink

import "context"

// Repository describes contact link persistence needs from use cases.
type Repository interface {
	// GetActive returns the most recently created active link.
	GetActive(ctx context.Context) (Link, bool, error)
	// DeactivateAll marks every stored link inactive.
	DeactivateAll(ctx context.Context) error
	Create(ctx context.Context, item Link) (Link, error)
}
