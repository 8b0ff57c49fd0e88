package admintoken

import "context"

// Repository describes admin token lookups from use cases.
type Repository interface {
	// ExistsActive reports whether an active token record matches the value.
	ExistsActive(ctx context.Context, token string) (bool, error)
}
