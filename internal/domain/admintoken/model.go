package admintoken

import (
	"fmt"
	"time"
)

// Token is a stored, revocable admin credential.
type Token struct {
	Token     string
	IsActive  bool
	CreatedAt time.Time
}

func (t Token) Validate() error {
	if t.Token == "" {
		return fmt.Errorf("admin token value is required")
	}

	return nil
}
