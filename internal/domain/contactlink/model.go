package contactlink

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

// Link is one WhatsApp contact URL record. Records are append-only history;
// at most one should be active at a time.
type Link struct {
	ID        string
	URL       string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (l Link) Validate() error {
	if l.ID == "" {
		return fmt.Errorf("link id is required")
	}
	trimmed := strings.TrimSpace(l.URL)
	if trimmed == "" {
		return fmt.Errorf("link url is required")
	}
	parsed, err := url.Parse(trimmed)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("invalid link url: %s", l.URL)
	}

	return nil
}
