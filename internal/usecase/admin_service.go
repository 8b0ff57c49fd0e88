package usecase

import (
	"context"
	"crypto/subtle"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/bergomi/bergomi-store/internal/domain/admintoken"
	"github.com/bergomi/bergomi-store/internal/platform/logging"
)

// AdminService verifies admin credentials against two independent sources:
// the statically configured master token (fixed, non-revocable) and stored
// tokens that can be revoked individually.
type AdminService struct {
	repo        admintoken.Repository
	masterToken string
	logger      *logging.Logger
}

func NewAdminService(repo admintoken.Repository, masterToken string, logger *logging.Logger) *AdminService {
	if logger == nil {
		logger = logging.Default()
	}

	return &AdminService{
		repo:        repo,
		masterToken: strings.TrimSpace(masterToken),
		logger:      logger,
	}
}

// VerifyToken reports whether the candidate grants admin access. A mismatch
// is a result, not an error; the caller decides how to surface it.
func (s *AdminService) VerifyToken(ctx context.Context, candidate string) (bool, error) {
	candidate = strings.TrimSpace(candidate)
	if candidate == "" {
		return false, nil
	}

	if s.masterToken != "" &&
		subtle.ConstantTimeCompare([]byte(candidate), []byte(s.masterToken)) == 1 {
		return true, nil
	}

	exists, err := s.repo.ExistsActive(ctx, candidate)
	if err != nil {
		return false, errors.Wrap(err, "look up admin token")
	}

	return exists, nil
}
