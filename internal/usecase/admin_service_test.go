package usecase

import (
	"testing"

	"github.com/bergomi/bergomi-store/internal/domain/admintoken"
	"github.com/bergomi/bergomi-store/internal/infrastructure/repository/memory"
)

func TestAdminService_VerifyToken(t *testing.T) {
	repo := memory.NewAdminTokenRepository(
		admintoken.Token{Token: "rotated-db-token", IsActive: true},
		admintoken.Token{Token: "revoked-db-token", IsActive: false},
	)
	service := NewAdminService(repo, "master-token", testLogger())

	tests := []struct {
		name      string
		candidate string
		want      bool
	}{
		{name: "master token", candidate: "master-token", want: true},
		{name: "active db token", candidate: "rotated-db-token", want: true},
		{name: "revoked db token", candidate: "revoked-db-token", want: false},
		{name: "garbage", candidate: "nope", want: false},
		{name: "empty", candidate: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := service.VerifyToken(t.Context(), tt.candidate)
			if err != nil {
				t.Fatalf("verify token failed: %v", err)
			}
			if got != tt.want {
				t.Fatalf("VerifyToken(%q) = %v, want %v", tt.candidate, got, tt.want)
			}
		})
	}
}

func TestAdminService_VerifyToken_EmptyRepoStillAcceptsMaster(t *testing.T) {
	service := NewAdminService(memory.NewAdminTokenRepository(), "master-token", testLogger())

	ok, err := service.VerifyToken(t.Context(), "master-token")
	if err != nil {
		t.Fatalf("verify token failed: %v", err)
	}
	if !ok {
		t.Fatalf("expected master token accepted with no stored tokens")
	}
}
