package checkup

import (
	"errors"
	"testing"

	"github.com/pezeshkyar/checkup_backend/internal/repo"
)

func TestIdentityGate(t *testing.T) {
	approved := &repo.User{IdentityApproved: true}
	unapproved := &repo.User{}

	tests := []struct {
		name         string
		requiredAuth bool
		user         *repo.User
		wantErr      error
	}{
		{"open template admits unverified accounts", false, unapproved, nil},
		{"open template tolerates a missing user edge", false, nil, nil},
		{"gated template admits verified accounts", true, approved, nil},
		{"gated template rejects unverified accounts", true, unapproved, ErrIdentityRequired},
		{"gated template rejects a missing user edge", true, nil, ErrIdentityRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := identityGate(tt.requiredAuth, tt.user)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("identityGate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
