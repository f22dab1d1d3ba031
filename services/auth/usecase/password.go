package usecase

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/medlink/portal/internal/pkg/logger"
	"github.com/medlink/portal/internal/pkg/models"
	"github.com/medlink/portal/services/auth"
)

// dummyHash is a bcrypt hash of a throwaway value. When no identity record
// matches the identifier we still run one comparison against it so the
// response timing and message cannot distinguish "unknown identifier" from
// "wrong password".
var dummyHash = []byte("$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy")

// LoginWithPassword verifies a password credential against the collection
// matching the claimed role and mints a session token. Doctor approval
// status gates issuance: a correct password for an unapproved doctor never
// yields a token.
func (u *AuthUC) LoginWithPassword(ctx context.Context, identifier, password string, role models.Role) (*models.AuthResponse, error) {
	if !models.IsLoginRole(role) {
		return nil, fmt.Errorf("role %q cannot be claimed on login: %w", role, auth.ErrInvalidCredentials)
	}

	identity, err := u.identityRepo.GetByEmail(ctx, role, identifier)
	if err != nil {
		if errors.Is(err, auth.ErrNotFound) {
			// Burn a comparison so the miss is not observable
			_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
			logger.Warn("Login attempt for unknown identifier",
				logger.String("role", string(role)))
			return nil, auth.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up identity: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(identity.PasswordHash), []byte(password)); err != nil {
		return nil, auth.ErrInvalidCredentials
	}

	// Approval gating happens before issuance, not only at the middleware
	if role == models.RoleDoctor {
		switch identity.Status {
		case models.DoctorStatusPending:
			return nil, auth.ErrAccountPendingApproval
		case models.DoctorStatusRejected:
			return nil, auth.ErrAccountRejected
		}
	}

	return u.issueSession(identity)
}

// HashPassword hashes a plaintext password for storage
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}
