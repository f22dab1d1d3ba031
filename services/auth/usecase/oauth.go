package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/medlink/portal/internal/pkg/logger"
	"github.com/medlink/portal/internal/pkg/models"
	"github.com/medlink/portal/services/auth"
)

// ResolveOAuth signs in an externally verified identity. The provider
// supplies an email but no role, so resolution order is fixed and
// significant: SuperAdmin, then Admin, then Doctor, and only then the
// provisioning fallback. Any existing privileged account wins over
// provisioning, and provisioning never creates anything above a pending
// doctor.
func (u *AuthUC) ResolveOAuth(ctx context.Context, req *models.OAuthCallbackRequest) (*models.AuthResponse, error) {
	profile, err := u.oauthProvider.FetchProfile(ctx, req.Provider, req.AccessToken)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve oauth profile: %w", err)
	}

	for _, role := range []models.Role{models.RoleSuperAdmin, models.RoleAdmin, models.RoleDoctor} {
		identity, err := u.identityRepo.GetByEmail(ctx, role, profile.Email)
		if err != nil {
			if errors.Is(err, auth.ErrNotFound) {
				continue
			}
			return nil, fmt.Errorf("failed to look up %s collection: %w", role, err)
		}

		// Rejected doctors stay locked out of the oauth path too
		if role == models.RoleDoctor && identity.Status == models.DoctorStatusRejected {
			return nil, auth.ErrAccountRejected
		}

		return u.issueSession(identity)
	}

	// No collection matched: oauth sign-in is the doctor on-boarding path,
	// so provision a pending doctor record.
	doctor := &models.Identity{
		Email:    profile.Email,
		FullName: profile.FullName,
		Status:   models.DoctorStatusPending,
	}
	if err := u.identityRepo.CreateDoctor(ctx, doctor); err != nil {
		return nil, fmt.Errorf("failed to provision doctor: %w", err)
	}

	logger.Info("Provisioned pending doctor from oauth sign-in",
		logger.String("provider", profile.Provider),
		logger.String("doctor_id", doctor.ID.String()))

	return u.issueSession(doctor)
}
