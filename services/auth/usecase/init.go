package usecase

import (
	"github.com/medlink/portal/internal/pkg/jwt"
	"github.com/medlink/portal/internal/pkg/models"
	"github.com/medlink/portal/services/auth"
)

// AuthUC implements the auth usecase: credential verification, OAuth role
// resolution and the doctor approval workflow.
type AuthUC struct {
	identityRepo  auth.IdentityRepo
	challengeRepo auth.ChallengeRepo
	notifier      auth.Notifier
	oauthProvider auth.OAuthProvider
	codec         *jwt.Codec
	cfg           *models.Config
}

// NewAuthUC creates a new auth usecase instance
func NewAuthUC(
	identityRepo auth.IdentityRepo,
	challengeRepo auth.ChallengeRepo,
	notifier auth.Notifier,
	oauthProvider auth.OAuthProvider,
	codec *jwt.Codec,
	cfg *models.Config,
) *AuthUC {
	return &AuthUC{
		identityRepo:  identityRepo,
		challengeRepo: challengeRepo,
		notifier:      notifier,
		oauthProvider: oauthProvider,
		codec:         codec,
		cfg:           cfg,
	}
}

// issueSession mints the session token for an identity. The role claim is
// derived once here and fixed for the token's lifetime.
func (u *AuthUC) issueSession(identity *models.Identity) (*models.AuthResponse, error) {
	role := identity.SessionRole()

	token, expiresAt, err := u.codec.Issue(identity.ID, role)
	if err != nil {
		return nil, err
	}

	return &models.AuthResponse{
		Token: token,
		User: models.SessionUser{
			ID:       identity.ID.String(),
			Role:     role,
			FullName: identity.FullName,
		},
		ExpiresAt: expiresAt,
	}, nil
}
