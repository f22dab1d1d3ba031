package auth

import (
	"context"

	"github.com/medlink/portal/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/medlink/portal/services/auth Notifier,OAuthProvider

// Notifier is the opaque external notification collaborator. Delivery
// mechanics (SMS, email) are out of this service's hands.
type Notifier interface {
	SendOTP(ctx context.Context, challenge *models.OTPChallenge) error
	NotifyApprovalDecision(ctx context.Context, doctor *models.Identity, decision models.ApprovalDecision) error
}

// OAuthProvider fetches the profile an external identity provider vouches
// for, given the access token obtained by the UI consent step.
type OAuthProvider interface {
	FetchProfile(ctx context.Context, provider, accessToken string) (*models.OAuthProfile, error)
}
