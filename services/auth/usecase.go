package auth

import (
	"context"

	"github.com/google/uuid"

	"github.com/medlink/portal/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/medlink/portal/services/auth AuthUC

// AuthUC is the auth usecase interface consumed by the HTTP handlers.
type AuthUC interface {
	// password flow
	LoginWithPassword(ctx context.Context, identifier, password string, role models.Role) (*models.AuthResponse, error)

	// patient OTP flow
	RequestOTP(ctx context.Context, phone string) (debugCode string, err error)
	VerifyOTP(ctx context.Context, phone, code string) (*models.AuthResponse, error)

	// registration
	RegisterPatient(ctx context.Context, req *models.RegisterPatientRequest) (*models.AuthResponse, error)
	RegisterDoctor(ctx context.Context, req *models.RegisterDoctorRequest) (*models.Identity, error)

	// OAuth role resolution
	ResolveOAuth(ctx context.Context, req *models.OAuthCallbackRequest) (*models.AuthResponse, error)

	// doctor approval workflow
	DecideApproval(ctx context.Context, doctorID uuid.UUID, decision models.ApprovalDecision) error
	ListDoctorsByStatus(ctx context.Context, status models.DoctorStatus) ([]*models.Identity, error)
}
