package auth

import (
	"context"

	"github.com/google/uuid"

	"github.com/medlink/portal/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/medlink/portal/services/auth IdentityRepo,ChallengeRepo

// IdentityRepo is the credential store: four disjoint identity collections,
// selected by role. Uniqueness is enforced per collection only.
type IdentityRepo interface {
	// GetByEmail looks up an identity in the collection matching role.
	// Returns ErrNotFound when the record is absent.
	GetByEmail(ctx context.Context, role models.Role, email string) (*models.Identity, error)
	GetPatientByPhone(ctx context.Context, phone string) (*models.Identity, error)
	GetDoctorByID(ctx context.Context, id uuid.UUID) (*models.Identity, error)

	CreatePatient(ctx context.Context, patient *models.Identity) error
	CreateDoctor(ctx context.Context, doctor *models.Identity) error

	// UpdateDoctorStatus transitions a doctor's approval status, guarded on
	// the expected current status. Returns ErrInvalidTransition when the
	// guard does not hold.
	UpdateDoctorStatus(ctx context.Context, id uuid.UUID, from, to models.DoctorStatus) error
	ListDoctorsByStatus(ctx context.Context, status models.DoctorStatus) ([]*models.Identity, error)
}

// ChallengeRepo stores the ephemeral OTP challenge and its attempt counter.
// Storing a challenge supersedes any live one for the same phone and resets
// the counter; clearing removes both.
type ChallengeRepo interface {
	StoreChallenge(ctx context.Context, challenge *models.OTPChallenge) error
	// GetChallenge returns nil when no live challenge exists.
	GetChallenge(ctx context.Context, phone string) (*models.OTPChallenge, error)
	ClearChallenge(ctx context.Context, phone string) error
	// IncrAttempts bumps the verify-attempt counter for the live challenge
	// and returns the new count.
	IncrAttempts(ctx context.Context, phone string) (int64, error)
}
