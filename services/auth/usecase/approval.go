package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/medlink/portal/internal/pkg/logger"
	"github.com/medlink/portal/internal/pkg/models"
	"github.com/medlink/portal/services/auth"
)

// decisionTargets maps an admin decision to the resulting doctor status.
// Both outcomes are terminal; there is no way back to pending.
var decisionTargets = map[models.ApprovalDecision]models.DoctorStatus{
	models.DecisionApprove: models.DoctorStatusApproved,
	models.DecisionReject:  models.DoctorStatusRejected,
}

// DecideApproval applies an admin decision to a pending doctor. The status
// change affects future token issuance only; tokens already in the wild
// keep their role claim until they expire.
func (u *AuthUC) DecideApproval(ctx context.Context, doctorID uuid.UUID, decision models.ApprovalDecision) error {
	target, ok := decisionTargets[decision]
	if !ok {
		return fmt.Errorf("unknown approval decision %q", decision)
	}

	doctor, err := u.identityRepo.GetDoctorByID(ctx, doctorID)
	if err != nil {
		return err
	}

	if doctor.Status != models.DoctorStatusPending {
		return auth.ErrInvalidTransition
	}

	// Guarded on pending so a concurrent decision cannot flip a terminal
	// state.
	if err := u.identityRepo.UpdateDoctorStatus(ctx, doctorID, models.DoctorStatusPending, target); err != nil {
		return err
	}

	logger.Info("Doctor approval decided",
		logger.String("doctor_id", doctorID.String()),
		logger.String("decision", string(decision)))

	// The decision is already committed; a notification failure is not a
	// reason to report the decision as failed.
	doctor.Status = target
	if err := u.notifier.NotifyApprovalDecision(ctx, doctor, decision); err != nil {
		logger.Warn("Failed to notify doctor of approval decision",
			logger.String("doctor_id", doctorID.String()),
			logger.Err(err))
	}

	return nil
}

// ListDoctorsByStatus lists doctor records in the given approval status,
// feeding the admin approval queue.
func (u *AuthUC) ListDoctorsByStatus(ctx context.Context, status models.DoctorStatus) ([]*models.Identity, error) {
	switch status {
	case models.DoctorStatusPending, models.DoctorStatusApproved, models.DoctorStatusRejected:
	default:
		return nil, fmt.Errorf("unknown doctor status %q", status)
	}

	return u.identityRepo.ListDoctorsByStatus(ctx, status)
}
