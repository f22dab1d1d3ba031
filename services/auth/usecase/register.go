package usecase

import (
	"context"
	"fmt"

	"github.com/medlink/portal/internal/pkg/logger"
	"github.com/medlink/portal/internal/pkg/models"
	"github.com/medlink/portal/internal/utils"
)

// RegisterPatient creates a patient identity and signs it in directly.
func (u *AuthUC) RegisterPatient(ctx context.Context, req *models.RegisterPatientRequest) (*models.AuthResponse, error) {
	if !utils.IsValidEmail(req.Email) {
		return nil, fmt.Errorf("invalid email address")
	}
	normalized, err := utils.NormalizePhone(req.Phone)
	if err != nil {
		return nil, fmt.Errorf("invalid phone number: %w", err)
	}

	hash, err := HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	patient := &models.Identity{
		Email:        req.Email,
		Phone:        normalized,
		FullName:     req.FullName,
		PasswordHash: hash,
	}

	if err := u.identityRepo.CreatePatient(ctx, patient); err != nil {
		return nil, err
	}

	logger.Info("Patient registered",
		logger.String("patient_id", patient.ID.String()))

	return u.issueSession(patient)
}

// RegisterDoctor creates a doctor identity in pending status. No session is
// issued: the account stays behind the approval workflow until an admin
// decides on it.
func (u *AuthUC) RegisterDoctor(ctx context.Context, req *models.RegisterDoctorRequest) (*models.Identity, error) {
	if !utils.IsValidEmail(req.Email) {
		return nil, fmt.Errorf("invalid email address")
	}

	phone := ""
	if req.Phone != "" {
		normalized, err := utils.NormalizePhone(req.Phone)
		if err != nil {
			return nil, fmt.Errorf("invalid phone number: %w", err)
		}
		phone = normalized
	}

	hash, err := HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	doctor := &models.Identity{
		Email:        req.Email,
		Phone:        phone,
		FullName:     req.FullName,
		Specialty:    req.Specialty,
		PasswordHash: hash,
		Status:       models.DoctorStatusPending,
	}

	if err := u.identityRepo.CreateDoctor(ctx, doctor); err != nil {
		return nil, err
	}

	logger.Info("Doctor registered, awaiting approval",
		logger.String("doctor_id", doctor.ID.String()))

	return doctor, nil
}
