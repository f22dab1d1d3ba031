package usecase

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/medlink/portal/internal/pkg/logger"
	"github.com/medlink/portal/internal/pkg/models"
	"github.com/medlink/portal/internal/utils"
	"github.com/medlink/portal/services/auth"
)

const (
	otpLength = 6
	otpTTL    = 10 * time.Minute

	// maxOTPAttempts bounds verify attempts per live challenge. Six digits
	// leave a million-code space; without a budget the 10-minute window is
	// open to brute force.
	maxOTPAttempts = 5
)

// RequestOTP generates a one-time code for a registered patient phone,
// stores it with a 10-minute expiry and dispatches it through the external
// notifier. Any prior live challenge for the phone is superseded. The code
// is returned only when the debug echo is enabled.
func (u *AuthUC) RequestOTP(ctx context.Context, phone string) (string, error) {
	normalized, err := utils.NormalizePhone(phone)
	if err != nil {
		return "", fmt.Errorf("invalid phone number: %w", err)
	}

	if _, err := u.identityRepo.GetPatientByPhone(ctx, normalized); err != nil {
		if errors.Is(err, auth.ErrNotFound) {
			return "", auth.ErrNotFound
		}
		return "", fmt.Errorf("failed to look up patient: %w", err)
	}

	code, err := utils.GenerateNumericCode(otpLength)
	if err != nil {
		return "", fmt.Errorf("failed to generate otp code: %w", err)
	}

	now := time.Now()
	challenge := &models.OTPChallenge{
		Phone:     normalized,
		Code:      code,
		CreatedAt: now,
		ExpiresAt: now.Add(otpTTL),
	}

	if err := u.challengeRepo.StoreChallenge(ctx, challenge); err != nil {
		return "", fmt.Errorf("failed to store otp challenge: %w", err)
	}

	if err := u.notifier.SendOTP(ctx, challenge); err != nil {
		return "", fmt.Errorf("failed to dispatch otp: %w", err)
	}

	logger.Info("OTP challenge issued",
		logger.String("phone", normalized))

	if u.cfg.Auth.DebugOTP {
		return code, nil
	}
	return "", nil
}

// VerifyOTP checks a presented code against the live challenge for the
// phone. The code is single use: a successful verification clears the
// challenge before the session token is minted.
func (u *AuthUC) VerifyOTP(ctx context.Context, phone, code string) (*models.AuthResponse, error) {
	normalized, err := utils.NormalizePhone(phone)
	if err != nil {
		return nil, fmt.Errorf("invalid phone number: %w", err)
	}

	attempts, err := u.challengeRepo.IncrAttempts(ctx, normalized)
	if err != nil {
		return nil, fmt.Errorf("failed to count otp attempt: %w", err)
	}
	if attempts > maxOTPAttempts {
		logger.Warn("OTP attempt budget exhausted",
			logger.String("phone", normalized),
			logger.Int64("attempts", attempts))
		return nil, auth.ErrTooManyOTPAttempts
	}

	challenge, err := u.challengeRepo.GetChallenge(ctx, normalized)
	if err != nil {
		return nil, fmt.Errorf("failed to get otp challenge: %w", err)
	}
	if challenge == nil || challenge.Expired(time.Now()) {
		return nil, auth.ErrInvalidOrExpiredOTP
	}

	if subtle.ConstantTimeCompare([]byte(challenge.Code), []byte(code)) != 1 {
		return nil, auth.ErrInvalidOrExpiredOTP
	}

	// Single use: clear before minting so a replay races against nothing
	if err := u.challengeRepo.ClearChallenge(ctx, normalized); err != nil {
		return nil, fmt.Errorf("failed to clear otp challenge: %w", err)
	}

	patient, err := u.identityRepo.GetPatientByPhone(ctx, normalized)
	if err != nil {
		return nil, fmt.Errorf("failed to look up patient: %w", err)
	}

	return u.issueSession(patient)
}
