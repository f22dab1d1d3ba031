package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/medlink/portal/internal/pkg/constants"
	"github.com/medlink/portal/internal/pkg/database"
	"github.com/medlink/portal/internal/pkg/models"
)

// attemptsTTL keeps the attempt counter alive slightly longer than the
// challenge itself so a counter cannot outlive its challenge the other way
// around.
const attemptsTTL = 11 * time.Minute

// ChallengeRepo stores OTP challenges in Redis. The key layout gives the
// core invariants for free: SET overwrites the live challenge (at most one
// per phone), the TTL bounds validity, DEL on success makes codes single
// use.
type ChallengeRepo struct {
	redisClient *database.RedisClient
}

// NewChallengeRepo creates a new OTP challenge repository
func NewChallengeRepo(redisClient *database.RedisClient) *ChallengeRepo {
	return &ChallengeRepo{redisClient: redisClient}
}

// StoreChallenge writes the challenge under the phone key, superseding any
// live challenge and resetting the attempt counter.
func (r *ChallengeRepo) StoreChallenge(ctx context.Context, challenge *models.OTPChallenge) error {
	data, err := json.Marshal(challenge)
	if err != nil {
		return fmt.Errorf("failed to marshal otp challenge: %w", err)
	}

	ttl := time.Until(challenge.ExpiresAt)
	if ttl <= 0 {
		return fmt.Errorf("otp challenge is already expired")
	}

	key := fmt.Sprintf(constants.KeyPatientOTP, challenge.Phone)
	if err := r.redisClient.Set(ctx, key, data, ttl); err != nil {
		return fmt.Errorf("failed to store otp challenge: %w", err)
	}

	// A fresh challenge starts with a fresh attempt budget
	attemptsKey := fmt.Sprintf(constants.KeyPatientOTPAttempts, challenge.Phone)
	if err := r.redisClient.Delete(ctx, attemptsKey); err != nil {
		return fmt.Errorf("failed to reset otp attempts: %w", err)
	}

	return nil
}

// GetChallenge returns the live challenge for the phone, or nil when none
// exists or it has expired out of Redis.
func (r *ChallengeRepo) GetChallenge(ctx context.Context, phone string) (*models.OTPChallenge, error) {
	key := fmt.Sprintf(constants.KeyPatientOTP, phone)
	data, err := r.redisClient.Get(ctx, key)
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get otp challenge: %w", err)
	}

	var challenge models.OTPChallenge
	if err := json.Unmarshal([]byte(data), &challenge); err != nil {
		return nil, fmt.Errorf("failed to unmarshal otp challenge: %w", err)
	}

	return &challenge, nil
}

// ClearChallenge removes the challenge and its attempt counter
func (r *ChallengeRepo) ClearChallenge(ctx context.Context, phone string) error {
	key := fmt.Sprintf(constants.KeyPatientOTP, phone)
	attemptsKey := fmt.Sprintf(constants.KeyPatientOTPAttempts, phone)

	if err := r.redisClient.Delete(ctx, key, attemptsKey); err != nil {
		return fmt.Errorf("failed to clear otp challenge: %w", err)
	}

	return nil
}

// IncrAttempts bumps the verify-attempt counter for the phone's live
// challenge and returns the new count.
func (r *ChallengeRepo) IncrAttempts(ctx context.Context, phone string) (int64, error) {
	key := fmt.Sprintf(constants.KeyPatientOTPAttempts, phone)

	count, err := r.redisClient.Incr(ctx, key)
	if err != nil {
		return 0, fmt.Errorf("failed to increment otp attempts: %w", err)
	}

	if count == 1 {
		if err := r.redisClient.Expire(ctx, key, attemptsTTL); err != nil {
			return 0, fmt.Errorf("failed to expire otp attempts: %w", err)
		}
	}

	return count, nil
}
