package models

import (
	"time"
)

// OTPChallenge is the ephemeral one-time-passcode challenge attached to a
// patient phone. At most one challenge is live per phone; storing a new one
// supersedes the previous code outright.
type OTPChallenge struct {
	Phone     string    `json:"phone"`
	Code      string    `json:"code"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired reports whether the challenge is past its validity window.
func (o *OTPChallenge) Expired(now time.Time) bool {
	return now.After(o.ExpiresAt)
}
