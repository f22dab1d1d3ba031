package auth

import "errors"

// Verifier-level errors. Handlers map these onto narrow HTTP statuses; they
// are never surfaced as raw failures.
var (
	// ErrNotFound means no identity record matched the lookup.
	ErrNotFound = errors.New("identity not found")

	// ErrInvalidCredentials covers both a wrong password and an unknown
	// identifier on the login surface, so responses cannot be used to
	// enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidOrExpiredOTP covers a missing, expired, superseded or
	// mismatched one-time code.
	ErrInvalidOrExpiredOTP = errors.New("invalid or expired otp")

	// ErrTooManyOTPAttempts means the verify attempt budget for the live
	// challenge is exhausted.
	ErrTooManyOTPAttempts = errors.New("too many otp attempts")

	// ErrAccountPendingApproval means the credential is correct but the
	// doctor has not been approved yet.
	ErrAccountPendingApproval = errors.New("account pending approval")

	// ErrAccountRejected means the doctor account was rejected; no
	// role-gated token will ever be issued for it.
	ErrAccountRejected = errors.New("account rejected")

	// ErrDuplicateIdentity means the uniqueness key already exists in the
	// target collection.
	ErrDuplicateIdentity = errors.New("identity already exists")

	// ErrInvalidTransition means the approval decision targeted a doctor
	// whose status is already terminal.
	ErrInvalidTransition = errors.New("approval status is terminal")
)
