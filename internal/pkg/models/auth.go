package models

// LoginRequest is a password login request for any of the four collections.
type LoginRequest struct {
	Identifier string `json:"identifier" validate:"required"`
	Password   string `json:"password" validate:"required"`
	Role       Role   `json:"role" validate:"required"`
}

// OTPRequest asks for a one-time code to be sent to a patient phone.
type OTPRequest struct {
	Phone string `json:"phone" validate:"required"`
}

// OTPVerifyRequest presents a previously requested code.
type OTPVerifyRequest struct {
	Phone string `json:"phone" validate:"required"`
	OTP   string `json:"otp" validate:"required"`
}

// RegisterPatientRequest creates a patient identity.
type RegisterPatientRequest struct {
	FullName string `json:"full_name" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Phone    string `json:"phone" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// RegisterDoctorRequest creates a doctor identity in pending status.
type RegisterDoctorRequest struct {
	FullName  string `json:"full_name" validate:"required"`
	Email     string `json:"email" validate:"required"`
	Phone     string `json:"phone,omitempty"`
	Specialty string `json:"specialty,omitempty"`
	Password  string `json:"password" validate:"required"`
}

// OAuthCallbackRequest carries the provider handle obtained by the UI after
// the provider consent step. The profile itself is fetched server-side.
type OAuthCallbackRequest struct {
	Provider    string `json:"provider" validate:"required"`
	AccessToken string `json:"access_token" validate:"required"`
}

// OAuthProfile is the identity the external provider vouches for.
type OAuthProfile struct {
	Provider string `json:"provider"`
	Email    string `json:"email"`
	FullName string `json:"name"`
}

// ApprovalRequest is an admin decision on a pending doctor.
type ApprovalRequest struct {
	Decision ApprovalDecision `json:"decision" validate:"required"`
}

// SessionUser is the user payload echoed on successful authentication.
type SessionUser struct {
	ID       string `json:"id"`
	Role     Role   `json:"role"`
	FullName string `json:"full_name,omitempty"`
}

// AuthResponse is returned by every flow that mints a session token.
type AuthResponse struct {
	Token     string      `json:"token"`
	User      SessionUser `json:"user"`
	ExpiresAt int64       `json:"expires_at"`
}
