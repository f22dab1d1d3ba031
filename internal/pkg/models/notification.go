package models

// OTPNotification is published to the external notifier for SMS delivery.
type OTPNotification struct {
	Phone     string `json:"phone"`
	Code      string `json:"code"`
	ExpiresAt int64  `json:"expires_at"`
}

// ApprovalNotification tells the external notifier to inform a doctor of an
// approval decision.
type ApprovalNotification struct {
	DoctorID string           `json:"doctor_id"`
	Email    string           `json:"email"`
	FullName string           `json:"full_name"`
	Decision ApprovalDecision `json:"decision"`
}
