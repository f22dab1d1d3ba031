package constants

// Redis key formats
const (
	// Auth service
	KeyPatientOTP         = "patient:otp:%s"          // Format: patient:otp:{phone}
	KeyPatientOTPAttempts = "patient:otp:attempts:%s" // Format: patient:otp:attempts:{phone}
)
