package constants

// NSQ topics consumed by the external notifier
const (
	TopicOTPSMS         = "notification.otp.sms"
	TopicDoctorApproval = "notification.doctor.approval"
)
