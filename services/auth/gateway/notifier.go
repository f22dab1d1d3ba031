package gateway

import (
	"context"
	"fmt"

	"github.com/medlink/portal/internal/pkg/constants"
	"github.com/medlink/portal/internal/pkg/models"
	"github.com/medlink/portal/internal/pkg/nsq"
)

// NotifierGW publishes notification events for the external notifier
// service to deliver. Delivery mechanics stay on the other side of the
// topic.
type NotifierGW struct {
	producer *nsq.Producer
}

// NewNotifierGW creates a new notifier gateway
func NewNotifierGW(producer *nsq.Producer) *NotifierGW {
	return &NotifierGW{producer: producer}
}

// SendOTP publishes an OTP SMS dispatch event
func (g *NotifierGW) SendOTP(ctx context.Context, challenge *models.OTPChallenge) error {
	msg := models.OTPNotification{
		Phone:     challenge.Phone,
		Code:      challenge.Code,
		ExpiresAt: challenge.ExpiresAt.Unix(),
	}

	if err := g.producer.Publish(constants.TopicOTPSMS, msg); err != nil {
		return fmt.Errorf("failed to publish otp notification: %w", err)
	}

	return nil
}

// NotifyApprovalDecision publishes a doctor approval decision event
func (g *NotifierGW) NotifyApprovalDecision(ctx context.Context, doctor *models.Identity, decision models.ApprovalDecision) error {
	msg := models.ApprovalNotification{
		DoctorID: doctor.ID.String(),
		Email:    doctor.Email,
		FullName: doctor.FullName,
		Decision: decision,
	}

	if err := g.producer.Publish(constants.TopicDoctorApproval, msg); err != nil {
		return fmt.Errorf("failed to publish approval notification: %w", err)
	}

	return nil
}
