package job

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"

	"cuentista-backend/internal/infrastructure/email"
)

// InquiryEmailHandler delivers the inquiry notification mail.
type InquiryEmailHandler struct {
	emailService email.EmailService
}

func NewInquiryEmailHandler(emailService email.EmailService) *InquiryEmailHandler {
	return &InquiryEmailHandler{emailService: emailService}
}

func (h *InquiryEmailHandler) ProcessTask(ctx context.Context, task *asynq.Task) error {
	var payload email.InquiryEmailData
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return fmt.Errorf("unmarshal payload: %w", err)
	}

	if err := h.emailService.SendInquiryNotification(ctx, payload); err != nil {
		return fmt.Errorf("send inquiry notification: %w", err)
	}

	log.Info().Str("email", payload.Email).Msg("Inquiry notification sent")
	return nil
}

// OtpEmailHandler delivers the password-reset OTP mail.
type OtpEmailHandler struct {
	emailService email.EmailService
}

func NewOtpEmailHandler(emailService email.EmailService) *OtpEmailHandler {
	return &OtpEmailHandler{emailService: emailService}
}

func (h *OtpEmailHandler) ProcessTask(ctx context.Context, task *asynq.Task) error {
	var payload email.OtpEmailData
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return fmt.Errorf("unmarshal payload: %w", err)
	}

	if err := h.emailService.SendOtpEmail(ctx, payload); err != nil {
		return fmt.Errorf("send otp email: %w", err)
	}

	log.Info().Str("email", payload.Email).Msg("Otp email sent")
	return nil
}
