package email

import (
	"context"
	"fmt"
	"net/smtp"

	"cuentista-backend/internal/shared/messages"
	"cuentista-backend/pkg/logger"
)

// InquiryEmailData is the payload for the inquiry notification mail.
type InquiryEmailData struct {
	Email       string `json:"email"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	PhoneNumber string `json:"phoneNumber"`
	Message     string `json:"message"`
}

// OtpEmailData is the payload for the password-reset OTP mail.
type OtpEmailData struct {
	Email string `json:"email"`
	Otp   int    `json:"otp"`
}

// EmailService sends transactional mail. Implementations must be safe for
// concurrent use.
type EmailService interface {
	SendInquiryNotification(ctx context.Context, data InquiryEmailData) error
	SendOtpEmail(ctx context.Context, data OtpEmailData) error
}

type smtpEmailService struct {
	smtpAddr string
	smtpFrom string
}

func NewSMTPEmailService(host, port, from string) EmailService {
	return &smtpEmailService{
		smtpAddr: host + ":" + port,
		smtpFrom: from,
	}
}

func (s *smtpEmailService) SendInquiryNotification(ctx context.Context, data InquiryEmailData) error {
	body := fmt.Sprintf("%s\n\n%s\nName: %s %s\nEmail: %s\nPhone: %s\nMessage: %s\n",
		messages.InquiryText, messages.EmailText,
		data.FirstName, data.LastName, data.Email, data.PhoneNumber, data.Message)

	return s.send(data.Email, messages.InquirySubject, body)
}

func (s *smtpEmailService) SendOtpEmail(ctx context.Context, data OtpEmailData) error {
	body := fmt.Sprintf("%s\n\nYour otp is: %d\nIt expires in 1 minute.\n",
		messages.EmailText, data.Otp)

	return s.send(data.Email, messages.OtpSubject, body)
}

func (s *smtpEmailService) send(to, subject, body string) error {
	msg := []byte(fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s",
		s.smtpFrom, to, subject, body))

	if err := smtp.SendMail(s.smtpAddr, nil, s.smtpFrom, []string{to}, msg); err != nil {
		logger.Error("failed to send email", err)
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
