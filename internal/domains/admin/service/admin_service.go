package service

import (
	"context"
	"math/rand"
	"time"

	"golang.org/x/crypto/bcrypt"

	"cuentista-backend/internal/domains/admin/model"
	"cuentista-backend/internal/domains/admin/repository"
	"cuentista-backend/internal/infrastructure/email"
	"cuentista-backend/internal/shared/messages"
	"cuentista-backend/internal/shared/response"
	"cuentista-backend/pkg/jwt"
	"cuentista-backend/pkg/logger"
)

const otpTTL = time.Minute

// EmailDispatcher is the slice of the queue client this service needs.
type EmailDispatcher interface {
	EnqueueOtpEmail(ctx context.Context, data email.OtpEmailData) error
}

type ServiceInterface interface {
	Login(ctx context.Context, req model.LoginRequest) *response.Envelope
	ResetPassword(ctx context.Context, userID int64, req model.ResetPasswordRequest) *response.Envelope
	VerifyEmail(ctx context.Context, req model.VerifyEmailRequest) *response.Envelope
	ForgotPassword(ctx context.Context, req model.ForgotPasswordRequest) *response.Envelope
}

type adminService struct {
	repo       repository.RepositoryInterface
	jwtManager *jwt.Manager
	dispatcher EmailDispatcher
}

func NewAdminService(repo repository.RepositoryInterface, jwtManager *jwt.Manager, dispatcher EmailDispatcher) ServiceInterface {
	return &adminService{
		repo:       repo,
		jwtManager: jwtManager,
		dispatcher: dispatcher,
	}
}

// Login answers the same envelope for an unknown email and a wrong password,
// so the endpoint cannot be used to probe which emails are registered.
func (s *adminService) Login(ctx context.Context, req model.LoginRequest) *response.Envelope {
	user, err := s.repo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if err == model.ErrUserNotFound {
			return response.Unauthorized(messages.CredentialsNotMatch)
		}
		return response.ServerError(err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		return response.Unauthorized(messages.CredentialsNotMatch)
	}

	token, err := s.jwtManager.GenerateToken(user.ID, model.RoleAdmin, user.Email)
	if err != nil {
		return response.ServerError(err)
	}

	return response.OK(messages.LoginSuccess, map[string]interface{}{"token": token})
}

func (s *adminService) ResetPassword(ctx context.Context, userID int64, req model.ResetPasswordRequest) *response.Envelope {
	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		if err == model.ErrUserNotFound {
			return response.Unauthorized(messages.CredentialsNotMatch)
		}
		return response.ServerError(err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.OldPassword)) != nil {
		return response.Unauthorized(messages.CredentialsNotMatch)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return response.ServerError(err)
	}

	if err := s.repo.UpdatePassword(ctx, userID, string(hash)); err != nil {
		return response.ServerError(err)
	}

	return response.OK(messages.UpdateSuccess, nil)
}

// VerifyEmail issues a six digit code valid for one minute. The code is both
// mailed and returned in the response body.
func (s *adminService) VerifyEmail(ctx context.Context, req model.VerifyEmailRequest) *response.Envelope {
	if _, err := s.repo.GetUserByEmail(ctx, req.Email); err != nil {
		if err == model.ErrUserNotFound {
			return response.NotFound(messages.EmailValidation)
		}
		return response.ServerError(err)
	}

	code := rand.Intn(900000) + 100000
	otp := &model.Otp{
		Otp:            code,
		Email:          req.Email,
		ExpirationTime: time.Now().Add(otpTTL).Format(time.RFC3339),
	}

	if err := s.repo.CreateOtp(ctx, otp); err != nil {
		return response.ServerError(err)
	}

	if err := s.dispatcher.EnqueueOtpEmail(ctx, email.OtpEmailData{
		Email: req.Email,
		Otp:   code,
	}); err != nil {
		logger.Error("failed to enqueue otp email", err)
	}

	return response.OK(messages.OtpSent, map[string]interface{}{"otp": code})
}

// ForgotPassword consumes the code: a matching unexpired row is deleted
// before the password changes. Expired rows are left for the worker sweep.
func (s *adminService) ForgotPassword(ctx context.Context, req model.ForgotPasswordRequest) *response.Envelope {
	otp, err := s.repo.GetOtpByEmailAndCode(ctx, req.Email, req.Otp)
	if err != nil {
		if err == model.ErrOtpNotFound {
			return response.NotFound(messages.OtpValidation)
		}
		return response.ServerError(err)
	}

	expiresAt, err := time.Parse(time.RFC3339, otp.ExpirationTime)
	if err != nil {
		return response.ServerError(err)
	}
	if time.Now().After(expiresAt) {
		return response.BadRequest(messages.OtpExpired)
	}

	if err := s.repo.DeleteOtp(ctx, otp.ID); err != nil {
		return response.ServerError(err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return response.ServerError(err)
	}

	if err := s.repo.UpdatePasswordByEmail(ctx, req.Email, string(hash)); err != nil {
		if err == model.ErrUserNotFound {
			return response.NotFound(messages.EmailValidation)
		}
		return response.ServerError(err)
	}

	return response.Accepted(messages.UpdateSuccess)
}
