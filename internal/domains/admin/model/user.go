package model

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// RoleAdmin is the only role issued today.
const RoleAdmin = "Admin"

var (
	ErrUserNotFound = errors.New("user not found")
	ErrOtpNotFound  = errors.New("otp not found")
)

type User struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"-"`
}

// Otp rows expire one minute after issue. ExpirationTime is stored as an
// RFC3339 string; expired rows are swept by the worker, not at read time.
type Otp struct {
	ID             int64  `json:"id"`
	Otp            int    `json:"otp"`
	Email          string `json:"email"`
	ExpirationTime string `json:"expirationTime"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Password, validation.Required),
	)
}

type ResetPasswordRequest struct {
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

func (r ResetPasswordRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.OldPassword, validation.Required),
		validation.Field(&r.NewPassword, validation.Required, validation.Length(8, 72)),
	)
}

type VerifyEmailRequest struct {
	Email string `json:"email"`
}

func (r VerifyEmailRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, is.Email),
	)
}

type ForgotPasswordRequest struct {
	Email       string `json:"email"`
	Otp         int    `json:"otp"`
	NewPassword string `json:"newPassword"`
}

func (r ForgotPasswordRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Otp, validation.Required, validation.Min(100000), validation.Max(999999)),
		validation.Field(&r.NewPassword, validation.Required, validation.Length(8, 72)),
	)
}
