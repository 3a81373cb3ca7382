package model

import (
	"errors"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// Inquiry status values. The transition is one-way: Pending -> Resolve.
const (
	StatusPending = "Pending"
	StatusResolve = "Resolve"
)

var (
	ErrInquiryNotFound = errors.New("inquiry not found")
	ErrInquiryExists   = errors.New("inquiry already exists")
)

type Inquiry struct {
	ID          int64     `json:"id"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	Email       string    `json:"email"`
	Message     string    `json:"message"`
	PhoneNumber string    `json:"phoneNumber"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// InquiryView is the admin detail projection. Status and timestamps are
// intentionally absent.
type InquiryView struct {
	ID          int64  `json:"id"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	Message     string `json:"message"`
	PhoneNumber string `json:"phoneNumber"`
}

type CreateInquiryRequest struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	Message     string `json:"message"`
	PhoneNumber string `json:"phoneNumber"`
}

func (r CreateInquiryRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.FirstName, validation.Required, validation.Length(1, 100)),
		validation.Field(&r.LastName, validation.Required, validation.Length(1, 100)),
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Message, validation.Required),
		validation.Field(&r.PhoneNumber, validation.Required, validation.Length(7, 20)),
	)
}
