package model

import (
	"errors"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Detail types partition the service_details table into the four sections
// the site renders. Only Consulting rows carry a description.
const (
	DetailTypeApproach   = "Approach"
	DetailTypeBenefits   = "Benefits"
	DetailTypeATC        = "ATC"
	DetailTypeConsulting = "Consulting"
)

var (
	ErrServiceNotFound = errors.New("service not found")
	ErrServiceExists   = errors.New("service already exists")
)

type Service struct {
	ID                 int64     `json:"id"`
	ServiceName        string    `json:"serviceName"`
	ServiceDescription string    `json:"serviceDescription"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

type ServiceImage struct {
	ID                 int64  `json:"id"`
	OverviewImage      string `json:"overviewImage"`
	ServiceImage       string `json:"serviceImage"`
	RightSidebarImage1 string `json:"rightSidebarImage1"`
	RightSidebarImage2 string `json:"rightSidebarImage2"`
	ServiceID          int64  `json:"serviceId"`
}

type SubService struct {
	ID                    int64  `json:"id"`
	SubServiceTitle       string `json:"subServiceTitle"`
	SubServiceDescription string `json:"subServiceDescription"`
	ServiceID             int64  `json:"serviceId"`
}

type ServiceDetail struct {
	ID                         int64  `json:"id"`
	ServicesDetailsPoint       string `json:"servicesDetailsPoint"`
	ServicesDetailsType        string `json:"servicesDetailsType"`
	ServicesDetailsDescription string `json:"servicesDetailsDescription,omitempty"`
	ServiceID                  int64  `json:"serviceId"`
}

// ServiceView is the full aggregate returned by the public view endpoint,
// with the detail rows already split by type.
type ServiceView struct {
	Service
	Images      []ServiceImage  `json:"serviceImage"`
	SubServices []SubService    `json:"subServices"`
	Approach    []ServiceDetail `json:"approach"`
	Benefits    []ServiceDetail `json:"benefits"`
	ATC         []ServiceDetail `json:"atc"`
	Consulting  []ServiceDetail `json:"consulting"`
}

type ServiceListRow struct {
	ID          int64  `json:"id"`
	ServiceName string `json:"serviceName"`
}

type ServiceNameRow struct {
	ID          int64  `json:"id"`
	ServiceName string `json:"serviceName"`
	ServiceUrl  string `json:"serviceUrl"`
}

// Request collection inputs.

type ImageInput struct {
	OverviewImage      string `json:"overviewImage"`
	ServiceImage       string `json:"serviceImage"`
	RightSidebarImage1 string `json:"rightSidebarImage1"`
	RightSidebarImage2 string `json:"rightSidebarImage2"`
}

type SubServiceInput struct {
	SubServiceTitle       string `json:"subServiceTitle"`
	SubServiceDescription string `json:"subServiceDescription"`
}

// DetailInput covers all four sections; Description is only meaningful for
// Consulting rows and is stored empty otherwise.
type DetailInput struct {
	ServicesDetailsPoint       string `json:"servicesDetailsPoint"`
	ServicesDetailsDescription string `json:"servicesDetailsDescription"`
}

type AddServiceRequest struct {
	ServiceName        string            `json:"serviceName"`
	ServiceDescription string            `json:"serviceDescription"`
	Images             []ImageInput      `json:"serviceImage"`
	SubServices        []SubServiceInput `json:"subServices"`
	Approach           []DetailInput     `json:"approach"`
	Benefits           []DetailInput     `json:"benefits"`
	ATC                []DetailInput     `json:"atc"`
	Consulting         []DetailInput     `json:"consulting"`
}

func (r AddServiceRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ServiceName, validation.Required, validation.Length(1, 255)),
		validation.Field(&r.ServiceDescription, validation.Required),
	)
}

// EditServiceRequest uses pointer slices for the collections: nil leaves the
// stored collection untouched, an empty slice clears it, a non-empty slice
// replaces it wholesale.
type EditServiceRequest struct {
	ServiceName        string             `json:"serviceName"`
	ServiceDescription string             `json:"serviceDescription"`
	Images             *[]ImageInput      `json:"serviceImage"`
	SubServices        *[]SubServiceInput `json:"subServices"`
	Approach           *[]DetailInput     `json:"approach"`
	Benefits           *[]DetailInput     `json:"benefits"`
	ATC                *[]DetailInput     `json:"atc"`
	Consulting         *[]DetailInput     `json:"consulting"`
}

func (r EditServiceRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ServiceName, validation.Required, validation.Length(1, 255)),
		validation.Field(&r.ServiceDescription, validation.Required),
	)
}
