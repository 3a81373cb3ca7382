package model

import (
	"errors"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrProductExists   = errors.New("product already exists")
)

type Product struct {
	ID          int64     `json:"id"`
	ProductName string    `json:"productName"`
	Description string    `json:"description"`
	ContactUs   string    `json:"contactUs"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type ProductImage struct {
	ID                 int64  `json:"id"`
	OverviewImage      string `json:"overviewImage"`
	ServiceImage       string `json:"serviceImage"`
	RightSidebarImage1 string `json:"rightSidebarImage1"`
	RightSidebarImage2 string `json:"rightSidebarImage2"`
	ProductID          int64  `json:"productId"`
}

type ProductBenefit struct {
	ID             int64  `json:"id"`
	ProductBenefit string `json:"productBenefit"`
	ProductID      int64  `json:"productId"`
}

type ProductExpertise struct {
	ID                   int64  `json:"id"`
	ExpertiseArea        string `json:"expertiseArea"`
	ExpertiseDescription string `json:"expertiseDescription"`
	ProductID            int64  `json:"productId"`
}

type ProductMethodology struct {
	ID                     int64  `json:"id"`
	MethodologyDescription string `json:"methodologyDescription"`
	ProductID              int64  `json:"productId"`
}

// ProductService is one service line under a product. Its detail rows are
// owned and always travel with it.
type ProductService struct {
	ID                 int64                  `json:"id"`
	ProductServiceType string                 `json:"productServiceType"`
	ProductID          int64                  `json:"productId"`
	Details            []ProductServiceDetail `json:"details"`
}

type ProductServiceDetail struct {
	ID                   int64  `json:"id"`
	ProductServiceDetail string `json:"productServiceDetail"`
	ProductServiceID     int64  `json:"productServiceId"`
}

// ProductView is the full aggregate returned by the public view endpoint.
type ProductView struct {
	Product
	Images       []ProductImage       `json:"productImage"`
	Benefits     []ProductBenefit     `json:"productBenefits"`
	ServiceLines []ProductService     `json:"productService"`
	Expertise    []ProductExpertise   `json:"productExpertise"`
	Methodology  []ProductMethodology `json:"methodology"`
}

type ProductListRow struct {
	ID          int64  `json:"id"`
	ProductName string `json:"productName"`
}

// ProductNameRow feeds the public navigation list. ProductUrl is derived,
// never stored.
type ProductNameRow struct {
	ID          int64  `json:"id"`
	ProductName string `json:"productName"`
	ProductUrl  string `json:"productUrl"`
}

// Request collection inputs.

type ImageInput struct {
	OverviewImage      string `json:"overviewImage"`
	ServiceImage       string `json:"serviceImage"`
	RightSidebarImage1 string `json:"rightSidebarImage1"`
	RightSidebarImage2 string `json:"rightSidebarImage2"`
}

type BenefitInput struct {
	ProductBenefit string `json:"productBenefit"`
}

type ServiceLineInput struct {
	ProductServiceType string        `json:"productServiceType"`
	Details            []DetailInput `json:"details"`
}

type DetailInput struct {
	ProductServiceDetail string `json:"productServiceDetail"`
}

type ExpertiseInput struct {
	ExpertiseArea        string `json:"expertiseArea"`
	ExpertiseDescription string `json:"expertiseDescription"`
}

type MethodologyInput struct {
	MethodologyDescription string `json:"methodologyDescription"`
}

type AddProductRequest struct {
	ProductName  string             `json:"productName"`
	Description  string             `json:"description"`
	ContactUs    string             `json:"contactUs"`
	Images       []ImageInput       `json:"productImage"`
	Benefits     []BenefitInput     `json:"productBenefits"`
	ServiceLines []ServiceLineInput `json:"productService"`
	Expertise    []ExpertiseInput   `json:"productExpertise"`
	Methodology  []MethodologyInput `json:"methodology"`
}

func (r AddProductRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ProductName, validation.Required, validation.Length(1, 255)),
		validation.Field(&r.Description, validation.Required),
	)
}

// EditProductRequest uses pointer slices for the collections: nil leaves the
// stored collection untouched, an empty slice clears it, a non-empty slice
// replaces it wholesale.
type EditProductRequest struct {
	ProductName  string              `json:"productName"`
	Description  string              `json:"description"`
	ContactUs    string              `json:"contactUs"`
	Images       *[]ImageInput       `json:"productImage"`
	Benefits     *[]BenefitInput     `json:"productBenefits"`
	ServiceLines *[]ServiceLineInput `json:"productService"`
	Expertise    *[]ExpertiseInput   `json:"productExpertise"`
	Methodology  *[]MethodologyInput `json:"methodology"`
}

func (r EditProductRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ProductName, validation.Required, validation.Length(1, 255)),
		validation.Field(&r.Description, validation.Required),
	)
}
