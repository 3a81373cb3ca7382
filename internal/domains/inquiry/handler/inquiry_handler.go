package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"cuentista-backend/internal/domains/inquiry/model"
	"cuentista-backend/internal/domains/inquiry/service"
	"cuentista-backend/internal/shared/messages"
	"cuentista-backend/internal/shared/pagination"
	"cuentista-backend/internal/shared/response"
)

type InquiryHandler struct {
	service service.ServiceInterface
}

func NewInquiryHandler(svc service.ServiceInterface) *InquiryHandler {
	return &InquiryHandler{service: svc}
}

// CreateInquiry handles POST /inquiry/createInquiry
func (h *InquiryHandler) CreateInquiry(c *gin.Context) {
	var req model.CreateInquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err)
		return
	}
	if err := req.Validate(); err != nil {
		response.ValidationError(c, err)
		return
	}

	response.Write(c, h.service.CreateInquiry(c.Request.Context(), req))
}

// ViewInquiry handles GET /admin/viewInquiry/:inquiryId
func (h *InquiryHandler) ViewInquiry(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("inquiryId"), 10, 64)
	if err != nil {
		response.Write(c, response.NotFound(messages.NotFound))
		return
	}

	response.Write(c, h.service.ViewInquiry(c.Request.Context(), id))
}

// UpdateInquiryStatus handles PUT /admin/updateInquiryStatus/:inquiryId
func (h *InquiryHandler) UpdateInquiryStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("inquiryId"), 10, 64)
	if err != nil {
		response.Write(c, response.NotFound(messages.NotFound))
		return
	}

	response.Write(c, h.service.UpdateInquiryStatus(c.Request.Context(), id))
}

// ListOfInquiries handles POST /admin/listOfInquiries
func (h *InquiryHandler) ListOfInquiries(c *gin.Context) {
	var params pagination.Params
	if err := c.ShouldBindJSON(&params); err != nil {
		response.ValidationError(c, err)
		return
	}

	response.Write(c, h.service.ListOfInquiries(c.Request.Context(), params))
}
