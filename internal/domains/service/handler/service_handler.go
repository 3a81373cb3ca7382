package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"cuentista-backend/internal/domains/service/model"
	svc "cuentista-backend/internal/domains/service/service"
	"cuentista-backend/internal/shared/messages"
	"cuentista-backend/internal/shared/pagination"
	"cuentista-backend/internal/shared/response"
)

type ServiceHandler struct {
	service svc.ServiceInterface
}

func NewServiceHandler(s svc.ServiceInterface) *ServiceHandler {
	return &ServiceHandler{service: s}
}

// AddService handles POST /service/addService
func (h *ServiceHandler) AddService(c *gin.Context) {
	var req model.AddServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err)
		return
	}
	if err := req.Validate(); err != nil {
		response.ValidationError(c, err)
		return
	}

	response.Write(c, h.service.AddService(c.Request.Context(), req))
}

// EditService handles PUT /service/editService/:serviceId
func (h *ServiceHandler) EditService(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("serviceId"), 10, 64)
	if err != nil {
		response.Write(c, response.NotFound(messages.NotFound))
		return
	}

	var req model.EditServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err)
		return
	}
	if err := req.Validate(); err != nil {
		response.ValidationError(c, err)
		return
	}

	response.Write(c, h.service.EditService(c.Request.Context(), id, req))
}

// DeleteService handles DELETE /service/deleteService/:serviceId
func (h *ServiceHandler) DeleteService(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("serviceId"), 10, 64)
	if err != nil {
		response.Write(c, response.NotFound(messages.NotFound))
		return
	}

	response.Write(c, h.service.DeleteService(c.Request.Context(), id))
}

// ListOfService handles GET /service/listOfService
func (h *ServiceHandler) ListOfService(c *gin.Context) {
	var params pagination.Params
	if err := c.ShouldBindQuery(&params); err != nil {
		response.ValidationError(c, err)
		return
	}

	response.Write(c, h.service.ListOfService(c.Request.Context(), params))
}

// GetServiceList handles GET /customer/getServiceList
func (h *ServiceHandler) GetServiceList(c *gin.Context) {
	response.Write(c, h.service.GetServiceList(c.Request.Context()))
}

// ViewService handles GET /customer/viewService/:serviceId
func (h *ServiceHandler) ViewService(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("serviceId"), 10, 64)
	if err != nil {
		response.Write(c, response.NotFound(messages.NotFound))
		return
	}

	response.Write(c, h.service.ViewService(c.Request.Context(), id))
}
