package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cuentista-backend/internal/domains/admin/model"
	"cuentista-backend/internal/domains/admin/service"
	"cuentista-backend/internal/shared/middleware"
	"cuentista-backend/internal/shared/response"
)

type AdminHandler struct {
	service service.ServiceInterface
}

func NewAdminHandler(svc service.ServiceInterface) *AdminHandler {
	return &AdminHandler{service: svc}
}

// Login handles POST /admin/login
func (h *AdminHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err)
		return
	}
	if err := req.Validate(); err != nil {
		response.ValidationError(c, err)
		return
	}

	response.Write(c, h.service.Login(c.Request.Context(), req))
}

// ResetPassword handles PUT /admin/resetPassword. The caller identity comes
// from the token, never from the body.
func (h *AdminHandler) ResetPassword(c *gin.Context) {
	adminID, ok := middleware.AdminIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
		return
	}

	var req model.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err)
		return
	}
	if err := req.Validate(); err != nil {
		response.ValidationError(c, err)
		return
	}

	response.Write(c, h.service.ResetPassword(c.Request.Context(), adminID, req))
}

// VerifyEmail handles POST /admin/verifyEmail
func (h *AdminHandler) VerifyEmail(c *gin.Context) {
	var req model.VerifyEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err)
		return
	}
	if err := req.Validate(); err != nil {
		response.ValidationError(c, err)
		return
	}

	response.Write(c, h.service.VerifyEmail(c.Request.Context(), req))
}

// ForgotPassword handles PUT /admin/forgotPassword
func (h *AdminHandler) ForgotPassword(c *gin.Context) {
	var req model.ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err)
		return
	}
	if err := req.Validate(); err != nil {
		response.ValidationError(c, err)
		return
	}

	response.Write(c, h.service.ForgotPassword(c.Request.Context(), req))
}
