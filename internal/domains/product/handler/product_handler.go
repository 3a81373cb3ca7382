package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"cuentista-backend/internal/domains/product/model"
	"cuentista-backend/internal/domains/product/service"
	"cuentista-backend/internal/shared/messages"
	"cuentista-backend/internal/shared/pagination"
	"cuentista-backend/internal/shared/response"
)

type ProductHandler struct {
	service service.ServiceInterface
}

func NewProductHandler(svc service.ServiceInterface) *ProductHandler {
	return &ProductHandler{service: svc}
}

// AddProduct handles POST /product/addProduct
func (h *ProductHandler) AddProduct(c *gin.Context) {
	var req model.AddProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err)
		return
	}
	if err := req.Validate(); err != nil {
		response.ValidationError(c, err)
		return
	}

	response.Write(c, h.service.AddProduct(c.Request.Context(), req))
}

// EditProduct handles PUT /product/editProduct/:productId
func (h *ProductHandler) EditProduct(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("productId"), 10, 64)
	if err != nil {
		response.Write(c, response.NotFound(messages.NotFound))
		return
	}

	var req model.EditProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err)
		return
	}
	if err := req.Validate(); err != nil {
		response.ValidationError(c, err)
		return
	}

	response.Write(c, h.service.EditProduct(c.Request.Context(), id, req))
}

// DeleteProduct handles DELETE /product/deleteProduct/:productId
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("productId"), 10, 64)
	if err != nil {
		response.Write(c, response.NotFound(messages.NotFound))
		return
	}

	response.Write(c, h.service.DeleteProduct(c.Request.Context(), id))
}

// ListOfProduct handles GET /product/listOfProduct. Paging arrives as query
// parameters on this endpoint.
func (h *ProductHandler) ListOfProduct(c *gin.Context) {
	var params pagination.Params
	if err := c.ShouldBindQuery(&params); err != nil {
		response.ValidationError(c, err)
		return
	}

	response.Write(c, h.service.ListOfProduct(c.Request.Context(), params))
}

// GetProductList handles GET /customer/getProductList
func (h *ProductHandler) GetProductList(c *gin.Context) {
	response.Write(c, h.service.GetProductList(c.Request.Context()))
}

// ViewProduct handles GET /customer/viewProduct/:productId
func (h *ProductHandler) ViewProduct(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("productId"), 10, 64)
	if err != nil {
		response.Write(c, response.NotFound(messages.NotFound))
		return
	}

	response.Write(c, h.service.ViewProduct(c.Request.Context(), id))
}
