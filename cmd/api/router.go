package main

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"cuentista-backend/internal/shared/middleware"
	"cuentista-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	auth := middleware.AuthMiddleware(c.JWTManager)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheckHandler(c))

		inquiry := v1.Group("/inquiry")
		{
			inquiry.POST("/createInquiry", c.InquiryHandler.CreateInquiry)
		}

		admin := v1.Group("/admin")
		{
			admin.POST("/login", c.AdminHandler.Login)
			admin.POST("/verifyEmail", c.AdminHandler.VerifyEmail)
			admin.PUT("/forgotPassword", c.AdminHandler.ForgotPassword)

			admin.PUT("/resetPassword", auth, c.AdminHandler.ResetPassword)
			admin.GET("/viewInquiry/:inquiryId", auth, c.InquiryHandler.ViewInquiry)
			admin.PUT("/updateInquiryStatus/:inquiryId", auth, c.InquiryHandler.UpdateInquiryStatus)
			admin.POST("/listOfInquiries", auth, c.InquiryHandler.ListOfInquiries)
		}

		common := v1.Group("/common")
		common.Use(auth)
		{
			common.POST("/fileUpload", c.UploadHandler.FileUpload)
		}

		product := v1.Group("/product")
		product.Use(auth)
		{
			product.POST("/addProduct", c.ProductHandler.AddProduct)
			product.PUT("/editProduct/:productId", c.ProductHandler.EditProduct)
			product.DELETE("/deleteProduct/:productId", c.ProductHandler.DeleteProduct)
			product.GET("/listOfProduct", c.ProductHandler.ListOfProduct)
		}

		service := v1.Group("/service")
		service.Use(auth)
		{
			service.POST("/addService", c.ServiceHandler.AddService)
			service.PUT("/editService/:serviceId", c.ServiceHandler.EditService)
			service.DELETE("/deleteService/:serviceId", c.ServiceHandler.DeleteService)
			service.GET("/listOfService", c.ServiceHandler.ListOfService)
		}

		// Public site endpoints, no auth.
		customer := v1.Group("/customer")
		{
			customer.GET("/getProductList", c.ProductHandler.GetProductList)
			customer.GET("/viewProduct/:productId", c.ProductHandler.ViewProduct)
			customer.GET("/getServiceList", c.ServiceHandler.GetServiceList)
			customer.GET("/viewService/:serviceId", c.ServiceHandler.ViewService)
		}
	}

	return router
}

func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		dbStatus := "up"
		if err := c.DB.HealthCheck(ctx.Request.Context()); err != nil {
			dbStatus = "down"
		}

		cacheStatus := "up"
		if err := c.Cache.Ping(ctx.Request.Context()); err != nil {
			cacheStatus = "down"
		}

		status := http.StatusOK
		overall := "ok"
		if dbStatus == "down" || cacheStatus == "down" {
			status = http.StatusServiceUnavailable
			overall = "degraded"
		}

		ctx.JSON(status, gin.H{
			"status":    overall,
			"database":  dbStatus,
			"cache":     cacheStatus,
			"version":   c.Config.App.Version,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	}
}
