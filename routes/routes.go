package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Govind-619/EnrollPay/config"
	"github.com/Govind-619/EnrollPay/controllers"
	"github.com/Govind-619/EnrollPay/middleware"
	"github.com/Govind-619/EnrollPay/utils"
)

// SetupRouter initializes and returns the Gin router with all routes.
// Controllers arrive fully constructed; this layer only wires URLs.
func SetupRouter(cfg *config.Config, payments *controllers.PaymentController, admin *controllers.AdminController, health *controllers.HealthController) *gin.Engine {
	router := gin.New()

	router.Use(utils.LoggerMiddleware())
	router.Use(utils.RecoveryMiddleware())
	router.Use(utils.CORSMiddleware(cfg.AllowedOrigins))
	router.Use(utils.RequestIDMiddleware())
	router.Use(utils.SecurityHeadersMiddleware())

	router.GET("/health", health.Health)

	api := router.Group("/api")
	{
		payment := api.Group("/payment")
		{
			payment.POST("/create-order", payments.CreateOrder)
			payment.POST("/append-form", payments.AppendForm)
			payment.GET("/verify-payment", payments.VerifyPayment)
			payment.POST("/verify-payment", payments.VerifyPayment)
			payment.GET("/cancel-payment", payments.CancelPayment)
			payment.POST("/webhook", payments.Webhook)
		}

		adminGroup := api.Group("/admin")
		{
			adminGroup.POST("/login", admin.Login)

			protected := adminGroup.Group("")
			protected.Use(middleware.AdminAuthMiddleware(cfg.JWTSecret))
			{
				protected.GET("/enrollments", admin.ListEnrollments)
				protected.GET("/enrollments/export/excel", admin.ExportEnrollmentsExcel)
				protected.GET("/enrollments/export/pdf", admin.ExportEnrollmentsPDF)
			}
		}
	}

	return router
}
