package main

import (
	"context"
	"log"

	"github.com/Govind-619/EnrollPay/config"
	"github.com/Govind-619/EnrollPay/controllers"
	"github.com/Govind-619/EnrollPay/routes"
	"github.com/Govind-619/EnrollPay/services"
	"github.com/Govind-619/EnrollPay/utils"
)

func main() {
	// Initialize logger
	if err := utils.InitLogger(); err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}

	// Load environment variables
	cfg, err := config.LoadConfig()
	if err != nil {
		utils.LogError("Error loading config: %v", err)
		log.Fatal("Error loading config:", err)
	}

	// Construct the external clients once and pass them down; handlers
	// never reach for credentials themselves.
	ctx := context.Background()
	sheetsService, err := config.NewSheetsService(ctx)
	if err != nil {
		utils.LogError("Failed to initialize Sheets service: %v", err)
		log.Fatal("Failed to initialize Sheets service:", err)
	}

	ledger := services.NewSheetsLedger(sheetsService, cfg.SheetID, cfg.SheetRange)
	gateway := services.NewRazorpayGateway(cfg.RazorpayKey, cfg.RazorpaySecret)

	payments := controllers.NewPaymentController(cfg, ledger, gateway)
	admin := controllers.NewAdminController(cfg, ledger)
	health := controllers.NewHealthController(cfg)

	router := routes.SetupRouter(cfg, payments, admin, health)

	if cfg.WebhookSecret == "" {
		utils.LogError("RAZORPAY_WEBHOOK_SECRET is not set; webhooks will be accepted unverified")
	}

	utils.LogInfo("Server starting on port %s (env: %s)", cfg.Port, cfg.Env)
	if err := router.Run(":" + cfg.Port); err != nil {
		utils.LogError("Error starting server: %v", err)
		log.Fatal("Error starting server:", err)
	}
}
