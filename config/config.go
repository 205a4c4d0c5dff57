package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application. It is built once
// in main and passed to every handler; nothing in this package keeps
// package-level state.
type Config struct {
	RazorpayKey    string
	RazorpaySecret string
	// WebhookSecret is optional. When empty, webhook signature checks
	// are skipped with a warning - acceptable for local development,
	// never for production.
	WebhookSecret string

	SheetID    string
	SheetRange string

	BaseURL         string
	ConfirmationURL string
	CancelURL       string
	AllowedOrigins  []string

	// CourseAmount is the enrollment fee in rupees. The gateway is
	// always charged in minor units (paise).
	CourseAmount float64
	Currency     string

	JWTSecret         string
	AdminPasswordHash string

	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	SMTPFrom     string

	Port string
	Env  string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	// .env is optional; deployments set real environment variables
	_ = godotenv.Load()

	config := &Config{
		RazorpayKey:       os.Getenv("RAZORPAY_KEY"),
		RazorpaySecret:    os.Getenv("RAZORPAY_SECRET"),
		WebhookSecret:     os.Getenv("RAZORPAY_WEBHOOK_SECRET"),
		SheetID:           os.Getenv("SHEET_ID"),
		SheetRange:        getEnv("SHEET_RANGE", "Enrollments!A:L"),
		BaseURL:           strings.TrimRight(getEnv("BASE_URL", "http://localhost:8080"), "/"),
		Currency:          getEnv("CURRENCY", "INR"),
		JWTSecret:         os.Getenv("JWT_SECRET"),
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
		SMTPHost:          os.Getenv("SMTP_HOST"),
		SMTPUsername:      os.Getenv("SMTP_USERNAME"),
		SMTPPassword:      os.Getenv("SMTP_PASSWORD"),
		SMTPFrom:          os.Getenv("SMTP_FROM"),
		Port:              getEnv("PORT", "8080"),
		Env:               getEnv("ENV", "development"),
	}

	if config.RazorpayKey == "" || config.RazorpaySecret == "" {
		return nil, fmt.Errorf("RAZORPAY_KEY and RAZORPAY_SECRET must be set")
	}
	if config.SheetID == "" {
		return nil, fmt.Errorf("SHEET_ID must be set")
	}

	config.ConfirmationURL = getEnv("CONFIRMATION_URL", config.BaseURL+"/payment-success")
	config.CancelURL = getEnv("CANCEL_URL", config.BaseURL+"/payment-cancelled")

	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		for _, origin := range strings.Split(origins, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				config.AllowedOrigins = append(config.AllowedOrigins, origin)
			}
		}
	}

	config.CourseAmount = 5999
	if raw := os.Getenv("COURSE_AMOUNT"); raw != "" {
		amount, err := strconv.ParseFloat(raw, 64)
		if err != nil || amount <= 0 {
			return nil, fmt.Errorf("invalid COURSE_AMOUNT %q", raw)
		}
		config.CourseAmount = amount
	}

	config.SMTPPort = 587
	if raw := os.Getenv("SMTP_PORT"); raw != "" {
		port, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid SMTP_PORT %q", raw)
		}
		config.SMTPPort = port
	}

	return config, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
