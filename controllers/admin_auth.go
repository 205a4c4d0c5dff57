package controllers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
	"golang.org/x/crypto/bcrypt"

	"github.com/Govind-619/EnrollPay/config"
	"github.com/Govind-619/EnrollPay/services"
	"github.com/Govind-619/EnrollPay/utils"
)

// AdminController exposes the operator surface: login plus ledger
// inspection and export.
type AdminController struct {
	Config *config.Config
	Ledger services.Ledger
}

// NewAdminController wires the controller with its clients.
func NewAdminController(cfg *config.Config, ledger services.Ledger) *AdminController {
	return &AdminController{Config: cfg, Ledger: ledger}
}

// AdminLoginRequest represents the admin login request
type AdminLoginRequest struct {
	Password string `json:"password" binding:"required"`
}

// POST /api/admin/login
// There is no admin table; the single operator password is configured
// as a bcrypt hash in the environment.
func (ac *AdminController) Login(c *gin.Context) {
	utils.LogInfo("AdminLogin called")

	var req AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid login request: %v", err)
		utils.BadRequest(c, "Invalid input", nil)
		return
	}

	if ac.Config.AdminPasswordHash == "" || ac.Config.JWTSecret == "" {
		utils.LogError("Admin login attempted but ADMIN_PASSWORD_HASH or JWT_SECRET is not set")
		utils.Forbidden(c, "Admin access is not configured")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(ac.Config.AdminPasswordHash), []byte(req.Password)); err != nil {
		utils.LogError("Invalid admin password attempt")
		utils.Unauthorized(c, "Invalid credentials")
		return
	}
	utils.LogDebug("Admin password verified")

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"role": "admin",
		"exp":  time.Now().Add(time.Hour * 24).Unix(),
	})

	tokenString, err := token.SignedString([]byte(ac.Config.JWTSecret))
	if err != nil {
		utils.LogError("Failed to sign admin token: %v", err)
		utils.InternalServerError(c, "Failed to generate token", nil)
		return
	}

	utils.LogInfo("Admin login successful")
	utils.Success(c, "Login successful", gin.H{"token": tokenString})
}
