package controllers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/Govind-619/EnrollPay/config"
	"github.com/Govind-619/EnrollPay/controllers"
	"github.com/Govind-619/EnrollPay/middleware"
	"github.com/Govind-619/EnrollPay/models"
)

func adminConfig(t *testing.T) *config.Config {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("letmein"), bcrypt.MinCost)
	require.NoError(t, err)

	cfg := testConfig()
	cfg.AdminPasswordHash = string(hash)
	return cfg
}

func newAdminRouter(cfg *config.Config, ledger *fakeLedger) *gin.Engine {
	gin.SetMode(gin.TestMode)
	ac := controllers.NewAdminController(cfg, ledger)

	router := gin.New()
	router.POST("/api/admin/login", ac.Login)
	protected := router.Group("/api/admin")
	protected.Use(middleware.AdminAuthMiddleware(cfg.JWTSecret))
	{
		protected.GET("/enrollments", ac.ListEnrollments)
		protected.GET("/enrollments/export/excel", ac.ExportEnrollmentsExcel)
		protected.GET("/enrollments/export/pdf", ac.ExportEnrollmentsPDF)
	}
	return router
}

func loginToken(t *testing.T, router *gin.Engine, password string) string {
	t.Helper()
	w := postJSON(router, "/api/admin/login", gin.H{"password": password})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Data.Token)
	return resp.Data.Token
}

func TestAdminLogin(t *testing.T) {
	router := newAdminRouter(adminConfig(t), &fakeLedger{})

	loginToken(t, router, "letmein")

	w := postJSON(router, "/api/admin/login", gin.H{"password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = postJSON(router, "/api/admin/login", gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAdminLoginUnconfigured(t *testing.T) {
	cfg := testConfig()
	cfg.AdminPasswordHash = ""
	router := newAdminRouter(cfg, &fakeLedger{})

	w := postJSON(router, "/api/admin/login", gin.H{"password": "anything"})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestListEnrollmentsRequiresToken(t *testing.T) {
	router := newAdminRouter(adminConfig(t), &fakeLedger{})

	req := httptest.NewRequest(http.MethodGet, "/api/admin/enrollments", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/admin/enrollments", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestListEnrollments(t *testing.T) {
	ledger := &fakeLedger{}
	row := models.LedgerRow{
		Timestamp: "2026-01-02 10:00:00", Name: "A", Email: "a@x.com",
		Amount: "100", Currency: "INR", OrderID: "order_1",
		Status: models.PaymentStatusCaptured,
	}
	ledger.rows = append(ledger.rows, row.Values())

	cfg := adminConfig(t)
	router := newAdminRouter(cfg, ledger)
	token := loginToken(t, router, "letmein")

	req := httptest.NewRequest(http.MethodGet, "/api/admin/enrollments", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			Enrollments []models.LedgerRow `json:"enrollments"`
			Total       int                `json:"total"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Data.Total)
	require.Len(t, resp.Data.Enrollments, 1)
	assert.Equal(t, row, resp.Data.Enrollments[0])
}

func TestExportEnrollments(t *testing.T) {
	ledger := &fakeLedger{}
	row := models.LedgerRow{
		Timestamp: "2026-01-02 10:00:00", Name: "A",
		Amount: "100", Currency: "INR", OrderID: "order_1",
		Status: models.PaymentStatusCaptured,
	}
	ledger.rows = append(ledger.rows, row.Values())

	cfg := adminConfig(t)
	router := newAdminRouter(cfg, ledger)
	token := loginToken(t, router, "letmein")

	for path, contentType := range map[string]string{
		"/api/admin/enrollments/export/excel": "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		"/api/admin/enrollments/export/pdf":   "application/pdf",
	} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.Equal(t, contentType, w.Header().Get("Content-Type"), path)
		assert.NotZero(t, w.Body.Len(), path)
	}
}
