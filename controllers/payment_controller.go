package controllers

import (
	"encoding/json"
	"io"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Govind-619/EnrollPay/config"
	"github.com/Govind-619/EnrollPay/models"
	"github.com/Govind-619/EnrollPay/services"
	"github.com/Govind-619/EnrollPay/utils"
)

// PaymentController owns the payment endpoints and the reconciliation
// of gateway events into ledger rows. All dependencies are injected at
// startup; there is no package-level client state.
type PaymentController struct {
	Config  *config.Config
	Ledger  services.Ledger
	Gateway services.Gateway
	Email   utils.EmailConfig
}

// NewPaymentController wires the controller with its clients.
func NewPaymentController(cfg *config.Config, ledger services.Ledger, gateway services.Gateway) *PaymentController {
	return &PaymentController{
		Config:  cfg,
		Ledger:  ledger,
		Gateway: gateway,
		Email: utils.EmailConfig{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			Username: cfg.SMTPUsername,
			Password: cfg.SMTPPassword,
			From:     cfg.SMTPFrom,
		},
	}
}

// POST /api/payment/create-order
// Mints a gateway order for an arbitrary amount. No ledger write
// happens here; the caller drives the checkout flow.
func (pc *PaymentController) CreateOrder(c *gin.Context) {
	utils.LogInfo("CreateOrder called")

	var req struct {
		Amount   *float64          `json:"amount"`
		Currency string            `json:"currency"`
		Notes    map[string]string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid create-order request: %v", err)
		utils.BadRequest(c, "Invalid request body. amount must be a number", nil)
		return
	}
	if req.Amount == nil {
		utils.LogError("create-order request missing amount")
		utils.BadRequest(c, "amount is required", nil)
		return
	}

	amountMinor := int64(math.Round(*req.Amount * 100))
	if amountMinor <= 0 {
		utils.LogError("create-order request with non-positive amount: %v", *req.Amount)
		utils.BadRequest(c, "amount must be positive", nil)
		return
	}

	currency := req.Currency
	if currency == "" {
		currency = pc.Config.Currency
	}

	receipt := "enroll_rcpt_" + uuid.New().String()[:8]
	utils.LogDebug("Creating gateway order - amount: %d %s, receipt: %s", amountMinor, currency, receipt)

	order, err := pc.Gateway.CreateOrder(amountMinor, currency, receipt, req.Notes)
	if err != nil {
		utils.LogError("Failed to create gateway order: %v", err)
		utils.InternalServerError(c, "Failed to create order", nil)
		return
	}
	utils.LogInfo("Created gateway order %s for %d %s", order.ID, amountMinor, currency)

	utils.Success(c, "Order created successfully", gin.H{"order": order})
}

// POST /api/payment/append-form
// Checkout initiation: creates a gateway order at the configured
// course fee, appends a pending ledger row and returns the checkout
// link. A ledger failure here fails the request; without the row the
// later callbacks would have no identity to attach to.
func (pc *PaymentController) AppendForm(c *gin.Context) {
	utils.LogInfo("AppendForm called")

	var req struct {
		FormData models.EnrollmentForm `json:"formData"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid append-form request: %v", err)
		utils.BadRequest(c, "Invalid request body", nil)
		return
	}
	if req.FormData.IsEmpty() {
		utils.LogError("append-form request with empty formData")
		utils.BadRequest(c, "formData is required", nil)
		return
	}

	form := req.FormData
	amountMinor := int64(math.Round(pc.Config.CourseAmount * 100))
	receipt := "enroll_rcpt_" + uuid.New().String()[:8]
	notes := map[string]string{
		"name":   form.Name,
		"email":  form.Email,
		"mobile": form.Mobile,
	}

	order, err := pc.Gateway.CreateOrder(amountMinor, pc.Config.Currency, receipt, notes)
	if err != nil {
		utils.LogError("Failed to create gateway order for %s: %v", form.Email, err)
		utils.InternalServerError(c, "Failed to create order", nil)
		return
	}
	utils.LogInfo("Created gateway order %s for enrollment by %s", order.ID, form.Email)

	now := time.Now().Format(ledgerTimeLayout)
	row := models.LedgerRow{
		Timestamp:       now,
		Name:            form.Name,
		Mobile:          form.Mobile,
		Email:           form.Email,
		City:            form.City,
		Experience:      form.Experience,
		Amount:          strconv.FormatInt(amountMinor, 10),
		Currency:        order.Currency,
		OrderID:         order.ID,
		Status:          models.PaymentStatusPending,
		StatusTimestamp: now,
	}
	if err := pc.Ledger.AppendRow(c.Request.Context(), row.Values()); err != nil {
		utils.LogError("Failed to append ledger row for order %s: %v", order.ID, err)
		utils.InternalServerError(c, "Failed to record enrollment", nil)
		return
	}
	utils.LogInfo("Appended pending ledger row for order %s", order.ID)

	paymentLink := pc.Config.BaseURL + "/checkout" +
		"?order_id=" + order.ID +
		"&key=" + pc.Config.RazorpayKey +
		"&amount=" + strconv.FormatInt(order.Amount, 10) +
		"&currency=" + order.Currency

	utils.Success(c, "Enrollment recorded", gin.H{
		"paymentLink": paymentLink,
		"orderId":     order.ID,
	})
}

type verifyCallback struct {
	OrderID   string `form:"razorpay_order_id" json:"razorpay_order_id"`
	PaymentID string `form:"razorpay_payment_id" json:"razorpay_payment_id"`
	Signature string `form:"razorpay_signature" json:"razorpay_signature"`
}

// GET|POST /api/payment/verify-payment
// Synchronous verification on the redirect callback. The signature is
// recomputed over "orderID|paymentID"; any mismatch rejects with no
// ledger mutation. On success the authoritative payment is fetched
// best-effort, the row is upserted and the client is redirected to the
// confirmation page.
func (pc *PaymentController) VerifyPayment(c *gin.Context) {
	utils.LogInfo("VerifyPayment called")

	var req verifyCallback
	if c.Request.Method == http.MethodGet {
		_ = c.ShouldBindQuery(&req)
	} else {
		_ = c.ShouldBind(&req)
		// the gateway mixes body and query params on some callbacks
		if req.OrderID == "" {
			req.OrderID = c.Query("razorpay_order_id")
		}
		if req.PaymentID == "" {
			req.PaymentID = c.Query("razorpay_payment_id")
		}
		if req.Signature == "" {
			req.Signature = c.Query("razorpay_signature")
		}
	}

	if req.OrderID == "" || req.PaymentID == "" || req.Signature == "" {
		utils.LogError("verify-payment request missing fields (order: %q, payment: %q)", req.OrderID, req.PaymentID)
		utils.BadRequest(c, "razorpay_order_id, razorpay_payment_id and razorpay_signature are required", nil)
		return
	}

	if !utils.VerifyPaymentSignature(req.OrderID, req.PaymentID, req.Signature, pc.Config.RazorpaySecret) {
		utils.LogError("Payment signature mismatch for order %s", req.OrderID)
		utils.BadRequest(c, "Payment verification failed", nil)
		return
	}
	utils.LogInfo("Payment signature verified for order %s", req.OrderID)

	// The signature already proves the capture; the fetch only refines
	// status and amount, so a fetch failure must not abort verification.
	status := models.PaymentStatusCaptured
	amountMinor := int64(math.Round(pc.Config.CourseAmount * 100))
	currency := pc.Config.Currency
	payment, err := pc.Gateway.FetchPayment(req.PaymentID)
	if err != nil {
		utils.LogError("Failed to fetch payment %s, recording as captured: %v", req.PaymentID, err)
	} else {
		if payment.Status != "" {
			status = payment.Status
		}
		if payment.Amount > 0 {
			amountMinor = payment.Amount
		}
		if payment.Currency != "" {
			currency = payment.Currency
		}
	}

	ctx := c.Request.Context()
	if err := pc.upsertPaymentRow(ctx, req.OrderID, req.PaymentID, amountMinor, currency, status); err != nil {
		// reconciliation paths log and continue; the gateway has the
		// money either way and the client still deserves its redirect
		utils.LogError("Failed to reconcile ledger row for order %s: %v", req.OrderID, err)
	} else {
		utils.LogInfo("Recorded status %s for order %s", status, req.OrderID)
	}

	if status == models.PaymentStatusCaptured {
		pc.sendConfirmation(ctx, req.OrderID, amountMinor, currency)
	}

	c.Redirect(http.StatusFound, pc.Config.ConfirmationURL)
}

// GET /api/payment/cancel-payment
// Cancellation callback carries only an order ID and no signature. A
// missing or unknown order ID is a silent no-op; the client is always
// redirected to the cancellation page.
func (pc *PaymentController) CancelPayment(c *gin.Context) {
	utils.LogInfo("CancelPayment called")

	orderID := c.Query("order_id")
	if orderID == "" {
		utils.LogInfo("cancel-payment without order_id, nothing to update")
		c.Redirect(http.StatusFound, pc.Config.CancelURL)
		return
	}

	ctx := c.Request.Context()
	row, err := pc.Ledger.FindRowByOrderID(ctx, orderID)
	switch {
	case err == services.ErrRowNotFound:
		utils.LogInfo("No ledger row for cancelled order %s, nothing to update", orderID)
	case err != nil:
		utils.LogError("Ledger lookup failed for cancelled order %s: %v", orderID, err)
	default:
		now := time.Now().Format(ledgerTimeLayout)
		if err := pc.Ledger.ClearRowRange(ctx, row, "I", "I"); err != nil {
			utils.LogError("Failed to clear payment ID for order %s: %v", orderID, err)
		}
		if err := pc.Ledger.UpdateRowRange(ctx, row, "K", "L", []interface{}{models.PaymentStatusCancelled, now}); err != nil {
			utils.LogError("Failed to mark order %s cancelled: %v", orderID, err)
		} else {
			utils.LogInfo("Marked order %s cancelled", orderID)
		}
	}

	c.Redirect(http.StatusFound, pc.Config.CancelURL)
}

// POST /api/payment/webhook
// Asynchronous server-to-server notification. The signature covers the
// raw body under the webhook secret; when no secret is configured the
// check is skipped with a warning. Unknown event kinds are logged and
// acknowledged, never errors - the gateway retries anything else.
func (pc *PaymentController) Webhook(c *gin.Context) {
	utils.LogInfo("Webhook called")

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		utils.LogError("Failed to read webhook body: %v", err)
		utils.BadRequest(c, "Failed to read request body", nil)
		return
	}

	if pc.Config.WebhookSecret == "" {
		utils.LogError("RAZORPAY_WEBHOOK_SECRET is not set; accepting webhook WITHOUT signature verification - never run production like this")
	} else {
		signature := c.GetHeader("X-Razorpay-Signature")
		if !utils.VerifyWebhookSignature(body, signature, pc.Config.WebhookSecret) {
			utils.LogError("Webhook signature mismatch")
			utils.BadRequest(c, "Invalid webhook signature", nil)
			return
		}
	}

	var payload models.WebhookPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		utils.LogError("Failed to parse webhook payload: %v", err)
		utils.InternalServerError(c, "Failed to process webhook", nil)
		return
	}

	kind := models.ParseWebhookEventKind(payload.Event)
	if kind == models.EventUnknown {
		utils.LogInfo("Ignoring unhandled webhook event %q", payload.Event)
		c.JSON(http.StatusOK, gin.H{"ok": true})
		return
	}

	entity := payload.Payload.Payment.Entity
	if entity.OrderID == "" {
		utils.LogError("Webhook event %s carries no order_id, ignoring", kind)
		c.JSON(http.StatusOK, gin.H{"ok": true})
		return
	}
	utils.LogInfo("Processing webhook event %s for order %s", kind, entity.OrderID)

	ctx := c.Request.Context()
	if err := pc.upsertPaymentRow(ctx, entity.OrderID, entity.ID, entity.Amount, entity.Currency, kind.Status()); err != nil {
		utils.LogError("Failed to reconcile webhook event %s for order %s: %v", kind, entity.OrderID, err)
		if appErr := utils.GetAppError(err); appErr != nil {
			utils.Error(c, appErr.Code, "Failed to process webhook", nil)
		} else {
			utils.InternalServerError(c, "Failed to process webhook", nil)
		}
		return
	}
	utils.LogInfo("Recorded status %s for order %s", kind.Status(), entity.OrderID)

	if kind == models.EventPaymentCaptured {
		pc.sendConfirmation(ctx, entity.OrderID, entity.Amount, entity.Currency)
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}
