package services

import (
	"fmt"

	razorpay "github.com/razorpay/razorpay-go"

	"github.com/Govind-619/EnrollPay/models"
	"github.com/Govind-619/EnrollPay/utils"
)

// Gateway is the payment processor facade. Every call is a single
// direct network attempt; no retries, no idempotency keys, errors
// propagate to the caller.
type Gateway interface {
	CreateOrder(amountMinor int64, currency, receipt string, notes map[string]string) (*models.Order, error)
	FetchPayment(paymentID string) (*models.Payment, error)
}

// RazorpayGateway implements Gateway over the Razorpay SDK.
type RazorpayGateway struct {
	client *razorpay.Client
}

// NewRazorpayGateway builds the gateway client once per process.
func NewRazorpayGateway(key, secret string) *RazorpayGateway {
	return &RazorpayGateway{client: razorpay.NewClient(key, secret)}
}

// CreateOrder creates a gateway order for the given amount in minor
// units with auto-capture enabled.
func (g *RazorpayGateway) CreateOrder(amountMinor int64, currency, receipt string, notes map[string]string) (*models.Order, error) {
	data := map[string]interface{}{
		"amount":          amountMinor,
		"currency":        currency,
		"receipt":         receipt,
		"payment_capture": 1,
	}
	if len(notes) > 0 {
		orderNotes := make(map[string]interface{}, len(notes))
		for key, value := range notes {
			orderNotes[key] = value
		}
		data["notes"] = orderNotes
	}

	resp, err := g.client.Order.Create(data, nil)
	if err != nil {
		return nil, utils.UpstreamErr("razorpay order create failed", err)
	}

	return &models.Order{
		ID:       stringField(resp, "id"),
		Amount:   amountMinor,
		Currency: currency,
		Receipt:  receipt,
		Status:   stringField(resp, "status"),
		Notes:    notes,
	}, nil
}

// FetchPayment fetches the authoritative payment record from the
// gateway.
func (g *RazorpayGateway) FetchPayment(paymentID string) (*models.Payment, error) {
	resp, err := g.client.Payment.Fetch(paymentID, nil, nil)
	if err != nil {
		return nil, utils.UpstreamErr("razorpay payment fetch failed", err)
	}

	return &models.Payment{
		ID:        stringField(resp, "id"),
		OrderID:   stringField(resp, "order_id"),
		Amount:    int64Field(resp, "amount"),
		Currency:  stringField(resp, "currency"),
		Status:    stringField(resp, "status"),
		Email:     stringField(resp, "email"),
		Contact:   stringField(resp, "contact"),
		CreatedAt: int64Field(resp, "created_at"),
	}, nil
}

// The SDK returns loosely typed maps; coerce field by field.

func stringField(m map[string]interface{}, key string) string {
	if v, ok := m[key]; ok && v != nil {
		return fmt.Sprintf("%v", v)
	}
	return ""
}

func int64Field(m map[string]interface{}, key string) int64 {
	switch v := m[key].(type) {
	case float64:
		return int64(v)
	case int64:
		return v
	case int:
		return int64(v)
	}
	return 0
}
