package models

// Payment status values as reported by the gateway. The ledger stores
// whichever status the gateway last reported, plus "cancelled" which
// this service writes itself.
const (
	PaymentStatusPending    = "pending"
	PaymentStatusAuthorized = "authorized"
	PaymentStatusCaptured   = "captured"
	PaymentStatusFailed     = "failed"
	PaymentStatusRefunded   = "refunded"
	PaymentStatusCancelled  = "cancelled"
)

// Order is a gateway-side intent to collect a specific amount,
// created before checkout. Immutable once created at the gateway.
type Order struct {
	ID       string            `json:"id"`
	Amount   int64             `json:"amount"` // minor units (paise)
	Currency string            `json:"currency"`
	Receipt  string            `json:"receipt"`
	Status   string            `json:"status"`
	Notes    map[string]string `json:"notes,omitempty"`
}

// Payment is the gateway's record of a payment attempt against an
// Order. Mutated only by the gateway; this service only observes it.
type Payment struct {
	ID        string `json:"id"`
	OrderID   string `json:"order_id"`
	Amount    int64  `json:"amount"` // minor units (paise)
	Currency  string `json:"currency"`
	Status    string `json:"status"`
	Email     string `json:"email,omitempty"`
	Contact   string `json:"contact,omitempty"`
	CreatedAt int64  `json:"created_at,omitempty"`
}
