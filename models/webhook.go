package models

// WebhookEventKind is a closed set of the gateway webhook events this
// service reconciles. Anything else parses to EventUnknown, which
// handlers log and ignore.
type WebhookEventKind int

const (
	EventUnknown WebhookEventKind = iota
	EventPaymentAuthorized
	EventPaymentPending
	EventPaymentCaptured
	EventPaymentFailed
)

// ParseWebhookEventKind maps the gateway's event name to a kind.
func ParseWebhookEventKind(event string) WebhookEventKind {
	switch event {
	case "payment.authorized":
		return EventPaymentAuthorized
	case "payment.pending":
		return EventPaymentPending
	case "payment.captured":
		return EventPaymentCaptured
	case "payment.failed":
		return EventPaymentFailed
	default:
		return EventUnknown
	}
}

func (k WebhookEventKind) String() string {
	switch k {
	case EventPaymentAuthorized:
		return "payment.authorized"
	case EventPaymentPending:
		return "payment.pending"
	case EventPaymentCaptured:
		return "payment.captured"
	case EventPaymentFailed:
		return "payment.failed"
	default:
		return "unknown"
	}
}

// Status returns the ledger status written for this event kind, or ""
// for EventUnknown.
func (k WebhookEventKind) Status() string {
	switch k {
	case EventPaymentAuthorized:
		return PaymentStatusAuthorized
	case EventPaymentPending:
		return PaymentStatusPending
	case EventPaymentCaptured:
		return PaymentStatusCaptured
	case EventPaymentFailed:
		return PaymentStatusFailed
	default:
		return ""
	}
}

// WebhookPayload is the envelope the gateway posts to the webhook
// endpoint.
type WebhookPayload struct {
	Event   string `json:"event"`
	Payload struct {
		Payment struct {
			Entity WebhookPaymentEntity `json:"entity"`
		} `json:"payment"`
	} `json:"payload"`
}

// WebhookPaymentEntity is the payment record carried in a webhook.
type WebhookPaymentEntity struct {
	ID       string `json:"id"`
	OrderID  string `json:"order_id"`
	Amount   int64  `json:"amount"` // minor units
	Currency string `json:"currency"`
	Status   string `json:"status"`
	Email    string `json:"email"`
	Contact  string `json:"contact"`
}
