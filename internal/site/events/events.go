package events

import "time"

const (
	TopicPaymentsInitiated = "payments.initiated"
	TopicPaymentsFailed    = "payments.failed"
	TopicPaymentsFollowup  = "payments.followup"
)

// PaymentEvent is the lifecycle event emitted around a payment attempt.
// Consumers live outside this repo (analytics, reconciliation).
type PaymentEvent struct {
	ServiceCode    string    `json:"service_code"`
	Provider       string    `json:"provider"`
	Amount         float64   `json:"amount"`
	Currency       string    `json:"currency"`
	IdempotencyKey string    `json:"idempotency_key"`
	Status         string    `json:"status"`
	Reason         string    `json:"reason,omitempty"`
	Timestamp      time.Time `json:"timestamp"`
}
