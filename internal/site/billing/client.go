package billing

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// PaymentIntentRequest is the body of the payment initiation call. The
// idempotency key lets the billing backend deduplicate retries of the same
// logical payment attempt.
type PaymentIntentRequest struct {
	ServiceCode    string            `json:"service_code"`
	Amount         float64           `json:"amount"`
	Currency       string            `json:"currency"`
	Provider       string            `json:"provider"`
	IdempotencyKey string            `json:"idempotency_key"`
	Metadata       map[string]string `json:"metadata,omitempty"`
}

type PaymentIntent struct {
	ID        int       `json:"id"`
	Status    string    `json:"status"`
	Provider  string    `json:"provider"`
	Amount    float64   `json:"amount"`
	Currency  string    `json:"currency"`
	CreatedAt time.Time `json:"created_at"`
}

type SubscriptionRequest struct {
	PlanCode  string `json:"plan_code"`
	AutoRenew bool   `json:"auto_renew"`
}

type Subscription struct {
	ID        int    `json:"id"`
	PlanCode  string `json:"plan_code"`
	Status    string `json:"status"`
	AutoRenew bool   `json:"auto_renew"`
}

// Client calls the external billing backend. Any non-2xx status is an
// error; success bodies are decoded loosely.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{},
	}
}

func (c *Client) InitPayment(ctx context.Context, request PaymentIntentRequest) (*PaymentIntent, error) {
	var intent PaymentIntent
	if err := c.post(ctx, "/api/billing/payments/init", request, &intent); err != nil {
		return nil, fmt.Errorf("init payment: %w", err)
	}
	return &intent, nil
}

func (c *Client) CreateSubscription(ctx context.Context, request SubscriptionRequest) (*Subscription, error) {
	var subscription Subscription
	if err := c.post(ctx, "/api/billing/subscriptions", request, &subscription); err != nil {
		return nil, fmt.Errorf("create subscription: %w", err)
	}
	return &subscription, nil
}

func (c *Client) post(ctx context.Context, endpoint string, body interface{}, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+endpoint, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return fmt.Errorf("unexpected status %d", res.StatusCode)
	}

	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}
