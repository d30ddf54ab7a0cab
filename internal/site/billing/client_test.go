package billing_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/RoGasore/CALMNESS2/internal/site/billing"
	"github.com/stretchr/testify/assert"
)

func TestClient_InitPayment_Success(t *testing.T) {
	var gotPath string
	var gotBody billing.PaymentIntentRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"id":       42,
			"status":   "pending",
			"provider": "crypto",
			"amount":   75.0,
			"currency": "USD",
		})
	}))
	defer server.Close()

	client := billing.NewClient(server.URL)
	intent, err := client.InitPayment(context.Background(), billing.PaymentIntentRequest{
		ServiceCode:    "signaux-premium",
		Amount:         75,
		Currency:       "USD",
		Provider:       "crypto",
		IdempotencyKey: "key-1",
	})

	assert.NoError(t, err)
	assert.Equal(t, "/api/billing/payments/init", gotPath)
	assert.Equal(t, "key-1", gotBody.IdempotencyKey)
	assert.Equal(t, 42, intent.ID)
	assert.Equal(t, "pending", intent.Status)
}

func TestClient_InitPayment_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := billing.NewClient(server.URL)
	intent, err := client.InitPayment(context.Background(), billing.PaymentIntentRequest{
		ServiceCode: "formations-basique",
		Provider:    "bank",
	})

	assert.Error(t, err)
	assert.Nil(t, intent)
	assert.Contains(t, err.Error(), "unexpected status 500")
}

func TestClient_CreateSubscription_Success(t *testing.T) {
	var gotPath string
	var gotBody billing.SubscriptionRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		json.NewEncoder(w).Encode(map[string]interface{}{
			"id":         7,
			"plan_code":  "signaux-monthly",
			"status":     "active",
			"auto_renew": true,
		})
	}))
	defer server.Close()

	client := billing.NewClient(server.URL)
	subscription, err := client.CreateSubscription(context.Background(), billing.SubscriptionRequest{
		PlanCode:  "signaux-monthly",
		AutoRenew: true,
	})

	assert.NoError(t, err)
	assert.Equal(t, "/api/billing/subscriptions", gotPath)
	assert.True(t, gotBody.AutoRenew)
	assert.Equal(t, "signaux-monthly", subscription.PlanCode)
	assert.Equal(t, "active", subscription.Status)
}
