package billing

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/RoGasore/CALMNESS2/internal/site/catalog"
	"github.com/RoGasore/CALMNESS2/internal/site/events"
	"github.com/RoGasore/CALMNESS2/internal/site/metrics"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	// SubscriptionPlanCode is the recurring plan attached to the signaux
	// service family after a successful payment initiation.
	SubscriptionPlanCode = "signaux-monthly"

	recurringPrefix = "signaux"
	defaultCurrency = "USD"
)

type Status string

const (
	StatusCompleted Status = "COMPLETED"
	StatusFailed    Status = "FAILED"
	// StatusNeedsFollowUp marks the half-finished saga: the payment intent
	// was created but the subscription call failed. The intent is not rolled
	// back; it is flagged for out-of-band reconciliation.
	StatusNeedsFollowUp Status = "NEEDS_FOLLOWUP"
)

var (
	ErrNoMethodSelected   = errors.New("no payment method selected")
	ErrUnknownService     = errors.New("unknown service code")
	ErrSubmissionInFlight = errors.New("a payment submission is already in flight for this session")
)

// BillingAPI is the external billing backend surface the flow drives.
type BillingAPI interface {
	InitPayment(ctx context.Context, request PaymentIntentRequest) (*PaymentIntent, error)
	CreateSubscription(ctx context.Context, request SubscriptionRequest) (*Subscription, error)
}

// Publisher emits payment lifecycle events. Publishing is best-effort and
// never changes the flow outcome.
type Publisher interface {
	Publish(ctx context.Context, topic string, message interface{}) error
}

type SubmitRequest struct {
	SessionID   string
	ServiceCode string
	Provider    string
	UserAgent   string
}

type Result struct {
	Status         Status
	Message        string
	IdempotencyKey string
	Intent         *PaymentIntent
	Subscription   *Subscription
}

// Flow orchestrates a payment attempt: build the intent request with a
// stable idempotency key, call the initiation endpoint, and follow up with
// a subscription creation for recurring service codes.
//
// Two invariants are enforced here rather than left to the UI:
//   - one idempotency key per logical payment intent: the key is minted when
//     the intent begins and reused across retries of that same intent; a new
//     key is only issued after the intent completes.
//   - at most one in-flight submission per session: re-entrant submits are
//     rejected with ErrSubmissionInFlight.
type Flow struct {
	api       BillingAPI
	publisher Publisher

	mu       sync.Mutex
	inflight map[string]bool
	intents  map[string]string
}

func NewFlow(api BillingAPI, publisher Publisher) *Flow {
	return &Flow{
		api:       api,
		publisher: publisher,
		inflight:  make(map[string]bool),
		intents:   make(map[string]string),
	}
}

func (f *Flow) Submit(ctx context.Context, request SubmitRequest) (*Result, error) {
	if request.Provider == "" || !catalog.IsValidPaymentMethod(request.Provider) {
		return nil, ErrNoMethodSelected
	}

	details, ok := catalog.Lookup(request.ServiceCode)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownService, request.ServiceCode)
	}

	if err := f.acquire(request.SessionID); err != nil {
		return nil, err
	}
	defer f.release(request.SessionID)

	key := f.intentKey(request)

	intentRequest := PaymentIntentRequest{
		ServiceCode:    request.ServiceCode,
		Amount:         details.Price,
		Currency:       defaultCurrency,
		Provider:       request.Provider,
		IdempotencyKey: key,
		Metadata:       map[string]string{"ua": request.UserAgent},
	}

	intent, err := f.api.InitPayment(ctx, intentRequest)
	if err != nil {
		logrus.Errorf("Error initializing payment for %s: %s", request.ServiceCode, err.Error())
		metrics.PaymentAttemptsTotal.WithLabelValues("failed").Inc()
		f.publish(ctx, events.TopicPaymentsFailed, intentRequest, string(StatusFailed), err.Error())
		return &Result{
			Status:         StatusFailed,
			Message:        "Impossible d'initialiser le paiement. Merci de réessayer.",
			IdempotencyKey: key,
		}, nil
	}

	f.publish(ctx, events.TopicPaymentsInitiated, intentRequest, "initiated", "")

	if !IsRecurring(request.ServiceCode) {
		f.complete(request)
		metrics.PaymentAttemptsTotal.WithLabelValues("completed").Inc()
		return &Result{
			Status:         StatusCompleted,
			Message:        "Paiement initialisé.",
			IdempotencyKey: key,
			Intent:         intent,
		}, nil
	}

	subscription, err := f.api.CreateSubscription(ctx, SubscriptionRequest{
		PlanCode:  SubscriptionPlanCode,
		AutoRenew: true,
	})
	if err != nil {
		// The intent stays created; no compensating rollback. The attempt is
		// flagged so it can be reconciled instead of silently orphaned.
		logrus.Errorf("Error creating subscription after payment init (key=%s): %s", key, err.Error())
		metrics.PaymentAttemptsTotal.WithLabelValues("needs_followup").Inc()
		metrics.SubscriptionRequestsTotal.WithLabelValues("failed").Inc()
		f.publish(ctx, events.TopicPaymentsFollowup, intentRequest, string(StatusNeedsFollowUp), err.Error())
		return &Result{
			Status:         StatusNeedsFollowUp,
			Message:        "Impossible de créer l'abonnement.",
			IdempotencyKey: key,
			Intent:         intent,
		}, nil
	}

	f.complete(request)
	metrics.PaymentAttemptsTotal.WithLabelValues("completed").Inc()
	metrics.SubscriptionRequestsTotal.WithLabelValues("created").Inc()
	return &Result{
		Status:         StatusCompleted,
		Message:        "Paiement initialisé. Votre abonnement est en cours d'activation.",
		IdempotencyKey: key,
		Intent:         intent,
		Subscription:   subscription,
	}, nil
}

// IsRecurring reports whether the service code denotes a recurring plan.
func IsRecurring(serviceCode string) bool {
	return strings.HasPrefix(serviceCode, recurringPrefix)
}

func (f *Flow) acquire(sessionID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.inflight[sessionID] {
		return ErrSubmissionInFlight
	}
	f.inflight[sessionID] = true
	return nil
}

func (f *Flow) release(sessionID string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.inflight, sessionID)
}

// intentKey returns the idempotency key for the current intent, minting one
// if the intent is new. Retries of the same intent (same session, service
// and provider, before a terminal success) reuse the existing key.
func (f *Flow) intentKey(request SubmitRequest) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	fingerprint := intentFingerprint(request)
	if key, ok := f.intents[fingerprint]; ok {
		return key
	}
	key := uuid.New().String()
	f.intents[fingerprint] = key
	return key
}

// complete retires the intent: the next submission for the same
// service/provider pair is a fresh intent with a fresh key.
func (f *Flow) complete(request SubmitRequest) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.intents, intentFingerprint(request))
}

func intentFingerprint(request SubmitRequest) string {
	return fmt.Sprintf("%s|%s|%s", request.SessionID, request.ServiceCode, request.Provider)
}

func (f *Flow) publish(ctx context.Context, topic string, request PaymentIntentRequest, status, reason string) {
	if f.publisher == nil {
		return
	}
	event := events.PaymentEvent{
		ServiceCode:    request.ServiceCode,
		Provider:       request.Provider,
		Amount:         request.Amount,
		Currency:       request.Currency,
		IdempotencyKey: request.IdempotencyKey,
		Status:         status,
		Reason:         reason,
		Timestamp:      time.Now().UTC(),
	}
	if err := f.publisher.Publish(ctx, topic, event); err != nil {
		logrus.Errorf("Error publishing %s event: %s", topic, err.Error())
	}
}
