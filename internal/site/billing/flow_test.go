package billing_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/RoGasore/CALMNESS2/internal/site/billing"
	"github.com/RoGasore/CALMNESS2/internal/site/billing/mocks"
	"github.com/RoGasore/CALMNESS2/internal/site/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func lenientPublisher(t *testing.T) *mocks.MockPublisher {
	publisher := mocks.NewMockPublisher(t)
	publisher.EXPECT().Publish(mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()
	return publisher
}

func TestFlow_Submit_RecurringCreatesSubscription(t *testing.T) {
	api := mocks.NewMockBillingAPI(t)
	api.EXPECT().InitPayment(mock.Anything, mock.Anything).
		Return(&billing.PaymentIntent{ID: 1, Status: "pending"}, nil)
	api.EXPECT().CreateSubscription(mock.Anything, billing.SubscriptionRequest{
		PlanCode:  billing.SubscriptionPlanCode,
		AutoRenew: true,
	}).Return(&billing.Subscription{ID: 11, PlanCode: billing.SubscriptionPlanCode}, nil)

	flow := billing.NewFlow(api, lenientPublisher(t))
	result, err := flow.Submit(context.Background(), billing.SubmitRequest{
		SessionID:   "sess-1",
		ServiceCode: "signaux-premium",
		Provider:    "crypto",
	})

	assert.NoError(t, err)
	assert.Equal(t, billing.StatusCompleted, result.Status)
	assert.NotNil(t, result.Subscription)
	assert.Equal(t, 11, result.Subscription.ID)
}

func TestFlow_Submit_OneShotSkipsSubscription(t *testing.T) {
	api := mocks.NewMockBillingAPI(t)
	api.EXPECT().InitPayment(mock.Anything, mock.Anything).
		Return(&billing.PaymentIntent{ID: 2, Status: "pending"}, nil)

	flow := billing.NewFlow(api, lenientPublisher(t))
	result, err := flow.Submit(context.Background(), billing.SubmitRequest{
		SessionID:   "sess-1",
		ServiceCode: "formations-basique",
		Provider:    "bank",
	})

	assert.NoError(t, err)
	assert.Equal(t, billing.StatusCompleted, result.Status)
	assert.Nil(t, result.Subscription)
	api.AssertNotCalled(t, "CreateSubscription", mock.Anything, mock.Anything)
}

func TestFlow_Submit_FailedInitSkipsSubscription(t *testing.T) {
	api := mocks.NewMockBillingAPI(t)
	api.EXPECT().InitPayment(mock.Anything, mock.Anything).
		Return(nil, errors.New("billing backend returned status 502"))

	var publishedTopic string
	publisher := mocks.NewMockPublisher(t)
	publisher.EXPECT().Publish(mock.Anything, mock.Anything, mock.Anything).
		Run(func(ctx context.Context, topic string, message interface{}) {
			publishedTopic = topic
		}).Return(nil)

	flow := billing.NewFlow(api, publisher)
	result, err := flow.Submit(context.Background(), billing.SubmitRequest{
		SessionID:   "sess-1",
		ServiceCode: "signaux-vip",
		Provider:    "card",
	})

	assert.NoError(t, err)
	assert.Equal(t, billing.StatusFailed, result.Status)
	assert.Nil(t, result.Intent)
	assert.Equal(t, events.TopicPaymentsFailed, publishedTopic)
	api.AssertNotCalled(t, "CreateSubscription", mock.Anything, mock.Anything)
}

func TestFlow_Submit_SubscriptionFailureNeedsFollowUp(t *testing.T) {
	api := mocks.NewMockBillingAPI(t)
	api.EXPECT().InitPayment(mock.Anything, mock.Anything).
		Return(&billing.PaymentIntent{ID: 3, Status: "pending"}, nil)
	api.EXPECT().CreateSubscription(mock.Anything, mock.Anything).
		Return(nil, errors.New("billing backend returned status 500"))

	var topics []string
	publisher := mocks.NewMockPublisher(t)
	publisher.EXPECT().Publish(mock.Anything, mock.Anything, mock.Anything).
		Run(func(ctx context.Context, topic string, message interface{}) {
			topics = append(topics, topic)
		}).Return(nil)

	flow := billing.NewFlow(api, publisher)
	result, err := flow.Submit(context.Background(), billing.SubmitRequest{
		SessionID:   "sess-1",
		ServiceCode: "signaux-premium",
		Provider:    "paypal",
	})

	assert.NoError(t, err)
	assert.Equal(t, billing.StatusNeedsFollowUp, result.Status)
	assert.NotNil(t, result.Intent)
	assert.Nil(t, result.Subscription)
	assert.Contains(t, topics, events.TopicPaymentsInitiated)
	assert.Contains(t, topics, events.TopicPaymentsFollowup)
}

func TestFlow_Submit_RetryReusesIdempotencyKey(t *testing.T) {
	var keys []string
	api := mocks.NewMockBillingAPI(t)
	api.EXPECT().InitPayment(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, request billing.PaymentIntentRequest) {
			keys = append(keys, request.IdempotencyKey)
		}).Return(nil, errors.New("billing backend returned status 503")).Once()
	api.EXPECT().InitPayment(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, request billing.PaymentIntentRequest) {
			keys = append(keys, request.IdempotencyKey)
		}).Return(&billing.PaymentIntent{ID: 4, Status: "pending"}, nil)

	flow := billing.NewFlow(api, lenientPublisher(t))
	request := billing.SubmitRequest{
		SessionID:   "sess-1",
		ServiceCode: "formations-elite",
		Provider:    "bank",
	}

	first, err := flow.Submit(context.Background(), request)
	assert.NoError(t, err)
	assert.Equal(t, billing.StatusFailed, first.Status)

	second, err := flow.Submit(context.Background(), request)
	assert.NoError(t, err)
	assert.Equal(t, billing.StatusCompleted, second.Status)

	// The failed attempt and its retry belong to the same intent.
	assert.Len(t, keys, 2)
	assert.Equal(t, keys[0], keys[1])

	// After completion the intent is retired: a new submission mints a new key.
	third, err := flow.Submit(context.Background(), request)
	assert.NoError(t, err)
	assert.Equal(t, billing.StatusCompleted, third.Status)
	assert.Len(t, keys, 3)
	assert.NotEqual(t, keys[1], keys[2])
}

func TestFlow_Submit_RejectsConcurrentSubmission(t *testing.T) {
	entered := make(chan struct{})
	proceed := make(chan struct{})

	api := mocks.NewMockBillingAPI(t)
	api.EXPECT().InitPayment(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, request billing.PaymentIntentRequest) {
			close(entered)
			<-proceed
		}).Return(&billing.PaymentIntent{ID: 5, Status: "pending"}, nil)

	flow := billing.NewFlow(api, lenientPublisher(t))
	request := billing.SubmitRequest{
		SessionID:   "sess-1",
		ServiceCode: "liaison-comptes",
		Provider:    "mobile",
	}

	done := make(chan *billing.Result)
	go func() {
		result, _ := flow.Submit(context.Background(), request)
		done <- result
	}()

	<-entered
	_, err := flow.Submit(context.Background(), request)
	assert.ErrorIs(t, err, billing.ErrSubmissionInFlight)

	close(proceed)
	select {
	case result := <-done:
		assert.Equal(t, billing.StatusCompleted, result.Status)
	case <-time.After(2 * time.Second):
		t.Fatal("first submission did not finish")
	}
}

func TestFlow_Submit_RejectsMissingMethodAndUnknownService(t *testing.T) {
	api := mocks.NewMockBillingAPI(t)
	flow := billing.NewFlow(api, lenientPublisher(t))

	_, err := flow.Submit(context.Background(), billing.SubmitRequest{
		SessionID:   "sess-1",
		ServiceCode: "formations-basique",
	})
	assert.ErrorIs(t, err, billing.ErrNoMethodSelected)

	_, err = flow.Submit(context.Background(), billing.SubmitRequest{
		SessionID:   "sess-1",
		ServiceCode: "formations-doctorat",
		Provider:    "bank",
	})
	assert.ErrorIs(t, err, billing.ErrUnknownService)
	api.AssertNotCalled(t, "InitPayment", mock.Anything, mock.Anything)
}
