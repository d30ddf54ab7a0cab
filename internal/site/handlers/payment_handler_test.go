package handlers_test

import (
	"html/template"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/RoGasore/CALMNESS2/internal/site/billing"
	"github.com/RoGasore/CALMNESS2/internal/site/handlers"
	"github.com/RoGasore/CALMNESS2/internal/site/handlers/mocks"
	"github.com/RoGasore/CALMNESS2/internal/site/templates"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newPaymentRouter(flow handlers.PaymentFlow) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.SetHTMLTemplate(template.Must(template.New("").ParseFS(templates.FS, "*.tmpl")))

	payment := handlers.NewPaymentHandler(flow)
	router.GET("/paiement", payment.Show)
	router.POST("/paiement", payment.Submit)
	return router
}

func postForm(router *gin.Engine, form url.Values, session string) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodPost, "/paiement", strings.NewReader(form.Encode()))
	request.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if session != "" {
		request.AddCookie(&http.Cookie{Name: "session", Value: session})
	}
	router.ServeHTTP(recorder, request)
	return recorder
}

func TestPaymentHandler_Show_PromptsLoginWithoutSession(t *testing.T) {
	flow := mocks.NewMockPaymentFlow(t)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/paiement?service=formations-basique", nil)
	newPaymentRouter(flow).ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Se connecter")
	assert.NotContains(t, recorder.Body.String(), "Méthode de paiement")
}

func TestPaymentHandler_Show_ListsMethodsWithSession(t *testing.T) {
	flow := mocks.NewMockPaymentFlow(t)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/paiement?service=signaux-premium", nil)
	request.AddCookie(&http.Cookie{Name: "session", Value: "sess-1"})
	newPaymentRouter(flow).ServeHTTP(recorder, request)

	body := recorder.Body.String()
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, body, "Signaux Premium")
	assert.Contains(t, body, "Virement Bancaire")
	assert.Contains(t, body, "Abonnement mensuel")
}

func TestPaymentHandler_Show_UnknownServiceRedirects(t *testing.T) {
	flow := mocks.NewMockPaymentFlow(t)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/paiement?service=formations-doctorat", nil)
	newPaymentRouter(flow).ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusSeeOther, recorder.Code)
	assert.Equal(t, "/services", recorder.Header().Get("Location"))
}

func TestPaymentHandler_Submit_NoSessionRedirectsToLogin(t *testing.T) {
	flow := mocks.NewMockPaymentFlow(t)

	recorder := postForm(newPaymentRouter(flow), url.Values{
		"service": {"formations-basique"},
		"methode": {"bank"},
	}, "")

	assert.Equal(t, http.StatusSeeOther, recorder.Code)
	assert.Equal(t, "/connexion", recorder.Header().Get("Location"))
	flow.AssertNotCalled(t, "Submit", mock.Anything, mock.Anything)
}

func TestPaymentHandler_Submit_RendersConfirmation(t *testing.T) {
	flow := mocks.NewMockPaymentFlow(t)
	flow.EXPECT().Submit(mock.Anything, mock.MatchedBy(func(request billing.SubmitRequest) bool {
		return request.SessionID == "sess-1" &&
			request.ServiceCode == "formations-basique" &&
			request.Provider == "bank"
	})).Return(&billing.Result{
		Status:         billing.StatusCompleted,
		Message:        "Paiement initialisé.",
		IdempotencyKey: "key-1",
	}, nil)

	recorder := postForm(newPaymentRouter(flow), url.Values{
		"service": {"formations-basique"},
		"methode": {"bank"},
	}, "sess-1")

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Paiement initialisé.")
	assert.Contains(t, recorder.Body.String(), "key-1")
}

func TestPaymentHandler_Submit_MissingMethodReshowsForm(t *testing.T) {
	flow := mocks.NewMockPaymentFlow(t)
	flow.EXPECT().Submit(mock.Anything, mock.Anything).Return(nil, billing.ErrNoMethodSelected)

	recorder := postForm(newPaymentRouter(flow), url.Values{
		"service": {"formations-basique"},
	}, "sess-1")

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Veuillez sélectionner une méthode de paiement.")
}

func TestPaymentHandler_Submit_InFlightConflict(t *testing.T) {
	flow := mocks.NewMockPaymentFlow(t)
	flow.EXPECT().Submit(mock.Anything, mock.Anything).Return(nil, billing.ErrSubmissionInFlight)

	recorder := postForm(newPaymentRouter(flow), url.Values{
		"service": {"signaux-vip"},
		"methode": {"crypto"},
	}, "sess-1")

	assert.Equal(t, http.StatusConflict, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Un paiement est déjà en cours.")
}
