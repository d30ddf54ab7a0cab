package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/RoGasore/CALMNESS2/internal/site/billing"
	"github.com/RoGasore/CALMNESS2/internal/site/catalog"
	"github.com/RoGasore/CALMNESS2/internal/site/metrics"
	"github.com/gin-gonic/gin"
)

// PaymentFlow drives a payment attempt end to end.
type PaymentFlow interface {
	Submit(ctx context.Context, request billing.SubmitRequest) (*billing.Result, error)
}

type PaymentHandler struct {
	Flow PaymentFlow
}

func NewPaymentHandler(flow PaymentFlow) *PaymentHandler {
	return &PaymentHandler{Flow: flow}
}

// GET /paiement?service=<code>
// Visitors without a session see the page with a login prompt instead of
// the payment methods; they are not redirected away.
func (h *PaymentHandler) Show(c *gin.Context) {
	metrics.PageViewsTotal.WithLabelValues("/paiement").Inc()

	serviceCode := c.Query("service")
	details, ok := catalog.Lookup(serviceCode)
	if !ok {
		c.Redirect(http.StatusSeeOther, "/services")
		return
	}

	sessionID, _ := c.Cookie(sessionCookie)
	c.HTML(http.StatusOK, "paiement.tmpl", gin.H{
		"Theme":         theme(c),
		"LoginRequired": sessionID == "",
		"ServiceCode":   serviceCode,
		"Service":       details,
		"Methods":       catalog.PaymentMethods(),
		"Recurring":     billing.IsRecurring(serviceCode),
	})
}

// POST /paiement
func (h *PaymentHandler) Submit(c *gin.Context) {
	sessionID, err := c.Cookie(sessionCookie)
	if err != nil || sessionID == "" {
		c.Redirect(http.StatusSeeOther, "/connexion")
		return
	}

	serviceCode := c.PostForm("service")
	result, err := h.Flow.Submit(c.Request.Context(), billing.SubmitRequest{
		SessionID:   sessionID,
		ServiceCode: serviceCode,
		Provider:    c.PostForm("methode"),
		UserAgent:   c.Request.UserAgent(),
	})
	if err != nil {
		h.renderSubmitError(c, serviceCode, err)
		return
	}

	c.HTML(http.StatusOK, "confirmation.tmpl", gin.H{
		"Theme":  theme(c),
		"Result": result,
	})
}

func (h *PaymentHandler) renderSubmitError(c *gin.Context, serviceCode string, err error) {
	switch {
	case errors.Is(err, billing.ErrUnknownService):
		c.Redirect(http.StatusSeeOther, "/services")
	case errors.Is(err, billing.ErrNoMethodSelected):
		h.reshow(c, http.StatusBadRequest, serviceCode, "Veuillez sélectionner une méthode de paiement.")
	case errors.Is(err, billing.ErrSubmissionInFlight):
		h.reshow(c, http.StatusConflict, serviceCode, "Un paiement est déjà en cours. Merci de patienter.")
	default:
		h.reshow(c, http.StatusInternalServerError, serviceCode, "Une erreur est survenue. Merci de réessayer.")
	}
}

func (h *PaymentHandler) reshow(c *gin.Context, status int, serviceCode, message string) {
	details, _ := catalog.Lookup(serviceCode)
	c.HTML(status, "paiement.tmpl", gin.H{
		"Theme":       theme(c),
		"ServiceCode": serviceCode,
		"Service":     details,
		"Methods":     catalog.PaymentMethods(),
		"Recurring":   billing.IsRecurring(serviceCode),
		"Error":       message,
	})
}
