package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	PaymentAttemptsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "payment_attempts_total",
			Help: "Nombre total de tentatives de paiement par statut",
		},
		[]string{"status"},
	)

	SubscriptionRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "subscription_requests_total",
			Help: "Nombre total de demandes d'abonnement par statut",
		},
		[]string{"status"},
	)

	ContentFallbacksTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "content_fallbacks_total",
			Help: "Nombre de lectures de contenu retombées sur les valeurs par défaut",
		},
		[]string{"content_type"},
	)

	PageViewsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "page_views_total",
			Help: "Nombre de pages rendues par route",
		},
		[]string{"route"},
	)
)

func RegisterMetrics() {
	prometheus.MustRegister(
		PaymentAttemptsTotal,
		SubscriptionRequestsTotal,
		ContentFallbacksTotal,
		PageViewsTotal,
	)
}
