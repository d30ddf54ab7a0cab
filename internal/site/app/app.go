package app

import (
	"fmt"
	"html/template"
	"net/http"
	"strings"

	"github.com/RoGasore/CALMNESS2/config"
	"github.com/RoGasore/CALMNESS2/internal/site/billing"
	"github.com/RoGasore/CALMNESS2/internal/site/content"
	"github.com/RoGasore/CALMNESS2/internal/site/events"
	"github.com/RoGasore/CALMNESS2/internal/site/handlers"
	"github.com/RoGasore/CALMNESS2/internal/site/metrics"
	"github.com/RoGasore/CALMNESS2/internal/site/static"
	"github.com/RoGasore/CALMNESS2/internal/site/templates"
	"github.com/gin-gonic/gin"
)

type App struct {
	config *config.Config
	Router *gin.Engine
}

func (a *App) Initialize(cfg *config.Config) {
	a.config = cfg
	metrics.RegisterMetrics()

	contentClient := content.NewClient(cfg.Site.CMSURL)
	billingClient := billing.NewClient(cfg.Site.BillingURL)

	publisher := events.NewKafkaPublisher(
		cfg.Kafka.Brokers,
		strings.Split(cfg.Kafka.PublishTopics, ","),
		cfg.Kafka.GetRetryConfig(),
	)

	flow := billing.NewFlow(billingClient, publisher)

	pagesHandler := handlers.NewPagesHandler(contentClient)
	paymentHandler := handlers.NewPaymentHandler(flow)
	authHandler := handlers.NewAuthHandler(cfg.Site.VerificationCode)

	a.Router = gin.Default()
	a.Router.Use(gin.Recovery())
	a.Router.SetHTMLTemplate(template.Must(template.New("").ParseFS(templates.FS, "*.tmpl")))
	a.Router.StaticFS("/static", http.FS(static.FS))
	a.RegisterRoutes(pagesHandler, paymentHandler, authHandler)
}

func (a *App) Run() {
	err := a.Router.Run(fmt.Sprintf(":%s", a.config.Site.PORT))
	if err != nil {
		panic(err)
	}
}
