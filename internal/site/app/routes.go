package app

import (
	"github.com/RoGasore/CALMNESS2/internal/site/handlers"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (a *App) RegisterRoutes(pages *handlers.PagesHandler, payment *handlers.PaymentHandler, auth *handlers.AuthHandler) {
	a.Router.GET("/", pages.Home)
	a.Router.GET("/a-propos", pages.About)
	a.Router.GET("/services", pages.Services)
	a.Router.GET("/faq", pages.FAQ)
	a.Router.GET("/contact", pages.Contact)
	a.Router.GET("/communaute", pages.Communaute)
	a.Router.POST("/theme", handlers.ToggleTheme)

	a.Router.GET("/connexion", auth.ShowLogin)
	a.Router.POST("/connexion", auth.Login)
	a.Router.GET("/verification-email", auth.ShowVerification)
	a.Router.POST("/verification-email", auth.Verify)

	a.Router.GET("/paiement", payment.Show)
	a.Router.POST("/paiement", payment.Submit)

	a.Router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
