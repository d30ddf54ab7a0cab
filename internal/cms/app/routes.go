package app

import "github.com/RoGasore/CALMNESS2/internal/cms/handlers"

func (a *App) RegisterRoutes(h *handlers.ContentHandler) {
	api := a.Router.Group("/api")
	api.GET("/:contentType", h.Find)
	api.GET("/:contentType/:id", h.FindOne)
}
