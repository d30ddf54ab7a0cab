package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/RoGasore/CALMNESS2/internal/cms/models"
	"github.com/RoGasore/CALMNESS2/internal/cms/models/dto"
	"github.com/RoGasore/CALMNESS2/internal/cms/service"
	"github.com/gin-gonic/gin"
)

type ContentService interface {
	Find(ctx context.Context, contentType string, sortByOrdre bool) ([]models.ContentDocument, error)
	FindOne(ctx context.Context, contentType, id string) (*models.ContentDocument, error)
}

type ContentHandler struct {
	Service ContentService
}

func NewContentHandler(s ContentService) *ContentHandler {
	return &ContentHandler{Service: s}
}

// GET /api/:contentType
// Collection types return a document list with pagination meta; single types
// return one document. The Strapi-style singular/plural aliasing is kept:
// /api/services resolves to the service content type.
func (h *ContentHandler) Find(c *gin.Context) {
	contentType := normalize(c.Param("contentType"))
	sortByOrdre := c.Query("sort") == "ordre:asc"

	docs, err := h.Service.Find(c.Request.Context(), contentType, sortByOrdre)
	if err != nil {
		respondError(c, err)
		return
	}

	ct := models.ContentType(contentType)
	if ct.IsCollection() {
		c.JSON(http.StatusOK, dto.Response{
			Data: dto.FromModels(docs),
			Meta: dto.Meta{Pagination: &dto.Pagination{
				Page:      1,
				PageSize:  len(docs),
				PageCount: 1,
				Total:     len(docs),
			}},
		})
		return
	}

	if len(docs) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "document not found"})
		return
	}
	c.JSON(http.StatusOK, dto.Response{Data: dto.FromModel(docs[0])})
}

// GET /api/:contentType/:id
func (h *ContentHandler) FindOne(c *gin.Context) {
	contentType := normalize(c.Param("contentType"))

	doc, err := h.Service.FindOne(c.Request.Context(), contentType, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.Response{Data: dto.FromModel(*doc)})
}

func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrUnknownContentType), errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

func normalize(contentType string) string {
	if contentType == "services" {
		return string(models.TypeService)
	}
	return contentType
}
