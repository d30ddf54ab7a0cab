package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/RoGasore/CALMNESS2/internal/site/catalog"
	"github.com/RoGasore/CALMNESS2/internal/site/content"
	"github.com/RoGasore/CALMNESS2/internal/site/faq"
	"github.com/RoGasore/CALMNESS2/internal/site/metrics"
	"github.com/gin-gonic/gin"
)

// ContentStore is the read surface of the content client. Accessors never
// fail; a nil or empty result means the caller falls back to default copy.
type ContentStore interface {
	PageAccueil(ctx context.Context) *content.PageAccueil
	PageAPropos(ctx context.Context) *content.PageAPropos
	Services(ctx context.Context) []content.Service
	PageContact(ctx context.Context) *content.PageContact
}

type PagesHandler struct {
	Content ContentStore
}

func NewPagesHandler(store ContentStore) *PagesHandler {
	return &PagesHandler{Content: store}
}

func (h *PagesHandler) Home(c *gin.Context) {
	metrics.PageViewsTotal.WithLabelValues("/").Inc()

	attrs := content.DefaultAccueil()
	if page := h.Content.PageAccueil(c.Request.Context()); page != nil {
		attrs = page.Attributes
	}
	c.HTML(http.StatusOK, "accueil.tmpl", gin.H{
		"Theme": theme(c),
		"Page":  attrs,
	})
}

func (h *PagesHandler) About(c *gin.Context) {
	metrics.PageViewsTotal.WithLabelValues("/a-propos").Inc()

	attrs := content.DefaultAPropos()
	if page := h.Content.PageAPropos(c.Request.Context()); page != nil {
		attrs = page.Attributes
	}
	c.HTML(http.StatusOK, "a-propos.tmpl", gin.H{
		"Theme": theme(c),
		"Page":  attrs,
	})
}

func (h *PagesHandler) Services(c *gin.Context) {
	metrics.PageViewsTotal.WithLabelValues("/services").Inc()

	attrs := content.DefaultServices()
	if services := h.Content.Services(c.Request.Context()); len(services) > 0 {
		attrs = make([]content.ServiceAttributes, 0, len(services))
		for _, s := range services {
			attrs = append(attrs, s.Attributes)
		}
	}
	c.HTML(http.StatusOK, "services.tmpl", gin.H{
		"Theme":     theme(c),
		"Services":  attrs,
		"Offerings": catalog.Offerings(),
	})
}

type faqItem struct {
	faq.Entry
	Index int
	Open  bool
}

// FAQ renders the question list. ?q= filters by substring, ?open=N marks
// the entry open at position N of the filtered list. Opening an entry
// closes the previous one.
func (h *PagesHandler) FAQ(c *gin.Context) {
	metrics.PageViewsTotal.WithLabelValues("/faq").Inc()

	term := c.Query("q")
	entries := faq.Search(faq.Entries(), term)

	open := []int{}
	if raw := c.Query("open"); raw != "" {
		if index, err := strconv.Atoi(raw); err == nil {
			open = faq.Toggle(nil, index)
		}
	}

	items := make([]faqItem, 0, len(entries))
	for i, entry := range entries {
		items = append(items, faqItem{Entry: entry, Index: i, Open: faq.IsOpen(open, i)})
	}

	c.HTML(http.StatusOK, "faq.tmpl", gin.H{
		"Theme": theme(c),
		"Query": term,
		"Items": items,
	})
}

func (h *PagesHandler) Contact(c *gin.Context) {
	metrics.PageViewsTotal.WithLabelValues("/contact").Inc()

	attrs := content.DefaultContact()
	if page := h.Content.PageContact(c.Request.Context()); page != nil {
		attrs = page.Attributes
	}
	c.HTML(http.StatusOK, "contact.tmpl", gin.H{
		"Theme": theme(c),
		"Page":  attrs,
	})
}

func (h *PagesHandler) Communaute(c *gin.Context) {
	metrics.PageViewsTotal.WithLabelValues("/communaute").Inc()

	c.HTML(http.StatusOK, "communaute.tmpl", gin.H{
		"Theme": theme(c),
	})
}
