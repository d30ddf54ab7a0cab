package content

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/RoGasore/CALMNESS2/internal/site/metrics"
	"github.com/sirupsen/logrus"
)

// Client reads content documents from the content store. Fetch failures are
// never returned to callers: every accessor logs the error, bumps the
// fallback counter and returns a nil (or empty) result, leaving the caller
// to substitute defaults. Each call performs exactly one network read.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{},
	}
}

func (c *Client) PageAccueil(ctx context.Context) *PageAccueil {
	page, err := fetchAPI[*PageAccueil](ctx, c, "/page-accueil?populate=image")
	if err != nil {
		c.fallback("page-accueil", err)
		return nil
	}
	return page
}

func (c *Client) PageAPropos(ctx context.Context) *PageAPropos {
	page, err := fetchAPI[*PageAPropos](ctx, c, "/page-a-propos")
	if err != nil {
		c.fallback("page-a-propos", err)
		return nil
	}
	return page
}

func (c *Client) Services(ctx context.Context) []Service {
	services, err := fetchAPI[[]Service](ctx, c, "/services?sort=ordre:asc")
	if err != nil {
		c.fallback("service", err)
		return nil
	}
	return services
}

func (c *Client) PageContact(ctx context.Context) *PageContact {
	page, err := fetchAPI[*PageContact](ctx, c, "/page-contact")
	if err != nil {
		c.fallback("page-contact", err)
		return nil
	}
	return page
}

func (c *Client) fallback(contentType string, err error) {
	logrus.Errorf("Error fetching %s: %s", contentType, err.Error())
	metrics.ContentFallbacksTotal.WithLabelValues(contentType).Inc()
}

func fetchAPI[T any](ctx context.Context, c *Client, endpoint string) (T, error) {
	var zero T

	url := fmt.Sprintf("%s/api%s", c.baseURL, endpoint)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return zero, err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		return zero, err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return zero, fmt.Errorf("unexpected status %d", res.StatusCode)
	}

	var response Response[T]
	if err := json.NewDecoder(res.Body).Decode(&response); err != nil {
		return zero, fmt.Errorf("decoding response: %w", err)
	}
	return response.Data, nil
}
