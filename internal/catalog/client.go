package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/MiniPekkaaa/MiniApp/internal/domain"
	"github.com/MiniPekkaaa/MiniApp/internal/metrics"
	"golang.org/x/sync/singleflight"
)

// Client fetches the product list from the external catalog endpoint.
// Read-only reference data; no caching beyond collapsing concurrent fetches.
type Client struct {
	baseURL string
	http    *http.Client
	metrics *metrics.Metrics
	sfg     singleflight.Group // Prevents a fetch stampede
}

func NewClient(baseURL string, m *metrics.Metrics) *Client {
	return &Client{
		baseURL: baseURL,
		metrics: m,
		http: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (c *Client) Products(ctx context.Context) ([]domain.Product, error) {
	v, err, _ := c.sfg.Do("products", func() (interface{}, error) {
		// The fetch may serve several coalesced callers, so it must not die
		// with whichever one happened to start it. The http client's own
		// timeout still bounds it.
		return c.fetch(context.WithoutCancel(ctx))
	})
	if err != nil {
		return nil, err
	}

	return v.([]domain.Product), nil
}

func (c *Client) fetch(ctx context.Context) ([]domain.Product, error) {
	url := c.baseURL + "/products"

	if c.metrics != nil {
		c.metrics.CatalogFetches.Inc()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build catalog request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("catalog request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("catalog returned status %d", resp.StatusCode)
	}

	var products []domain.Product
	if err := json.NewDecoder(resp.Body).Decode(&products); err != nil {
		return nil, fmt.Errorf("failed to decode catalog response: %w", err)
	}

	return products, nil
}
