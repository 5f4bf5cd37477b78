package mortgage

import (
	"context"
	"fmt"
	"time"

	xhttp "RateWatch/pkg/http"
)

// SchemaVersion is the rates API schema this client understands.
const SchemaVersion = 1

// Client fetches the current retail mortgage rate for one product from a
// JSON rates API with an explicit, versioned schema. When the API is not
// configured it falls back to scraping a rates webpage (legacy source).
type Client struct {
	apiURL  string
	product string
	scraper *Scraper
	client  *xhttp.Client
}

// Option configures the mortgage client.
type Option func(*Client)

// WithScraper attaches a legacy page-scrape fallback.
func WithScraper(s *Scraper) Option {
	return func(c *Client) { c.scraper = s }
}

// New creates a mortgage rate source.
func New(apiURL, product string, timeout time.Duration, opts ...Option) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	c := &Client{
		apiURL:  apiURL,
		product: product,
		client:  xhttp.NewClient(xhttp.WithTimeout(timeout)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) Name() string { return "mortgage" }

type ratesResponse struct {
	SchemaVersion int    `json:"schema_version"`
	AsOf          string `json:"as_of"`
	Rates         []struct {
		Product string  `json:"product"`
		RatePct float64 `json:"rate_pct"`
	} `json:"rates"`
}

// Fetch returns the current rate for the configured product, in percent.
func (c *Client) Fetch(ctx context.Context) (float64, error) {
	if c.apiURL == "" {
		if c.scraper == nil {
			return 0, fmt.Errorf("mortgage: no source configured")
		}
		return c.scraper.Fetch(ctx)
	}

	v, err := c.fetchAPI(ctx)
	if err == nil {
		return v, nil
	}
	if c.scraper != nil {
		if sv, serr := c.scraper.Fetch(ctx); serr == nil {
			return sv, nil
		}
	}
	return 0, err
}

func (c *Client) fetchAPI(ctx context.Context) (float64, error) {
	var out ratesResponse
	err := c.client.SendAndParse(ctx, &xhttp.RequestOptions{
		Method: xhttp.MethodGet,
		URL:    c.apiURL,
	}, &out)
	if err != nil {
		return 0, fmt.Errorf("rates api: %w", err)
	}

	if out.SchemaVersion != SchemaVersion {
		return 0, fmt.Errorf("rates api: unsupported schema version %d", out.SchemaVersion)
	}
	for _, r := range out.Rates {
		if r.Product == c.product {
			return r.RatePct, nil
		}
	}
	return 0, fmt.Errorf("rates api: product %q not found", c.product)
}
