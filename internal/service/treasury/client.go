package treasury

import (
	"context"
	"fmt"
	"net/url"
	"time"

	xhttp "RateWatch/pkg/http"
)

// Client fetches the most recent daily close of a benchmark-yield symbol
// from a Yahoo-style chart endpoint.
type Client struct {
	baseURL string
	symbol  string
	scale   float64
	client  *xhttp.Client
}

// New creates a treasury yield source. scale multiplies the raw close
// (some yield symbols quote in index points rather than percent).
func New(baseURL, symbol string, scale float64, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	if scale == 0 {
		scale = 1
	}
	return &Client{
		baseURL: baseURL,
		symbol:  symbol,
		scale:   scale,
		client:  xhttp.NewClient(xhttp.WithTimeout(timeout)),
	}
}

func (c *Client) Name() string { return "treasury" }

type chartResponse struct {
	Chart struct {
		Result []struct {
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Close []*float64 `json:"close"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error any `json:"error"`
	} `json:"chart"`
}

// Fetch returns the latest close for the configured symbol, in percent.
func (c *Client) Fetch(ctx context.Context) (float64, error) {
	var out chartResponse
	err := c.client.SendAndParse(ctx, &xhttp.RequestOptions{
		Method: xhttp.MethodGet,
		URL:    fmt.Sprintf("%s/v8/finance/chart/%s", c.baseURL, url.PathEscape(c.symbol)),
		QueryParams: map[string][]string{
			"range":    {"1d"},
			"interval": {"1d"},
		},
	}, &out)
	if err != nil {
		return 0, fmt.Errorf("chart %s: %w", c.symbol, err)
	}

	if out.Chart.Error != nil {
		return 0, fmt.Errorf("chart %s: source error: %v", c.symbol, out.Chart.Error)
	}
	if len(out.Chart.Result) == 0 || len(out.Chart.Result[0].Indicators.Quote) == 0 {
		return 0, fmt.Errorf("chart %s: empty result", c.symbol)
	}

	closes := out.Chart.Result[0].Indicators.Quote[0].Close
	for i := len(closes) - 1; i >= 0; i-- {
		if closes[i] != nil {
			return *closes[i] * c.scale, nil
		}
	}
	return 0, fmt.Errorf("chart %s: no close values", c.symbol)
}
