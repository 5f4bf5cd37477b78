package mortgage

import (
	"context"
	"fmt"
	"strings"
	"time"

	xhttp "RateWatch/pkg/http"
	"RateWatch/pkg/util"

	"golang.org/x/net/html"
)

// Scraper reads a mortgage rate off a rates webpage by locating a span
// whose text equals the product label and taking the text of the next
// span. The selector is brittle and kept only as a fallback source.
type Scraper struct {
	pageURL string
	label   string
	client  *xhttp.Client
}

// NewScraper creates the legacy page-scrape source.
func NewScraper(pageURL, label, userAgent string, timeout time.Duration) *Scraper {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	if userAgent == "" {
		userAgent = "Mozilla/5.0"
	}
	return &Scraper{
		pageURL: pageURL,
		label:   label,
		client:  xhttp.NewClient(xhttp.WithTimeout(timeout), xhttp.WithUserAgent(userAgent)),
	}
}

// Fetch downloads the page and extracts the labelled rate, in percent.
func (s *Scraper) Fetch(ctx context.Context) (float64, error) {
	var body []byte
	err := s.client.SendAndParse(ctx, &xhttp.RequestOptions{
		Method: xhttp.MethodGet,
		URL:    s.pageURL,
	}, &body)
	if err != nil {
		return 0, fmt.Errorf("rates page: %w", err)
	}

	doc, err := html.Parse(strings.NewReader(string(body)))
	if err != nil {
		return 0, fmt.Errorf("rates page: parse html: %w", err)
	}

	text, ok := findLabelledSpan(doc, s.label)
	if !ok {
		return 0, fmt.Errorf("rates page: label %q not found", s.label)
	}

	v, err := util.ParsePercent(text)
	if err != nil {
		return 0, fmt.Errorf("rates page: parse rate %q: %w", text, err)
	}
	return v, nil
}

// findLabelledSpan walks the document for a span whose text equals label
// and returns the text of the next span in document order.
func findLabelledSpan(doc *html.Node, label string) (string, bool) {
	var spans []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "span" {
			spans = append(spans, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	for i, span := range spans {
		if strings.TrimSpace(nodeText(span)) != label {
			continue
		}
		// skip nested spans of the label span itself
		for j := i + 1; j < len(spans); j++ {
			if isAncestor(span, spans[j]) {
				continue
			}
			return strings.TrimSpace(nodeText(spans[j])), true
		}
	}
	return "", false
}

func nodeText(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}

func isAncestor(a, n *html.Node) bool {
	for p := n.Parent; p != nil; p = p.Parent {
		if p == a {
			return true
		}
	}
	return false
}
