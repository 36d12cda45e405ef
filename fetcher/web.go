package fetcher

import (
	"fmt"
	"net/url"

	"search-scraper/models"
	"search-scraper/parser"
	"search-scraper/renderer"
)

// WebFetcher fetches general web results from DuckDuckGo's HTML endpoint
type WebFetcher struct {
	renderer renderer.Renderer
}

// NewWebFetcher creates a WebFetcher using the given renderer
func NewWebFetcher(r renderer.Renderer) *WebFetcher {
	return &WebFetcher{renderer: r}
}

// Name implements the Fetcher interface
func (f *WebFetcher) Name() string {
	return "web"
}

// Fetch implements the Fetcher interface
func (f *WebFetcher) Fetch(query string, opts models.Options) ([]models.Result, error) {
	q := url.Values{}
	q.Set("q", query)
	if opts.Region != "" {
		q.Set("kl", opts.Region)
	}
	if opts.SafeSearch {
		q.Set("kp", "1")
	}
	searchURL := "https://html.duckduckgo.com/html/?" + q.Encode()

	htmlContent, err := f.renderer.Render(searchURL)
	if err != nil {
		return nil, fmt.Errorf("web: failed to render results page: %w", err)
	}

	results, err := parser.ParseWebResults(htmlContent)
	if err != nil {
		return nil, fmt.Errorf("web: %w", err)
	}

	return applyLimit(results, opts.Limit), nil
}
