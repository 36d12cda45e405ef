package fetcher

import (
	"fmt"
	"net/url"

	"search-scraper/models"
	"search-scraper/parser"
	"search-scraper/renderer"
)

// NewsFetcher fetches articles from Bing News
type NewsFetcher struct {
	renderer renderer.Renderer
}

// NewNewsFetcher creates a NewsFetcher using the given renderer
func NewNewsFetcher(r renderer.Renderer) *NewsFetcher {
	return &NewsFetcher{renderer: r}
}

// Name implements the Fetcher interface
func (f *NewsFetcher) Name() string {
	return "news"
}

// Fetch implements the Fetcher interface
func (f *NewsFetcher) Fetch(query string, opts models.Options) ([]models.Result, error) {
	q := url.Values{}
	q.Set("q", query)
	if opts.Region != "" {
		q.Set("setmkt", opts.Region)
	}
	if opts.SafeSearch {
		q.Set("adlt", "strict")
	}
	searchURL := "https://www.bing.com/news/search?" + q.Encode()

	htmlContent, err := f.renderer.Render(searchURL)
	if err != nil {
		return nil, fmt.Errorf("news: failed to render results page: %w", err)
	}

	results, err := parser.ParseNewsResults(htmlContent)
	if err != nil {
		return nil, fmt.Errorf("news: %w", err)
	}

	return applyLimit(results, opts.Limit), nil
}
