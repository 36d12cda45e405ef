package fetcher

import (
	"fmt"
	"net/url"

	"search-scraper/models"
	"search-scraper/parser"
	"search-scraper/renderer"
)

// VideoFetcher fetches video results from YouTube search. YouTube renders
// its result list client-side, so this source needs the browser renderer.
type VideoFetcher struct {
	renderer renderer.Renderer
}

// NewVideoFetcher creates a VideoFetcher using the given renderer
func NewVideoFetcher(r renderer.Renderer) *VideoFetcher {
	return &VideoFetcher{renderer: r}
}

// Name implements the Fetcher interface
func (f *VideoFetcher) Name() string {
	return "videos"
}

// Fetch implements the Fetcher interface
func (f *VideoFetcher) Fetch(query string, opts models.Options) ([]models.Result, error) {
	q := url.Values{}
	q.Set("search_query", query)
	searchURL := "https://www.youtube.com/results?" + q.Encode()

	htmlContent, err := f.renderer.Render(searchURL)
	if err != nil {
		return nil, fmt.Errorf("videos: failed to render results page: %w", err)
	}

	results, err := parser.ParseVideoResults(htmlContent)
	if err != nil {
		return nil, fmt.Errorf("videos: %w", err)
	}

	return applyLimit(results, opts.Limit), nil
}
