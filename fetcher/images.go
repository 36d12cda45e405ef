package fetcher

import (
	"fmt"
	"net/url"

	"search-scraper/models"
	"search-scraper/parser"
	"search-scraper/renderer"
)

// ImageFetcher fetches image results from Bing Images
type ImageFetcher struct {
	renderer renderer.Renderer
}

// NewImageFetcher creates an ImageFetcher using the given renderer
func NewImageFetcher(r renderer.Renderer) *ImageFetcher {
	return &ImageFetcher{renderer: r}
}

// Name implements the Fetcher interface
func (f *ImageFetcher) Name() string {
	return "images"
}

// Fetch implements the Fetcher interface
func (f *ImageFetcher) Fetch(query string, opts models.Options) ([]models.Result, error) {
	q := url.Values{}
	q.Set("q", query)
	if opts.Region != "" {
		q.Set("mkt", opts.Region)
	}
	if opts.SafeSearch {
		q.Set("adlt", "strict")
	}
	searchURL := "https://www.bing.com/images/search?" + q.Encode()

	htmlContent, err := f.renderer.Render(searchURL)
	if err != nil {
		return nil, fmt.Errorf("images: failed to render results page: %w", err)
	}

	results, err := parser.ParseImageResults(htmlContent)
	if err != nil {
		return nil, fmt.Errorf("images: %w", err)
	}

	return applyLimit(results, opts.Limit), nil
}
