package fetcher

import (
	"fmt"
	"net/url"

	"search-scraper/models"
	"search-scraper/parser"
	"search-scraper/renderer"
)

// BookFetcher fetches books from the Open Library catalog. Open Library
// serves its result list server-side, so either renderer works here.
type BookFetcher struct {
	renderer renderer.Renderer
}

// NewBookFetcher creates a BookFetcher using the given renderer
func NewBookFetcher(r renderer.Renderer) *BookFetcher {
	return &BookFetcher{renderer: r}
}

// Name implements the Fetcher interface
func (f *BookFetcher) Name() string {
	return "books"
}

// Fetch implements the Fetcher interface
func (f *BookFetcher) Fetch(query string, opts models.Options) ([]models.Result, error) {
	q := url.Values{}
	q.Set("q", query)
	searchURL := "https://openlibrary.org/search?" + q.Encode()

	htmlContent, err := f.renderer.Render(searchURL)
	if err != nil {
		return nil, fmt.Errorf("books: failed to render results page: %w", err)
	}

	results, err := parser.ParseBookResults(htmlContent)
	if err != nil {
		return nil, fmt.Errorf("books: %w", err)
	}

	return applyLimit(results, opts.Limit), nil
}
