package fetcher

import "search-scraper/models"

// Fetcher interface defines the contract for per-source fetching
// implementations. A Fetcher turns a query into normalized results or
// fails with an error; it never signals failure with a silent empty list.
type Fetcher interface {
	// Name returns the source name ("web", "images", ...)
	Name() string

	// Fetch retrieves results for the query from this source
	Fetch(query string, opts models.Options) ([]models.Result, error)
}

// applyLimit truncates results to the per-call limit; 0 means unlimited
func applyLimit(results []models.Result, limit int) []models.Result {
	if limit > 0 && len(results) > limit {
		return results[:limit]
	}
	return results
}
