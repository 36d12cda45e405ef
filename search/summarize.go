package search

import (
	"sort"

	"search-scraper/models"
)

// topN is how many leading results each source contributes to a summary
const topN = 3

// Summarize reduces an AggregateResult to counts and per-source previews.
// Failed sources contribute nothing and are omitted from the previews.
// Sources are listed in name order so output is deterministic.
func Summarize(agg *models.AggregateResult) models.Summary {
	summary := models.Summary{Query: agg.Query}

	names := make([]string, 0, len(agg.BySource))
	for name := range agg.BySource {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		outcome := agg.BySource[name]
		if outcome.Failed() {
			continue
		}

		summary.TotalResults += len(outcome.Results)

		top := outcome.Results
		if len(top) > topN {
			top = top[:topN]
		}
		preview := make([]models.Result, len(top))
		for i, r := range top {
			preview[i] = models.Result{Title: r.Title, URL: r.URL}
		}
		summary.TopResults = append(summary.TopResults, models.SourcePreview{
			Source: name,
			Top:    preview,
		})
	}

	return summary
}
