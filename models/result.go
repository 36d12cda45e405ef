package models

import "time"

// Result represents a single normalized search result from any source
type Result struct {
	Title     string            `json:"title"`
	URL       string            `json:"url"`
	Snippet   string            `json:"snippet,omitempty"`
	Thumbnail string            `json:"thumbnail,omitempty"`
	Meta      map[string]string `json:"meta,omitempty"`
}

// Options carries per-call query options shared by all sources
type Options struct {
	Limit      int    // Maximum results to return (0 = no limit)
	SafeSearch bool   // Enable the source's safe-search mode where supported
	Region     string // Region/market code (e.g. "us-en"), source-specific
}

// SourceOutcome is the terminal state of one source within a fan-out call.
// Error is empty on success; a non-empty Error means the source failed and
// Results/FetchedAt are zero.
type SourceOutcome struct {
	Source    string    `json:"source"`
	Query     string    `json:"query,omitempty"`
	Results   []Result  `json:"results,omitempty"`
	FetchedAt time.Time `json:"fetched_at,omitempty"`
	Error     string    `json:"error,omitempty"`
}

// Failed reports whether this outcome records a failure
func (o SourceOutcome) Failed() bool {
	return o.Error != ""
}

// AggregateResult is the outcome of querying all configured sources.
// BySource always contains exactly one entry per requested source,
// regardless of how many of them failed.
type AggregateResult struct {
	Query     string                   `json:"query"`
	Timestamp time.Time                `json:"timestamp"`
	BySource  map[string]SourceOutcome `json:"by_source"`
}

// SourcePreview holds the leading results of one successful source
type SourcePreview struct {
	Source string   `json:"source"`
	Top    []Result `json:"top"`
}

// Summary is the condensed view of an AggregateResult
type Summary struct {
	Query        string          `json:"query"`
	TotalResults int             `json:"total_results"`
	TopResults   []SourcePreview `json:"top_results"`
}
