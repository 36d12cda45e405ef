package search

import (
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"search-scraper/fetcher"
	"search-scraper/gate"
	"search-scraper/models"
	"search-scraper/retry"
)

// Searcher fans a query out across its configured sources under a shared
// concurrency gate. Per-source failures are contained: one source failing
// never removes or blocks the others.
type Searcher struct {
	fetchers []fetcher.Fetcher
	gate     *gate.Gate
	retry    retry.Policy
}

// New creates a Searcher. The gate and retry policy apply to every
// source; fetchers are queried in the given order.
func New(g *gate.Gate, policy retry.Policy, fetchers ...fetcher.Fetcher) *Searcher {
	return &Searcher{
		fetchers: fetchers,
		gate:     g,
		retry:    policy,
	}
}

// Sources returns the configured source names in fan-out order
func (s *Searcher) Sources() []string {
	names := make([]string, len(s.fetchers))
	for i, f := range s.fetchers {
		names[i] = f.Name()
	}
	return names
}

// QueryAllSources runs the query against every configured source
// concurrently and waits for all of them to finish. The returned
// AggregateResult has exactly one outcome per source; failed sources
// appear as outcomes with a non-empty Error. The call itself only fails
// for malformed input, never because sources failed.
func (s *Searcher) QueryAllSources(query string, opts models.Options) (*models.AggregateResult, error) {
	if strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf("query must not be empty")
	}
	if len(s.fetchers) == 0 {
		return nil, fmt.Errorf("no sources configured")
	}

	outcomes := make([]models.SourceOutcome, len(s.fetchers))
	var wg sync.WaitGroup

	for i, f := range s.fetchers {
		wg.Add(1)
		go func(i int, f fetcher.Fetcher) {
			defer wg.Done()
			outcomes[i] = s.querySource(f, query, opts)
		}(i, f)
	}

	wg.Wait()

	bySource := make(map[string]models.SourceOutcome, len(outcomes))
	for _, outcome := range outcomes {
		bySource[outcome.Source] = outcome
	}

	// One timestamp for the whole call, taken after every task settled
	return &models.AggregateResult{
		Query:     query,
		Timestamp: time.Now(),
		BySource:  bySource,
	}, nil
}

// QuerySource runs the query against a single named source through the
// same gate and retry chain. Unlike QueryAllSources it propagates the
// error when every attempt fails.
func (s *Searcher) QuerySource(name, query string, opts models.Options) (*models.SourceOutcome, error) {
	if strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf("query must not be empty")
	}

	for _, f := range s.fetchers {
		if f.Name() != name {
			continue
		}
		outcome := s.querySource(f, query, opts)
		if outcome.Failed() {
			return nil, fmt.Errorf("source %s: %s", name, outcome.Error)
		}
		return &outcome, nil
	}

	return nil, fmt.Errorf("unknown source: %s", name)
}

// querySource executes one source's fetch under the gate, with retry, and
// converts every failure mode into an outcome value. A panicking attempt
// counts as a failed attempt.
func (s *Searcher) querySource(f fetcher.Fetcher, query string, opts models.Options) models.SourceOutcome {
	var results []models.Result

	err := s.gate.Run(func() error {
		return s.retry.Do(func() (attemptErr error) {
			defer func() {
				if rec := recover(); rec != nil {
					attemptErr = fmt.Errorf("panic during fetch: %v", rec)
				}
			}()
			fetched, fetchErr := f.Fetch(query, opts)
			if fetchErr != nil {
				return fetchErr
			}
			results = fetched
			return nil
		})
	})
	if err != nil {
		log.Printf("Source %s failed for query %q: %v\n", f.Name(), query, err)
		return models.SourceOutcome{
			Source: f.Name(),
			Error:  err.Error(),
		}
	}

	return models.SourceOutcome{
		Source:    f.Name(),
		Query:     query,
		Results:   results,
		FetchedAt: time.Now(),
	}
}
