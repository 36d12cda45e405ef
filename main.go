package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"sort"
	"strings"
	"time"

	"search-scraper/config"
	"search-scraper/fetcher"
	"search-scraper/gate"
	"search-scraper/models"
	"search-scraper/renderer"
	"search-scraper/retry"
	"search-scraper/search"
)

func main() {
	// Parse command line arguments
	query := flag.String("query", "", "Search query (required)")
	configPath := flag.String("config", "config.yaml", "Path to configuration file")
	sources := flag.String("sources", "all", "Comma-separated sources to query (web,images,videos,news,books) or 'all'")
	limit := flag.Int("limit", 0, "Maximum results per source (0 = use config value)")
	region := flag.String("region", "", "Region/market code, e.g. us-en")
	safeSearch := flag.Bool("safe", false, "Enable safe search where the source supports it")
	jsonOut := flag.Bool("json", false, "Print the full aggregate result as JSON")
	staticBooks := flag.Bool("static-books", true, "Fetch the book catalog over plain HTTP instead of the browser")
	flag.Parse()

	if strings.TrimSpace(*query) == "" {
		flag.Usage()
		log.Fatalf("Error: -query is required")
	}

	// Load configuration
	cfg := loadConfig(*configPath)
	if *limit > 0 {
		cfg.Limit = *limit
	}

	// Create the shared browser renderer (headless, reused by all sources)
	rod, err := renderer.NewRodRenderer(cfg.Browser.Headless, time.Duration(cfg.Browser.PageWaitMs)*time.Millisecond)
	if err != nil {
		log.Fatalf("Failed to start browser: %v\n", err)
	}
	defer func() {
		if err := rod.Close(); err != nil {
			log.Printf("Warning: failed to close browser: %v\n", err)
		}
	}()

	// Open Library works fine without JavaScript
	var bookRenderer renderer.Renderer = rod
	if *staticBooks {
		bookRenderer = renderer.NewStaticRenderer(0)
	}

	available := []fetcher.Fetcher{
		fetcher.NewWebFetcher(rod),
		fetcher.NewImageFetcher(rod),
		fetcher.NewVideoFetcher(rod),
		fetcher.NewNewsFetcher(rod),
		fetcher.NewBookFetcher(bookRenderer),
	}

	selected, err := selectFetchers(available, *sources)
	if err != nil {
		log.Fatalf("Error: %v\n", err)
	}

	g, err := gate.New(cfg.Concurrency)
	if err != nil {
		log.Fatalf("Error: %v\n", err)
	}
	policy := retry.Policy{
		MaxAttempts: cfg.Retry.MaxAttempts,
		BaseDelay:   time.Duration(cfg.Retry.BaseDelayMs) * time.Millisecond,
		MaxDelay:    time.Duration(cfg.Retry.MaxDelayMs) * time.Millisecond,
	}

	searcher := search.New(g, policy, selected...)

	opts := models.Options{
		Limit:      cfg.Limit,
		SafeSearch: *safeSearch,
		Region:     *region,
	}

	log.Printf("Querying %d sources for %q (concurrency: %d)\n", len(selected), *query, cfg.Concurrency)
	aggregate, err := searcher.QueryAllSources(*query, opts)
	if err != nil {
		log.Fatalf("Search failed: %v\n", err)
	}

	if *jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(aggregate); err != nil {
			log.Fatalf("Failed to encode result: %v\n", err)
		}
		return
	}

	formatAggregateConsole(aggregate)
	formatSummaryConsole(search.Summarize(aggregate))
}

// loadConfig loads configuration from file or returns defaults
func loadConfig(configPath string) *config.Config {
	if _, err := os.Stat(configPath); err == nil {
		cfg, err := config.LoadConfig(configPath)
		if err != nil {
			log.Printf("Warning: Failed to load config file: %v. Using defaults.\n", err)
			return config.DefaultConfig()
		}
		return cfg
	}
	log.Println("Config file not found. Using default configuration.")
	return config.DefaultConfig()
}

// selectFetchers picks fetchers by name from the comma-separated spec
func selectFetchers(available []fetcher.Fetcher, spec string) ([]fetcher.Fetcher, error) {
	spec = strings.TrimSpace(strings.ToLower(spec))
	if spec == "" || spec == "all" {
		return available, nil
	}

	byName := make(map[string]fetcher.Fetcher, len(available))
	for _, f := range available {
		byName[f.Name()] = f
	}

	var selected []fetcher.Fetcher
	for _, name := range strings.Split(spec, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		f, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("unknown source: %s", name)
		}
		selected = append(selected, f)
	}

	if len(selected) == 0 {
		return nil, fmt.Errorf("no sources selected from %q", spec)
	}
	return selected, nil
}

// formatAggregateConsole prints every source's outcome
func formatAggregateConsole(aggregate *models.AggregateResult) {
	fmt.Printf("Results for %q\n", aggregate.Query)
	fmt.Println("==================")

	for _, name := range sortedSourceNames(aggregate) {
		outcome := aggregate.BySource[name]
		if outcome.Failed() {
			fmt.Printf("\n[%s] FAILED: %s\n", name, outcome.Error)
			continue
		}

		fmt.Printf("\n[%s] %d results\n", name, len(outcome.Results))
		for i, result := range outcome.Results {
			fmt.Printf("\n%d. %s\n", i+1, result.Title)
			if result.URL != "" {
				fmt.Printf("   Link: %s\n", result.URL)
			}
			if result.Snippet != "" {
				fmt.Printf("   %s\n", result.Snippet)
			}
			for key, value := range result.Meta {
				fmt.Printf("   %s: %s\n", key, value)
			}
		}
	}
}

// formatSummaryConsole prints the condensed summary
func formatSummaryConsole(summary models.Summary) {
	fmt.Println("\n==================")
	fmt.Printf("Total results across sources: %d\n", summary.TotalResults)
	for _, preview := range summary.TopResults {
		fmt.Printf("  %s:\n", preview.Source)
		for _, result := range preview.Top {
			fmt.Printf("    - %s (%s)\n", result.Title, result.URL)
		}
	}
}

func sortedSourceNames(aggregate *models.AggregateResult) []string {
	names := make([]string, 0, len(aggregate.BySource))
	for name := range aggregate.BySource {
		names = append(names, name)
	}
	// Keep output stable across runs
	sort.Strings(names)
	return names
}
