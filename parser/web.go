package parser

import (
	"fmt"
	"strings"

	"search-scraper/models"

	"github.com/PuerkitoBio/goquery"
)

// ParseWebResults extracts web search results from a DuckDuckGo HTML
// results page
func ParseWebResults(htmlContent string) ([]models.Result, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	var results []models.Result

	doc.Find("div.result, div.results_links, div.web-result").Each(func(i int, s *goquery.Selection) {
		// Skip sponsored entries
		if s.HasClass("result--ad") || s.Find(".badge--ad").Length() > 0 {
			return
		}

		link := s.Find("a.result__a, h2.result__title a").First()
		title := cleanText(link.Text())

		href := link.AttrOr("href", "")
		// DuckDuckGo wraps destinations in a /l/?uddg= redirect
		resultURL := unwrapRedirect(absoluteURL("https://duckduckgo.com", href), "uddg")

		snippet := cleanText(s.Find("a.result__snippet, div.result__snippet").First().Text())
		domain := cleanText(s.Find("span.result__url, a.result__url").First().Text())

		if title == "" && resultURL == "" {
			return
		}

		result := models.Result{
			Title:   title,
			URL:     resultURL,
			Snippet: snippet,
		}
		if domain != "" {
			result.Meta = map[string]string{"domain": domain}
		}
		results = append(results, result)
	})

	return results, nil
}
