package parser

import (
	"fmt"
	"regexp"
	"strings"

	"search-scraper/models"

	"github.com/PuerkitoBio/goquery"
)

var firstPublishedRe = regexp.MustCompile(`[Ff]irst published in (\d{4})`)

// ParseBookResults extracts books from an Open Library search results page
func ParseBookResults(htmlContent string) ([]models.Result, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	var results []models.Result

	doc.Find("li.searchResultItem").Each(func(i int, s *goquery.Selection) {
		titleLink := s.Find("h3.booktitle a, div.resultTitle a").First()
		title := cleanText(titleLink.Text())
		bookURL := absoluteURL("https://openlibrary.org", titleLink.AttrOr("href", ""))

		if title == "" && bookURL == "" {
			return
		}

		result := models.Result{
			Title: title,
			URL:   bookURL,
		}

		if cover := s.Find("span.bookcover img, img.cover").First().AttrOr("src", ""); cover != "" {
			result.Thumbnail = absoluteURL("https://openlibrary.org", cover)
		}

		meta := make(map[string]string)
		if author := cleanText(s.Find("span.bookauthor a").First().Text()); author != "" {
			meta["author"] = author
		}
		details := cleanText(s.Find("span.resultDetails").Text())
		if m := firstPublishedRe.FindStringSubmatch(details); len(m) > 1 {
			meta["first_published"] = m[1]
		}
		if details != "" {
			result.Snippet = details
		}
		if len(meta) > 0 {
			result.Meta = meta
		}

		results = append(results, result)
	})

	return results, nil
}
