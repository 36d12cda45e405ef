package parser

import (
	"fmt"
	"strings"

	"search-scraper/models"

	"github.com/PuerkitoBio/goquery"
)

// ParseNewsResults extracts articles from a Bing News results page
func ParseNewsResults(htmlContent string) ([]models.Result, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	var results []models.Result

	doc.Find("div.news-card, div.newsitem").Each(func(i int, s *goquery.Selection) {
		// Bing mirrors title/url in data attributes on the card itself
		title := cleanText(s.AttrOr("data-title", ""))
		articleURL := s.AttrOr("data-url", "")
		if title == "" {
			title = cleanText(s.Find("a.title").First().Text())
		}
		if articleURL == "" {
			articleURL = s.Find("a.title").First().AttrOr("href", "")
		}
		articleURL = absoluteURL("https://www.bing.com", articleURL)

		if title == "" && articleURL == "" {
			return
		}

		result := models.Result{
			Title:   title,
			URL:     articleURL,
			Snippet: cleanText(s.Find("div.snippet").First().AttrOr("title", "")),
		}
		if result.Snippet == "" {
			result.Snippet = cleanText(s.Find("div.snippet").First().Text())
		}

		if thumb := s.Find("img.rms_img").First().AttrOr("src", ""); thumb != "" {
			result.Thumbnail = absoluteURL("https://www.bing.com", thumb)
		}

		meta := make(map[string]string)
		if source := cleanText(s.AttrOr("data-author", "")); source != "" {
			meta["source"] = source
		} else if source := cleanText(s.Find("div.source a").First().Text()); source != "" {
			meta["source"] = source
		}
		if published := cleanText(s.Find("span[aria-label]").First().AttrOr("aria-label", "")); published != "" {
			meta["published"] = published
		}
		if len(meta) > 0 {
			result.Meta = meta
		}

		results = append(results, result)
	})

	return results, nil
}
