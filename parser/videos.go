package parser

import (
	"fmt"
	"strings"

	"search-scraper/models"

	"github.com/PuerkitoBio/goquery"
)

// ParseVideoResults extracts video results from a rendered YouTube search
// results page. YouTube only produces this markup after JavaScript runs,
// so the HTML must come from the browser renderer.
func ParseVideoResults(htmlContent string) ([]models.Result, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	var results []models.Result

	doc.Find("ytd-video-renderer").Each(func(i int, s *goquery.Selection) {
		titleLink := s.Find("a#video-title").First()
		title := cleanText(titleLink.AttrOr("title", ""))
		if title == "" {
			title = cleanText(titleLink.Text())
		}

		videoURL := absoluteURL("https://www.youtube.com", titleLink.AttrOr("href", ""))

		if title == "" && videoURL == "" {
			return
		}

		result := models.Result{
			Title:   title,
			URL:     videoURL,
			Snippet: cleanText(s.Find("yt-formatted-string.metadata-snippet-text").First().Text()),
		}

		if thumb := s.Find("ytd-thumbnail img").First().AttrOr("src", ""); thumb != "" {
			result.Thumbnail = thumb
		}

		meta := make(map[string]string)
		if channel := cleanText(s.Find("ytd-channel-name a, #channel-name a").First().Text()); channel != "" {
			meta["channel"] = channel
		}
		if duration := cleanText(s.Find("ytd-thumbnail-overlay-time-status-renderer span, span.ytd-thumbnail-overlay-time-status-renderer").First().Text()); duration != "" {
			meta["duration"] = duration
		}
		// Metadata line holds view count then upload age
		metaSpans := s.Find("#metadata-line span.inline-metadata-item, #metadata-line span.ytd-video-meta-block")
		if metaSpans.Length() > 0 {
			if views := cleanText(metaSpans.Eq(0).Text()); views != "" {
				meta["views"] = views
			}
		}
		if metaSpans.Length() > 1 {
			if published := cleanText(metaSpans.Eq(1).Text()); published != "" {
				meta["published"] = published
			}
		}
		if len(meta) > 0 {
			result.Meta = meta
		}

		results = append(results, result)
	})

	return results, nil
}
