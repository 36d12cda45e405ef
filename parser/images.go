package parser

import (
	"encoding/json"
	"fmt"
	"strings"

	"search-scraper/models"

	"github.com/PuerkitoBio/goquery"
)

// imageMeta mirrors the JSON payload Bing puts in the m attribute of
// each image result anchor
type imageMeta struct {
	MediaURL string `json:"murl"` // Full-size image
	ThumbURL string `json:"turl"` // Thumbnail
	PageURL  string `json:"purl"` // Hosting page
	Title    string `json:"t"`
	Desc     string `json:"desc"`
}

// ParseImageResults extracts image results from a Bing Images results page
func ParseImageResults(htmlContent string) ([]models.Result, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	var results []models.Result

	doc.Find("a.iusc").Each(func(i int, s *goquery.Selection) {
		raw := s.AttrOr("m", "")
		if raw == "" {
			return
		}

		var meta imageMeta
		if err := json.Unmarshal([]byte(raw), &meta); err != nil {
			// Malformed metadata on one tile should not sink the page
			return
		}

		title := cleanText(meta.Title)
		if title == "" {
			title = cleanText(s.Find("img").First().AttrOr("alt", ""))
		}

		if title == "" && meta.MediaURL == "" {
			return
		}

		result := models.Result{
			Title:     title,
			URL:       meta.MediaURL,
			Snippet:   cleanText(meta.Desc),
			Thumbnail: meta.ThumbURL,
		}
		if meta.PageURL != "" {
			result.Meta = map[string]string{"page_url": meta.PageURL}
		}
		results = append(results, result)
	})

	// Fallback for markup variants without metadata anchors
	if len(results) == 0 {
		doc.Find("div.imgpt img, div.img_cont img").Each(func(i int, s *goquery.Selection) {
			src := s.AttrOr("src", s.AttrOr("data-src", ""))
			alt := cleanText(s.AttrOr("alt", ""))
			if src == "" || alt == "" {
				return
			}
			results = append(results, models.Result{
				Title:     alt,
				URL:       absoluteURL("https://www.bing.com", src),
				Thumbnail: absoluteURL("https://www.bing.com", src),
			})
		})
	}

	return results, nil
}
