package renderer

import (
	"fmt"
	"time"

	"github.com/gocolly/colly/v2"
)

const defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// StaticRenderer fetches pages over plain HTTP using colly. It is suited
// to sources that serve useful server-side HTML and do not need a
// JavaScript engine.
type StaticRenderer struct {
	userAgent string
	delay     time.Duration
}

// NewStaticRenderer creates a StaticRenderer. delay is the minimum spacing
// between requests to the same domain.
func NewStaticRenderer(delay time.Duration) *StaticRenderer {
	return &StaticRenderer{
		userAgent: defaultUserAgent,
		delay:     delay,
	}
}

// Render implements the Renderer interface
func (s *StaticRenderer) Render(url string) (string, error) {
	// A fresh collector per call keeps response callbacks from
	// accumulating across requests
	c := colly.NewCollector(
		colly.UserAgent(s.userAgent),
	)

	if s.delay > 0 {
		c.Limit(&colly.LimitRule{
			DomainGlob:  "*",
			Parallelism: 1,
			Delay:       s.delay,
		})
	}

	var body string
	var fetchErr error

	c.OnResponse(func(r *colly.Response) {
		body = string(r.Body)
	})
	c.OnError(func(r *colly.Response, err error) {
		fetchErr = fmt.Errorf("request to %s failed: %w", r.Request.URL, err)
	})

	if err := c.Visit(url); err != nil {
		return "", fmt.Errorf("failed to visit %s: %w", url, err)
	}
	c.Wait()

	if fetchErr != nil {
		return "", fetchErr
	}
	if body == "" {
		return "", fmt.Errorf("no response body from %s", url)
	}

	return body, nil
}

// Close implements the Renderer interface; colly holds no persistent
// resources
func (s *StaticRenderer) Close() error {
	return nil
}
