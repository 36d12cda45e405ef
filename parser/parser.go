package parser

import (
	"net/url"
	"regexp"
	"strings"
)

// whitespaceRe collapses runs of whitespace, including newlines from
// pretty-printed markup
var whitespaceRe = regexp.MustCompile(`\s+`)

// cleanText trims and collapses whitespace in extracted text
func cleanText(s string) string {
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(s, " "))
}

// absoluteURL resolves href against base. Scheme-relative and relative
// hrefs are common in search result markup.
func absoluteURL(base, href string) string {
	if href == "" {
		return ""
	}
	if strings.HasPrefix(href, "//") {
		return "https:" + href
	}
	if strings.HasPrefix(href, "http://") || strings.HasPrefix(href, "https://") {
		return href
	}
	b, err := url.Parse(base)
	if err != nil {
		return href
	}
	h, err := url.Parse(href)
	if err != nil {
		return href
	}
	return b.ResolveReference(h).String()
}

// unwrapRedirect extracts the destination from a result-page redirect
// link of the form <path>?<param>=<encoded destination>. Returns the
// input unchanged when the parameter is absent.
func unwrapRedirect(link, param string) string {
	u, err := url.Parse(link)
	if err != nil {
		return link
	}
	// Query() already percent-decodes the destination
	dest := u.Query().Get(param)
	if dest == "" {
		return link
	}
	return dest
}
