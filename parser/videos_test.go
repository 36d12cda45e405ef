package parser

import "testing"

const videosFixture = `
<html><body>
<ytd-video-renderer>
  <ytd-thumbnail>
    <img src="https://i.ytimg.com/vi/abc123/hq720.jpg">
    <ytd-thumbnail-overlay-time-status-renderer><span>12:34</span></ytd-thumbnail-overlay-time-status-renderer>
  </ytd-thumbnail>
  <a id="video-title" title="Go Concurrency Patterns" href="/watch?v=abc123">
    Go Concurrency Patterns
  </a>
  <ytd-channel-name id="channel-name"><a href="/@golang">The Go Programming Language</a></ytd-channel-name>
  <div id="metadata-line">
    <span class="inline-metadata-item">1.2M views</span>
    <span class="inline-metadata-item">11 years ago</span>
  </div>
  <yt-formatted-string class="metadata-snippet-text">Rob Pike explains concurrency patterns in Go.</yt-formatted-string>
</ytd-video-renderer>
<ytd-video-renderer>
  <a id="video-title" href="/watch?v=def456">Learn Go in one video</a>
</ytd-video-renderer>
</body></html>`

func TestParseVideoResults(t *testing.T) {
	results, err := ParseVideoResults(videosFixture)
	if err != nil {
		t.Fatalf("ParseVideoResults() error = %v", err)
	}

	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}

	first := results[0]
	if first.Title != "Go Concurrency Patterns" {
		t.Errorf("title = %q", first.Title)
	}
	if first.URL != "https://www.youtube.com/watch?v=abc123" {
		t.Errorf("url = %q", first.URL)
	}
	if first.Snippet != "Rob Pike explains concurrency patterns in Go." {
		t.Errorf("snippet = %q", first.Snippet)
	}
	if first.Thumbnail != "https://i.ytimg.com/vi/abc123/hq720.jpg" {
		t.Errorf("thumbnail = %q", first.Thumbnail)
	}
	if first.Meta["channel"] != "The Go Programming Language" {
		t.Errorf("channel = %q", first.Meta["channel"])
	}
	if first.Meta["duration"] != "12:34" {
		t.Errorf("duration = %q", first.Meta["duration"])
	}
	if first.Meta["views"] != "1.2M views" {
		t.Errorf("views = %q", first.Meta["views"])
	}
	if first.Meta["published"] != "11 years ago" {
		t.Errorf("published = %q", first.Meta["published"])
	}

	// Title attribute missing, falls back to link text
	second := results[1]
	if second.Title != "Learn Go in one video" {
		t.Errorf("second title = %q", second.Title)
	}
	if second.URL != "https://www.youtube.com/watch?v=def456" {
		t.Errorf("second url = %q", second.URL)
	}
}
