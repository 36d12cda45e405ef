package renderer

// Renderer turns a URL into the HTML of the rendered page. Implementations
// own the underlying transport (headless browser, plain HTTP) and are
// injected into fetchers so tests can substitute a fake.
type Renderer interface {
	// Render loads the URL and returns the page HTML
	Render(url string) (string, error)

	// Close releases the renderer's resources
	Close() error
}
