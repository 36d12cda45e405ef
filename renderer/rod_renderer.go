package renderer

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
)

// RodRenderer renders pages through a headless Chrome instance controlled
// by rod. One browser is shared by all Render calls; each call gets its
// own tab.
type RodRenderer struct {
	browser  *rod.Browser
	pageWait time.Duration
}

// NewRodRenderer launches a headless browser and connects to it.
// pageWait is the extra settle time given to JavaScript after load.
func NewRodRenderer(headless bool, pageWait time.Duration) (*RodRenderer, error) {
	l := launcher.New().
		Headless(headless).
		Set("disable-blink-features", "AutomationControlled").
		NoSandbox(true).
		Leakless(false).
		Set("disable-dev-shm-usage").
		Set("disable-gpu").
		Set("no-first-run").
		Set("no-default-browser-check").
		Set("disable-extensions").
		Set("disable-background-networking").
		Set("disable-background-timer-throttling").
		Set("disable-renderer-backgrounding").
		Set("disable-breakpad").
		Set("disable-default-apps").
		Set("disable-hang-monitor").
		Set("disable-popup-blocking").
		Set("disable-sync").
		Set("mute-audio").
		Set("no-zygote")

	// Prefer a system Chrome/Chromium over downloading one
	chromePaths := []string{
		"/usr/bin/google-chrome",
		"/usr/bin/google-chrome-stable",
		"/usr/bin/chromium",
		"/usr/bin/chromium-browser",
		"/snap/bin/chromium",
	}
	for _, path := range chromePaths {
		if _, err := os.Stat(path); err == nil {
			l = l.Bin(path)
			break
		}
	}

	controlURL, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("failed to launch browser: %w", err)
	}

	browser := rod.New().ControlURL(controlURL)
	if err := browser.Connect(); err != nil {
		return nil, fmt.Errorf("failed to connect to browser: %w", err)
	}

	return &RodRenderer{
		browser:  browser,
		pageWait: pageWait,
	}, nil
}

// Close closes the browser
func (r *RodRenderer) Close() error {
	if r.browser != nil {
		return r.browser.Close()
	}
	return nil
}

// Render implements the Renderer interface
func (r *RodRenderer) Render(url string) (string, error) {
	page, err := r.newPage()
	if err != nil {
		return "", err
	}
	defer page.Close()

	if err := page.Navigate(url); err != nil {
		return "", fmt.Errorf("failed to navigate to %s: %w", url, err)
	}

	page.WaitLoad()
	if r.pageWait > 0 {
		time.Sleep(r.pageWait) // Give JavaScript time to render
	}

	if err := page.Timeout(10 * time.Second).WaitStable(500 * time.Millisecond); err != nil {
		log.Printf("Warning: page did not stabilize within timeout, continuing anyway: %v\n", err)
	}

	html, err := page.HTML()
	if err != nil {
		return "", fmt.Errorf("failed to get HTML: %w", err)
	}

	return html, nil
}

// newPage creates a tab, containing the panic MustPage raises when the
// browser has gone away
func (r *RodRenderer) newPage() (page *rod.Page, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("panic while creating page: %v", rec)
		}
	}()
	page = r.browser.MustPage()
	if page == nil {
		err = fmt.Errorf("failed to create page")
	}
	return page, err
}
