package retry

import (
	"fmt"
	"time"
)

// Policy configures bounded exponential-backoff retry
type Policy struct {
	// MaxAttempts is the total number of attempts, including the first
	MaxAttempts int
	// BaseDelay is the wait before the first retry; each further retry
	// doubles it
	BaseDelay time.Duration
	// MaxDelay caps the wait between attempts; 0 means no cap
	MaxDelay time.Duration
}

// Do runs fn up to p.MaxAttempts times. The first attempt runs
// immediately; before retry k the caller sleeps BaseDelay*2^(k-1),
// capped at MaxDelay when set. Returns nil as soon as fn succeeds.
// When every attempt fails, the last attempt's error is returned.
func (p Policy) Do(fn func() error) error {
	if p.MaxAttempts < 1 {
		return fmt.Errorf("retry: max attempts must be at least 1, got %d", p.MaxAttempts)
	}

	var lastErr error
	delay := p.BaseDelay

	for attempt := 1; attempt <= p.MaxAttempts; attempt++ {
		if attempt > 1 {
			wait := delay
			if p.MaxDelay > 0 && wait > p.MaxDelay {
				wait = p.MaxDelay
			}
			time.Sleep(wait)
			delay *= 2
		}

		lastErr = fn()
		if lastErr == nil {
			return nil
		}
	}

	return fmt.Errorf("all %d attempts failed: %w", p.MaxAttempts, lastErr)
}
