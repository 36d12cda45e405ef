package gate

import "fmt"

// Gate limits how many operations may run at the same time. It holds a
// fixed pool of permits; Run blocks until a permit is free, executes the
// operation, and returns the permit when the operation finishes for any
// reason. Goroutines blocked on a full permit channel are admitted in the
// order they arrived.
type Gate struct {
	permits chan struct{}
}

// New creates a gate admitting at most capacity concurrent operations
func New(capacity int) (*Gate, error) {
	if capacity < 1 {
		return nil, fmt.Errorf("gate capacity must be at least 1, got %d", capacity)
	}
	return &Gate{
		permits: make(chan struct{}, capacity),
	}, nil
}

// Capacity returns the configured permit count
func (g *Gate) Capacity() int {
	return cap(g.permits)
}

// Run blocks until a permit is available, executes fn, and releases the
// permit when fn returns or panics. fn's error is returned unmodified.
func (g *Gate) Run(fn func() error) error {
	g.permits <- struct{}{}
	defer func() {
		<-g.permits
	}()
	return fn()
}
