package gate

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestNewRejectsInvalidCapacity(t *testing.T) {
	tests := []struct {
		name     string
		capacity int
		wantErr  bool
	}{
		{"zero", 0, true},
		{"negative", -1, true},
		{"one", 1, false},
		{"many", 16, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := New(tt.capacity)
			if (err != nil) != tt.wantErr {
				t.Errorf("New(%d) error = %v, wantErr %v", tt.capacity, err, tt.wantErr)
			}
			if err == nil && g.Capacity() != tt.capacity {
				t.Errorf("Capacity() = %d, want %d", g.Capacity(), tt.capacity)
			}
		})
	}
}

func TestRunPassesErrorsThroughUnmodified(t *testing.T) {
	g, err := New(2)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	sentinel := errors.New("fetch blew up")
	if got := g.Run(func() error { return sentinel }); got != sentinel {
		t.Errorf("Run() error = %v, want the exact sentinel %v", got, sentinel)
	}

	if got := g.Run(func() error { return nil }); got != nil {
		t.Errorf("Run() error = %v, want nil", got)
	}
}

func TestRunBoundsConcurrency(t *testing.T) {
	const capacity = 3
	const tasks = 10

	g, err := New(capacity)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	var active, peak int32
	var wg sync.WaitGroup

	for i := 0; i < tasks; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			g.Run(func() error {
				current := atomic.AddInt32(&active, 1)
				for {
					observed := atomic.LoadInt32(&peak)
					if current <= observed || atomic.CompareAndSwapInt32(&peak, observed, current) {
						break
					}
				}
				time.Sleep(10 * time.Millisecond)
				atomic.AddInt32(&active, -1)
				return nil
			})
		}()
	}
	wg.Wait()

	if got := atomic.LoadInt32(&peak); got > capacity {
		t.Errorf("observed %d concurrently running operations, capacity is %d", got, capacity)
	}
	if got := atomic.LoadInt32(&active); got != 0 {
		t.Errorf("active count = %d after all tasks finished, want 0", got)
	}
}

func TestRunSerializesWithCapacityOne(t *testing.T) {
	g, err := New(1)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	const taskTime = 10 * time.Millisecond
	start := time.Now()

	var wg sync.WaitGroup
	outcomes := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			outcomes[i] = g.Run(func() error {
				time.Sleep(taskTime)
				return nil
			})
		}(i)
	}
	wg.Wait()

	if elapsed := time.Since(start); elapsed < 2*taskTime {
		t.Errorf("both tasks finished in %v, want at least %v (tasks must not overlap)", elapsed, 2*taskTime)
	}
	for i, err := range outcomes {
		if err != nil {
			t.Errorf("task %d error = %v, want nil", i, err)
		}
	}
}

func TestRunReleasesPermitOnPanic(t *testing.T) {
	g, err := New(1)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	func() {
		defer func() { recover() }()
		g.Run(func() error { panic("boom") })
	}()

	done := make(chan struct{})
	go func() {
		g.Run(func() error { return nil })
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("permit was not released after a panicking operation")
	}
}
