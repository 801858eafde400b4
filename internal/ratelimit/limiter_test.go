package ratelimit

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func TestAllowUpToLimit(t *testing.T) {
	clk := &fakeClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	l := New(5, 5*time.Minute, clk)

	for i := range 5 {
		assert.True(t, l.Allow("alice@example.com"), "call %d should be granted", i+1)
	}
	assert.False(t, l.Allow("alice@example.com"), "6th call should be denied")
}

func TestWindowSlides(t *testing.T) {
	clk := &fakeClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	l := New(5, 5*time.Minute, clk)

	for range 5 {
		assert.True(t, l.Allow("alice@example.com"))
	}
	assert.False(t, l.Allow("alice@example.com"))

	clk.Advance(5*time.Minute + time.Second)
	assert.True(t, l.Allow("alice@example.com"), "grants must age out after the window")
}

func TestPartialAgeOut(t *testing.T) {
	clk := &fakeClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	l := New(3, 5*time.Minute, clk)

	assert.True(t, l.Allow("alice@example.com"))
	clk.Advance(4 * time.Minute)
	assert.True(t, l.Allow("alice@example.com"))
	assert.True(t, l.Allow("alice@example.com"))
	assert.False(t, l.Allow("alice@example.com"))

	// First grant is now outside the window, the later two are not.
	clk.Advance(90 * time.Second)
	assert.True(t, l.Allow("alice@example.com"))
	assert.False(t, l.Allow("alice@example.com"))
}

func TestIdentitiesIndependent(t *testing.T) {
	clk := &fakeClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	l := New(1, 5*time.Minute, clk)

	assert.True(t, l.Allow("alice@example.com"))
	assert.False(t, l.Allow("alice@example.com"))
	assert.True(t, l.Allow("bob@example.com"))
}

func TestConcurrentChecksNeverExceedLimit(t *testing.T) {
	clk := &fakeClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	l := New(5, 5*time.Minute, clk)

	var wg sync.WaitGroup
	granted := make(chan struct{}, 100)

	for range 100 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if l.Allow("alice@example.com") {
				granted <- struct{}{}
			}
		}()
	}

	wg.Wait()
	close(granted)

	count := 0
	for range granted {
		count++
	}
	assert.Equal(t, 5, count)
}
