package cache

import (
	"testing"
	"time"
)

// fakeClock is a manually advanced clock for deterministic expiry tests.
type fakeClock struct {
	now time.Time
}

func (f *fakeClock) Now() time.Time          { return f.now }
func (f *fakeClock) Advance(d time.Duration) { f.now = f.now.Add(d) }

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
}

func TestCacheGetPut(t *testing.T) {
	clock := newFakeClock()
	c := New[string](clock.Now)

	if _, ok := c.Get("missing"); ok {
		t.Error("Expected miss for unknown key")
	}

	c.Put("k", "v", time.Minute)
	got, ok := c.Get("k")
	if !ok {
		t.Fatal("Expected hit after Put")
	}
	if got != "v" {
		t.Errorf("Expected %q, got %q", "v", got)
	}
}

func TestCacheExpiry(t *testing.T) {
	clock := newFakeClock()
	c := New[int](clock.Now)

	c.Put("k", 42, time.Minute)

	clock.Advance(59 * time.Second)
	if _, ok := c.Get("k"); !ok {
		t.Error("Expected hit just before expiry")
	}

	clock.Advance(time.Second)
	if _, ok := c.Get("k"); ok {
		t.Error("Expected miss at expiry boundary")
	}

	// The expired entry is pruned on read.
	if c.Len() != 0 {
		t.Errorf("Expected 0 entries after expiry read, got %d", c.Len())
	}
}

func TestCacheOverwrite(t *testing.T) {
	clock := newFakeClock()
	c := New[int](clock.Now)

	c.Put("k", 1, time.Minute)
	c.Put("k", 2, time.Hour)

	clock.Advance(30 * time.Minute)
	got, ok := c.Get("k")
	if !ok {
		t.Fatal("Expected overwritten entry to honor the new TTL")
	}
	if got != 2 {
		t.Errorf("Expected 2, got %d", got)
	}
}

func TestCacheNonPositiveTTLRemoves(t *testing.T) {
	clock := newFakeClock()
	c := New[int](clock.Now)

	c.Put("k", 1, time.Minute)
	c.Put("k", 2, 0)

	if _, ok := c.Get("k"); ok {
		t.Error("Expected zero TTL to remove the key")
	}
}

func TestCacheDelete(t *testing.T) {
	c := New[int](newFakeClock().Now)

	c.Put("k", 1, time.Minute)
	c.Delete("k")

	if _, ok := c.Get("k"); ok {
		t.Error("Expected miss after Delete")
	}
}

func TestCacheDefaultClock(t *testing.T) {
	c := New[int](nil)

	c.Put("k", 7, time.Minute)
	if got, ok := c.Get("k"); !ok || got != 7 {
		t.Errorf("Expected hit with default clock, got %d (hit=%v)", got, ok)
	}
}
