// v0
// internal/cache/cache_test.go
package cache

import (
	"testing"
	"time"
)

type countingObserver struct {
	hits, misses int
}

func (c *countingObserver) CacheHit()  { c.hits++ }
func (c *countingObserver) CacheMiss() { c.misses++ }

func TestCacheHitAndExpiry(t *testing.T) {
	obs := &countingObserver{}
	c := New[string](50*time.Millisecond, obs)

	if _, ok := c.Get("k"); ok {
		t.Fatal("expected miss on empty cache")
	}
	c.Set("k", "v")
	v, ok := c.Get("k")
	if !ok || v != "v" {
		t.Fatalf("expected hit with value v, got %q ok=%v", v, ok)
	}

	time.Sleep(60 * time.Millisecond)
	if _, ok := c.Get("k"); ok {
		t.Fatal("expected miss after TTL expiry")
	}

	if obs.hits != 1 || obs.misses != 2 {
		t.Fatalf("observer mismatch: hits=%d misses=%d", obs.hits, obs.misses)
	}
}

func TestCacheNilObserver(t *testing.T) {
	c := New[int](time.Minute, nil)
	c.Set("k", 7)
	if v, ok := c.Get("k"); !ok || v != 7 {
		t.Fatalf("expected 7, got %d ok=%v", v, ok)
	}
}
