package cache

import (
	"context"
	"fmt"
	"testing"
	"time"
)

func TestLRUEvictsLeastRecentlyUsed(t *testing.T) {
	ctx := context.Background()
	c := NewLRU(3, time.Hour)

	c.Set(ctx, "a", []byte("1"))
	c.Set(ctx, "b", []byte("2"))
	c.Set(ctx, "c", []byte("3"))

	// Touch "a" so "b" becomes the eviction candidate.
	if _, ok := c.Get(ctx, "a"); !ok {
		t.Fatal("expected a to be present")
	}

	c.Set(ctx, "d", []byte("4"))

	if _, ok := c.Get(ctx, "b"); ok {
		t.Fatal("b should have been evicted")
	}
	for _, k := range []string{"a", "c", "d"} {
		if _, ok := c.Get(ctx, k); !ok {
			t.Fatalf("%s should still be cached", k)
		}
	}
	if c.Len() != 3 {
		t.Fatalf("len = %d, want 3", c.Len())
	}
}

func TestLRUBoundedUnderLoad(t *testing.T) {
	ctx := context.Background()
	c := NewLRU(16, time.Hour)
	for i := 0; i < 1000; i++ {
		c.Set(ctx, fmt.Sprintf("k%d", i), []byte("v"))
	}
	if c.Len() != 16 {
		t.Fatalf("len = %d, want capacity 16", c.Len())
	}
}

func TestLRUExpiresByTTL(t *testing.T) {
	ctx := context.Background()
	c := NewLRU(8, time.Hour)

	base := time.Now()
	c.now = func() time.Time { return base }
	c.Set(ctx, "a", []byte("1"))

	c.now = func() time.Time { return base.Add(30 * time.Minute) }
	if _, ok := c.Get(ctx, "a"); !ok {
		t.Fatal("entry expired too early")
	}

	c.now = func() time.Time { return base.Add(2 * time.Hour) }
	if _, ok := c.Get(ctx, "a"); ok {
		t.Fatal("entry should have expired")
	}
	if c.Len() != 0 {
		t.Fatalf("expired entry not dropped, len = %d", c.Len())
	}
}

func TestKeyIsStableAndDistinct(t *testing.T) {
	k1 := Key("logo", "ACME", "#112233")
	k2 := Key("logo", "ACME", "#112233")
	k3 := Key("logo", "ACME", "#445566")
	if k1 != k2 {
		t.Fatal("same params should hash to the same key")
	}
	if k1 == k3 {
		t.Fatal("different params should hash differently")
	}
}
