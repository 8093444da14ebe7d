package cache

import (
	"sync"
	"testing"
)

func TestGetOrCreateComputesOnce(t *testing.T) {
	c := New[int, string](0)
	calls := 0
	create := func() string {
		calls++
		return "v"
	}
	for range 3 {
		if got := c.GetOrCreate(1, create); got != "v" {
			t.Fatalf("GetOrCreate = %q, want v", got)
		}
	}
	if calls != 1 {
		t.Errorf("create called %d times, want 1", calls)
	}
	if v, ok := c.Get(1); !ok || v != "v" {
		t.Errorf("Get(1) = %q, %v", v, ok)
	}
	if _, ok := c.Get(2); ok {
		t.Error("Get(2) found a missing key")
	}
}

func TestEvictsLeastRecentlyUsed(t *testing.T) {
	c := New[int, int](4)
	for k := range 4 {
		c.GetOrCreate(k, func() int { return k })
	}
	// Touch 0 so that 1 is the oldest.
	c.Get(0)
	c.GetOrCreate(4, func() int { return 4 })

	if n := c.Len(); n != 3 {
		t.Fatalf("Len() = %d, want 3", n)
	}
	for _, k := range []int{1, 2} {
		if _, ok := c.Get(k); ok {
			t.Errorf("key %d survived eviction", k)
		}
	}
	for _, k := range []int{0, 4} {
		if _, ok := c.Get(k); !ok {
			t.Errorf("key %d was evicted", k)
		}
	}
}

func TestClear(t *testing.T) {
	c := New[string, int](0)
	c.GetOrCreate("a", func() int { return 1 })
	c.Clear()
	if c.Len() != 0 {
		t.Errorf("Len() after Clear = %d", c.Len())
	}
}

func TestConcurrentAccess(t *testing.T) {
	c := New[int, int](16)
	var wg sync.WaitGroup
	for g := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range 1000 {
				k := (i + g) % 32
				if v := c.GetOrCreate(k, func() int { return k * 2 }); v != k*2 {
					t.Errorf("GetOrCreate(%d) = %d", k, v)
					return
				}
			}
		}()
	}
	wg.Wait()
	if c.Len() > 16 {
		t.Errorf("Len() = %d, want at most 16", c.Len())
	}
}

func BenchmarkGetOrCreate(b *testing.B) {
	c := New[int, int](256)
	i := 0
	for b.Loop() {
		c.GetOrCreate(i%100, func() int { return i })
		i++
	}
}
