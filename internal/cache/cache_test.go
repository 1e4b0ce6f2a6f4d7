package cache

import (
	"sync"
	"testing"
)

func TestCacheGetSet(t *testing.T) {
	c := New[int, string](0)
	c.Set(1, "one")
	c.Set(1, "uno")
	if got, ok := c.Get(1); !ok || got != "uno" {
		t.Errorf("Get(1) = %q, %v, want uno, true", got, ok)
	}
	if _, ok := c.Get(2); ok {
		t.Error("Get(2) ok = true, want false")
	}
	if c.Len() != 1 {
		t.Errorf("Len() = %d, want 1", c.Len())
	}
}

func TestCacheEvictsLeastRecentlyUsed(t *testing.T) {
	var evicted []int
	c := New[int, int](4, WithEvictFunc(func(k, _ int) { evicted = append(evicted, k) }))
	for i := 1; i <= 4; i++ {
		c.Set(i, i)
	}
	// Touch 1 so 2 and 3 become the oldest.
	c.Get(1)
	c.Set(5, 5)

	// 5 entries > 4 evicts down to 3.
	if c.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", c.Len())
	}
	if len(evicted) != 2 || evicted[0] != 2 || evicted[1] != 3 {
		t.Errorf("evicted = %v, want [2 3]", evicted)
	}
	for _, k := range []int{1, 4, 5} {
		if _, ok := c.Get(k); !ok {
			t.Errorf("Get(%d) missing after eviction", k)
		}
	}
	if got := c.Stats().Evictions; got != 2 {
		t.Errorf("Stats().Evictions = %d, want 2", got)
	}
}

func TestCacheGetOrCreate(t *testing.T) {
	c := New[int, int](0)
	calls := 0
	create := func() int { calls++; return 42 }
	for i := 0; i < 3; i++ {
		if got := c.GetOrCreate(7, create); got != 42 {
			t.Errorf("GetOrCreate() = %d, want 42", got)
		}
	}
	if calls != 1 {
		t.Errorf("create called %d times, want 1", calls)
	}
	s := c.Stats()
	if s.Hits != 2 || s.Misses != 1 {
		t.Errorf("Stats() = %+v, want 2 hits 1 miss", s)
	}
	if r := s.HitRate(); r < 0.66 || r > 0.67 {
		t.Errorf("HitRate() = %v, want 2/3", r)
	}
}

func TestCacheDeleteClear(t *testing.T) {
	closed := 0
	c := New[string, int](0, WithEvictFunc(func(string, int) { closed++ }))
	c.Set("a", 1)
	c.Set("b", 2)
	c.Set("c", 3)
	if !c.Delete("b") || c.Delete("b") {
		t.Error("Delete() should succeed once")
	}
	c.Clear()
	if c.Len() != 0 {
		t.Errorf("Len() after Clear = %d, want 0", c.Len())
	}
	if closed != 3 {
		t.Errorf("evict callback ran %d times, want 3", closed)
	}
}

func TestCacheConcurrent(t *testing.T) {
	c := New[int, int](16)
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				c.GetOrCreate((g*200+i)%40, func() int { return i })
				c.Get(i % 40)
			}
		}(g)
	}
	wg.Wait()
	if c.Len() > 16 {
		t.Errorf("Len() = %d, exceeds soft limit", c.Len())
	}
}
