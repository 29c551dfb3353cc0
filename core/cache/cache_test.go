package cache

import (
	"fmt"
	"slices"
	"sync"
	"testing"
)

func TestLRUCache_BasicOperations(t *testing.T) {
	cache := NewLRUCache[string, int](Config{MaxSize: 3})

	cache.Put("Gen 1:1", 1001001)
	cache.Put("Exod 20:3", 2020003)
	cache.Put("Ps 23:1", 19023001)

	if v, ok := cache.Get("Gen 1:1"); !ok || v != 1001001 {
		t.Errorf("Get(Gen 1:1) = %d, %v; want 1001001, true", v, ok)
	}
	if v, ok := cache.Get("Exod 20:3"); !ok || v != 2020003 {
		t.Errorf("Get(Exod 20:3) = %d, %v; want 2020003, true", v, ok)
	}
	if v, ok := cache.Get("Ps 23:1"); !ok || v != 19023001 {
		t.Errorf("Get(Ps 23:1) = %d, %v; want 19023001, true", v, ok)
	}

	if _, ok := cache.Get("John 3:16"); ok {
		t.Error("Get(John 3:16) should return false")
	}

	if n := cache.Len(); n != 3 {
		t.Errorf("Len() = %d; want 3", n)
	}
}

func TestLRUCache_Eviction(t *testing.T) {
	cache := NewLRUCache[string, int](Config{MaxSize: 2})

	cache.Put("a", 1)
	cache.Put("b", 2)
	cache.Put("c", 3) // evicts "a"

	if _, ok := cache.Get("a"); ok {
		t.Error("Get(a) should return false after eviction")
	}
	if v, ok := cache.Get("b"); !ok || v != 2 {
		t.Errorf("Get(b) = %d, %v; want 2, true", v, ok)
	}
	if v, ok := cache.Get("c"); !ok || v != 3 {
		t.Errorf("Get(c) = %d, %v; want 3, true", v, ok)
	}

	cache.Get("b")    // Move "b" to front
	cache.Put("d", 4) // evicts "c"

	if _, ok := cache.Get("c"); ok {
		t.Error("Get(c) should return false after eviction")
	}
	if v, ok := cache.Get("b"); !ok || v != 2 {
		t.Errorf("Get(b) = %d, %v; want 2, true", v, ok)
	}
	if v, ok := cache.Get("d"); !ok || v != 4 {
		t.Errorf("Get(d) = %d, %v; want 4, true", v, ok)
	}
}

func TestLRUCache_Update(t *testing.T) {
	cache := NewLRUCache[string, int](Config{MaxSize: 2})

	cache.Put("a", 1)
	cache.Put("a", 2)

	if v, ok := cache.Get("a"); !ok || v != 2 {
		t.Errorf("Get(a) = %d, %v; want 2, true", v, ok)
	}
	if n := cache.Len(); n != 1 {
		t.Errorf("Len() = %d; want 1", n)
	}
}

func TestLRUCache_RemoveAndClear(t *testing.T) {
	cache := NewLRUCache[string, int](Config{MaxSize: 3})

	cache.Put("a", 1)
	cache.Put("b", 2)
	cache.Put("c", 3)

	cache.Remove("b")
	cache.Remove("missing")

	if _, ok := cache.Get("b"); ok {
		t.Error("Get(b) should return false after Remove")
	}
	if n := cache.Len(); n != 2 {
		t.Errorf("Len() = %d; want 2", n)
	}

	cache.Clear()
	if n := cache.Len(); n != 0 {
		t.Errorf("Len() after Clear = %d; want 0", n)
	}
	if _, ok := cache.Get("a"); ok {
		t.Error("Get(a) should return false after Clear")
	}
}

func TestLRUCache_Stats(t *testing.T) {
	cache := NewLRUCache[string, int](Config{MaxSize: 2})

	cache.Put("a", 1)
	cache.Put("b", 2)
	cache.Get("a")
	cache.Get("a")
	cache.Get("x")
	cache.Put("c", 3)

	s := cache.Stats()
	if s.Hits != 2 {
		t.Errorf("Hits = %d; want 2", s.Hits)
	}
	if s.Misses != 1 {
		t.Errorf("Misses = %d; want 1", s.Misses)
	}
	if s.Evictions != 1 {
		t.Errorf("Evictions = %d; want 1", s.Evictions)
	}
	if s.Size != 2 || s.MaxSize != 2 {
		t.Errorf("Size, MaxSize = %d, %d; want 2, 2", s.Size, s.MaxSize)
	}
	if got := s.HitRate(); got < 0.66 || got > 0.67 {
		t.Errorf("HitRate() = %v; want 2/3", got)
	}
	if got := (Stats{}).HitRate(); got != 0 {
		t.Errorf("empty HitRate() = %v; want 0", got)
	}
}

func TestLRUCache_OnEvict(t *testing.T) {
	var evictedKey string
	var evictedValue int

	cache := NewLRUCache[string, int](Config{
		MaxSize: 1,
		OnEvict: func(key, value any) {
			evictedKey = key.(string)
			evictedValue = value.(int)
		},
	})

	cache.Put("a", 1)
	cache.Put("b", 2)

	if evictedKey != "a" {
		t.Errorf("evictedKey = %q; want a", evictedKey)
	}
	if evictedValue != 1 {
		t.Errorf("evictedValue = %d; want 1", evictedValue)
	}
}

func TestLRUCache_Concurrency(t *testing.T) {
	config := Config{MaxSize: 100}
	cache := NewLRUCache[int, int](config)

	var wg sync.WaitGroup
	numGoroutines := 10
	numOperations := 100

	for i := 0; i < numGoroutines; i++ {
		wg.Add(2)
		go func(id int) {
			defer wg.Done()
			for j := 0; j < numOperations; j++ {
				key := id*numOperations + j
				cache.Put(key, key)
			}
		}(i)
		go func(id int) {
			defer wg.Done()
			for j := 0; j < numOperations; j++ {
				cache.Get(id*numOperations + j)
			}
		}(i)
	}

	wg.Wait()

	if n := cache.Len(); n > config.MaxSize {
		t.Errorf("Len() = %d; want <= %d", n, config.MaxSize)
	}
}

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	if config.MaxSize != 1024 {
		t.Errorf("DefaultConfig.MaxSize = %d; want 1024", config.MaxSize)
	}
	if config.OnEvict != nil {
		t.Error("DefaultConfig.OnEvict should be nil")
	}
}

func TestLRUCache_UnlimitedSize(t *testing.T) {
	cache := NewLRUCache[string, int](Config{MaxSize: 0})

	for i := 0; i < 1000; i++ {
		cache.Put(fmt.Sprintf("Ps %d", i), i)
	}

	if n := cache.Len(); n != 1000 {
		t.Errorf("Len() = %d; want 1000", n)
	}
}

func TestNewLRUCache_NegativeMaxSize(t *testing.T) {
	cache := NewLRUCache[string, int](Config{MaxSize: -5})
	cache.Put("a", 1)
	cache.Put("b", 2)

	if s := cache.Stats(); s.MaxSize != 0 || s.Size != 2 {
		t.Errorf("Stats() = %+v; want unlimited with 2 entries", s)
	}
}

func TestCloningCache_IsolatesValues(t *testing.T) {
	cache := NewCloningCache[string, []int](Config{MaxSize: 4}, cloneIDs)

	in := []int{1001001, 1001002}
	cache.Put("Gen 1:1-2", in)
	in[0] = 0

	out, ok := cache.Get("Gen 1:1-2")
	if !ok {
		t.Fatal("Get() should return true")
	}
	if out[0] != 1001001 {
		t.Errorf("Get()[0] = %d after caller mutated input; want 1001001", out[0])
	}

	out[1] = 0
	again, _ := cache.Get("Gen 1:1-2")
	if again[1] != 1001002 {
		t.Errorf("Get()[1] = %d after caller mutated output; want 1001002", again[1])
	}
}

func TestCloningCache_Delegates(t *testing.T) {
	cache := NewCloningCache[string, []int](Config{MaxSize: 1}, cloneIDs)

	if _, ok := cache.Get("missing"); ok {
		t.Error("Get(missing) should return false")
	}
	cache.Put("a", []int{1})
	cache.Put("b", []int{2})
	if cache.Len() != 1 {
		t.Errorf("Len() = %d; want 1", cache.Len())
	}
	cache.Remove("b")
	cache.Put("c", []int{3})
	cache.Clear()
	if cache.Len() != 0 {
		t.Errorf("Len() after Clear = %d; want 0", cache.Len())
	}
	s := cache.Stats()
	if s.Misses != 1 || s.Evictions != 1 {
		t.Errorf("Stats() = %+v; want 1 miss, 1 eviction", s)
	}
}

func cloneIDs(ids []int) []int { return slices.Clone(ids) }

func BenchmarkLRUCache_Put(b *testing.B) {
	cache := NewLRUCache[int, int](Config{MaxSize: 100})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		cache.Put(i, i)
	}
}

func BenchmarkLRUCache_Get(b *testing.B) {
	cache := NewLRUCache[int, int](Config{MaxSize: 100})
	for i := 0; i < 100; i++ {
		cache.Put(i, i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		cache.Get(i % 100)
	}
}
