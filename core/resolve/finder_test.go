package resolve

import (
	"sync"
	"testing"

	"github.com/FocuswithJustin/scripref/core/cache"
	"github.com/FocuswithJustin/scripref/core/canon"
	"github.com/FocuswithJustin/scripref/core/errors"
	"github.com/FocuswithJustin/scripref/core/refmatch"
)

func TestFinderMemoizes(t *testing.T) {
	f := NewFinder(WithCacheSize(8))

	first, err := f.Find("Psalm 130:4,8")
	if err != nil {
		t.Fatalf("Find() error = %v", err)
	}
	first[0].Start = 0

	second, err := f.Find("Psalm 130:4,8")
	if err != nil {
		t.Fatalf("Find() error = %v", err)
	}
	if second[0].Start != 19130004 {
		t.Errorf("cached Start = %d after caller mutation, want 19130004", second[0].Start)
	}

	s := f.Stats()
	if s.Hits != 1 || s.Misses != 1 || s.Size != 1 {
		t.Errorf("Stats() = %+v, want 1 hit, 1 miss, size 1", s)
	}
}

func TestFinderMatchesUncachedResults(t *testing.T) {
	f := NewFinder()
	text := "Matthew 1:18 - 2:18, Luke 3: 5-7"
	cached, err := f.Find(text)
	if err != nil {
		t.Fatalf("Finder.Find() error = %v", err)
	}
	direct, err := Find(text)
	if err != nil {
		t.Fatalf("Find() error = %v", err)
	}
	if !equalSpans(spans(cached), spans(direct)) {
		t.Errorf("Finder.Find() = %v, Find() = %v", spans(cached), spans(direct))
	}
}

func TestFinderDoesNotCacheErrors(t *testing.T) {
	f := NewFinder(WithCacheSize(4))
	for i := 0; i < 2; i++ {
		if _, err := f.Find("Genesis 51"); !errors.Is(err, errors.ErrInvalidChapter) {
			t.Errorf("Find() error = %v, want ErrInvalidChapter", err)
		}
	}
	if s := f.Stats(); s.Size != 0 || s.Misses != 2 {
		t.Errorf("Stats() = %+v, want no entries and 2 misses", s)
	}
}

func TestFinderWithoutCache(t *testing.T) {
	f := NewFinder(WithCacheSize(0))
	if _, err := f.Find("John 3:16"); err != nil {
		t.Fatalf("Find() error = %v", err)
	}
	if s := f.Stats(); s != (cache.Stats{}) {
		t.Errorf("Stats() = %+v, want zero", s)
	}
}

func TestFinderWithScanner(t *testing.T) {
	f := NewFinder(WithScanner(refmatch.New(refmatch.WithBooks(canon.Luke))))
	refs, err := f.Find("Matthew 1:18 - 2:18, Luke 3: 5-7")
	if err != nil {
		t.Fatalf("Find() error = %v", err)
	}
	if len(refs) != 1 || refs[0].Text != "Luke 3: 5-7" {
		t.Errorf("Find() = %+v, want Luke only", refs)
	}
	if got := f.Matches("Luke 3: 5-7"); len(got) != 1 {
		t.Errorf("Matches() = %+v, want one match", got)
	}
}

func TestFinderConcurrentUse(t *testing.T) {
	f := NewFinder(WithCacheSize(2))
	texts := []string{"Genesis 1", "Exodus 20", "John 3:16", "Jude 5"}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				if _, err := f.Find(texts[(i+j)%len(texts)]); err != nil {
					t.Errorf("Find() error = %v", err)
					return
				}
			}
		}(i)
	}
	wg.Wait()
}

func BenchmarkFinderCached(b *testing.B) {
	f := NewFinder()
	text := "Matthew 1:18 - 2:18, Luke 3: 5-7, Psalm 130:4,8 and Jeremiah 29:32-30:10,11"
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = f.Find(text)
	}
}
