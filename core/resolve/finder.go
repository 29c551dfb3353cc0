package resolve

import (
	"log/slog"
	"slices"

	"github.com/FocuswithJustin/scripref/core/cache"
	"github.com/FocuswithJustin/scripref/core/refmatch"
	"github.com/FocuswithJustin/scripref/internal/logging"
)

// Finder scans and resolves text in one step and memoizes the results by
// input text. A Finder is safe for concurrent use.
type Finder struct {
	scanner *refmatch.Scanner
	results *cache.CloningCache[string, []Reference] // nil when disabled
	logger  *slog.Logger
}

// FinderOption configures a Finder.
type FinderOption func(*Finder)

// WithCacheSize sets the number of memoized texts. Zero or less disables
// memoization.
func WithCacheSize(n int) FinderOption {
	return func(f *Finder) {
		if n <= 0 {
			f.results = nil
			return
		}
		f.results = cache.NewCloningCache[string, []Reference](cache.Config{MaxSize: n}, cloneReferences)
	}
}

// WithScanner replaces the scanner, for example one limited to some books.
func WithScanner(s *refmatch.Scanner) FinderOption {
	return func(f *Finder) { f.scanner = s }
}

// WithLogger sets the logger. The default is the process logger.
func WithLogger(l *slog.Logger) FinderOption {
	return func(f *Finder) { f.logger = l }
}

// NewFinder returns a Finder over every catalog book with the default
// cache size.
func NewFinder(opts ...FinderOption) *Finder {
	f := &Finder{logger: logging.GetLogger()}
	WithCacheSize(cache.DefaultConfig().MaxSize)(f)
	for _, opt := range opts {
		opt(f)
	}
	if f.scanner == nil {
		f.scanner = refmatch.New(refmatch.WithLogger(f.logger))
	}
	if f.logger != nil {
		f.logger.Debug("reference finder ready", "cache_enabled", f.results != nil)
	}
	return f
}

func cloneReferences(refs []Reference) []Reference { return slices.Clone(refs) }

// Find returns the references in text, in source order. Errors are not
// memoized.
func (f *Finder) Find(text string) ([]Reference, error) {
	if f.results != nil {
		if refs, ok := f.results.Get(text); ok {
			return refs, nil
		}
	}

	refs, err := ResolveAll(f.scanner.Scan(text))
	if err != nil {
		if f.logger != nil {
			f.logger.Debug("reference resolution failed", "text", text, "error", err)
		}
		return nil, err
	}

	if f.results != nil {
		f.results.Put(text, refs)
	}
	return refs, nil
}

// Matches returns the scanned matches of text without resolving them.
func (f *Finder) Matches(text string) []refmatch.Match {
	return f.scanner.Scan(text)
}

// Stats returns memoization statistics; the zero value when disabled.
func (f *Finder) Stats() cache.Stats {
	if f.results == nil {
		return cache.Stats{}
	}
	return f.results.Stats()
}

// Find scans and resolves text without memoization.
func Find(text string) ([]Reference, error) {
	return ResolveAll(refmatch.Scan(text))
}
