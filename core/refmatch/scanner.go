// Package refmatch finds scripture references in free text.
//
// A reference is a book name followed by a numeric part ("John 3:16",
// "Luke 3: 5-7", "Psalm 130:4,8"), or two book names joined by a dash, each
// optionally followed by a chapter or chapter and verse ("Genesis -
// Deuteronomy", "Gen 1:1 - Exod 2:3"). Scanning never fails; text without
// references yields no matches.
package refmatch

import (
	"cmp"
	"log/slog"
	"slices"
	"strings"

	"github.com/FocuswithJustin/scripref/core/canon"
	"github.com/FocuswithJustin/scripref/internal/logging"
)

// Match is one reference found in a text.
type Match struct {
	Start int    `json:"start"` // byte offset of the book name
	End   int    `json:"end"`   // byte offset after the last number
	Text  string `json:"text"`

	Book    canon.BookID `json:"book"`
	Numbers string       `json:"numbers,omitempty"` // numeric part after Book

	// EndBook and EndNumbers are set for cross-book ranges only.
	EndBook    canon.BookID `json:"end_book,omitempty"`
	EndNumbers string       `json:"end_numbers,omitempty"`
}

// IsCrossBook reports whether the match spans two books.
func (m Match) IsCrossBook() bool { return m.EndBook != 0 }

// Scanner finds references using a fixed set of book patterns. A Scanner
// is immutable and safe for concurrent use.
type Scanner struct {
	books  []*canon.Book
	logger *slog.Logger
}

// Option configures a Scanner.
type Option func(*Scanner)

// WithBooks limits recognition to the given books. Unknown ids are ignored.
func WithBooks(ids ...canon.BookID) Option {
	return func(s *Scanner) {
		s.books = s.books[:0]
		for _, id := range ids {
			if b, err := canon.Lookup(id); err == nil {
				s.books = append(s.books, b)
			}
		}
		slices.SortFunc(s.books, func(a, b *canon.Book) int { return cmp.Compare(a.ID(), b.ID()) })
		s.books = slices.CompactFunc(s.books, func(a, b *canon.Book) bool { return a.ID() == b.ID() })
	}
}

// WithLogger sets the logger. The default is the process logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Scanner) { s.logger = l }
}

// New returns a Scanner over every catalog book.
func New(opts ...Option) *Scanner {
	s := &Scanner{books: canon.Books(), logger: logging.GetLogger()}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger != nil {
		s.logger.Debug("reference scanner ready", "books", len(s.books))
	}
	return s
}

var defaultScanner = New()

// Scan returns every reference in text using all catalog books.
func Scan(text string) []Match {
	return defaultScanner.Scan(text)
}

type bookHit struct {
	canon.Hit
	book canon.BookID
}

// hits collects book name hits ordered by start offset, then book order,
// then form order.
func (s *Scanner) hits(text string) []bookHit {
	var out []bookHit
	for _, b := range s.books {
		for _, h := range b.Pattern().Hits(text) {
			out = append(out, bookHit{Hit: h, book: b.ID()})
		}
	}
	slices.SortStableFunc(out, func(a, b bookHit) int {
		if c := cmp.Compare(a.Start, b.Start); c != 0 {
			return c
		}
		if c := cmp.Compare(a.book, b.book); c != 0 {
			return c
		}
		return cmp.Compare(a.Form, b.Form)
	})
	return out
}

// hitAt returns the highest priority hit starting exactly at pos.
func hitAt(hits []bookHit, pos int) (bookHit, bool) {
	i, found := slices.BinarySearchFunc(hits, pos, func(h bookHit, p int) int {
		return cmp.Compare(h.Start, p)
	})
	if !found {
		return bookHit{}, false
	}
	return hits[i], true
}

// Scan returns the non-overlapping references in text, left to right.
// Candidates starting at the same offset are tried in book order.
func (s *Scanner) Scan(text string) []Match {
	hits := s.hits(text)

	var out []Match
	pos := 0
	for _, h := range hits {
		if h.Start < pos {
			continue
		}
		m, ok := matchAt(text, hits, h)
		if !ok {
			continue
		}
		out = append(out, m)
		pos = m.End
	}
	return out
}

func matchAt(text string, hits []bookHit, h bookHit) (Match, bool) {
	if m, ok := crossBookAt(text, hits, h); ok {
		return m, true
	}
	return singleBookAt(text, hits, h)
}

// crossBookAt matches BOOK [POINT] - BOOK [POINT].
func crossBookAt(text string, hits []bookHit, h bookHit) (Match, bool) {
	numEnd := h.End
	if loc := pointAt.FindStringIndex(text[numEnd:]); loc != nil {
		numEnd += loc[1]
	}
	dash := rangeTailAt.FindStringIndex(text[numEnd:])
	if dash == nil {
		return Match{}, false
	}
	other, ok := hitAt(hits, numEnd+dash[1])
	if !ok {
		return Match{}, false
	}

	end := other.End
	if loc := pointAt.FindStringIndex(text[end:]); loc != nil {
		end += loc[1]
	}
	numbers := strings.TrimSpace(text[h.End:numEnd])
	endNumbers := strings.TrimSpace(text[other.End:end])
	if !isPoint(numbers) || !isPoint(endNumbers) {
		return Match{}, false
	}
	return Match{
		Start:      h.Start,
		End:        end,
		Text:       text[h.Start:end],
		Book:       h.book,
		Numbers:    numbers,
		EndBook:    other.book,
		EndNumbers: endNumbers,
	}, true
}

// isPoint reports whether s is empty, a chapter, or a chapter and verse.
func isPoint(s string) bool {
	return s == "" || Chapter.MatchString(s) || ChapterAndVerse.MatchString(s)
}

// singleBookAt matches BOOK POINT [- POINT] {, POINT [- POINT]}. A
// continuation stops where another book name begins.
func singleBookAt(text string, hits []bookHit, h bookHit) (Match, bool) {
	loc := pointAt.FindStringIndex(text[h.End:])
	if loc == nil {
		return Match{}, false
	}
	end := rangeTail(text, hits, h.End+loc[1])

	for {
		sep := continuationAt.FindStringIndex(text[end:])
		if sep == nil {
			break
		}
		next := end + sep[1]
		if _, ok := hitAt(hits, next); ok {
			break
		}
		n := numberAt.FindStringIndex(text[next:])
		if n == nil {
			break
		}
		end = rangeTail(text, hits, next+n[1])
	}

	numbers := strings.TrimSpace(text[h.End:end])
	if !FullChapterAndVerse.MatchString(numbers) {
		return Match{}, false
	}
	return Match{
		Start:   h.Start,
		End:     end,
		Text:    text[h.Start:end],
		Book:    h.book,
		Numbers: numbers,
	}, true
}

// rangeTail extends end over "- POINT" when present.
func rangeTail(text string, hits []bookHit, end int) int {
	dash := rangeTailAt.FindStringIndex(text[end:])
	if dash == nil {
		return end
	}
	next := end + dash[1]
	if _, ok := hitAt(hits, next); ok {
		return end
	}
	n := numberAt.FindStringIndex(text[next:])
	if n == nil {
		return end
	}
	return next + n[1]
}
