package verse

import (
	"fmt"
	"sync"

	"github.com/FocuswithJustin/scripref/core/canon"
	"github.com/FocuswithJustin/scripref/core/errors"
)

// Table holds the chapter and verse bounds of every book. A Table is
// read-only once built.
type Table struct {
	counts [canon.NumBooks + 1][]int

	once sync.Once
	ids  []ID // canonical ids, ascending
}

// defaultTable is the canonical verse count table.
var defaultTable = mustTable(maxVerses)

// Default returns the canonical verse count table.
func Default() *Table { return defaultTable }

// NewTable builds a table from per-book verse counts, indexed by chapter
// minus one. Every catalog book
// needs at least one chapter; a zero count marks a chapter without a
// verse bound.
func NewTable(counts map[canon.BookID][]int) (*Table, error) {
	t := &Table{}
	for id := canon.Genesis; id <= canon.SecondMaccabees; id++ {
		chapters, ok := counts[id]
		if !ok || len(chapters) == 0 {
			return nil, fmt.Errorf("book %d has no chapters", id)
		}
		for i, n := range chapters {
			if n < 0 {
				return nil, fmt.Errorf("book %d chapter %d has negative verse count %d", id, i+1, n)
			}
		}
		t.counts[id] = append([]int(nil), chapters...)
	}
	return t, nil
}

func mustTable(counts map[canon.BookID][]int) *Table {
	t, err := NewTable(counts)
	if err != nil {
		panic("verse: " + err.Error())
	}
	return t
}

func (t *Table) chapters(book canon.BookID) ([]int, error) {
	if !book.Valid() {
		return nil, errors.NewNotFound("book", fmt.Sprint(int(book)))
	}
	return t.counts[book], nil
}

// Counts returns a copy of the per-book verse counts.
func (t *Table) Counts() map[canon.BookID][]int {
	out := make(map[canon.BookID][]int, canon.NumBooks)
	for id := canon.Genesis; id <= canon.SecondMaccabees; id++ {
		out[id] = append([]int(nil), t.counts[id]...)
	}
	return out
}

// ChapterCount returns the number of chapters in book.
func (t *Table) ChapterCount(book canon.BookID) (int, error) {
	chapters, err := t.chapters(book)
	if err != nil {
		return 0, err
	}
	return len(chapters), nil
}

// VerseCount returns the highest verse number of chapter in book.
func (t *Table) VerseCount(book canon.BookID, chapter int) (int, error) {
	chapters, err := t.chapters(book)
	if err != nil {
		return 0, err
	}
	if chapter < 1 || chapter > len(chapters) {
		return 0, errors.NewInvalidChapter(int(book), book.String(), chapter, len(chapters))
	}
	return chapters[chapter-1], nil
}

// IsSingleChapterBook reports whether book has exactly one chapter.
func (t *Table) IsSingleChapterBook(book canon.BookID) (bool, error) {
	n, err := t.ChapterCount(book)
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

// ChapterCount returns the number of chapters in book.
func ChapterCount(book canon.BookID) (int, error) {
	return defaultTable.ChapterCount(book)
}

// VerseCount returns the highest verse number of chapter in book.
func VerseCount(book canon.BookID, chapter int) (int, error) {
	return defaultTable.VerseCount(book, chapter)
}

// IsSingleChapterBook reports whether book has exactly one chapter.
func IsSingleChapterBook(book canon.BookID) (bool, error) {
	return defaultTable.IsSingleChapterBook(book)
}
