// Package verse encodes (book, chapter, verse) triples as dense integer
// verse ids and validates them against the canonical verse count table.
//
// An id is book*1,000,000 + chapter*1,000 + verse, so ids sort in canonical
// order. All functions are pure; the canonical id set is built once on
// first use and shared read-only.
package verse

import (
	"slices"
	"strconv"
	"strings"

	"github.com/FocuswithJustin/scripref/core/canon"
	"github.com/FocuswithJustin/scripref/core/errors"
)

// Encoding constants.
const (
	BookPlace    = 1_000_000
	ChapterPlace = 1_000
)

// ID is an encoded verse id.
type ID int

// Book returns the book part of the id without validating it.
func (id ID) Book() canon.BookID { return BookOf(id) }

// Chapter returns the chapter part of the id without validating it.
func (id ID) Chapter() int { return ChapterOf(id) }

// Verse returns the verse part of the id without validating it.
func (id ID) Verse() int { return VerseOf(id) }

// String renders the id as a base-10 integer.
func (id ID) String() string { return strconv.Itoa(int(id)) }

// BookOf extracts the book part of id.
func BookOf(id ID) canon.BookID { return canon.BookID(int(id) / BookPlace) }

// ChapterOf extracts the chapter part of id.
func ChapterOf(id ID) int { return (int(id) % BookPlace) / ChapterPlace }

// VerseOf extracts the verse part of id.
func VerseOf(id ID) int { return int(id) % ChapterPlace }

func compose(book canon.BookID, chapter, verse int) ID {
	return ID(int(book)*BookPlace + chapter*ChapterPlace + verse)
}

// Encode validates book, chapter and verse against the table and returns
// the verse id. A chapter whose verse count is zero has no verse bound.
func (t *Table) Encode(book canon.BookID, chapter, verse int) (ID, error) {
	maxVerse, err := t.VerseCount(book, chapter)
	if err != nil {
		return 0, err
	}
	if maxVerse != 0 && (verse < 1 || verse > maxVerse) {
		return 0, errors.NewInvalidVerse(int(book), book.String(), chapter, verse, maxVerse)
	}
	return compose(book, chapter, verse), nil
}

// Decode splits a canonical verse id into book, chapter and verse.
func (t *Table) Decode(id ID) (canon.BookID, int, int, error) {
	if !t.IsValid(id) {
		return 0, 0, 0, errors.NewInvalidVerseID(int(id))
	}
	return BookOf(id), ChapterOf(id), VerseOf(id), nil
}

// IsValid reports whether id belongs to the canonical id set.
func (t *Table) IsValid(id ID) bool {
	_, found := slices.BinarySearch(t.canonical(), id)
	return found
}

// CanonicalIDs returns every valid verse id in ascending order. The slice
// is a copy.
func (t *Table) CanonicalIDs() []ID {
	return slices.Clone(t.canonical())
}

// Count returns the number of valid verse ids.
func (t *Table) Count() int {
	return len(t.canonical())
}

func (t *Table) canonical() []ID {
	t.once.Do(func() {
		var ids []ID
		for book := canon.Genesis; book <= canon.SecondMaccabees; book++ {
			for i, n := range t.counts[book] {
				for v := 1; v <= n; v++ {
					ids = append(ids, compose(book, i+1, v))
				}
			}
		}
		t.ids = ids
	})
	return t.ids
}

// Encode returns the canonical verse id of book, chapter and verse.
func Encode(book canon.BookID, chapter, verse int) (ID, error) {
	return defaultTable.Encode(book, chapter, verse)
}

// Decode splits a canonical verse id into book, chapter and verse.
func Decode(id ID) (canon.BookID, int, int, error) {
	return defaultTable.Decode(id)
}

// IsValid reports whether id is a canonical verse id.
func IsValid(id ID) bool { return defaultTable.IsValid(id) }

// CanonicalIDs returns a sorted copy of every canonical verse id.
func CanonicalIDs() []ID { return defaultTable.CanonicalIDs() }

// Count returns the number of canonical verse ids.
func Count() int { return defaultTable.Count() }

// ParseID parses the base-10 text form of a verse id and validates it.
// A one-digit book may carry a leading zero ("01001001").
func ParseID(s string) (ID, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.HasPrefix(s, "+") || strings.HasPrefix(s, "-") {
		return 0, errors.NewParse("verse id", "", "expected a positive integer, got "+strconv.Quote(s))
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.NewParse("verse id", "", strconv.Quote(s)+" is not an integer")
	}
	id := ID(n)
	if !IsValid(id) {
		return 0, errors.NewInvalidVerseID(n)
	}
	return id, nil
}
