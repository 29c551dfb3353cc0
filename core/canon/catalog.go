// Package canon is the immutable catalog of the 72 books recognized in
// scripture references: ordinal ids, titles, recognition patterns and
// abbreviations. The catalog is built once at package initialization and
// is safe for concurrent use.
package canon

import (
	"strconv"
	"strings"

	"github.com/FocuswithJustin/scripref/core/errors"
)

// catalog is indexed by BookID; slot 0 is unused.
var catalog = buildCatalog(bookDefs)

func buildCatalog(defs []bookDef) [NumBooks + 1]*Book {
	var out [NumBooks + 1]*Book
	for i, d := range defs {
		if d.id != BookID(i+1) {
			panic("canon: book " + d.title + " declared out of order")
		}
		out[d.id] = &Book{
			id:            d.id,
			title:         d.title,
			abbreviations: d.abbreviations,
			pattern:       MustCompilePattern(d.spec),
		}
	}
	if len(defs) != NumBooks {
		panic("canon: expected " + strconv.Itoa(NumBooks) + " books, got " + strconv.Itoa(len(defs)))
	}
	return out
}

// Lookup returns the book with the given id.
func Lookup(id BookID) (*Book, error) {
	if !id.Valid() {
		return nil, errors.NewNotFound("book", strconv.Itoa(int(id)))
	}
	return catalog[id], nil
}

// MustLookup is like Lookup but panics on an unknown id.
func MustLookup(id BookID) *Book {
	b, err := Lookup(id)
	if err != nil {
		panic(err)
	}
	return b
}

// Books returns every book in canonical order.
func Books() []*Book {
	out := make([]*Book, NumBooks)
	copy(out, catalog[1:])
	return out
}

// PatternOf returns the recognition pattern of the book with the given id.
func PatternOf(id BookID) (*Pattern, error) {
	b, err := Lookup(id)
	if err != nil {
		return nil, err
	}
	return b.pattern, nil
}

// ByTitle returns the book whose title equals title, ignoring case and
// surrounding whitespace.
func ByTitle(title string) (*Book, error) {
	title = strings.TrimSpace(title)
	for _, b := range catalog[1:] {
		if strings.EqualFold(b.title, title) {
			return b, nil
		}
	}
	return nil, errors.NewNotFound("book", title)
}

// FindBook returns the first book, in canonical order, whose pattern
// matches the whole of name. Titles and abbreviations both resolve.
func FindBook(name string) (*Book, error) {
	name = strings.TrimSpace(name)
	for _, b := range catalog[1:] {
		if b.pattern.MatchesExactly(name) {
			return b, nil
		}
	}
	return nil, errors.NewNotFound("book", name)
}

// FindBooks returns the books mentioned anywhere in text, in canonical
// order and without duplicates.
func FindBooks(text string) []*Book {
	var out []*Book
	for _, b := range catalog[1:] {
		if b.pattern.MatchString(text) {
			out = append(out, b)
		}
	}
	return out
}
