// Package resolve turns scanned references into inclusive verse id ranges.
//
// Resolution follows the shape of the numeric part: a bare chapter covers
// the whole chapter, a chapter and verse covers one verse, a range runs
// between its endpoints, and comma separated continuations inherit the
// book and the chapter of the preceding endpoint. Out of range chapters
// and verses surface as the codec's typed errors, unmodified.
package resolve

import (
	"fmt"

	"github.com/FocuswithJustin/scripref/core/canon"
	"github.com/FocuswithJustin/scripref/core/errors"
	"github.com/FocuswithJustin/scripref/core/refmatch"
	"github.com/FocuswithJustin/scripref/core/verse"
)

// Reference is an inclusive range of verse ids and the text it came from.
type Reference struct {
	Start verse.ID `json:"start"`
	End   verse.ID `json:"end"`
	Text  string   `json:"text"`
}

// IsSingleVerse reports whether the reference covers exactly one verse.
func (r Reference) IsSingleVerse() bool { return r.Start == r.End }

// Resolve converts one match into its references, in source order.
func Resolve(m refmatch.Match) ([]Reference, error) {
	if m.IsCrossBook() {
		ref, err := resolveCrossBook(m)
		if err != nil {
			return nil, err
		}
		return []Reference{ref}, nil
	}
	return resolveSingleBook(m)
}

// ResolveAll resolves every match in order and stops at the first error.
func ResolveAll(matches []refmatch.Match) ([]Reference, error) {
	var out []Reference
	for _, m := range matches {
		refs, err := Resolve(m)
		if err != nil {
			return nil, err
		}
		out = append(out, refs...)
	}
	return out, nil
}

// endpoint is a resolved position. An endpoint that names no verse stands
// for a whole chapter.
type endpoint struct {
	chapter int
	verse   int
	named   bool // verse was given, even if it is 0
}

func wholeChapter(chapter int) endpoint { return endpoint{chapter: chapter} }

func at(chapter, verse int) endpoint {
	return endpoint{chapter: chapter, verse: verse, named: true}
}

func resolveSingleBook(m refmatch.Match) ([]Reference, error) {
	p, err := parsePassage(m.Numbers)
	if err != nil {
		return nil, parseError(m, err)
	}

	chapters, err := verse.ChapterCount(m.Book)
	if err != nil {
		return nil, err
	}

	segments := append([]*segment{p.Head}, p.Tail...)
	refs := make([]Reference, 0, len(segments))
	var chapter int // chapter of the last endpoint
	for i, seg := range segments {
		var from endpoint
		if i == 0 {
			from = headEndpoint(seg, chapters)
		} else {
			from = continuationEndpoint(seg.From, chapter)
		}
		to, hasTo := toEndpoint(seg.To, from)

		ref, err := rangeOf(m.Book, from, to, hasTo, m.Text)
		if err != nil {
			return nil, err
		}
		refs = append(refs, ref)

		chapter = from.chapter
		if hasTo {
			chapter = to.chapter
		}
	}
	return refs, nil
}

// versesOfOnlyChapter reports whether the bare numbers of seg are verses of
// chapter 1. That is the case in a single chapter book when reading them as
// chapters would name a chapter the book does not have: "Jude 5" and
// "Jude 1-5" are verses, "Jude 1" is the whole book.
func versesOfOnlyChapter(seg *segment, chapters int) bool {
	if chapters != 1 || seg.From.hasVerse() {
		return false
	}
	if seg.From.chapter() > chapters {
		return true
	}
	return seg.To != nil && !seg.To.hasVerse() && seg.To.chapter() > chapters
}

// headEndpoint interprets the first point after the book name. A bare
// number is a whole chapter.
func headEndpoint(seg *segment, chapters int) endpoint {
	switch {
	case seg.From.hasVerse():
		return at(seg.From.chapter(), seg.From.verse())
	case versesOfOnlyChapter(seg, chapters):
		return at(1, seg.From.chapter())
	default:
		return wholeChapter(seg.From.chapter())
	}
}

// continuationEndpoint interprets the first point after a comma. A bare
// number is a verse of the chapter of the preceding endpoint.
func continuationEndpoint(p *point, chapter int) endpoint {
	if p.hasVerse() {
		return at(p.chapter(), p.verse())
	}
	return at(chapter, p.chapter())
}

// toEndpoint interprets the second point of a range. A bare number after
// a start that named a verse is a verse in the start's chapter.
func toEndpoint(p *point, from endpoint) (endpoint, bool) {
	switch {
	case p == nil:
		return endpoint{}, false
	case p.hasVerse():
		return at(p.chapter(), p.verse()), true
	case from.named:
		return at(from.chapter, p.chapter()), true
	default:
		return wholeChapter(p.chapter()), true
	}
}

func rangeOf(book canon.BookID, from, to endpoint, hasTo bool, text string) (Reference, error) {
	start, err := firstVerse(book, from)
	if err != nil {
		return Reference{}, err
	}

	var end verse.ID
	switch {
	case hasTo:
		end, err = lastVerse(book, to)
	case from.named:
		end = start
	default:
		end, err = lastVerse(book, from)
	}
	if err != nil {
		return Reference{}, err
	}

	if end < start {
		return Reference{}, errors.NewInvalidRange(text, int(start), int(end))
	}
	return Reference{Start: start, End: end, Text: text}, nil
}

// firstVerse encodes an endpoint, taking verse 1 for a whole chapter.
func firstVerse(book canon.BookID, e endpoint) (verse.ID, error) {
	if !e.named {
		return verse.Encode(book, e.chapter, 1)
	}
	return verse.Encode(book, e.chapter, e.verse)
}

// lastVerse encodes an endpoint, taking the chapter's last verse for a
// whole chapter.
func lastVerse(book canon.BookID, e endpoint) (verse.ID, error) {
	if e.named {
		return verse.Encode(book, e.chapter, e.verse)
	}
	n, err := verse.VerseCount(book, e.chapter)
	if err != nil {
		return 0, err
	}
	return verse.Encode(book, e.chapter, n)
}

// resolveCrossBook spans from the start book's named position, or its
// first verse, to the end book's named position, or its last verse.
func resolveCrossBook(m refmatch.Match) (Reference, error) {
	from, err := parsePoint(m.Numbers)
	if err != nil {
		return Reference{}, parseError(m, err)
	}
	to, err := parsePoint(m.EndNumbers)
	if err != nil {
		return Reference{}, parseError(m, err)
	}

	start := at(1, 1)
	if from != nil {
		if start, err = pointEndpoint(m.Book, from); err != nil {
			return Reference{}, err
		}
	}

	var end endpoint
	if to == nil {
		chapters, err := verse.ChapterCount(m.EndBook)
		if err != nil {
			return Reference{}, err
		}
		end = wholeChapter(chapters)
	} else if end, err = pointEndpoint(m.EndBook, to); err != nil {
		return Reference{}, err
	}

	startID, err := firstVerse(m.Book, start)
	if err != nil {
		return Reference{}, err
	}
	endID, err := lastVerse(m.EndBook, end)
	if err != nil {
		return Reference{}, err
	}
	if endID < startID {
		return Reference{}, errors.NewInvalidRange(m.Text, int(startID), int(endID))
	}
	return Reference{Start: startID, End: endID, Text: m.Text}, nil
}

// pointEndpoint interprets one side of a cross-book range the way a head
// point is interpreted.
func pointEndpoint(book canon.BookID, p *point) (endpoint, error) {
	chapters, err := verse.ChapterCount(book)
	if err != nil {
		return endpoint{}, err
	}
	return headEndpoint(&segment{From: p}, chapters), nil
}

func parseError(m refmatch.Match, err error) error {
	return errors.NewParse("reference", "", fmt.Sprintf("%q: %v", m.Text, err))
}
