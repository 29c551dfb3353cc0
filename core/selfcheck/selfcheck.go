// Package selfcheck verifies the book catalog, the verse count table and
// the verse id codec against their invariants and reports the outcome.
package selfcheck

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/zeebo/blake3"

	"github.com/FocuswithJustin/scripref/core/canon"
	"github.com/FocuswithJustin/scripref/core/errors"
	"github.com/FocuswithJustin/scripref/core/refmatch"
	"github.com/FocuswithJustin/scripref/core/verse"
	"github.com/FocuswithJustin/scripref/internal/logging"
)

// Version is the report format version.
const Version = "1.0.0"

// Status values for reports.
const (
	StatusPass = "pass"
	StatusFail = "fail"
)

// Check types.
const (
	CheckCatalog    = "CATALOG"
	CheckTitles     = "TITLES"
	CheckRoundTrip  = "ROUND_TRIP"
	CheckMonotonic  = "MONOTONIC"
	CheckBounds     = "BOUNDS"
	CheckCollisions = "COLLISIONS"
)

// AllChecks lists every check type in execution order.
var AllChecks = []string{
	CheckCatalog,
	CheckTitles,
	CheckRoundTrip,
	CheckMonotonic,
	CheckBounds,
	CheckCollisions,
}

// maxFailures caps the failures listed per check.
const maxFailures = 10

// Report is the output of a self-check execution.
type Report struct {
	ReportVersion string        `json:"report_version"`
	CreatedAt     string        `json:"created_at"`
	Fingerprint   string        `json:"fingerprint"`
	VerseCount    int           `json:"verse_count"`
	Results       []CheckResult `json:"results"`
	Status        string        `json:"status"`
}

// CheckResult is the result of a single check.
type CheckResult struct {
	CheckType string   `json:"check_type"`
	Label     string   `json:"label"`
	Pass      bool     `json:"pass"`
	Checked   int      `json:"checked"`
	Failures  []string `json:"failures,omitempty"`
	Truncated int      `json:"truncated,omitempty"` // failures beyond the listed ones
}

// ToJSON serializes the report to JSON.
func (r *Report) ToJSON() ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}

// Hash returns the BLAKE3 hash of the report.
func (r *Report) Hash() string {
	data, _ := json.Marshal(r)
	sum := blake3.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// Failed returns the results that did not pass.
func (r *Report) Failed() []CheckResult {
	var out []CheckResult
	for _, res := range r.Results {
		if !res.Pass {
			out = append(out, res)
		}
	}
	return out
}

// Executor runs checks against one verse count table.
type Executor struct {
	table      *verse.Table
	collisions []Collision
}

// NewExecutor creates an executor for table with the known collisions.
func NewExecutor(table *verse.Table) *Executor {
	return &Executor{table: table, collisions: KnownCollisions}
}

// WithCollisions replaces the collision cases.
func (e *Executor) WithCollisions(c []Collision) *Executor {
	e.collisions = c
	return e
}

// Run executes every check against the canonical table.
func Run() *Report {
	r, _ := NewExecutor(verse.Default()).Execute(AllChecks...)
	return r
}

// Execute runs the named checks, in order, and returns a report. It fails
// only for an unknown check type.
func (e *Executor) Execute(checks ...string) (*Report, error) {
	results := make([]CheckResult, 0, len(checks))
	allPass := true

	for _, check := range checks {
		result, err := e.executeCheck(check)
		if err != nil {
			return nil, err
		}
		results = append(results, *result)
		if !result.Pass {
			allPass = false
			logging.SelfCheckFailed(check, strings.Join(result.Failures, "; "))
		}
	}

	status := StatusPass
	if !allPass {
		status = StatusFail
	}

	return &Report{
		ReportVersion: Version,
		CreatedAt:     time.Now().UTC().Format(time.RFC3339),
		Fingerprint:   e.table.Fingerprint(),
		VerseCount:    e.table.Count(),
		Results:       results,
		Status:        status,
	}, nil
}

func (e *Executor) executeCheck(check string) (*CheckResult, error) {
	switch check {
	case CheckCatalog:
		return e.checkCatalog(), nil
	case CheckTitles:
		return e.checkTitles(), nil
	case CheckRoundTrip:
		return e.checkRoundTrip(), nil
	case CheckMonotonic:
		return e.checkMonotonic(), nil
	case CheckBounds:
		return e.checkBounds(), nil
	case CheckCollisions:
		return e.checkCollisions(), nil
	default:
		return nil, errors.NewUnsupported("check type "+check, "unknown check")
	}
}

// result accumulates failures for one check.
type result struct {
	CheckResult
}

func newResult(checkType, label string) *result {
	return &result{CheckResult{CheckType: checkType, Label: label, Pass: true}}
}

func (r *result) failf(format string, args ...any) {
	r.Pass = false
	if len(r.Failures) < maxFailures {
		r.Failures = append(r.Failures, fmt.Sprintf(format, args...))
		return
	}
	r.Truncated++
}

// checkCatalog verifies 72 books with ids 1..72 in order and unique titles.
func (e *Executor) checkCatalog() *CheckResult {
	r := newResult(CheckCatalog, "book catalog is complete and ordered")
	books := canon.Books()
	if len(books) != canon.NumBooks {
		r.failf("catalog has %d books, want %d", len(books), canon.NumBooks)
	}

	seen := make(map[string]canon.BookID, len(books))
	for i, b := range books {
		r.Checked++
		if want := canon.BookID(i + 1); b.ID() != want {
			r.failf("book %q at position %d has id %d", b.Title(), i+1, b.ID())
		}
		key := strings.ToLower(b.Title())
		if prev, dup := seen[key]; dup {
			r.failf("title %q shared by books %d and %d", b.Title(), prev, b.ID())
		}
		seen[key] = b.ID()
		if n, err := e.table.ChapterCount(b.ID()); err != nil || n < 1 {
			r.failf("book %q has no chapters", b.Title())
		}
	}
	return &r.CheckResult
}

// checkTitles verifies every book's title matches its own pattern and
// selects that book.
func (e *Executor) checkTitles() *CheckResult {
	r := newResult(CheckTitles, "every title matches its own book")
	for _, b := range canon.Books() {
		r.Checked++
		if !b.Pattern().MatchesExactly(b.Title()) {
			r.failf("title %q does not match its pattern", b.Title())
			continue
		}
		got, err := canon.FindBook(b.Title())
		if err != nil || got.ID() != b.ID() {
			r.failf("title %q selects %v", b.Title(), got)
		}
	}
	return &r.CheckResult
}

// checkRoundTrip decodes and re-encodes every canonical id.
func (e *Executor) checkRoundTrip() *CheckResult {
	r := newResult(CheckRoundTrip, "encode(decode(id)) == id over the canonical set")
	for _, id := range e.table.CanonicalIDs() {
		r.Checked++
		book, chapter, v, err := e.table.Decode(id)
		if err != nil {
			r.failf("decode %s: %v", id, err)
			continue
		}
		back, err := e.table.Encode(book, chapter, v)
		if err != nil {
			r.failf("encode %s: %v", id, err)
			continue
		}
		if back != id {
			r.failf("id %s round-trips to %s", id, back)
		}
	}
	return &r.CheckResult
}

// checkMonotonic verifies that ids increase strictly in canonical order.
func (e *Executor) checkMonotonic() *CheckResult {
	r := newResult(CheckMonotonic, "ids increase with book, chapter and verse")
	var prev verse.ID
	for book := canon.Genesis; book <= canon.SecondMaccabees; book++ {
		chapters, err := e.table.ChapterCount(book)
		if err != nil {
			r.failf("book %d: %v", book, err)
			continue
		}
		for c := 1; c <= chapters; c++ {
			n, err := e.table.VerseCount(book, c)
			if err != nil {
				r.failf("%s %d: %v", book, c, err)
				continue
			}
			for v := 1; v <= n; v++ {
				r.Checked++
				id, err := e.table.Encode(book, c, v)
				if err != nil {
					r.failf("%s %d:%d: %v", book, c, v, err)
					continue
				}
				if id <= prev {
					r.failf("%s %d:%d encodes to %s, not above %s", book, c, v, id, prev)
				}
				prev = id
			}
		}
	}
	return &r.CheckResult
}

// checkBounds verifies that verse 0, verse max+1, chapter 0 and chapter
// max+1 are rejected everywhere.
func (e *Executor) checkBounds() *CheckResult {
	r := newResult(CheckBounds, "out of range chapters and verses are rejected")
	for book := canon.Genesis; book <= canon.SecondMaccabees; book++ {
		chapters, err := e.table.ChapterCount(book)
		if err != nil {
			r.failf("book %d: %v", book, err)
			continue
		}
		for _, c := range []int{0, chapters + 1} {
			r.Checked++
			if _, err := e.table.Encode(book, c, 1); !errors.Is(err, errors.ErrInvalidChapter) {
				r.failf("%s %d:1 accepted", book, c)
			}
		}
		for c := 1; c <= chapters; c++ {
			n, _ := e.table.VerseCount(book, c)
			if n == 0 {
				r.failf("%s %d has no verses and accepts any verse number", book, c)
				continue
			}
			for _, v := range []int{0, n + 1} {
				r.Checked++
				if _, err := e.table.Encode(book, c, v); !errors.Is(err, errors.ErrInvalidVerse) {
					r.failf("%s %d:%d accepted", book, c, v)
				}
			}
		}
	}
	return &r.CheckResult
}

// checkCollisions verifies each collision both at the pattern level and
// through the scanner, where book order breaks ties.
func (e *Executor) checkCollisions() *CheckResult {
	r := newResult(CheckCollisions, "colliding abbreviations select the right book")
	for _, c := range e.collisions {
		r.Checked++
		want, err := canon.Lookup(c.Want)
		if err != nil {
			r.failf("%q: %v", c.Text, err)
			continue
		}
		if !want.Pattern().MatchString(c.Text) {
			r.failf("%q does not match %s", c.Text, want.Title())
		}
		if reject, err := canon.Lookup(c.Reject); err == nil && reject.Pattern().MatchString(c.Text) {
			r.failf("%q also matches %s", c.Text, reject.Title())
		}
		matches := refmatch.Scan(c.Text)
		if len(matches) == 0 || matches[0].Book != c.Want {
			r.failf("%q scans as %v, want %s", c.Text, firstBook(matches), want.Title())
		}
	}
	return &r.CheckResult
}

func firstBook(matches []refmatch.Match) string {
	if len(matches) == 0 {
		return "nothing"
	}
	return matches[0].Book.String()
}
