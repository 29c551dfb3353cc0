package canon

import (
	"cmp"
	"fmt"
	"regexp"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"
)

// guardWindow bounds how much surrounding text a guard inspects.
const guardWindow = 32

// coreGroup names the capture group that wraps a form inside its prefix and suffix.
const coreGroup = "core"

// Form is one spelling of a book name, written as an RE2 fragment and
// matched case-insensitively. RE2 has no lookaround, so exclusions that a
// backtracking engine would express inline are carried as guards and
// checked against the text around each hit.
type Form struct {
	// Expr is the spelling or abbreviation expression.
	Expr string

	// NotFollowedBy rejects a hit when the text right after the form
	// starts with a match of this expression.
	NotFollowedBy string

	// NotPrecededBy rejects a hit when the text right before it ends
	// with a match of this expression.
	NotPrecededBy string
}

// PatternSpec describes a book pattern before compilation.
type PatternSpec struct {
	// Forms are tried in order; earlier forms win ties at the same offset.
	Forms []Form

	// Prefix is a required ordinal alternation ("1|I\s+|First\s+...").
	Prefix string

	// Suffix is an optional qualifying title ("of\s+Jeremiah").
	Suffix string

	// NotPrecededBy applies to every form.
	NotPrecededBy string
}

// Compose joins an optional ordinal prefix and an optional qualifying
// suffix around a core alternation. A non-empty prefix is required in the
// result; a suffix is always optional.
func Compose(core, prefix, suffix string) string {
	expr := core
	if prefix != "" {
		expr = `(?:` + prefix + `)(?:\s)?` + expr
	}
	if suffix != "" {
		expr = expr + `(?:\s*` + suffix + `)?`
	}
	return expr
}

type compiledForm struct {
	expr          string
	re            *regexp.Regexp
	core          int
	needCore      bool
	notFollowedBy *regexp.Regexp
	notPrecededBy *regexp.Regexp
}

// Pattern is the compiled recognition pattern of one book.
type Pattern struct {
	forms []compiledForm
}

// Hit is one occurrence of a book name in a text.
type Hit struct {
	Start int // byte offset of the first character
	End   int // byte offset after the last character
	Form  int // index of the form that produced the hit
}

// CompilePattern compiles every form of spec into a Pattern.
func CompilePattern(spec PatternSpec) (*Pattern, error) {
	if len(spec.Forms) == 0 {
		return nil, fmt.Errorf("pattern has no forms")
	}

	p := &Pattern{forms: make([]compiledForm, 0, len(spec.Forms))}
	for _, f := range spec.Forms {
		expr := Compose(`(?P<`+coreGroup+`>`+f.Expr+`)`, spec.Prefix, spec.Suffix)
		re, err := regexp.Compile(`(?i)` + expr)
		if err != nil {
			return nil, fmt.Errorf("compile form %q: %w", f.Expr, err)
		}

		cf := compiledForm{
			expr: expr,
			re:   re,
			core: re.SubexpIndex(coreGroup),
		}
		if f.NotFollowedBy != "" {
			cf.notFollowedBy, err = regexp.Compile(`(?i)^(?:` + f.NotFollowedBy + `)`)
			if err != nil {
				return nil, fmt.Errorf("compile guard %q: %w", f.NotFollowedBy, err)
			}
			cf.needCore = spec.Suffix != ""
		}
		if lb := joinAlternatives(spec.NotPrecededBy, f.NotPrecededBy); lb != "" {
			cf.notPrecededBy, err = regexp.Compile(`(?i)(?:` + lb + `)$`)
			if err != nil {
				return nil, fmt.Errorf("compile guard %q: %w", lb, err)
			}
		}
		p.forms = append(p.forms, cf)
	}
	return p, nil
}

// MustCompilePattern is like CompilePattern but panics on error.
func MustCompilePattern(spec PatternSpec) *Pattern {
	p, err := CompilePattern(spec)
	if err != nil {
		panic(err)
	}
	return p
}

func joinAlternatives(a, b string) string {
	switch {
	case a == "":
		return b
	case b == "":
		return a
	default:
		return `(?:` + a + `)|(?:` + b + `)`
	}
}

// Hits returns every guarded occurrence of any form, ordered by start
// offset and then by form order. Hits may overlap.
func (p *Pattern) Hits(text string) []Hit {
	var hits []Hit
	for i := range p.forms {
		f := &p.forms[i]
		var locs [][]int
		if f.needCore {
			locs = f.re.FindAllStringSubmatchIndex(text, -1)
		} else {
			locs = f.re.FindAllStringIndex(text, -1)
		}
		for _, loc := range locs {
			start, end := loc[0], loc[1]
			coreEnd := end
			if f.needCore && loc[2*f.core+1] >= 0 {
				coreEnd = loc[2*f.core+1]
			}
			if f.accept(text, start, coreEnd, end) {
				hits = append(hits, Hit{Start: start, End: end, Form: i})
			}
		}
	}

	slices.SortStableFunc(hits, func(a, b Hit) int {
		if c := cmp.Compare(a.Start, b.Start); c != 0 {
			return c
		}
		return cmp.Compare(a.Form, b.Form)
	})
	return hits
}

// accept applies the word boundaries and the form's guards to a raw hit.
// A name may not start inside a word or end inside one.
func (f *compiledForm) accept(text string, start, coreEnd, end int) bool {
	if start > 0 {
		r, _ := utf8.DecodeLastRuneInString(text[:start])
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return false
		}
	}
	if end < len(text) {
		r, _ := utf8.DecodeRuneInString(text[end:])
		if unicode.IsLetter(r) {
			return false
		}
	}
	if f.notPrecededBy != nil && f.notPrecededBy.MatchString(text[max(0, start-guardWindow):start]) {
		return false
	}
	if f.notFollowedBy != nil && f.notFollowedBy.MatchString(text[coreEnd:min(len(text), coreEnd+guardWindow)]) {
		return false
	}
	return true
}

// FindAllStringIndex returns the non-overlapping occurrences of the book
// name, leftmost first.
func (p *Pattern) FindAllStringIndex(text string) [][]int {
	var out [][]int
	last := 0
	for _, h := range p.Hits(text) {
		if h.Start < last {
			continue
		}
		out = append(out, []int{h.Start, h.End})
		last = h.End
	}
	return out
}

// FindAllString returns the text of each non-overlapping occurrence.
func (p *Pattern) FindAllString(text string) []string {
	locs := p.FindAllStringIndex(text)
	out := make([]string, len(locs))
	for i, loc := range locs {
		out[i] = text[loc[0]:loc[1]]
	}
	return out
}

// MatchString reports whether text contains the book name.
func (p *Pattern) MatchString(text string) bool {
	return len(p.Hits(text)) > 0
}

// MatchesExactly reports whether the whole of s is one occurrence of the book name.
func (p *Pattern) MatchesExactly(s string) bool {
	for _, h := range p.Hits(s) {
		if h.Start == 0 && h.End == len(s) {
			return true
		}
	}
	return false
}

// String returns the composed alternation, without guards.
func (p *Pattern) String() string {
	parts := make([]string, len(p.forms))
	for i, f := range p.forms {
		parts[i] = f.expr
	}
	return strings.Join(parts, "|")
}
