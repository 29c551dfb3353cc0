package resolve

import (
	"math"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// passage is the numeric part of a single-book reference:
// "29:32-30:10,11" parses as head 29:32-30:10 and one continuation 11.
type passage struct {
	Head *segment   `parser:"@@"`
	Tail []*segment `parser:"( \",\" @@ )*"`
}

type segment struct {
	From *point `parser:"@@"`
	To   *point `parser:"( \"-\" @@ )?"`
}

type point struct {
	ChapterDigits string  `parser:"@Int"`
	VerseDigits   *string `parser:"( \":\" @Int )?"`
}

func (p *point) hasVerse() bool { return p != nil && p.VerseDigits != nil }

// chapter returns the first number of the point.
func (p *point) chapter() int { return number(p.ChapterDigits) }

// verse returns the number after the colon, or 0 when there is none.
func (p *point) verse() int {
	if p.VerseDigits == nil {
		return 0
	}
	return number(*p.VerseDigits)
}

// maxNumber is larger than any chapter or verse in the table. Digit runs
// that do not fit saturate to it, so the codec rejects them with its
// chapter and verse errors.
const maxNumber = math.MaxInt32

func number(digits string) int {
	n, err := strconv.Atoi(digits)
	if err != nil || n > maxNumber {
		return maxNumber
	}
	return n
}

var numbersLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Int", Pattern: `[0-9]+`},
	{Name: "Punct", Pattern: `[-:,]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var (
	passageParser = participle.MustBuild[passage](
		participle.Lexer(numbersLexer),
		participle.Elide("Whitespace"),
	)
	pointParser = participle.MustBuild[point](
		participle.Lexer(numbersLexer),
		participle.Elide("Whitespace"),
	)
)

// normalizeDashes maps en dashes to hyphens.
func normalizeDashes(s string) string {
	return strings.ReplaceAll(s, "–", "-")
}

func parsePassage(s string) (*passage, error) {
	return passageParser.ParseString("", normalizeDashes(s))
}

// parsePoint parses an optional chapter or chapter and verse. An empty
// string yields nil.
func parsePoint(s string) (*point, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	return pointParser.ParseString("", s)
}
