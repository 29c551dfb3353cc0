package refmatch

import "regexp"

// Numeric building blocks of a reference. A range may be joined by a
// hyphen or an en dash.
const (
	chapterExpr         = `\d+`
	chapterAndVerseExpr = `\d+\s*:\s*\d+`
	pointExpr           = `\d+(?:\s*:\s*\d+)?`
	dashExpr            = `\s*[-–]\s*`
	rangeExpr           = pointExpr + dashExpr + pointExpr
	pieceExpr           = pointExpr + `(?:` + dashExpr + pointExpr + `)?`
	fullExpr            = pieceExpr + `(?:\s*,\s*` + pieceExpr + `)*`
)

// Grammars for the numeric part of a reference, each anchored to the whole
// input. The scanner checks every span it returns against Chapter,
// ChapterAndVerse and FullChapterAndVerse; Range is for callers that need
// to classify a numeric part themselves.
var (
	// Chapter is a bare chapter number: "5".
	Chapter = regexp.MustCompile(`^` + chapterExpr + `$`)

	// ChapterAndVerse is a chapter and verse pair: "3:16", "3 : 16".
	ChapterAndVerse = regexp.MustCompile(`^` + chapterAndVerseExpr + `$`)

	// Range joins two chapters or chapter and verse pairs: "1:18 - 2:18", "5-7".
	Range = regexp.MustCompile(`^` + rangeExpr + `$`)

	// FullChapterAndVerse is a chapter, chapter and verse or range followed
	// by comma separated continuations: "29:32-30:10,11".
	FullChapterAndVerse = regexp.MustCompile(`^` + fullExpr + `$`)
)

// Step grammars used by the scanner, anchored at the scan position.
var (
	pointAt        = regexp.MustCompile(`^\s*` + pointExpr)
	rangeTailAt    = regexp.MustCompile(`^` + dashExpr)
	continuationAt = regexp.MustCompile(`^\s*,\s*`)
	numberAt       = regexp.MustCompile(`^` + pointExpr)
)
