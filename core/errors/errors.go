// Package errors provides standardized error types and helpers for the scripref codebase.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common cases
var (
	// ErrNotFound indicates a resource was not found
	ErrNotFound = errors.New("not found")
	// ErrInvalidInput indicates invalid input or validation failure
	ErrInvalidInput = errors.New("invalid input")
	// ErrUnsupported indicates an unsupported operation or format
	ErrUnsupported = errors.New("unsupported")

	// ErrInvalidChapter indicates a chapter outside a book's chapter range
	ErrInvalidChapter = fmt.Errorf("invalid chapter: %w", ErrInvalidInput)
	// ErrInvalidVerse indicates a verse outside a chapter's verse range,
	// or a verse id that is not part of the canon
	ErrInvalidVerse = fmt.Errorf("invalid verse: %w", ErrInvalidInput)
)

// NotFoundError represents a resource not found error with context
type NotFoundError struct {
	Resource string // Type of resource (e.g., "book")
	ID       string // Identifier of the resource
	Err      error  // Underlying error, if any
}

func (e *NotFoundError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

func (e *NotFoundError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrNotFound
}

// InvalidChapterError reports a chapter number outside 1..MaxChapter for a book.
type InvalidChapterError struct {
	BookID     int    // Ordinal id of the book
	Book       string // Title of the book
	Chapter    int    // Requested chapter
	MaxChapter int    // Number of chapters in the book
}

func (e *InvalidChapterError) Error() string {
	return fmt.Sprintf("%d is not a valid chapter number for the book of %s. Valid chapter numbers are 1-%d.",
		e.Chapter, e.Book, e.MaxChapter)
}

func (e *InvalidChapterError) Unwrap() error {
	return ErrInvalidChapter
}

// InvalidVerseError reports a verse outside its chapter, or a verse id that
// does not decode to a canonical verse. When VerseID is set the error was
// produced by decoding and the remaining fields are zero.
type InvalidVerseError struct {
	BookID   int    // Ordinal id of the book
	Book     string // Title of the book
	Chapter  int    // Requested chapter
	Verse    int    // Requested verse
	MaxVerse int    // Highest verse in the chapter
	VerseID  int    // Rejected verse id, if decoding
}

func (e *InvalidVerseError) Error() string {
	if e.VerseID != 0 || e.Book == "" {
		return fmt.Sprintf("%d is not a valid verse id", e.VerseID)
	}
	return fmt.Sprintf("%s %d:%d is not a valid Bible verse. Valid verses for that book and chapter are 1-%d",
		e.Book, e.Chapter, e.Verse, e.MaxVerse)
}

func (e *InvalidVerseError) Unwrap() error {
	return ErrInvalidVerse
}

// InvalidRangeError reports a resolved range whose end precedes its start.
type InvalidRangeError struct {
	Text  string // Source text of the range
	Start int    // Start verse id
	End   int    // End verse id
}

func (e *InvalidRangeError) Error() string {
	if e.Text != "" {
		return fmt.Sprintf("invalid range %q: end %d precedes start %d", e.Text, e.End, e.Start)
	}
	return fmt.Sprintf("invalid range: end %d precedes start %d", e.End, e.Start)
}

func (e *InvalidRangeError) Unwrap() error {
	return ErrInvalidInput
}

// ValidationError represents an input validation error with context
type ValidationError struct {
	Field   string // Field name that failed validation
	Value   string // Value that failed validation (may be redacted)
	Message string // Human-readable error message
	Err     error  // Underlying error, if any
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

func (e *ValidationError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrInvalidInput
}

// IOError represents an I/O operation error with context
type IOError struct {
	Operation string // Operation being performed (e.g., "read", "write", "open")
	Path      string // File/resource path involved
	Err       error  // Underlying error
}

func (e *IOError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("failed to %s %s: %v", e.Operation, e.Path, e.Err)
	}
	return fmt.Sprintf("failed to %s: %v", e.Operation, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// ParseError represents a parsing or deserialization error
type ParseError struct {
	Format  string // Format being parsed (e.g., "reference", "verse id", "YAML")
	Path    string // File path, if applicable
	Message string // Error details
	Err     error  // Underlying error, if any
}

func (e *ParseError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("failed to parse %s at %s: %s", e.Format, e.Path, e.Message)
	}
	return fmt.Sprintf("failed to parse %s: %s", e.Format, e.Message)
}

func (e *ParseError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrInvalidInput
}

// UnsupportedError represents an unsupported feature or format
type UnsupportedError struct {
	Feature string // Feature or format that is unsupported
	Reason  string // Why it's not supported
	Err     error  // Underlying error, if any
}

func (e *UnsupportedError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("unsupported %s: %s", e.Feature, e.Reason)
	}
	return fmt.Sprintf("unsupported %s", e.Feature)
}

func (e *UnsupportedError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrUnsupported
}

// Helper functions for creating common errors

// NewNotFound creates a NotFoundError
func NewNotFound(resource, id string) *NotFoundError {
	return &NotFoundError{
		Resource: resource,
		ID:       id,
	}
}

// NewInvalidChapter creates an InvalidChapterError
func NewInvalidChapter(bookID int, book string, chapter, maxChapter int) *InvalidChapterError {
	return &InvalidChapterError{
		BookID:     bookID,
		Book:       book,
		Chapter:    chapter,
		MaxChapter: maxChapter,
	}
}

// NewInvalidVerse creates an InvalidVerseError for a book, chapter and verse
func NewInvalidVerse(bookID int, book string, chapter, verse, maxVerse int) *InvalidVerseError {
	return &InvalidVerseError{
		BookID:   bookID,
		Book:     book,
		Chapter:  chapter,
		Verse:    verse,
		MaxVerse: maxVerse,
	}
}

// NewInvalidVerseID creates an InvalidVerseError for an undecodable verse id
func NewInvalidVerseID(verseID int) *InvalidVerseError {
	return &InvalidVerseError{VerseID: verseID}
}

// NewInvalidRange creates an InvalidRangeError
func NewInvalidRange(text string, start, end int) *InvalidRangeError {
	return &InvalidRangeError{
		Text:  text,
		Start: start,
		End:   end,
	}
}

// NewValidation creates a ValidationError
func NewValidation(field, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// NewIO creates an IOError
func NewIO(operation, path string, err error) *IOError {
	return &IOError{
		Operation: operation,
		Path:      path,
		Err:       err,
	}
}

// NewParse creates a ParseError
func NewParse(format, path, message string) *ParseError {
	return &ParseError{
		Format:  format,
		Path:    path,
		Message: message,
	}
}

// NewUnsupported creates an UnsupportedError
func NewUnsupported(feature, reason string) *UnsupportedError {
	return &UnsupportedError{
		Feature: feature,
		Reason:  reason,
	}
}

// Wrap adds context to an error. If err is nil, returns nil.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf adds formatted context to an error. If err is nil, returns nil.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// Is wraps errors.Is for convenience
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As wraps errors.As for convenience
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
