// Package validation checks user-supplied paths and text before they reach
// the reference scanner.
package validation

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Limits on user input.
const (
	// MaxInputSize is the largest text accepted for scanning (16 MB).
	MaxInputSize = 16 << 20
	// MaxPathLength is the maximum allowed path length.
	MaxPathLength = 4096
)

// Common validation errors.
var (
	ErrPathTooLong      = errors.New("path too long")
	ErrInvalidCharacter = errors.New("invalid character in path")
	ErrEmptyPath        = errors.New("path cannot be empty")
	ErrInputTooLarge    = errors.New("input too large")
	ErrBinaryInput      = errors.New("input is not text")
)

// ValidatePath checks a path for length limits and invalid characters.
func ValidatePath(path string) error {
	if path == "" {
		return ErrEmptyPath
	}

	if len(path) > MaxPathLength {
		return ErrPathTooLong
	}

	if strings.Contains(path, "\x00") {
		return fmt.Errorf("%w: null byte not allowed", ErrInvalidCharacter)
	}

	for _, r := range path {
		if unicode.IsControl(r) {
			return fmt.Errorf("%w: control character not allowed", ErrInvalidCharacter)
		}
	}

	return nil
}

// binarySignatures are formats that are rejected by name, so the user sees
// what they passed instead of a generic error.
var binarySignatures = []struct {
	name   string
	magic  []byte
	offset int
}{
	{"tar", []byte("ustar"), 257},
	{"gzip", []byte{0x1f, 0x8b}, 0},
	{"xz", []byte{0xfd, 0x37, 0x7a, 0x58, 0x5a, 0x00}, 0},
	{"zip", []byte{0x50, 0x4b, 0x03, 0x04}, 0},
	{"sqlite", []byte("SQLite format 3"), 0},
	{"pdf", []byte("%PDF-"), 0},
}

// detectBinary returns the name of a known binary format, or "".
func detectBinary(buf []byte) string {
	for _, sig := range binarySignatures {
		if sig.offset+len(sig.magic) <= len(buf) {
			if bytes.Equal(buf[sig.offset:sig.offset+len(sig.magic)], sig.magic) {
				return sig.name
			}
		}
	}
	return ""
}

// ReadText reads at most MaxInputSize bytes of UTF-8 text from r.
func ReadText(r io.Reader) (string, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxInputSize+1))
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	if len(data) > MaxInputSize {
		return "", fmt.Errorf("%w: limit is %d bytes", ErrInputTooLarge, MaxInputSize)
	}
	if err := CheckText(data); err != nil {
		return "", err
	}
	return string(data), nil
}

// ReadTextFile validates path and reads it with ReadText.
func ReadTextFile(path string) (string, error) {
	if err := ValidatePath(path); err != nil {
		return "", err
	}
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	return ReadText(f)
}

// CheckText rejects known binary formats, invalid UTF-8 and content that is
// mostly control bytes. Empty input is text.
func CheckText(buf []byte) error {
	if len(buf) == 0 {
		return nil
	}
	head := buf
	if len(head) > 512 {
		head = head[:512]
	}
	if name := detectBinary(head); name != "" {
		return fmt.Errorf("%w: looks like %s", ErrBinaryInput, name)
	}
	if !utf8.Valid(buf) {
		return fmt.Errorf("%w: invalid UTF-8", ErrBinaryInput)
	}
	if !isLikelyText(head) {
		return ErrBinaryInput
	}
	return nil
}

// isLikelyText checks if the buffer contains likely text content.
func isLikelyText(buf []byte) bool {
	if len(buf) == 0 {
		return false
	}

	// Null bytes are a strong indicator of binary content.
	if bytes.IndexByte(buf, 0) != -1 {
		return false
	}

	printable := 0
	control := 0
	for _, b := range buf {
		if b >= 0x20 && b <= 0x7e || b == '\t' || b == '\n' || b == '\r' {
			printable++
		} else if b < 0x20 {
			control++
		}
		// bytes >= 0x7f are UTF-8 sequences and count for neither
	}

	if control == 0 {
		return true
	}
	return printable > 0 && float64(printable)/float64(printable+control) > 0.95
}
