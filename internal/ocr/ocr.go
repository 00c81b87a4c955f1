// Package ocr defines the optional text-extraction capability. OCR is an
// external collaborator; when no implementation is wired in, call sites get
// the explicit Unavailable reader and degrade to pixel-level checks.
package ocr

import (
	"image"
	"strings"
)

// Reader extracts text from an image.
type Reader interface {
	// Available reports whether text extraction is actually backed by an
	// OCR implementation.
	Available() bool
	// ReadText returns the extracted text. Unavailable readers return an
	// empty string without error so callers can degrade gracefully.
	ReadText(img image.Image) (string, error)
}

// Unavailable is the no-op Reader used when no OCR backend is wired in.
type Unavailable struct{}

// Available always reports false.
func (Unavailable) Available() bool { return false }

// ReadText returns no text and no error.
func (Unavailable) ReadText(image.Image) (string, error) { return "", nil }

// FuzzyMatch reports whether needle appears in haystack loosely enough for
// OCR output: case-insensitive, and tolerant of partial recognition by
// requiring only a threshold share of needle's words to be present.
func FuzzyMatch(haystack, needle string, threshold float64) bool {
	haystack = strings.ToLower(haystack)
	words := strings.Fields(strings.ToLower(needle))
	if len(words) == 0 {
		return true
	}
	found := 0
	for _, word := range words {
		if strings.Contains(haystack, word) {
			found++
		}
	}
	return float64(found)/float64(len(words)) >= threshold
}
