package pixelproof

import (
	"image"

	"pkt.systems/pixelproof/internal/analyze"
	"pkt.systems/pixelproof/internal/config"
	"pkt.systems/pixelproof/internal/ocr"
)

// Analyzer counts pixels near target colors for content assertions.
type Analyzer = analyze.Analyzer

// OCRReader is the optional text-extraction capability.
type OCRReader = ocr.Reader

// OCRUnavailable is the no-op reader used when no OCR backend is wired in.
type OCRUnavailable = ocr.Unavailable

// NewAnalyzer builds an analyzer with the documented default tolerances.
func NewAnalyzer() *Analyzer {
	return &Analyzer{
		ColorTolerance: config.DefaultColorTolerance,
		MinTextPixels:  config.DefaultMinTextPixels,
	}
}

// AnalyzerFromConfig builds an analyzer from a loaded configuration.
func AnalyzerFromConfig(cfg Config) *Analyzer {
	tol := cfg.Analyze.ColorTolerance
	if tol < 0 {
		tol = 0
	}
	if tol > 255 {
		tol = 255
	}
	return &Analyzer{
		ColorTolerance: uint8(tol),
		MinTextPixels:  cfg.Analyze.MinTextPixels,
	}
}

// OCRTextPresent reports whether needle is present in reader's extraction of
// img. When OCR is unavailable it returns false with ok false so call sites
// can fall back to pixel-level checks instead of failing.
func OCRTextPresent(reader OCRReader, img image.Image, needle string, threshold float64) (present, ok bool, err error) {
	if reader == nil || !reader.Available() {
		return false, false, nil
	}
	text, err := reader.ReadText(img)
	if err != nil {
		return false, false, err
	}
	return ocr.FuzzyMatch(text, needle, threshold), true, nil
}
