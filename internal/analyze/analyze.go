// Package analyze inspects screenshots for expected colors and coarse text
// presence. It backs assertions that survive without OCR.
package analyze

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// VGA primaries used by terminal rendering checks.
var (
	Black   = color.NRGBA{0, 0, 0, 255}
	Red     = color.NRGBA{255, 0, 0, 255}
	Green   = color.NRGBA{0, 255, 0, 255}
	Blue    = color.NRGBA{0, 0, 255, 255}
	Cyan    = color.NRGBA{0, 255, 255, 255}
	Magenta = color.NRGBA{255, 0, 255, 255}
	Yellow  = color.NRGBA{255, 255, 0, 255}
	White   = color.NRGBA{255, 255, 255, 255}
)

// Analyzer counts pixels near target colors with a per-channel tolerance.
type Analyzer struct {
	// ColorTolerance is the maximum per-channel deviation for a match.
	ColorTolerance uint8
	// MinTextPixels is the minimum foreground pixel count for HasText.
	MinTextPixels int
}

func near(value, target, tolerance uint8) bool {
	d := int(value) - int(target)
	if d < 0 {
		d = -d
	}
	return d <= int(tolerance)
}

// CountColor returns how many pixels have every channel within tolerance of c.
func (a *Analyzer) CountColor(img image.Image, c color.NRGBA) int {
	n := imaging.Clone(img)
	w := n.Bounds().Dx()
	h := n.Bounds().Dy()
	count := 0
	for y := 0; y < h; y++ {
		off := n.PixOffset(0, y)
		for x := 0; x < w; x++ {
			if near(n.Pix[off], c.R, a.ColorTolerance) &&
				near(n.Pix[off+1], c.G, a.ColorTolerance) &&
				near(n.Pix[off+2], c.B, a.ColorTolerance) {
				count++
			}
			off += 4
		}
	}
	return count
}

// HasColor reports whether at least minPixels pixels match c.
func (a *Analyzer) HasColor(img image.Image, c color.NRGBA, minPixels int) bool {
	return a.CountColor(img, c) >= minPixels
}

// Named counters for the VGA primaries terminal output is drawn in.

func (a *Analyzer) CountBlack(img image.Image) int   { return a.CountColor(img, Black) }
func (a *Analyzer) CountRed(img image.Image) int     { return a.CountColor(img, Red) }
func (a *Analyzer) CountGreen(img image.Image) int   { return a.CountColor(img, Green) }
func (a *Analyzer) CountBlue(img image.Image) int    { return a.CountColor(img, Blue) }
func (a *Analyzer) CountCyan(img image.Image) int    { return a.CountColor(img, Cyan) }
func (a *Analyzer) CountMagenta(img image.Image) int { return a.CountColor(img, Magenta) }
func (a *Analyzer) CountYellow(img image.Image) int  { return a.CountColor(img, Yellow) }
func (a *Analyzer) CountWhite(img image.Image) int   { return a.CountColor(img, White) }

// BlackRatio returns the share of near-black pixels, 0-1.
func (a *Analyzer) BlackRatio(img image.Image) float64 {
	total := img.Bounds().Dx() * img.Bounds().Dy()
	if total == 0 {
		return 0
	}
	return float64(a.CountColor(img, Black)) / float64(total)
}

// HasText reports whether the image has enough non-background pixels to
// plausibly contain rendered text. A crude stand-in when OCR is unavailable.
func (a *Analyzer) HasText(img image.Image) bool {
	total := img.Bounds().Dx() * img.Bounds().Dy()
	foreground := total - a.CountColor(img, Black)
	return foreground >= a.MinTextPixels
}
