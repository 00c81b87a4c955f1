package analyze

import (
	"image"
	"image/color"
	"testing"
)

func solidImage(t *testing.T, w, h int, c color.NRGBA) *image.NRGBA {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func TestCountColorWithTolerance(t *testing.T) {
	a := &Analyzer{ColorTolerance: 50, MinTextPixels: 100}
	img := solidImage(t, 10, 10, color.NRGBA{0, 0, 0, 255})
	img.SetNRGBA(3, 3, color.NRGBA{230, 20, 20, 255})
	img.SetNRGBA(4, 4, color.NRGBA{255, 0, 0, 255})

	if got := a.CountColor(img, Red); got != 2 {
		t.Fatalf("CountColor(Red) = %d, want 2", got)
	}
	if got := a.CountColor(img, Black); got != 98 {
		t.Fatalf("CountColor(Black) = %d, want 98", got)
	}
	if !a.HasColor(img, Red, 2) {
		t.Fatalf("HasColor(Red, 2) = false")
	}
	if a.HasColor(img, Green, 1) {
		t.Fatalf("HasColor(Green, 1) = true")
	}
}

func TestNamedColorCounters(t *testing.T) {
	a := &Analyzer{ColorTolerance: 50}
	img := solidImage(t, 10, 10, color.NRGBA{0, 0, 0, 255})
	img.SetNRGBA(1, 1, color.NRGBA{255, 0, 0, 255})
	img.SetNRGBA(2, 2, color.NRGBA{230, 20, 20, 255})
	img.SetNRGBA(3, 3, color.NRGBA{0, 255, 0, 255})

	if got := a.CountRed(img); got != 2 {
		t.Fatalf("CountRed = %d, want 2", got)
	}
	if got := a.CountGreen(img); got != 1 {
		t.Fatalf("CountGreen = %d, want 1", got)
	}
	if got := a.CountBlack(img); got != 97 {
		t.Fatalf("CountBlack = %d, want 97", got)
	}
	if got := a.CountYellow(img); got != 0 {
		t.Fatalf("CountYellow = %d, want 0", got)
	}
}

func TestBlackRatio(t *testing.T) {
	a := &Analyzer{ColorTolerance: 50}
	img := solidImage(t, 10, 10, color.NRGBA{0, 0, 0, 255})
	for x := 0; x < 10; x++ {
		for y := 0; y < 5; y++ {
			img.SetNRGBA(x, y, color.NRGBA{255, 255, 255, 255})
		}
	}

	if got := a.BlackRatio(img); got != 0.5 {
		t.Fatalf("BlackRatio = %v, want 0.5", got)
	}
}

func TestHasText(t *testing.T) {
	a := &Analyzer{ColorTolerance: 50, MinTextPixels: 100}
	empty := solidImage(t, 100, 100, color.NRGBA{0, 0, 0, 255})
	if a.HasText(empty) {
		t.Fatalf("blank screen reported text")
	}

	withGlyphs := solidImage(t, 100, 100, color.NRGBA{0, 0, 0, 255})
	for i := 0; i < 150; i++ {
		withGlyphs.SetNRGBA(i%100, i/100, color.NRGBA{200, 200, 200, 255})
	}
	if !a.HasText(withGlyphs) {
		t.Fatalf("screen with 150 foreground pixels reported no text")
	}
}
