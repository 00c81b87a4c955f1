package pixelproof

import (
	"image/color"
	"testing"
)

func TestAnalyzerFromConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Analyze.ColorTolerance = 10
	cfg.Analyze.MinTextPixels = 2

	a := AnalyzerFromConfig(cfg)
	if a.ColorTolerance != 10 || a.MinTextPixels != 2 {
		t.Fatalf("AnalyzerFromConfig = %+v", a)
	}

	img := testImage(t, 10, 10, color.NRGBA{0, 0, 0, 255})
	img.SetNRGBA(0, 0, color.NRGBA{250, 5, 5, 255})
	img.SetNRGBA(1, 1, color.NRGBA{200, 0, 0, 255})

	// The tight tolerance admits only the near-pure red pixel.
	if got := a.CountRed(img); got != 1 {
		t.Fatalf("CountRed = %d, want 1", got)
	}
	if !a.HasText(img) {
		t.Fatalf("foreground pixels under a low MinTextPixels reported no text")
	}
}

func TestAnalyzerFromConfigClampsTolerance(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Analyze.ColorTolerance = 400
	if a := AnalyzerFromConfig(cfg); a.ColorTolerance != 255 {
		t.Fatalf("ColorTolerance = %d, want 255", a.ColorTolerance)
	}
	cfg.Analyze.ColorTolerance = -1
	if a := AnalyzerFromConfig(cfg); a.ColorTolerance != 0 {
		t.Fatalf("ColorTolerance = %d, want 0", a.ColorTolerance)
	}
}
