package pixeldiff

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

func withBlock(t *testing.T, img *image.NRGBA, x0, y0, w, h int, c color.NRGBA) *image.NRGBA {
	t.Helper()
	for y := y0; y < y0+h; y++ {
		for x := x0; x < x0+w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

var (
	black = color.NRGBA{0, 0, 0, 255}
	white = color.NRGBA{255, 255, 255, 255}
)

func TestToNRGBACopies(t *testing.T) {
	src := solidImage(t, 4, 4, black)
	got := ToNRGBA(src)
	if got.Bounds().Dx() != 4 || got.Bounds().Dy() != 4 {
		t.Fatalf("ToNRGBA bounds = %v", got.Bounds())
	}
	got.SetNRGBA(0, 0, white)
	if src.NRGBAAt(0, 0) != black {
		t.Fatalf("ToNRGBA shares pixel storage with its input")
	}
}

func TestDiffIdenticalImages(t *testing.T) {
	a := solidImage(t, 100, 100, black)
	b := solidImage(t, 100, 100, black)

	res := Diff(a, b, Options{IgnoreAntialiasing: true, AADistance: 25})
	if res.DiffPixels != 0 {
		t.Fatalf("DiffPixels = %d, want 0", res.DiffPixels)
	}
	if res.TotalPixels != 10000 {
		t.Fatalf("TotalPixels = %d, want 10000", res.TotalPixels)
	}
	if res.DiffPercentage() != 0 {
		t.Fatalf("DiffPercentage = %v, want 0", res.DiffPercentage())
	}
}

func TestDiffOppositeImages(t *testing.T) {
	a := solidImage(t, 100, 100, black)
	b := solidImage(t, 100, 100, white)

	res := Diff(a, b, Options{IgnoreAntialiasing: true, AADistance: 25})
	if res.DiffPixels != res.TotalPixels {
		t.Fatalf("DiffPixels = %d, want %d", res.DiffPixels, res.TotalPixels)
	}
	if res.DiffPercentage() != 100 {
		t.Fatalf("DiffPercentage = %v, want 100", res.DiffPercentage())
	}
}

func TestDiffLocalizedBlock(t *testing.T) {
	a := solidImage(t, 100, 100, black)
	b := withBlock(t, solidImage(t, 100, 100, black), 0, 0, 10, 10, white)

	res := Diff(a, b, Options{IgnoreAntialiasing: true, AADistance: 25})
	if res.DiffPixels != 100 {
		t.Fatalf("DiffPixels = %d, want 100", res.DiffPixels)
	}
	if got := res.DiffPercentage(); got != 1.0 {
		t.Fatalf("DiffPercentage = %v, want 1.0", got)
	}
	if !res.Mask[0] {
		t.Fatalf("expected origin pixel flagged")
	}
	if res.Mask[99*100+99] {
		t.Fatalf("unexpected flag on far corner")
	}
}

func TestDiffAntialiasingTolerance(t *testing.T) {
	a := solidImage(t, 10, 10, color.NRGBA{100, 100, 100, 255})
	b := solidImage(t, 10, 10, color.NRGBA{110, 110, 110, 255})

	// Euclidean distance is sqrt(3*10^2) ~ 17.3, under the default cutoff.
	res := Diff(a, b, Options{IgnoreAntialiasing: true, AADistance: 25})
	if res.DiffPixels != 0 {
		t.Fatalf("DiffPixels = %d, want 0 with tolerance", res.DiffPixels)
	}

	strict := Diff(a, b, Options{IgnoreAntialiasing: false})
	if strict.DiffPixels != strict.TotalPixels {
		t.Fatalf("DiffPixels = %d, want all without tolerance", strict.DiffPixels)
	}
}

func TestDiffResizesCandidateToBaseline(t *testing.T) {
	a := solidImage(t, 100, 100, white)
	b := solidImage(t, 200, 200, white)

	res := Diff(a, b, Options{IgnoreAntialiasing: true, AADistance: 25})
	if res.TotalPixels != 10000 {
		t.Fatalf("TotalPixels = %d, want baseline pixel count", res.TotalPixels)
	}
	if res.DiffPercentage() > 1 {
		t.Fatalf("DiffPercentage = %v, want near 0 for scaled identical content", res.DiffPercentage())
	}
}

func TestDiffBlurSuppressesSinglePixelNoise(t *testing.T) {
	a := solidImage(t, 50, 50, black)
	b := withBlock(t, solidImage(t, 50, 50, black), 25, 25, 1, 1, white)

	sharp := Diff(a, b, Options{IgnoreAntialiasing: true, AADistance: 25})
	blurred := Diff(a, b, Options{BlurRadius: 2.0, IgnoreAntialiasing: true, AADistance: 25})
	if blurred.DiffPixels >= sharp.DiffPixels && sharp.DiffPixels > 0 {
		t.Fatalf("blurred diff %d not below sharp diff %d", blurred.DiffPixels, sharp.DiffPixels)
	}
}

func TestFrameDistance(t *testing.T) {
	a := solidImage(t, 10, 10, black)
	b := solidImage(t, 10, 10, black)
	if got := FrameDistance(a, b); got != 0 {
		t.Fatalf("FrameDistance = %d, want 0", got)
	}

	c := withBlock(t, solidImage(t, 10, 10, black), 0, 0, 1, 1, white)
	want := int64(3 * 255)
	if got := FrameDistance(a, c); got != want {
		t.Fatalf("FrameDistance = %d, want %d", got, want)
	}
}

func TestRenderDiffDimensionsAndHighlight(t *testing.T) {
	a := solidImage(t, 20, 20, black)
	b := withBlock(t, solidImage(t, 20, 20, black), 0, 0, 5, 5, white)

	res := Diff(a, b, Options{IgnoreAntialiasing: true, AADistance: 25})
	vis := RenderDiff(a, res)
	if vis.Bounds().Dx() != 20 || vis.Bounds().Dy() != 20 {
		t.Fatalf("render bounds = %v, want 20x20", vis.Bounds())
	}

	flagged := vis.NRGBAAt(0, 0)
	clean := vis.NRGBAAt(19, 19)
	if flagged.R <= clean.R {
		t.Fatalf("flagged pixel R=%d not redder than clean R=%d", flagged.R, clean.R)
	}
	if flagged.G != clean.G || flagged.B != clean.B {
		t.Fatalf("highlight should only raise the red channel")
	}
}

func TestAverageHashStability(t *testing.T) {
	a := solidImage(t, 100, 100, black)
	b := withBlock(t, solidImage(t, 100, 100, black), 0, 0, 50, 100, white)

	ha := AverageHash(a)
	if len(ha) != 16 {
		t.Fatalf("hash length = %d, want 16", len(ha))
	}
	if ha != AverageHash(solidImage(t, 100, 100, black)) {
		t.Fatalf("hash not deterministic for identical content")
	}
	if ha == AverageHash(b) {
		t.Fatalf("hash should differ for structurally different images")
	}
}
