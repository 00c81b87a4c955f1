package pixelproof

import (
	"image"
	"image/color"
	"path/filepath"
	"strings"
	"testing"
)

func testImage(t *testing.T, w, h int, c color.NRGBA) *image.NRGBA {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func TestRegressSDKFlow(t *testing.T) {
	dir := t.TempDir()
	opts := EngineOptions{
		BaselinesDir: filepath.Join(dir, "baselines"),
		DiffsDir:     filepath.Join(dir, "diffs"),
	}
	imgBlack := testImage(t, 60, 40, color.NRGBA{0, 0, 0, 255})
	imgWhite := testImage(t, 60, 40, color.NRGBA{255, 255, 255, 255})

	result, err := Compare("shell_prompt", imgBlack, opts)
	if err != nil {
		t.Fatalf("Compare: %v", err)
	}
	if !result.Passed || !strings.Contains(result.Message, "new baseline created") {
		t.Fatalf("first sight: %+v", result)
	}

	result, err = Compare("shell_prompt", imgWhite, opts)
	if err != nil {
		t.Fatalf("Compare: %v", err)
	}
	if result.Passed {
		t.Fatalf("inverted screen should fail at the default threshold")
	}
	if result.ActualPath == "" || result.DiffPath == "" {
		t.Fatalf("failing result missing artifacts: %+v", result)
	}

	if _, err := UpdateBaseline("shell_prompt", imgWhite, opts); err != nil {
		t.Fatalf("UpdateBaseline: %v", err)
	}
	result, err = Compare("shell_prompt", imgWhite, opts)
	if err != nil {
		t.Fatalf("Compare: %v", err)
	}
	if !result.Passed {
		t.Fatalf("comparison against refreshed baseline should pass: %+v", result)
	}

	list, err := ListBaselines(opts)
	if err != nil {
		t.Fatalf("ListBaselines: %v", err)
	}
	if _, ok := list["shell_prompt"]; !ok {
		t.Fatalf("baseline missing from list")
	}

	deleted, err := DeleteBaseline("shell_prompt", opts)
	if err != nil {
		t.Fatalf("DeleteBaseline: %v", err)
	}
	if !deleted {
		t.Fatalf("expected delete to report true")
	}

	count, err := CleanupDiffs(0, opts)
	if err != nil {
		t.Fatalf("CleanupDiffs: %v", err)
	}
	if count == 0 {
		t.Fatalf("expected failure artifacts to be cleaned with zero max age")
	}
}

func TestStrictZeroToleranceComparison(t *testing.T) {
	dir := t.TempDir()
	engine, err := NewEngine(EngineOptions{
		BaselinesDir:     filepath.Join(dir, "baselines"),
		DiffsDir:         filepath.Join(dir, "diffs"),
		StrictPixelMatch: true,
	})
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}

	base := testImage(t, 50, 50, color.NRGBA{0, 0, 0, 255})
	if _, err := engine.Compare("cursor_cell", base); err != nil {
		t.Fatalf("Compare: %v", err)
	}

	// One pixel nudged by a single channel step, far below the default
	// anti-aliasing cutoff.
	nudged := testImage(t, 50, 50, color.NRGBA{0, 0, 0, 255})
	nudged.SetNRGBA(10, 10, color.NRGBA{1, 0, 0, 255})

	result, err := engine.CompareWithThreshold("cursor_cell", nudged, 0)
	if err != nil {
		t.Fatalf("CompareWithThreshold: %v", err)
	}
	if result.Passed {
		t.Fatalf("strict zero-threshold comparison passed: %+v", result)
	}
	if result.DiffPixels != 1 {
		t.Fatalf("DiffPixels = %d, want 1", result.DiffPixels)
	}
}
