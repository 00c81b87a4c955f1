// Package regress implements the visual regression engine: baseline
// comparison with perceptual tolerance, failure artifact retention and
// baseline lifecycle management.
package regress

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/disintegration/imaging"

	"pkt.systems/pixelproof/internal/baseline"
	"pkt.systems/pixelproof/internal/pixeldiff"
	"pkt.systems/pslog"
)

// Config configures an Engine.
type Config struct {
	// BaselinesDir holds baseline images and metadata.json.
	BaselinesDir string
	// DiffsDir receives candidate and diff artifacts for failing comparisons.
	DiffsDir string
	// Threshold is the default maximum allowed diff percentage (0-100).
	Threshold float64
	// BlurRadius is the Gaussian pre-filter sigma (0 disables).
	BlurRadius float64
	// IgnoreAntialiasing enables the per-pixel distance tolerance.
	IgnoreAntialiasing bool
	// AADistance is the Euclidean RGB cutoff for anti-aliasing noise.
	AADistance float64
	// Logger receives comparison outcomes. Nil falls back to the env logger.
	Logger pslog.Logger
}

// Result is the outcome of one comparison. Artifact paths are set only when
// the comparison failed.
type Result struct {
	Passed         bool    `json:"passed"`
	DiffPercentage float64 `json:"diff_percentage"`
	DiffPixels     int     `json:"diff_pixels"`
	TotalPixels    int     `json:"total_pixels"`
	BaselinePath   string  `json:"baseline_path,omitempty"`
	ActualPath     string  `json:"actual_path,omitempty"`
	DiffPath       string  `json:"diff_path,omitempty"`
	Message        string  `json:"message"`
}

// Engine compares candidate screenshots against stored baselines. One test
// run owns one Engine; concurrent engines over the same baseline directory
// race on metadata.json.
type Engine struct {
	store    *baseline.Store
	diffsDir string
	cfg      Config
	logger   pslog.Logger
}

// New opens the baseline store and prepares the artifact directory.
func New(cfg Config) (*Engine, error) {
	store, err := baseline.Open(cfg.BaselinesDir)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(cfg.DiffsDir, 0o755); err != nil {
		return nil, fmt.Errorf("create diffs dir: %w", err)
	}
	logger := cfg.Logger
	if logger == nil {
		logger = pslog.LoggerFromEnv()
	}
	return &Engine{
		store:    store,
		diffsDir: cfg.DiffsDir,
		cfg:      cfg,
		logger:   logger,
	}, nil
}

func (e *Engine) diffOptions() pixeldiff.Options {
	return pixeldiff.Options{
		BlurRadius:         e.cfg.BlurRadius,
		IgnoreAntialiasing: e.cfg.IgnoreAntialiasing,
		AADistance:         e.cfg.AADistance,
	}
}

// Compare runs a comparison with the engine's default threshold.
func (e *Engine) Compare(name string, candidate image.Image) (Result, error) {
	return e.CompareWithThreshold(name, candidate, e.cfg.Threshold)
}

// CompareWithThreshold compares candidate against the named baseline.
//
// A never-before-seen name persists the candidate as the new baseline and
// passes; an unreadable baseline yields a failing result rather than an
// error. Artifact or metadata write failures are hard errors.
func (e *Engine) CompareWithThreshold(name string, candidate image.Image, threshold float64) (Result, error) {
	if !e.store.Exists(name) {
		path, err := e.store.Create(name, candidate, pixeldiff.AverageHash(candidate))
		if err != nil {
			return Result{}, err
		}
		e.logger.Info("new baseline created", "name", name, "path", path)
		return Result{
			Passed:       true,
			TotalPixels:  candidate.Bounds().Dx() * candidate.Bounds().Dy(),
			BaselinePath: path,
			Message:      fmt.Sprintf("new baseline created: %s", path),
		}, nil
	}

	base, err := e.store.Load(name)
	if err != nil {
		e.logger.Warn("baseline load failed", "name", name, "err", err)
		return Result{
			Passed:         false,
			DiffPercentage: 100,
			Message:        fmt.Sprintf("failed to load baseline: %v", err),
		}, nil
	}

	diff := pixeldiff.Diff(base, candidate, e.diffOptions())
	pct := diff.DiffPercentage()
	passed := pct <= threshold

	result := Result{
		Passed:         passed,
		DiffPercentage: pct,
		DiffPixels:     diff.DiffPixels,
		TotalPixels:    diff.TotalPixels,
		BaselinePath:   e.store.Path(name),
		Message:        fmt.Sprintf("diff: %.2f%% (%d/%d pixels)", pct, diff.DiffPixels, diff.TotalPixels),
	}

	if passed {
		e.logger.Debug("comparison passed", "name", name, "diff_pct", pct)
		return result, nil
	}

	ts := time.Now().Unix()
	result.ActualPath = filepath.Join(e.diffsDir, fmt.Sprintf("%s_actual_%d.png", name, ts))
	result.DiffPath = filepath.Join(e.diffsDir, fmt.Sprintf("%s_diff_%d.png", name, ts))
	if err := imaging.Save(candidate, result.ActualPath); err != nil {
		return Result{}, fmt.Errorf("save candidate artifact: %w", err)
	}
	if err := imaging.Save(pixeldiff.RenderDiff(base, diff), result.DiffPath); err != nil {
		return Result{}, fmt.Errorf("save diff artifact: %w", err)
	}

	var msg strings.Builder
	fmt.Fprintf(&msg, "%s - exceeds threshold of %g%%", result.Message, threshold)
	fmt.Fprintf(&msg, "\n  baseline: %s", result.BaselinePath)
	fmt.Fprintf(&msg, "\n  actual: %s", result.ActualPath)
	fmt.Fprintf(&msg, "\n  diff: %s", result.DiffPath)
	result.Message = msg.String()

	e.logger.Warn("comparison failed",
		"name", name,
		"diff_pct", pct,
		"diff_pixels", diff.DiffPixels,
		"threshold", threshold,
		"diff_artifact", result.DiffPath)
	return result, nil
}

// UpdateBaseline unconditionally overwrites (or creates) the named baseline.
func (e *Engine) UpdateBaseline(name string, img image.Image) (string, error) {
	path, err := e.store.Update(name, img, pixeldiff.AverageHash(img))
	if err != nil {
		return "", err
	}
	e.logger.Info("baseline updated", "name", name, "path", path)
	return path, nil
}

// DeleteBaseline removes the named baseline. Unknown names return false.
func (e *Engine) DeleteBaseline(name string) (bool, error) {
	deleted, err := e.store.Delete(name)
	if err != nil {
		return deleted, err
	}
	if deleted {
		e.logger.Info("baseline deleted", "name", name)
	}
	return deleted, nil
}

// ListBaselines enumerates baselines from disk with their metadata.
func (e *Engine) ListBaselines() (map[string]baseline.Meta, error) {
	return e.store.List()
}

// CleanupDiffs deletes diff artifacts older than maxAge and returns how many
// files were removed.
func (e *Engine) CleanupDiffs(maxAge time.Duration) (int, error) {
	entries, err := os.ReadDir(e.diffsDir)
	if err != nil {
		return 0, fmt.Errorf("list diffs: %w", err)
	}
	cutoff := time.Now().Add(-maxAge)
	deleted := 0
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".png") {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.ModTime().Before(cutoff) {
			if err := os.Remove(filepath.Join(e.diffsDir, entry.Name())); err != nil {
				return deleted, fmt.Errorf("remove diff artifact: %w", err)
			}
			deleted++
		}
	}
	if deleted > 0 {
		e.logger.Info("diff artifacts cleaned", "deleted", deleted, "max_age", maxAge)
	}
	return deleted, nil
}
