// Package pixelproof is a visual regression toolkit for black-box UI testing
// of the TerminalDX12 terminal emulator: baseline screenshot storage,
// perceptual pixel diffing with anti-aliasing tolerance, failure artifact
// retention and a screen stability waiter for synchronizing with
// asynchronous rendering.
package pixelproof

import (
	"image"
	"time"

	"pkt.systems/pixelproof/internal/baseline"
	"pkt.systems/pixelproof/internal/config"
	"pkt.systems/pixelproof/internal/regress"
	"pkt.systems/pslog"
)

// Engine compares candidate screenshots against stored baselines.
type Engine = regress.Engine

// ComparisonResult is the outcome of one comparison.
type ComparisonResult = regress.Result

// BaselineMeta is the stored provenance record for one baseline.
type BaselineMeta = baseline.Meta

// EngineOptions configures NewEngine. Zero values mean "use the default":
// empty directories fall back to the default layout under the config
// directory, a zero Threshold to the default diff percentage and a zero
// AADistance to the default anti-aliasing cutoff. For an exact match set
// StrictPixelMatch, which disables the anti-aliasing tolerance entirely,
// and pass the per-call threshold 0 to Engine.CompareWithThreshold.
type EngineOptions struct {
	BaselinesDir     string
	DiffsDir         string
	Threshold        float64
	BlurRadius       float64
	StrictPixelMatch bool
	AADistance       float64
	Logger           pslog.Logger
}

// NewEngine builds a visual regression engine. One test run owns one engine;
// sharing a baseline directory between concurrent engines is unsafe.
func NewEngine(opts EngineOptions) (*Engine, error) {
	if opts.BaselinesDir == "" {
		opts.BaselinesDir = config.DefaultBaselinesDir()
	}
	if opts.DiffsDir == "" {
		opts.DiffsDir = config.DefaultDiffsDir()
	}
	if opts.Threshold == 0 {
		opts.Threshold = config.DefaultDiffThreshold
	}
	if opts.AADistance == 0 {
		opts.AADistance = config.DefaultAADistance
	}
	return regress.New(regress.Config{
		BaselinesDir:       opts.BaselinesDir,
		DiffsDir:           opts.DiffsDir,
		Threshold:          opts.Threshold,
		BlurRadius:         opts.BlurRadius,
		IgnoreAntialiasing: !opts.StrictPixelMatch,
		AADistance:         opts.AADistance,
		Logger:             opts.Logger,
	})
}

// EngineFromConfig builds an engine from a loaded configuration.
func EngineFromConfig(cfg Config, logger pslog.Logger) (*Engine, error) {
	return regress.New(regress.Config{
		BaselinesDir:       cfg.Baselines.Dir,
		DiffsDir:           cfg.Baselines.DiffsDir,
		Threshold:          cfg.Compare.Threshold,
		BlurRadius:         cfg.Compare.BlurRadius,
		IgnoreAntialiasing: cfg.Compare.IgnoreAntialiasing,
		AADistance:         cfg.Compare.AADistance,
		Logger:             logger,
	})
}

// Compare runs a one-shot comparison with a throwaway engine.
func Compare(name string, candidate image.Image, opts EngineOptions) (ComparisonResult, error) {
	engine, err := NewEngine(opts)
	if err != nil {
		return ComparisonResult{}, err
	}
	return engine.Compare(name, candidate)
}

// UpdateBaseline overwrites (or creates) a baseline with a throwaway engine.
func UpdateBaseline(name string, img image.Image, opts EngineOptions) (string, error) {
	engine, err := NewEngine(opts)
	if err != nil {
		return "", err
	}
	return engine.UpdateBaseline(name, img)
}

// DeleteBaseline removes a baseline with a throwaway engine.
func DeleteBaseline(name string, opts EngineOptions) (bool, error) {
	engine, err := NewEngine(opts)
	if err != nil {
		return false, err
	}
	return engine.DeleteBaseline(name)
}

// ListBaselines enumerates baselines with a throwaway engine.
func ListBaselines(opts EngineOptions) (map[string]BaselineMeta, error) {
	engine, err := NewEngine(opts)
	if err != nil {
		return nil, err
	}
	return engine.ListBaselines()
}

// CleanupDiffs removes aged diff artifacts with a throwaway engine.
func CleanupDiffs(maxAge time.Duration, opts EngineOptions) (int, error) {
	engine, err := NewEngine(opts)
	if err != nil {
		return 0, err
	}
	return engine.CleanupDiffs(maxAge)
}
