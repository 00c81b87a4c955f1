package pixelproof

import (
	"context"
	"image"
	"time"

	"pkt.systems/pixelproof/internal/capture"
	"pkt.systems/pixelproof/internal/config"
	"pkt.systems/pixelproof/internal/stability"
	"pkt.systems/pslog"
)

// Source produces a fresh screenshot on each call.
type Source = stability.Source

// WaitResult reports how a stability wait ended.
type WaitResult = stability.WaitResult

// WaitOptions configures WaitForStableScreen. Zero durations and threshold
// fall back to the documented defaults.
type WaitOptions struct {
	StabilityDuration time.Duration
	MaxWait           time.Duration
	PollInterval      time.Duration
	ChangeThreshold   int64
	Logger            pslog.Logger
}

// WaitForStableScreen polls source until consecutive frames stop changing
// for the configured dwell, or MaxWait elapses. Timeout is a normal outcome:
// the result carries the last frame with Stable false.
func WaitForStableScreen(ctx context.Context, source Source, opts WaitOptions) (WaitResult, error) {
	if opts.StabilityDuration == 0 {
		opts.StabilityDuration = config.DefaultStabilityDuration
	}
	if opts.MaxWait == 0 {
		opts.MaxWait = config.DefaultMaxWait
	}
	if opts.PollInterval == 0 {
		opts.PollInterval = config.DefaultPollInterval
	}
	if opts.ChangeThreshold == 0 {
		opts.ChangeThreshold = config.DefaultChangeThreshold
	}
	waiter := &stability.Waiter{
		StabilityDuration: opts.StabilityDuration,
		MaxWait:           opts.MaxWait,
		PollInterval:      opts.PollInterval,
		ChangeThreshold:   opts.ChangeThreshold,
		Logger:            opts.Logger,
	}
	return waiter.Wait(ctx, source)
}

// FileScreenshotSource re-reads an image file on every sample; it suits an
// external capturer that keeps overwriting one file with the latest frame.
func FileScreenshotSource(path string) Source {
	return capture.FileSource(path)
}

// StaticScreenshotSource always returns the same frame.
func StaticScreenshotSource(img image.Image) Source {
	return capture.StaticSource(img)
}
