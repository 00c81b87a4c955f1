// Package stability synchronizes test assertions with asynchronous rendering
// by polling a screenshot source until consecutive frames stop changing.
package stability

import (
	"context"
	"fmt"
	"image"
	"time"

	"pkt.systems/pixelproof/internal/pixeldiff"
	"pkt.systems/pslog"
)

// Source produces a fresh screenshot on each call.
type Source func() (image.Image, error)

// Waiter polls a Source until the screen is quiescent or MaxWait elapses.
type Waiter struct {
	// StabilityDuration is how long consecutive frames must stay under the
	// change threshold before the screen counts as stable.
	StabilityDuration time.Duration
	// MaxWait is the hard timeout. Reaching it is a normal outcome.
	MaxWait time.Duration
	// PollInterval is the time between samples.
	PollInterval time.Duration
	// ChangeThreshold is the minimum summed L1 pixel distance between
	// consecutive frames that counts as a change. It must sit above
	// cursor-blink noise and below real content changes.
	ChangeThreshold int64
	// Logger receives wait outcomes. Nil falls back to the env logger.
	Logger pslog.Logger
}

// WaitResult reports how a wait ended. Image is always the best-effort last
// frame; Stable distinguishes a confirmed dwell from a timeout.
type WaitResult struct {
	Image   image.Image
	Stable  bool
	Elapsed time.Duration
	Samples int
}

// Wait blocks until the source reports a quiescent frame or MaxWait elapses.
// Timeout is not an error: the result carries the last sampled frame with
// Stable false. Capture failures and context cancellation abort the wait.
//
// Any detected change restarts the dwell clock; there is no partial credit,
// which keeps mid-animation frames from being reported as stable.
func (w *Waiter) Wait(ctx context.Context, source Source) (WaitResult, error) {
	logger := w.Logger
	if logger == nil {
		logger = pslog.LoggerFromEnv()
	}

	prev, err := source()
	if err != nil {
		return WaitResult{}, fmt.Errorf("capture screenshot: %w", err)
	}
	samples := 1
	var stableSince time.Time
	start := time.Now()

	for time.Since(start) < w.MaxWait {
		if err := sleep(ctx, w.PollInterval); err != nil {
			return WaitResult{}, err
		}
		frame, err := source()
		if err != nil {
			return WaitResult{}, fmt.Errorf("capture screenshot: %w", err)
		}
		samples++

		now := time.Now()
		if pixeldiff.FrameDistance(frame, prev) < w.ChangeThreshold {
			if stableSince.IsZero() {
				stableSince = now
			} else if now.Sub(stableSince) >= w.StabilityDuration {
				elapsed := time.Since(start)
				logger.Debug("screen stable", "elapsed", elapsed, "samples", samples)
				return WaitResult{Image: frame, Stable: true, Elapsed: elapsed, Samples: samples}, nil
			}
		} else {
			stableSince = time.Time{}
		}
		prev = frame
	}

	elapsed := time.Since(start)
	logger.Debug("stability wait timed out", "elapsed", elapsed, "samples", samples)
	return WaitResult{Image: prev, Stable: false, Elapsed: elapsed, Samples: samples}, nil
}

func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
