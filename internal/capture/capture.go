// Package capture adapts screenshot producers to the stability waiter's
// Source contract. The actual window capture lives outside this module; an
// external grabber writes frames somewhere this package can read them.
package capture

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"

	"pkt.systems/pixelproof/internal/stability"
)

// FileSource re-reads an image file on every call. It suits an external
// capturer that keeps overwriting a single file with the latest frame.
func FileSource(path string) stability.Source {
	return func() (image.Image, error) {
		img, err := imaging.Open(path)
		if err != nil {
			return nil, fmt.Errorf("read frame %s: %w", path, err)
		}
		return img, nil
	}
}

// StaticSource always returns the same frame.
func StaticSource(img image.Image) stability.Source {
	return func() (image.Image, error) {
		return img, nil
	}
}

// SequenceSource plays frames in order and repeats the last one forever. An
// empty sequence is a capture failure on every call.
func SequenceSource(frames ...image.Image) stability.Source {
	i := 0
	return func() (image.Image, error) {
		if len(frames) == 0 {
			return nil, fmt.Errorf("no frames in sequence")
		}
		frame := frames[i]
		if i < len(frames)-1 {
			i++
		}
		return frame, nil
	}
}
