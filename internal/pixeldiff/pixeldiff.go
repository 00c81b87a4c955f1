// Package pixeldiff implements the pixel-level comparison primitives used by
// the visual regression engine and the screen stability waiter.
package pixeldiff

import (
	"image"
	"math"

	"github.com/disintegration/imaging"
)

// Options controls how two images are compared.
type Options struct {
	// BlurRadius is the Gaussian blur sigma applied to both images before
	// differencing. Zero disables the pre-filter.
	BlurRadius float64
	// IgnoreAntialiasing counts a pixel as different only when its Euclidean
	// RGB distance exceeds AADistance. When false any nonzero channel delta
	// counts.
	IgnoreAntialiasing bool
	// AADistance is the Euclidean RGB distance cutoff for anti-aliasing noise.
	AADistance float64
}

// Result holds the outcome of a Diff call. The mask is row-major over the
// baseline bounds.
type Result struct {
	Mask        []bool
	Width       int
	Height      int
	DiffPixels  int
	TotalPixels int
}

// DiffPercentage returns the share of differing pixels, 0-100.
func (r *Result) DiffPercentage() float64 {
	if r.TotalPixels == 0 {
		return 0
	}
	return float64(r.DiffPixels) / float64(r.TotalPixels) * 100
}

// ToNRGBA copies an image into the canonical NRGBA pixel buffer the
// comparison loops operate on.
func ToNRGBA(img image.Image) *image.NRGBA {
	return imaging.Clone(img)
}

func prepare(img image.Image, opts Options) *image.NRGBA {
	out := ToNRGBA(img)
	if opts.BlurRadius > 0 {
		out = imaging.Blur(out, opts.BlurRadius)
	}
	return out
}

// Diff compares candidate against baseline. The candidate is resampled to the
// baseline dimensions when they differ; the baseline is never resized.
func Diff(baseline, candidate image.Image, opts Options) *Result {
	w := baseline.Bounds().Dx()
	h := baseline.Bounds().Dy()
	if candidate.Bounds().Dx() != w || candidate.Bounds().Dy() != h {
		candidate = imaging.Resize(candidate, w, h, imaging.Lanczos)
	}

	base := prepare(baseline, opts)
	cand := prepare(candidate, opts)

	res := &Result{
		Mask:        make([]bool, w*h),
		Width:       w,
		Height:      h,
		TotalPixels: w * h,
	}

	for y := 0; y < h; y++ {
		bo := base.PixOffset(0, y)
		co := cand.PixOffset(0, y)
		for x := 0; x < w; x++ {
			dr := float64(base.Pix[bo]) - float64(cand.Pix[co])
			dg := float64(base.Pix[bo+1]) - float64(cand.Pix[co+1])
			db := float64(base.Pix[bo+2]) - float64(cand.Pix[co+2])

			var different bool
			if opts.IgnoreAntialiasing {
				different = math.Sqrt(dr*dr+dg*dg+db*db) > opts.AADistance
			} else {
				different = dr != 0 || dg != 0 || db != 0
			}
			if different {
				res.Mask[y*w+x] = true
				res.DiffPixels++
			}
			bo += 4
			co += 4
		}
	}
	return res
}

// FrameDistance returns the summed absolute per-channel RGB difference between
// two frames. Frames of different dimensions are maximally distant.
func FrameDistance(a, b image.Image) int64 {
	na := ToNRGBA(a)
	nb := ToNRGBA(b)
	w := na.Bounds().Dx()
	h := na.Bounds().Dy()
	if nb.Bounds().Dx() != w || nb.Bounds().Dy() != h {
		return math.MaxInt64
	}

	var sum int64
	for y := 0; y < h; y++ {
		ao := na.PixOffset(0, y)
		bo := nb.PixOffset(0, y)
		for x := 0; x < w; x++ {
			for c := 0; c < 3; c++ {
				d := int64(na.Pix[ao+c]) - int64(nb.Pix[bo+c])
				if d < 0 {
					d = -d
				}
				sum += d
			}
			ao += 4
			bo += 4
		}
	}
	return sum
}
