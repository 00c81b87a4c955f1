package pixeldiff

import (
	"crypto/md5"
	"encoding/hex"
	"image"
	"strings"

	"github.com/disintegration/imaging"
)

const hashThumbSize = 16

// AverageHash computes a short perceptual hash of an image: a 16x16 grayscale
// thumbnail thresholded against its mean intensity, digested to 16 hex chars.
// It is diagnostic metadata only and never influences comparison verdicts.
func AverageHash(img image.Image) string {
	thumb := imaging.Resize(imaging.Grayscale(img), hashThumbSize, hashThumbSize, imaging.Lanczos)

	var sum int
	pixels := make([]uint8, 0, hashThumbSize*hashThumbSize)
	for y := 0; y < hashThumbSize; y++ {
		off := thumb.PixOffset(0, y)
		for x := 0; x < hashThumbSize; x++ {
			p := thumb.Pix[off]
			pixels = append(pixels, p)
			sum += int(p)
			off += 4
		}
	}
	avg := float64(sum) / float64(len(pixels))

	var bits strings.Builder
	bits.Grow(len(pixels))
	for _, p := range pixels {
		if float64(p) > avg {
			bits.WriteByte('1')
		} else {
			bits.WriteByte('0')
		}
	}

	digest := md5.Sum([]byte(bits.String()))
	return hex.EncodeToString(digest[:])[:16]
}
