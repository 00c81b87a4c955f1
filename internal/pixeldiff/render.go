package pixeldiff

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// RenderDiff produces the human-viewable diff visualization: the baseline
// blended halfway toward neutral gray, then blended halfway with a red
// overlay restricted to the differing pixels.
func RenderDiff(baseline image.Image, res *Result) *image.NRGBA {
	base := imaging.Clone(baseline)
	out := imaging.New(res.Width, res.Height, color.NRGBA{})

	for y := 0; y < res.Height; y++ {
		bo := base.PixOffset(0, y)
		oo := out.PixOffset(0, y)
		for x := 0; x < res.Width; x++ {
			// Fade unchanged content toward gray so differences stand out.
			fr := (uint16(base.Pix[bo]) + 128) / 2
			fg := (uint16(base.Pix[bo+1]) + 128) / 2
			fb := (uint16(base.Pix[bo+2]) + 128) / 2

			var or, og, ob uint16
			if res.Mask[y*res.Width+x] {
				or = 255
			}
			out.Pix[oo] = uint8((fr + or) / 2)
			out.Pix[oo+1] = uint8((fg + og) / 2)
			out.Pix[oo+2] = uint8((fb + ob) / 2)
			out.Pix[oo+3] = 255
			bo += 4
			oo += 4
		}
	}
	return out
}
