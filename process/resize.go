package process

import (
	"image"
	"log/slog"
	"math"

	"golang.org/x/image/draw"
)

// shrink scales img down so it fits in maxWidth x maxHeight, keeping its
// aspect ratio. A zero limit leaves that side unconstrained and images that
// already fit are returned as they are.
func shrink(logger *slog.Logger, img image.Image, maxWidth, maxHeight int) image.Image {
	sr := img.Bounds()
	srcWidth, srcHeight := float64(sr.Dx()), float64(sr.Dy())

	scale := 1.0
	if maxWidth > 0 && srcWidth > float64(maxWidth) {
		scale = float64(maxWidth) / srcWidth
	}
	if maxHeight > 0 && srcHeight*scale > float64(maxHeight) {
		scale = float64(maxHeight) / srcHeight
	}
	if scale == 1 {
		return img
	}

	dr := image.Rect(0, 0,
		max(1, int(math.Round(srcWidth*scale))),
		max(1, int(math.Round(srcHeight*scale))))

	logger.Info("resizing", "width", dr.Dx(), "height", dr.Dy())
	dest := image.NewRGBA(dr)
	draw.CatmullRom.Scale(dest, dr, img, sr, draw.Src, nil)
	return dest
}
