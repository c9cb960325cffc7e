package enhance

import "math"

// Pixel is a colour in grid channel order (B, G, R). Single channel grids
// only look at the first element.
type Pixel [3]uint8

// Sentinels are the two colours of a binary image.
type Sentinels struct {
	Black Pixel
	White Pixel
}

var DefaultSentinels = Sentinels{
	Black: Pixel{0, 0, 0},
	White: Pixel{255, 255, 255},
}

// Luminance returns the rounded relative luminance of a B, G, R pixel, or the
// value itself for a gray pixel.
func Luminance(px []uint8) uint8 {
	if len(px) == 1 {
		return px[0]
	}

	b := float64(px[ChannelB])
	g := float64(px[ChannelG])
	r := float64(px[ChannelR])

	return uint8(math.Round(0.2126*r + 0.7152*g + 0.0722*b))
}

// ToBinary maps every pixel with luminance below 128 to s.Black and every
// other pixel to s.White.
func ToBinary(g *Grid, s Sentinels) *Grid {
	dst := NewGrid(g.Width, g.Height, g.Channels)
	for row := range g.Height {
		for col := range g.Width {
			if Luminance(g.At(row, col)) < 128 {
				dst.Set(row, col, s.Black[:]...)
			} else {
				dst.Set(row, col, s.White[:]...)
			}
		}
	}
	return dst
}
