package enhance

import (
	"image"
	"image/color"
)

// FromImage converts img to a 3 channel grid in B, G, R order. Alpha is
// discarded, colours are taken non-premultiplied.
func FromImage(img image.Image) *Grid {
	b := img.Bounds()
	g := NewGrid(b.Dx(), b.Dy(), 3)

	if src, ok := img.(*image.RGBA); ok && src.Opaque() {
		for row := range g.Height {
			in := src.Pix[row*src.Stride : row*src.Stride+g.Width*4]
			for col := range g.Width {
				p := in[col*4 : col*4+4]
				g.Set(row, col, p[2], p[1], p[0])
			}
		}
		return g
	}

	for row := range g.Height {
		for col := range g.Width {
			c := color.NRGBAModel.Convert(img.At(b.Min.X+col, b.Min.Y+row)).(color.NRGBA)
			g.Set(row, col, c.B, c.G, c.R)
		}
	}
	return g
}

// FromGray converts img to a single channel grid.
func FromGray(img image.Image) *Grid {
	b := img.Bounds()
	g := NewGrid(b.Dx(), b.Dy(), 1)
	for row := range g.Height {
		for col := range g.Width {
			c := color.GrayModel.Convert(img.At(b.Min.X+col, b.Min.Y+row)).(color.Gray)
			g.Pix[row*g.Width+col] = c.Y
		}
	}
	return g
}

// Image returns an *image.Gray for single channel grids and an opaque
// *image.RGBA otherwise.
func (g *Grid) Image() image.Image {
	r := image.Rect(0, 0, g.Width, g.Height)
	if g.Channels == 1 {
		img := image.NewGray(r)
		copy(img.Pix, g.Pix)
		return img
	}

	img := image.NewRGBA(r)
	for row := range g.Height {
		for col := range g.Width {
			px := g.At(row, col)
			i := img.PixOffset(col, row)
			img.Pix[i+0] = px[ChannelR]
			img.Pix[i+1] = px[ChannelG]
			img.Pix[i+2] = px[ChannelB]
			img.Pix[i+3] = 0xFF
		}
	}
	return img
}
