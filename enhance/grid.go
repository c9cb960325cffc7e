package enhance

import (
	"fmt"
	"slices"
)

// Channel indices of a colour grid. Pixels are stored blue first.
const (
	ChannelB = 0
	ChannelG = 1
	ChannelR = 2
)

// Grid is a row-major raster of 8-bit channel values.
type Grid struct {
	Width    int
	Height   int
	Channels int
	// Pix holds the samples. The pixel at (row, col) starts at
	// Pix[(row*Width+col)*Channels].
	Pix []uint8
}

// NewGrid allocates a zeroed grid. Only 1 (gray) and 3 (colour) channels are
// supported.
func NewGrid(width, height, channels int) *Grid {
	if channels != 1 && channels != 3 {
		panic(fmt.Sprintf("enhance: unsupported channel count %d", channels))
	}
	if width < 0 || height < 0 {
		panic(fmt.Sprintf("enhance: invalid grid size %dx%d", width, height))
	}

	return &Grid{
		Width:    width,
		Height:   height,
		Channels: channels,
		Pix:      make([]uint8, width*height*channels),
	}
}

func (g *Grid) offset(row, col int) int {
	if row < 0 || row >= g.Height || col < 0 || col >= g.Width {
		panic(fmt.Sprintf("enhance: pixel (%d, %d) out of %dx%d grid", row, col, g.Width, g.Height))
	}
	return (row*g.Width + col) * g.Channels
}

// At returns the pixel at (row, col) as a slice aliasing Pix.
func (g *Grid) At(row, col int) []uint8 {
	i := g.offset(row, col)
	return g.Pix[i : i+g.Channels : i+g.Channels]
}

// Set overwrites the pixel at (row, col). Extra values are ignored.
func (g *Grid) Set(row, col int, px ...uint8) {
	copy(g.At(row, col), px)
}

func (g *Grid) Clone() *Grid {
	c := *g
	c.Pix = slices.Clone(g.Pix)
	return &c
}

// Pixels returns the number of pixels in the grid.
func (g *Grid) Pixels() int {
	return g.Width * g.Height
}

// Channel extracts one channel in row-major order.
func (g *Grid) Channel(ch int) []uint8 {
	if ch < 0 || ch >= g.Channels {
		panic(fmt.Sprintf("enhance: channel %d out of %d", ch, g.Channels))
	}

	res := make([]uint8, 0, g.Pixels())
	for i := ch; i < len(g.Pix); i += g.Channels {
		res = append(res, g.Pix[i])
	}
	return res
}

func (g *Grid) equal(row, col int, px Pixel) bool {
	for c, v := range g.At(row, col) {
		if px[c] != v {
			return false
		}
	}
	return true
}
