package enhance

import "math/rand"

// grayGrid builds a single channel grid from rows of values.
func grayGrid(rows ...[]uint8) *Grid {
	g := NewGrid(len(rows[0]), len(rows), 1)
	for r, vals := range rows {
		copy(g.Pix[r*g.Width:], vals)
	}
	return g
}

func randomGrid(seed int64, width, height, channels int) *Grid {
	rng := rand.New(rand.NewSource(seed))
	g := NewGrid(width, height, channels)
	for i := range g.Pix {
		g.Pix[i] = uint8(rng.Intn(256))
	}
	return g
}
