package enhance

import "slices"

// SampleWindow collects the neighbourhood of (row, col) one channel at a
// time. Offsets run over [-size/2, size/2) on both axes, so each sequence
// holds (size/2*2)^2 values and the window leans towards the top-left.
func SampleWindow(g *Grid, row, col, size int) [][]uint8 {
	return sampleWindow(g, row, col, size, nil)
}

func sampleWindow(g *Grid, row, col, size int, buf [][]uint8) [][]uint8 {
	h := size / 2
	if len(buf) != g.Channels {
		buf = make([][]uint8, g.Channels)
	}
	for c := range buf {
		buf[c] = buf[c][:0]
	}

	for i := row - h; i < row+h; i++ {
		for j := col - h; j < col+h; j++ {
			for c, v := range g.At(i, j) {
				buf[c] = append(buf[c], v)
			}
		}
	}
	return buf
}

// Aggregator reduces the values of one window channel to a single sample.
type Aggregator func(values []uint8) uint8

// Mean is the arithmetic mean rounded half away from zero.
func Mean(values []uint8) uint8 {
	sum := 0
	for _, v := range values {
		sum += int(v)
	}
	n := len(values)
	return uint8((2*sum + n) / (2 * n))
}

// Median sorts a copy of values and returns the element at len/2, the upper
// median for even counts.
func Median(values []uint8) uint8 {
	sorted := slices.Clone(values)
	slices.Sort(sorted)
	return sorted[len(sorted)/2]
}

func MeanFilter(g *Grid, size int) (*Grid, error) {
	return Filter("mean filter", g, size, Mean)
}

func MedianFilter(g *Grid, size int) (*Grid, error) {
	return Filter("median filter", g, size, Median)
}

// Filter replaces every pixel at least size/2 away from the border with the
// per-channel aggregate of its window. Windows are always read from g, which
// is left untouched; border pixels are copied as they are.
func Filter(op string, g *Grid, size int, agg Aggregator) (*Grid, error) {
	if err := checkWindow(op, g, size); err != nil {
		return nil, err
	}

	dst := g.Clone()
	border := size / 2

	var window [][]uint8
	px := make([]uint8, g.Channels)
	for row := border; row < g.Height-border; row++ {
		for col := border; col < g.Width-border; col++ {
			window = sampleWindow(g, row, col, size, window)
			for c, values := range window {
				px[c] = agg(values)
			}
			dst.Set(row, col, px...)
		}
	}
	return dst, nil
}

// A window of size 1 samples nothing with the half-open offsets, so the
// smallest usable window is 3.
func checkWindow(op string, g *Grid, size int) error {
	if size%2 == 0 || size < 3 {
		return &FilterError{Op: op, Size: size, Width: g.Width, Height: g.Height, Err: ErrInvalidWindowSize}
	}
	if g.Width < size || g.Height < size {
		return &FilterError{Op: op, Size: size, Width: g.Width, Height: g.Height, Err: ErrImageTooSmall}
	}
	return nil
}
