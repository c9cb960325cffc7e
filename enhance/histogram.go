package enhance

// Bins is the number of intensity levels of an 8-bit channel.
const Bins = 256

// Histogram counts how often each intensity occurs.
type Histogram [Bins]int

// Cumulative is the running sum of a Histogram.
type Cumulative [Bins]int

func BuildHistogram(samples []uint8) Histogram {
	var h Histogram
	for _, v := range samples {
		h[v]++
	}
	return h
}

// ChannelHistogram counts the values of channel ch over the whole grid.
func ChannelHistogram(g *Grid, ch int) Histogram {
	return BuildHistogram(g.Channel(ch))
}

// LuminanceHistogram is the histogram of the grid seen as grayscale.
func LuminanceHistogram(g *Grid) Histogram {
	var h Histogram
	for row := range g.Height {
		for col := range g.Width {
			h[Luminance(g.At(row, col))]++
		}
	}
	return h
}

func (h Histogram) Total() int {
	n := 0
	for _, v := range h {
		n += v
	}
	return n
}

func CumulativeDistribution(h Histogram) Cumulative {
	var c Cumulative
	c[0] = h[0]
	for i := 1; i < Bins; i++ {
		c[i] = c[i-1] + h[i]
	}
	return c
}

// IdealHistogram returns the flattest histogram holding pixelCount samples.
// The pixelCount%256 samples that do not divide evenly go one per bin to a
// block centred in the intensity range.
func IdealHistogram(pixelCount int) Histogram {
	base := pixelCount / Bins
	remainder := pixelCount - Bins*base

	var h Histogram
	for i := range h {
		h[i] = base
	}

	start := (Bins - remainder) / 2
	for i := start; i < start+remainder; i++ {
		h[i]++
	}
	return h
}
