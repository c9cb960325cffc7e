package enhance

// LookupTable maps an input intensity to an output intensity.
type LookupTable [Bins]uint8

// Apply remaps channel ch of g in place.
func (t *LookupTable) Apply(g *Grid, ch int) {
	for i := ch; i < len(g.Pix); i += g.Channels {
		g.Pix[i] = t[g.Pix[i]]
	}
}

// NearestMatch maps every intensity i to the j whose ideal cumulative count
// cufeq[j] is closest to cuf[i]. The scan walks j upwards, moves on while the
// distance does not grow and stops at the first increase, so within a run of
// equal distances the last j wins. This relies on cufeq being
// non-decreasing; a target that is not would need a full scan.
func NearestMatch(cuf, cufeq Cumulative) LookupTable {
	var t LookupTable
	for i := range Bins {
		out := 0
		dist := abs(cuf[i] - cufeq[0])

		for j := 1; j < Bins; j++ {
			d := abs(cuf[i] - cufeq[j])
			if d > dist {
				break
			}
			out, dist = j, d
		}

		t[i] = uint8(out)
	}
	return t
}

// EqualizationTable builds the lookup table equalizing channel ch of g.
func EqualizationTable(g *Grid, ch int) LookupTable {
	cuf := CumulativeDistribution(ChannelHistogram(g, ch))
	cufeq := CumulativeDistribution(IdealHistogram(g.Pixels()))
	return NearestMatch(cuf, cufeq)
}

// Equalize returns a copy of g where each channel has been remapped towards a
// flat histogram, independently of the others.
func Equalize(g *Grid) *Grid {
	dst := g.Clone()
	cufeq := CumulativeDistribution(IdealHistogram(g.Pixels()))

	for ch := range g.Channels {
		cuf := CumulativeDistribution(ChannelHistogram(g, ch))
		t := NearestMatch(cuf, cufeq)
		t.Apply(dst, ch)
	}
	return dst
}

// IdealDistance sums, over every intensity, how far c is from the cumulative
// distribution of the ideal histogram for pixelCount samples.
func IdealDistance(c Cumulative, pixelCount int) int {
	cufeq := CumulativeDistribution(IdealHistogram(pixelCount))

	d := 0
	for i := range Bins {
		d += abs(c[i] - cufeq[i])
	}
	return d
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
