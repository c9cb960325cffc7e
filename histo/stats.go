package histo

import (
	"imgenhance/enhance"

	"github.com/samber/lo"
)

// Stats summarises one channel histogram.
type Stats struct {
	Min  int
	Max  int
	Mean float64
	// Levels is the number of distinct intensities in use.
	Levels int
	// Distance is how far the cumulative distribution is from the ideal flat
	// one, before and after equalization.
	Distance          int
	EqualizedDistance int
}

func channelStats(h enhance.Histogram) Stats {
	levels := lo.Range(enhance.Bins)
	used := lo.Filter(levels, func(i, _ int) bool { return h[i] > 0 })
	if len(used) == 0 {
		return Stats{}
	}

	total := h.Total()
	cuf := enhance.CumulativeDistribution(h)
	lut := enhance.NearestMatch(cuf, enhance.CumulativeDistribution(enhance.IdealHistogram(total)))

	var equalized enhance.Histogram
	for _, i := range used {
		equalized[lut[i]] += h[i]
	}

	return Stats{
		Min:               lo.Min(used),
		Max:               lo.Max(used),
		Mean:              float64(lo.SumBy(used, func(i int) int { return i * h[i] })) / float64(total),
		Levels:            len(used),
		Distance:          enhance.IdealDistance(cuf, total),
		EqualizedDistance: enhance.IdealDistance(enhance.CumulativeDistribution(equalized), total),
	}
}
