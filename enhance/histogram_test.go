package enhance

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildHistogram(t *testing.T) {
	row := []uint8{0, 85, 170, 255}
	g := grayGrid(row, row, row, row)

	h := ChannelHistogram(g, 0)
	for i, v := range h {
		switch i {
		case 0, 85, 170, 255:
			assert.Equal(t, 4, v, "bin %d", i)
		default:
			assert.Zero(t, v, "bin %d", i)
		}
	}
	assert.Equal(t, 16, h.Total())
	assert.Equal(t, h, BuildHistogram(g.Pix))

	c := CumulativeDistribution(h)
	assert.Equal(t, 4, c[0])
	assert.Equal(t, 4, c[84])
	assert.Equal(t, 8, c[85])
	assert.Equal(t, 8, c[169])
	assert.Equal(t, 12, c[170])
	assert.Equal(t, 12, c[254])
	assert.Equal(t, 16, c[255])
}

func TestCumulativeDistribution(t *testing.T) {
	g := randomGrid(11, 20, 15, 3)
	for ch := range 3 {
		h := ChannelHistogram(g, ch)
		require.Equal(t, g.Pixels(), h.Total())

		c := CumulativeDistribution(h)
		assert.Equal(t, h[0], c[0])
		assert.Equal(t, g.Pixels(), c[255])
		for i := 1; i < Bins; i++ {
			assert.Equal(t, c[i-1]+h[i], c[i])
		}
	}
}

func TestLuminanceHistogram(t *testing.T) {
	g := NewGrid(2, 2, 3)
	g.Set(0, 0, 0, 0, 255)
	g.Set(0, 1, 0, 255, 0)
	g.Set(1, 0, 0, 255, 0)

	h := LuminanceHistogram(g)
	assert.Equal(t, 1, h[0])
	assert.Equal(t, 1, h[54])
	assert.Equal(t, 2, h[182])
	assert.Equal(t, 4, h.Total())
}

func TestIdealHistogram(t *testing.T) {
	h := IdealHistogram(257)
	for i, v := range h {
		if i == 127 {
			assert.Equal(t, 2, v)
		} else {
			assert.Equal(t, 1, v, "bin %d", i)
		}
	}

	h = IdealHistogram(255)
	assert.Equal(t, 1, h[0])
	assert.Equal(t, 1, h[254])
	assert.Equal(t, 0, h[255])

	assert.Equal(t, Histogram{}, IdealHistogram(0))
}

func TestIdealHistogram_Flat(t *testing.T) {
	for _, n := range []int{1, 2, 100, 256, 300, 511, 512, 640 * 480, 1001} {
		h := IdealHistogram(n)
		assert.Equal(t, n, h.Total(), "pixels %d", n)
		assert.LessOrEqual(t, slices.Max(h[:])-slices.Min(h[:]), 1, "pixels %d", n)

		// extra samples sit in a centred block
		rem := n % Bins
		start := (Bins - rem) / 2
		for i := range h {
			want := n / Bins
			if i >= start && i < start+rem {
				want++
			}
			assert.Equal(t, want, h[i], "pixels %d bin %d", n, i)
		}
	}
}
