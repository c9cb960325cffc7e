package histo

import (
	"encoding/csv"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"imgenhance/enhance"
	"imgenhance/parallel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChannelStats(t *testing.T) {
	var ramp enhance.Histogram
	for i := range ramp {
		ramp[i] = 1
	}
	assert.Equal(t, Stats{Min: 0, Max: 255, Mean: 127.5, Levels: 256}, channelStats(ramp))

	var constant enhance.Histogram
	constant[10] = 256
	assert.Equal(t, Stats{
		Min:               10,
		Max:               10,
		Mean:              10,
		Levels:            1,
		Distance:          30190,
		EqualizedDistance: 32640,
	}, channelStats(constant))

	assert.Equal(t, Stats{}, channelStats(enhance.Histogram{}))
}

func TestRun(t *testing.T) {
	scan := t.TempDir()
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for i := range 16 {
		img.Set(i%4, i/4, color.RGBA{R: uint8(i), G: 100, B: 200, A: 0xFF})
	}
	f, err := os.Create(filepath.Join(scan, "pic.png"))
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())

	c := &CLICmd{Scan: scan, CSV: filepath.Join(scan, "csv"), Luminance: true}
	pool := parallel.Start(2)
	require.NoError(t, c.Run(pool.Do, pool.Wait))

	f, err = os.Open(filepath.Join(c.CSV, "pic.csv"))
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)

	require.Len(t, rows, enhance.Bins+1)
	assert.Equal(t, []string{"level", "blue", "green", "red", "luminance"}, rows[0])
	assert.Equal(t, []string{"0", "0", "0", "1", "0"}, rows[1])
	assert.Equal(t, "16", rows[101][2])
	assert.Equal(t, "16", rows[201][1])
}

func TestRun_Errors(t *testing.T) {
	scan := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(scan, "junk.png"), []byte("junk"), 0o644))

	c := &CLICmd{Scan: scan}
	pool := parallel.Start(1)
	assert.EqualError(t, c.Run(pool.Do, pool.Wait), "error processing 1 files")
}

func TestRun_Gray(t *testing.T) {
	scan := t.TempDir()
	img := image.NewGray(image.Rect(0, 0, 4, 2))
	for i := range img.Pix {
		img.Pix[i] = uint8(i * 30)
	}
	f, err := os.Create(filepath.Join(scan, "gray.png"))
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())

	grid, names := toGrid(img)
	assert.Equal(t, 1, grid.Channels)
	assert.Equal(t, []string{"gray"}, names)

	c := &CLICmd{Scan: scan, CSV: filepath.Join(scan, "csv"), Luminance: true}
	pool := parallel.Start(1)
	require.NoError(t, c.Run(pool.Do, pool.Wait))

	f, err = os.Open(filepath.Join(c.CSV, "gray.csv"))
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)

	require.Len(t, rows, enhance.Bins+1)
	assert.Equal(t, []string{"level", "gray", "luminance"}, rows[0])
	assert.Equal(t, []string{"30", "1", "1"}, rows[31])
	assert.Equal(t, []string{"31", "0", "0"}, rows[32])
}
