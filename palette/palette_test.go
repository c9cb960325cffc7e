package palette

import (
	"bytes"
	"encoding/binary"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dataChunk(cols ...color.RGBA) []byte {
	body := []byte{0x00, 0x03}
	body = binary.LittleEndian.AppendUint16(body, uint16(len(cols)))
	for _, c := range cols {
		body = append(body, c.R, c.G, c.B, 0)
	}

	chunk := append([]byte("data"), binary.LittleEndian.AppendUint32(nil, uint32(len(body)))...)
	return append(chunk, body...)
}

func riffPAL(chunks ...[]byte) []byte {
	var body []byte
	for _, c := range chunks {
		body = append(body, c...)
	}

	out := append([]byte("RIFF"), binary.LittleEndian.AppendUint32(nil, uint32(4+len(body)))...)
	out = append(out, "PAL "...)
	return append(out, body...)
}

func TestReadFrom(t *testing.T) {
	red := color.RGBA{R: 0xFF, A: 0xFF}
	teal := color.RGBA{G: 0x80, B: 0x80, A: 0xFF}
	gray := color.RGBA{R: 0x40, G: 0x40, B: 0x40, A: 0xFF}

	pal, err := ReadFrom(bytes.NewReader(riffPAL(dataChunk(red, teal), dataChunk(gray))))
	require.NoError(t, err)
	assert.Equal(t, color.Palette{red, teal, gray}, pal)
}

func TestReadFrom_Errors(t *testing.T) {
	_, err := ReadFrom(bytes.NewReader([]byte("not a riff file")))
	assert.Error(t, err)

	wrongForm := riffPAL(dataChunk(color.RGBA{}))
	copy(wrongForm[8:], "WAVE")
	_, err = ReadFrom(bytes.NewReader(wrongForm))
	assert.ErrorContains(t, err, "unsupported RIFF content type")

	badVersion := dataChunk(color.RGBA{})
	badVersion[9] = 0x01
	_, err = ReadFrom(bytes.NewReader(riffPAL(badVersion)))
	assert.ErrorContains(t, err, "unsupported palette version")
}

func TestLoadPalette(t *testing.T) {
	for _, name := range Names {
		pal, err := LoadPalette(name)
		require.NoError(t, err, name)
		assert.NotEmpty(t, pal, name)
	}

	pal, err := LoadPalette("bw")
	require.NoError(t, err)
	assert.Len(t, pal, 2)

	gray, err := LoadPalette("gray16")
	require.NoError(t, err)
	assert.Equal(t, color.Gray{Y: 0xFF}, gray[15])

	_, err = LoadPalette("no-such-palette")
	assert.Error(t, err)
}

func TestLoadPalette_File(t *testing.T) {
	name := filepath.Join(t.TempDir(), "two.pal")
	cols := []color.RGBA{{R: 1, G: 2, B: 3, A: 0xFF}, {R: 4, G: 5, B: 6, A: 0xFF}}
	require.NoError(t, os.WriteFile(name, riffPAL(dataChunk(cols...)), 0o644))

	pal, err := LoadPalette(name)
	require.NoError(t, err)
	assert.Equal(t, color.Palette{cols[0], cols[1]}, pal)

	empty := filepath.Join(t.TempDir(), "empty.pal")
	require.NoError(t, os.WriteFile(empty, riffPAL(), 0o644))
	_, err = LoadPalette(empty)
	assert.ErrorContains(t, err, "no colors")
}
