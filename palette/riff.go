package palette

import (
	"encoding/binary"
	"errors"
	"fmt"
	"image/color"
	"io"

	"golang.org/x/image/riff"
)

/*
typedef struct tagLOGPALETTE {
  WORD         palVersion;
  WORD         palNumEntries;
  PALETTEENTRY palPalEntry[1];
} LOGPALETTE;

typedef struct tagPALETTEENTRY {
  BYTE peRed;
  BYTE peGreen;
  BYTE peBlue;
  BYTE peFlags;
} PALETTEENTRY;
*/

var (
	palType  = riff.FourCC{'P', 'A', 'L', ' '}
	dataType = riff.FourCC{'d', 'a', 't', 'a'}
)

// ReadFrom reads every palette of a RIFF PAL stream, flattened in file order.
func ReadFrom(r io.Reader) (color.Palette, error) {
	formType, rd, err := riff.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("could not open RIFF stream: %w", err)
	} else if formType != palType {
		return nil, fmt.Errorf("unsupported RIFF content type: %s", string(formType[:]))
	}

	return readChunks(rd, string(formType[:]), nil)
}

func readChunks(r *riff.Reader, ident string, res color.Palette) (color.Palette, error) {
	for n := 0; ; n++ {
		id, size, data, err := r.Next()
		if errors.Is(err, io.EOF) {
			return res, nil
		} else if err != nil {
			return res, fmt.Errorf("could not read chunk %q#%d: %w", ident, n, err)
		}

		switch id {
		case riff.LIST:
			listType, list, err := riff.NewListReader(size, data)
			if err != nil {
				return res, fmt.Errorf("could not read list from chunk %q#%d: %w", ident, n, err)
			} else if listType != palType {
				return res, fmt.Errorf("chunk %q#%d unsupported type: %s", ident, n, string(listType[:]))
			}

			if res, err = readChunks(list, fmt.Sprintf("%s%d.%s", ident, n, listType[:]), res); err != nil {
				return res, err
			}
		case dataType:
			if res, err = readEntries(data, fmt.Sprintf("%s%d", ident, n), res); err != nil {
				return res, err
			}
		default:
			return res, fmt.Errorf("unsupported chunk type in %q#%d: %s", ident, n, id)
		}
	}
}

func readEntries(r io.Reader, ident string, res color.Palette) (color.Palette, error) {
	var head [4]byte
	if _, err := io.ReadFull(r, head[:]); err != nil {
		return res, fmt.Errorf("could not read header of chunk %s: %w", ident, err)
	}

	if ver := binary.BigEndian.Uint16(head[:2]); ver != 3 {
		return res, fmt.Errorf("unsupported palette version in chunk %s: %d", ident, ver)
	}

	count := int(binary.LittleEndian.Uint16(head[2:]))
	entries := make([]byte, 4*count)
	if _, err := io.ReadFull(r, entries); err != nil {
		return res, fmt.Errorf("could not read %d colors from chunk %s: %w", count, ident, err)
	}

	for i := range count {
		e := entries[4*i : 4*i+4]
		res = append(res, color.RGBA{R: e[0], G: e[1], B: e[2], A: 0xFF})
	}
	return res, nil
}
