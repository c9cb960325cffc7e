package palette

import (
	"fmt"
	"image/color"
	stdpal "image/color/palette"
	"log/slog"
	"os"
)

// Names lists the built-in palettes.
var Names = []string{"bw", "gray16", "vga16", "websafe", "plan9"}

var (
	BW = color.Palette{
		color.RGBA{0x00, 0x00, 0x00, 0xFF},
		color.RGBA{0xFF, 0xFF, 0xFF, 0xFF},
	}

	Gray16 = func() color.Palette {
		p := make(color.Palette, 16)
		for i := range p {
			p[i] = color.Gray{Y: uint8(i * 0x11)}
		}
		return p
	}()

	VGA16 = color.Palette{
		color.RGBA{0x00, 0x00, 0x00, 0xFF},
		color.RGBA{0x00, 0x00, 0xAA, 0xFF},
		color.RGBA{0x00, 0xAA, 0x00, 0xFF},
		color.RGBA{0x00, 0xAA, 0xAA, 0xFF},
		color.RGBA{0xAA, 0x00, 0x00, 0xFF},
		color.RGBA{0xAA, 0x00, 0xAA, 0xFF},
		color.RGBA{0xAA, 0x55, 0x00, 0xFF},
		color.RGBA{0xAA, 0xAA, 0xAA, 0xFF},
		color.RGBA{0x55, 0x55, 0x55, 0xFF},
		color.RGBA{0x55, 0x55, 0xFF, 0xFF},
		color.RGBA{0x55, 0xFF, 0x55, 0xFF},
		color.RGBA{0x55, 0xFF, 0xFF, 0xFF},
		color.RGBA{0xFF, 0x55, 0x55, 0xFF},
		color.RGBA{0xFF, 0x55, 0xFF, 0xFF},
		color.RGBA{0xFF, 0xFF, 0x55, 0xFF},
		color.RGBA{0xFF, 0xFF, 0xFF, 0xFF},
	}
)

// LoadPalette returns a built-in palette by name, or reads name as a RIFF PAL
// file.
func LoadPalette(name string) (color.Palette, error) {
	switch name {
	case "bw":
		return BW, nil
	case "gray16":
		return Gray16, nil
	case "vga16":
		return VGA16, nil
	case "websafe":
		return stdpal.WebSafe, nil
	case "plan9":
		return stdpal.Plan9, nil
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("unknown palette %q: %w", name, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			slog.Error("could not close palette file", "name", name, "error", closeErr)
		}
	}()

	pal, err := ReadFrom(f)
	if err != nil {
		return nil, fmt.Errorf("could not load palette %q: %w", name, err)
	} else if len(pal) == 0 {
		return nil, fmt.Errorf("palette %q has no colors", name)
	}
	return pal, nil
}
