package process

import (
	"fmt"

	"imgenhance/enhance"
)

// parseHexToPixel reads #RGB or #RRGGBB into a B, G, R pixel.
func parseHexToPixel(s string) (enhance.Pixel, error) {
	var r, g, b uint8
	switch len(s) {
	case 4:
		n, err := fmt.Sscanf(s, "#%1x%1x%1x", &r, &g, &b)
		if err != nil {
			return enhance.Pixel{}, fmt.Errorf("could not read color %q: %w", s, err)
		} else if n < 3 {
			return enhance.Pixel{}, fmt.Errorf("insufficient color fields in %q: %d", s, n)
		}

		r |= r << 4
		g |= g << 4
		b |= b << 4
	case 7:
		n, err := fmt.Sscanf(s, "#%2x%2x%2x", &r, &g, &b)
		if err != nil {
			return enhance.Pixel{}, fmt.Errorf("could not read color %q: %w", s, err)
		} else if n < 3 {
			return enhance.Pixel{}, fmt.Errorf("insufficient color fields in %q: %d", s, n)
		}
	default:
		return enhance.Pixel{}, fmt.Errorf("invalid color %q, should be #RGB or #RRGGBB", s)
	}

	var px enhance.Pixel
	px[enhance.ChannelB] = b
	px[enhance.ChannelG] = g
	px[enhance.ChannelR] = r
	return px, nil
}
