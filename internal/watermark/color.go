package watermark

import (
	"fmt"
	"image/color"
	"strings"
)

var white = color.NRGBA{R: 255, G: 255, B: 255, A: 255}

// namedColors covers the common color names accepted by --color.
var namedColors = map[string]color.NRGBA{
	"white":   {R: 255, G: 255, B: 255, A: 255},
	"black":   {R: 0, G: 0, B: 0, A: 255},
	"red":     {R: 255, G: 0, B: 0, A: 255},
	"green":   {R: 0, G: 128, B: 0, A: 255},
	"lime":    {R: 0, G: 255, B: 0, A: 255},
	"blue":    {R: 0, G: 0, B: 255, A: 255},
	"yellow":  {R: 255, G: 255, B: 0, A: 255},
	"cyan":    {R: 0, G: 255, B: 255, A: 255},
	"magenta": {R: 255, G: 0, B: 255, A: 255},
	"orange":  {R: 255, G: 165, B: 0, A: 255},
	"purple":  {R: 128, G: 0, B: 128, A: 255},
	"gray":    {R: 128, G: 128, B: 128, A: 255},
	"grey":    {R: 128, G: 128, B: 128, A: 255},
	"silver":  {R: 192, G: 192, B: 192, A: 255},
}

// ParseColor resolves a "#RGB" or "#RRGGBB" hex string or a color name to an
// opaque RGB value. Unrecognized input falls back to white so that a bad
// --color value never aborts a batch.
func ParseColor(s string) color.NRGBA {
	s = strings.ToLower(strings.TrimSpace(s))

	if c, ok := namedColors[s]; ok {
		return c
	}
	if !strings.HasPrefix(s, "#") {
		return white
	}

	var r, g, b uint8
	switch hex := s[1:]; len(hex) {
	case 3:
		if _, err := fmt.Sscanf(hex, "%1x%1x%1x", &r, &g, &b); err != nil {
			return white
		}
		return color.NRGBA{R: r * 17, G: g * 17, B: b * 17, A: 255}
	case 6:
		if _, err := fmt.Sscanf(hex, "%02x%02x%02x", &r, &g, &b); err != nil {
			return white
		}
		return color.NRGBA{R: r, G: g, B: b, A: 255}
	default:
		return white
	}
}

// ClampOpacity forces an opacity value into the valid alpha range.
func ClampOpacity(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
