// Package watermark renders single-line text onto an image: it measures the
// text, places it at a named anchor, draws a dark shadow pass and a colored
// primary pass on a transparent overlay, and alpha-composites the overlay
// over the source.
package watermark

import (
	"image"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"golang.org/x/image/font"
)

// shadowOffset is the pixel shift of the dark pass drawn under the text.
const shadowOffset = 2

// Options controls a single render pass.
type Options struct {
	Color   string // hex or named color for the primary pass
	Anchor  Anchor
	Opacity int // 0-255, clamped at draw time
	Face    font.Face
}

// Render draws text over img at the configured anchor and returns the
// composited result. The shadow pass goes first, offset by shadowOffset in
// black; both passes use the configured opacity.
func Render(img image.Image, text string, opts Options) *image.NRGBA {
	base := imaging.Clone(img) // NRGBA working copy, alpha-capable

	w := base.Bounds().Dx()
	h := base.Bounds().Dy()

	dc := gg.NewContext(w, h)
	dc.SetFontFace(opts.Face)

	tw, th := dc.MeasureString(text)
	x, y := ComputePosition(w, h, int(tw), int(th), opts.Anchor, DefaultMargin)

	alpha := int(ClampOpacity(opts.Opacity))
	c := ParseColor(opts.Color)

	// ay=1 anchors the string so (x, y) is the top-left of the text block.
	dc.SetRGBA255(0, 0, 0, alpha)
	dc.DrawStringAnchored(text, float64(x+shadowOffset), float64(y+shadowOffset), 0, 1)
	dc.SetRGBA255(int(c.R), int(c.G), int(c.B), alpha)
	dc.DrawStringAnchored(text, float64(x), float64(y), 0, 1)

	return imaging.Overlay(base, dc.Image(), image.Pt(0, 0), 1.0)
}
