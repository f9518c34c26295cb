package watermark

// Anchor names a watermark placement relative to the image bounds.
type Anchor string

const (
	TopLeft     Anchor = "top-left"
	TopRight    Anchor = "top-right"
	Center      Anchor = "center"
	BottomLeft  Anchor = "bottom-left"
	BottomRight Anchor = "bottom-right"
)

// DefaultMargin is the distance in pixels kept between the text block and the
// image edge.
const DefaultMargin = 16

// ComputePosition maps an anchor to the top-left pixel coordinate of a text
// block of textW x textH inside an image of imgW x imgH. Coordinates are not
// clamped: a text block larger than the image starts off-canvas.
func ComputePosition(imgW, imgH, textW, textH int, anchor Anchor, margin int) (int, int) {
	switch anchor {
	case TopLeft:
		return margin, margin
	case TopRight:
		return imgW - textW - margin, margin
	case Center:
		return (imgW - textW) / 2, (imgH - textH) / 2
	case BottomLeft:
		return margin, imgH - textH - margin
	default: // bottom-right
		return imgW - textW - margin, imgH - textH - margin
	}
}
