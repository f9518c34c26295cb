package watermark_test

import (
	"testing"

	"github.com/aliskhannn/photo-datemark/internal/watermark"
)

func TestComputePosition(t *testing.T) {
	const (
		imgW, imgH   = 800, 600
		textW, textH = 120, 40
		margin       = 16
	)

	tests := []struct {
		anchor watermark.Anchor
		wantX  int
		wantY  int
	}{
		{watermark.TopLeft, margin, margin},
		{watermark.TopRight, imgW - textW - margin, margin},
		{watermark.Center, (imgW - textW) / 2, (imgH - textH) / 2},
		{watermark.BottomLeft, margin, imgH - textH - margin},
		{watermark.BottomRight, imgW - textW - margin, imgH - textH - margin},
	}

	for _, tt := range tests {
		x, y := watermark.ComputePosition(imgW, imgH, textW, textH, tt.anchor, margin)
		if x != tt.wantX || y != tt.wantY {
			t.Errorf("%s: got (%d, %d), want (%d, %d)", tt.anchor, x, y, tt.wantX, tt.wantY)
		}
	}
}

func TestComputePositionUnknownAnchorDefaultsToBottomRight(t *testing.T) {
	x, y := watermark.ComputePosition(800, 600, 120, 40, watermark.Anchor("sideways"), 16)
	wantX, wantY := 800-120-16, 600-40-16
	if x != wantX || y != wantY {
		t.Errorf("got (%d, %d), want (%d, %d)", x, y, wantX, wantY)
	}
}

// Text larger than the image is allowed to start off-canvas; no clamping.
func TestComputePositionNoClamping(t *testing.T) {
	x, y := watermark.ComputePosition(100, 50, 300, 80, watermark.BottomRight, 16)
	if x != 100-300-16 || y != 50-80-16 {
		t.Errorf("got (%d, %d), want (-216, -46)", x, y)
	}
}
