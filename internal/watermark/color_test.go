package watermark_test

import (
	"image/color"
	"testing"

	"github.com/aliskhannn/photo-datemark/internal/watermark"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.NRGBA
	}{
		{"#FFFFFF", color.NRGBA{R: 255, G: 255, B: 255, A: 255}},
		{"#000000", color.NRGBA{R: 0, G: 0, B: 0, A: 255}},
		{"#ff8800", color.NRGBA{R: 255, G: 136, B: 0, A: 255}},
		{"#f80", color.NRGBA{R: 255, G: 136, B: 0, A: 255}},
		{"red", color.NRGBA{R: 255, G: 0, B: 0, A: 255}},
		{"  Orange ", color.NRGBA{R: 255, G: 165, B: 0, A: 255}},
		// Unparseable input falls back to white rather than failing the run.
		{"", color.NRGBA{R: 255, G: 255, B: 255, A: 255}},
		{"#zzzzzz", color.NRGBA{R: 255, G: 255, B: 255, A: 255}},
		{"#ff", color.NRGBA{R: 255, G: 255, B: 255, A: 255}},
		{"not-a-color", color.NRGBA{R: 255, G: 255, B: 255, A: 255}},
	}

	for _, tt := range tests {
		if got := watermark.ParseColor(tt.in); got != tt.want {
			t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestClampOpacity(t *testing.T) {
	tests := []struct {
		in   int
		want uint8
	}{
		{-1, 0},
		{-500, 0},
		{0, 0},
		{128, 128},
		{255, 255},
		{256, 255},
		{10000, 255},
	}

	for _, tt := range tests {
		if got := watermark.ClampOpacity(tt.in); got != tt.want {
			t.Errorf("ClampOpacity(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
