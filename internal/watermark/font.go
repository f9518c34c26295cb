package watermark

import (
	"os"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

const fontDPI = 72

// LoadFace loads a TrueType face from path at the given pixel size. Any
// failure on that path (missing file, unreadable, bad font data) falls back
// to the bundled Go Regular face. LoadFace never fails.
func LoadFace(path string, size int) font.Face {
	if path != "" {
		if b, err := os.ReadFile(path); err == nil {
			if f, err := truetype.Parse(b); err == nil {
				return truetype.NewFace(f, &truetype.Options{
					Size: float64(size),
					DPI:  fontDPI,
				})
			}
		}
	}
	return defaultFace(size)
}

func defaultFace(size int) font.Face {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return basicfont.Face7x13
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     fontDPI,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return basicfont.Face7x13
	}
	return face
}
