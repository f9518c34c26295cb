// Package processor runs the per-file watermark pipeline: decode, resolve
// the capture date, render the text, encode, write.
package processor

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp" // register WebP decoding

	"github.com/aliskhannn/photo-datemark/internal/config"
	"github.com/aliskhannn/photo-datemark/internal/exifdate"
	"github.com/aliskhannn/photo-datemark/internal/watermark"
)

// jpegQuality is the encoder quality for JPEG output, 0-100.
const jpegQuality = 92

// fileStorage defines the interface for writing processed images.
type fileStorage interface {
	Save(subdir, filename string, src io.Reader) (string, error)
}

// Processor watermarks individual image files.
type Processor struct {
	fileStorage fileStorage
	cfg         *config.Config
}

// New creates a Processor writing through the given storage backend.
func New(fs fileStorage, cfg *config.Config) *Processor {
	return &Processor{fileStorage: fs, cfg: cfg}
}

// Process watermarks a single image file and writes the result into subdir
// under the storage root. It returns the written path. Failures are returned
// to the caller; the file's buffers are scoped to this call.
func (p *Processor) Process(inputFile, subdir string) (string, error) {
	raw, err := os.ReadFile(inputFile)
	if err != nil {
		return "", fmt.Errorf("failed to read image: %w", err)
	}

	img, err := imaging.Decode(bytes.NewReader(raw))
	if err != nil {
		return "", fmt.Errorf("failed to decode image: %w", err)
	}

	date := exifdate.Resolve(bytes.NewReader(raw), inputFile)
	text := date.Format(exifdate.DisplayLayout)

	out := watermark.Render(img, text, watermark.Options{
		Color:   p.cfg.Color,
		Anchor:  watermark.Anchor(p.cfg.Position),
		Opacity: p.cfg.Opacity,
		Face:    watermark.LoadFace(p.cfg.FontPath, p.cfg.FontSize),
	})

	name := OutputName(inputFile)

	buf := new(bytes.Buffer)
	if strings.HasSuffix(name, ".png") {
		err = imaging.Encode(buf, out, imaging.PNG)
	} else {
		// JPEG carries no alpha channel; flatten before encoding.
		err = imaging.Encode(buf, flatten(out), imaging.JPEG, imaging.JPEGQuality(jpegQuality))
	}
	if err != nil {
		return "", fmt.Errorf("failed to encode image: %w", err)
	}

	dst, err := p.fileStorage.Save(subdir, name, buf)
	if err != nil {
		return "", fmt.Errorf("failed to save image: %w", err)
	}

	return dst, nil
}

// OutputName derives the output filename for an input file: the stem plus
// "_wm", keeping ".png" for PNG sources and ".jpg" for everything else.
func OutputName(inputFile string) string {
	base := filepath.Base(inputFile)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	if strings.EqualFold(ext, ".png") {
		return stem + "_wm.png"
	}
	return stem + "_wm.jpg"
}

func flatten(img image.Image) *image.RGBA {
	b := img.Bounds()
	dst := image.NewRGBA(b)
	draw.Draw(dst, b, img, b.Min, draw.Src)
	return dst
}
