// Package walker enumerates input images in single-file or recursive
// directory mode and feeds them to the per-file processor, isolating
// failures so one bad file never stops the batch.
package walker

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/wb-go/wbf/zlog"
)

// imageExts lists the recognized input image extensions.
var imageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".bmp":  true,
	".tiff": true,
	".webp": true,
}

// IsImageFile reports whether path has a recognized image extension.
func IsImageFile(path string) bool {
	return imageExts[strings.ToLower(filepath.Ext(path))]
}

// OutputRoot derives the output directory for an input path. A directory
// input gets a sibling named "<name>_watermark"; a file input gets
// "<parentName>_watermark" inside the file's own directory.
func OutputRoot(inputPath string, isDir bool) string {
	if isDir {
		return filepath.Join(filepath.Dir(inputPath), filepath.Base(inputPath)+"_watermark")
	}
	dir := filepath.Dir(inputPath)
	return filepath.Join(dir, filepath.Base(dir)+"_watermark")
}

// processor runs the per-file pipeline. Process returns the written path.
type processor interface {
	Process(inputFile, subdir string) (string, error)
}

// Walker drives the batch over a file or directory input.
type Walker struct {
	processor processor
}

// New creates a Walker feeding the given processor.
func New(p processor) *Walker {
	return &Walker{processor: p}
}

// Run processes inputPath and returns the number of successfully processed
// images. A missing input path is the only fatal error; per-file failures
// are logged and skipped.
func (w *Walker) Run(inputPath string) (int, error) {
	info, err := os.Stat(inputPath)
	if err != nil {
		return 0, fmt.Errorf("input path not found: %s", inputPath)
	}

	if !info.IsDir() {
		if !IsImageFile(inputPath) {
			zlog.Logger.Error().Msgf("not an image file: %s", inputPath)
			return 0, nil
		}
		if w.processFile(inputPath, ".") {
			return 1, nil
		}
		return 0, nil
	}

	processed := 0
	err = filepath.Walk(inputPath, func(path string, fi os.FileInfo, err error) error {
		if err != nil {
			return nil // unreadable entry, keep walking
		}
		if fi.IsDir() || !IsImageFile(path) {
			return nil
		}

		rel, err := filepath.Rel(inputPath, path)
		if err != nil {
			return nil
		}

		if w.processFile(path, filepath.Dir(rel)) {
			processed++
		}
		return nil
	})
	if err != nil {
		return processed, fmt.Errorf("failed to walk %s: %w", inputPath, err)
	}

	return processed, nil
}

func (w *Walker) processFile(path, subdir string) bool {
	out, err := w.processor.Process(path, subdir)
	if err != nil {
		zlog.Logger.Error().Msgf("Failed to process %s: %v", path, err)
		return false
	}

	zlog.Logger.Debug().Msgf("wrote %s", out)
	return true
}
