// Package exifdate resolves the capture date of a photo from its EXIF
// metadata, falling back to the file's modification time when no usable
// date tag is present. Resolution never fails: every fault on the metadata
// path degrades to the filesystem fallback.
package exifdate

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rwcarlsen/goexif/exif"
	"github.com/rwcarlsen/goexif/mknote"
	"github.com/rwcarlsen/goexif/tiff"
)

func init() {
	// Some vendors hide standard tags behind maker notes.
	exif.RegisterParsers(mknote.All...)
}

// dateTags are the EXIF fields inspected for a capture date, in order of
// preference.
var dateTags = []exif.FieldName{
	exif.DateTimeOriginal,
	exif.DateTimeDigitized,
	exif.DateTime,
}

// layouts are the accepted date value formats, tried in order.
var layouts = []string{
	"2006:01:02 15:04:05",
	"2006-01-02 15:04:05",
	"2006:01:02",
	"2006-01-02",
}

// DisplayLayout is the format the resolved date is rendered in.
const DisplayLayout = "2006-01-02"

// Resolve returns the capture date for the image read from r, located at
// path. It prefers EXIF date tags and falls back to the file's modification
// time.
func Resolve(r io.Reader, path string) time.Time {
	if t, ok := fromExif(r); ok {
		return t
	}
	return fromModTime(path)
}

func fromExif(r io.Reader) (time.Time, bool) {
	x, err := exif.Decode(r)
	if err != nil {
		return time.Time{}, false
	}

	for _, name := range dateTags {
		tag, err := x.Get(name)
		if err != nil {
			continue
		}
		if t, ok := ParseDateValue(tagString(tag)); ok {
			return t, true
		}
	}

	return time.Time{}, false
}

// tagString extracts a textual value from an EXIF tag. Values that are not
// clean ASCII strings are decoded permissively, with invalid bytes dropped.
func tagString(tag *tiff.Tag) string {
	if s, err := tag.StringVal(); err == nil {
		return s
	}
	return strings.ToValidUTF8(string(tag.Val), "")
}

// ParseDateValue parses an EXIF date string against the accepted layouts in
// order. The first layout that parses wins.
func ParseDateValue(s string) (time.Time, bool) {
	s = strings.TrimRight(strings.TrimSpace(s), "\x00")
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func fromModTime(path string) time.Time {
	info, err := os.Stat(path)
	if err != nil {
		return time.Now()
	}
	return info.ModTime()
}
