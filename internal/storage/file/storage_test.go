package file_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aliskhannn/photo-datemark/internal/storage/file"
)

func TestSaveCreatesNestedDirs(t *testing.T) {
	root := filepath.Join(t.TempDir(), "photos_watermark")
	s := file.NewStorage(root)

	path, err := s.Save(filepath.Join("sub", "deep"), "a_wm.jpg", strings.NewReader("data"))
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	want := filepath.Join(root, "sub", "deep", "a_wm.jpg")
	if path != want {
		t.Errorf("path = %q, want %q", path, want)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(b) != "data" {
		t.Errorf("content = %q, want %q", b, "data")
	}
}

func TestSaveIsIdempotentOnDirs(t *testing.T) {
	s := file.NewStorage(filepath.Join(t.TempDir(), "out"))

	if _, err := s.Save(".", "x.png", strings.NewReader("one")); err != nil {
		t.Fatalf("first save: %v", err)
	}
	path, err := s.Save(".", "x.png", strings.NewReader("two"))
	if err != nil {
		t.Fatalf("second save: %v", err)
	}

	b, _ := os.ReadFile(path)
	if string(b) != "two" {
		t.Errorf("content = %q, want overwrite with %q", b, "two")
	}
}
