package output

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Save writes img to path, choosing the format from the file extension.
// ".png" writes PNG; ".ppm" or no extension writes PPM.
func Save(path string, img Image) error {
	var write func(*os.File) error
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png":
		write = func(f *os.File) error { return WritePNG(f, img) }
	case ".ppm", "":
		write = func(f *os.File) error { return WritePPM(f, img) }
	default:
		return fmt.Errorf("unsupported output format %q", ext)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	if err := write(file); err != nil {
		file.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return file.Close()
}
