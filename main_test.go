package main

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/sevetis/ray-tracer/pkg/core"
)

func TestCreateScene(t *testing.T) {
	tests := []struct {
		name        string
		sceneType   string
		expectError bool
	}{
		// Built-in scenes
		{"default scene", "default", false},
		{"single sphere scene", "sphere", false},
		{"empty scene", "empty", false},
		{"random spheres scene", "spheres", false},

		// JSON scenes (by path)
		{"three spheres file", "scenes/three-spheres.json", false},
		{"depth of field file", "scenes/depth-of-field.json", false},

		// Invalid scenes
		{"unknown scene", "nonexistent", true},
		{"invalid JSON path", "scenes/nonexistent.json", true},
		{"empty scene name", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scene, err := createScene(tt.sceneType)

			if tt.expectError {
				if err == nil {
					t.Errorf("Expected error for scene type '%s', but got none", tt.sceneType)
				}
				if scene != nil {
					t.Errorf("Expected nil scene for invalid scene type '%s', got %T", tt.sceneType, scene)
				}
				return
			}

			if err != nil {
				t.Fatalf("Unexpected error for scene type '%s': %v", tt.sceneType, err)
			}
			if scene.CameraConfig.Width <= 0 {
				t.Errorf("Scene camera width should be positive, got %d", scene.CameraConfig.Width)
			}
			if err := scene.SamplingConfig.Validate(); err != nil {
				t.Errorf("Scene sampling config invalid: %v", err)
			}
		})
	}
}

func TestApplyOverrides(t *testing.T) {
	s, err := createScene("default")
	if err != nil {
		t.Fatal(err)
	}
	before := s.SamplingConfig

	// Unset values keep the scene defaults
	applyOverrides(s, Config{MaxDepth: -1})
	if s.SamplingConfig != before {
		t.Errorf("Expected sampling config unchanged, got %+v", s.SamplingConfig)
	}

	applyOverrides(s, Config{Width: 64, Samples: 3, MaxDepth: 0})
	if s.CameraConfig.Width != 64 || s.SamplingConfig.SamplesPerPixel != 3 || s.SamplingConfig.MaxDepth != 0 {
		t.Errorf("Overrides not applied: width %d, sampling %+v", s.CameraConfig.Width, s.SamplingConfig)
	}
}

func TestDefaultOutputPath(t *testing.T) {
	now := time.Date(2024, 3, 5, 14, 7, 9, 0, time.UTC)
	tests := []struct {
		sceneType string
		expected  string
	}{
		{"default", filepath.Join("output", "default", "render_20240305_140709.ppm")},
		{"scenes/three-spheres.json", filepath.Join("output", "three-spheres", "render_20240305_140709.ppm")},
	}

	for _, tt := range tests {
		t.Run(tt.sceneType, func(t *testing.T) {
			if got := defaultOutputPath(tt.sceneType, now); got != tt.expected {
				t.Errorf("defaultOutputPath(%q) = %q, want %q", tt.sceneType, got, tt.expected)
			}
		})
	}
}

func TestRun_WritesPPM(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sky.ppm")
	config := Config{SceneType: "empty", Width: 8, Samples: 1, MaxDepth: 2, Seed: 1, Output: path}

	if err := run(config, core.NopLogger{}); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Expected output file: %v", err)
	}
	// 16:9 at width 8 gives 4 rows
	if !strings.HasPrefix(string(data), "P3\n8 4\n255\n") {
		t.Errorf("Unexpected PPM header: %q", string(data[:min(len(data), 20)]))
	}
	if lines := strings.Count(string(data), "\n"); lines != 3+8*4 {
		t.Errorf("Expected %d lines, got %d", 3+8*4, lines)
	}
}

func TestRun_Errors(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name   string
		config Config
	}{
		{"unknown scene", Config{SceneType: "nonexistent", MaxDepth: -1}},
		{"unsupported output", Config{SceneType: "empty", Width: 4, Samples: 1, MaxDepth: 1, Output: filepath.Join(dir, "out.gif")}},
		{"missing converter", Config{SceneType: "empty", Width: 4, Samples: 1, MaxDepth: 1,
			Output: filepath.Join(dir, "out.ppm"), Convert: filepath.Join(dir, "out.png"), Converter: "no-such-image-converter"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := run(tt.config, core.NopLogger{}); err == nil {
				t.Error("Expected an error")
			}
		})
	}
}

func TestRun_Converts(t *testing.T) {
	if _, err := exec.LookPath("cp"); err != nil {
		t.Skip("cp not available")
	}
	dir := t.TempDir()
	config := Config{SceneType: "sphere", Width: 8, Samples: 1, MaxDepth: 2,
		Output: filepath.Join(dir, "out.ppm"), Convert: filepath.Join(dir, "copy.ppm"), Converter: "cp"}

	if err := run(config, core.NopLogger{}); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if _, err := os.Stat(config.Convert); err != nil {
		t.Errorf("Expected converted file: %v", err)
	}
}
