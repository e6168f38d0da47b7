package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sevetis/ray-tracer/pkg/core"
	"github.com/sevetis/ray-tracer/pkg/output"
	"github.com/sevetis/ray-tracer/pkg/renderer"
	"github.com/sevetis/ray-tracer/pkg/scene"
)

// Config holds the command line settings
type Config struct {
	SceneType string
	Width     int
	Samples   int
	MaxDepth  int
	Workers   int
	Seed      int64
	Output    string
	Convert   string
	Converter string
}

func main() {
	config, help := parseFlags()

	if help {
		showHelp()
		return
	}

	if err := run(config, renderer.NewDefaultLogger()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func parseFlags() (Config, bool) {
	config := Config{}
	flag.StringVar(&config.SceneType, "scene", "default", "Scene name or path to a JSON scene file")
	flag.IntVar(&config.Width, "width", 0, "Image width in pixels (0 = scene default)")
	flag.IntVar(&config.Samples, "samples", 0, "Samples per pixel (0 = scene default)")
	flag.IntVar(&config.MaxDepth, "depth", -1, "Maximum bounce depth (-1 = scene default)")
	flag.IntVar(&config.Workers, "workers", 0, "Number of parallel workers (0 = auto)")
	flag.Int64Var(&config.Seed, "seed", 42, "Base random seed")
	flag.StringVar(&config.Output, "output", "", "Output file (.ppm or .png, default output/<scene>/render_<timestamp>.ppm)")
	flag.StringVar(&config.Convert, "convert", "", "Convert the rendered image to this file with an external tool")
	flag.StringVar(&config.Converter, "converter", output.DefaultConverter, "External image converter command")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()
	return config, *help
}

func showHelp() {
	fmt.Println("Sphere Path Tracer")
	fmt.Println("Usage: ray-tracer [options]")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("Available scenes:")
	for _, info := range scene.ListBuiltinScenes() {
		fmt.Printf("  %-8s - %s\n", info.ID, info.Description)
	}
	fmt.Println()
	fmt.Println("JSON scene files (e.g. scenes/three-spheres.json) can be passed to -scene.")
	fmt.Println("Output defaults to output/<scene>/render_<timestamp>.ppm")
}

// run renders the configured scene and writes the image
func run(config Config, logger core.Logger) error {
	selectedScene, err := createScene(config.SceneType)
	if err != nil {
		return err
	}
	applyOverrides(selectedScene, config)

	if err := selectedScene.CameraConfig.Validate(); err != nil {
		return fmt.Errorf("camera: %w", err)
	}
	if err := selectedScene.SamplingConfig.Validate(); err != nil {
		return fmt.Errorf("sampling: %w", err)
	}

	renderConfig := selectedScene.RenderConfig()
	renderConfig.NumWorkers = config.Workers
	renderConfig.Seed = config.Seed

	camera := renderer.NewCamera(selectedScene.CameraConfig)
	raytracer := renderer.NewRaytracer(camera, renderConfig, logger)

	logger.Printf("Using %s scene (%d objects)...\n", config.SceneType, len(selectedScene.Shapes))
	frame, stats := raytracer.Render(selectedScene)
	logger.Printf("Mean estimator variance: %.3g\n", stats.MeanVariance)

	filename := config.Output
	if filename == "" {
		filename = defaultOutputPath(config.SceneType, time.Now())
	}
	if err := output.Save(filename, frame); err != nil {
		return err
	}
	logger.Printf("Render saved as %s\n", filename)

	if config.Convert != "" {
		out, err := output.Convert(context.Background(), config.Converter, filename, config.Convert)
		if out != "" {
			logger.Printf("%s\n", out)
		}
		if err != nil {
			return fmt.Errorf("convert: %w", err)
		}
		logger.Printf("Converted to %s\n", config.Convert)
	}
	return nil
}

// createScene resolves a built-in scene name or a JSON scene file
func createScene(sceneType string) (*scene.Scene, error) {
	if sceneType == "" {
		return nil, fmt.Errorf("scene name must not be empty")
	}
	return scene.Load(sceneType)
}

// applyOverrides replaces scene defaults with explicitly set command line values
func applyOverrides(s *scene.Scene, config Config) {
	if config.Width > 0 {
		s.CameraConfig.Width = config.Width
	}
	if config.Samples > 0 {
		s.SamplingConfig.SamplesPerPixel = config.Samples
	}
	if config.MaxDepth >= 0 {
		s.SamplingConfig.MaxDepth = config.MaxDepth
	}
}

func defaultOutputPath(sceneType string, now time.Time) string {
	name := strings.TrimSuffix(filepath.Base(sceneType), filepath.Ext(sceneType))
	timestamp := now.Format("20060102_150405")
	return filepath.Join("output", name, fmt.Sprintf("render_%s.ppm", timestamp))
}
