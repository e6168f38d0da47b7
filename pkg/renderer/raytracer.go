package renderer

import (
	"fmt"
	"time"

	"github.com/sevetis/ray-tracer/pkg/core"
	"github.com/sevetis/ray-tracer/pkg/geometry"
	"github.com/sevetis/ray-tracer/pkg/integrator"
)

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	SamplesPerPixel int // Number of rays per pixel
	MaxDepth        int // Maximum ray bounce depth
}

// DefaultSamplingConfig returns sensible default values
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		SamplesPerPixel: 100,
		MaxDepth:        50,
	}
}

// Validate rejects sampling settings that would produce an empty estimate
func (c SamplingConfig) Validate() error {
	if c.SamplesPerPixel <= 0 {
		return fmt.Errorf("samples per pixel must be > 0, got %d", c.SamplesPerPixel)
	}
	if c.MaxDepth < 0 {
		return fmt.Errorf("max depth must be >= 0, got %d", c.MaxDepth)
	}
	return nil
}

// RenderConfig groups everything a render needs besides the camera and the scene
type RenderConfig struct {
	Sampling   SamplingConfig
	NumWorkers int   // Number of parallel workers (0 = use CPU count)
	Seed       int64 // Base seed; row r draws from its own stream seeded with Seed+r
	Background integrator.Background
}

// DefaultRenderConfig returns sensible default values
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		Sampling:   DefaultSamplingConfig(),
		NumWorkers: 0,
		Seed:       42,
		Background: integrator.DefaultBackground(),
	}
}

// Raytracer handles the rendering process
type Raytracer struct {
	camera     *Camera
	integrator integrator.Integrator
	config     RenderConfig
	logger     core.Logger
}

// NewRaytracer creates a new raytracer
func NewRaytracer(camera *Camera, config RenderConfig, logger core.Logger) *Raytracer {
	if logger == nil {
		logger = core.NopLogger{}
	}
	return &Raytracer{
		camera:     camera,
		integrator: integrator.NewPathTracingIntegrator(config.Sampling.MaxDepth, config.Background),
		config:     config,
		logger:     logger,
	}
}

// Render traces every pixel of the camera image against world.
// Rows are split across the worker pool and the call returns once all
// workers have finished.
func (rt *Raytracer) Render(world geometry.Shape) (*Frame, RenderStats) {
	startTime := time.Now()
	frame := NewFrame(rt.camera.Width(), rt.camera.Height())

	pool := NewWorkerPool(rt, world, frame, rt.config.NumWorkers)
	tasks := SplitRows(frame.Height, pool.GetNumWorkers())

	rt.logger.Printf("Rendering %dx%d, %d samples/pixel, depth %d, %d workers\n",
		frame.Width, frame.Height, rt.config.Sampling.SamplesPerPixel, rt.config.Sampling.MaxDepth, pool.GetNumWorkers())

	pool.Start()
	for _, task := range tasks {
		pool.SubmitTask(task)
	}

	// Collect results as bands finish so progress is reported while rendering
	var stats RenderStats
	rowsDone := 0
	for range tasks {
		result, ok := pool.GetResult()
		if !ok {
			break
		}
		stats.merge(result.Stats)
		rowsDone += result.Rows
		rt.logger.Printf("\rProgress: %.0f%%", float64(rowsDone)*100/float64(frame.Height))
	}
	pool.Stop()

	stats.finalize()
	stats.Duration = time.Since(startTime)

	rt.logger.Printf("\nCompleted in %v (%.1f samples/pixel)\n", stats.Duration, stats.AverageSamples)
	return frame, stats
}

// RenderRows renders rows [startRow, endRow) into frame and returns their statistics.
// Callers rendering concurrently must pass disjoint row ranges.
func (rt *Raytracer) RenderRows(world geometry.Shape, frame *Frame, startRow, endRow int) RenderStats {
	var stats RenderStats
	for j := startRow; j < endRow; j++ {
		sampler := core.NewSeededSampler(rt.config.Seed + int64(j))
		for i := 0; i < frame.Width; i++ {
			var ps PixelStats
			rt.samplePixel(world, i, j, sampler, &ps)
			frame.Set(i, j, ps.GetColor())

			stats.TotalPixels++
			stats.TotalSamples += ps.SampleCount
			stats.MeanVariance += ps.EstimateVariance()
		}
	}
	if stats.TotalPixels > 0 {
		stats.MeanVariance /= float64(stats.TotalPixels)
	}
	return stats
}

// samplePixel accumulates SamplesPerPixel radiance estimates for pixel (i, j)
func (rt *Raytracer) samplePixel(world geometry.Shape, i, j int, sampler core.Sampler, ps *PixelStats) {
	for sample := 0; sample < rt.config.Sampling.SamplesPerPixel; sample++ {
		ray := rt.camera.GetRay(i, j, sampler)
		ps.AddSample(rt.integrator.RayColor(ray, world, sampler))
	}
}
