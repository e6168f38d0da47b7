package renderer

import (
	"time"

	"github.com/sevetis/ray-tracer/pkg/core"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels    int           // Total number of pixels rendered
	TotalSamples   int           // Total number of samples taken
	AverageSamples float64       // Average samples per pixel
	MeanVariance   float64       // Mean variance of the per-pixel luminance estimate
	Duration       time.Duration // Wall time of the render
}

// merge adds the counters of other into stats. Averages are recomputed by finalize.
func (stats *RenderStats) merge(other RenderStats) {
	// MeanVariance is accumulated as a sum until finalize
	stats.MeanVariance += other.MeanVariance * float64(other.TotalPixels)
	stats.TotalPixels += other.TotalPixels
	stats.TotalSamples += other.TotalSamples
}

// finalize turns accumulated sums into averages
func (stats *RenderStats) finalize() {
	if stats.TotalPixels == 0 {
		stats.MeanVariance = 0
		return
	}
	stats.AverageSamples = float64(stats.TotalSamples) / float64(stats.TotalPixels)
	stats.MeanVariance /= float64(stats.TotalPixels)
}

// PixelStats tracks sampling statistics for a single pixel
type PixelStats struct {
	ColorAccum       core.Vec3 // RGB accumulator for final result
	LuminanceAccum   float64   // Luminance accumulator for convergence
	LuminanceSqAccum float64   // Luminance squared for variance
	SampleCount      int       // Number of samples taken
}

// AddSample adds a new color sample to the pixel statistics
func (ps *PixelStats) AddSample(color core.Vec3) {
	ps.ColorAccum = ps.ColorAccum.Add(color)
	luminance := color.Luminance()
	ps.LuminanceAccum += luminance
	ps.LuminanceSqAccum += luminance * luminance
	ps.SampleCount++
}

// GetColor returns the current average color for this pixel
func (ps *PixelStats) GetColor() core.Vec3 {
	if ps.SampleCount == 0 {
		return core.Vec3{X: 0, Y: 0, Z: 0}
	}
	return ps.ColorAccum.Multiply(1.0 / float64(ps.SampleCount))
}

// EstimateVariance returns the variance of the mean luminance, which
// shrinks as 1/n for a fixed per-sample variance
func (ps *PixelStats) EstimateVariance() float64 {
	if ps.SampleCount < 2 {
		return 0
	}
	n := float64(ps.SampleCount)
	mean := ps.LuminanceAccum / n
	sampleVariance := max(0, ps.LuminanceSqAccum/n-mean*mean)
	return sampleVariance / n
}
