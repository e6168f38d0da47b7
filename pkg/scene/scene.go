package scene

import (
	"github.com/sevetis/ray-tracer/pkg/core"
	"github.com/sevetis/ray-tracer/pkg/geometry"
	"github.com/sevetis/ray-tracer/pkg/integrator"
	"github.com/sevetis/ray-tracer/pkg/material"
	"github.com/sevetis/ray-tracer/pkg/renderer"
)

// Scene contains all the elements needed for rendering.
// Shapes are added during setup and only read while rendering,
// so a Scene may be shared by any number of render workers.
type Scene struct {
	Shapes         []geometry.Shape // Objects in the scene, in insertion order
	CameraConfig   renderer.CameraConfig
	SamplingConfig renderer.SamplingConfig
	Background     integrator.Background
}

// NewScene creates an empty scene with default camera, sampling and sky
func NewScene() *Scene {
	return &Scene{
		Shapes:         make([]geometry.Shape, 0),
		CameraConfig:   renderer.DefaultCameraConfig(),
		SamplingConfig: renderer.DefaultSamplingConfig(),
		Background:     integrator.DefaultBackground(),
	}
}

// Add appends a shape to the scene
func (s *Scene) Add(shape geometry.Shape) {
	s.Shapes = append(s.Shapes, shape)
}

// AddSphere is a shorthand for adding a sphere with the given material
func (s *Scene) AddSphere(center core.Vec3, radius float64, mat material.Material) {
	s.Add(geometry.NewSphere(center, radius, mat))
}

// Hit returns the nearest intersection among all shapes with t in [tMin, tMax]
func (s *Scene) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	var closestHit *material.HitRecord
	closestSoFar := tMax

	for _, shape := range s.Shapes {
		if hit, isHit := shape.Hit(ray, tMin, closestSoFar); isHit {
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, closestHit != nil
}

// RenderConfig assembles the renderer configuration the scene was authored with
func (s *Scene) RenderConfig() renderer.RenderConfig {
	config := renderer.DefaultRenderConfig()
	config.Sampling = s.SamplingConfig
	config.Background = s.Background
	return config
}
