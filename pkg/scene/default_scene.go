package scene

import (
	"github.com/sevetis/ray-tracer/pkg/core"
	"github.com/sevetis/ray-tracer/pkg/material"
	"github.com/sevetis/ray-tracer/pkg/renderer"
)

// NewDefaultScene creates a default scene with a ground sphere and four feature spheres
func NewDefaultScene() *Scene {
	s := NewScene()
	s.CameraConfig = renderer.CameraConfig{
		LookFrom:      core.NewVec3(-2, 2, 1),
		LookAt:        core.NewVec3(0, 0, -1),
		Up:            core.NewVec3(0, 1, 0),
		Width:         400,
		AspectRatio:   16.0 / 9.0,
		VFov:          20.0,
		DefocusAngle:  10.0,
		FocusDistance: 3.4,
	}

	lambertianGround := material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0))
	lambertianBlue := material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5))
	metalGold := material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.3)
	materialGlass := material.NewDielectric(1.5)

	s.AddSphere(core.NewVec3(0, -100.5, -1), 100, lambertianGround)
	s.AddSphere(core.NewVec3(0, 0, -1.2), 0.5, lambertianBlue)

	// Hollow glass: the inner wall is a sphere with negative radius
	s.AddSphere(core.NewVec3(-1, 0, -1), 0.5, materialGlass)
	s.AddSphere(core.NewVec3(-1, 0, -1), -0.4, materialGlass)

	s.AddSphere(core.NewVec3(1, 0, -1), 0.5, metalGold)

	return s
}

// NewSingleSphereScene creates a scene with one diffuse sphere in front of a pinhole camera at the origin
func NewSingleSphereScene() *Scene {
	s := NewEmptyScene()
	s.AddSphere(core.NewVec3(0, 0, -1), 0.5, material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5)))
	return s
}

// NewEmptyScene creates a scene with no objects, showing only the sky
func NewEmptyScene() *Scene {
	s := NewScene()
	s.CameraConfig = renderer.CameraConfig{
		LookFrom:    core.NewVec3(0, 0, 0),
		LookAt:      core.NewVec3(0, 0, -1),
		Up:          core.NewVec3(0, 1, 0),
		Width:       400,
		AspectRatio: 16.0 / 9.0,
		VFov:        90.0,
	}
	return s
}
