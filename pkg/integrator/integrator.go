package integrator

import (
	"github.com/sevetis/ray-tracer/pkg/core"
	"github.com/sevetis/ray-tracer/pkg/geometry"
)

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor estimates the radiance arriving along ray
	RayColor(ray core.Ray, world geometry.Shape, sampler core.Sampler) core.Vec3
}

// Background is the sky seen by rays that escape the scene
type Background struct {
	Horizon core.Vec3 // color for rays pointing straight down
	Zenith  core.Vec3 // color for rays pointing straight up
}

// DefaultBackground returns a white-to-sky-blue gradient
func DefaultBackground() Background {
	return Background{
		Horizon: core.NewVec3(1.0, 1.0, 1.0),
		Zenith:  core.NewVec3(0.5, 0.7, 1.0),
	}
}

// Color returns the gradient color for the direction of r.
// The result depends only on the vertical component of the unit direction.
func (b Background) Color(r core.Ray) core.Vec3 {
	unitDirection := r.Direction.Normalize()

	// Map y from [-1,1] to [0,1]
	alpha := 0.5 * (unitDirection.Y + 1.0)

	return b.Horizon.Multiply(1.0 - alpha).Add(b.Zenith.Multiply(alpha))
}
