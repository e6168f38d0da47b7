package geometry

import (
	"github.com/sevetis/ray-tracer/pkg/core"
	"github.com/sevetis/ray-tracer/pkg/material"
)

// Shape interface for objects that can be hit by rays.
// Implementations must be safe for concurrent use by render workers.
type Shape interface {
	Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool)
}
