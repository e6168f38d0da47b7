package renderer

import (
	"fmt"
	"math"

	"github.com/sevetis/ray-tracer/pkg/core"
)

// CameraConfig contains all parameters needed to create a camera
type CameraConfig struct {
	LookFrom      core.Vec3 // Eye position
	LookAt        core.Vec3 // Point the camera is looking at
	Up            core.Vec3 // World up hint, zero means +Y
	Width         int       // Image width in pixels
	AspectRatio   float64   // Width / height
	VFov          float64   // Vertical field of view in degrees
	FocusDistance float64   // Distance to the plane of perfect focus (0 = distance to LookAt)
	DefocusAngle  float64   // Cone angle in degrees through each pixel (<= 0 = pinhole)
	DisableJitter bool      // Sample pixel centers only
}

// DefaultCameraConfig returns a pinhole camera at the origin looking down -Z
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		LookFrom:    core.NewVec3(0, 0, 0),
		LookAt:      core.NewVec3(0, 0, -1),
		Up:          core.NewVec3(0, 1, 0),
		Width:       400,
		AspectRatio: 16.0 / 9.0,
		VFov:        90.0,
	}
}

// Validate reports configuration values that cannot produce an image.
// Coincident LookFrom and LookAt are not checked.
func (c CameraConfig) Validate() error {
	if c.Width <= 0 {
		return fmt.Errorf("width must be > 0, got %d", c.Width)
	}
	if c.AspectRatio <= 0 {
		return fmt.Errorf("aspect ratio must be > 0, got %g", c.AspectRatio)
	}
	if c.VFov <= 0 || c.VFov >= 180 {
		return fmt.Errorf("vertical fov must be in (0, 180) degrees, got %g", c.VFov)
	}
	return nil
}

// ImageHeight returns the image height implied by width and aspect ratio, at least 1
func (c CameraConfig) ImageHeight() int {
	return max(1, int(float64(c.Width)/c.AspectRatio))
}

// Camera generates rays for rendering. It is immutable after NewCamera
// and safe to share between render workers.
type Camera struct {
	config        CameraConfig
	width, height int
	eye           core.Vec3
	pixel00       core.Vec3 // Center of the top-left pixel
	deltaU        core.Vec3 // Offset to the pixel to the right
	deltaV        core.Vec3 // Offset to the pixel below
	u, v, w       core.Vec3 // Camera frame basis vectors
	defocusDiskU  core.Vec3
	defocusDiskV  core.Vec3
}

// NewCamera creates a camera with the given configuration
func NewCamera(config CameraConfig) *Camera {
	up := config.Up
	if up.Equals(core.Vec3{}) {
		up = core.NewVec3(0, 1, 0)
	}

	focusDistance := config.FocusDistance
	if focusDistance <= 0 {
		focusDistance = config.LookFrom.Subtract(config.LookAt).Length()
	}

	width := config.Width
	height := config.ImageHeight()

	theta := degreesToRadians(config.VFov)
	viewportHeight := 2.0 * math.Tan(theta/2) * focusDistance
	viewportWidth := viewportHeight * float64(width) / float64(height)

	// Orthonormal basis: w points backwards, u right, v up
	w := config.LookFrom.Subtract(config.LookAt).Normalize()
	u := up.Cross(w).Normalize()
	v := w.Cross(u)

	// Rows go top to bottom, so the vertical edge points down
	viewportU := u.Multiply(viewportWidth)
	viewportV := v.Negate().Multiply(viewportHeight)

	deltaU := viewportU.Divide(float64(width))
	deltaV := viewportV.Divide(float64(height))

	upperLeft := config.LookFrom.
		Subtract(w.Multiply(focusDistance)).
		Subtract(viewportU.Multiply(0.5)).
		Subtract(viewportV.Multiply(0.5))
	pixel00 := upperLeft.Add(deltaU.Add(deltaV).Multiply(0.5))

	defocusRadius := focusDistance * math.Tan(degreesToRadians(config.DefocusAngle/2))

	return &Camera{
		config:       config,
		width:        width,
		height:       height,
		eye:          config.LookFrom,
		pixel00:      pixel00,
		deltaU:       deltaU,
		deltaV:       deltaV,
		u:            u,
		v:            v,
		w:            w,
		defocusDiskU: u.Multiply(defocusRadius),
		defocusDiskV: v.Multiply(defocusRadius),
	}
}

// Width returns the image width in pixels
func (c *Camera) Width() int { return c.width }

// Height returns the image height in pixels
func (c *Camera) Height() int { return c.height }

// GetCameraForward returns the unit viewing direction
func (c *Camera) GetCameraForward() core.Vec3 {
	return c.w.Negate()
}

// PixelCenter returns the point on the focus plane at the center of pixel (i, j)
func (c *Camera) PixelCenter(i, j int) core.Vec3 {
	return c.pixel00.
		Add(c.deltaU.Multiply(float64(i))).
		Add(c.deltaV.Multiply(float64(j)))
}

// GetRay returns a sample ray through pixel column i, row j.
// The sample point is jittered within the pixel unless jitter is disabled,
// and the origin is drawn from the defocus disk when DefocusAngle > 0.
func (c *Camera) GetRay(i, j int, sampler core.Sampler) core.Ray {
	offsetX, offsetY := 0.0, 0.0
	if !c.config.DisableJitter {
		jitter := sampler.Get2D()
		offsetX, offsetY = jitter.X-0.5, jitter.Y-0.5
	}

	pixelSample := c.pixel00.
		Add(c.deltaU.Multiply(float64(i) + offsetX)).
		Add(c.deltaV.Multiply(float64(j) + offsetY))

	origin := c.eye
	if c.config.DefocusAngle > 0 {
		origin = c.defocusDiskSample(sampler)
	}

	return core.NewRay(origin, pixelSample.Subtract(origin))
}

// defocusDiskSample returns a random point on the lens disk
func (c *Camera) defocusDiskSample(sampler core.Sampler) core.Vec3 {
	p := core.SamplePointInUnitDisk(sampler.Get2D())
	return c.eye.Add(c.defocusDiskU.Multiply(p.X)).Add(c.defocusDiskV.Multiply(p.Y))
}

func degreesToRadians(degrees float64) float64 {
	return degrees * math.Pi / 180.0
}
