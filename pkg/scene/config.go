package scene

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/sevetis/ray-tracer/pkg/core"
	"github.com/sevetis/ray-tracer/pkg/integrator"
	"github.com/sevetis/ray-tracer/pkg/material"
	"github.com/sevetis/ray-tracer/pkg/renderer"
)

// Vec is a JSON triple such as [0, 1, -2]
type Vec [3]float64

func (v Vec) toVec3() core.Vec3 {
	return core.NewVec3(v[0], v[1], v[2])
}

// CameraCfg describes the camera; zero-valued fields keep the defaults
type CameraCfg struct {
	LookFrom      Vec     `json:"lookFrom"`
	LookAt        Vec     `json:"lookAt"`
	Up            Vec     `json:"up,omitempty"`
	Width         int     `json:"width"`
	AspectRatio   float64 `json:"aspectRatio"`
	VFov          float64 `json:"vfov"`
	FocusDistance float64 `json:"focusDistance,omitempty"` // 0 = distance to lookAt
	DefocusAngle  float64 `json:"defocusAngle,omitempty"`  // <= 0 disables depth of field
}

// SamplingCfg overrides the sampling defaults. MaxDepth is a pointer so an explicit 0 is kept.
type SamplingCfg struct {
	SamplesPerPixel int  `json:"samplesPerPixel,omitempty"`
	MaxDepth        *int `json:"maxDepth,omitempty"`
}

// BackgroundCfg sets the sky gradient colors
type BackgroundCfg struct {
	Horizon *Vec `json:"horizon,omitempty"`
	Zenith  *Vec `json:"zenith,omitempty"`
}

// MaterialCfg describes a surface material
type MaterialCfg struct {
	Type   string  `json:"type"` // lambertian, metal or dielectric
	Albedo Vec     `json:"albedo,omitempty"`
	Fuzz   float64 `json:"fuzz,omitempty"`
	IOR    float64 `json:"ior,omitempty"`
}

// SphereCfg describes one sphere and its material
type SphereCfg struct {
	Center   Vec         `json:"center"`
	Radius   float64     `json:"radius"`
	Material MaterialCfg `json:"material"`
}

// Config is the JSON description of a scene
type Config struct {
	Name        string        `json:"name,omitempty"`
	Description string        `json:"description,omitempty"`
	Camera      CameraCfg     `json:"camera"`
	Sampling    SamplingCfg   `json:"sampling,omitempty"`
	Background  BackgroundCfg `json:"background,omitempty"`
	Spheres     []SphereCfg   `json:"spheres"`
}

// LoadConfig reads a JSON scene description from path
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scene config: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig decodes a JSON scene description
func ParseConfig(data []byte) (*Config, error) {
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse scene config: %w", err)
	}
	return &cfg, nil
}

// Build validates the material descriptor and constructs the material
func (mc MaterialCfg) Build() (material.Material, error) {
	switch mc.Type {
	case "lambertian":
		return material.NewLambertian(mc.Albedo.toVec3()), nil
	case "metal":
		return material.NewMetal(mc.Albedo.toVec3(), mc.Fuzz), nil
	case "dielectric":
		if mc.IOR <= 0 {
			return material.Material{}, fmt.Errorf("dielectric ior must be > 0, got %g", mc.IOR)
		}
		return material.NewDielectric(mc.IOR), nil
	}
	return material.Material{}, fmt.Errorf("unknown material type %q", mc.Type)
}

// Build validates the camera descriptor; unset fields keep their defaults
func (cc CameraCfg) Build() (renderer.CameraConfig, error) {
	config := renderer.DefaultCameraConfig()
	config.LookFrom = cc.LookFrom.toVec3()
	config.LookAt = cc.LookAt.toVec3()
	if cc.Up != (Vec{}) {
		config.Up = cc.Up.toVec3()
	}
	if cc.Width != 0 {
		config.Width = cc.Width
	}
	if cc.AspectRatio != 0 {
		config.AspectRatio = cc.AspectRatio
	}
	if cc.VFov != 0 {
		config.VFov = cc.VFov
	}
	config.FocusDistance = cc.FocusDistance
	config.DefocusAngle = cc.DefocusAngle

	if err := config.Validate(); err != nil {
		return renderer.CameraConfig{}, err
	}
	return config, nil
}

// Build turns the description into a scene ready to render
func (c *Config) Build() (*Scene, error) {
	s := NewScene()

	cameraConfig, err := c.Camera.Build()
	if err != nil {
		return nil, fmt.Errorf("camera: %w", err)
	}
	s.CameraConfig = cameraConfig

	if c.Sampling.SamplesPerPixel != 0 {
		s.SamplingConfig.SamplesPerPixel = c.Sampling.SamplesPerPixel
	}
	if c.Sampling.MaxDepth != nil {
		s.SamplingConfig.MaxDepth = *c.Sampling.MaxDepth
	}
	if err := s.SamplingConfig.Validate(); err != nil {
		return nil, fmt.Errorf("sampling: %w", err)
	}

	s.Background = c.Background.Build()

	for i, sc := range c.Spheres {
		if sc.Radius == 0 {
			return nil, fmt.Errorf("sphere %d: radius must be non-zero", i)
		}
		mat, err := sc.Material.Build()
		if err != nil {
			return nil, fmt.Errorf("sphere %d: %w", i, err)
		}
		s.AddSphere(sc.Center.toVec3(), sc.Radius, mat)
	}

	return s, nil
}

// Build fills unset sky colors with the defaults
func (bc BackgroundCfg) Build() integrator.Background {
	bg := integrator.DefaultBackground()
	if bc.Horizon != nil {
		bg.Horizon = bc.Horizon.toVec3()
	}
	if bc.Zenith != nil {
		bg.Zenith = bc.Zenith.toVec3()
	}
	return bg
}
