package scene

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Name           string
	Geometries     *geometry.Geometries  // Objects in the scene
	Lights         []lights.LightSource  // Lights in the scene
	Ambient        lights.AmbientLight   // Uniform fill light, added once per primary ray
	Background     core.Color            // Color of rays that escape the scene
	CameraConfig   renderer.CameraConfig // Default viewpoint
	SamplingConfig SamplingConfig        // Suggested render settings
}

// SamplingConfig contains the render settings a scene is tuned for
type SamplingConfig struct {
	Width           int // Image width
	Height          int // Image height
	SamplesPerPixel int // Number of rays per pixel
	MaxLevel        int // Maximum reflection/refraction depth
	BeamSize        int // Rays per glossy beam
}

// NewScene creates an empty scene with a black background and no ambient light
func NewScene(name string) *Scene {
	return &Scene{
		Name:       name,
		Geometries: geometry.NewGeometries(),
		CameraConfig: renderer.CameraConfig{
			Center: core.NewPoint3D(0, 0, 10),
			LookAt: core.Origin,
			Up:     core.Vector{Y: 1},
			VFov:   40,
		},
		SamplingConfig: SamplingConfig{
			Width:           400,
			Height:          300,
			SamplesPerPixel: 1,
			MaxLevel:        10,
			BeamSize:        1,
		},
	}
}

// AddGeometry appends geometry to the scene
func (s *Scene) AddGeometry(items ...geometry.Intersectable) {
	s.Geometries.Add(items...)
}

// AddLight appends light sources to the scene
func (s *Scene) AddLight(sources ...lights.LightSource) {
	s.Lights = append(s.Lights, sources...)
}

// FindIntersections returns every intersection of the ray with the scene
func (s *Scene) FindIntersections(ray core.Ray) []geometry.GeoPoint {
	return s.Geometries.FindIntersections(ray, math.Inf(1))
}

// FindIntersectionsWithin returns the intersections no farther than maxDistance
func (s *Scene) FindIntersectionsWithin(ray core.Ray, maxDistance float64) []geometry.GeoPoint {
	return s.Geometries.FindIntersections(ray, maxDistance)
}

// GetLights returns the light sources
func (s *Scene) GetLights() []lights.LightSource {
	return s.Lights
}

// GetAmbientIntensity returns the ambient contribution
func (s *Scene) GetAmbientIntensity() core.Color {
	return s.Ambient.Intensity()
}

// GetBackground returns the background color
func (s *Scene) GetBackground() core.Color {
	return s.Background
}

// GetPrimitiveCount returns the number of top-level objects in the scene
func (s *Scene) GetPrimitiveCount() int {
	return s.Geometries.Len()
}
