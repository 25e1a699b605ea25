package integrator

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
)

// RayTracer computes the color seen along a camera ray. TraceRay is total:
// it returns the scene background when nothing is hit and never fails.
type RayTracer interface {
	TraceRay(ray core.Ray) core.Color
}

// Scene is the read-only view of a scene the integrators need.
// Defined here to avoid importing the scene package.
type Scene interface {
	FindIntersections(ray core.Ray) []geometry.GeoPoint
	FindIntersectionsWithin(ray core.Ray, maxDistance float64) []geometry.GeoPoint
	GetLights() []lights.LightSource
	GetAmbientIntensity() core.Color
	GetBackground() core.Color
}
