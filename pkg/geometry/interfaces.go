package geometry

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// Intersectable is anything a ray can be tested against
type Intersectable interface {
	// FindIntersections returns every point where the ray meets the object at a
	// positive distance no greater than maxDistance (which may be +Inf).
	// A nil result means no intersection.
	FindIntersections(ray core.Ray, maxDistance float64) []GeoPoint
}

// Geometry is a primitive surface with shading properties
type Geometry interface {
	Intersectable
	NormalAt(point core.Point3D) (core.Vector, error)
	GetMaterial() material.Material
	GetEmission() core.Color
}

// GeoPoint pairs an intersection point with the geometry it lies on.
// It only refers to a geometry owned by the scene and lives for a single query.
type GeoPoint struct {
	Geometry Geometry
	Point    core.Point3D
}

// Surface holds the shading properties shared by every primitive
type Surface struct {
	Emission core.Color
	Material material.Material
}

// GetEmission returns the light emitted by the surface
func (s Surface) GetEmission() core.Color {
	return s.Emission
}

// GetMaterial returns the surface material
func (s Surface) GetMaterial() material.Material {
	return s.Material
}

// ClosestGeoPoint returns the intersection nearest to origin
func ClosestGeoPoint(origin core.Point3D, points []GeoPoint) (GeoPoint, bool) {
	if len(points) == 0 {
		return GeoPoint{}, false
	}
	closest := points[0]
	closestDist := origin.DistanceSquared(closest.Point)
	for _, gp := range points[1:] {
		if d := origin.DistanceSquared(gp.Point); d < closestDist {
			closest, closestDist = gp, d
		}
	}
	return closest, true
}

// withinRange reports whether a ray parameter lies in (0, maxDistance]
func withinRange(t, maxDistance float64) bool {
	return core.AlignZero(t) > 0 && core.AlignZero(t-maxDistance) <= 0
}
