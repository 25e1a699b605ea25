package geometry

import (
	"fmt"
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Sphere represents a sphere shape
type Sphere struct {
	Surface
	Center core.Point3D
	Radius float64
}

// NewSphere creates a new sphere; the radius must be positive
func NewSphere(center core.Point3D, radius float64, surface Surface) (*Sphere, error) {
	if core.AlignZero(radius) <= 0 {
		return nil, fmt.Errorf("%w: sphere radius must be positive, got %g", core.ErrInvalidArgument, radius)
	}
	if err := surface.Material.Validate(); err != nil {
		return nil, err
	}
	return &Sphere{Surface: surface, Center: center, Radius: radius}, nil
}

// NormalAt returns the outward normal at a point on the sphere
func (s *Sphere) NormalAt(point core.Point3D) (core.Vector, error) {
	return point.Subtract(s.Center).Normalize()
}

// FindIntersections tests the ray against the sphere
func (s *Sphere) FindIntersections(ray core.Ray, maxDistance float64) []GeoPoint {
	// Vector from sphere center to ray origin
	oc := ray.Origin.Subtract(s.Center)

	// Direction is unit length so the quadratic is t² + 2·halfB·t + c = 0
	halfB := oc.Dot(ray.Direction)
	c := oc.LengthSquared() - s.Radius*s.Radius

	// A tangent ray grazes the surface without entering it
	discriminant := core.AlignZero(halfB*halfB - c)
	if discriminant <= 0 {
		return nil
	}

	sqrtD := math.Sqrt(discriminant)
	var hits []GeoPoint
	for _, t := range [2]float64{-halfB - sqrtD, -halfB + sqrtD} {
		if withinRange(t, maxDistance) {
			hits = append(hits, GeoPoint{Geometry: s, Point: ray.At(t)})
		}
	}
	return hits
}
