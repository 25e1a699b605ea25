package geometry

import (
	"fmt"
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Tube is an infinite cylinder around an axis ray
type Tube struct {
	Surface
	Axis   core.Ray
	Radius float64
}

// NewTube creates a new tube; the radius must be positive
func NewTube(axis core.Ray, radius float64, surface Surface) (*Tube, error) {
	if core.AlignZero(radius) <= 0 {
		return nil, fmt.Errorf("%w: tube radius must be positive, got %g", core.ErrInvalidArgument, radius)
	}
	if err := surface.Material.Validate(); err != nil {
		return nil, err
	}
	return &Tube{Surface: surface, Axis: axis, Radius: radius}, nil
}

// NormalAt returns the radial normal at a point on the tube surface
func (tb *Tube) NormalAt(point core.Point3D) (core.Vector, error) {
	// Project onto the axis to find the nearest axis point
	t := tb.Axis.Direction.Dot(point.Subtract(tb.Axis.Origin))
	if core.IsZero(t) {
		// the projection is the axis origin itself
		return point.Subtract(tb.Axis.Origin).Normalize()
	}
	return point.Subtract(tb.Axis.At(t)).Normalize()
}

// FindIntersections tests the ray against the infinite tube
func (tb *Tube) FindIntersections(ray core.Ray, maxDistance float64) []GeoPoint {
	var hits []GeoPoint
	for _, t := range tb.roots(ray) {
		if withinRange(t, maxDistance) {
			hits = append(hits, GeoPoint{Geometry: tb, Point: ray.At(t)})
		}
	}
	return hits
}

// roots solves for the ray parameters where the ray meets the tube surface.
// Only the components perpendicular to the axis matter:
// a = 1 - (D·V)², b = 2[Δ·D - (Δ·V)(D·V)], c = |Δ|² - (Δ·V)² - r²
func (tb *Tube) roots(ray core.Ray) []float64 {
	delta := ray.Origin.Subtract(tb.Axis.Origin)
	dv := ray.Direction.Dot(tb.Axis.Direction)
	deltaV := delta.Dot(tb.Axis.Direction)

	a := core.AlignZero(1 - dv*dv)
	if a == 0 {
		// Ray is parallel to the axis and never crosses the surface
		return nil
	}
	b := 2.0 * (delta.Dot(ray.Direction) - deltaV*dv)
	c := delta.LengthSquared() - deltaV*deltaV - tb.Radius*tb.Radius

	discriminant := core.AlignZero(b*b - 4*a*c)
	if discriminant <= 0 {
		return nil
	}
	sqrtD := math.Sqrt(discriminant)
	return []float64{(-b - sqrtD) / (2 * a), (-b + sqrtD) / (2 * a)}
}
