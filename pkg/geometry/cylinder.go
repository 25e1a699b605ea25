package geometry

import (
	"fmt"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Cylinder represents a finite cylinder shape (open-ended, no caps)
// starting at the axis origin and extending Height along the axis direction
type Cylinder struct {
	Tube
	Height float64
}

// NewCylinder creates a new cylinder; radius and height must be positive
func NewCylinder(axis core.Ray, radius, height float64, surface Surface) (*Cylinder, error) {
	if core.AlignZero(height) <= 0 {
		return nil, fmt.Errorf("%w: cylinder height must be positive, got %g", core.ErrInvalidArgument, height)
	}
	tube, err := NewTube(axis, radius, surface)
	if err != nil {
		return nil, err
	}
	return &Cylinder{Tube: *tube, Height: height}, nil
}

// FindIntersections tests the ray against the cylinder wall
func (c *Cylinder) FindIntersections(ray core.Ray, maxDistance float64) []GeoPoint {
	var hits []GeoPoint
	for _, t := range c.roots(ray) {
		if !withinRange(t, maxDistance) {
			continue
		}
		point := ray.At(t)
		// Check height bounds
		h := point.Subtract(c.Axis.Origin).Dot(c.Axis.Direction)
		if core.AlignZero(h) < 0 || core.AlignZero(h-c.Height) > 0 {
			continue
		}
		hits = append(hits, GeoPoint{Geometry: c, Point: point})
	}
	return hits
}
