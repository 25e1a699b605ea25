package geometry

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Triangle represents a single triangle defined by three vertices
type Triangle struct {
	Polygon
}

// NewTriangle creates a new triangle from three distinct, non-collinear vertices
func NewTriangle(v0, v1, v2 core.Point3D, surface Surface) (*Triangle, error) {
	polygon, err := NewPolygon(surface, v0, v1, v2)
	if err != nil {
		return nil, err
	}
	return &Triangle{Polygon: *polygon}, nil
}

// FindIntersections tests the ray against the triangle; a ray meets it at most once
func (t *Triangle) FindIntersections(ray core.Ray, maxDistance float64) []GeoPoint {
	return t.intersect(t, ray, maxDistance)
}
