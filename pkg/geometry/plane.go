package geometry

import (
	"fmt"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Plane represents an infinite plane defined by a point and normal
type Plane struct {
	Surface
	Point  core.Point3D // A point on the plane
	Normal core.Vector  // Unit normal
}

// NewPlane creates a new plane; the normal must be non-zero
func NewPlane(point core.Point3D, normal core.Vector, surface Surface) (*Plane, error) {
	n, err := normal.Normalize()
	if err != nil {
		return nil, fmt.Errorf("%w: plane normal: %v", core.ErrInvalidArgument, err)
	}
	if err := surface.Material.Validate(); err != nil {
		return nil, err
	}
	return &Plane{Surface: surface, Point: point, Normal: n}, nil
}

// NewPlaneFromPoints creates the plane through three points; they must be distinct and not collinear
func NewPlaneFromPoints(p0, p1, p2 core.Point3D, surface Surface) (*Plane, error) {
	if p0.Equals(p1) || p1.Equals(p2) || p0.Equals(p2) {
		return nil, fmt.Errorf("%w: plane points must be distinct: %v %v %v", core.ErrInvalidArgument, p0, p1, p2)
	}
	normal := p1.Subtract(p0).Cross(p2.Subtract(p0))
	if normal.IsZero() {
		return nil, fmt.Errorf("%w: plane points are collinear: %v %v %v", core.ErrInvalidArgument, p0, p1, p2)
	}
	return NewPlane(p0, normal, surface)
}

// NormalAt returns the plane normal, which is the same everywhere
func (p *Plane) NormalAt(core.Point3D) (core.Vector, error) {
	return p.Normal, nil
}

// FindIntersections tests the ray against the plane
func (p *Plane) FindIntersections(ray core.Ray, maxDistance float64) []GeoPoint {
	point, ok := p.intersect(ray, maxDistance)
	if !ok {
		return nil
	}
	return []GeoPoint{{Geometry: p, Point: point}}
}

// intersect returns the plane hit point shared by planar primitives
func (p *Plane) intersect(ray core.Ray, maxDistance float64) (core.Point3D, bool) {
	// A ray starting on the reference point lies in the plane or leaves it immediately
	if ray.Origin.Equals(p.Point) {
		return core.Point3D{}, false
	}

	// Parallel rays never cross the plane
	denominator := core.AlignZero(p.Normal.Dot(ray.Direction))
	if denominator == 0 {
		return core.Point3D{}, false
	}

	// t = (point_on_plane - ray_origin) · normal / (ray_direction · normal)
	t := p.Normal.Dot(p.Point.Subtract(ray.Origin)) / denominator
	if !withinRange(t, maxDistance) {
		return core.Point3D{}, false
	}
	return ray.At(t), true
}
