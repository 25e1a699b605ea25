package core

import "fmt"

// Delta is the distance a secondary ray origin is pushed off a surface
const Delta = 1e-3

// Ray represents a ray with an origin and a unit direction
type Ray struct {
	Origin    Point3D
	Direction Vector
}

// NewRay creates a new ray, normalizing the direction
func NewRay(origin Point3D, direction Vector) (Ray, error) {
	dir, err := direction.Normalize()
	if err != nil {
		return Ray{}, fmt.Errorf("%w: ray direction: %v", ErrInvalidArgument, err)
	}
	return Ray{Origin: origin, Direction: dir}, nil
}

// NewOffsetRay creates a ray from a surface point whose origin is moved by Delta
// along the normal, toward the side the direction points to.
func NewOffsetRay(point Point3D, direction, normal Vector) (Ray, error) {
	ray, err := NewRay(point, direction)
	if err != nil {
		return Ray{}, err
	}
	nd := AlignZero(normal.Dot(ray.Direction))
	switch {
	case nd > 0:
		ray.Origin = point.Add(normal.Scale(Delta))
	case nd < 0:
		ray.Origin = point.Add(normal.Scale(-Delta))
	}
	return ray, nil
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Point3D {
	return r.Origin.Add(r.Direction.Scale(t))
}

// Beam returns the ray followed by count-1 jittered siblings. Each sibling aims
// at a random point of a disc of the given radius, centred one unit along the
// ray and perpendicular to it.
func (r Ray) Beam(count int, radius float64, sampler Sampler) []Ray {
	if count <= 1 || radius <= 0 {
		return []Ray{r}
	}

	u := r.Direction.Perpendicular()
	v := r.Direction.Cross(u)
	center := r.Origin.Add(r.Direction)

	beam := make([]Ray, 0, count)
	beam = append(beam, r)
	for len(beam) < count {
		x, y := SampleUnitDisk(sampler)
		target := center.Add(u.Scale(x * radius)).Add(v.Scale(y * radius))
		// the disc offset is perpendicular to a unit vector, so the length is >= 1
		dir, _ := target.Subtract(r.Origin).Normalize()
		beam = append(beam, Ray{Origin: r.Origin, Direction: dir})
	}
	return beam
}

func (r Ray) String() string {
	return fmt.Sprintf("ray{%v -> %v}", r.Origin, r.Direction)
}
