package geometry

import (
	"fmt"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Polygon is a convex planar polygon; vertices are kept in winding order
type Polygon struct {
	Surface
	Vertices []core.Point3D
	plane    *Plane
	centroid core.Point3D
}

// NewPolygon creates a convex polygon. The vertices must be distinct, coplanar,
// ordered along the boundary and form a convex shape.
func NewPolygon(surface Surface, vertices ...core.Point3D) (*Polygon, error) {
	if len(vertices) < 3 {
		return nil, fmt.Errorf("%w: polygon needs at least 3 vertices, got %d", core.ErrInvalidArgument, len(vertices))
	}

	plane, err := NewPlaneFromPoints(vertices[0], vertices[1], vertices[2], surface)
	if err != nil {
		return nil, err
	}

	n := len(vertices)
	var sign float64
	for i := range vertices {
		prev := vertices[(i+n-1)%n]
		curr := vertices[i]
		next := vertices[(i+1)%n]

		if !core.IsZero(plane.Normal.Dot(curr.Subtract(vertices[0]))) {
			return nil, fmt.Errorf("%w: polygon vertex %d %v is not in the plane", core.ErrInvalidArgument, i, curr)
		}

		// Consecutive edges must turn the same way around the normal; a zero turn
		// means duplicate or collinear vertices
		turn := core.AlignZero(curr.Subtract(prev).Cross(next.Subtract(curr)).Dot(plane.Normal))
		if turn == 0 {
			return nil, fmt.Errorf("%w: polygon vertex %d %v is duplicate or collinear", core.ErrInvalidArgument, i, curr)
		}
		if sign == 0 {
			sign = turn
		} else if !core.SameSign(sign, turn) {
			return nil, fmt.Errorf("%w: polygon is not convex at vertex %d", core.ErrInvalidArgument, i)
		}
	}

	var sum core.Vector
	for _, v := range vertices {
		sum = sum.Add(v.Subtract(core.Origin))
	}

	return &Polygon{
		Surface:  surface,
		Vertices: append([]core.Point3D(nil), vertices...),
		plane:    plane,
		centroid: core.Origin.Add(sum.Scale(1.0 / float64(n))),
	}, nil
}

// NormalAt returns the normal of the supporting plane
func (p *Polygon) NormalAt(core.Point3D) (core.Vector, error) {
	return p.plane.Normal, nil
}

// GetPlane returns the supporting plane
func (p *Polygon) GetPlane() *Plane {
	return p.plane
}

// FindIntersections tests the ray against the polygon
func (p *Polygon) FindIntersections(ray core.Ray, maxDistance float64) []GeoPoint {
	return p.intersect(p, ray, maxDistance)
}

// intersect finds the supporting plane hit and keeps it only if it lies inside
// the polygon. Each edge together with the ray origin spans a side plane; the
// hit is inside when the ray direction lies on the same side of all of them.
// owner is the geometry reported in the result.
func (p *Polygon) intersect(owner Geometry, ray core.Ray, maxDistance float64) []GeoPoint {
	point, ok := p.plane.intersect(ray, maxDistance)
	if !ok {
		return nil
	}

	n := len(p.Vertices)
	var sign float64
	var boundary []int
	for i := 0; i < n; i++ {
		vi := p.Vertices[i].Subtract(ray.Origin)
		vj := p.Vertices[(i+1)%n].Subtract(ray.Origin)

		side, err := vi.Cross(vj).Normalize()
		if err != nil {
			// origin on the edge line
			boundary = append(boundary, i)
			continue
		}

		d := core.AlignZero(side.Dot(ray.Direction))
		switch {
		case d == 0:
			boundary = append(boundary, i)
		case sign == 0:
			sign = d
		case !core.SameSign(sign, d):
			return nil
		}
	}

	// A vertex hit must be claimed on every boundary edge: never counted twice, but a fan may drop it
	for _, edge := range boundary {
		if !p.claimsEdge(edge, ray.Direction) {
			return nil
		}
	}
	return []GeoPoint{{Geometry: owner, Point: point}}
}

// claimsEdge decides which of two polygons sharing an edge owns hits on it.
// The edge is oriented canonically (lexicographically smaller endpoint first),
// which makes the plane through it and the ray direction the same for both
// neighbours; only the polygon whose centroid lies on its positive side claims
// the hit.
func (p *Polygon) claimsEdge(edge int, direction core.Vector) bool {
	a := p.Vertices[edge]
	b := p.Vertices[(edge+1)%len(p.Vertices)]
	if lessPoint(b, a) {
		a, b = b, a
	}
	splitter := b.Subtract(a).Cross(direction)
	return core.AlignZero(splitter.Dot(p.centroid.Subtract(a))) > 0
}

func lessPoint(a, b core.Point3D) bool {
	if a.X != b.X {
		return a.X < b.X
	}
	if a.Y != b.Y {
		return a.Y < b.Y
	}
	return a.Z < b.Z
}
