package geometry

import (
	"fmt"
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// TriangleMesh is an indexed set of triangles sharing one surface.
// Adjacent faces share edges, so the polygon edge rule decides which face
// reports a hit that lands exactly on a shared edge.
type TriangleMesh struct {
	triangles *Geometries
	count     int
}

// TriangleMeshOptions contains optional parameters for triangle mesh creation
type TriangleMeshOptions struct {
	Rotation core.Vector  // Rotation in radians around X, Y then Z
	Center   core.Point3D // Pivot for the rotation
}

// NewTriangleMesh creates a new triangle mesh from vertices and face indices
// vertices: array of 3D points
// faces: array of triangle indices (each group of 3 indices forms a triangle)
// options: optional parameters (can be nil for basic mesh)
func NewTriangleMesh(vertices []core.Point3D, faces []int, surface Surface, options *TriangleMeshOptions) (*TriangleMesh, error) {
	if len(faces) == 0 || len(faces)%3 != 0 {
		return nil, fmt.Errorf("%w: face indices must be a non-empty multiple of 3, got %d", core.ErrInvalidArgument, len(faces))
	}

	workingVertices := vertices
	if options != nil && !options.Rotation.IsZero() {
		workingVertices = make([]core.Point3D, len(vertices))
		for i, vertex := range vertices {
			offset := rotateVector(vertex.Subtract(options.Center), options.Rotation)
			workingVertices[i] = options.Center.Add(offset)
		}
	}

	mesh := &TriangleMesh{triangles: NewGeometries(), count: len(faces) / 3}
	for i := 0; i < mesh.count; i++ {
		i0, i1, i2 := faces[i*3], faces[i*3+1], faces[i*3+2]
		for _, index := range []int{i0, i1, i2} {
			if index < 0 || index >= len(workingVertices) {
				return nil, fmt.Errorf("%w: face %d index %d out of bounds", core.ErrInvalidArgument, i, index)
			}
		}

		triangle, err := NewTriangle(workingVertices[i0], workingVertices[i1], workingVertices[i2], surface)
		if err != nil {
			return nil, fmt.Errorf("face %d: %w", i, err)
		}
		mesh.triangles.Add(triangle)
	}
	return mesh, nil
}

// FindIntersections tests the ray against every face of the mesh
func (tm *TriangleMesh) FindIntersections(ray core.Ray, maxDistance float64) []GeoPoint {
	return tm.triangles.FindIntersections(ray, maxDistance)
}

// GetTriangleCount returns the number of triangles in this mesh
func (tm *TriangleMesh) GetTriangleCount() int {
	return tm.count
}

// rotateVector applies rotation around X, Y, Z axes (in that order)
func rotateVector(v, rotation core.Vector) core.Vector {
	if rotation.X != 0 {
		cos, sin := math.Cos(rotation.X), math.Sin(rotation.X)
		v = core.Vector{X: v.X, Y: v.Y*cos - v.Z*sin, Z: v.Y*sin + v.Z*cos}
	}
	if rotation.Y != 0 {
		cos, sin := math.Cos(rotation.Y), math.Sin(rotation.Y)
		v = core.Vector{X: v.X*cos + v.Z*sin, Y: v.Y, Z: -v.X*sin + v.Z*cos}
	}
	if rotation.Z != 0 {
		cos, sin := math.Cos(rotation.Z), math.Sin(rotation.Z)
		v = core.Vector{X: v.X*cos - v.Y*sin, Y: v.X*sin + v.Y*cos, Z: v.Z}
	}
	return v
}
