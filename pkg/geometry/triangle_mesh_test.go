package geometry

import (
	"errors"
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// unitCube returns the corners and faces of an axis-aligned unit cube centred at the origin
func unitCube() ([]core.Point3D, []int) {
	vertices := []core.Point3D{
		pt(-0.5, -0.5, -0.5), pt(0.5, -0.5, -0.5), pt(0.5, 0.5, -0.5), pt(-0.5, 0.5, -0.5),
		pt(-0.5, -0.5, 0.5), pt(0.5, -0.5, 0.5), pt(0.5, 0.5, 0.5), pt(-0.5, 0.5, 0.5),
	}
	faces := []int{
		0, 1, 2, 0, 2, 3, // back
		4, 6, 5, 4, 7, 6, // front
		0, 3, 7, 0, 7, 4, // left
		1, 5, 6, 1, 6, 2, // right
		0, 4, 5, 0, 5, 1, // bottom
		3, 2, 6, 3, 6, 7, // top
	}
	return vertices, faces
}

func TestTriangleMesh_FindIntersections(t *testing.T) {
	vertices, faces := unitCube()
	mesh, err := NewTriangleMesh(vertices, faces, Surface{}, nil)
	if err != nil {
		t.Fatalf("NewTriangleMesh failed: %v", err)
	}
	if mesh.GetTriangleCount() != 12 {
		t.Errorf("Expected 12 triangles, got %d", mesh.GetTriangleCount())
	}

	tests := []struct {
		name     string
		ray      core.Ray
		expected int
	}{
		// (0,0) lies on the diagonal shared by both triangles of each face
		{"Through the face diagonals", mustRay(t, pt(0, 0, 5), 0, 0, -1), 2},
		{"Off the diagonals", mustRay(t, pt(0.2, -0.1, 5), 0, 0, -1), 2},
		{"Beside the cube", mustRay(t, pt(2, 0, 5), 0, 0, -1), 0},
		{"Along a face edge", mustRay(t, pt(0.5, 0.1, 5), 0, 0, -1), 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := len(mesh.FindIntersections(tt.ray, inf)); got != tt.expected {
				t.Errorf("Expected %d intersections, got %d", tt.expected, got)
			}
		})
	}
}

func TestTriangleMesh_Rotation(t *testing.T) {
	// A triangle in the XY plane turned a quarter around Z about (1,0,0)
	vertices := []core.Point3D{pt(1, 0, 0), pt(2, 0, 0), pt(1, 1, 0)}
	options := &TriangleMeshOptions{Rotation: core.Vector{Z: math.Pi / 2}, Center: pt(1, 0, 0)}
	mesh, err := NewTriangleMesh(vertices, []int{0, 1, 2}, Surface{}, options)
	if err != nil {
		t.Fatalf("NewTriangleMesh failed: %v", err)
	}

	// The rotated triangle spans (1,0,0), (1,1,0) and (0,0,0)
	if hits := mesh.FindIntersections(mustRay(t, pt(0.8, 0.1, 1), 0, 0, -1), inf); len(hits) != 1 {
		t.Errorf("Expected the rotated triangle to be hit, got %d hits", len(hits))
	}
	if hits := mesh.FindIntersections(mustRay(t, pt(1.5, 0.2, 1), 0, 0, -1), inf); len(hits) != 0 {
		t.Errorf("Expected the original position to be empty, got %d hits", len(hits))
	}
}

func TestNewTriangleMesh_Validation(t *testing.T) {
	vertices := []core.Point3D{pt(0, 0, 0), pt(1, 0, 0), pt(0, 1, 0), pt(2, 0, 0)}
	tests := []struct {
		name  string
		faces []int
	}{
		{"No faces", nil},
		{"Partial face", []int{0, 1, 2, 0}},
		{"Index out of bounds", []int{0, 1, 4}},
		{"Negative index", []int{0, -1, 2}},
		{"Degenerate face", []int{0, 1, 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewTriangleMesh(vertices, tt.faces, Surface{}, nil); !errors.Is(err, core.ErrInvalidArgument) {
				t.Errorf("Expected ErrInvalidArgument, got %v", err)
			}
		})
	}
}
