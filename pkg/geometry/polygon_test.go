package geometry

import (
	"errors"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

func TestNewPolygon_Validation(t *testing.T) {
	tests := []struct {
		name     string
		vertices []core.Point3D
		wantErr  bool
	}{
		{"Square", []core.Point3D{pt(0, 0, 1), pt(1, 0, 1), pt(1, 1, 1), pt(0, 1, 1)}, false},
		{"Pentagon", []core.Point3D{pt(0, 0, 0), pt(2, 0, 0), pt(3, 1, 0), pt(1, 3, 0), pt(-1, 1, 0)}, false},
		{"Too few vertices", []core.Point3D{pt(0, 0, 0), pt(1, 0, 0)}, true},
		{"Not coplanar", []core.Point3D{pt(0, 0, 0), pt(1, 0, 0), pt(1, 1, 0), pt(0, 1, 1)}, true},
		{"Concave", []core.Point3D{pt(0, 0, 0), pt(2, 0, 0), pt(1, 0.5, 0), pt(2, 2, 0), pt(0, 2, 0)}, true},
		{"Self-intersecting order", []core.Point3D{pt(0, 0, 0), pt(1, 1, 0), pt(1, 0, 0), pt(0, 1, 0)}, true},
		{"Duplicate vertex", []core.Point3D{pt(0, 0, 0), pt(1, 0, 0), pt(1, 0, 0), pt(0, 1, 0)}, true},
		{"Collinear middle vertex", []core.Point3D{pt(0, 0, 0), pt(1, 0, 0), pt(2, 0, 0), pt(0, 1, 0)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewPolygon(Surface{}, tt.vertices...)
			if tt.wantErr && !errors.Is(err, core.ErrInvalidArgument) {
				t.Errorf("Expected ErrInvalidArgument, got %v", err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Unexpected error: %v", err)
			}
		})
	}
}

func TestPolygon_FindIntersections(t *testing.T) {
	square, err := NewPolygon(Surface{}, pt(0, 0, 1), pt(1, 0, 1), pt(1, 1, 1), pt(0, 1, 1))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	inside := square.FindIntersections(mustRay(t, pt(0.7, 0.2, 3), 0, 0, -1), inf)
	if len(inside) != 1 || !inside[0].Point.Equals(pt(0.7, 0.2, 1)) {
		t.Errorf("Expected one hit at (0.7,0.2,1), got %v", inside)
	}
	if inside[0].Geometry != Geometry(square) {
		t.Errorf("Expected the hit to refer to the polygon")
	}

	if hits := square.FindIntersections(mustRay(t, pt(1.5, 0.5, 3), 0, 0, -1), inf); hits != nil {
		t.Errorf("Expected no hit outside the square, got %v", hits)
	}

	if hits := square.FindIntersections(mustRay(t, pt(0.5, 0.5, 3), 0, 0, -1), 1); hits != nil {
		t.Errorf("Expected the max distance to cut the hit off, got %v", hits)
	}

	normal, _ := square.NormalAt(pt(0.5, 0.5, 1))
	if normal != (core.Vector{X: 0, Y: 0, Z: 1}) {
		t.Errorf("Expected normal <0,0,1>, got %v", normal)
	}
}
