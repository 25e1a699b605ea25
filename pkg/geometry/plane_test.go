package geometry

import (
	"errors"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

func TestNewPlaneFromPoints_Validation(t *testing.T) {
	tests := []struct {
		name       string
		p0, p1, p2 core.Point3D
		wantErr    bool
	}{
		{"Valid", pt(0, 0, 0), pt(1, 0, 0), pt(0, 1, 0), false},
		{"Duplicate points", pt(0, 0, 0), pt(0, 0, 0), pt(0, 1, 0), true},
		{"Collinear points", pt(0, 0, 0), pt(1, 1, 1), pt(2, 2, 2), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plane, err := NewPlaneFromPoints(tt.p0, tt.p1, tt.p2, Surface{})
			if tt.wantErr {
				if !errors.Is(err, core.ErrInvalidArgument) {
					t.Errorf("Expected ErrInvalidArgument, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if plane.Normal != (core.Vector{X: 0, Y: 0, Z: 1}) {
				t.Errorf("Expected normal <0,0,1>, got %v", plane.Normal)
			}
		})
	}

	if _, err := NewPlane(pt(0, 0, 0), core.Vector{}, Surface{}); !errors.Is(err, core.ErrInvalidArgument) {
		t.Errorf("Expected ErrInvalidArgument for zero normal, got %v", err)
	}
}

func TestPlane_FindIntersections(t *testing.T) {
	plane, err := NewPlane(pt(0, 0, 0), core.Vector{X: 0, Y: 1, Z: 0}, Surface{})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	tests := []struct {
		name        string
		ray         core.Ray
		maxDistance float64
		expected    *core.Point3D
	}{
		{"Ray hits from above", mustRay(t, pt(1, 2, 3), 0, -1, 0), inf, &core.Point3D{X: 1, Y: 0, Z: 3}},
		{"Ray hits from below", mustRay(t, pt(1, -2, 3), 0, 1, 0), inf, &core.Point3D{X: 1, Y: 0, Z: 3}},
		{"Ray pointing away", mustRay(t, pt(1, 2, 3), 0, 1, 0), inf, nil},
		{"Ray parallel to plane", mustRay(t, pt(0, 1, 0), 1, 0, 0), inf, nil},
		{"Ray inside plane", mustRay(t, pt(1, 0, 0), 1, 0, 0), inf, nil},
		{"Ray starts on plane", mustRay(t, pt(1, 0, 0), 0, 1, 0), inf, nil},
		{"Ray starts at reference point", mustRay(t, pt(0, 0, 0), 0, -1, 1), inf, nil},
		{"Hit beyond max distance", mustRay(t, pt(1, 2, 3), 0, -1, 0), 1.5, nil},
		{"Hit exactly at max distance", mustRay(t, pt(1, 2, 3), 0, -1, 0), 2, &core.Point3D{X: 1, Y: 0, Z: 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hits := plane.FindIntersections(tt.ray, tt.maxDistance)
			if tt.expected == nil {
				if hits != nil {
					t.Errorf("Expected no hits, got %v", hits)
				}
				return
			}
			if len(hits) != 1 {
				t.Fatalf("Expected exactly one hit, got %v", hits)
			}
			if !hits[0].Point.Equals(*tt.expected) {
				t.Errorf("Expected %v, got %v", *tt.expected, hits[0].Point)
			}
		})
	}
}
