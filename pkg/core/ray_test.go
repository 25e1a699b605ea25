package core

import (
	"errors"
	"math"
	"testing"
)

func TestNewRay_NormalizesDirection(t *testing.T) {
	ray, err := NewRay(Origin, Vector{0, 0, -5})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if ray.Direction != (Vector{0, 0, -1}) {
		t.Errorf("Expected unit direction, got %v", ray.Direction)
	}
	if p := ray.At(2); !p.Equals(NewPoint3D(0, 0, -2)) {
		t.Errorf("Expected (0,0,-2), got %v", p)
	}

	if _, err := NewRay(Origin, Vector{}); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("Expected ErrInvalidArgument for zero direction, got %v", err)
	}
}

func TestNewOffsetRay(t *testing.T) {
	point := NewPoint3D(0, 0, 0)
	normal := Vector{0, 0, 1}

	tests := []struct {
		name      string
		direction Vector
		expected  Point3D
	}{
		{"Leaving along normal", Vector{0, 1, 1}, NewPoint3D(0, 0, Delta)},
		{"Leaving against normal", Vector{0, 0, -1}, NewPoint3D(0, 0, -Delta)},
		{"Tangent keeps origin", Vector{1, 0, 0}, point},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray, err := NewOffsetRay(point, tt.direction, normal)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if !ray.Origin.Equals(tt.expected) {
				t.Errorf("Expected origin %v, got %v", tt.expected, ray.Origin)
			}
		})
	}
}

func TestRay_Beam(t *testing.T) {
	ray, _ := NewRay(Origin, Vector{0, 0, -1})

	t.Run("Single ray or zero radius returns ideal ray", func(t *testing.T) {
		if beam := ray.Beam(1, 0.5, NewSeededSampler(1)); len(beam) != 1 || beam[0] != ray {
			t.Errorf("Expected only the ideal ray, got %v", beam)
		}
		if beam := ray.Beam(16, 0, NewSeededSampler(1)); len(beam) != 1 || beam[0] != ray {
			t.Errorf("Expected only the ideal ray, got %v", beam)
		}
	})

	t.Run("Jittered rays stay inside the disc", func(t *testing.T) {
		radius := 0.25
		beam := ray.Beam(64, radius, NewSeededSampler(7))
		if len(beam) != 64 {
			t.Fatalf("Expected 64 rays, got %d", len(beam))
		}
		if beam[0] != ray {
			t.Errorf("Expected the first ray to be the ideal ray")
		}
		maxAngle := math.Atan(radius) + 1e-9
		for i, r := range beam {
			if math.Abs(r.Direction.Length()-1) > 1e-9 {
				t.Errorf("Ray %d direction not unit length", i)
			}
			angle := math.Acos(math.Min(1, r.Direction.Dot(ray.Direction)))
			if angle > maxAngle {
				t.Errorf("Ray %d deviates %f rad, max %f", i, angle, maxAngle)
			}
			if r.Origin != ray.Origin {
				t.Errorf("Ray %d origin moved", i)
			}
		}
	})

	t.Run("Same seed gives same beam", func(t *testing.T) {
		a := ray.Beam(8, 0.3, NewSeededSampler(99))
		b := ray.Beam(8, 0.3, NewSeededSampler(99))
		for i := range a {
			if a[i] != b[i] {
				t.Fatalf("Beam differs at %d: %v vs %v", i, a[i], b[i])
			}
		}
	})
}

func TestSampleUnitDisk(t *testing.T) {
	sampler := NewSeededSampler(42)
	for i := 0; i < 1000; i++ {
		x, y := SampleUnitDisk(sampler)
		if x*x+y*y > 1 {
			t.Fatalf("Sample (%f, %f) outside unit disk", x, y)
		}
	}
}
