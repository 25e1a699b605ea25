package core

import (
	"fmt"
	"math"
)

// Point3D is an immutable position in space
type Point3D struct {
	X, Y, Z float64
}

// Vector is an immutable direction; constructors refuse the zero vector
type Vector struct {
	X, Y, Z float64
}

// Origin is the point (0,0,0)
var Origin = Point3D{}

// NewPoint3D creates a new point
func NewPoint3D(x, y, z float64) Point3D {
	return Point3D{X: x, Y: y, Z: z}
}

// Add returns the point translated by v
func (p Point3D) Add(v Vector) Point3D {
	return Point3D{p.X + v.X, p.Y + v.Y, p.Z + v.Z}
}

// Subtract returns the vector from other to p
func (p Point3D) Subtract(other Point3D) Vector {
	return Vector{p.X - other.X, p.Y - other.Y, p.Z - other.Z}
}

// DistanceSquared returns the squared Euclidean distance between two points
func (p Point3D) DistanceSquared(other Point3D) float64 {
	dx, dy, dz := p.X-other.X, p.Y-other.Y, p.Z-other.Z
	return dx*dx + dy*dy + dz*dz
}

// Distance returns the Euclidean distance between two points
func (p Point3D) Distance(other Point3D) float64 {
	return math.Sqrt(p.DistanceSquared(other))
}

// Equals reports whether two points coincide within Epsilon
func (p Point3D) Equals(other Point3D) bool {
	return IsZero(p.X-other.X) && IsZero(p.Y-other.Y) && IsZero(p.Z-other.Z)
}

func (p Point3D) String() string {
	return fmt.Sprintf("(%g, %g, %g)", p.X, p.Y, p.Z)
}

// NewVector creates a vector, failing on the zero vector
func NewVector(x, y, z float64) (Vector, error) {
	v := Vector{X: x, Y: y, Z: z}
	if v.IsZero() {
		return Vector{}, fmt.Errorf("%w: (%g, %g, %g)", ErrZeroVector, x, y, z)
	}
	return v, nil
}

// IsZero reports whether every component is within Epsilon of zero
func (v Vector) IsZero() bool {
	return IsZero(v.X) && IsZero(v.Y) && IsZero(v.Z)
}

// Add returns the sum of two vectors
func (v Vector) Add(other Vector) Vector {
	return Vector{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Subtract returns the difference of two vectors
func (v Vector) Subtract(other Vector) Vector {
	return Vector{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Scale returns the vector multiplied by a scalar
func (v Vector) Scale(scalar float64) Vector {
	return Vector{v.X * scalar, v.Y * scalar, v.Z * scalar}
}

// Negate returns the opposite vector
func (v Vector) Negate() Vector {
	return Vector{-v.X, -v.Y, -v.Z}
}

// Dot returns the dot product of two vectors
func (v Vector) Dot(other Vector) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product of two vectors
func (v Vector) Cross(other Vector) Vector {
	return Vector{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

// LengthSquared returns the squared magnitude of the vector
func (v Vector) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Length returns the magnitude of the vector
func (v Vector) Length() float64 {
	return math.Sqrt(v.LengthSquared())
}

// Normalize returns a unit vector in the same direction.
// A zero vector cannot be normalized and yields ErrZeroVector.
func (v Vector) Normalize() (Vector, error) {
	length := v.Length()
	if IsZero(length) {
		return Vector{}, ErrZeroVector
	}
	return Vector{v.X / length, v.Y / length, v.Z / length}, nil
}

// Perpendicular returns a unit vector orthogonal to v; v must be non-zero
func (v Vector) Perpendicular() Vector {
	// Pick the world axis least aligned with v
	var axis Vector
	if math.Abs(v.X) > 0.1 {
		axis = Vector{0, 1, 0}
	} else {
		axis = Vector{1, 0, 0}
	}
	u, _ := axis.Cross(v).Normalize()
	return u
}

func (v Vector) String() string {
	return fmt.Sprintf("<%g, %g, %g>", v.X, v.Y, v.Z)
}
