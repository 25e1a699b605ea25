package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

func mustRay(t *testing.T, origin core.Point3D, x, y, z float64) core.Ray {
	t.Helper()
	ray, err := core.NewRay(origin, core.Vector{X: x, Y: y, Z: z})
	if err != nil {
		t.Fatalf("Failed to create ray: %v", err)
	}
	return ray
}

func pt(x, y, z float64) core.Point3D {
	return core.NewPoint3D(x, y, z)
}

var inf = math.Inf(1)
