package lights

import (
	"fmt"
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// SpotLight is a point light whose intensity is scaled by the cosine between
// its axis and the direction to the point, raised to Narrowness
type SpotLight struct {
	PointLight
	direction  core.Vector
	narrowness float64
}

// NewSpotLight creates a spot light aimed along direction
func NewSpotLight(intensity core.Color, position core.Point3D, direction core.Vector, kC, kL, kQ float64) (*SpotLight, error) {
	return NewNarrowSpotLight(intensity, position, direction, kC, kL, kQ, 1)
}

// NewNarrowSpotLight creates a spot light whose beam tightens as narrowness grows (narrowness >= 1)
func NewNarrowSpotLight(intensity core.Color, position core.Point3D, direction core.Vector, kC, kL, kQ, narrowness float64) (*SpotLight, error) {
	point, err := NewPointLight(intensity, position, kC, kL, kQ)
	if err != nil {
		return nil, err
	}
	dir, err := direction.Normalize()
	if err != nil {
		return nil, fmt.Errorf("%w: spot light direction: %v", core.ErrInvalidArgument, err)
	}
	if narrowness < 1 {
		return nil, fmt.Errorf("%w: spot light narrowness must be >= 1, got %g", core.ErrInvalidArgument, narrowness)
	}
	return &SpotLight{PointLight: *point, direction: dir, narrowness: narrowness}, nil
}

// Intensity returns the attenuated intensity, zero behind the spot
func (sl *SpotLight) Intensity(point core.Point3D) core.Color {
	l, err := sl.DirectionTo(point)
	if err != nil {
		return core.Black
	}
	factor := core.AlignZero(sl.direction.Dot(l))
	if factor <= 0 {
		return core.Black
	}
	if sl.narrowness != 1 {
		factor = math.Pow(factor, sl.narrowness)
	}
	return sl.PointLight.Intensity(point).Scale(factor)
}
