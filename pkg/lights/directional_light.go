package lights

import (
	"fmt"
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// DirectionalLight is an infinitely distant light such as the sun
type DirectionalLight struct {
	intensity core.Color
	direction core.Vector
}

// NewDirectionalLight creates a light shining along direction
func NewDirectionalLight(intensity core.Color, direction core.Vector) (*DirectionalLight, error) {
	dir, err := direction.Normalize()
	if err != nil {
		return nil, fmt.Errorf("%w: directional light direction: %v", core.ErrInvalidArgument, err)
	}
	return &DirectionalLight{intensity: intensity, direction: dir}, nil
}

// Intensity is the same everywhere
func (dl *DirectionalLight) Intensity(core.Point3D) core.Color {
	return dl.intensity
}

// DirectionTo is the light direction everywhere
func (dl *DirectionalLight) DirectionTo(core.Point3D) (core.Vector, error) {
	return dl.direction, nil
}

// OcclusionDistance is unbounded; anything toward the light casts a shadow
func (dl *DirectionalLight) OcclusionDistance(core.Point3D) float64 {
	return math.Inf(1)
}
