package lights

import (
	"fmt"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// PointLight emits equally in every direction from a position, falling off
// as 1/(kC + kL·d + kQ·d²)
type PointLight struct {
	intensity  core.Color
	position   core.Point3D
	kC, kL, kQ float64
}

// NewPointLight creates a point light with the given attenuation factors
func NewPointLight(intensity core.Color, position core.Point3D, kC, kL, kQ float64) (*PointLight, error) {
	if kC < 0 || kL < 0 || kQ < 0 {
		return nil, fmt.Errorf("%w: attenuation factors must be non-negative, got kC=%g kL=%g kQ=%g", core.ErrInvalidArgument, kC, kL, kQ)
	}
	if core.IsZero(kC) && core.IsZero(kL) && core.IsZero(kQ) {
		return nil, fmt.Errorf("%w: at least one attenuation factor must be positive", core.ErrInvalidArgument)
	}
	return &PointLight{intensity: intensity, position: position, kC: kC, kL: kL, kQ: kQ}, nil
}

// Position returns where the light sits
func (pl *PointLight) Position() core.Point3D {
	return pl.position
}

// Intensity returns the attenuated intensity at the point
func (pl *PointLight) Intensity(point core.Point3D) core.Color {
	d := point.Distance(pl.position)
	return pl.intensity.Reduce(pl.kC + pl.kL*d + pl.kQ*d*d)
}

// DirectionTo returns the unit vector from the light to the point
func (pl *PointLight) DirectionTo(point core.Point3D) (core.Vector, error) {
	l, err := point.Subtract(pl.position).Normalize()
	if err != nil {
		return core.Vector{}, fmt.Errorf("point %v coincides with light: %w", point, err)
	}
	return l, nil
}

// OcclusionDistance is the distance between the point and the light
func (pl *PointLight) OcclusionDistance(point core.Point3D) float64 {
	return point.Distance(pl.position)
}
