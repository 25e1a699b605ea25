package lights

import (
	"fmt"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// AmbientLight is the scene-wide constant fill light
type AmbientLight struct {
	intensity core.Color
}

// NewAmbientLight creates an ambient light of color iA scaled by kA
func NewAmbientLight(iA core.Color, kA float64) (AmbientLight, error) {
	if kA < 0 {
		return AmbientLight{}, fmt.Errorf("%w: ambient factor must be non-negative, got %g", core.ErrInvalidArgument, kA)
	}
	return AmbientLight{intensity: iA.Scale(kA)}, nil
}

// Intensity returns the ambient contribution
func (a AmbientLight) Intensity() core.Color {
	return a.intensity
}
