package material

import (
	"fmt"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Material holds the Phong and Whitted coefficients of a surface
type Material struct {
	KD        float64 // Diffuse weight
	KS        float64 // Specular weight
	Shininess int     // Specular exponent
	KT        float64 // Transmission (refraction and shadow transparency) weight
	KR        float64 // Reflection weight
	KDG       float64 // Blur radius for refracted beams
	KGS       float64 // Blur radius for reflected beams
}

// Default is the black, opaque, non-reflective material
var Default = Material{}

// NewMaterial creates a validated material
func NewMaterial(kd, ks float64, shininess int, kt, kr, kdg, kgs float64) (Material, error) {
	m := Material{KD: kd, KS: ks, Shininess: shininess, KT: kt, KR: kr, KDG: kdg, KGS: kgs}
	if err := m.Validate(); err != nil {
		return Material{}, err
	}
	return m, nil
}

// Validate checks that every coefficient is non-negative
func (m Material) Validate() error {
	weights := []struct {
		name  string
		value float64
	}{
		{"kD", m.KD}, {"kS", m.KS}, {"kT", m.KT}, {"kR", m.KR}, {"kDG", m.KDG}, {"kGS", m.KGS},
	}
	for _, w := range weights {
		if w.value < 0 {
			return fmt.Errorf("%w: material %s must be non-negative, got %g", core.ErrInvalidArgument, w.name, w.value)
		}
	}
	if m.Shininess < 0 {
		return fmt.Errorf("%w: material shininess must be non-negative, got %d", core.ErrInvalidArgument, m.Shininess)
	}
	return nil
}

// WithReflection returns a copy of m reflecting with weight kr, blurred by a disc of radius gloss
func (m Material) WithReflection(kr, gloss float64) (Material, error) {
	m.KR, m.KGS = kr, gloss
	return m, m.Validate()
}

// WithRefraction returns a copy of m transmitting with weight kt, blurred by a disc of radius diffuseGlass
func (m Material) WithRefraction(kt, diffuseGlass float64) (Material, error) {
	m.KT, m.KDG = kt, diffuseGlass
	return m, m.Validate()
}

// IsTransparent reports whether the material lets any light through
func (m Material) IsTransparent() bool {
	return m.KT > 0
}
