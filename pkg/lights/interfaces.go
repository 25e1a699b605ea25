package lights

import "github.com/df07/go-whitted-raytracer/pkg/core"

// LightSource is a light that contributes local (Phong) illumination
type LightSource interface {
	// Intensity returns the light arriving at the point
	Intensity(point core.Point3D) core.Color

	// DirectionTo returns the unit vector from the light toward the point.
	// It fails only when the point coincides with a positional light.
	DirectionTo(point core.Point3D) (core.Vector, error)

	// OcclusionDistance bounds the shadow-ray search from the point toward the light
	OcclusionDistance(point core.Point3D) float64
}
