package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
)

// NewGlossyScene shows blurred reflection and refraction: a brushed floor, a
// frosted glass ball and a satin metal ball in front of bright rods
func NewGlossyScene() (*Scene, error) {
	b := newBuilder("glossy")
	s := b.scene

	s.CameraConfig = renderer.CameraConfig{
		Center: pt(0, 1.5, 6),
		LookAt: pt(0, 0, -3),
		Up:     core.Vector{Y: 1},
		VFov:   45,
	}
	s.Background = rgb(0.1, 0.1, 0.15)
	s.SamplingConfig.SamplesPerPixel = 4
	s.SamplingConfig.BeamSize = 16
	s.SamplingConfig.MaxLevel = 4
	b.ambient(rgb(1, 1, 1), 0.05)

	brushed := b.material(b.material(material.NewPhong(0.4, 0.2, 20)).WithReflection(0.6, 0.15))
	frosted := b.material(material.NewGlass(0.7, 0.1))
	satin := b.material(material.NewMetal(0.8, 0.2))
	matte := b.material(material.NewLambertian(0.3))

	b.add(geometry.NewPlane(pt(0, -1, 0), core.Vector{Y: 1},
		geometry.Surface{Emission: rgb(0.05, 0.05, 0.08), Material: brushed}))
	b.add(geometry.NewSphere(pt(-1.2, 0, -3), 1,
		geometry.Surface{Emission: rgb(0.02, 0.05, 0.05), Material: frosted}))
	b.add(geometry.NewSphere(pt(1.2, 0, -3), 1,
		geometry.Surface{Emission: rgb(0.05, 0.04, 0.01), Material: satin}))

	// Glowing rods behind the balls make the blur visible
	for i, x := range []float64{-2.5, -1, 0.5, 2} {
		glow := rgb(0.9, 0.4, 0.1)
		if i%2 == 1 {
			glow = rgb(0.1, 0.5, 0.9)
		}
		b.add(geometry.NewTube(b.ray(pt(x, 0, -7), core.Vector{Y: 1}), 0.2,
			geometry.Surface{Emission: glow, Material: matte}))
	}

	b.light(lights.NewPointLight(rgb(1, 1, 1), pt(0, 5, 2), 1, 0.01, 0.001))
	b.light(lights.NewDirectionalLight(rgb(0.2, 0.2, 0.2), core.Vector{X: -1, Y: -1, Z: -0.5}))

	return b.build()
}
