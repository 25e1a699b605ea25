package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
)

// NewDefaultScene creates a scene exercising every primitive and light type:
// a glass sphere with a second sphere inside, a mirror sphere, an open
// cylinder, a triangle back wall and a reflective floor
func NewDefaultScene() (*Scene, error) {
	b := newBuilder("default")
	s := b.scene

	s.CameraConfig = renderer.CameraConfig{
		Center: pt(0, 1, 8),
		LookAt: pt(0, 0, -3),
		Up:     core.Vector{Y: 1},
		VFov:   40,
	}
	s.Background = rgb(0.05, 0.07, 0.12)
	b.ambient(rgb(1, 1, 1), 0.08)

	floor := b.material(b.material(material.NewPhong(0.5, 0.3, 40)).WithReflection(0.3, 0))
	glass := b.material(material.NewMaterial(0.2, 0.6, 100, 0.6, 0, 0, 0))
	inner := b.material(material.NewPhong(0.6, 0.4, 60))
	mirror := b.material(material.NewMetal(0.8, 0))
	paint := b.material(material.NewPhong(0.6, 0.4, 30))
	wall := b.material(material.NewLambertian(0.5))

	b.add(geometry.NewPlane(pt(0, -1, 0), core.Vector{Y: 1},
		geometry.Surface{Emission: rgb(0.05, 0.05, 0.05), Material: floor}))

	// Hollow-looking glass ball: the red core shows through the shell
	b.add(geometry.NewSphere(pt(0, 0, -3), 1,
		geometry.Surface{Emission: rgb(0.1, 0.02, 0.02), Material: glass}))
	b.add(geometry.NewSphere(pt(0, 0, -3), 0.4,
		geometry.Surface{Emission: rgb(0.5, 0.1, 0.1), Material: inner}))

	b.add(geometry.NewSphere(pt(-2.4, 0, -4), 1,
		geometry.Surface{Material: mirror}))

	b.add(geometry.NewCylinder(b.ray(pt(2.4, -1, -4), core.Vector{Y: 1}), 0.6, 2,
		geometry.Surface{Emission: rgb(0.05, 0.1, 0.4), Material: paint}))

	b.quad(pt(-6, -1, -9), pt(6, -1, -9), pt(6, 5, -9), pt(-6, 5, -9),
		geometry.Surface{Emission: rgb(0.1, 0.1, 0.1), Material: wall})

	b.light(lights.NewSpotLight(rgb(1, 0.9, 0.7), pt(0, 5, 0), core.Vector{Y: -1, Z: -0.6}, 1, 0.02, 0.002))
	b.light(lights.NewPointLight(rgb(0.5, 0.5, 0.6), pt(-4, 4, 2), 1, 0.01, 0.001))
	b.light(lights.NewDirectionalLight(rgb(0.15, 0.15, 0.15), core.Vector{X: 1, Y: -1, Z: -1}))

	return b.build()
}
