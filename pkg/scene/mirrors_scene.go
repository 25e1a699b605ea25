package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
)

// NewMirrorsScene creates two facing perfect mirrors with a sphere between
// them; the reflections repeat until the recursion limit
func NewMirrorsScene() (*Scene, error) {
	b := newBuilder("mirrors")
	s := b.scene

	s.CameraConfig = renderer.CameraConfig{
		Center: pt(1, 0.5, 6),
		LookAt: pt(0, 0, -2),
		Up:     core.Vector{Y: 1},
		VFov:   50,
	}
	s.Background = rgb(0.02, 0.02, 0.02)
	b.ambient(rgb(1, 1, 1), 0.05)

	mirror := b.material(material.NewMetal(1, 0))
	red := b.material(material.NewPhong(0.7, 0.3, 50))
	floor := b.material(material.NewLambertian(0.6))

	b.add(geometry.NewPlane(pt(-3, 0, 0), core.Vector{X: 1}, geometry.Surface{Material: mirror}))
	b.add(geometry.NewPlane(pt(3, 0, 0), core.Vector{X: -1}, geometry.Surface{Material: mirror}))
	b.add(geometry.NewPlane(pt(0, -1, 0), core.Vector{Y: 1},
		geometry.Surface{Emission: rgb(0.05, 0.05, 0.05), Material: floor}))
	b.add(geometry.NewSphere(pt(0, 0, -2), 0.8,
		geometry.Surface{Emission: rgb(0.3, 0.05, 0.05), Material: red}))

	b.light(lights.NewPointLight(rgb(1, 1, 1), pt(0, 4, 2), 1, 0.01, 0.005))

	return b.build()
}
