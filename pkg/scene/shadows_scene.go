package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
)

// NewShadowsScene stacks semi-transparent panes under a narrow spot light so
// that each extra pane darkens the shadow on the floor
func NewShadowsScene() (*Scene, error) {
	b := newBuilder("shadows")
	s := b.scene

	s.CameraConfig = renderer.CameraConfig{
		Center: pt(0, 6, 9),
		LookAt: pt(0, 0, 0),
		Up:     core.Vector{Y: 1},
		VFov:   45,
	}
	s.Background = rgb(0, 0, 0)
	b.ambient(rgb(1, 1, 1), 0.03)

	floor := b.material(material.NewPhong(0.8, 0.2, 20))
	pane := b.material(b.material(material.NewPhong(0.2, 0.2, 30)).WithRefraction(0.6, 0))
	solid := b.material(material.NewPhong(0.6, 0.4, 60))

	b.add(geometry.NewPlane(pt(0, 0, 0), core.Vector{Y: 1},
		geometry.Surface{Emission: rgb(0.02, 0.02, 0.02), Material: floor}))

	// Three offset panes: their shadows overlap one, two and three deep
	tints := []core.Color{rgb(0.2, 0.02, 0.02), rgb(0.02, 0.2, 0.02), rgb(0.02, 0.02, 0.2)}
	for i, tint := range tints {
		y := 1.5 + float64(i)*0.8
		x := -1.2 + float64(i)*0.8
		b.add(geometry.NewPolygon(geometry.Surface{Emission: tint, Material: pane},
			pt(x-1, y, -1), pt(x+1, y, -1), pt(x+1, y, 1), pt(x-1, y, 1)))
	}

	// An opaque triangle and sphere for hard shadows
	b.add(geometry.NewTriangle(pt(2, 0.5, 2), pt(3.5, 0.5, 2), pt(2.75, 2.5, 1.5),
		geometry.Surface{Emission: rgb(0.1, 0.1, 0), Material: solid}))
	b.add(geometry.NewSphere(pt(-2.5, 0.7, 1.5), 0.7,
		geometry.Surface{Emission: rgb(0.05, 0.05, 0.1), Material: solid}))

	b.light(lights.NewNarrowSpotLight(rgb(1.5, 1.5, 1.4), pt(0, 8, 0), core.Vector{Y: -1}, 1, 0.01, 0.001, 4))
	b.light(lights.NewPointLight(rgb(0.2, 0.2, 0.25), pt(5, 6, 5), 1, 0.01, 0.001))

	return b.build()
}
