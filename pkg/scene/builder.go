package scene

import (
	"fmt"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// builder assembles a scene from fallible constructors and keeps the first error
type builder struct {
	scene *Scene
	err   error
}

func newBuilder(name string) *builder {
	return &builder{scene: NewScene(name)}
}

func (b *builder) fail(err error) {
	if b.err == nil && err != nil {
		b.err = fmt.Errorf("scene %q: %w", b.scene.Name, err)
	}
}

// add accepts a constructor result directly, e.g. b.add(geometry.NewSphere(...))
func (b *builder) add(item geometry.Intersectable, err error) {
	if err != nil {
		b.fail(err)
		return
	}
	b.scene.AddGeometry(item)
}

func (b *builder) light(source lights.LightSource, err error) {
	if err != nil {
		b.fail(err)
		return
	}
	b.scene.AddLight(source)
}

func (b *builder) ambient(iA core.Color, kA float64) {
	ambient, err := lights.NewAmbientLight(iA, kA)
	if err != nil {
		b.fail(err)
		return
	}
	b.scene.Ambient = ambient
}

func (b *builder) material(m material.Material, err error) material.Material {
	b.fail(err)
	return m
}

func (b *builder) vector(x, y, z float64) core.Vector {
	v, err := core.NewVector(x, y, z)
	b.fail(err)
	return v
}

func (b *builder) ray(origin core.Point3D, direction core.Vector) core.Ray {
	r, err := core.NewRay(origin, direction)
	b.fail(err)
	return r
}

// quad adds a convex quadrilateral as two triangles sharing the p0-p2 diagonal
func (b *builder) quad(p0, p1, p2, p3 core.Point3D, surface geometry.Surface) {
	b.add(geometry.NewTriangle(p0, p1, p2, surface))
	b.add(geometry.NewTriangle(p0, p2, p3, surface))
}

func (b *builder) build() (*Scene, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.scene, nil
}

func pt(x, y, z float64) core.Point3D {
	return core.NewPoint3D(x, y, z)
}

func rgb(r, g, b float64) core.Color {
	return core.NewColor(r, g, b)
}
