package scene

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
)

// NewMeshesScene creates a scene showcasing triangle mesh geometry: a box,
// a pyramid and an icosahedron whose faces share edges
func NewMeshesScene() (*Scene, error) {
	b := newBuilder("meshes")
	s := b.scene

	s.CameraConfig = renderer.CameraConfig{
		Center: pt(0, 2, 6),
		LookAt: pt(0, 1, 0),
		Up:     core.Vector{Y: 1},
		VFov:   45,
	}
	s.Background = rgb(0.5, 0.7, 1.0)
	b.ambient(rgb(1, 1, 1), 0.08)

	ground := b.material(b.material(material.NewLambertian(0.6)).WithReflection(0.2, 0))
	redMetal := b.material(b.material(material.NewPhong(0.5, 0.4, 40)).WithReflection(0.3, 0.1))
	blue := b.material(material.NewPhong(0.7, 0.2, 10))
	gold := b.material(b.material(material.NewPhong(0.3, 0.6, 80)).WithReflection(0.5, 0.05))

	b.add(geometry.NewPlane(pt(0, 0, 0), core.Vector{Y: 1},
		geometry.Surface{Emission: rgb(0.05, 0.05, 0.05), Material: ground}))

	// Simple box - rotated to show multiple faces
	b.add(createBoxMesh(pt(-2, 0.5, 0), 1, math.Pi/6,
		geometry.Surface{Emission: rgb(0.3, 0.05, 0.05), Material: redMetal}))
	b.add(createPyramidMesh(pt(0, 1, 0), 1.5, 2, math.Pi/4,
		geometry.Surface{Emission: rgb(0.03, 0.06, 0.2), Material: blue}))
	b.add(createIcosahedronMesh(pt(2, 0.8, 0), 0.8, math.Pi/3,
		geometry.Surface{Emission: rgb(0.25, 0.18, 0.03), Material: gold}))

	b.light(lights.NewPointLight(rgb(1, 0.95, 0.9), pt(2, 6, 3), 1, 0.02, 0.005))
	b.light(lights.NewDirectionalLight(rgb(0.25, 0.28, 0.32), b.vector(0.5, -1, -0.5)))

	return b.build()
}

// createBoxMesh creates a cube of the given size resting on its center, turned around Y
func createBoxMesh(center core.Point3D, size, turn float64, surface geometry.Surface) (*geometry.TriangleMesh, error) {
	h := size * 0.5
	vertices := []core.Point3D{
		center.Add(core.Vector{X: -h, Y: -h, Z: -h}), // 0: left-bottom-back
		center.Add(core.Vector{X: +h, Y: -h, Z: -h}), // 1: right-bottom-back
		center.Add(core.Vector{X: +h, Y: +h, Z: -h}), // 2: right-top-back
		center.Add(core.Vector{X: -h, Y: +h, Z: -h}), // 3: left-top-back
		center.Add(core.Vector{X: -h, Y: -h, Z: +h}), // 4: left-bottom-front
		center.Add(core.Vector{X: +h, Y: -h, Z: +h}), // 5: right-bottom-front
		center.Add(core.Vector{X: +h, Y: +h, Z: +h}), // 6: right-top-front
		center.Add(core.Vector{X: -h, Y: +h, Z: +h}), // 7: left-top-front
	}

	// Two triangles per face
	faces := []int{
		0, 1, 2, 0, 2, 3, // back
		4, 6, 5, 4, 7, 6, // front
		0, 3, 7, 0, 7, 4, // left
		1, 5, 6, 1, 6, 2, // right
		0, 4, 5, 0, 5, 1, // bottom
		3, 2, 6, 3, 6, 7, // top
	}
	return geometry.NewTriangleMesh(vertices, faces, surface,
		&geometry.TriangleMeshOptions{Rotation: core.Vector{Y: turn}, Center: center})
}

// createPyramidMesh creates a square pyramid centred on center, turned around Y
func createPyramidMesh(center core.Point3D, baseSize, height, turn float64, surface geometry.Surface) (*geometry.TriangleMesh, error) {
	halfBase := baseSize * 0.5
	halfHeight := height * 0.5

	vertices := []core.Point3D{
		center.Add(core.Vector{X: -halfBase, Y: -halfHeight, Z: -halfBase}), // 0: left-back
		center.Add(core.Vector{X: +halfBase, Y: -halfHeight, Z: -halfBase}), // 1: right-back
		center.Add(core.Vector{X: +halfBase, Y: -halfHeight, Z: +halfBase}), // 2: right-front
		center.Add(core.Vector{X: -halfBase, Y: -halfHeight, Z: +halfBase}), // 3: left-front
		center.Add(core.Vector{Y: +halfHeight}),                             // 4: apex
	}

	faces := []int{
		0, 2, 1, 0, 3, 2, // base
		0, 1, 4, // back
		1, 2, 4, // right
		2, 3, 4, // front
		3, 0, 4, // left
	}
	return geometry.NewTriangleMesh(vertices, faces, surface,
		&geometry.TriangleMeshOptions{Rotation: core.Vector{Y: turn}, Center: center})
}

// createIcosahedronMesh creates a regular icosahedron of the given circumradius
func createIcosahedronMesh(center core.Point3D, radius, turn float64, surface geometry.Surface) (*geometry.TriangleMesh, error) {
	phi := math.Phi
	scale := radius / math.Sqrt(1+phi*phi)

	corners := [][3]float64{
		{-1, phi, 0}, {1, phi, 0}, {-1, -phi, 0}, {1, -phi, 0},
		{0, -1, phi}, {0, 1, phi}, {0, -1, -phi}, {0, 1, -phi},
		{phi, 0, -1}, {phi, 0, 1}, {-phi, 0, -1}, {-phi, 0, 1},
	}
	vertices := make([]core.Point3D, len(corners))
	for i, c := range corners {
		vertices[i] = center.Add(core.Vector{X: c[0], Y: c[1], Z: c[2]}.Scale(scale))
	}

	faces := []int{
		// 5 faces around point 0
		0, 11, 5, 0, 5, 1, 0, 1, 7, 0, 7, 10, 0, 10, 11,
		// 5 adjacent faces
		1, 5, 9, 5, 11, 4, 11, 10, 2, 10, 7, 6, 7, 1, 8,
		// 5 faces around point 3
		3, 9, 4, 3, 4, 2, 3, 2, 6, 3, 6, 8, 3, 8, 9,
		// 5 adjacent faces
		4, 9, 5, 2, 4, 11, 6, 2, 10, 8, 6, 7, 9, 8, 1,
	}
	return geometry.NewTriangleMesh(vertices, faces, surface,
		&geometry.TriangleMeshOptions{Rotation: core.Vector{Y: turn}, Center: center})
}
