package renderer

import (
	"math"
	"math/rand"

	"github.com/df07/go-whitted-raytracer/pkg/integrator"
)

// TileRenderer traces the pixels of individual tiles with a ray tracer
type TileRenderer struct {
	tracer  integrator.RayTracer
	camera  *Camera
	samples int
}

// NewTileRenderer creates a new tile renderer taking samples primary rays per pixel
func NewTileRenderer(tracer integrator.RayTracer, camera *Camera, samples int) *TileRenderer {
	return &TileRenderer{
		tracer:  tracer,
		camera:  camera,
		samples: max(1, samples),
	}
}

// RenderTile renders every pixel inside the tile into pixelStats. Tiles never
// overlap, so concurrent calls on distinct tiles are safe.
func (tr *TileRenderer) RenderTile(tile *Tile, pixelStats [][]PixelStats) {
	bounds := tile.Bounds
	for j := bounds.Min.Y; j < bounds.Max.Y; j++ {
		for i := bounds.Min.X; i < bounds.Max.X; i++ {
			tr.samplePixel(i, j, &pixelStats[j][i], tile.Random)
		}
	}
}

// samplePixel traces the pixel center for a single sample, otherwise one
// jittered ray per cell of a stratified grid
func (tr *TileRenderer) samplePixel(i, j int, ps *PixelStats, random *rand.Rand) {
	if tr.samples == 1 {
		ps.AddSample(tr.tracer.TraceRay(tr.camera.GetRay(i, j, 0.5, 0.5)))
		return
	}

	cols := int(math.Ceil(math.Sqrt(float64(tr.samples))))
	rows := (tr.samples + cols - 1) / cols
	for s := 0; s < tr.samples; s++ {
		su := (float64(s%cols) + random.Float64()) / float64(cols)
		sv := (float64(s/cols) + random.Float64()) / float64(rows)
		ps.AddSample(tr.tracer.TraceRay(tr.camera.GetRay(i, j, su, sv)))
	}
}
