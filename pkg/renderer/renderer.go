package renderer

import (
	"context"
	"fmt"
	"image"
	"runtime"
	"time"

	"golang.org/x/image/draw"
	"golang.org/x/sync/errgroup"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/integrator"
)

// DefaultLogger implements core.Logger by writing to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

// Config contains configuration for rendering an image
type Config struct {
	Width           int     // Output image width in pixels
	Height          int     // Output image height in pixels
	SamplesPerPixel int     // Primary rays per pixel (1 = pixel center)
	TileSize        int     // Size of each tile (64x64 recommended)
	NumWorkers      int     // Number of parallel workers (0 = use CPU count)
	Supersample     int     // Render at this multiple of the output size, then downsample
	Gamma           float64 // Gamma applied when converting to 8-bit (1 = linear)
	Seed            int64   // Seed for pixel jitter
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		Width:           400,
		Height:          300,
		SamplesPerPixel: 1,
		TileSize:        64,
		NumWorkers:      0,
		Supersample:     1,
		Gamma:           1.0,
		Seed:            42,
	}
}

// Validate checks the render configuration
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: image size must be positive, got %dx%d", core.ErrInvalidArgument, c.Width, c.Height)
	case c.SamplesPerPixel < 1:
		return fmt.Errorf("%w: samples per pixel must be at least 1, got %d", core.ErrInvalidArgument, c.SamplesPerPixel)
	case c.TileSize < 1:
		return fmt.Errorf("%w: tile size must be at least 1, got %d", core.ErrInvalidArgument, c.TileSize)
	case c.NumWorkers < 0:
		return fmt.Errorf("%w: worker count must not be negative, got %d", core.ErrInvalidArgument, c.NumWorkers)
	case c.Supersample < 1:
		return fmt.Errorf("%w: supersample factor must be at least 1, got %d", core.ErrInvalidArgument, c.Supersample)
	case c.Gamma < 0:
		return fmt.Errorf("%w: gamma must not be negative, got %g", core.ErrInvalidArgument, c.Gamma)
	}
	return nil
}

// Renderer turns a ray tracer and a camera into an image. Tiles are traced in
// parallel; each tile owns its jitter generator, so output does not depend on
// the number of workers.
type Renderer struct {
	tracer integrator.RayTracer
	camera CameraConfig
	config Config
	logger core.Logger
}

// NewRenderer creates a new renderer
func NewRenderer(tracer integrator.RayTracer, camera CameraConfig, config Config, logger core.Logger) (*Renderer, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if err := camera.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = core.NopLogger{}
	}
	return &Renderer{tracer: tracer, camera: camera, config: config, logger: logger}, nil
}

// Render traces the whole image. It stops dispatching tiles and returns the
// context error once ctx is cancelled.
func (r *Renderer) Render(ctx context.Context) (*image.RGBA, RenderStats, error) {
	startTime := time.Now()

	width := r.config.Width * r.config.Supersample
	height := r.config.Height * r.config.Supersample
	camera, err := NewCamera(r.camera, width, height)
	if err != nil {
		return nil, RenderStats{}, err
	}

	numWorkers := r.config.NumWorkers
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	tiles := NewTileGrid(width, height, r.config.TileSize, r.config.Seed)
	pixelStats := make([][]PixelStats, height)
	for y := range pixelStats {
		pixelStats[y] = make([]PixelStats, width)
	}
	tileRenderer := NewTileRenderer(r.tracer, camera, r.config.SamplesPerPixel)

	r.logger.Printf("Rendering %dx%d (%d tiles, %d samples/pixel, %d workers)...\n",
		width, height, len(tiles), r.config.SamplesPerPixel, numWorkers)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(numWorkers)
	for _, tile := range tiles {
		tile := tile
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			tileRenderer.RenderTile(tile, pixelStats)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		r.logger.Printf("Rendering cancelled: %v\n", err)
		return nil, RenderStats{}, err
	}
	if err := ctx.Err(); err != nil {
		return nil, RenderStats{}, err
	}

	img, stats := r.assembleImage(pixelStats, width, height)
	stats.Tiles = len(tiles)

	if r.config.Supersample > 1 {
		img = downsample(img, r.config.Width, r.config.Height)
	}

	stats.Duration = time.Since(startTime)
	r.logger.Printf("Render completed in %v (%d samples)\n", stats.Duration, stats.TotalSamples)
	return img, stats, nil
}

// assembleImage converts the accumulated pixel colors to 8-bit and gathers statistics
func (r *Renderer) assembleImage(pixelStats [][]PixelStats, width, height int) (*image.RGBA, RenderStats) {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	stats := RenderStats{TotalPixels: width * height}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			pixel := &pixelStats[y][x]
			img.SetRGBA(x, y, pixel.GetColor().ToRGBA(r.config.Gamma))
			stats.TotalSamples += pixel.SampleCount
		}
	}

	stats.AverageSamples = float64(stats.TotalSamples) / float64(stats.TotalPixels)
	return img, stats
}

// downsample scales a supersampled image to the output size
func downsample(src *image.RGBA, width, height int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}
