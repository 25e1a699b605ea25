package renderer

import (
	"context"
	"errors"
	"image"
	"sync/atomic"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/integrator"
)

// MockTracer returns a fixed color and counts calls
type MockTracer struct {
	returnColor core.Color
	callCount   atomic.Int64
}

func (m *MockTracer) TraceRay(core.Ray) core.Color {
	m.callCount.Add(1)
	return m.returnColor
}

// directionTracer colors each ray by its direction, so jitter shows in the image
type directionTracer struct{}

func (directionTracer) TraceRay(ray core.Ray) core.Color {
	d := ray.Direction
	return core.NewColor((d.X+1)/2, (d.Y+1)/2, -d.Z)
}

func testRenderConfig() Config {
	config := DefaultConfig()
	config.Width = 20
	config.Height = 10
	config.TileSize = 8
	return config
}

func mustRender(t *testing.T, tracer integrator.RayTracer, config Config) (*image.RGBA, RenderStats) {
	t.Helper()
	r, err := NewRenderer(tracer, testCameraConfig(), config, nil)
	if err != nil {
		t.Fatalf("NewRenderer failed: %v", err)
	}
	img, stats, err := r.Render(context.Background())
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	return img, stats
}

func TestRenderUniformColor(t *testing.T) {
	tracer := &MockTracer{returnColor: core.NewColor(0.5, 0.25, 1)}
	config := testRenderConfig()
	config.SamplesPerPixel = 3

	img, stats := mustRender(t, tracer, config)

	if img.Bounds() != image.Rect(0, 0, 20, 10) {
		t.Fatalf("Expected 20x10 image, got %v", img.Bounds())
	}
	for y := 0; y < 10; y++ {
		for x := 0; x < 20; x++ {
			got := img.RGBAAt(x, y)
			if got.R != 128 || got.G != 64 || got.B != 255 || got.A != 255 {
				t.Fatalf("Pixel (%d,%d) = %v, expected {128 64 255 255}", x, y, got)
			}
		}
	}

	expectedSamples := 20 * 10 * 3
	if stats.TotalPixels != 200 {
		t.Errorf("Expected 200 pixels, got %d", stats.TotalPixels)
	}
	if stats.TotalSamples != expectedSamples || int(tracer.callCount.Load()) != expectedSamples {
		t.Errorf("Expected %d samples, got stats %d and %d calls", expectedSamples, stats.TotalSamples, tracer.callCount.Load())
	}
	if stats.AverageSamples != 3 {
		t.Errorf("Expected 3 samples per pixel, got %f", stats.AverageSamples)
	}
	if stats.Tiles != 6 {
		t.Errorf("Expected 6 tiles, got %d", stats.Tiles)
	}
}

func TestRenderIndependentOfWorkerCount(t *testing.T) {
	config := testRenderConfig()
	config.SamplesPerPixel = 4

	config.NumWorkers = 1
	serial, _ := mustRender(t, directionTracer{}, config)
	config.NumWorkers = 4
	parallel, _ := mustRender(t, directionTracer{}, config)

	for i := range serial.Pix {
		if serial.Pix[i] != parallel.Pix[i] {
			t.Fatalf("Images differ at byte %d: %d vs %d", i, serial.Pix[i], parallel.Pix[i])
		}
	}
}

func TestRenderSupersample(t *testing.T) {
	tracer := &MockTracer{returnColor: core.NewColor(0.5, 0.5, 0.5)}
	config := testRenderConfig()
	config.Supersample = 2

	img, stats := mustRender(t, tracer, config)

	if img.Bounds() != image.Rect(0, 0, 20, 10) {
		t.Fatalf("Expected downsampled 20x10 image, got %v", img.Bounds())
	}
	if stats.TotalPixels != 40*20 {
		t.Errorf("Expected %d traced pixels, got %d", 40*20, stats.TotalPixels)
	}
	for y := 0; y < 10; y++ {
		for x := 0; x < 20; x++ {
			got := img.RGBAAt(x, y)
			if got.R < 127 || got.R > 129 {
				t.Fatalf("Pixel (%d,%d) = %v, expected about 128", x, y, got)
			}
		}
	}
}

func TestRenderCancelled(t *testing.T) {
	tracer := &MockTracer{returnColor: core.Black}
	r, err := NewRenderer(tracer, testCameraConfig(), testRenderConfig(), nil)
	if err != nil {
		t.Fatalf("NewRenderer failed: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, _, err := r.Render(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{"default", func(*Config) {}, false},
		{"zero width", func(c *Config) { c.Width = 0 }, true},
		{"zero samples", func(c *Config) { c.SamplesPerPixel = 0 }, true},
		{"zero tile size", func(c *Config) { c.TileSize = 0 }, true},
		{"negative workers", func(c *Config) { c.NumWorkers = -1 }, true},
		{"zero supersample", func(c *Config) { c.Supersample = 0 }, true},
		{"negative gamma", func(c *Config) { c.Gamma = -1 }, true},
		{"gamma two", func(c *Config) { c.Gamma = 2 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultConfig()
			tt.modify(&config)
			err := config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, core.ErrInvalidArgument) {
				t.Errorf("Expected ErrInvalidArgument, got %v", err)
			}
		})
	}
}
