// Package config loads render settings from JSON files. Files may contain
// "//" line comments. Zero-valued fields fall back to the scene's own
// suggestions or the package defaults.
package config

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/sauerbraten/jsonfile"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/integrator"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// RenderFile holds the settings of one render job
type RenderFile struct {
	Scene       string  `json:"scene"`
	Width       int     `json:"width"`
	Height      int     `json:"height"`
	Samples     int     `json:"samples"`
	Workers     int     `json:"workers"`
	TileSize    int     `json:"tileSize"`
	Supersample int     `json:"supersample"`
	Gamma       float64 `json:"gamma"`
	MaxLevel    int     `json:"maxLevel"`
	MinK        float64 `json:"minK"`
	BeamSize    int     `json:"beamSize"`
	Seed        int64   `json:"seed"`

	// Output defaults to output/<scene>/render_<timestamp>.<format>
	Output string `json:"output"`
	Format string `json:"format"`
}

// Default returns the settings used when no file is given
func Default() RenderFile {
	return RenderFile{
		Scene:  "default",
		Format: "png",
	}
}

// Load reads a render file on top of the defaults
func Load(path string) (RenderFile, error) {
	rf := Default()
	if err := jsonfile.ParseFile(path, &rf); err != nil {
		return RenderFile{}, fmt.Errorf("error reading config %s: %w", path, err)
	}
	if err := rf.Validate(); err != nil {
		return RenderFile{}, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return rf, nil
}

// Validate checks the fields that can be checked without a scene
func (rf RenderFile) Validate() error {
	counts := []struct {
		name  string
		value int
	}{
		{"width", rf.Width},
		{"height", rf.Height},
		{"samples", rf.Samples},
		{"workers", rf.Workers},
		{"tileSize", rf.TileSize},
		{"supersample", rf.Supersample},
		{"maxLevel", rf.MaxLevel},
		{"beamSize", rf.BeamSize},
	}
	for _, c := range counts {
		if c.value < 0 {
			return fmt.Errorf("%w: %s must not be negative, got %d", core.ErrInvalidArgument, c.name, c.value)
		}
	}
	if rf.Gamma < 0 {
		return fmt.Errorf("%w: gamma must not be negative, got %g", core.ErrInvalidArgument, rf.Gamma)
	}
	if rf.MinK < 0 || rf.MinK >= 1 {
		return fmt.Errorf("%w: minK must be in [0,1), got %g", core.ErrInvalidArgument, rf.MinK)
	}
	if _, err := renderer.NormalizeFormat(rf.Format); err != nil {
		return err
	}
	return nil
}

// CreateScene builds the configured scene
func (rf RenderFile) CreateScene() (*scene.Scene, error) {
	return scene.Create(rf.Scene)
}

// ApplyTo derives renderer and integrator settings for s: the scene's
// suggestions first, then every non-zero field of rf
func (rf RenderFile) ApplyTo(s *scene.Scene) (renderer.Config, integrator.Config, error) {
	if err := rf.Validate(); err != nil {
		return renderer.Config{}, integrator.Config{}, err
	}

	rc := renderer.DefaultConfig()
	rc.Width = s.SamplingConfig.Width
	rc.Height = s.SamplingConfig.Height
	rc.SamplesPerPixel = s.SamplingConfig.SamplesPerPixel

	ic := integrator.DefaultConfig()
	ic.MaxLevel = s.SamplingConfig.MaxLevel
	ic.BeamSize = s.SamplingConfig.BeamSize

	override(&rc.Width, rf.Width)
	override(&rc.Height, rf.Height)
	override(&rc.SamplesPerPixel, rf.Samples)
	override(&rc.NumWorkers, rf.Workers)
	override(&rc.TileSize, rf.TileSize)
	override(&rc.Supersample, rf.Supersample)
	override(&rc.Gamma, rf.Gamma)
	override(&rc.Seed, rf.Seed)
	override(&ic.MaxLevel, rf.MaxLevel)
	override(&ic.MinK, rf.MinK)
	override(&ic.BeamSize, rf.BeamSize)
	override(&ic.Seed, rf.Seed)

	if err := rc.Validate(); err != nil {
		return renderer.Config{}, integrator.Config{}, err
	}
	if err := ic.Validate(); err != nil {
		return renderer.Config{}, integrator.Config{}, err
	}
	return rc, ic, nil
}

// OutputPath returns the configured output path, or a timestamped path
// under output/<scene>/ when none is set
func (rf RenderFile) OutputPath(now time.Time) string {
	if rf.Output != "" {
		return rf.Output
	}
	format, err := renderer.NormalizeFormat(rf.Format)
	if err != nil {
		format = "png"
	}
	return filepath.Join("output", rf.Scene, fmt.Sprintf("render_%s.%s", now.Format("20060102_150405"), format))
}

func override[T int | int64 | float64](dst *T, value T) {
	if value != 0 {
		*dst = value
	}
}
