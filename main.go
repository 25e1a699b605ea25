package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/config"
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/integrator"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// options holds the parsed command line
type options struct {
	configPath string
	help       bool
	settings   config.RenderFile // Flag values; zero means "not given"
}

func parseFlags(args []string, output io.Writer) (options, error) {
	var opts options
	fs := flag.NewFlagSet("raytracer", flag.ContinueOnError)
	fs.SetOutput(output)

	fs.StringVar(&opts.configPath, "config", "", "JSON render config (// comments allowed)")
	fs.StringVar(&opts.settings.Scene, "scene", "", fmt.Sprintf("Scene name: %v", scene.Names()))
	fs.IntVar(&opts.settings.Width, "width", 0, "Image width (0 = scene default)")
	fs.IntVar(&opts.settings.Height, "height", 0, "Image height (0 = scene default)")
	fs.IntVar(&opts.settings.Samples, "samples", 0, "Primary rays per pixel")
	fs.IntVar(&opts.settings.BeamSize, "beam", 0, "Rays per glossy reflection/refraction beam")
	fs.IntVar(&opts.settings.MaxLevel, "level", 0, "Maximum reflection/refraction depth")
	fs.IntVar(&opts.settings.Supersample, "supersample", 0, "Render at N times the size and downsample")
	fs.IntVar(&opts.settings.Workers, "workers", 0, "Parallel workers (0 = CPU count)")
	fs.StringVar(&opts.settings.Output, "out", "", "Output file; the extension picks the format")
	fs.StringVar(&opts.settings.Format, "format", "", "Output format when -out is not given: png, jpeg, bmp, tiff")
	fs.BoolVar(&opts.help, "help", false, "Show help information")

	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if opts.help {
		fmt.Fprintln(output, "Whitted Raytracer")
		fmt.Fprintln(output, "Usage: raytracer [options]")
		fmt.Fprintln(output)
		fmt.Fprintln(output, "Options:")
		fs.PrintDefaults()
		fmt.Fprintln(output)
		fmt.Fprintln(output, "Available scenes:")
		for _, info := range scene.List() {
			fmt.Fprintf(output, "  %-8s - %s\n", info.Name, info.Description)
		}
		fmt.Fprintln(output)
		fmt.Fprintln(output, "Output will be saved to output/<scene>/render_<timestamp>.png")
	}
	return opts, nil
}

// loadSettings reads the config file, if any, and applies the flags on top
func loadSettings(opts options) (config.RenderFile, error) {
	rf := config.Default()
	if opts.configPath != "" {
		loaded, err := config.Load(opts.configPath)
		if err != nil {
			return rf, err
		}
		rf = loaded
	}

	flags := opts.settings
	if flags.Scene != "" {
		rf.Scene = flags.Scene
	}
	if flags.Output != "" {
		rf.Output = flags.Output
	}
	if flags.Format != "" {
		rf.Format = flags.Format
	}
	for _, pair := range []struct{ dst *int; value int }{
		{&rf.Width, flags.Width},
		{&rf.Height, flags.Height},
		{&rf.Samples, flags.Samples},
		{&rf.BeamSize, flags.BeamSize},
		{&rf.MaxLevel, flags.MaxLevel},
		{&rf.Supersample, flags.Supersample},
		{&rf.Workers, flags.Workers},
	} {
		if pair.value != 0 {
			*pair.dst = pair.value
		}
	}
	return rf, rf.Validate()
}

// renderToFile renders the configured scene and saves it, returning the output path
func renderToFile(ctx context.Context, rf config.RenderFile, logger core.Logger) (string, renderer.RenderStats, error) {
	selectedScene, err := rf.CreateScene()
	if err != nil {
		return "", renderer.RenderStats{}, err
	}
	logger.Printf("Using %s scene (%d objects, %d lights)...\n",
		selectedScene.Name, selectedScene.GetPrimitiveCount(), len(selectedScene.GetLights()))

	renderConfig, integratorConfig, err := rf.ApplyTo(selectedScene)
	if err != nil {
		return "", renderer.RenderStats{}, err
	}
	tracer, err := integrator.NewWhittedIntegrator(selectedScene, integratorConfig)
	if err != nil {
		return "", renderer.RenderStats{}, err
	}
	r, err := renderer.NewRenderer(tracer, selectedScene.CameraConfig, renderConfig, logger)
	if err != nil {
		return "", renderer.RenderStats{}, err
	}

	img, stats, err := r.Render(ctx)
	if err != nil {
		return "", stats, err
	}

	filename := rf.OutputPath(time.Now())
	if err := renderer.SaveImage(filename, img); err != nil {
		return "", stats, err
	}
	return filename, stats, nil
}

func main() {
	opts, err := parseFlags(os.Args[1:], os.Stdout)
	if errors.Is(err, flag.ErrHelp) || opts.help {
		return
	}
	if err != nil {
		os.Exit(2)
	}

	rf, err := loadSettings(opts)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Println("Starting Whitted Raytracer...")
	logger := renderer.NewDefaultLogger()
	filename, stats, err := renderToFile(ctx, rf, logger)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Samples per pixel: %.1f over %d tiles\n", stats.AverageSamples, stats.Tiles)
	fmt.Printf("Render saved as %s\n", filename)
}
