package server

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"log"
	"net/http"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/config"
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/integrator"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// errStatus carries the HTTP status a pipeline error should produce
type errStatus struct {
	status int
	err    error
}

func (e *errStatus) Error() string { return e.err.Error() }
func (e *errStatus) Unwrap() error { return e.err }

// Stats represents render statistics
type Stats struct {
	TotalPixels    int     `json:"totalPixels"`
	TotalSamples   int     `json:"totalSamples"`
	AverageSamples float64 `json:"averageSamples"`
	Tiles          int     `json:"tiles"`
	DurationMs     int64   `json:"durationMs"`
}

// CompleteUpdate is the final event of a streamed render
type CompleteUpdate struct {
	ImageData string `json:"imageData"` // Base64 encoded PNG
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	Stats     Stats  `json:"stats"`
	ElapsedMs int64  `json:"elapsedMs"`
}

// RenderingPipeline contains the configured scene and renderer
type RenderingPipeline struct {
	Scene    *scene.Scene
	Renderer *renderer.Renderer
	Format   string
}

// parseRenderRequest reads the query into render settings. Unset values
// fall back to the scene's suggestions.
func (s *Server) parseRenderRequest(r *http.Request) (config.RenderFile, error) {
	query := r.URL.Query()
	req := config.Default()
	if name := query.Get("scene"); name != "" {
		req.Scene = name
	}
	if format := query.Get("format"); format != "" {
		req.Format = format
	}

	var err error
	if req.Width, err = parseIntParam(query, "width", 0, 1, 2000); err != nil {
		return req, err
	}
	if req.Height, err = parseIntParam(query, "height", 0, 1, 2000); err != nil {
		return req, err
	}
	if req.Samples, err = parseIntParam(query, "samples", 0, 1, 256); err != nil {
		return req, err
	}
	if req.BeamSize, err = parseIntParam(query, "beam", 0, 1, 256); err != nil {
		return req, err
	}
	if req.MaxLevel, err = parseIntParam(query, "level", 0, 1, 50); err != nil {
		return req, err
	}
	if req.Gamma, err = parseFloatParam(query, "gamma", 0, 0.1, 5); err != nil {
		return req, err
	}
	if err := req.Validate(); err != nil {
		return req, err
	}

	if req.Width*req.Height > 800*600 && req.Samples > 16 {
		log.Printf("Render warning: Large image with high samples may render slowly")
	}
	return req, nil
}

// setupRenderingPipeline builds the scene, integrator and renderer for a request
func (s *Server) setupRenderingPipeline(req config.RenderFile, logger core.Logger) (*RenderingPipeline, error) {
	sceneObj, err := req.CreateScene()
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, scene.ErrUnknownScene) {
			status = http.StatusNotFound
		}
		return nil, &errStatus{status: status, err: err}
	}

	renderConfig, integratorConfig, err := req.ApplyTo(sceneObj)
	if err != nil {
		return nil, &errStatus{status: http.StatusBadRequest, err: err}
	}

	tracer, err := integrator.NewWhittedIntegrator(sceneObj, integratorConfig)
	if err != nil {
		return nil, &errStatus{status: http.StatusBadRequest, err: err}
	}
	r, err := renderer.NewRenderer(tracer, sceneObj.CameraConfig, renderConfig, logger)
	if err != nil {
		return nil, &errStatus{status: http.StatusBadRequest, err: err}
	}

	format, _ := renderer.NormalizeFormat(req.Format)
	return &RenderingPipeline{Scene: sceneObj, Renderer: r, Format: format}, nil
}

// handleRender renders a scene and returns the encoded image
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseRenderRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request: %v", err))
		return
	}

	pipeline, err := s.setupRenderingPipeline(req, log.Default())
	if err != nil {
		writePipelineError(w, err)
		return
	}

	img, stats, err := pipeline.Renderer.Render(r.Context())
	if err != nil {
		// Client went away; nothing useful to send
		log.Printf("Render of %s aborted: %v", req.Scene, err)
		return
	}

	var buf bytes.Buffer
	if err := renderer.EncodeImage(&buf, pipeline.Format, img); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", renderer.ContentType(pipeline.Format))
	w.Header().Set("X-Render-Samples", fmt.Sprint(stats.TotalSamples))
	w.Header().Set("X-Render-Duration", stats.Duration.String())
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

type renderResult struct {
	img   *image.RGBA
	stats renderer.RenderStats
	err   error
}

// handleRenderStream renders a scene while streaming console output via SSE,
// finishing with a "complete" event that carries the PNG
func (s *Server) handleRenderStream(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseRenderRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request: %v", err))
		return
	}

	consoleChan := make(chan ConsoleMessage, 100)
	pipeline, err := s.setupRenderingPipeline(req, NewWebLogger(req.Scene, consoleChan))
	if err != nil {
		writePipelineError(w, err)
		return
	}

	s.setSSEHeaders(w)
	ctx := r.Context()
	startTime := time.Now()

	done := make(chan renderResult, 1)
	go func() {
		img, stats, err := pipeline.Renderer.Render(ctx)
		done <- renderResult{img: img, stats: stats, err: err}
	}()

	// All writes happen on this goroutine
	for {
		select {
		case msg := <-consoleChan:
			s.sendConsoleMessage(w, msg)
		case result := <-done:
			s.drainConsole(w, consoleChan)
			if result.err != nil {
				s.sendSSEEvent(w, "error", result.err.Error())
				return
			}
			s.sendComplete(w, result, startTime)
			return
		}
	}
}

func (s *Server) drainConsole(w http.ResponseWriter, consoleChan chan ConsoleMessage) {
	for {
		select {
		case msg := <-consoleChan:
			s.sendConsoleMessage(w, msg)
		default:
			return
		}
	}
}

func (s *Server) sendConsoleMessage(w http.ResponseWriter, msg ConsoleMessage) {
	data, err := json.Marshal(msg)
	if err != nil {
		return
	}
	s.sendSSEEvent(w, "console", string(data))
}

func (s *Server) sendComplete(w http.ResponseWriter, result renderResult, startTime time.Time) {
	imageData, err := imageToBase64PNG(result.img)
	if err != nil {
		s.sendSSEEvent(w, "error", fmt.Sprintf("failed to encode image: %v", err))
		return
	}

	bounds := result.img.Bounds()
	update := CompleteUpdate{
		ImageData: imageData,
		Width:     bounds.Dx(),
		Height:    bounds.Dy(),
		Stats: Stats{
			TotalPixels:    result.stats.TotalPixels,
			TotalSamples:   result.stats.TotalSamples,
			AverageSamples: result.stats.AverageSamples,
			Tiles:          result.stats.Tiles,
			DurationMs:     result.stats.Duration.Milliseconds(),
		},
		ElapsedMs: time.Since(startTime).Milliseconds(),
	}

	data, err := json.Marshal(update)
	if err != nil {
		s.sendSSEEvent(w, "error", err.Error())
		return
	}
	s.sendSSEEvent(w, "complete", string(data))
}

// setSSEHeaders sets the headers of an event stream
func (s *Server) setSSEHeaders(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("Access-Control-Allow-Origin", "*")
}

// sendSSEEvent sends a generic SSE event
func (s *Server) sendSSEEvent(w http.ResponseWriter, event, data string) error {
	if flusher, ok := w.(http.Flusher); ok {
		fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event, data)
		flusher.Flush()
		return nil
	}
	return fmt.Errorf("streaming not supported")
}

// imageToBase64PNG converts an image to base64-encoded PNG
func imageToBase64PNG(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := renderer.EncodeImage(&buf, "png", img); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

func writePipelineError(w http.ResponseWriter, err error) {
	var se *errStatus
	if errors.As(err, &se) {
		writeError(w, se.status, se.Error())
		return
	}
	writeError(w, http.StatusInternalServerError, err.Error())
}
