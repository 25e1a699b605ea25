package server

import (
	"bytes"
	"encoding/json"
	"image"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

func get(t *testing.T, path string) *httptest.ResponseRecorder {
	t.Helper()
	recorder := httptest.NewRecorder()
	NewServer(0).Handler().ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, path, nil))
	return recorder
}

func TestHandleHealth(t *testing.T) {
	rec := get(t, "/api/health")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	var body map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("Invalid JSON: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("Expected status ok, got %v", body)
	}
}

func TestHandleScenes(t *testing.T) {
	rec := get(t, "/api/scenes")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	var body struct {
		Scenes []struct {
			Name string `json:"name"`
		} `json:"scenes"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("Invalid JSON: %v", err)
	}
	if len(body.Scenes) != len(scene.Names()) {
		t.Errorf("Expected %d scenes, got %d", len(scene.Names()), len(body.Scenes))
	}
}

func TestHandleRender(t *testing.T) {
	tests := []struct {
		name        string
		query       string
		contentType string
		format      string
	}{
		{"png", "scene=default&width=16&height=12", "image/png", "png"},
		{"bmp", "scene=mirrors&width=16&height=12&format=bmp&level=3", "image/bmp", "bmp"},
		{"glossy beam", "scene=glossy&width=16&height=12&samples=1&beam=4", "image/png", "png"},
		{"meshes", "scene=meshes&width=16&height=12", "image/png", "png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := get(t, "/api/render?"+tt.query)
			if rec.Code != http.StatusOK {
				t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
			}
			if ct := rec.Header().Get("Content-Type"); ct != tt.contentType {
				t.Errorf("Expected Content-Type %q, got %q", tt.contentType, ct)
			}

			img, format, err := image.Decode(bytes.NewReader(rec.Body.Bytes()))
			if err != nil {
				t.Fatalf("Response is not an image: %v", err)
			}
			if format != tt.format {
				t.Errorf("Expected %s, got %s", tt.format, format)
			}
			if img.Bounds().Dx() != 16 || img.Bounds().Dy() != 12 {
				t.Errorf("Expected 16x12 image, got %v", img.Bounds())
			}
		})
	}
}

func TestHandleRenderErrors(t *testing.T) {
	tests := []struct {
		name   string
		query  string
		status int
	}{
		{"unknown scene", "scene=nope&width=8&height=8", http.StatusNotFound},
		{"width not a number", "width=abc", http.StatusBadRequest},
		{"width too large", "width=5000", http.StatusBadRequest},
		{"zero samples", "samples=0", http.StatusBadRequest},
		{"unsupported format", "format=gif&width=8&height=8", http.StatusBadRequest},
		{"gamma out of range", "gamma=9", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := get(t, "/api/render?"+tt.query)
			if rec.Code != tt.status {
				t.Fatalf("Expected %d, got %d: %s", tt.status, rec.Code, rec.Body.String())
			}
			var body map[string]string
			if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
				t.Fatalf("Expected JSON error body: %v", err)
			}
			if body["error"] == "" {
				t.Error("Expected an error message")
			}
		})
	}
}

func TestHandleRenderStream(t *testing.T) {
	rec := get(t, "/api/render/stream?scene=shadows&width=12&height=8")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "text/event-stream" {
		t.Errorf("Expected event stream, got %q", ct)
	}

	body := rec.Body.String()
	if !strings.Contains(body, "event: console") {
		t.Error("Expected console events in the stream")
	}

	idx := strings.Index(body, "event: complete\ndata: ")
	if idx < 0 {
		t.Fatalf("Expected a complete event, got %q", body)
	}
	data := body[idx+len("event: complete\ndata: "):]
	data = data[:strings.Index(data, "\n")]

	var update CompleteUpdate
	if err := json.Unmarshal([]byte(data), &update); err != nil {
		t.Fatalf("Invalid complete event: %v", err)
	}
	if update.Width != 12 || update.Height != 8 || update.ImageData == "" {
		t.Errorf("Unexpected complete event: %+v", update)
	}
	if update.Stats.TotalSamples != 12*8 {
		t.Errorf("Expected %d samples, got %d", 12*8, update.Stats.TotalSamples)
	}
}

func TestHandleInspect(t *testing.T) {
	rec := get(t, "/api/inspect?scene=shadows&width=40&height=30")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var response InspectResponse
	if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
		t.Fatalf("Invalid JSON: %v", err)
	}
	if !response.Hit {
		t.Fatal("Expected the center pixel to hit the floor")
	}
	if response.GeometryType != "plane" {
		t.Errorf("Expected plane, got %q", response.GeometryType)
	}
	if response.Normal != [3]float64{0, 1, 0} {
		t.Errorf("Expected floor normal (0,1,0), got %v", response.Normal)
	}
}

func TestHandleInspectErrors(t *testing.T) {
	if rec := get(t, "/api/inspect?scene=nope"); rec.Code != http.StatusNotFound {
		t.Errorf("Expected 404 for unknown scene, got %d", rec.Code)
	}
	if rec := get(t, "/api/inspect?width=10&x=10"); rec.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for pixel outside the image, got %d", rec.Code)
	}
}
