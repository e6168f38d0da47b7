package server

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"image/png"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	dir := t.TempDir()
	scene := `{"name": "Tiny", "camera": {"lookFrom": [0,0,0], "lookAt": [0,0,-1], "width": 16, "aspectRatio": 2, "vfov": 90},
	  "sampling": {"samplesPerPixel": 2, "maxDepth": 3},
	  "spheres": [{"center": [0,0,-1], "radius": 0.5, "material": {"type": "metal", "albedo": [0.9,0.9,0.9], "fuzz": 0.2}}]}`
	if err := os.WriteFile(filepath.Join(dir, "tiny.json"), []byte(scene), 0644); err != nil {
		t.Fatal(err)
	}
	return NewServer(0, dir)
}

func get(t *testing.T, s *Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func TestHandleHealth(t *testing.T) {
	rec := get(t, newTestServer(t), "/api/health")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body["status"] != "ok" {
		t.Errorf("Expected status ok, got %v", body)
	}
}

func TestHandleScenes(t *testing.T) {
	rec := get(t, newTestServer(t), "/api/scenes")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}

	var body struct {
		Scenes []struct {
			ID          string `json:"id"`
			DisplayName string `json:"displayName"`
			Type        string `json:"type"`
		} `json:"scenes"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}

	found := map[string]string{}
	for _, sc := range body.Scenes {
		found[sc.DisplayName] = sc.Type
	}
	if found["Default"] != "builtin" {
		t.Errorf("Expected the built-in default scene, got %v", found)
	}
	if found["Tiny"] != "file" {
		t.Errorf("Expected the JSON scene file, got %v", found)
	}
}

func TestHandleSceneConfig(t *testing.T) {
	s := newTestServer(t)

	rec := get(t, s, "/api/scene-config?scene=tiny.json")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var body struct {
		Defaults map[string]float64 `json:"defaults"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body.Defaults["width"] != 16 || body.Defaults["height"] != 8 || body.Defaults["samplesPerPixel"] != 2 {
		t.Errorf("Unexpected defaults %v", body.Defaults)
	}

	if rec := get(t, s, "/api/scene-config?scene=cornell"); rec.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for unknown scene, got %d", rec.Code)
	}
}

func TestParseIntParam(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		want    int
		wantErr bool
	}{
		{"default", "", 10, false},
		{"value", "n=20", 20, false},
		{"not a number", "n=abc", 0, true},
		{"below range", "n=0", 0, true},
		{"above range", "n=101", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, _ := url.ParseQuery(tt.query)
			got, err := parseIntParam(values, "n", 10, 1, 100)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseIntParam() error = %v, wantErr %t", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("parseIntParam() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestHandleImage(t *testing.T) {
	rec := get(t, newTestServer(t), "/api/image?scene=sphere&width=20&samples=1&maxDepth=2&workers=2")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/png" {
		t.Errorf("Expected image/png, got %q", ct)
	}

	img, err := png.Decode(rec.Body)
	if err != nil {
		t.Fatalf("Response is not a PNG: %v", err)
	}
	// The sphere scene uses a 16:9 camera
	if b := img.Bounds(); b.Dx() != 20 || b.Dy() != 11 {
		t.Errorf("Expected 20x11 image, got %dx%d", b.Dx(), b.Dy())
	}
}

func TestHandleImage_InvalidRequest(t *testing.T) {
	s := newTestServer(t)
	for _, path := range []string{
		"/api/image?scene=nonexistent",
		"/api/image?scene=sphere&width=5",
		"/api/image?scene=sphere&samples=0",
		"/api/image?scene=missing.json",
	} {
		if rec := get(t, s, path); rec.Code != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d", path, rec.Code)
		}
	}
}

// sseEvents splits an SSE body into (event, data) pairs
func sseEvents(body string) [][2]string {
	var events [][2]string
	for _, block := range strings.Split(body, "\n\n") {
		var event, data string
		for _, line := range strings.Split(block, "\n") {
			switch {
			case strings.HasPrefix(line, "event: "):
				event = strings.TrimPrefix(line, "event: ")
			case strings.HasPrefix(line, "data: "):
				data = strings.TrimPrefix(line, "data: ")
			}
		}
		if event != "" {
			events = append(events, [2]string{event, data})
		}
	}
	return events
}

func TestHandleRender_StreamsConsoleAndImage(t *testing.T) {
	rec := get(t, newTestServer(t), "/api/render?scene=tiny.json&workers=2")
	if ct := rec.Header().Get("Content-Type"); ct != "text/event-stream" {
		t.Errorf("Expected text/event-stream, got %q", ct)
	}

	events := sseEvents(rec.Body.String())
	if len(events) < 2 {
		t.Fatalf("Expected console and complete events, got %v", events)
	}

	last := events[len(events)-1]
	if last[0] != "complete" {
		t.Fatalf("Expected the last event to be complete, got %q", last[0])
	}
	for _, ev := range events[:len(events)-1] {
		if ev[0] != "console" {
			t.Errorf("Unexpected event %q before completion", ev[0])
		}
	}

	var result RenderResult
	if err := json.Unmarshal([]byte(last[1]), &result); err != nil {
		t.Fatalf("Invalid complete payload: %v", err)
	}
	if result.Width != 16 || result.Height != 8 {
		t.Errorf("Expected 16x8 render, got %dx%d", result.Width, result.Height)
	}
	if result.Stats.TotalPixels != 128 || result.Stats.AverageSamples != 2 {
		t.Errorf("Unexpected stats %+v", result.Stats)
	}

	data, err := base64.StdEncoding.DecodeString(result.ImageData)
	if err != nil {
		t.Fatalf("Invalid base64 image: %v", err)
	}
	if _, err := png.Decode(bytes.NewReader(data)); err != nil {
		t.Errorf("Invalid PNG payload: %v", err)
	}
}

func TestHandleRender_InvalidRequest(t *testing.T) {
	rec := get(t, newTestServer(t), "/api/render?scene=nonexistent")
	events := sseEvents(rec.Body.String())
	if len(events) != 1 || events[0][0] != "error" {
		t.Fatalf("Expected a single error event, got %v", events)
	}
	if !strings.Contains(events[0][1], "nonexistent") {
		t.Errorf("Error should name the scene, got %q", events[0][1])
	}
}

func TestHandleInspect(t *testing.T) {
	s := newTestServer(t)

	// Center pixel of the 16x8 tiny scene looks straight at the sphere
	rec := get(t, s, "/api/inspect?scene=tiny.json&x=8&y=4")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var hit InspectResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &hit); err != nil {
		t.Fatal(err)
	}
	if !hit.Hit || hit.MaterialType != "metal" || hit.GeometryType != "sphere" || !hit.FrontFace {
		t.Errorf("Unexpected inspection result %+v", hit)
	}
	if hit.Distance < 0.49 || hit.Distance > 0.6 {
		t.Errorf("Expected distance near 0.5, got %f", hit.Distance)
	}

	// Corner pixel sees only sky
	rec = get(t, s, "/api/inspect?scene=tiny.json&x=0&y=0")
	var miss InspectResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &miss); err != nil {
		t.Fatal(err)
	}
	if miss.Hit {
		t.Errorf("Expected a miss at the corner, got %+v", miss)
	}

	for _, path := range []string{
		"/api/inspect?scene=tiny.json&x=16&y=0",
		"/api/inspect?scene=tiny.json&x=a&y=0",
		"/api/inspect?scene=tiny.json&x=0",
	} {
		if rec := get(t, s, path); rec.Code != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d", path, rec.Code)
		}
	}
}
