package httpserver

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/vnclrd/folio/internal/content"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestServer(t *testing.T) (*Server, *gin.Engine) {
	t.Helper()
	srv := NewServer("", content.Default())
	srv.startTime = time.Now()
	return srv, srv.routes()
}

func get(t *testing.T, r *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHealthEndpoint(t *testing.T) {
	_, r := newTestServer(t)

	w := get(t, r, "/api/health")
	if w.Code != http.StatusOK {
		t.Fatalf("health status = %d, want %d", w.Code, http.StatusOK)
	}

	var body struct {
		Status string         `json:"status"`
		Counts map[string]int `json:"counts"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal health: %v", err)
	}
	if body.Status != "ok" {
		t.Errorf("health status = %q, want ok", body.Status)
	}
	if got := body.Counts["certifications"]; got != 9 {
		t.Errorf("certification count = %d, want 9", got)
	}
}

func TestHealthEndpoint_WrongMethod(t *testing.T) {
	_, r := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/health", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	// Gin returns 404 unless HandleMethodNotAllowed is set.
	if w.Code != http.StatusMethodNotAllowed && w.Code != http.StatusNotFound {
		t.Errorf("health POST status = %d, want 405 or 404", w.Code)
	}
}

func TestContentEndpoint(t *testing.T) {
	_, r := newTestServer(t)

	w := get(t, r, "/api/content")
	if w.Code != http.StatusOK {
		t.Fatalf("content status = %d", w.Code)
	}

	var doc content.Document
	if err := json.Unmarshal(w.Body.Bytes(), &doc); err != nil {
		t.Fatalf("unmarshal content: %v", err)
	}
	if doc.Profile.Name != content.Default().Profile.Name {
		t.Errorf("profile name = %q", doc.Profile.Name)
	}
	if len(doc.Projects) != len(content.Default().Projects) {
		t.Errorf("projects = %d", len(doc.Projects))
	}
}

func TestSectionEndpoint_Carousel(t *testing.T) {
	_, r := newTestServer(t)

	w := get(t, r, "/api/content/experience")
	if w.Code != http.StatusOK {
		t.Fatalf("section status = %d", w.Code)
	}

	var body struct {
		Section string         `json:"section"`
		Title   string         `json:"title"`
		Cards   []content.Card `json:"cards"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal section: %v", err)
	}
	if body.Title != "Other Work Experience" {
		t.Errorf("title = %q", body.Title)
	}
	if len(body.Cards) != 4 {
		t.Fatalf("cards = %d, want 4", len(body.Cards))
	}
	if body.Cards[0].ID != "work-1" {
		t.Errorf("first card id = %q, want work-1", body.Cards[0].ID)
	}
}

func TestSectionEndpoint_Static(t *testing.T) {
	_, r := newTestServer(t)

	w := get(t, r, "/api/content/skills")
	if w.Code != http.StatusOK {
		t.Fatalf("section status = %d", w.Code)
	}
	var body map[string]json.RawMessage
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal section: %v", err)
	}
	if _, ok := body["skills"]; !ok {
		t.Errorf("skills section missing skills key: %s", w.Body.String())
	}
}

func TestSectionEndpoint_Unknown(t *testing.T) {
	_, r := newTestServer(t)

	w := get(t, r, "/api/content/blog")
	if w.Code != http.StatusNotFound {
		t.Fatalf("unknown section status = %d, want 404", w.Code)
	}
	if !strings.Contains(w.Body.String(), "unknown") {
		t.Errorf("error body = %s", w.Body.String())
	}
}

func TestIndexPage(t *testing.T) {
	_, r := newTestServer(t)

	w := get(t, r, "/")
	if w.Code != http.StatusOK {
		t.Fatalf("index status = %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("content type = %q", ct)
	}

	html := w.Body.String()
	for _, want := range []string{"Miguel Ivan Calarde", "Certifications", "Other Work Experience", "All rights reserved"} {
		if !strings.Contains(html, want) {
			t.Errorf("index missing %q", want)
		}
	}
}

func TestStartStop(t *testing.T) {
	srv := NewServer("127.0.0.1:0", content.Default())
	if err := srv.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer srv.Stop()

	resp, err := http.Get("http://" + srv.Addr() + "/api/health")
	if err != nil {
		t.Fatalf("GET health: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("health status = %d", resp.StatusCode)
	}
}
