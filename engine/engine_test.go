package engine

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"github.com/drummonds/dataviz/config"
	"github.com/drummonds/dataviz/webapp"
	"github.com/labstack/echo/v4"
)

var testAssets = fstest.MapFS{
	StylesheetAsset: {Data: []byte("body { margin: 0; }")},
	LogoAsset:       {Data: []byte("<svg></svg>")},
}

// newTestServer builds an echo instance with every route registered
func newTestServer(t *testing.T, webDir string) *echo.Echo {
	t.Helper()

	e := echo.New()
	e.HideBanner = true
	serverHandler := ServerHandler{
		Echo: e,
		ServerConfig: config.ServerConfig{
			WebDir: webDir,
			FrontEndConfig: config.FrontEndConfig{
				SuccessDuration:     3 * time.Second,
				VisibilityThreshold: 0.1,
			},
		},
		Assets:     testAssets,
		AppHandler: webapp.Handler(""),
	}
	serverHandler.RegisterRoutes()
	return e
}

func get(e *echo.Echo, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestHealthEndpoint(t *testing.T) {
	e := newTestServer(t, t.TempDir())
	rec := get(e, "/api/health")

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	if body["status"] != "healthy" {
		t.Errorf("status = %q, want healthy", body["status"])
	}
}

func TestAboutEndpoint(t *testing.T) {
	webDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(webDir, "app.wasm"), []byte("wasm"), 0644); err != nil {
		t.Fatalf("Failed to write app.wasm: %v", err)
	}
	e := newTestServer(t, webDir)
	rec := get(e, "/api/about")

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}
	var info AboutInfo
	if err := json.Unmarshal(rec.Body.Bytes(), &info); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	if info.Service != "DataViz" {
		t.Errorf("Service = %q", info.Service)
	}
	if info.SuccessDurationMs != 3000 {
		t.Errorf("SuccessDurationMs = %d, want 3000", info.SuccessDurationMs)
	}
	if !info.WasmAvailable {
		t.Error("WasmAvailable should be true when app.wasm exists")
	}
	if info.ContactFormSubmission != "local" {
		t.Errorf("ContactFormSubmission = %q, want local", info.ContactFormSubmission)
	}
}

func TestConfigJS(t *testing.T) {
	e := newTestServer(t, t.TempDir())
	rec := get(e, "/config.js")

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get(echo.HeaderContentType); ct != "application/javascript" {
		t.Errorf("Content-Type = %q", ct)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "window.datavizConfig") {
		t.Error("config.js should define window.datavizConfig")
	}
	if !strings.Contains(body, "successDurationMs: 3000") {
		t.Errorf("config.js should publish the success duration, got:\n%s", body)
	}
	if !strings.Contains(body, "visibilityThreshold: 0.1") {
		t.Errorf("config.js should publish the threshold, got:\n%s", body)
	}
}

func TestEmbeddedAssets(t *testing.T) {
	e := newTestServer(t, t.TempDir())

	tests := []struct {
		path        string
		contentType string
	}{
		{path: "/webapp/webapp.css", contentType: "text/css"},
		{path: "/webapp/logo.svg", contentType: "image/svg+xml"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := get(e, tt.path)
			if rec.Code != http.StatusOK {
				t.Fatalf("Expected status 200, got %d", rec.Code)
			}
			if ct := rec.Header().Get(echo.HeaderContentType); ct != tt.contentType {
				t.Errorf("Content-Type = %q, want %q", ct, tt.contentType)
			}
		})
	}
}

func TestLandingPageRoute(t *testing.T) {
	e := newTestServer(t, t.TempDir())
	rec := get(e, "/")

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "DataViz") {
		t.Error("Landing page should mention the brand")
	}
}

func TestNotFoundAPIReturnsJSON(t *testing.T) {
	e := newTestServer(t, t.TempDir())
	rec := get(e, "/api/documents")

	if rec.Code != http.StatusNotFound {
		t.Fatalf("Expected status 404, got %d", rec.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("API 404 should be JSON: %v", err)
	}
	if body["path"] != "/api/documents" {
		t.Errorf("path = %q", body["path"])
	}
}

func TestNotFoundPageReturnsHTML(t *testing.T) {
	e := newTestServer(t, t.TempDir())
	rec := get(e, "/blog")

	if rec.Code != http.StatusNotFound {
		t.Fatalf("Expected status 404, got %d", rec.Code)
	}
	if ct := rec.Header().Get(echo.HeaderContentType); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("Content-Type = %q, want text/html", ct)
	}
	body := rec.Body.String()
	if !strings.HasPrefix(body, "<!doctype html>") {
		t.Errorf("404 page should be a full document, got %q", body[:min(len(body), 40)])
	}
	if !strings.Contains(body, "There is nothing at /blog.") {
		t.Error("404 page should name the missing path")
	}
}

func TestStartupChecks(t *testing.T) {
	serverHandler := ServerHandler{
		ServerConfig: config.ServerConfig{WebDir: t.TempDir()},
		Assets:       testAssets,
	}
	if err := serverHandler.StartupChecks(); err != nil {
		t.Errorf("StartupChecks with all assets should pass, got: %v", err)
	}

	serverHandler.Assets = fstest.MapFS{StylesheetAsset: {Data: []byte("")}}
	err := serverHandler.StartupChecks()
	if err == nil {
		t.Fatal("StartupChecks should report the missing logo")
	}
	if !strings.Contains(err.Error(), LogoAsset) {
		t.Errorf("Error should name the missing asset, got: %v", err)
	}

	serverHandler.Assets = nil
	if err := serverHandler.StartupChecks(); err == nil {
		t.Error("StartupChecks without assets should fail")
	}
}
