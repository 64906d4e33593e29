package engine

import (
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/drummonds/dataviz/config"
	"github.com/drummonds/dataviz/webapp"
	"github.com/labstack/echo/v4"
)

// Logger is global since we will need it everywhere
var Logger = slog.Default()

// Embedded asset paths, relative to the Assets filesystem
const (
	StylesheetAsset = "webapp/webapp.css"
	LogoAsset       = "webapp/logo.svg"
)

// ServerHandler will inject the variables needed into routes
type ServerHandler struct {
	Echo         *echo.Echo
	ServerConfig config.ServerConfig
	Assets       fs.FS
	AppHandler   http.Handler
}

// AboutInfo is returned by /api/about
type AboutInfo struct {
	Service               string  `json:"service"`
	Version               string  `json:"version"`
	BuildDate             string  `json:"buildDate,omitempty"`
	SuccessDurationMs     int64   `json:"successDurationMs"`
	VisibilityThreshold   float64 `json:"visibilityThreshold"`
	WasmAvailable         bool    `json:"wasmAvailable"`
	ContactFormSubmission string  `json:"contactFormSubmission"`
}

// RegisterRoutes wires every route of the site. The landing page is the
// only page route: any other path falls through to the 404 handler.
func (serverHandler *ServerHandler) RegisterRoutes() {
	e := serverHandler.Echo
	appHandler := echo.WrapHandler(serverHandler.AppHandler)

	e.HTTPErrorHandler = serverHandler.HTTPErrorHandler

	// go-app page and generated resources
	e.GET("/", appHandler)
	e.GET("/app.js", appHandler)
	e.GET("/app.css", appHandler)
	e.GET("/app-worker.js", appHandler)
	e.GET("/manifest.webmanifest", appHandler)
	e.GET("/wasm_exec.js", serverHandler.GetWasmExec)

	// wasm build output
	e.Static("/web", serverHandler.ServerConfig.WebDir)

	// embedded assets
	e.GET("/webapp/webapp.css", serverHandler.assetHandler(StylesheetAsset, "text/css"))
	e.GET("/webapp/logo.svg", serverHandler.assetHandler(LogoAsset, "image/svg+xml"))
	e.GET("/favicon.ico", serverHandler.assetHandler(LogoAsset, "image/svg+xml"))

	e.GET("/config.js", serverHandler.GetConfigJS)

	e.GET("/api/health", serverHandler.GetHealth)
	e.GET("/api/about", serverHandler.GetAboutInfo)
}

// assetHandler serves a file from the embedded assets
func (serverHandler *ServerHandler) assetHandler(name, contentType string) echo.HandlerFunc {
	return func(c echo.Context) error {
		data, err := fs.ReadFile(serverHandler.Assets, name)
		if err != nil {
			Logger.Error("Embedded asset missing", "asset", name, "error", err)
			return echo.NewHTTPError(http.StatusNotFound, fmt.Sprintf("%s not found", filepath.Base(name)))
		}
		return c.Blob(http.StatusOK, contentType, data)
	}
}

// GetWasmExec serves wasm_exec.js from the web directory, falling back to
// the copy bundled with go-app
func (serverHandler *ServerHandler) GetWasmExec(c echo.Context) error {
	path := filepath.Join(serverHandler.ServerConfig.WebDir, "wasm_exec.js")
	if _, err := os.Stat(path); err == nil {
		return c.File(path)
	}
	serverHandler.AppHandler.ServeHTTP(c.Response(), c.Request())
	return nil
}

// GetConfigJS publishes the page settings as window.datavizConfig
func (serverHandler *ServerHandler) GetConfigJS(c echo.Context) error {
	fe := serverHandler.ServerConfig.FrontEndConfig
	configJS := fmt.Sprintf(`
// DataViz Frontend Configuration
window.datavizConfig = {
    successDurationMs: %d,
    visibilityThreshold: %g
};
`, fe.SuccessDuration.Milliseconds(), fe.VisibilityThreshold)
	c.Response().Header().Set(echo.HeaderContentType, "application/javascript")
	return c.String(http.StatusOK, configJS)
}

// GetHealth reports that the server is up
func (serverHandler *ServerHandler) GetHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "DataViz",
	})
}

// GetAboutInfo returns build and page configuration details
func (serverHandler *ServerHandler) GetAboutInfo(c echo.Context) error {
	fe := serverHandler.ServerConfig.FrontEndConfig
	_, wasmErr := os.Stat(filepath.Join(serverHandler.ServerConfig.WebDir, "app.wasm"))

	return c.JSON(http.StatusOK, AboutInfo{
		Service:               "DataViz",
		Version:               webapp.Version,
		BuildDate:             webapp.BuildDate,
		SuccessDurationMs:     fe.SuccessDuration.Milliseconds(),
		VisibilityThreshold:   fe.VisibilityThreshold,
		WasmAvailable:         wasmErr == nil,
		ContactFormSubmission: "local",
	})
}

// HTTPErrorHandler returns JSON errors for the API and an HTML page otherwise
func (serverHandler *ServerHandler) HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	if he, ok := err.(*echo.HTTPError); ok {
		code = he.Code
	}

	if code != http.StatusNotFound {
		// For other errors, use default handler
		serverHandler.Echo.DefaultHTTPErrorHandler(err, c)
		return
	}

	path := c.Request().URL.Path
	if strings.HasPrefix(path, "/api/") {
		c.JSON(http.StatusNotFound, map[string]string{
			"error":   "Not Found",
			"message": "The requested API endpoint does not exist",
			"path":    path,
		})
		return
	}

	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(http.StatusNotFound)
	if err := NotFoundPage(path).Render(c.Response()); err != nil {
		Logger.Error("Failed to render 404 page", "path", path, "error", err)
	}
}
