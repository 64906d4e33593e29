package webapp

import (
	"fmt"
	"html"
	"net/http"
	"strings"

	"github.com/drummonds/dataviz/landing"
	"github.com/maxence-charriere/go-app/v10/pkg/app"
)

// Routes registers the client-side routes. The wasm binary and the server
// handler must register the same set.
func Routes() {
	app.Route("/", func() app.Composer { return &App{} })
}

// Handler returns an HTTP handler for the web app. baseURL is the public
// address behind a reverse proxy; when set it becomes the canonical link.
func Handler(baseURL string) http.Handler {
	Routes()
	app.RunWhenOnBrowser()

	rawHeaders := []string{
		`<meta name="viewport" content="width=device-width, initial-scale=1">`,
	}
	if baseURL != "" {
		canonical := html.EscapeString(strings.TrimRight(baseURL, "/") + "/")
		rawHeaders = append(rawHeaders, fmt.Sprintf(`<link rel="canonical" href="%s">`, canonical))
	}

	// wasm_exec.js is served at /wasm_exec.js by Echo
	// app.wasm is served from /web/app.wasm by Echo
	return &app.Handler{
		Name:        landing.Brand,
		ShortName:   landing.Brand,
		Title:       landing.Brand + " - Store analytics",
		Description: landing.HeroSubtitle,
		Icon: app.Icon{
			Default: "/webapp/logo.svg",
		},
		Styles: []string{
			"/webapp/webapp.css",
		},
		Scripts: []string{
			"/config.js", // Load page settings
		},
		RawHeaders: rawHeaders,
	}
}
