package engine

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/drummonds/dataviz/landing"
)

// NotFoundPage renders the static 404 document for path
func NotFoundPage(path string) g.Node {
	return Doctype(
		HTML(
			Lang("en"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1")),
				TitleEl(g.Text("404 - "+landing.Brand)),
				Link(Rel("stylesheet"), Href("/webapp/webapp.css")),
			),
			Body(
				Main(
					Class("section not-found-page"),
					Div(
						Class("container hero-content"),
						H1(Class("hero-title"), g.Text("404")),
						H2(Class("section-title"), g.Text("Page Not Found")),
						P(Class("hero-subtitle"), g.Textf("There is nothing at %s.", path)),
						A(Href("/"), Class("btn btn-primary btn-large"), g.Text("Back to "+landing.Brand)),
					),
				),
			),
		),
	)
}
