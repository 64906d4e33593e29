package webapp

import (
	"time"

	"github.com/drummonds/dataviz/landing"
	"github.com/maxence-charriere/go-app/v10/pkg/app"
)

// Footer is the static brand and copyright block
type Footer struct {
	app.Compo
	Page *Page
}

// Render renders the footer; the copyright year follows the current date
func (f *Footer) Render() app.UI {
	return app.Footer().
		Class("footer").
		Body(
			app.Div().Class("container footer-content").Body(
				brandMark(f.Page, "footer-brand"),
				app.Div().Class("footer-copyright").Text(landing.CopyrightLine(time.Now())),
			),
		)
}
