package webapp

import (
	"github.com/drummonds/dataviz/landing"
	"github.com/maxence-charriere/go-app/v10/pkg/app"
)

// Version info - can be set at build time with -ldflags
var (
	Version   = "dev"
	BuildDate = ""
)

// NavBar is the fixed navigation bar with its mobile menu panel
type NavBar struct {
	app.Compo
	binding
	Page *Page

	width float64
}

// OnMount is called when the component is mounted
func (n *NavBar) OnMount(ctx app.Context) {
	n.bind(ctx, n.Page.Store)
	if app.IsClient {
		n.width = app.Window().Get("innerWidth").Float()
	}
}

// OnDismount is called when the component is unmounted
func (n *NavBar) OnDismount() {
	n.unbind()
}

// Render renders the navigation bar
func (n *NavBar) Render() app.UI {
	state := n.Page.snapshot()

	return app.Nav().
		Class("navbar").
		Body(
			app.Div().Class("navbar-inner").Body(
				brandMark(n.Page, "navbar-brand"),
				app.Div().Class("navbar-menu").Body(
					app.Range(landing.NavLinks).Slice(func(i int) app.UI {
						return n.renderLink(landing.NavLinks[i], "navbar-item")
					}),
					app.Button().
						Class("btn btn-primary").
						OnClick(n.Page.navigate(landing.SectionPricing)).
						Text(landing.GetStartedLabel+" →"),
				),
				app.Button().
					Class(hamburgerClass(state.MenuOpen)).
					ID("menu-toggle").
					Aria("label", "Toggle menu").
					Aria("expanded", state.MenuOpen).
					OnClick(n.onMenuToggle).
					Body(
						// Three horizontal lines for hamburger menu
						app.Span().Class("hamburger-line"),
						app.Span().Class("hamburger-line"),
						app.Span().Class("hamburger-line"),
					),
			),
			app.If(landing.ShowMobileMenu(state.MenuOpen, n.width), func() app.UI {
				return n.renderMobileMenu()
			}),
		)
}

// renderMobileMenu renders the dropdown panel shown below the breakpoint
func (n *NavBar) renderMobileMenu() app.UI {
	return app.Div().
		Class("mobile-menu").
		ID("mobile-menu").
		Body(
			app.Range(landing.NavLinks).Slice(func(i int) app.UI {
				return n.renderLink(landing.NavLinks[i], "mobile-menu-item")
			}),
			app.Button().
				Class("btn btn-primary btn-block").
				OnClick(n.Page.navigate(landing.SectionPricing)).
				Text(landing.GetStartedLabel+" →"),
		)
}

// renderLink creates a link that scrolls to its section
func (n *NavBar) renderLink(link landing.NavLink, class string) app.UI {
	return app.A().
		Href("#"+string(link.Target)).
		Class(class).
		OnClick(n.Page.navigate(link.Target)).
		Text(link.Label)
}

// onMenuToggle handles the hamburger menu click
func (n *NavBar) onMenuToggle(ctx app.Context, e app.Event) {
	n.width = app.Window().Get("innerWidth").Float()
	n.Page.Store.ToggleMenu()
}

// hamburgerClass returns the toggle button class; open turns the lines into a cross
func hamburgerClass(open bool) string {
	if open {
		return "hamburger-menu hamburger-open"
	}
	return "hamburger-menu"
}

// brandMark renders the logo, which scrolls back to the hero section
func brandMark(page *Page, class string) app.UI {
	return app.A().
		Href("#"+string(landing.SectionHero)).
		Class(class).
		OnClick(page.navigate(landing.SectionHero)).
		Body(
			app.Span().Class("brand-icon").Text(iconGlyph(landing.IconChart)),
			app.Span().Class("brand-name").Text(landing.Brand),
		)
}
