package webapp

import (
	"github.com/maxence-charriere/go-app/v10/pkg/app"
)

// App is the root component of the landing page
type App struct {
	app.Compo
	page *Page

	onScroll app.Func
	onResize app.Func
}

// Page returns the shared page state, creating it on first use
func (a *App) Page() *Page {
	if a.page == nil {
		a.page = NewPage(loadSettings())
	}
	return a.page
}

// OnMount starts observing scroll and resize events
func (a *App) OnMount(ctx app.Context) {
	if !app.IsClient {
		return
	}
	page := a.Page()

	a.onScroll = app.FuncOf(func(this app.Value, args []app.Value) any {
		ctx.Dispatch(func(ctx app.Context) {
			a.refreshVisibility()
		})
		return nil
	})
	a.onResize = app.FuncOf(func(this app.Value, args []app.Value) any {
		ctx.Dispatch(func(ctx app.Context) {
			page.Store.Resize(app.Window().Get("innerWidth").Float())
			a.refreshVisibility()
		})
		return nil
	})
	app.Window().Call("addEventListener", "scroll", a.onScroll, map[string]any{"passive": true})
	app.Window().Call("addEventListener", "resize", a.onResize)

	// sections already on screen at load time animate in straight away
	ctx.Defer(func(ctx app.Context) {
		a.refreshVisibility()
	})
}

// OnDismount removes the window listeners
func (a *App) OnDismount() {
	if a.onScroll != nil {
		app.Window().Call("removeEventListener", "scroll", a.onScroll)
		a.onScroll.Release()
		a.onScroll = nil
	}
	if a.onResize != nil {
		app.Window().Call("removeEventListener", "resize", a.onResize)
		a.onResize.Release()
		a.onResize = nil
	}
}

// refreshVisibility re-derives every section's visibility flag
func (a *App) refreshVisibility() {
	viewportHeight := app.Window().Get("innerHeight").Float()
	a.Page().Observers.Refresh(measureSection, viewportHeight)
}

// Render renders the page top to bottom
func (a *App) Render() app.UI {
	page := a.Page()
	return app.Div().
		Class("landing").
		Body(
			&NavBar{Page: page},
			app.Main().Class("landing-main").Body(
				&HeroSection{Page: page},
				&FeaturesSection{Page: page},
				&PricingSection{Page: page},
				&ContactSection{Page: page},
				&Footer{Page: page},
			),
		)
}
