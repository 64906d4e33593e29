package webapp

import (
	"time"

	"github.com/drummonds/dataviz/landing"
	"github.com/maxence-charriere/go-app/v10/pkg/app"
)

// Settings are the tunables the server hands to the browser through /config.js
type Settings struct {
	SuccessDuration     time.Duration
	VisibilityThreshold float64
}

// DefaultSettings returns the values used when no configuration is published
func DefaultSettings() Settings {
	return Settings{
		SuccessDuration:     landing.DefaultSuccessDuration,
		VisibilityThreshold: landing.DefaultVisibilityThreshold,
	}
}

// loadSettings reads window.datavizConfig when running in the browser
func loadSettings() Settings {
	settings := DefaultSettings()
	if !app.IsClient {
		return settings
	}

	config := app.Window().Get("datavizConfig")
	if !config.Truthy() {
		return settings
	}
	if ms := config.Get("successDurationMs"); ms.Truthy() && ms.Int() > 0 {
		settings.SuccessDuration = time.Duration(ms.Int()) * time.Millisecond
	}
	if threshold := config.Get("visibilityThreshold"); threshold.Truthy() {
		settings.VisibilityThreshold = threshold.Float()
	}
	return settings
}

// Page bundles the state shared by every section component
type Page struct {
	Store     *landing.Store
	Scroll    *landing.ScrollCoordinator
	Observers *landing.Observers
}

// NewPage wires a store, a DOM scroll coordinator and the section observers
func NewPage(settings Settings) *Page {
	store := landing.NewStore(landing.WithSuccessDuration(settings.SuccessDuration))
	return &Page{
		Store:     store,
		Scroll:    landing.NewScrollCoordinator(store, landing.LocatorFunc(locateSection)),
		Observers: landing.NewObservers(store, settings.VisibilityThreshold),
	}
}

// navigate returns a click handler scrolling to id
func (p *Page) navigate(id landing.SectionID) app.EventHandler {
	return func(ctx app.Context, e app.Event) {
		e.PreventDefault()
		p.Scroll.ScrollTo(id)
	}
}

// domSection is a rendered section element
type domSection struct {
	el app.Value
}

// ScrollIntoView smooth scrolls the element into the viewport
func (d domSection) ScrollIntoView() {
	d.el.Call("scrollIntoView", map[string]any{"behavior": "smooth"})
}

// locateSection finds a section element by id, missing outside the browser
func locateSection(id landing.SectionID) (landing.Scroller, bool) {
	if !app.IsClient {
		return nil, false
	}
	el := app.Window().GetElementByID(string(id))
	if !el.Truthy() {
		return nil, false
	}
	return domSection{el: el}, true
}

// measureSection reads a section's bounding rectangle from the DOM
func measureSection(id landing.SectionID) (landing.Rect, bool) {
	if !app.IsClient {
		return landing.Rect{}, false
	}
	el := app.Window().GetElementByID(string(id))
	if !el.Truthy() {
		return landing.Rect{}, false
	}
	rect := el.Call("getBoundingClientRect")
	return landing.Rect{
		Top:    rect.Get("top").Float(),
		Height: rect.Get("height").Float(),
	}, true
}

// binding re-renders a component whenever the store changes
type binding struct {
	unsubscribe func()
}

func (b *binding) bind(ctx app.Context, store *landing.Store) {
	if store == nil || b.unsubscribe != nil {
		return
	}
	b.unsubscribe = store.Subscribe(func() {
		// Dispatch is safe from the dismissal timer goroutine
		ctx.Dispatch(func(ctx app.Context) {})
	})
}

func (b *binding) unbind() {
	if b.unsubscribe != nil {
		b.unsubscribe()
		b.unsubscribe = nil
	}
}

// snapshot returns the page state, or the initial state without a page
func (p *Page) snapshot() landing.State {
	if p == nil || p.Store == nil {
		return landing.NewStore().Snapshot()
	}
	return p.Store.Snapshot()
}

// entranceStyle applies an entrance transition to an element
func entranceStyle(el app.HTMLDiv, e landing.Entrance, visible bool) app.HTMLDiv {
	style := e.Style(visible)
	return el.
		Style("opacity", style.Opacity).
		Style("transform", style.Transform).
		Style("transition", style.Transition)
}
