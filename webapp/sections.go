package webapp

import (
	"github.com/drummonds/dataviz/landing"
	"github.com/maxence-charriere/go-app/v10/pkg/app"
)

// HeroSection is the full-height banner at the top of the page
type HeroSection struct {
	app.Compo
	binding
	Page *Page
}

func (h *HeroSection) OnMount(ctx app.Context) { h.bind(ctx, h.Page.Store) }
func (h *HeroSection) OnDismount()             { h.unbind() }

// Render renders the hero banner
func (h *HeroSection) Render() app.UI {
	visible := h.Page.snapshot().Visible[landing.SectionHero]

	return app.Section().
		ID(string(landing.SectionHero)).
		Class("section section-hero").
		Body(
			entranceStyle(app.Div().Class("container hero-content"), landing.FadeIn(), visible).Body(
				app.H1().Class("hero-title").Text(landing.HeroTitle),
				app.P().Class("hero-subtitle").Text(landing.HeroSubtitle),
				app.Div().Class("hero-actions").Body(
					app.Button().
						Class("btn btn-primary btn-large").
						OnClick(h.Page.navigate(landing.SectionPricing)).
						Text(landing.GetStartedLabel+" →"),
					app.Button().
						Class("btn btn-outline btn-large").
						OnClick(h.Page.navigate(landing.SectionFeatures)).
						Text(landing.LearnMoreLabel),
				),
			),
		)
}

// FeaturesSection is the grid of product features
type FeaturesSection struct {
	app.Compo
	binding
	Page *Page
}

func (f *FeaturesSection) OnMount(ctx app.Context) { f.bind(ctx, f.Page.Store) }
func (f *FeaturesSection) OnDismount()             { f.unbind() }

// Render renders the features grid with staggered cards
func (f *FeaturesSection) Render() app.UI {
	visible := f.Page.snapshot().Visible[landing.SectionFeatures]

	return app.Section().
		ID(string(landing.SectionFeatures)).
		Class("section section-features").
		Body(
			entranceStyle(app.Div().Class("container"), landing.FadeIn(), visible).Body(
				app.H2().Class("section-title").Text(landing.FeaturesTitle),
				app.Div().Class("card-grid").Body(
					app.Range(landing.Features).Slice(func(i int) app.UI {
						feature := landing.Features[i]
						return entranceStyle(app.Div().Class("feature-card"), landing.Staggered(i), visible).Body(
							app.Div().Class("feature-icon").Text(iconGlyph(feature.Icon)),
							app.H3().Class("feature-title").Text(feature.Title),
							app.P().Class("feature-description").Text(feature.Description),
						)
					}),
				),
			),
		)
}

// PricingSection lists the subscription tiers
type PricingSection struct {
	app.Compo
	binding
	Page *Page
}

func (p *PricingSection) OnMount(ctx app.Context) { p.bind(ctx, p.Page.Store) }
func (p *PricingSection) OnDismount()             { p.unbind() }

// Render renders the pricing tiers
func (p *PricingSection) Render() app.UI {
	visible := p.Page.snapshot().Visible[landing.SectionPricing]

	return app.Section().
		ID(string(landing.SectionPricing)).
		Class("section section-pricing").
		Body(
			entranceStyle(app.Div().Class("container"), landing.FadeIn(), visible).Body(
				app.H2().Class("section-title").Text(landing.PricingTitle),
				app.Div().Class("card-grid").Body(
					app.Range(landing.PricingTiers).Slice(func(i int) app.UI {
						return p.renderTier(i, visible)
					}),
				),
			),
		)
}

// renderTier renders one pricing card
func (p *PricingSection) renderTier(i int, visible bool) app.UI {
	tier := landing.PricingTiers[i]

	return entranceStyle(app.Div().Class(tierClass(tier)), landing.Staggered(i), visible).Body(
		app.H3().Class("tier-title").Text(tier.Title),
		app.Div().Class("tier-price").Text(tier.Price),
		app.Ul().Class("tier-features").Body(
			app.Range(tier.Features).Slice(func(j int) app.UI {
				return app.Li().Body(
					app.Span().Class("tier-bullet").Text("→"),
					app.Text(tier.Features[j]),
				)
			}),
		),
		app.Button().
			Class(tierButtonClass(tier)).
			OnClick(p.Page.navigate(landing.SectionContact)).
			Text(landing.GetStartedLabel),
	)
}

func tierClass(tier landing.PricingTier) string {
	if tier.Highlighted {
		return "pricing-card pricing-card-highlighted"
	}
	return "pricing-card"
}

func tierButtonClass(tier landing.PricingTier) string {
	if tier.Highlighted {
		return "btn btn-inverse btn-block"
	}
	return "btn btn-primary btn-block"
}

// iconGlyph maps a feature icon category to the glyph shown on its card
func iconGlyph(c landing.IconCategory) string {
	switch c {
	case landing.IconChart:
		return "📊"
	case landing.IconShield:
		return "🛡️"
	case landing.IconZap:
		return "⚡"
	case landing.IconUsers:
		return "👥"
	case landing.IconPie:
		return "🥧"
	case landing.IconMail:
		return "✉️"
	default:
		return "•"
	}
}
