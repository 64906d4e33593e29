package webapp

import (
	"github.com/drummonds/dataviz/landing"
	"github.com/maxence-charriere/go-app/v10/pkg/app"
)

// ContactSection holds the contact form. Nothing is sent anywhere: a
// submission only shows the confirmation banner.
type ContactSection struct {
	app.Compo
	binding
	Page *Page
}

// OnMount is called when the component is mounted
func (c *ContactSection) OnMount(ctx app.Context) { c.bind(ctx, c.Page.Store) }

// OnDismount is called when the component is unmounted
func (c *ContactSection) OnDismount() { c.unbind() }

// Render renders the contact form and the transient success banner
func (c *ContactSection) Render() app.UI {
	state := c.Page.snapshot()
	form := state.Form

	return app.Section().
		ID(string(landing.SectionContact)).
		Class("section section-contact").
		Body(
			entranceStyle(app.Div().Class("container"), landing.FadeIn(), state.Visible[landing.SectionContact]).Body(
				app.H2().Class("section-title").Text(landing.ContactTitle),
				app.Div().Class("contact-body").Body(
					app.If(state.Success, func() app.UI {
						return app.Div().
							Class("contact-success").
							ID("contact-success").
							Aria("live", "polite").
							Text(landing.SuccessMessage)
					}),
					app.Form().
						Class("contact-form").
						ID("contact-form").
						OnSubmit(c.onSubmit).
						Body(
							app.Div().Class("form-field").Body(
								app.Label().For("contact-name").Text("Name"),
								app.Input().
									Type("text").
									ID("contact-name").
									Name("name").
									Value(form.Name).
									Required(true).
									OnInput(c.onInput(landing.FieldName)),
							),
							app.Div().Class("form-field").Body(
								app.Label().For("contact-email").Text("Email"),
								app.Input().
									Type("email").
									ID("contact-email").
									Name("email").
									Value(form.Email).
									Required(true).
									OnInput(c.onInput(landing.FieldEmail)),
							),
							app.Div().Class("form-field").Body(
								app.Label().For("contact-message").Text("Message"),
								app.Textarea().
									ID("contact-message").
									Name("message").
									Rows(5).
									Required(true).
									OnInput(c.onInput(landing.FieldMessage)).
									Text(form.Message),
							),
							app.Button().
								Type("submit").
								Class("btn btn-primary btn-block").
								Disabled(!form.Complete()).
								Text(landing.SendLabel+" ➤"),
						),
				),
			),
		)
}

// onInput copies a keystroke into the store
func (c *ContactSection) onInput(field landing.Field) app.EventHandler {
	return func(ctx app.Context, e app.Event) {
		c.Page.Store.SetField(field, ctx.JSSrc().Get("value").String())
	}
}

// onSubmit handles the form submission locally
func (c *ContactSection) onSubmit(ctx app.Context, e app.Event) {
	e.PreventDefault()
	if !c.Page.snapshot().Form.Complete() {
		return
	}
	c.Page.Store.Submit()
	// textarea keeps its typed value until the form itself is reset
	ctx.JSSrc().Call("reset")
}
