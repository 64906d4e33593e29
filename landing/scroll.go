package landing

// Scroller is a rendered section that can bring itself into view
type Scroller interface {
	ScrollIntoView()
}

// SectionLocator finds the rendered element of a section
type SectionLocator interface {
	Locate(id SectionID) (Scroller, bool)
}

// LocatorFunc adapts a function to SectionLocator
type LocatorFunc func(id SectionID) (Scroller, bool)

// Locate calls f
func (f LocatorFunc) Locate(id SectionID) (Scroller, bool) {
	return f(id)
}

// ScrollCoordinator performs navigation between sections
type ScrollCoordinator struct {
	Store   *Store
	Locator SectionLocator
}

// NewScrollCoordinator binds a locator to the store whose menu it closes
func NewScrollCoordinator(store *Store, locator SectionLocator) *ScrollCoordinator {
	return &ScrollCoordinator{Store: store, Locator: locator}
}

// ScrollTo smooth scrolls to the section and closes the mobile menu.
// The menu is closed even when the section is not rendered; the return
// value reports whether a scroll happened.
func (c *ScrollCoordinator) ScrollTo(id SectionID) bool {
	if c.Store != nil {
		c.Store.CloseMenu()
	}
	if c.Locator == nil {
		Logger.Debug("No section locator, skipping scroll", "section", id)
		return false
	}

	target, ok := c.Locator.Locate(id)
	if !ok || target == nil {
		Logger.Debug("Section not rendered, skipping scroll", "section", id)
		return false
	}
	target.ScrollIntoView()
	return true
}
