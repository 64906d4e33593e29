package landing

// DefaultVisibilityThreshold is the share of a section that must be on screen
const DefaultVisibilityThreshold = 0.1

// Rect is an element's vertical extent relative to the top of the viewport
type Rect struct {
	Top    float64
	Height float64
}

// IntersectionRatio returns the visible fraction of r inside a viewport
// of the given height, between 0 and 1.
func IntersectionRatio(r Rect, viewportHeight float64) float64 {
	if viewportHeight <= 0 {
		return 0
	}
	if r.Height <= 0 {
		if r.Top >= 0 && r.Top <= viewportHeight {
			return 1
		}
		return 0
	}

	top := max(r.Top, 0)
	bottom := min(r.Top+r.Height, viewportHeight)
	if bottom <= top {
		return 0
	}
	return (bottom - top) / r.Height
}

// VisibilityObserver reports whether one section intersects the viewport
type VisibilityObserver struct {
	Section   SectionID
	Threshold float64
	store     *Store
}

// Observe re-derives the section's flag from its current bounds
func (o *VisibilityObserver) Observe(r Rect, viewportHeight float64) bool {
	ratio := IntersectionRatio(r, viewportHeight)
	visible := ratio > 0 && ratio >= o.Threshold
	if o.store != nil {
		o.store.SetVisible(o.Section, visible)
	}
	return visible
}

// Observers holds one observer per section
type Observers struct {
	list []*VisibilityObserver
}

// NewObservers creates an observer for every section. A threshold outside
// (0, 1] falls back to the default.
func NewObservers(store *Store, threshold float64) *Observers {
	if threshold <= 0 || threshold > 1 {
		threshold = DefaultVisibilityThreshold
	}
	obs := &Observers{}
	for _, id := range Sections {
		obs.list = append(obs.list, &VisibilityObserver{Section: id, Threshold: threshold, store: store})
	}
	return obs
}

// Observer returns the observer for id
func (o *Observers) Observer(id SectionID) (*VisibilityObserver, bool) {
	for _, obs := range o.list {
		if obs.Section == id {
			return obs, true
		}
	}
	return nil, false
}

// Refresh measures every section and updates its flag. Sections that
// measure reports as missing are left untouched.
func (o *Observers) Refresh(measure func(SectionID) (Rect, bool), viewportHeight float64) {
	for _, obs := range o.list {
		r, ok := measure(obs.Section)
		if !ok {
			continue
		}
		obs.Observe(r, viewportHeight)
	}
}
