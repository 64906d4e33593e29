package landing

// MobileBreakpoint is the viewport width, in px, from which the desktop navigation is shown
const MobileBreakpoint = 768

// IsMobileWidth reports whether the hamburger menu applies. An unknown
// width (0, during prerendering) counts as mobile.
func IsMobileWidth(width float64) bool {
	return width < MobileBreakpoint
}

// ShowMobileMenu reports whether the mobile panel should be rendered
func ShowMobileMenu(open bool, width float64) bool {
	return open && IsMobileWidth(width)
}

// Resize closes the menu once the viewport grows past the breakpoint
func (s *Store) Resize(width float64) {
	if !IsMobileWidth(width) {
		s.CloseMenu()
	}
}
