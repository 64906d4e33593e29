package landing

import (
	"fmt"
	"time"
)

const (
	// EntranceDuration is the length of a hidden/visible transition
	EntranceDuration = 600 * time.Millisecond
	// StaggerStep delays each card after the first
	StaggerStep = 100 * time.Millisecond
	// HiddenOffset is how far below its resting place a hidden block sits, in px
	HiddenOffset = 20.0
)

// Frame is the rendered look of a block at one instant
type Frame struct {
	Opacity float64
	OffsetY float64
}

var (
	HiddenFrame  = Frame{Opacity: 0, OffsetY: HiddenOffset}
	VisibleFrame = Frame{Opacity: 1, OffsetY: 0}
)

// Entrance is a two-state fade and slide transition. It re-runs every
// time the section's visibility flag flips.
type Entrance struct {
	Duration time.Duration
	Delay    time.Duration
}

// FadeIn is the transition applied to whole sections
func FadeIn() Entrance {
	return Entrance{Duration: EntranceDuration}
}

// Staggered is the transition of the index-th card in a grid
func Staggered(index int) Entrance {
	if index < 0 {
		index = 0
	}
	return Entrance{Duration: EntranceDuration, Delay: time.Duration(index) * StaggerStep}
}

// Target returns the resting frame for a visibility flag
func Target(visible bool) Frame {
	if visible {
		return VisibleFrame
	}
	return HiddenFrame
}

// Style is the CSS declaration set for a block; the browser interpolates
// between frames through the transition property.
type Style struct {
	Opacity    string
	Transform  string
	Transition string
}

// Style renders the resting frame for visible along with the transition timing
func (e Entrance) Style(visible bool) Style {
	f := Target(visible)
	return Style{
		Opacity:    fmt.Sprintf("%g", f.Opacity),
		Transform:  fmt.Sprintf("translateY(%gpx)", f.OffsetY),
		Transition: fmt.Sprintf("opacity %dms ease-out %dms, transform %dms ease-out %dms", e.Duration.Milliseconds(), e.Delay.Milliseconds(), e.Duration.Milliseconds(), e.Delay.Milliseconds()),
	}
}
