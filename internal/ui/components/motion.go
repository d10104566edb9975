package components

import (
	"time"

	"github.com/charmbracelet/lipgloss"
)

// Animation describes a component's hover and tap response. It is plain data;
// only components with motion enabled consume it.
type Animation struct {
	HoverScale float64
	TapScale   float64
	// Lift is how many rows the component rises while hovered.
	Lift int
	// Fade renders the resting frame faint until the component is engaged.
	Fade     bool
	Duration time.Duration
}

var (
	ButtonAnimation = Animation{HoverScale: 1.03, TapScale: 0.97, Duration: 200 * time.Millisecond}
	BadgeAnimation  = Animation{HoverScale: 1.05, TapScale: 0.95, Duration: 200 * time.Millisecond}
	CardAnimation   = Animation{Lift: 1, Duration: 200 * time.Millisecond}
	FormAnimation   = Animation{Fade: true, Duration: 300 * time.Millisecond}
)

// apply adjusts style for the engaged (hovered) or resting frame. Growth
// becomes one extra cell of horizontal padding on each side; lift trades
// bottom margin for top margin.
func (a Animation) apply(style lipgloss.Style, engaged bool) lipgloss.Style {
	if a.Fade && !engaged {
		style = style.Faint(true)
	}
	if a.Lift > 0 {
		if engaged {
			style = style.MarginBottom(style.GetMarginBottom() + a.Lift)
		} else {
			style = style.MarginTop(style.GetMarginTop() + a.Lift)
		}
	}
	if !engaged || a.HoverScale <= 1 {
		return style
	}
	return style.
		PaddingLeft(style.GetPaddingLeft() + 1).
		PaddingRight(style.GetPaddingRight() + 1)
}
