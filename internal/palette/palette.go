// Package palette maps semantic colour roles to colour ramps and carries the
// active mapping through a context.Context.
//
// A Palette is immutable. Rebinding a subtree with Bind produces a new value
// that inherits every slot the partial leaves unset; the parent is untouched.
package palette

import (
	"context"

	lumerrors "github.com/alexisbeaulieu97/luminance/pkg/errors"
)

// Slot names a semantic colour role.
type Slot string

const (
	SlotPrimary   Slot = "primary"
	SlotSecondary Slot = "secondary"
	SlotAccent    Slot = "accent"
	SlotMuted     Slot = "muted"
)

// Slots lists every slot in display order.
func Slots() []Slot {
	return []Slot{SlotPrimary, SlotSecondary, SlotAccent, SlotMuted}
}

// Palette assigns a ramp identifier to each slot.
type Palette struct {
	Primary   string `yaml:"primary" mapstructure:"primary"`
	Secondary string `yaml:"secondary" mapstructure:"secondary"`
	Accent    string `yaml:"accent" mapstructure:"accent"`
	Muted     string `yaml:"muted" mapstructure:"muted"`
}

// Partial is a palette override; empty fields are unset.
type Partial Palette

var defaultPalette = Palette{
	Primary:   "luminance-primary",
	Secondary: "luminance-teal",
	Accent:    "luminance-purple",
	Muted:     "luminance-neutral",
}

// Default returns the built-in palette.
func Default() Palette {
	return defaultPalette
}

// Bind overlays partial on parent slot by slot.
func Bind(partial Partial, parent Palette) Palette {
	out := parent
	if partial.Primary != "" {
		out.Primary = partial.Primary
	}
	if partial.Secondary != "" {
		out.Secondary = partial.Secondary
	}
	if partial.Accent != "" {
		out.Accent = partial.Accent
	}
	if partial.Muted != "" {
		out.Muted = partial.Muted
	}
	return out
}

// Complete fills unset slots from the default palette independently.
func (p Palette) Complete() Palette {
	return Bind(Partial(p), defaultPalette)
}

// Slot returns the ramp identifier assigned to s.
func (p Palette) Slot(s Slot) string {
	switch s {
	case SlotPrimary:
		return p.Primary
	case SlotSecondary:
		return p.Secondary
	case SlotAccent:
		return p.Accent
	case SlotMuted:
		return p.Muted
	default:
		return ""
	}
}

type contextKey struct{}

// NewContext returns a context carrying p for everything derived from it.
func NewContext(ctx context.Context, p Palette) context.Context {
	return context.WithValue(ctx, contextKey{}, p)
}

// BindContext rebinds the palette for a subtree: partial is laid over the
// palette visible from ctx.
func BindContext(ctx context.Context, partial Partial) context.Context {
	return NewContext(ctx, Bind(partial, FromContext(ctx)))
}

// FromContext returns the nearest bound palette, or Default when none is bound.
func FromContext(ctx context.Context) Palette {
	if p, ok := lookup(ctx); ok {
		return p
	}
	return defaultPalette
}

// Lookup returns the nearest bound palette and fails when none is bound.
func Lookup(ctx context.Context) (Palette, error) {
	if p, ok := lookup(ctx); ok {
		return p, nil
	}
	return Palette{}, lumerrors.NewContextMissingError("palette")
}

func lookup(ctx context.Context) (Palette, bool) {
	if ctx == nil {
		return Palette{}, false
	}
	p, ok := ctx.Value(contextKey{}).(Palette)
	return p, ok
}
