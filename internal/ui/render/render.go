// Package render turns resolved utility-token strings into lipgloss styles.
//
// Colours come from the active palette and ramp registry; tokens prefixed with
// "dark:" apply only while the effective theme is dark. Utilities with no
// terminal equivalent (shadows, transitions, sizes) are ignored.
package render

import (
	"context"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/alexisbeaulieu97/luminance/internal/palette"
	"github.com/alexisbeaulieu97/luminance/internal/provider"
	"github.com/alexisbeaulieu97/luminance/internal/style/tokens"
	"github.com/alexisbeaulieu97/luminance/internal/theme"
)

// Renderer converts class strings to styles for one palette and theme.
type Renderer struct {
	lr        *lipgloss.Renderer
	ramps     *palette.Registry
	palette   palette.Palette
	effective theme.Effective
}

type config struct {
	output    io.Writer
	profile   *termenv.Profile
	ramps     *palette.Registry
	palette   palette.Palette
	effective theme.Effective
}

// Option configures a Renderer.
type Option func(*config)

// WithOutput sets the writer whose terminal capabilities are detected.
func WithOutput(w io.Writer) Option {
	return func(c *config) { c.output = w }
}

// WithProfile forces a colour profile instead of detecting one.
func WithProfile(p termenv.Profile) Option {
	return func(c *config) { c.profile = &p }
}

func WithPalette(p palette.Palette) Option {
	return func(c *config) { c.palette = p }
}

func WithRamps(r *palette.Registry) Option {
	return func(c *config) { c.ramps = r }
}

func WithEffective(e theme.Effective) Option {
	return func(c *config) { c.effective = e }
}

// New builds a renderer. Without options it renders the default palette in
// dark mode using the colour profile of stdout, honouring NO_COLOR.
func New(opts ...Option) *Renderer {
	cfg := config{
		output:    os.Stdout,
		ramps:     palette.Ramps(),
		palette:   palette.Default(),
		effective: theme.EffectiveDark,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	lr := lipgloss.NewRenderer(cfg.output)
	switch {
	case cfg.profile != nil:
		lr.SetColorProfile(*cfg.profile)
	case termenv.EnvNoColor():
		lr.SetColorProfile(termenv.Ascii)
	}
	lr.SetHasDarkBackground(cfg.effective.IsDark())

	return &Renderer{
		lr:        lr,
		ramps:     cfg.ramps,
		palette:   cfg.palette.Complete(),
		effective: cfg.effective,
	}
}

// FromBinding renders with the binding's palette and current effective theme.
func FromBinding(b *provider.Binding, opts ...Option) *Renderer {
	base := []Option{
		WithPalette(b.Palette()),
		WithRamps(b.Ramps()),
		WithEffective(b.Theme().Effective()),
	}
	return New(append(base, opts...)...)
}

// FromContext renders with the binding installed in ctx.
func FromContext(ctx context.Context, opts ...Option) (*Renderer, error) {
	b, err := provider.FromContext(ctx)
	if err != nil {
		return nil, err
	}
	return FromBinding(b, opts...), nil
}

func (r *Renderer) Effective() theme.Effective {
	return r.effective
}

func (r *Renderer) Palette() palette.Palette {
	return r.palette
}

// Lipgloss exposes the underlying lipgloss renderer.
func (r *Renderer) Lipgloss() *lipgloss.Renderer {
	return r.lr
}

// Style builds a style from class. Tokens with modifiers apply only when
// every modifier is active: "dark" while the theme is dark, plus the states
// passed in (for example "hover" or "disabled"). Plain tokens apply first,
// then modified tokens, then important tokens.
func (r *Renderer) Style(class string, states ...string) lipgloss.Style {
	active := make(map[string]bool, len(states)+1)
	if r.effective.IsDark() {
		active["dark"] = true
	}
	for _, s := range states {
		active[s] = true
	}

	var plain, modified, important []tokens.Utility
	for _, tok := range tokens.Split(class) {
		u := tokens.Parse(tok)
		if !allActive(u.Modifiers, active) {
			continue
		}
		switch {
		case u.Important:
			important = append(important, u)
		case len(u.Modifiers) > 0:
			modified = append(modified, u)
		default:
			plain = append(plain, u)
		}
	}

	b := newBuilder(r)
	for _, group := range [][]tokens.Utility{plain, modified, important} {
		for _, u := range group {
			b.apply(u)
		}
	}
	return b.build()
}

// Render styles content with class.
func (r *Renderer) Render(class, content string, states ...string) string {
	return r.Style(class, states...).Render(content)
}

func allActive(modifiers []string, active map[string]bool) bool {
	for _, m := range modifiers {
		if !active[m] {
			return false
		}
	}
	return true
}
