// Package tui is the interactive component showcase: it renders the built-in
// components against a provider binding and reacts to theme changes.
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/luminance/internal/provider"
	"github.com/alexisbeaulieu97/luminance/internal/style/variant"
	"github.com/alexisbeaulieu97/luminance/internal/theme"
	"github.com/alexisbeaulieu97/luminance/internal/ui/components"
	"github.com/alexisbeaulieu97/luminance/internal/ui/render"
)

// ThemeChangedMsg carries a theme store notification into the program.
type ThemeChangedMsg struct {
	State theme.State
}

// ErrorMsg reports a failed background command.
type ErrorMsg struct {
	Err error
}

// Options configures the showcase model.
type Options struct {
	// Catalog overlays the built-in component specs.
	Catalog *variant.Catalog
	// Render is passed to every renderer the model builds.
	Render []render.Option
	// Refresh re-detects the terminal background. Nil disables the key.
	Refresh func()
}

// Model contains the Bubbletea state for the component showcase.
type Model struct {
	binding  *provider.Binding
	catalog  *variant.Catalog
	render   []render.Option
	refresh  func()
	keys     keyMap
	help     help.Model
	state    theme.State
	buttons  []string
	sizes    []string
	badges   []string
	button   int
	size     int
	badge    int
	motion   bool
	active   bool
	width    int
	err      error
	quitting bool
}

// NewModel constructs a showcase bound to b.
func NewModel(b *provider.Binding, opts Options) Model {
	catalog := components.Catalog().Merge(opts.Catalog)

	return Model{
		binding: b,
		catalog: catalog,
		render:  opts.Render,
		refresh: opts.Refresh,
		keys:    defaultKeyMap(),
		help:    help.New(),
		state:   b.Theme().State(),
		buttons: axisOptions(catalog, components.ButtonName, components.ButtonSpec, "variant"),
		sizes:   axisOptions(catalog, components.ButtonName, components.ButtonSpec, "size"),
		badges:  axisOptions(catalog, components.BadgeName, components.BadgeSpec, "variant"),
	}
}

// Init starts the Bubbletea program.
func (m Model) Init() tea.Cmd {
	return nil
}

// State returns the last theme state the model observed.
func (m Model) State() theme.State {
	return m.state
}

// ButtonVariant returns the selected button variant.
func (m Model) ButtonVariant() components.ButtonVariant {
	return components.ButtonVariant(pick(m.buttons, m.button))
}

// ButtonSize returns the selected button size.
func (m Model) ButtonSize() components.ButtonSize {
	return components.ButtonSize(pick(m.sizes, m.size))
}

// BadgeVariant returns the selected badge variant.
func (m Model) BadgeVariant() components.BadgeVariant {
	return components.BadgeVariant(pick(m.badges, m.badge))
}

// Err returns the last background error, if any.
func (m Model) Err() error {
	return m.err
}

// Quitting reports whether the user asked to leave.
func (m Model) Quitting() bool {
	return m.quitting
}

// Forward subscribes to store and hands every change to send, typically
// (*tea.Program).Send. The returned function stops forwarding.
func Forward(store *theme.Store, send func(tea.Msg)) func() {
	return store.Subscribe(func(state theme.State) {
		send(ThemeChangedMsg{State: state})
	})
}

func (m Model) renderContext() components.RenderContext {
	return components.RenderContext{
		Renderer: render.FromBinding(m.binding, m.render...),
		Resolver: variant.NewResolver(variant.WithLogger(m.binding.Logger())),
		Catalog:  m.catalog,
	}
}

func axisOptions(catalog *variant.Catalog, name string, fallback *variant.Spec, axis string) []string {
	spec, ok := catalog.Get(name)
	if !ok {
		spec = fallback
	}
	options := spec.Options(axis)
	if len(options) == 0 {
		return []string{""}
	}
	return options
}

func pick(options []string, i int) string {
	if len(options) == 0 {
		return ""
	}
	return options[i%len(options)]
}
