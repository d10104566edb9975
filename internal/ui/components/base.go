package components

import (
	"context"

	"github.com/alexisbeaulieu97/luminance/internal/provider"
	"github.com/alexisbeaulieu97/luminance/internal/style/tokens"
	"github.com/alexisbeaulieu97/luminance/internal/style/variant"
	"github.com/alexisbeaulieu97/luminance/internal/ui/render"
)

// Renderable is anything that renders to a string.
type Renderable interface {
	View() string
}

// ContextualRenderable is a component that can receive a render context.
type ContextualRenderable interface {
	Renderable
	ViewWithContext(ctx RenderContext) string
}

// RenderContext carries the renderer and resolver used for one render pass.
// Passing it explicitly keeps components free of global theme state.
type RenderContext struct {
	Renderer *render.Renderer
	Resolver *variant.Resolver
	Catalog  *variant.Catalog
}

// DefaultContext renders with the default palette in dark mode.
func DefaultContext() RenderContext {
	return RenderContext{
		Renderer: render.New(),
		Resolver: variant.NewResolver(),
		Catalog:  Catalog(),
	}
}

// ContextFrom builds a render context from the provider binding in ctx.
func ContextFrom(ctx context.Context, opts ...render.Option) (RenderContext, error) {
	b, err := provider.FromContext(ctx)
	if err != nil {
		return RenderContext{}, err
	}
	return RenderContext{
		Renderer: render.FromBinding(b, opts...),
		Resolver: variant.NewResolver(variant.WithLogger(b.Logger())),
		Catalog:  Catalog(),
	}, nil
}

// WithRenderer returns a copy using r.
func (c RenderContext) WithRenderer(r *render.Renderer) RenderContext {
	c.Renderer = r
	return c
}

// WithCatalog returns a copy whose specs are overlaid by catalog.
func (c RenderContext) WithCatalog(catalog *variant.Catalog) RenderContext {
	c.Catalog = c.catalog().Merge(catalog)
	return c
}

func (c RenderContext) normalized() RenderContext {
	if c.Renderer == nil {
		c.Renderer = render.New()
	}
	if c.Resolver == nil {
		c.Resolver = variant.NewResolver()
	}
	return c
}

func (c RenderContext) catalog() *variant.Catalog {
	if c.Catalog == nil {
		return Catalog()
	}
	return c.Catalog
}

// spec returns the catalog entry for name, falling back to the built-in one.
func (c RenderContext) spec(name string, fallback *variant.Spec) *variant.Spec {
	if spec, ok := c.catalog().Get(name); ok {
		return spec
	}
	return fallback
}

// BaseComponent holds the caller-supplied class and interaction state shared
// by every component. Embed it in component structs.
type BaseComponent struct {
	class    string
	disabled bool
	active   bool
	motion   bool
}

// Class returns the caller's extra tokens.
func (b *BaseComponent) Class() string {
	return b.class
}

// SetClass replaces the caller's extra tokens.
func (b *BaseComponent) SetClass(parts ...string) {
	b.class = tokens.Join(parts...)
}

// AddClass appends tokens to the caller's extra tokens.
func (b *BaseComponent) AddClass(parts ...string) {
	b.class = tokens.Join(append([]string{b.class}, parts...)...)
}

func (b *BaseComponent) IsDisabled() bool {
	return b.disabled
}

func (b *BaseComponent) IsActive() bool {
	return b.active
}

// MotionEnabled reports whether the component renders its animation data.
func (b *BaseComponent) MotionEnabled() bool {
	return b.motion
}

// states lists the interaction modifiers active for this component.
func (b *BaseComponent) states() []string {
	var states []string
	if b.disabled {
		states = append(states, "disabled")
	}
	if b.active {
		states = append(states, "hover", "focus-visible")
	}
	return states
}
