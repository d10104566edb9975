// Package components provides terminal renditions of the luminance components.
//
// # Overview
//
// Each component type owns a variant.Spec (ButtonSpec, BadgeSpec, CardSpec)
// shared read-only by every instance. Rendering asks the resolver for a class
// string and hands it to a render.Renderer, which maps the tokens onto a
// lipgloss style for the active palette and theme.
//
// # Context-Based Rendering
//
// Components implement both View() and ViewWithContext():
//
//	// Default palette, dark theme
//	output := components.PrimaryButton("Save").View()
//
//	// Palette and theme from the provider binding in ctx
//	rc, err := components.ContextFrom(ctx)
//	output := components.NewBadge("beta").
//		WithVariant(components.BadgeVariantSubtleAccent).
//		ViewWithContext(rc)
//
// # Overrides
//
// Caller tokens passed through WithClass are merged last, so they win over
// the variant tokens of the same group:
//
//	components.NewButton("Wide").WithClass("px-8 bg-luminance-mint-500")
//
// # Motion
//
// WithMotion(true) makes a component consume its Animation data: buttons and
// badges grow while active, cards lift, forms fade in.
package components
