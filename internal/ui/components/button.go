package components

import (
	"strings"

	"github.com/alexisbeaulieu97/luminance/internal/style/variant"
)

// ButtonVariant names an option of the button "variant" axis.
type ButtonVariant string

const (
	ButtonVariantDefault     ButtonVariant = "default"
	ButtonVariantPrimary     ButtonVariant = "primary"
	ButtonVariantSecondary   ButtonVariant = "secondary"
	ButtonVariantAccent      ButtonVariant = "accent"
	ButtonVariantDestructive ButtonVariant = "destructive"
	ButtonVariantOutline     ButtonVariant = "outline"
	ButtonVariantSubtle      ButtonVariant = "subtle"
	ButtonVariantGhost       ButtonVariant = "ghost"
	ButtonVariantLink        ButtonVariant = "link"
)

// ButtonSize names an option of the button "size" axis.
type ButtonSize string

const (
	ButtonSizeDefault ButtonSize = "default"
	ButtonSizeXS      ButtonSize = "xs"
	ButtonSizeSM      ButtonSize = "sm"
	ButtonSizeLG      ButtonSize = "lg"
	ButtonSizeIcon    ButtonSize = "icon"
)

// Button is a labelled action. Rendering is visual only.
type Button struct {
	BaseComponent
	label     string
	variant   ButtonVariant
	size      ButtonSize
	leftIcon  string
	rightIcon string
}

// NewButton creates a default button with the given label.
func NewButton(label string) *Button {
	return &Button{label: label}
}

// View renders the button with the default context.
func (b *Button) View() string {
	return b.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the button with the given context.
func (b *Button) ViewWithContext(ctx RenderContext) string {
	ctx = ctx.normalized()
	style := ctx.Renderer.Style(b.ClassName(ctx), b.states()...)
	if b.motion {
		style = ButtonAnimation.apply(style, b.active && !b.disabled)
	}
	return style.Render(b.content())
}

// ClassName resolves the button's class string.
func (b *Button) ClassName(ctx RenderContext) string {
	ctx = ctx.normalized()
	return ctx.Resolver.ResolveClassName(ctx.spec(ButtonName, ButtonSpec), b.Selection())
}

// Selection reports the variant options and caller class for the button.
func (b *Button) Selection() variant.Selection {
	sel := variant.Selection{Options: map[string]string{}, Class: b.class}
	if b.variant != "" {
		sel.Options["variant"] = string(b.variant)
	}
	if b.size != "" {
		sel.Options["size"] = string(b.size)
	}
	return sel
}

func (b *Button) content() string {
	parts := make([]string, 0, 3)
	if b.leftIcon != "" {
		parts = append(parts, b.leftIcon)
	}
	if b.label != "" {
		parts = append(parts, b.label)
	}
	if b.rightIcon != "" {
		parts = append(parts, b.rightIcon)
	}
	return strings.Join(parts, " ")
}

func (b *Button) WithVariant(v ButtonVariant) *Button {
	b.variant = v
	return b
}

func (b *Button) WithSize(s ButtonSize) *Button {
	b.size = s
	return b
}

// WithClass appends caller tokens; they override the variant tokens.
func (b *Button) WithClass(class ...string) *Button {
	b.AddClass(class...)
	return b
}

// WithIcons sets glyphs rendered before and after the label.
func (b *Button) WithIcons(left, right string) *Button {
	b.leftIcon, b.rightIcon = left, right
	return b
}

func (b *Button) WithDisabled(disabled bool) *Button {
	b.disabled = disabled
	return b
}

// WithActive marks the button hovered/focused.
func (b *Button) WithActive(active bool) *Button {
	b.active = active
	return b
}

// WithMotion enables the hover/tap animation.
func (b *Button) WithMotion(enabled bool) *Button {
	b.motion = enabled
	return b
}

func (b *Button) Label() string {
	return b.label
}

func (b *Button) SetLabel(label string) *Button {
	b.label = label
	return b
}

// PrimaryButton creates a primary button.
func PrimaryButton(label string) *Button {
	return NewButton(label).WithVariant(ButtonVariantPrimary)
}

// SecondaryButton creates a secondary button.
func SecondaryButton(label string) *Button {
	return NewButton(label).WithVariant(ButtonVariantSecondary)
}

// AccentButton creates an accent button.
func AccentButton(label string) *Button {
	return NewButton(label).WithVariant(ButtonVariantAccent)
}

// DestructiveButton creates a destructive button.
func DestructiveButton(label string) *Button {
	return NewButton(label).WithVariant(ButtonVariantDestructive)
}

// OutlineButton creates an outlined button.
func OutlineButton(label string) *Button {
	return NewButton(label).WithVariant(ButtonVariantOutline)
}

// GhostButton creates a ghost button.
func GhostButton(label string) *Button {
	return NewButton(label).WithVariant(ButtonVariantGhost)
}

// LinkButton creates a link-styled button.
func LinkButton(label string) *Button {
	return NewButton(label).WithVariant(ButtonVariantLink)
}
