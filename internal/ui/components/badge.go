package components

import (
	"github.com/alexisbeaulieu97/luminance/internal/style/variant"
)

// BadgeVariant names an option of the badge "variant" axis.
type BadgeVariant string

const (
	BadgeVariantDefault         BadgeVariant = "default"
	BadgeVariantPrimary         BadgeVariant = "primary"
	BadgeVariantSecondary       BadgeVariant = "secondary"
	BadgeVariantAccent          BadgeVariant = "accent"
	BadgeVariantOutline         BadgeVariant = "outline"
	BadgeVariantSubtlePrimary   BadgeVariant = "subtlePrimary"
	BadgeVariantSubtleSecondary BadgeVariant = "subtleSecondary"
	BadgeVariantSubtleAccent    BadgeVariant = "subtleAccent"
	BadgeVariantDestructive     BadgeVariant = "destructive"
)

// BadgeSize names an option of the badge "size" axis.
type BadgeSize string

const (
	BadgeSizeDefault BadgeSize = "default"
	BadgeSizeSM      BadgeSize = "sm"
	BadgeSizeLG      BadgeSize = "lg"
)

// Badge is a small status indicator.
type Badge struct {
	BaseComponent
	text    string
	variant BadgeVariant
	size    BadgeSize
}

// NewBadge creates a default badge.
func NewBadge(text string) *Badge {
	return &Badge{text: text}
}

func (b *Badge) View() string {
	return b.ViewWithContext(DefaultContext())
}

func (b *Badge) ViewWithContext(ctx RenderContext) string {
	ctx = ctx.normalized()
	style := ctx.Renderer.Style(b.ClassName(ctx), b.states()...)
	if b.motion {
		style = BadgeAnimation.apply(style, b.active)
	}
	return style.Render(b.text)
}

// ClassName resolves the badge's class string.
func (b *Badge) ClassName(ctx RenderContext) string {
	ctx = ctx.normalized()
	return ctx.Resolver.ResolveClassName(ctx.spec(BadgeName, BadgeSpec), b.Selection())
}

func (b *Badge) Selection() variant.Selection {
	sel := variant.Selection{Options: map[string]string{}, Class: b.class}
	if b.variant != "" {
		sel.Options["variant"] = string(b.variant)
	}
	if b.size != "" {
		sel.Options["size"] = string(b.size)
	}
	return sel
}

func (b *Badge) WithVariant(v BadgeVariant) *Badge {
	b.variant = v
	return b
}

func (b *Badge) WithSize(s BadgeSize) *Badge {
	b.size = s
	return b
}

func (b *Badge) WithClass(class ...string) *Badge {
	b.AddClass(class...)
	return b
}

func (b *Badge) WithActive(active bool) *Badge {
	b.active = active
	return b
}

func (b *Badge) WithMotion(enabled bool) *Badge {
	b.motion = enabled
	return b
}

func (b *Badge) Text() string {
	return b.text
}

func (b *Badge) SetText(text string) *Badge {
	b.text = text
	return b
}

// PrimaryBadge creates a primary badge.
func PrimaryBadge(text string) *Badge {
	return NewBadge(text).WithVariant(BadgeVariantPrimary)
}

// SecondaryBadge creates a secondary badge.
func SecondaryBadge(text string) *Badge {
	return NewBadge(text).WithVariant(BadgeVariantSecondary)
}

// AccentBadge creates an accent badge.
func AccentBadge(text string) *Badge {
	return NewBadge(text).WithVariant(BadgeVariantAccent)
}

// DestructiveBadge creates a destructive badge.
func DestructiveBadge(text string) *Badge {
	return NewBadge(text).WithVariant(BadgeVariantDestructive)
}
