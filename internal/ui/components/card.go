package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/luminance/internal/style/tokens"
	"github.com/alexisbeaulieu97/luminance/internal/style/variant"
)

// CardVariant names an option of the card "variant" axis.
type CardVariant string

const (
	CardVariantDefault   CardVariant = "default"
	CardVariantPrimary   CardVariant = "primary"
	CardVariantSecondary CardVariant = "secondary"
	CardVariantAccent    CardVariant = "accent"
)

// Card groups content in a bordered frame with an optional header and footer.
type Card struct {
	BaseComponent
	variant     CardVariant
	title       string
	description string
	children    []Renderable
	footer      []Renderable
}

// NewCard creates a default card around children.
func NewCard(children ...Renderable) *Card {
	return &Card{children: children}
}

func (c *Card) View() string {
	return c.ViewWithContext(DefaultContext())
}

func (c *Card) ViewWithContext(ctx RenderContext) string {
	ctx = ctx.normalized()
	r := ctx.Renderer

	var sections []string
	if c.title != "" || c.description != "" {
		var header []string
		if c.title != "" {
			header = append(header, r.Render(cardTitleClass, c.title))
		}
		if c.description != "" {
			header = append(header, r.Render(cardDescriptionClass, c.description))
		}
		sections = append(sections, r.Render(cardHeaderClass, lipgloss.JoinVertical(lipgloss.Left, header...)))
	}
	if len(c.children) > 0 {
		sections = append(sections, r.Render(cardContentClass, renderAll(ctx, c.children)))
	}
	if len(c.footer) > 0 {
		sections = append(sections, r.Render(cardFooterClass, renderRow(ctx, c.footer)))
	}

	style := r.Style(c.ClassName(ctx), c.states()...)
	if c.motion {
		style = CardAnimation.apply(style, c.active)
	}
	return style.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

// ClassName resolves the card frame's class string.
func (c *Card) ClassName(ctx RenderContext) string {
	ctx = ctx.normalized()
	return ctx.Resolver.ResolveClassName(ctx.spec(CardName, CardSpec), c.Selection())
}

func (c *Card) Selection() variant.Selection {
	sel := variant.Selection{Options: map[string]string{}, Class: c.class}
	if c.variant != "" {
		sel.Options["variant"] = string(c.variant)
	}
	return sel
}

func (c *Card) WithVariant(v CardVariant) *Card {
	c.variant = v
	return c
}

// WithTitle sets the header title.
func (c *Card) WithTitle(title string) *Card {
	c.title = title
	return c
}

// WithDescription sets the muted line under the title.
func (c *Card) WithDescription(description string) *Card {
	c.description = description
	return c
}

// WithFooter sets the footer row, typically buttons.
func (c *Card) WithFooter(items ...Renderable) *Card {
	c.footer = items
	return c
}

func (c *Card) WithClass(class ...string) *Card {
	c.AddClass(class...)
	return c
}

func (c *Card) WithActive(active bool) *Card {
	c.active = active
	return c
}

func (c *Card) WithMotion(enabled bool) *Card {
	c.motion = enabled
	return c
}

// Add appends children to the card body.
func (c *Card) Add(children ...Renderable) *Card {
	c.children = append(c.children, children...)
	return c
}

func (c *Card) Children() []Renderable {
	return append([]Renderable(nil), c.children...)
}

// Text is a run of styled text.
type Text struct {
	content string
	class   string
}

// NewText creates text styled by class tokens.
func NewText(content string, class ...string) *Text {
	return &Text{content: content, class: tokens.Join(class...)}
}

func (t *Text) View() string {
	return t.ViewWithContext(DefaultContext())
}

func (t *Text) ViewWithContext(ctx RenderContext) string {
	ctx = ctx.normalized()
	return ctx.Renderer.Render(tokens.Merge(t.class), t.content)
}

func renderOne(ctx RenderContext, item Renderable) string {
	if cr, ok := item.(ContextualRenderable); ok {
		return cr.ViewWithContext(ctx)
	}
	return item.View()
}

func renderAll(ctx RenderContext, items []Renderable) string {
	views := make([]string, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		views = append(views, renderOne(ctx, item))
	}
	return lipgloss.JoinVertical(lipgloss.Left, views...)
}

func renderRow(ctx RenderContext, items []Renderable) string {
	views := make([]string, 0, 2*len(items))
	for i, item := range items {
		if item == nil {
			continue
		}
		if i > 0 {
			views = append(views, " ")
		}
		views = append(views, renderOne(ctx, item))
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, views...)
}
