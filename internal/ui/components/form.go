package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/luminance/internal/style/tokens"
)

const inputClass = "rounded-md border border-input bg-background px-3 text-foreground"

// FormGroup is a labelled field with optional helper and error text.
type FormGroup struct {
	Label       string
	Value       string
	Placeholder string
	Helper      string
	Error       string
}

func (g FormGroup) View() string {
	return g.ViewWithContext(DefaultContext())
}

func (g FormGroup) ViewWithContext(ctx RenderContext) string {
	ctx = ctx.normalized()
	r := ctx.Renderer

	lines := make([]string, 0, 4)
	if g.Label != "" {
		lines = append(lines, r.Render(formLabelClass, g.Label))
	}

	value, class := g.Value, inputClass
	if value == "" {
		value, class = g.Placeholder, inputClass+" text-muted-foreground"
	}
	if g.Error != "" {
		class += " border-destructive"
	}
	lines = append(lines, r.Render(formControlClass, r.Render(class, value)))

	if g.Helper != "" {
		lines = append(lines, r.Render(formHelperClass, g.Helper))
	}
	if g.Error != "" {
		lines = append(lines, r.Render(formErrorClass, g.Error))
	}
	return r.Render(formGroupClass, lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// FormSection groups fields under an optional title and description.
type FormSection struct {
	Title       string
	Description string
	Groups      []FormGroup
}

func (s FormSection) View() string {
	return s.ViewWithContext(DefaultContext())
}

func (s FormSection) ViewWithContext(ctx RenderContext) string {
	ctx = ctx.normalized()
	r := ctx.Renderer

	var blocks []string
	if s.Title != "" {
		blocks = append(blocks, r.Render(formSectionTitle, s.Title))
	}
	if s.Description != "" {
		blocks = append(blocks, r.Render(formSectionDetail, s.Description))
	}
	for _, g := range s.Groups {
		blocks = append(blocks, g.ViewWithContext(ctx))
	}
	return r.Render(formSectionClass, lipgloss.JoinVertical(lipgloss.Left, blocks...))
}

// Form lays out sections followed by a right-aligned actions row.
type Form struct {
	BaseComponent
	sections []FormSection
	actions  []Renderable
}

// NewForm creates a form from sections.
func NewForm(sections ...FormSection) *Form {
	return &Form{sections: sections}
}

func (f *Form) View() string {
	return f.ViewWithContext(DefaultContext())
}

func (f *Form) ViewWithContext(ctx RenderContext) string {
	ctx = ctx.normalized()
	r := ctx.Renderer

	blocks := make([]string, 0, 2*len(f.sections)+1)
	for i, s := range f.sections {
		if i > 0 {
			blocks = append(blocks, "")
		}
		blocks = append(blocks, s.ViewWithContext(ctx))
	}
	if len(f.actions) > 0 {
		blocks = append(blocks, r.Render(formActionsClass, renderRow(ctx, f.actions)))
	}

	style := r.Style(tokens.Merge(formClass, f.class), f.states()...)
	if f.motion {
		style = FormAnimation.apply(style, f.active)
	}
	return style.Render(lipgloss.JoinVertical(lipgloss.Left, blocks...))
}

// WithActions sets the actions row.
func (f *Form) WithActions(actions ...Renderable) *Form {
	f.actions = actions
	return f
}

func (f *Form) WithClass(class ...string) *Form {
	f.AddClass(class...)
	return f
}

// WithMotion enables the fade-in: the form renders faint until activated.
func (f *Form) WithMotion(enabled bool) *Form {
	f.motion = enabled
	return f
}

func (f *Form) WithActive(active bool) *Form {
	f.active = active
	return f
}

func (f *Form) Sections() []FormSection {
	return append([]FormSection(nil), f.sections...)
}
