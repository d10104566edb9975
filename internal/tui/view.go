package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/luminance/internal/ui/components"
)

const (
	titleClass  = "font-bold text-primary"
	statusClass = "text-muted-foreground"
	errorClass  = "text-destructive"
)

// View renders the current state of the model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	ctx := m.renderContext()
	r := ctx.Renderer

	header := lipgloss.JoinHorizontal(lipgloss.Center,
		r.Render(titleClass, "Luminance"),
		" ",
		components.NewBadge(string(m.state.Effective)).
			WithVariant(components.BadgeVariantSubtlePrimary).
			ViewWithContext(ctx),
		" ",
		r.Render(statusClass, fmt.Sprintf("preference: %s", m.state.Preference)),
	)

	button := components.NewButton("Continue").
		WithVariant(m.ButtonVariant()).
		WithSize(m.ButtonSize()).
		WithMotion(m.motion).
		WithActive(m.active)
	badge := components.NewBadge(string(m.BadgeVariant())).
		WithVariant(m.BadgeVariant()).
		WithMotion(m.motion).
		WithActive(m.active)

	card := components.NewCard(
		components.NewText(fmt.Sprintf("button %s / %s", m.ButtonVariant(), m.ButtonSize()), statusClass),
		badge,
	).
		WithTitle("Components").
		WithDescription(fmt.Sprintf("motion %s", onOff(m.motion))).
		WithFooter(button, components.GhostButton("Cancel")).
		WithMotion(m.motion).
		WithActive(m.active)

	sections := []string{header, "", card.ViewWithContext(ctx)}
	if m.err != nil {
		sections = append(sections, r.Render(errorClass, m.err.Error()))
	}
	sections = append(sections, "", m.help.View(m.keys))

	view := lipgloss.JoinVertical(lipgloss.Left, sections...)
	if m.width > 0 {
		view = lipgloss.NewStyle().MaxWidth(m.width).Render(view)
	}
	return view
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}
