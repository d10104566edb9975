package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/luminance/internal/theme"
)

var preferenceCycle = []theme.Preference{theme.PreferenceLight, theme.PreferenceDark, theme.PreferenceSystem}

// Update handles Bubbletea messages and updates model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil
	case ThemeChangedMsg:
		m.state = msg.State
		return m, nil
	case ErrorMsg:
		m.err = msg.Err
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Theme):
		return m, m.setPreference(nextPreference(m.state.Preference))
	case key.Matches(msg, m.keys.Refresh):
		if m.refresh == nil {
			return m, nil
		}
		refresh, store := m.refresh, m.binding.Theme()
		return m, func() tea.Msg {
			refresh()
			return ThemeChangedMsg{State: store.State()}
		}
	case key.Matches(msg, m.keys.Variant):
		m.button = (m.button + 1) % len(m.buttons)
	case key.Matches(msg, m.keys.Size):
		m.size = (m.size + 1) % len(m.sizes)
	case key.Matches(msg, m.keys.Badge):
		m.badge = (m.badge + 1) % len(m.badges)
	case key.Matches(msg, m.keys.Motion):
		m.motion = !m.motion
	case key.Matches(msg, m.keys.Active):
		m.active = !m.active
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, nil
}

// setPreference runs off the event loop: the store notifies subscribers
// synchronously and a forwarding subscriber blocks on Program.Send.
func (m Model) setPreference(p theme.Preference) tea.Cmd {
	store := m.binding.Theme()
	return func() tea.Msg {
		if err := store.SetPreference(p); err != nil {
			return ErrorMsg{Err: err}
		}
		return ThemeChangedMsg{State: store.State()}
	}
}

func nextPreference(current theme.Preference) theme.Preference {
	for i, p := range preferenceCycle {
		if p == current {
			return preferenceCycle[(i+1)%len(preferenceCycle)]
		}
	}
	return preferenceCycle[0]
}
