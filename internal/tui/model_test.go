package tui

import (
	"io"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/luminance/internal/provider"
	"github.com/alexisbeaulieu97/luminance/internal/style/variant"
	"github.com/alexisbeaulieu97/luminance/internal/theme"
	"github.com/alexisbeaulieu97/luminance/internal/ui/components"
	"github.com/alexisbeaulieu97/luminance/internal/ui/render"
)

func newTestModel(t *testing.T, opts Options) (Model, *provider.Binding) {
	t.Helper()
	b, err := provider.New(provider.Options{Storage: theme.NewMemoryStorage()})
	require.NoError(t, err)
	t.Cleanup(b.Close)

	opts.Render = append(opts.Render, render.WithOutput(io.Discard), render.WithProfile(termenv.Ascii))
	return NewModel(b, opts), b
}

func press(t *testing.T, m Model, keys string) (Model, tea.Cmd) {
	t.Helper()
	var msg tea.KeyMsg
	switch keys {
	case " ":
		msg = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(keys)}
	}
	updated, cmd := m.Update(msg)
	return updated.(Model), cmd
}

func TestNewModelStartsAtDefaults(t *testing.T) {
	m, _ := newTestModel(t, Options{})

	assert.Equal(t, theme.PreferenceDark, m.State().Preference)
	assert.Equal(t, components.ButtonVariantDefault, m.ButtonVariant())
	assert.Equal(t, components.ButtonSizeDefault, m.ButtonSize())
	assert.Equal(t, components.BadgeVariantDefault, m.BadgeVariant())
	assert.Nil(t, m.Init())
}

func TestUpdateCyclesVariants(t *testing.T) {
	m, _ := newTestModel(t, Options{})

	m, _ = press(t, m, "v")
	assert.Equal(t, components.ButtonVariantPrimary, m.ButtonVariant())
	m, _ = press(t, m, "s")
	assert.Equal(t, components.ButtonSizeXS, m.ButtonSize())
	m, _ = press(t, m, "b")
	assert.Equal(t, components.BadgeVariantPrimary, m.BadgeVariant())

	for i := 0; i < len(components.ButtonSpec.Options("variant"))-1; i++ {
		m, _ = press(t, m, "v")
	}
	assert.Equal(t, components.ButtonVariantDefault, m.ButtonVariant())
}

func TestUpdateThemeKeySetsPreference(t *testing.T) {
	m, b := newTestModel(t, Options{})

	m, cmd := press(t, m, "t")
	require.NotNil(t, cmd)
	msg := cmd()

	changed, ok := msg.(ThemeChangedMsg)
	require.True(t, ok)
	assert.Equal(t, theme.PreferenceSystem, changed.State.Preference)
	assert.Equal(t, theme.PreferenceSystem, b.Theme().Preference())

	updated, _ := m.Update(msg)
	m = updated.(Model)
	assert.Equal(t, theme.PreferenceSystem, m.State().Preference)

	m, cmd = press(t, m, "t")
	updated, _ = m.Update(cmd())
	assert.Equal(t, theme.PreferenceLight, updated.(Model).State().Preference)
}

func TestForwardDeliversStoreChanges(t *testing.T) {
	_, b := newTestModel(t, Options{})

	var got []tea.Msg
	stop := Forward(b.Theme(), func(msg tea.Msg) { got = append(got, msg) })
	require.NoError(t, b.Theme().SetPreference(theme.PreferenceLight))
	stop()
	require.NoError(t, b.Theme().SetPreference(theme.PreferenceDark))

	require.Len(t, got, 1)
	assert.Equal(t, theme.EffectiveLight, got[0].(ThemeChangedMsg).State.Effective)
}

func TestUpdateRefreshKey(t *testing.T) {
	m, _ := newTestModel(t, Options{})
	_, cmd := press(t, m, "r")
	assert.Nil(t, cmd)

	calls := 0
	m, _ = newTestModel(t, Options{Refresh: func() { calls++ }})
	_, cmd = press(t, m, "r")
	require.NotNil(t, cmd)
	_, ok := cmd().(ThemeChangedMsg)
	assert.True(t, ok)
	assert.Equal(t, 1, calls)
}

func TestUpdateQuitAndErrors(t *testing.T) {
	m, _ := newTestModel(t, Options{})

	updated, _ := m.Update(ErrorMsg{Err: assert.AnError})
	m = updated.(Model)
	assert.Equal(t, assert.AnError, m.Err())
	assert.Contains(t, m.View(), assert.AnError.Error())

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	m = updated.(Model)
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.True(t, m.Quitting())
	assert.Empty(t, m.View())
}

func TestViewShowsComponentsAndHelp(t *testing.T) {
	m, _ := newTestModel(t, Options{})
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m = updated.(Model)

	out := m.View()
	for _, want := range []string{"Luminance", "dark", "preference: dark", "Components", "Continue", "Cancel", "button default / default", "cycle theme"} {
		assert.Contains(t, out, want)
	}

	m, _ = press(t, m, "?")
	assert.Contains(t, m.View(), "re-detect terminal")

	m, _ = press(t, m, "m")
	m, _ = press(t, m, " ")
	assert.Contains(t, m.View(), "motion on")
}

func TestCustomCatalogDrivesOptions(t *testing.T) {
	custom := variant.NewCatalog(variant.MustNew(variant.Definition{
		Name: components.ButtonName,
		Base: "px-2",
		Axes: []variant.AxisDefinition{{
			Name:    "variant",
			Options: []variant.OptionDefinition{{Name: "solid", Tokens: "bg-primary"}, {Name: "soft", Tokens: "bg-muted"}},
		}},
		Defaults: map[string]string{"variant": "solid"},
	}))

	m, _ := newTestModel(t, Options{Catalog: custom})
	assert.Equal(t, components.ButtonVariant("solid"), m.ButtonVariant())
	assert.Equal(t, components.ButtonSize(""), m.ButtonSize())
	m, _ = press(t, m, "v")
	assert.Equal(t, components.ButtonVariant("soft"), m.ButtonVariant())
}
