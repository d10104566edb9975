package render

import (
	"context"
	"io"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/luminance/internal/palette"
	"github.com/alexisbeaulieu97/luminance/internal/provider"
	"github.com/alexisbeaulieu97/luminance/internal/theme"
	lumerrors "github.com/alexisbeaulieu97/luminance/pkg/errors"
)

func newRenderer(opts ...Option) *Renderer {
	base := []Option{WithOutput(io.Discard), WithProfile(termenv.TrueColor)}
	return New(append(base, opts...)...)
}

func TestStyleColors(t *testing.T) {
	r := newRenderer()

	tests := []struct {
		name  string
		class string
		bg    lipgloss.TerminalColor
		fg    lipgloss.TerminalColor
	}{
		{
			name:  "ramp shades",
			class: "bg-luminance-primary-500 text-luminance-neutral-50",
			bg:    lipgloss.Color("#0073F5"),
			fg:    lipgloss.Color("#F5F7FA"),
		},
		{
			name:  "semantic roles follow the palette",
			class: "bg-primary text-primary-foreground",
			bg:    lipgloss.AdaptiveColor{Light: "#0073F5", Dark: "#0073F5"},
			fg:    lipgloss.Color("#FFFFFF"),
		},
		{
			name:  "opacity suffix ignored",
			class: "bg-secondary/80",
			bg:    lipgloss.AdaptiveColor{Light: "#00D7C0", Dark: "#00D7C0"},
			fg:    lipgloss.NoColor{},
		},
		{
			name:  "arbitrary hex",
			class: "bg-[#123456] text-sm",
			bg:    lipgloss.Color("#123456"),
			fg:    lipgloss.NoColor{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			style := r.Style(tt.class)
			assert.Equal(t, tt.bg, style.GetBackground())
			assert.Equal(t, tt.fg, style.GetForeground())
		})
	}
}

func TestStyleUsesBoundPalette(t *testing.T) {
	r := newRenderer(WithPalette(palette.Bind(palette.Partial{Primary: "luminance-coral"}, palette.Default())))
	assert.Equal(t, lipgloss.AdaptiveColor{Light: "#FF4600", Dark: "#FF4600"}, r.Style("bg-primary").GetBackground())
}

func TestDarkTokensFollowEffectiveTheme(t *testing.T) {
	class := "bg-white dark:bg-luminance-neutral-900"

	light := newRenderer(WithEffective(theme.EffectiveLight))
	dark := newRenderer(WithEffective(theme.EffectiveDark))

	assert.Equal(t, lipgloss.Color("#FFFFFF"), light.Style(class).GetBackground())
	assert.Equal(t, lipgloss.Color("#1E2226"), dark.Style(class).GetBackground())

	// Modifier order does not matter; dark tokens win over plain tokens.
	assert.Equal(t, lipgloss.Color("#1E2226"), dark.Style("dark:bg-luminance-neutral-900 bg-white").GetBackground())
}

func TestStateModifiers(t *testing.T) {
	r := newRenderer()
	class := "underline hover:bold font-normal hover:font-bold disabled:opacity-50"

	assert.False(t, r.Style(class).GetBold())
	assert.True(t, r.Style(class, "hover").GetBold())
	assert.False(t, r.Style(class).GetFaint())
	assert.True(t, r.Style(class, "disabled").GetFaint())
	assert.True(t, r.Style(class).GetUnderline())
}

func TestImportantWins(t *testing.T) {
	r := newRenderer(WithEffective(theme.EffectiveDark))
	style := r.Style("!bg-black dark:bg-white")
	assert.Equal(t, lipgloss.Color("#000000"), style.GetBackground())
}

func TestSpacing(t *testing.T) {
	r := newRenderer()

	style := r.Style("px-4 py-4 mt-8 ml-2")
	assert.Equal(t, 2, style.GetPaddingLeft())
	assert.Equal(t, 2, style.GetPaddingRight())
	assert.Equal(t, 1, style.GetPaddingTop())
	assert.Equal(t, 2, style.GetMarginTop())
	assert.Equal(t, 1, style.GetMarginLeft())

	style = r.Style("p-8 pl-2")
	assert.Equal(t, 4, style.GetPaddingRight())
	assert.Equal(t, 1, style.GetPaddingLeft())
	assert.Equal(t, 2, style.GetPaddingBottom())

	assert.Equal(t, 0, r.Style("-ml-4").GetMarginLeft())
}

func TestBorders(t *testing.T) {
	r := newRenderer()

	tests := []struct {
		name   string
		class  string
		border lipgloss.Border
		top    bool
		left   bool
	}{
		{name: "rounded", class: "rounded-lg border", border: lipgloss.RoundedBorder(), top: true, left: true},
		{name: "thick wins over rounded", class: "rounded-md border-2", border: lipgloss.ThickBorder(), top: true, left: true},
		{name: "dashed", class: "border border-dashed", border: dashedBorder, top: true, left: true},
		{name: "single side", class: "border-b", border: lipgloss.NormalBorder(), top: false, left: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			style := r.Style(tt.class)
			assert.Equal(t, tt.border, style.GetBorderStyle())
			assert.Equal(t, tt.top, style.GetBorderTop())
			assert.Equal(t, tt.left, style.GetBorderLeft())
		})
	}

	assert.False(t, r.Style("rounded-md").GetBorderTop())
	assert.Equal(t, lipgloss.Color("#004593"),
		r.Style("border border-luminance-primary-700").GetBorderTopForeground())
}

func TestAsciiProfileDropsColour(t *testing.T) {
	r := New(WithOutput(io.Discard), WithProfile(termenv.Ascii))
	assert.Equal(t, "Save", r.Render("bg-primary text-white", "Save"))
	assert.Equal(t, "SAVE", r.Render("uppercase", "save"))
}

func TestFromContext(t *testing.T) {
	_, err := FromContext(context.Background())
	assert.ErrorIs(t, err, lumerrors.ErrContextMissing)

	b, err := provider.New(provider.Options{Default: theme.PreferenceLight})
	require.NoError(t, err)
	t.Cleanup(b.Close)

	ctx, err := provider.WithPalette(provider.NewContext(context.Background(), b), palette.Partial{Accent: "luminance-mint"})
	require.NoError(t, err)

	r, err := FromContext(ctx, WithOutput(io.Discard))
	require.NoError(t, err)
	assert.Equal(t, theme.EffectiveLight, r.Effective())
	assert.Equal(t, "luminance-mint", r.Palette().Accent)
}

func TestFromContextSeesPaletteBoundContext(t *testing.T) {
	b, err := provider.New(provider.Options{})
	require.NoError(t, err)
	t.Cleanup(b.Close)

	sub := palette.BindContext(provider.NewContext(context.Background(), b), palette.Partial{Primary: "luminance-coral"})
	r, err := FromContext(sub, WithOutput(io.Discard))
	require.NoError(t, err)
	assert.Equal(t, "luminance-coral", r.Palette().Primary)

	inner, err := provider.WithPalette(sub, palette.Partial{Accent: "luminance-mint"})
	require.NoError(t, err)
	r, err = FromContext(inner, WithOutput(io.Discard))
	require.NoError(t, err)
	assert.Equal(t, "luminance-coral", r.Palette().Primary)
	assert.Equal(t, "luminance-mint", r.Palette().Accent)
}
