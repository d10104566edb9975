package provider

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/luminance/internal/palette"
	"github.com/alexisbeaulieu97/luminance/internal/theme"
	lumerrors "github.com/alexisbeaulieu97/luminance/pkg/errors"
)

func newRoot(t *testing.T, opts Options) *Binding {
	t.Helper()
	b, err := New(opts)
	require.NoError(t, err)
	t.Cleanup(b.Close)
	return b
}

func TestRootDefaults(t *testing.T) {
	b := newRoot(t, Options{})

	assert.Equal(t, theme.State{Preference: theme.PreferenceDark, Effective: theme.EffectiveDark}, b.Theme().State())
	assert.Equal(t, palette.Default(), b.Palette())
	assert.NotNil(t, b.Ramps())
}

func TestRootUsesStorageKey(t *testing.T) {
	storage := theme.NewMemoryStorage()
	require.NoError(t, storage.Save(context.Background(), "app-theme", "light"))

	b := newRoot(t, Options{Storage: storage, StorageKey: "app-theme"})
	assert.Equal(t, theme.PreferenceLight, b.Theme().Preference())
}

func TestRootRejectsInvalidDefault(t *testing.T) {
	_, err := New(Options{Default: "sepia"})
	assert.ErrorIs(t, err, lumerrors.ErrInvalidPreference)
}

func TestLookupOutsideBindingFails(t *testing.T) {
	ctx := context.Background()

	_, err := FromContext(ctx)
	var missing *lumerrors.ContextMissingError
	require.True(t, errors.As(err, &missing))

	_, err = ThemeFromContext(ctx)
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, "theme", missing.Resource)

	_, err = WithPalette(ctx, palette.Partial{Primary: "x"})
	assert.ErrorIs(t, err, lumerrors.ErrContextMissing)

	assert.Panics(t, func() { MustFromContext(ctx) })
}

func TestSubtreeRebindingSharesThemeButNotPalette(t *testing.T) {
	root := newRoot(t, Options{Palette: palette.Partial{Accent: "luminance-amber"}})
	ctx := NewContext(context.Background(), root)

	child, err := WithPalette(ctx, palette.Partial{Primary: "luminance-coral"})
	require.NoError(t, err)

	childBinding := MustFromContext(child)
	assert.Equal(t, "luminance-coral", childBinding.Palette().Primary)
	assert.Equal(t, "luminance-amber", childBinding.Palette().Accent)
	assert.Equal(t, "luminance-primary", MustFromContext(ctx).Palette().Primary)

	// palette.FromContext sees the same palette as the binding.
	assert.Equal(t, childBinding.Palette(), palette.FromContext(child))

	// Theme changes made through the child are visible at the root.
	require.NoError(t, childBinding.Theme().SetPreference(theme.PreferenceLight))
	assert.Equal(t, theme.EffectiveLight, root.Theme().Effective())
	assert.Same(t, root.Theme(), childBinding.Theme())
}

func TestSubscribersAcrossSubtrees(t *testing.T) {
	root := newRoot(t, Options{Signal: theme.NewManualSignal(theme.EffectiveLight)})
	ctx := NewContext(context.Background(), root)
	child, err := WithPalette(ctx, palette.Partial{Muted: "luminance-mint"})
	require.NoError(t, err)

	var seen []theme.Effective
	store, err := ThemeFromContext(child)
	require.NoError(t, err)
	store.Subscribe(func(s theme.State) { seen = append(seen, s.Effective) })

	require.NoError(t, root.Theme().SetPreference(theme.PreferenceSystem))
	assert.Equal(t, []theme.Effective{theme.EffectiveLight}, seen)
}

func TestNestedPaletteBindingsUseNearest(t *testing.T) {
	root := newRoot(t, Options{})
	ctx := NewContext(context.Background(), root)

	sub := palette.BindContext(ctx, palette.Partial{Primary: "luminance-coral"})
	assert.Equal(t, "luminance-coral", MustFromContext(sub).Palette().Primary)

	inner, err := WithPalette(sub, palette.Partial{Accent: "luminance-amber"})
	require.NoError(t, err)
	b := MustFromContext(inner)
	assert.Equal(t, "luminance-coral", b.Palette().Primary)
	assert.Equal(t, "luminance-amber", b.Palette().Accent)
	assert.Equal(t, b.Palette(), palette.FromContext(inner))

	again := palette.BindContext(inner, palette.Partial{Muted: "luminance-mint"})
	assert.Equal(t, palette.Palette{
		Primary:   "luminance-coral",
		Secondary: "luminance-teal",
		Accent:    "luminance-amber",
		Muted:     "luminance-mint",
	}, MustFromContext(again).Palette())

	// Outer scopes are untouched.
	assert.Equal(t, palette.Default(), MustFromContext(ctx).Palette())
	assert.Equal(t, "luminance-purple", MustFromContext(sub).Palette().Accent)
	assert.Same(t, root.Theme(), MustFromContext(again).Theme())
}
