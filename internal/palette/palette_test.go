package palette

import (
	"context"
	"errors"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	lumerrors "github.com/alexisbeaulieu97/luminance/pkg/errors"
)

func TestDefault(t *testing.T) {
	assert.Equal(t, Palette{
		Primary:   "luminance-primary",
		Secondary: "luminance-teal",
		Accent:    "luminance-purple",
		Muted:     "luminance-neutral",
	}, Default())
}

func TestBindInheritsUnsetSlots(t *testing.T) {
	t.Parallel()

	parent := Bind(Partial{Accent: "luminance-amber"}, Default())

	tests := []struct {
		name    string
		partial Partial
		want    Palette
	}{
		{
			name:    "empty partial",
			partial: Partial{},
			want:    parent,
		},
		{
			name:    "primary only",
			partial: Partial{Primary: "luminance-coral"},
			want: Palette{
				Primary:   "luminance-coral",
				Secondary: "luminance-teal",
				Accent:    "luminance-amber",
				Muted:     "luminance-neutral",
			},
		},
		{
			name:    "every slot",
			partial: Partial{Primary: "a", Secondary: "b", Accent: "c", Muted: "d"},
			want:    Palette{Primary: "a", Secondary: "b", Accent: "c", Muted: "d"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Bind(tt.partial, parent))
		})
	}

	assert.Equal(t, "luminance-amber", parent.Accent)
	assert.Equal(t, "luminance-primary", parent.Primary)
}

func TestComplete(t *testing.T) {
	p := Palette{Muted: "luminance-mint"}.Complete()
	assert.Equal(t, "luminance-primary", p.Primary)
	assert.Equal(t, "luminance-mint", p.Muted)
}

func TestSlot(t *testing.T) {
	p := Default()
	got := make([]string, 0, 4)
	for _, s := range Slots() {
		got = append(got, p.Slot(s))
	}
	assert.Equal(t, []string{"luminance-primary", "luminance-teal", "luminance-purple", "luminance-neutral"}, got)
	assert.Empty(t, p.Slot("unknown"))
}

func TestContextBinding(t *testing.T) {
	root := context.Background()
	assert.Equal(t, Default(), FromContext(root))

	_, err := Lookup(root)
	require.Error(t, err)
	assert.True(t, errors.Is(err, lumerrors.ErrContextMissing))

	outer := NewContext(root, Bind(Partial{Primary: "luminance-coral"}, Default()))
	inner := BindContext(outer, Partial{Muted: "luminance-mint"})

	p, err := Lookup(inner)
	require.NoError(t, err)
	assert.Equal(t, "luminance-coral", p.Primary)
	assert.Equal(t, "luminance-mint", p.Muted)

	// The outer binding is not affected by the inner one.
	assert.Equal(t, "luminance-neutral", FromContext(outer).Muted)
}

func TestRegistryResolve(t *testing.T) {
	reg := Ramps()

	tests := []struct {
		ref  string
		want lipgloss.Color
		ok   bool
	}{
		{ref: "luminance-primary-500", want: "#0073F5", ok: true},
		{ref: "luminance-primary", want: "#0073F5", ok: true},
		{ref: "luminance-teal-50", want: "#E6FBF9", ok: true},
		{ref: "luminance-neutral-950", want: "#0F1114", ok: true},
		{ref: "luminance-primary-950", ok: false},
		{ref: "luminance-primary-550", ok: false},
		{ref: "luminance-muted/80", ok: false},
		{ref: "luminance-neutral-900/50", want: "#1E2226", ok: true},
		{ref: "white", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			got, ok := reg.Resolve(tt.ref)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRegistryWithAndColor(t *testing.T) {
	extended := Ramps().With(NewRamp("brand", "#000001", "#000002"))

	_, ok := Ramps().Ramp("brand")
	assert.False(t, ok)

	ramp, ok := extended.Ramp("brand")
	require.True(t, ok)
	assert.Equal(t, []int{50, 100}, ramp.Shades())
	assert.Equal(t, lipgloss.Color(""), ramp.Main())
	assert.Contains(t, extended.Names(), "brand")
	assert.Contains(t, extended.Names(), "luminance-primary")

	c, err := extended.Color(Default(), SlotSecondary, 700)
	require.NoError(t, err)
	assert.Equal(t, lipgloss.Color("#008173"), c)

	_, err = extended.Color(Bind(Partial{Primary: "brand"}, Default()), SlotPrimary, 500)
	assert.Error(t, err)
	_, err = extended.Color(Bind(Partial{Primary: "nope"}, Default()), SlotPrimary, 500)
	assert.Error(t, err)
}
