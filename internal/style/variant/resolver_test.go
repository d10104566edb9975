package variant

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/luminance/internal/logger"
)

func buttonDefinition() Definition {
	return Definition{
		Name: "button",
		Base: "inline-flex items-center rounded-md text-sm font-medium",
		Axes: []AxisDefinition{
			{
				Name: "variant",
				Options: []OptionDefinition{
					{Name: "primary", Tokens: "bg-luminance-primary-500 text-white"},
					{Name: "subtle", Tokens: "bg-muted hover:bg-muted/80"},
				},
			},
			{
				Name: "size",
				Options: []OptionDefinition{
					{Name: "default", Tokens: "h-10 px-4 py-2"},
					{Name: "sm", Tokens: "h-9 rounded-md px-3"},
					{Name: "lg", Tokens: "h-11 rounded-md px-8"},
				},
			},
			{
				Name: "dotted",
				Options: []OptionDefinition{
					{Name: "true", Tokens: "border-dashed"},
					{Name: "false"},
				},
			},
			{
				Name:     "animation",
				Nullable: true,
				Options: []OptionDefinition{
					{Name: "pulse", Tokens: "animate-pulse"},
				},
			},
		},
		Compound: []CompoundDefinition{
			{When: map[string]string{"variant": "primary", "dotted": "true"}, Tokens: "border-2 border-luminance-primary-700"},
			{When: map[string]string{"size": "lg"}, Tokens: "text-base"},
		},
		Defaults: map[string]string{
			"variant":   "primary",
			"size":      "default",
			"dotted":    "false",
			"animation": "pulse",
		},
	}
}

func buttonSpec(t *testing.T) *Spec {
	t.Helper()
	spec, err := New(buttonDefinition())
	require.NoError(t, err)
	return spec
}

func TestResolveDefaults(t *testing.T) {
	spec := buttonSpec(t)

	got := Resolve(spec, Selection{})
	assert.Equal(t, "inline-flex items-center rounded-md text-sm font-medium bg-luminance-primary-500 text-white h-10 px-4 py-2 animate-pulse", got)
}

func TestResolveIsDeterministic(t *testing.T) {
	spec := buttonSpec(t)
	sel := Selection{Options: map[string]string{"variant": "subtle", "size": "lg", "dotted": "true"}, Class: "mt-2"}

	first := Resolve(spec, sel)
	for i := 0; i < 50; i++ {
		require.Equal(t, first, Resolve(spec, sel))
	}
}

func TestResolveUnknownOptionFallsBackToDefault(t *testing.T) {
	spec := buttonSpec(t)

	assert.Equal(t, Resolve(spec, Selection{}), Resolve(spec, Selection{Options: map[string]string{"size": "doesNotExist"}}))
	assert.Equal(t, Resolve(spec, Selection{}), Resolve(spec, Selection{Options: map[string]string{"colour": "teal"}}))
}

func TestResolveCompoundRuleActivation(t *testing.T) {
	spec := buttonSpec(t)

	on := Resolve(spec, Selection{Options: map[string]string{"variant": "primary", "dotted": Bool(true)}})
	off := Resolve(spec, Selection{Options: map[string]string{"variant": "primary", "dotted": Bool(false)}})
	subtle := Resolve(spec, Selection{Options: map[string]string{"variant": "subtle", "dotted": Bool(true)}})

	assert.Contains(t, on, "border-luminance-primary-700")
	assert.Contains(t, on, "border-2")
	assert.NotContains(t, off, "border-luminance-primary-700")
	assert.NotContains(t, subtle, "border-luminance-primary-700")
}

func TestResolveMultipleCompoundRulesApplyInOrder(t *testing.T) {
	spec := buttonSpec(t)
	r := NewResolver()

	seq := r.Tokens(spec, Selection{Options: map[string]string{"dotted": "true", "size": "lg"}})
	joined := strings.Join(seq, " ")
	first := strings.Index(joined, "border-luminance-primary-700")
	second := strings.Index(joined, "text-base")
	require.GreaterOrEqual(t, first, 0)
	require.GreaterOrEqual(t, second, 0)
	assert.Less(t, first, second)

	// text-base from the compound rule overrides text-sm from base.
	merged := r.Resolve(spec, Selection{Options: map[string]string{"size": "lg"}})
	assert.Contains(t, merged, "text-base")
	assert.NotContains(t, merged, "text-sm")
}

func TestResolveCallerOverridesWin(t *testing.T) {
	spec := buttonSpec(t)

	for _, variantName := range spec.Options("variant") {
		for _, size := range spec.Options("size") {
			sel := Selection{Options: map[string]string{"variant": variantName, "size": size}, Class: "bg-[#123456] px-1"}
			got := ResolveClassName(spec, sel, "h-20")

			fields := strings.Fields(got)
			assert.Contains(t, fields, "bg-[#123456]")
			assert.Contains(t, fields, "px-1")
			assert.Contains(t, fields, "h-20")
			assert.NotContains(t, fields, "bg-luminance-primary-500")
			assert.NotContains(t, fields, "h-10")
		}
	}
}

func TestResolveNoneSkipsNullableAxis(t *testing.T) {
	spec := buttonSpec(t)

	got := Resolve(spec, Selection{Options: map[string]string{"animation": None}})
	assert.NotContains(t, got, "animate-pulse")

	// None on an axis that does not support it behaves like an unknown option.
	got = Resolve(spec, Selection{Options: map[string]string{"size": None}})
	assert.Contains(t, got, "h-10")
}

func TestSelectedReportsResolvedMap(t *testing.T) {
	spec := buttonSpec(t)
	r := NewResolver()

	got := r.Selected(spec, Selection{Options: map[string]string{"size": "sm", "animation": None, "variant": "nope"}})
	assert.Equal(t, map[string]string{
		"variant":   "primary",
		"size":      "sm",
		"dotted":    "false",
		"animation": None,
	}, got)
}

func TestCompoundRuleCanMatchSkippedAxis(t *testing.T) {
	def := buttonDefinition()
	def.Compound = append(def.Compound, CompoundDefinition{
		When:   map[string]string{"animation": None},
		Tokens: "transition-none",
	})
	spec, err := New(def)
	require.NoError(t, err)

	assert.Contains(t, Resolve(spec, Selection{Options: map[string]string{"animation": None}}), "transition-none")
	assert.NotContains(t, Resolve(spec, Selection{}), "transition-none")
}

func TestResolverLogsInvalidSelection(t *testing.T) {
	var buf bytes.Buffer
	log, err := logger.New(logger.Options{Level: "debug", Writer: &buf})
	require.NoError(t, err)

	spec := buttonSpec(t)
	r := NewResolver(WithLogger(log))
	r.Resolve(spec, Selection{Options: map[string]string{"size": "huge", "tone": "warm"}})

	out := buf.String()
	assert.Equal(t, 2, strings.Count(out, "\n"))
	assert.Contains(t, out, `"option":"huge"`)
	assert.Contains(t, out, `"axis":"tone"`)
}

func TestResolveNilSpecKeepsCallerTokens(t *testing.T) {
	assert.Equal(t, "px-4", ResolveClassName(nil, Selection{Class: "px-2"}, "px-4"))

	selected := NewResolver().Selected(nil, Selection{Options: map[string]string{"size": "sm"}})
	assert.NotNil(t, selected)
	assert.Empty(t, selected)
}

func TestSelectionBuildersDoNotAlias(t *testing.T) {
	base := Selection{Options: map[string]string{"size": "sm"}}
	next := base.With("size", "lg").WithClass("mt-1", "", "mb-1")

	assert.Equal(t, "sm", base.Options["size"])
	assert.Equal(t, "lg", next.Options["size"])
	assert.Equal(t, "mt-1 mb-1", next.Class)
	assert.Empty(t, base.Class)
}

func TestSpecIsIsolatedFromDefinition(t *testing.T) {
	def := buttonDefinition()
	spec, err := New(def)
	require.NoError(t, err)

	before := Resolve(spec, Selection{Options: map[string]string{"dotted": "true"}})
	def.Compound[0].When["variant"] = "subtle"
	def.Axes[0].Options[0].Tokens = "bg-black"

	assert.Equal(t, before, Resolve(spec, Selection{Options: map[string]string{"dotted": "true"}}))
	assert.Equal(t, []string{"variant", "size", "dotted", "animation"}, spec.Axes())

	def2, ok := spec.Default("size")
	assert.True(t, ok)
	assert.Equal(t, "default", def2)
	assert.Nil(t, spec.Options("missing"))
}
