package variant

import (
	"github.com/alexisbeaulieu97/luminance/internal/style/tokens"
)

// None requests that a nullable axis contributes no tokens. It can never be a
// valid option name, so it cannot collide with a declared option.
const None = "!none"

// Bool converts a boolean into the option name used by "true"/"false" axes.
func Bool(v bool) string {
	if v {
		return "true"
	}
	return "false"
}

type axis struct {
	name     string
	nullable bool
	def      string
	order    []string
	options  map[string][]string
}

type compoundRule struct {
	when   map[string]string
	tokens []string
}

// Spec is a validated, immutable variant specification owned by a component type.
// A Spec is safe to share between goroutines.
type Spec struct {
	name     string
	base     []string
	axes     []axis
	index    map[string]int
	compound []compoundRule
}

// New validates def and compiles it into a Spec. The definition is copied, so
// later changes to def do not affect the Spec.
func New(def Definition) (*Spec, error) {
	if err := def.Validate(); err != nil {
		return nil, err
	}

	spec := &Spec{
		name:  def.Name,
		base:  tokens.Split(def.Base),
		axes:  make([]axis, 0, len(def.Axes)),
		index: make(map[string]int, len(def.Axes)),
	}

	for i, ad := range def.Axes {
		a := axis{
			name:     ad.Name,
			nullable: ad.Nullable,
			def:      def.Defaults[ad.Name],
			order:    make([]string, 0, len(ad.Options)),
			options:  make(map[string][]string, len(ad.Options)),
		}
		for _, opt := range ad.Options {
			a.order = append(a.order, opt.Name)
			a.options[opt.Name] = tokens.Split(opt.Tokens)
		}
		spec.axes = append(spec.axes, a)
		spec.index[ad.Name] = i
	}

	for _, cd := range def.Compound {
		when := make(map[string]string, len(cd.When))
		for k, v := range cd.When {
			when[k] = v
		}
		spec.compound = append(spec.compound, compoundRule{when: when, tokens: tokens.Split(cd.Tokens)})
	}

	return spec, nil
}

// MustNew is like New but panics on an invalid definition. It is intended for
// package-level specs declared in Go source.
func MustNew(def Definition) *Spec {
	spec, err := New(def)
	if err != nil {
		panic(err)
	}
	return spec
}

// Name returns the spec name.
func (s *Spec) Name() string {
	return s.name
}

// Axes returns the axis names in declaration order.
func (s *Spec) Axes() []string {
	names := make([]string, 0, len(s.axes))
	for _, a := range s.axes {
		names = append(names, a.name)
	}
	return names
}

// Options returns the option names of an axis in declaration order, or nil for an unknown axis.
func (s *Spec) Options(axisName string) []string {
	i, ok := s.index[axisName]
	if !ok {
		return nil
	}
	return append([]string(nil), s.axes[i].order...)
}

// Default returns the default option of an axis.
func (s *Spec) Default(axisName string) (string, bool) {
	i, ok := s.index[axisName]
	if !ok {
		return "", false
	}
	return s.axes[i].def, true
}

// Base returns a copy of the tokens always applied.
func (s *Spec) Base() []string {
	return append([]string(nil), s.base...)
}
