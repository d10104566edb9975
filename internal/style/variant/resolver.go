package variant

import (
	"sort"
	"strings"

	"github.com/alexisbeaulieu97/luminance/internal/logger"
	"github.com/alexisbeaulieu97/luminance/internal/style/tokens"
)

// Selection is a caller's partial choice of options plus trailing override tokens.
type Selection struct {
	// Options maps axis name to option name. Missing axes use the spec default;
	// None skips a nullable axis.
	Options map[string]string
	// Class holds free-form tokens applied after everything else.
	Class string
}

// With returns a copy of the selection with axis set to option.
func (s Selection) With(axisName, option string) Selection {
	next := make(map[string]string, len(s.Options)+1)
	for k, v := range s.Options {
		next[k] = v
	}
	next[axisName] = option
	s.Options = next
	return s
}

// WithClass returns a copy of the selection with extra trailing tokens appended.
func (s Selection) WithClass(class ...string) Selection {
	s.Class = tokens.Join(append([]string{s.Class}, class...)...)
	return s
}

// Resolver turns a Spec plus a Selection into a merged token string.
// It has no mutable state; a single Resolver may be shared freely.
type Resolver struct {
	merger *tokens.Merger
	log    *logger.Logger
}

// Option customises a Resolver.
type Option func(*Resolver)

// WithMerger sets the Merger used as the last resolution step.
func WithMerger(m *tokens.Merger) Option {
	return func(r *Resolver) {
		if m != nil {
			r.merger = m
		}
	}
}

// WithLogger sets the logger that receives invalid-selection diagnostics.
func WithLogger(l *logger.Logger) Option {
	return func(r *Resolver) {
		r.log = l
	}
}

// NewResolver creates a Resolver backed by the default token merger.
func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{merger: tokens.Default()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

var defaultResolver = NewResolver()

// Resolve resolves a selection with the default Resolver.
func Resolve(spec *Spec, sel Selection) string {
	return defaultResolver.Resolve(spec, sel)
}

// ResolveClassName is the entry point used by components: spec and selection plus
// any extra caller tokens, which win every conflict.
func ResolveClassName(spec *Spec, sel Selection, extra ...string) string {
	return defaultResolver.ResolveClassName(spec, sel, extra...)
}

// Selected returns the concrete axis to option map for sel. Skipped axes map to None.
func (r *Resolver) Selected(spec *Spec, sel Selection) map[string]string {
	if spec == nil {
		return map[string]string{}
	}
	resolved := make(map[string]string, len(spec.axes))
	for _, a := range spec.axes {
		resolved[a.name] = r.effectiveOption(spec, a, sel)
	}
	r.reportUnknownAxes(spec, sel)
	return resolved
}

// Tokens returns the ordered, unmerged token sequence for sel: base, then each
// axis in declaration order, then matching compound rules, then sel.Class.
func (r *Resolver) Tokens(spec *Spec, sel Selection) []string {
	if spec == nil {
		return tokens.Split(sel.Class)
	}

	out := append([]string(nil), spec.base...)
	resolved := r.Selected(spec, sel)

	for _, a := range spec.axes {
		option := resolved[a.name]
		if option == None {
			continue
		}
		out = append(out, a.options[option]...)
	}

	for _, rule := range spec.compound {
		if matches(rule.when, resolved) {
			out = append(out, rule.tokens...)
		}
	}

	return append(out, tokens.Split(sel.Class)...)
}

// Resolve returns the merged class string for sel.
func (r *Resolver) Resolve(spec *Spec, sel Selection) string {
	return r.ResolveClassName(spec, sel)
}

// ResolveClassName returns the merged class string for sel followed by extra tokens.
func (r *Resolver) ResolveClassName(spec *Spec, sel Selection, extra ...string) string {
	seq := r.Tokens(spec, sel)
	seq = append(seq, tokens.Split(extra...)...)
	return strings.Join(r.merger.MergeTokens(seq), " ")
}

func (r *Resolver) effectiveOption(spec *Spec, a axis, sel Selection) string {
	requested, ok := sel.Options[a.name]
	if !ok || requested == "" {
		return a.def
	}
	if requested == None {
		if a.nullable {
			return None
		}
		r.reportInvalid(spec, a.name, requested)
		return a.def
	}
	if _, known := a.options[requested]; !known {
		r.reportInvalid(spec, a.name, requested)
		return a.def
	}
	return requested
}

func (r *Resolver) reportInvalid(spec *Spec, axisName, option string) {
	if r.log == nil {
		return
	}
	r.log.WithFields(map[string]any{
		"spec":   spec.name,
		"axis":   axisName,
		"option": option,
	}).Debug("unknown variant option, using default")
}

func (r *Resolver) reportUnknownAxes(spec *Spec, sel Selection) {
	if r.log == nil || len(sel.Options) == 0 {
		return
	}
	var unknown []string
	for name := range sel.Options {
		if _, ok := spec.index[name]; !ok {
			unknown = append(unknown, name)
		}
	}
	sort.Strings(unknown)
	for _, name := range unknown {
		r.log.WithFields(map[string]any{
			"spec": spec.name,
			"axis": name,
		}).Debug("unknown variant axis ignored")
	}
}

func matches(when, resolved map[string]string) bool {
	for axisName, option := range when {
		if resolved[axisName] != option {
			return false
		}
	}
	return true
}
