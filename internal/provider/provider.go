// Package provider wires one theme store and palette per application root and
// passes them down explicitly through context.Context.
//
//	root, err := provider.New(provider.Options{Storage: storage})
//	ctx = provider.NewContext(ctx, root)
//	...
//	b := provider.MustFromContext(ctx)
//	effective := b.Theme().Effective()
//
// Looking up a binding where none was installed is a composition bug and is
// reported with an *errors.ContextMissingError.
package provider

import (
	"context"
	"time"

	"github.com/alexisbeaulieu97/luminance/internal/logger"
	"github.com/alexisbeaulieu97/luminance/internal/palette"
	"github.com/alexisbeaulieu97/luminance/internal/theme"
	lumerrors "github.com/alexisbeaulieu97/luminance/pkg/errors"
)

// Options configures a root binding.
type Options struct {
	StorageKey     string
	Default        theme.Preference
	Storage        theme.Storage
	Signal         theme.Signal
	PersistTimeout time.Duration
	Palette        palette.Partial
	Ramps          *palette.Registry
	Logger         *logger.Logger
}

// Binding is the state shared by one subtree. The theme store is shared by
// reference with every rebinding derived from it; the palette is a value.
type Binding struct {
	store   *theme.Store
	palette palette.Palette
	ramps   *palette.Registry
	log     *logger.Logger
}

// New creates a root binding with its own theme store.
func New(opts Options) (*Binding, error) {
	store, err := theme.NewStore(theme.Options{
		StorageKey:     opts.StorageKey,
		Storage:        opts.Storage,
		Signal:         opts.Signal,
		Default:        opts.Default,
		PersistTimeout: opts.PersistTimeout,
		Logger:         opts.Logger.WithFields(map[string]any{"scope": "theme"}),
	})
	if err != nil {
		return nil, err
	}

	ramps := opts.Ramps
	if ramps == nil {
		ramps = palette.Ramps()
	}

	return &Binding{
		store:   store,
		palette: palette.Bind(opts.Palette, palette.Default()),
		ramps:   ramps,
		log:     opts.Logger,
	}, nil
}

// Theme returns the theme store owned by the root of this binding.
func (b *Binding) Theme() *theme.Store {
	return b.store
}

// Palette returns the palette visible at this binding.
func (b *Binding) Palette() palette.Palette {
	return b.palette
}

// Ramps returns the colour ramp registry.
func (b *Binding) Ramps() *palette.Registry {
	return b.ramps
}

// Logger returns the binding's logger; it may be nil.
func (b *Binding) Logger() *logger.Logger {
	return b.log
}

// WithPalette returns a child binding whose palette is partial laid over b's.
// b itself is unchanged.
func (b *Binding) WithPalette(partial palette.Partial) *Binding {
	child := *b
	child.palette = palette.Bind(partial, b.palette)
	return &child
}

// Close releases the root store's environment watch.
func (b *Binding) Close() {
	b.store.Close()
}

type contextKey struct{}

// NewContext installs b for everything derived from ctx.
func NewContext(ctx context.Context, b *Binding) context.Context {
	ctx = context.WithValue(ctx, contextKey{}, b)
	return palette.NewContext(ctx, b.palette)
}

// FromContext returns the nearest installed binding. Its palette is the
// nearest palette bound in ctx, whether it was bound through this package or
// through palette.BindContext.
func FromContext(ctx context.Context) (*Binding, error) {
	if ctx != nil {
		if b, ok := ctx.Value(contextKey{}).(*Binding); ok && b != nil {
			p := palette.FromContext(ctx)
			if p == b.palette {
				return b, nil
			}
			bound := *b
			bound.palette = p
			return &bound, nil
		}
	}
	return nil, lumerrors.NewContextMissingError("luminance binding")
}

// MustFromContext is FromContext that panics when no binding is installed.
func MustFromContext(ctx context.Context) *Binding {
	b, err := FromContext(ctx)
	if err != nil {
		panic(err)
	}
	return b
}

// ThemeFromContext returns the theme store of the nearest binding.
func ThemeFromContext(ctx context.Context) (*theme.Store, error) {
	b, err := FromContext(ctx)
	if err != nil {
		return nil, lumerrors.NewContextMissingError("theme")
	}
	return b.store, nil
}

// WithPalette rebinds the palette for the subtree rooted at the returned context.
func WithPalette(ctx context.Context, partial palette.Partial) (context.Context, error) {
	b, err := FromContext(ctx)
	if err != nil {
		return ctx, err
	}
	return NewContext(ctx, b.WithPalette(partial)), nil
}
