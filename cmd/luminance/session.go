package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/luminance/internal/config"
	"github.com/alexisbeaulieu97/luminance/internal/logger"
	"github.com/alexisbeaulieu97/luminance/internal/provider"
	"github.com/alexisbeaulieu97/luminance/internal/style/variant"
	"github.com/alexisbeaulieu97/luminance/internal/theme"
	"github.com/alexisbeaulieu97/luminance/internal/ui/components"
	"github.com/alexisbeaulieu97/luminance/internal/ui/render"
)

// session bundles the long-lived services a command needs.
type session struct {
	cfg     *config.Config
	log     *logger.Logger
	binding *provider.Binding
	catalog *variant.Catalog
	signal  *theme.TermSignal
	release func() error
}

func openSession(cmd *cobra.Command, opts *globalOptions) (*session, error) {
	cfg, err := config.Load(config.LoadOptions{File: opts.configPath})
	if err != nil {
		return nil, err
	}
	if opts.verbose {
		cfg.LogLevel = "debug"
	}

	log, err := cfg.NewLogger(cmd.ErrOrStderr())
	if err != nil {
		return nil, fmt.Errorf("configure logger: %w", err)
	}

	catalog := components.Catalog()
	if cfg.Catalog != "" {
		custom, err := variant.LoadCatalog(cfg.Catalog)
		if err != nil {
			return nil, err
		}
		catalog = catalog.Merge(custom)
		log.WithFields(map[string]any{"path": cfg.Catalog, "components": custom.Names()}).Debug("catalog loaded")
	}

	storage, release, err := cfg.OpenStorage()
	if err != nil {
		return nil, err
	}

	signal := theme.TerminalSignal()
	binding, err := provider.New(provider.Options{
		StorageKey:     cfg.StorageKey,
		Default:        cfg.Preference(),
		Storage:        storage,
		Signal:         signal,
		PersistTimeout: cfg.PersistTimeout,
		Palette:        cfg.Palette,
		Logger:         log,
	})
	if err != nil {
		return nil, errors.Join(err, release())
	}

	return &session{
		cfg:     cfg,
		log:     log,
		binding: binding,
		catalog: catalog,
		signal:  signal,
		release: release,
	}, nil
}

// Context returns parent carrying the session binding.
func (s *session) Context(parent context.Context) context.Context {
	if parent == nil {
		parent = context.Background()
	}
	return provider.NewContext(parent, s.binding)
}

// RenderContext builds the component render context for the current theme.
func (s *session) RenderContext(ctx context.Context, opts ...render.Option) (components.RenderContext, error) {
	rc, err := components.ContextFrom(s.Context(ctx), opts...)
	if err != nil {
		return components.RenderContext{}, err
	}
	return rc.WithCatalog(s.catalog), nil
}

func (s *session) Close() error {
	s.binding.Close()
	return s.release()
}
