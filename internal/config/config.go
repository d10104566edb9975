// Package config loads CLI settings from a YAML file and LUMINANCE_* environment
// variables, applies defaults and validates the result.
package config

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/spf13/viper"

	"github.com/alexisbeaulieu97/luminance/internal/logger"
	"github.com/alexisbeaulieu97/luminance/internal/palette"
	"github.com/alexisbeaulieu97/luminance/internal/theme"
	lumerrors "github.com/alexisbeaulieu97/luminance/pkg/errors"
)

// EnvPrefix prefixes every environment override, e.g. LUMINANCE_LOG_LEVEL.
const EnvPrefix = "LUMINANCE"

// Storage backends.
const (
	BackendFile   = "file"
	BackendBolt   = "bolt"
	BackendMemory = "memory"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// Config holds the resolved CLI settings.
type Config struct {
	StorageKey        string          `mapstructure:"storage_key" validate:"required,storage_key"`
	StorageBackend    string          `mapstructure:"storage_backend" validate:"oneof=file bolt memory"`
	StatePath         string          `mapstructure:"state_path"`
	DefaultPreference string          `mapstructure:"default_preference" validate:"oneof=light dark system"`
	PersistTimeout    time.Duration   `mapstructure:"persist_timeout" validate:"gt=0"`
	LogLevel          string          `mapstructure:"log_level" validate:"oneof=trace debug info warn error disabled"`
	HumanLogs         bool            `mapstructure:"human_logs"`
	Catalog           string          `mapstructure:"catalog"`
	Palette           palette.Partial `mapstructure:"palette"`

	// Source is the config file that was read, if any.
	Source string `mapstructure:"-"`
}

// LoadOptions controls where configuration is read from.
type LoadOptions struct {
	// File overrides the default search path.
	File string
	// SearchPaths replaces the default XDG config directory.
	SearchPaths []string
}

// DefaultConfigDir returns the per-user config directory.
func DefaultConfigDir() string {
	return filepath.Join(xdg.ConfigHome, "luminance")
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("storage_key", theme.DefaultStorageKey)
	v.SetDefault("storage_backend", BackendFile)
	v.SetDefault("state_path", "")
	v.SetDefault("default_preference", string(theme.DefaultPreference))
	v.SetDefault("persist_timeout", theme.DefaultPersistTimeout)
	v.SetDefault("log_level", "warn")
	v.SetDefault("human_logs", true)
	v.SetDefault("catalog", "")
	for _, slot := range palette.Slots() {
		v.SetDefault("palette."+string(slot), "")
	}
}

// Load reads configuration. A missing default config file is not an error; a
// missing explicit file is.
func Load(opts LoadOptions) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if opts.File != "" {
		v.SetConfigFile(opts.File)
	} else {
		paths := opts.SearchPaths
		if len(paths) == 0 {
			paths = []string{DefaultConfigDir()}
		}
		for _, p := range paths {
			v.AddConfigPath(p)
		}
		v.SetConfigName("luminance")
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if opts.File != "" || !errors.As(err, &notFound) {
			return nil, lumerrors.NewParseError(sourceName(v, opts.File), extractLine(err), err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, lumerrors.NewParseError(sourceName(v, opts.File), 0, err)
	}
	cfg.Source = v.ConfigFileUsed()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns the built-in configuration without reading files or env.
func Default() *Config {
	return &Config{
		StorageKey:        theme.DefaultStorageKey,
		StorageBackend:    BackendFile,
		DefaultPreference: string(theme.DefaultPreference),
		PersistTimeout:    theme.DefaultPersistTimeout,
		LogLevel:          "warn",
		HumanLogs:         true,
	}
}

// Preference returns the configured default preference.
func (c *Config) Preference() theme.Preference {
	return theme.Preference(c.DefaultPreference)
}

// OpenStorage builds the configured theme storage. release frees it.
func (c *Config) OpenStorage() (storage theme.Storage, release func() error, err error) {
	noop := func() error { return nil }

	switch c.StorageBackend {
	case BackendMemory:
		return theme.NewMemoryStorage(), noop, nil
	case BackendBolt:
		path := c.StatePath
		if path == "" {
			path = filepath.Join(theme.DefaultStateDir(), "theme.db")
		}
		bolt, err := theme.OpenBoltStorage(path)
		if err != nil {
			return nil, noop, lumerrors.NewPersistenceError("open", path, err)
		}
		return bolt, bolt.Close, nil
	default:
		dir := c.StatePath
		if dir == "" {
			dir = theme.DefaultStateDir()
		}
		return theme.NewFileStorage(dir), noop, nil
	}
}

// NewLogger builds the CLI logger writing to w.
func (c *Config) NewLogger(w io.Writer) (*logger.Logger, error) {
	return logger.New(logger.Options{
		Level:         c.LogLevel,
		HumanReadable: c.HumanLogs,
		Writer:        w,
		Component:     "luminance",
	})
}

func sourceName(v *viper.Viper, file string) string {
	if used := v.ConfigFileUsed(); used != "" {
		return used
	}
	if file != "" {
		return file
	}
	return "luminance.yaml"
}

func extractLine(err error) int {
	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}
	var line int
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}
	return line
}
