package moment

import (
	"errors"
	"fmt"
	"log/slog"
	"time"
)

// Config captures registry, clock and location setup.
type Config struct {
	DefaultLocale string
	Location      *time.Location
	Clock         func() time.Time
	Logger        *slog.Logger
	Resolver      FallbackResolver
	Loaders       []Loader

	// Locales are registered in order after the built-ins and loaders.
	Locales []LocaleEntry

	cacheTTL     time.Duration
	cacheCleanup time.Duration
	cacheSet     bool
}

// LocaleEntry pairs an identifier with a table registered under it.
type LocaleEntry struct {
	ID     string
	Locale *Locale
}

// Option mutates Config during construction
type Option func(*Config) error

// NewConfig builds Config via supplied options
func NewConfig(opts ...Option) (*Config, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if cfg.Resolver == nil {
		cfg.Resolver = NewStaticFallbackResolver()
	}
	if cfg.DefaultLocale == "" {
		cfg.DefaultLocale = defaultLocaleID
	}

	return cfg, nil
}

// WithDefaultLocale sets the locale selected once the registry is built.
func WithDefaultLocale(locale string) Option {
	return func(c *Config) error {
		locale = normalizeLocale(locale)
		if locale == "" {
			return fmt.Errorf("%w: empty default locale", ErrInvalidOption)
		}
		c.DefaultLocale = locale
		return nil
	}
}

// WithLocale registers a table under id.
func WithLocale(id string, locale *Locale) Option {
	return func(c *Config) error {
		if normalizeLocale(id) == "" || locale == nil {
			return fmt.Errorf("%w: locale needs an id and a table", ErrInvalidOption)
		}
		c.Locales = append(c.Locales, LocaleEntry{ID: id, Locale: locale})
		return nil
	}
}

func WithLoader(loader Loader) Option {
	return func(c *Config) error {
		if loader != nil {
			c.Loaders = append(c.Loaders, loader)
		}
		return nil
	}
}

// WithLocaleFiles loads one locale table per YAML or JSON file.
func WithLocaleFiles(paths ...string) Option {
	return func(c *Config) error {
		if len(paths) == 0 {
			return nil
		}
		c.Loaders = append(c.Loaders, NewFileLoader(paths...))
		return nil
	}
}

// WithLocaleDir loads every locale file of dir.
func WithLocaleDir(dir string) Option {
	return func(c *Config) error {
		if dir == "" {
			return fmt.Errorf("%w: empty locale dir", ErrInvalidOption)
		}
		c.Loaders = append(c.Loaders, LoaderFunc(func() ([]*Locale, error) {
			return LoadLocaleDir(dir)
		}))
		return nil
	}
}

func WithFallbackResolver(resolver FallbackResolver) Option {
	return func(c *Config) error {
		c.Resolver = resolver
		return nil
	}
}

// WithFallback sets an explicit fallback chain for locale. It is ignored
// when a custom resolver was configured.
func WithFallback(locale string, fallbacks ...string) Option {
	return func(c *Config) error {
		if locale == "" {
			return nil
		}
		resolver, ok := c.Resolver.(*StaticFallbackResolver)
		if !ok {
			if c.Resolver != nil {
				return nil
			}
			resolver = NewStaticFallbackResolver()
			c.Resolver = resolver
		}
		resolver.Set(locale, fallbacks...)
		return nil
	}
}

// WithLocation sets the location used by constructors without one.
func WithLocation(loc *time.Location) Option {
	return func(c *Config) error {
		if loc == nil {
			return fmt.Errorf("%w: nil location", ErrInvalidOption)
		}
		c.Location = loc
		return nil
	}
}

// WithClock replaces NowFunc.
func WithClock(clock func() time.Time) Option {
	return func(c *Config) error {
		if clock == nil {
			return fmt.Errorf("%w: nil clock", ErrInvalidOption)
		}
		c.Clock = clock
		return nil
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(c *Config) error {
		c.Logger = logger
		return nil
	}
}

// WithLayoutCache sets the expiration and cleanup interval of compiled
// layouts. A negative ttl keeps them until a locale is registered.
func WithLayoutCache(ttl, cleanup time.Duration) Option {
	return func(c *Config) error {
		if ttl == 0 {
			return fmt.Errorf("%w: zero layout cache ttl", ErrInvalidOption)
		}
		c.cacheTTL, c.cacheCleanup, c.cacheSet = ttl, cleanup, true
		return nil
	}
}

// BuildRegistry creates a registry with the built-in locales, the loaded
// locales and the explicit ones, then selects DefaultLocale.
func (c *Config) BuildRegistry() (*Registry, error) {
	if c == nil {
		return nil, errors.New("moment: nil config")
	}

	registry := NewRegistry(WithRegistryResolver(c.Resolver))

	for _, loader := range c.Loaders {
		locales, err := loader.Load()
		if err != nil {
			Logger().Warn("moment: locale loader failed", "error", err)
			return nil, err
		}
		for _, locale := range locales {
			if err := registry.Register(locale.ID, locale); err != nil {
				return nil, err
			}
		}
	}

	for _, entry := range c.Locales {
		if err := registry.Register(entry.ID, entry.Locale); err != nil {
			return nil, err
		}
	}

	if err := registry.SetLocale(c.DefaultLocale); err != nil {
		return nil, err
	}
	return registry, nil
}

// Configure builds a registry from opts and installs it, together with the
// location, clock, logger and cache settings, as the package defaults.
// Nothing is applied when the registry cannot be built.
func Configure(opts ...Option) error {
	cfg, err := NewConfig(opts...)
	if err != nil {
		return err
	}

	// Loader records go to the new logger; a failed build restores the old one.
	previousLogger := Logger()
	if cfg.Logger != nil {
		SetLogger(cfg.Logger)
	}
	registry, err := cfg.BuildRegistry()
	if err != nil {
		SetLogger(previousLogger)
		return err
	}

	if cfg.cacheSet {
		configureLayoutCache(cfg.cacheTTL, cfg.cacheCleanup)
	}
	SetDefaultRegistry(registry)

	if cfg.Location != nil {
		SetDefaultLocation(cfg.Location)
	}
	if cfg.Clock != nil {
		NowFunc = cfg.Clock
	}
	return nil
}
