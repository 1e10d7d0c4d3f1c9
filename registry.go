package moment

import (
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
)

const defaultLocaleID = "en"

// Registry stores locale tables and the current locale. It is safe for
// concurrent use.
type Registry struct {
	mu       sync.RWMutex
	locales  map[string]*Locale
	current  *Locale
	resolver FallbackResolver
}

type registryConfig struct {
	resolver FallbackResolver
	builtins bool
}

type RegistryOption func(*registryConfig)

// WithRegistryResolver adds explicit fallback chains to locale resolution.
func WithRegistryResolver(resolver FallbackResolver) RegistryOption {
	return func(rc *registryConfig) {
		rc.resolver = resolver
	}
}

// WithoutBuiltinLocales starts the registry with English only.
func WithoutBuiltinLocales() RegistryOption {
	return func(rc *registryConfig) {
		rc.builtins = false
	}
}

// NewRegistry returns a registry holding the built-in locales with English
// as the current locale.
func NewRegistry(opts ...RegistryOption) *Registry {
	cfg := registryConfig{builtins: true}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	r := &Registry{
		locales:  make(map[string]*Locale),
		resolver: cfg.resolver,
	}
	tables := []*Locale{englishLocale()}
	if cfg.builtins {
		tables = builtinLocales()
	}
	for _, table := range tables {
		if err := r.Register(table.ID, table); err != nil {
			panic(fmt.Sprintf("moment: built-in locale %s: %v", table.ID, err))
		}
	}
	r.current = r.locales[defaultLocaleID]
	return r
}

// Register validates locale, fills omitted entries from the closest registered
// parent (English last) and stores a private copy under id. Registering an
// existing id replaces it.
func (r *Registry) Register(id string, locale *Locale) error {
	id = normalizeLocale(id)
	if id == "" {
		return fmt.Errorf("%w: empty locale identifier", ErrInvalidLocale)
	}
	if err := locale.validate(); err != nil {
		return fmt.Errorf("%s: %w", id, err)
	}

	stored := locale.withDefaults(id, r.base(id))

	r.mu.Lock()
	r.locales[id] = stored
	if r.current != nil && r.current.ID == id {
		r.current = stored
	}
	r.mu.Unlock()

	flushLayoutCache()
	Logger().Debug("moment: registered locale", logKeyLocale, id)
	return nil
}

func (r *Registry) base(id string) *Locale {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, candidate := range localeCandidates(id, r.resolver)[1:] {
		if locale, ok := r.locales[candidate]; ok {
			return locale
		}
	}
	if locale, ok := r.locales[defaultLocaleID]; ok {
		return locale
	}
	return englishLocale()
}

// Lookup resolves id through its fallback chain and parent tags.
func (r *Registry) Lookup(id string) (*Locale, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i, candidate := range localeCandidates(id, r.resolver) {
		if locale, ok := r.locales[candidate]; ok {
			if i > 0 {
				Logger().Debug("moment: locale resolved through fallback",
					logKeyLocale, id,
					"resolved", candidate,
				)
			}
			return locale, true
		}
	}
	return nil, false
}

// Locale returns the table for id, or English when id cannot be resolved.
func (r *Registry) Locale(id string) *Locale {
	if locale, ok := r.Lookup(id); ok {
		return locale
	}
	Logger().Debug("moment: unknown locale, using english", logKeyLocale, id)
	return r.english()
}

func (r *Registry) english() *Locale {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if locale, ok := r.locales[defaultLocaleID]; ok {
		return locale
	}
	return englishLocale()
}

// SetLocale switches the current locale. Unknown identifiers return
// ErrUnknownLocale and leave the current locale unchanged.
func (r *Registry) SetLocale(id string) error {
	locale, ok := r.Lookup(id)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownLocale, id)
	}
	r.mu.Lock()
	r.current = locale
	r.mu.Unlock()
	return nil
}

// Current returns the current locale table.
func (r *Registry) Current() *Locale {
	r.mu.RLock()
	current := r.current
	r.mu.RUnlock()
	if current == nil {
		return r.english()
	}
	return current
}

// CurrentID returns the identifier of the current locale.
func (r *Registry) CurrentID() string {
	return r.Current().ID
}

// Locales lists the registered identifiers in sorted order.
func (r *Registry) Locales() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]string, 0, len(r.locales))
	for id := range r.locales {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

var defaultRegistry atomic.Pointer[Registry]

// DefaultRegistry returns the process wide registry used by unbound moments.
func DefaultRegistry() *Registry {
	if r := defaultRegistry.Load(); r != nil {
		return r
	}
	r := NewRegistry()
	if defaultRegistry.CompareAndSwap(nil, r) {
		return r
	}
	return defaultRegistry.Load()
}

// SetDefaultRegistry replaces the process wide registry. A nil registry
// installs a fresh one with the built-in locales.
func SetDefaultRegistry(r *Registry) {
	if r == nil {
		r = NewRegistry()
	}
	defaultRegistry.Store(r)
	flushLayoutCache()
}

// SetLocale switches the current locale of the default registry.
func SetLocale(id string) error {
	return DefaultRegistry().SetLocale(id)
}

// RegisterLocale adds or replaces a locale in the default registry.
func RegisterLocale(id string, locale *Locale) error {
	return DefaultRegistry().Register(id, locale)
}

// CurrentLocale returns the identifier of the default registry's current locale.
func CurrentLocale() string {
	return DefaultRegistry().CurrentID()
}

// LookupLocale returns the table the default registry resolves id to.
func LookupLocale(id string) *Locale {
	return DefaultRegistry().Locale(id)
}

// Locales lists the identifiers registered in the default registry.
func Locales() []string {
	return DefaultRegistry().Locales()
}
