package lingua

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"
)

// DefaultLanguage is the active language before any explicit switch.
const DefaultLanguage = "en"

// ChangeCallback is invoked synchronously after the active language changes.
type ChangeCallback func(code string)

// Registry owns the loaded translation tables and the single active-language
// selector. It is safe for concurrent use: lookups take a read lock, loads
// and switches take a write lock.
//
// Change callbacks run on the goroutine that called SetLanguage, after the
// switch is visible but before SetLanguage returns. Calling back into the
// registry's mutating methods from inside a callback is undefined behavior;
// defer such calls to another goroutine.
type Registry struct {
	mu          sync.RWMutex
	tables      map[string]map[string]any
	active      string
	source      Source
	callbacks   []ChangeCallback
	initialized bool
	log         *slog.Logger
}

// New creates a Registry with the given options.
func New(opts ...Option) (*Registry, error) {
	r := &Registry{
		tables: make(map[string]map[string]any),
		active: DefaultLanguage,
		log:    slog.New(slog.DiscardHandler),
	}

	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, fmt.Errorf("lingua: failed to apply option: %w", err)
		}
	}

	return r, nil
}

// Init performs a bulk load of every language discoverable from the
// configured source and returns the number of languages loaded. A parse or
// access failure aborts the whole operation; languages inserted before the
// failure remain loaded even though Init reports an error, so Init is
// all-or-nothing only at the "did initialization succeed" level. Zero loaded
// languages is fatal (ErrNoLanguages) and leaves the registry uninitialized.
//
// After a successful load, Init attempts to activate the system locale's
// primary language. Detection failure or a code that is not loaded is
// silently ignored and the previously active language stays in effect.
func (r *Registry) Init(ctx context.Context) (int, error) {
	count, err := r.bulkLoad(ctx)
	if err != nil {
		return count, err
	}

	r.mu.Lock()
	r.initialized = true
	r.mu.Unlock()

	if code, ok := detectSystemLanguage(); ok {
		if err := r.SetLanguage(code); err == nil {
			r.log.Debug("activated system language", "language", code)
		}
	}

	r.log.Info("registry initialized", "languages", count)

	return count, nil
}

// Reload re-runs the bulk load over the configured source, replacing the
// table of every rediscovered language. Unlike Init it requires a previously
// completed initialization and leaves the active language untouched.
func (r *Registry) Reload(ctx context.Context) (int, error) {
	if !r.Initialized() {
		return 0, ErrNotInitialized
	}
	return r.bulkLoad(ctx)
}

func (r *Registry) bulkLoad(ctx context.Context) (int, error) {
	r.mu.RLock()
	src := r.source
	r.mu.RUnlock()

	if src == nil {
		return 0, ErrNoSource
	}

	codes, err := src.Languages(ctx)
	if err != nil {
		return 0, err
	}

	count := 0
	for _, code := range codes {
		if err := r.LoadLanguage(ctx, code); err != nil {
			// A candidate without a file is simply not available; anything
			// else aborts the bulk load.
			if errors.Is(err, ErrLanguageFileNotFound) {
				continue
			}
			return count, err
		}
		count++
	}

	if count == 0 {
		return 0, ErrNoLanguages
	}

	return count, nil
}

// LoadLanguage loads a single language's table from the configured source.
// The I/O happens outside the registry lock; only the final insert takes the
// write lock. On failure the registry state for code is left unchanged.
func (r *Registry) LoadLanguage(ctx context.Context, code string) error {
	r.mu.RLock()
	src := r.source
	r.mu.RUnlock()

	if src == nil {
		return ErrNoSource
	}

	raw, err := src.Load(ctx, code)
	if err != nil {
		return err
	}

	return r.LoadFromTextFormat(code, raw, src.Format())
}

// LoadFromText parses raw as a JSON translation table and inserts or
// replaces it for code, independent of the configured source. Useful for
// embedding translations without file or network access.
func (r *Registry) LoadFromText(code string, raw []byte) error {
	return r.LoadFromTextFormat(code, raw, FormatJSON)
}

// LoadFromTextFormat is LoadFromText for an explicit file format.
func (r *Registry) LoadFromTextFormat(code string, raw []byte, format Format) error {
	if code == "" {
		return ErrEmptyLanguage
	}

	var table map[string]any
	if err := format.unmarshal(raw, &table); err != nil {
		return fmt.Errorf("%w: parsing %q: %s", ErrParse, code, err)
	}

	r.mu.Lock()
	r.tables[code] = table
	r.mu.Unlock()

	r.log.Debug("loaded language", "language", code)

	return nil
}

// SetLanguage switches the active language. It fails with
// ErrLanguageNotAvailable when code has no loaded table; the previously
// active language is left untouched. Setting the already-active language is
// permitted and still fires change callbacks.
func (r *Registry) SetLanguage(code string) error {
	r.mu.Lock()
	if _, ok := r.tables[code]; !ok {
		r.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrLanguageNotAvailable, code)
	}
	r.active = code
	callbacks := slices.Clone(r.callbacks)
	r.mu.Unlock()

	for _, fn := range callbacks {
		fn(code)
	}

	r.log.Debug("language changed", "language", code)

	return nil
}

// Language returns the currently active language code.
func (r *Registry) Language() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.active
}

// Languages returns the codes of all loaded languages in unspecified order.
func (r *Registry) Languages() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	codes := make([]string, 0, len(r.tables))
	for code := range r.tables {
		codes = append(codes, code)
	}

	return codes
}

// HasLanguage reports whether a table is loaded for code.
func (r *Registry) HasLanguage(code string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.tables[code]
	return ok
}

// Initialized reports whether a bulk load has completed successfully.
func (r *Registry) Initialized() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.initialized
}

// OnChange registers a callback fired on every successful language switch,
// in registration order. There is no unregistration; callbacks live for the
// registry's lifetime. Nil callbacks are ignored.
func (r *Registry) OnChange(fn ChangeCallback) {
	if fn == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.callbacks = append(r.callbacks, fn)
}
