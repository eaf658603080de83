package lingua

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Translate resolves a dotted key against the active language's table and
// substitutes params into the result. It fails with ErrLanguageNotAvailable
// when no table is loaded for the active language, and ErrKeyNotFound when
// the key path does not fully resolve to a leaf value.
func (r *Registry) Translate(key string, params ...Param) (string, error) {
	r.mu.RLock()
	lang := r.active
	r.mu.RUnlock()

	return r.TranslateIn(lang, key, params...)
}

// TranslateIn is Translate against an explicit language instead of the
// active one.
func (r *Registry) TranslateIn(code, key string, params ...Param) (string, error) {
	r.mu.RLock()
	table, ok := r.tables[code]
	r.mu.RUnlock()

	if !ok {
		return "", fmt.Errorf("%w: %s", ErrLanguageNotAvailable, code)
	}

	template, found := lookup(table, key)
	if !found {
		return "", fmt.Errorf("%w: %s", ErrKeyNotFound, key)
	}

	return applyParams(template, params), nil
}

// T is the lenient counterpart of Translate: any resolution failure yields
// the key text unchanged, so a missing translation degrades to showing the
// raw key instead of an error.
func (r *Registry) T(key string, params ...Param) string {
	result, err := r.Translate(key, params...)
	if err != nil {
		return key
	}
	return result
}

// lookup walks the dotted key path through the nested table. Every non-final
// segment must resolve to a nested table and the final segment to a leaf;
// the walk stops at the first miss with no partial or fallback lookup.
func lookup(table map[string]any, key string) (string, bool) {
	segments := strings.Split(key, ".")
	current := table

	for i, segment := range segments {
		value, ok := current[segment]
		if !ok {
			return "", false
		}

		if i == len(segments)-1 {
			return leafString(value), true
		}

		nested, ok := value.(map[string]any)
		if !ok {
			return "", false
		}
		current = nested
	}

	return "", false
}

// leafString renders a leaf value as its plain textual form: strings are
// used verbatim, other values render as their canonical JSON text without
// surrounding quotes.
func leafString(value any) string {
	if s, ok := value.(string); ok {
		return s
	}
	b, err := json.Marshal(value)
	if err != nil {
		return fmt.Sprintf("%v", value)
	}
	return strings.Trim(string(b), `"`)
}
