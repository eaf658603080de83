package lingua

import (
	"io/fs"
	"log/slog"
	"net/http"
)

// Option configures a Registry during construction.
type Option func(*Registry) error

// WithSource sets the source language files are loaded from.
func WithSource(src Source) Option {
	return func(r *Registry) error {
		if src != nil {
			r.source = src
		}
		return nil
	}
}

// WithDir configures a filesystem source of <code>.json files rooted at path.
func WithDir(path string) Option {
	return WithSource(Dir(path))
}

// WithJSONDir configures a filesystem source of <code>.json files.
func WithJSONDir(fsys fs.FS) Option {
	return WithSource(NewDirSource(fsys, FormatJSON))
}

// WithYAMLDir configures a filesystem source of <code>.yaml or <code>.yml files.
func WithYAMLDir(fsys fs.FS) Option {
	return WithSource(NewDirSource(fsys, FormatYAML))
}

// WithTOMLDir configures a filesystem source of <code>.toml files.
func WithTOMLDir(fsys fs.FS) Option {
	return WithSource(NewDirSource(fsys, FormatTOML))
}

// WithURL configures a network source fetching <baseURL>/<code>.json for
// each candidate code with http.DefaultClient.
func WithURL(baseURL string, codes ...string) Option {
	return WithSource(NewHTTPSource(baseURL, codes, nil))
}

// WithHTTPSource configures a network source with a custom client.
func WithHTTPSource(baseURL string, codes []string, client *http.Client) Option {
	return WithSource(NewHTTPSource(baseURL, codes, client))
}

// WithDefaultLanguage sets the language active before any explicit switch.
// Defaults to "en".
func WithDefaultLanguage(code string) Option {
	return func(r *Registry) error {
		if code == "" {
			return ErrEmptyLanguage
		}
		r.active = code
		return nil
	}
}

// WithTranslations inserts a translation table for code without any I/O.
// Nested maps represent sub-namespaces addressed with dotted keys.
func WithTranslations(code string, translations map[string]any) Option {
	return func(r *Registry) error {
		if code == "" {
			return ErrEmptyLanguage
		}
		r.tables[code] = normalizeTable(translations)
		return nil
	}
}

// WithLogger sets the registry logger. If nil, logging is disabled.
func WithLogger(l *slog.Logger) Option {
	return func(r *Registry) error {
		if l != nil {
			r.log = l
		}
		return nil
	}
}

// WithChangeCallback registers a change callback at construction time.
// Equivalent to calling OnChange after New.
func WithChangeCallback(fn ChangeCallback) Option {
	return func(r *Registry) error {
		if fn != nil {
			r.callbacks = append(r.callbacks, fn)
		}
		return nil
	}
}

// normalizeTable converts map[string]string sub-tables into the map[string]any
// shape the resolver walks, so hand-written translation maps behave like
// parsed files.
func normalizeTable(table map[string]any) map[string]any {
	normalized := make(map[string]any, len(table))
	for key, value := range table {
		switch v := value.(type) {
		case map[string]any:
			normalized[key] = normalizeTable(v)
		case map[string]string:
			sub := make(map[string]any, len(v))
			for subKey, subVal := range v {
				sub[subKey] = subVal
			}
			normalized[key] = sub
		default:
			normalized[key] = value
		}
	}
	return normalized
}
