package lingua

import (
	"fmt"
	"os"
	"strings"
)

// configSeparators are the key/value separators recognized in config files.
var configSeparators = []string{":", "="}

// LanguageFromConfig reads a line-oriented config file and returns the value
// of the first entry matching key, validated against the loaded languages.
// The parser accepts `#` and `//` comment lines, `:` or `=` separators, and
// strips surrounding quotes and trailing commas, which makes it tolerant of
// JSON-ish, TOML-ish and plain key=value files alike.
//
// Errors: ErrConfigNotFound when path does not exist, ErrConfigRead when it
// cannot be read, ErrConfigValueNotFound when no entry matches key, and
// ErrLanguageNotAvailable when the value is not a loaded language code.
func (r *Registry) LanguageFromConfig(path, key string) (string, error) {
	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("%w: %s", ErrConfigNotFound, path)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrConfigRead, err)
	}

	cleanKey := strings.TrimSpace(strings.Trim(strings.TrimSpace(key), `"`))

	for line := range strings.Lines(string(content)) {
		line = strings.TrimSpace(line)

		if strings.HasPrefix(line, "#") || strings.HasPrefix(line, "//") {
			continue
		}

		for _, sep := range configSeparators {
			pos := strings.Index(line, sep)
			if pos < 0 {
				continue
			}

			lineKey := strings.Trim(strings.TrimSpace(line[:pos]), `"`)
			if lineKey != cleanKey {
				continue
			}

			value := strings.TrimSpace(line[pos+1:])
			value = strings.Trim(value, `"`)
			value = strings.Trim(value, ",")
			value = strings.Trim(value, `"`)

			if !r.HasLanguage(value) {
				return "", fmt.Errorf("%w: %s", ErrLanguageNotAvailable, value)
			}

			return value, nil
		}
	}

	return "", fmt.Errorf("%w: key %q", ErrConfigValueNotFound, key)
}

// SetLanguageFromConfig resolves a language code from a config file via
// LanguageFromConfig and activates it.
func (r *Registry) SetLanguageFromConfig(path, key string) error {
	code, err := r.LanguageFromConfig(path, key)
	if err != nil {
		return err
	}
	return r.SetLanguage(code)
}
