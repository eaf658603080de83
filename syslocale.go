package lingua

import (
	"os"
	"strings"

	"github.com/Xuanwo/go-locale"
)

// localeEnvVars are consulted in GNU gettext priority order when platform
// detection fails.
var localeEnvVars = []string{"LANGUAGE", "LC_ALL", "LC_MESSAGES", "LANG"}

// detectSystemLanguage returns the primary language subtag of the system
// locale, best-effort. It reports false when nothing usable was detected.
func detectSystemLanguage() (string, bool) {
	if tag, err := locale.Detect(); err == nil {
		if code := primarySubtag(tag.String()); code != "" && code != "und" {
			return code, true
		}
	}

	for _, env := range localeEnvVars {
		if code := primarySubtag(os.Getenv(env)); code != "" {
			return code, true
		}
	}

	return "", false
}

// primarySubtag extracts the language part of a locale string such as
// "en-US", "de_DE.UTF-8" or "fr.ISO8859-1".
func primarySubtag(loc string) string {
	if i := strings.IndexAny(loc, "-_."); i >= 0 {
		loc = loc[:i]
	}
	return strings.TrimSpace(loc)
}
