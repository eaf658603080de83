package middlewares

import (
	"context"
	"net/http"
	"slices"

	"golang.org/x/text/language"

	"github.com/dmitrymomot/lingua"
)

type languageKey struct{}
type translatorKey struct{}

// defaultCookieName is the cookie checked for an explicit language choice.
const defaultCookieName = "lang"

// LanguageConfig configures the Language middleware.
type LanguageConfig struct {
	CookieName string
	SkipHeader bool
}

// LanguageOption configures LanguageConfig.
type LanguageOption func(*LanguageConfig)

// WithCookieName sets the cookie checked for the user's language choice.
func WithCookieName(name string) LanguageOption {
	return func(cfg *LanguageConfig) {
		if name != "" {
			cfg.CookieName = name
		}
	}
}

// WithoutHeaderDetection disables Accept-Language header matching, leaving
// the cookie and the registry's active language as the only inputs.
func WithoutHeaderDetection() LanguageOption {
	return func(cfg *LanguageConfig) {
		cfg.SkipHeader = true
	}
}

// Language returns middleware that resolves the request's language — cookie
// first, then Accept-Language, falling back to the registry's active
// language — and stores the resolved code plus a request-scoped
// lingua.Translator in the request context. The shared registry is never
// mutated per request.
func Language(reg *lingua.Registry, opts ...LanguageOption) func(http.Handler) http.Handler {
	cfg := LanguageConfig{CookieName: defaultCookieName}
	for _, opt := range opts {
		opt(&cfg)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			code := resolveLanguage(reg, r, cfg)
			tr := lingua.NewTranslator(reg, code)

			ctx := context.WithValue(r.Context(), languageKey{}, code)
			ctx = context.WithValue(ctx, translatorKey{}, tr)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// LanguageFromContext returns the language code resolved by the Language
// middleware, or an empty string when the middleware did not run.
func LanguageFromContext(ctx context.Context) string {
	code, _ := ctx.Value(languageKey{}).(string)
	return code
}

// TranslatorFromContext returns the request-scoped translator, or nil when
// the Language middleware did not run.
func TranslatorFromContext(ctx context.Context) *lingua.Translator {
	tr, _ := ctx.Value(translatorKey{}).(*lingua.Translator)
	return tr
}

func resolveLanguage(reg *lingua.Registry, r *http.Request, cfg LanguageConfig) string {
	available := reg.Languages()

	if cookie, err := r.Cookie(cfg.CookieName); err == nil {
		if slices.Contains(available, cookie.Value) {
			return cookie.Value
		}
	}

	if !cfg.SkipHeader {
		if code, ok := matchAcceptLanguage(r.Header.Get("Accept-Language"), available); ok {
			return code
		}
	}

	return reg.Language()
}

// matchAcceptLanguage matches an Accept-Language header against the loaded
// language codes and returns the best match.
func matchAcceptLanguage(header string, available []string) (string, bool) {
	if header == "" || len(available) == 0 {
		return "", false
	}

	codes := make([]string, 0, len(available))
	tags := make([]language.Tag, 0, len(available))
	for _, code := range available {
		tag, err := language.Parse(code)
		if err != nil {
			continue
		}
		codes = append(codes, code)
		tags = append(tags, tag)
	}
	if len(tags) == 0 {
		return "", false
	}

	desired, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(desired) == 0 {
		return "", false
	}

	_, index, confidence := language.NewMatcher(tags).Match(desired...)
	if confidence == language.No {
		return "", false
	}

	return codes[index], true
}
