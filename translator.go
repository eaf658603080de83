package lingua

// Translator is a read-only view of a Registry pinned to one language. It
// lets a caller (an HTTP request, a background job) resolve against a fixed
// language without touching the shared active-language selector.
type Translator struct {
	reg  *Registry
	lang string
}

// NewTranslator creates a Translator for the given language. An empty
// language pins the registry's currently active language.
func NewTranslator(reg *Registry, lang string) *Translator {
	if reg == nil {
		panic("lingua: registry is not provided")
	}
	if lang == "" {
		lang = reg.Language()
	}
	return &Translator{reg: reg, lang: lang}
}

// Translate resolves a key strictly in the translator's language.
func (t *Translator) Translate(key string, params ...Param) (string, error) {
	return t.reg.TranslateIn(t.lang, key, params...)
}

// T resolves a key leniently in the translator's language, returning the key
// text on any failure.
func (t *Translator) T(key string, params ...Param) string {
	result, err := t.reg.TranslateIn(t.lang, key, params...)
	if err != nil {
		return key
	}
	return result
}

// Language returns the translator's pinned language code.
func (t *Translator) Language() string {
	return t.lang
}
