// Package lingua is a runtime internationalization library. It loads
// per-language key/value translation tables from JSON (or YAML/TOML) files,
// tracks a currently selected language, and resolves dotted translation keys
// to localized strings with named-parameter substitution.
//
// # Quick Start
//
// Point a Registry at a directory of <code>.json files and initialize it:
//
//	reg, err := lingua.New(lingua.WithDir("languages"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	if _, err := reg.Init(context.Background()); err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println(reg.T("menu.file.save"))
//	fmt.Println(reg.T("greeting", lingua.P("name", "Alice")))
//
// Init bulk-loads every discoverable language, fails loudly when none are
// found, and then best-effort activates the system locale's language when a
// matching table is loaded.
//
// # Translation Files
//
// A language file is a single JSON object; nested objects form
// sub-namespaces addressed with dotted keys:
//
//	{
//	    "greeting": "Hello, {{name}}!",
//	    "menu": {
//	        "file": {"save": "Save", "open": "Open"}
//	    }
//	}
//
// Leaf values that are not strings (numbers, booleans) render as their plain
// textual form. Parameters use the {{name}} syntax and are substituted in
// the order given; replacement is literal and never re-expanded, and there
// is no escaping mechanism for literal {{...}} sequences.
//
// # Strict and Lenient Resolution
//
// Translate returns typed errors (ErrLanguageNotAvailable, ErrKeyNotFound)
// and suits code that must know a translation is missing. T never fails: it
// returns the key text unchanged, so a UI degrades to showing the raw key:
//
//	s, err := reg.Translate("menu.file.open")
//	s := reg.T("menu.file.open") // "menu.file.open" when unresolved
//
// # Switching Languages
//
// SetLanguage only accepts loaded codes and notifies registered callbacks
// synchronously, in registration order:
//
//	reg.OnChange(func(code string) { log.Println("language:", code) })
//	if err := reg.SetLanguage("de"); err != nil {
//	    // lingua.ErrLanguageNotAvailable
//	}
//
// # Sources
//
// Loading is abstracted behind the Source interface with filesystem-backed
// (DirSource) and network-backed (HTTPSource) implementations, selected at
// construction time:
//
//	lingua.New(lingua.WithURL("https://cdn.example.com/i18n", "en", "de"))
//
// Translations can also be embedded directly with WithTranslations or
// LoadFromText, without any I/O.
//
// # Config Files
//
// LanguageFromConfig extracts a language code from a line-oriented config
// file (JSON-ish, TOML-ish or plain key=value) and validates it against the
// loaded languages; SetLanguageFromConfig activates it in one step.
//
// # Concurrency
//
// A Registry is safe for concurrent use. Lookups proceed in parallel under
// a read lock; loads and switches serialize under a write lock. Change
// callbacks run synchronously on the switching goroutine and must not call
// back into the registry's mutating methods.
package lingua
