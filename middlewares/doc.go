// Package middlewares provides net/http integration for lingua.
//
// The Language middleware resolves a per-request language from a cookie or
// the Accept-Language header and makes a request-scoped Translator available
// through the request context:
//
//	mux := http.NewServeMux()
//	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
//	    tr := middlewares.TranslatorFromContext(r.Context())
//	    fmt.Fprintln(w, tr.T("greeting", lingua.P("name", "Alice")))
//	})
//
//	handler := middlewares.Language(reg)(mux)
package middlewares
