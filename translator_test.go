package lingua_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/lingua"
)

func TestTranslator(t *testing.T) {
	t.Parallel()

	newRegistry := func(t *testing.T) *lingua.Registry {
		t.Helper()
		reg, err := lingua.New(
			lingua.WithTranslations("en", map[string]any{"greeting": "Hello, {{name}}!"}),
			lingua.WithTranslations("de", map[string]any{"greeting": "Hallo, {{name}}!"}),
		)
		require.NoError(t, err)
		return reg
	}

	t.Run("resolves in the pinned language", func(t *testing.T) {
		t.Parallel()
		reg := newRegistry(t)
		tr := lingua.NewTranslator(reg, "de")

		require.Equal(t, "de", tr.Language())
		require.Equal(t, "Hallo, Alice!", tr.T("greeting", lingua.P("name", "Alice")))
	})

	t.Run("pinned language survives registry switches", func(t *testing.T) {
		t.Parallel()
		reg := newRegistry(t)
		tr := lingua.NewTranslator(reg, "de")

		require.NoError(t, reg.SetLanguage("en"))
		require.Equal(t, "Hallo, Bob!", tr.T("greeting", lingua.P("name", "Bob")))
	})

	t.Run("empty language pins the active language", func(t *testing.T) {
		t.Parallel()
		reg := newRegistry(t)
		tr := lingua.NewTranslator(reg, "")
		require.Equal(t, "en", tr.Language())
	})

	t.Run("strict resolution returns typed errors", func(t *testing.T) {
		t.Parallel()
		reg := newRegistry(t)
		tr := lingua.NewTranslator(reg, "de")

		_, err := tr.Translate("missing.key")
		require.ErrorIs(t, err, lingua.ErrKeyNotFound)
	})

	t.Run("lenient resolution falls back to key text", func(t *testing.T) {
		t.Parallel()
		reg := newRegistry(t)
		tr := lingua.NewTranslator(reg, "de")
		require.Equal(t, "missing.key", tr.T("missing.key"))
	})

	t.Run("panics without a registry", func(t *testing.T) {
		t.Parallel()
		require.Panics(t, func() { lingua.NewTranslator(nil, "en") })
	})
}
