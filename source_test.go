package lingua_test

import (
	"context"
	"embed"
	"io/fs"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/lingua"
)

//go:embed testdata
var testdataFS embed.FS

func subFS(t *testing.T, dir string) fs.FS {
	t.Helper()
	fsys, err := fs.Sub(testdataFS, "testdata/"+dir)
	require.NoError(t, err)
	return fsys
}

func TestDirSource(t *testing.T) {
	t.Parallel()

	t.Run("discovers json language files", func(t *testing.T) {
		t.Parallel()
		src := lingua.NewDirSource(subFS(t, "languages"), lingua.FormatJSON)

		codes, err := src.Languages(context.Background())
		require.NoError(t, err)
		require.ElementsMatch(t, []string{"en", "de"}, codes)
	})

	t.Run("loads raw file contents", func(t *testing.T) {
		t.Parallel()
		src := lingua.NewDirSource(subFS(t, "languages"), lingua.FormatJSON)

		raw, err := src.Load(context.Background(), "de")
		require.NoError(t, err)
		require.Contains(t, string(raw), "Hallo")
	})

	t.Run("reports missing files", func(t *testing.T) {
		t.Parallel()
		src := lingua.NewDirSource(subFS(t, "languages"), lingua.FormatJSON)

		_, err := src.Load(context.Background(), "fr")
		require.ErrorIs(t, err, lingua.ErrLanguageFileNotFound)
	})

	t.Run("discovers yaml files with both extensions", func(t *testing.T) {
		t.Parallel()
		src := lingua.NewDirSource(subFS(t, "yaml"), lingua.FormatYAML)

		codes, err := src.Languages(context.Background())
		require.NoError(t, err)
		require.ElementsMatch(t, []string{"en", "fr"}, codes)
	})

	t.Run("empty format defaults to json", func(t *testing.T) {
		t.Parallel()
		src := lingua.NewDirSource(subFS(t, "languages"), "")
		require.Equal(t, lingua.FormatJSON, src.Format())
	})
}

func TestDirSourceFormats(t *testing.T) {
	t.Parallel()

	t.Run("yaml end to end", func(t *testing.T) {
		t.Parallel()
		reg, err := lingua.New(lingua.WithYAMLDir(subFS(t, "yaml")))
		require.NoError(t, err)

		count, err := reg.Init(context.Background())
		require.NoError(t, err)
		require.Equal(t, 2, count)

		got, err := reg.TranslateIn("fr", "menu.file.save")
		require.NoError(t, err)
		require.Equal(t, "Enregistrer", got)
	})

	t.Run("toml end to end", func(t *testing.T) {
		t.Parallel()
		reg, err := lingua.New(lingua.WithTOMLDir(subFS(t, "toml")))
		require.NoError(t, err)

		count, err := reg.Init(context.Background())
		require.NoError(t, err)
		require.Equal(t, 1, count)

		got, err := reg.TranslateIn("it", "menu.file.save")
		require.NoError(t, err)
		require.Equal(t, "Salva", got)
	})
}

func TestHTTPSource(t *testing.T) {
	t.Parallel()

	newServer := func(t *testing.T) *httptest.Server {
		t.Helper()
		mux := http.NewServeMux()
		mux.HandleFunc("/i18n/en.json", func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"hello": "Hello", "menu": {"file": {"save": "Save"}}}`))
		})
		mux.HandleFunc("/i18n/de.json", func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"hello": "Hallo"}`))
		})
		srv := httptest.NewServer(mux)
		t.Cleanup(srv.Close)
		return srv
	}

	t.Run("fetches language files", func(t *testing.T) {
		t.Parallel()
		srv := newServer(t)
		src := lingua.NewHTTPSource(srv.URL+"/i18n", []string{"en", "de"}, srv.Client())

		raw, err := src.Load(context.Background(), "en")
		require.NoError(t, err)
		require.Contains(t, string(raw), "Hello")
	})

	t.Run("treats non-success responses as file not found", func(t *testing.T) {
		t.Parallel()
		srv := newServer(t)
		src := lingua.NewHTTPSource(srv.URL+"/i18n", []string{"en"}, srv.Client())

		_, err := src.Load(context.Background(), "missing")
		require.ErrorIs(t, err, lingua.ErrLanguageFileNotFound)
	})

	t.Run("treats transport errors as file not found", func(t *testing.T) {
		t.Parallel()
		src := lingua.NewHTTPSource("http://127.0.0.1:1/i18n", []string{"en"}, nil)

		_, err := src.Load(context.Background(), "en")
		require.ErrorIs(t, err, lingua.ErrLanguageFileNotFound)
	})

	t.Run("languages returns configured candidates", func(t *testing.T) {
		t.Parallel()
		src := lingua.NewHTTPSource("http://example.com", []string{"en", "de"}, nil)

		codes, err := src.Languages(context.Background())
		require.NoError(t, err)
		require.Equal(t, []string{"en", "de"}, codes)
	})

	t.Run("init skips unavailable candidates", func(t *testing.T) {
		t.Parallel()
		srv := newServer(t)
		reg, err := lingua.New(
			lingua.WithHTTPSource(srv.URL+"/i18n", []string{"en", "de", "fr"}, srv.Client()),
		)
		require.NoError(t, err)

		count, err := reg.Init(context.Background())
		require.NoError(t, err)
		require.Equal(t, 2, count)
		require.ElementsMatch(t, []string{"en", "de"}, reg.Languages())
	})
}
