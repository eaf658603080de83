package lingua

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format identifies the encoding of language files served by a Source.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// extensions returns the file extensions recognized for the format.
func (f Format) extensions() []string {
	switch f {
	case FormatYAML:
		return []string{".yaml", ".yml"}
	case FormatTOML:
		return []string{".toml"}
	default:
		return []string{".json"}
	}
}

// unmarshal decodes raw file contents into a translation table.
func (f Format) unmarshal(data []byte, v *map[string]any) error {
	switch f {
	case FormatYAML:
		return yaml.Unmarshal(data, v)
	case FormatTOML:
		return toml.Unmarshal(data, v)
	default:
		return json.Unmarshal(data, v)
	}
}

// Source supplies raw language files to a Registry. Implementations perform
// the actual I/O; parsing stays in the registry so that parse failures are
// reported uniformly regardless of where the file came from.
type Source interface {
	// Languages enumerates the language codes discoverable from this source.
	Languages(ctx context.Context) ([]string, error)

	// Load returns the raw contents of the language file for code.
	// A missing file is reported as ErrLanguageFileNotFound.
	Load(ctx context.Context, code string) ([]byte, error)

	// Format reports the encoding of the files this source serves.
	Format() Format
}

// DirSource discovers <code>.<ext> files at the root of a filesystem.
type DirSource struct {
	fsys   fs.FS
	format Format
}

// NewDirSource creates a filesystem-backed source. The format defaults to
// FormatJSON when empty.
func NewDirSource(fsys fs.FS, format Format) *DirSource {
	if format == "" {
		format = FormatJSON
	}
	return &DirSource{fsys: fsys, format: format}
}

// Dir creates a JSON source over a directory path.
func Dir(path string) *DirSource {
	return NewDirSource(os.DirFS(path), FormatJSON)
}

// Languages lists the codes of all language files in the directory root.
func (s *DirSource) Languages(ctx context.Context) ([]string, error) {
	entries, err := fs.ReadDir(s.fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrSourceAccess, err)
	}

	var codes []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		for _, ext := range s.format.extensions() {
			if strings.HasSuffix(name, ext) {
				codes = append(codes, strings.TrimSuffix(name, ext))
				break
			}
		}
	}

	return codes, nil
}

// Load reads the language file for code.
func (s *DirSource) Load(ctx context.Context, code string) ([]byte, error) {
	for _, ext := range s.format.extensions() {
		data, err := fs.ReadFile(s.fsys, code+ext)
		if err == nil {
			return data, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: reading %q: %s", ErrSourceAccess, code+ext, err)
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrLanguageFileNotFound, code)
}

// Format reports the configured file encoding.
func (s *DirSource) Format() Format {
	return s.format
}

// HTTPSource fetches language files over HTTP from <baseURL>/<code>.json.
// Non-success responses and transport errors are treated uniformly as
// "language file not found" for the requested code.
type HTTPSource struct {
	client  *http.Client
	baseURL string
	codes   []string
}

// NewHTTPSource creates a network-backed source for the given candidate
// language codes. A nil client falls back to http.DefaultClient.
func NewHTTPSource(baseURL string, codes []string, client *http.Client) *HTTPSource {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPSource{
		client:  client,
		baseURL: strings.TrimSuffix(baseURL, "/"),
		codes:   codes,
	}
}

// Languages returns the configured candidate codes. Whether a candidate is
// actually available is only known once its file is fetched.
func (s *HTTPSource) Languages(ctx context.Context) ([]string, error) {
	return s.codes, nil
}

// Load fetches the language file for code.
func (s *HTTPSource) Load(ctx context.Context, code string) ([]byte, error) {
	url := s.baseURL + "/" + code + ".json"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrLanguageFileNotFound, code)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrLanguageFileNotFound, code)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %s", ErrLanguageFileNotFound, code)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrLanguageFileNotFound, code)
	}

	return data, nil
}

// Format reports the file encoding; HTTP sources always serve JSON.
func (s *HTTPSource) Format() Format {
	return FormatJSON
}
