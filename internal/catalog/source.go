package catalog

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// Source loads a catalog. Implementations are called once per process.
type Source interface {
	Load(ctx context.Context) (*Catalog, error)
	String() string
}

// SourceKind identifies where a catalog comes from.
type SourceKind string

const (
	SourceFile   SourceKind = "file"
	SourceHTTP   SourceKind = "http"
	SourceSQLite SourceKind = "sqlite"
)

const sqliteScheme = "sqlite://"

// ParseSource splits a catalog.source value into its kind and location.
func ParseSource(value string) (SourceKind, string, error) {
	value = strings.TrimSpace(value)
	switch {
	case value == "":
		return "", "", fmt.Errorf("catalog source is empty")
	case strings.HasPrefix(value, "http://"), strings.HasPrefix(value, "https://"):
		return SourceHTTP, value, nil
	case strings.HasPrefix(value, sqliteScheme):
		path := strings.TrimPrefix(value, sqliteScheme)
		if path == "" {
			return "", "", fmt.Errorf("catalog source %q: missing sqlite path", value)
		}
		return SourceSQLite, path, nil
	default:
		return SourceFile, value, nil
	}
}

// FileSource reads the catalog from a JSON file on disk.
type FileSource struct {
	Path string
}

func (s FileSource) Load(_ context.Context) (*Catalog, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

func (s FileSource) String() string { return s.Path }

// Dir is the directory holding the catalog file; relative asset references
// resolve against it.
func (s FileSource) Dir() string {
	return filepath.Dir(s.Path)
}

// HTTPSource fetches the catalog document with a single GET. There is no
// retry: a failed fetch is final for the process.
type HTTPSource struct {
	URL    string
	Client *http.Client
}

func (s HTTPSource) Load(ctx context.Context) (*Catalog, error) {
	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("build catalog request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch catalog: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("fetch catalog: unexpected status %s", resp.Status)
	}
	return Decode(resp.Body)
}

func (s HTTPSource) String() string { return s.URL }
