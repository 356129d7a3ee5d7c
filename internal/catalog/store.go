package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/tailscale/hujson"

	"github.com/ytget/catalog-dashboard/internal/logging"
)

// DataFileExtension is the only extension considered a catalog file
const DataFileExtension = ".json"

// PathResolver supplies the active catalog directory
type PathResolver interface {
	GetPath() (string, bool)
}

// Listing is the result of enumerating the catalog directory
type Listing struct {
	Path  string   `json:"path"`
	Files []string `json:"files"`
}

// Store reads catalog files from the resolved directory
type Store struct {
	fs       afero.Fs
	resolver PathResolver
	logger   *zerolog.Logger
}

// NewStore creates a store. A nil fs means the OS filesystem.
func NewStore(fs afero.Fs, resolver PathResolver, logger *zerolog.Logger) *Store {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Store{fs: fs, resolver: resolver, logger: logger}
}

// Dir returns the active catalog directory
func (s *Store) Dir() (string, bool) {
	return s.resolver.GetPath()
}

// At returns a store pinned to dir, unaffected by later directory changes
func (s *Store) At(dir string) *Store {
	pinned := *s
	pinned.resolver = fixedDir(dir)
	return &pinned
}

type fixedDir string

func (d fixedDir) GetPath() (string, bool) {
	return string(d), d != ""
}

// ListFiles returns catalog file names in lexicographic order. With a
// non-empty typeTag only names containing it are returned.
func (s *Store) ListFiles(ctx context.Context, typeTag string) (Listing, error) {
	if err := ctx.Err(); err != nil {
		return Listing{}, err
	}

	dir, ok := s.resolver.GetPath()
	if !ok {
		return Listing{}, ErrNotConnected
	}

	// afero.ReadDir sorts entries by name
	entries, err := afero.ReadDir(s.fs, dir)
	if err != nil {
		s.logger.Error().Err(err).Str("dir", dir).Msg("Failed to list catalog directory")
		return Listing{}, fmt.Errorf("list %s: %w", dir, err)
	}

	files := make([]string, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, DataFileExtension) {
			continue
		}
		if typeTag != "" && !strings.Contains(name, typeTag) {
			continue
		}
		files = append(files, name)
	}

	s.logger.Debug().Str("dir", dir).Str("type", typeTag).Int("files", len(files)).Msg("Catalog directory listed")
	return Listing{Path: dir, Files: files}, nil
}

// ReadFile reads name from the catalog directory and returns it as standard
// JSON. Comments and trailing commas are accepted.
func (s *Store) ReadFile(ctx context.Context, name string) (json.RawMessage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path, err := s.Path(name)
	if err != nil {
		return nil, err
	}

	data, err := afero.ReadFile(s.fs, path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}

	standardized, err := hujson.Standardize(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", name, err)
	}
	return json.RawMessage(standardized), nil
}

// Path returns the full path of a catalog file
func (s *Store) Path(name string) (string, error) {
	if name == "" || name == "." || name == ".." || filepath.Base(name) != name || strings.ContainsAny(name, `/\`) {
		return "", fmt.Errorf("%q: %w", name, ErrInvalidName)
	}

	dir, ok := s.resolver.GetPath()
	if !ok {
		return "", ErrNotConnected
	}
	return filepath.Join(dir, name), nil
}
