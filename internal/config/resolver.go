package config

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"

	"github.com/ytget/catalog-dashboard/internal/logging"
	"github.com/ytget/catalog-dashboard/internal/platform"
)

// DirectoryChooser asks the user for a catalog directory. An empty path with
// a nil error means the user cancelled.
type DirectoryChooser interface {
	ChooseDirectory(ctx context.Context) (string, error)
}

// ChooserFunc adapts a function to DirectoryChooser
type ChooserFunc func(ctx context.Context) (string, error)

// ChooseDirectory implements DirectoryChooser
func (f ChooserFunc) ChooseDirectory(ctx context.Context) (string, error) {
	return f(ctx)
}

// StaticChooser always chooses the same directory. It is used by the CLI
// where the path arrives as an argument.
type StaticChooser string

// ChooseDirectory validates the path and returns it in absolute form
func (c StaticChooser) ChooseDirectory(ctx context.Context) (string, error) {
	if c == "" {
		return "", nil
	}
	abs, err := filepath.Abs(string(c))
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", string(c), err)
	}
	if err := platform.EnsureDirectory(abs); err != nil {
		return "", err
	}
	return abs, nil
}

// DirectoryResolver tracks the active catalog directory. The in-memory value
// takes precedence; the settings file is consulted once when it is unset.
type DirectoryResolver struct {
	mu     sync.Mutex
	store  *SettingsStore
	path   string
	logger *zerolog.Logger
}

// NewDirectoryResolver creates a resolver backed by store
func NewDirectoryResolver(store *SettingsStore, logger *zerolog.Logger) *DirectoryResolver {
	if logger == nil {
		logger = logging.Default()
	}
	return &DirectoryResolver{store: store, logger: logger}
}

// GetPath returns the active directory and whether one is configured
func (r *DirectoryResolver) GetPath() (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.path != "" {
		return r.path, true
	}

	if path := r.store.Load().DatabasePath(); path != "" {
		r.path = path
		return path, true
	}
	return "", false
}

// SelectPath asks chooser for a directory. On cancel nothing changes and
// ok is false. A chosen path is cached and persisted; a failed persist is
// logged and the path stays active for this session only.
func (r *DirectoryResolver) SelectPath(ctx context.Context, chooser DirectoryChooser) (path string, ok bool, err error) {
	path, err = chooser.ChooseDirectory(ctx)
	if err != nil {
		return "", false, err
	}
	if path == "" {
		r.logger.Debug().Msg("Directory selection cancelled")
		return "", false, nil
	}

	r.mu.Lock()
	r.path = path
	r.mu.Unlock()

	if saveErr := r.store.Save(StringSetting(KeyDatabasePath, path)); saveErr != nil {
		r.logger.Error().Err(saveErr).Str("dir", path).Msg("Failed to persist catalog directory")
	} else {
		r.logger.Info().Str("dir", path).Msg("Catalog directory selected")
	}
	return path, true, nil
}
