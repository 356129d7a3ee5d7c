package catalog

import (
	"context"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"github.com/ytget/catalog-dashboard/internal/logging"
)

// Service runs the list → ingest → aggregate pipeline and keeps the latest
// snapshot for the UI.
type Service struct {
	store  *Store
	group  singleflight.Group
	logger *zerolog.Logger

	mu       sync.RWMutex
	current  Snapshot
	onUpdate func(Snapshot) // callback for UI updates
}

// NewService creates a catalog service on top of store
func NewService(store *Store, logger *zerolog.Logger) *Service {
	if logger == nil {
		logger = logging.Default()
	}
	return &Service{
		store:  store,
		logger: logger,
	}
}

// SetUpdateCallback sets the function called after every successful reload
func (s *Service) SetUpdateCallback(callback func(Snapshot)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onUpdate = callback
}

// Store returns the underlying file store
func (s *Service) Store() *Store {
	return s.store
}

// ListFiles lists catalog files in the active directory
func (s *Service) ListFiles(ctx context.Context, typeTag string) (Listing, error) {
	return s.store.ListFiles(ctx, typeTag)
}

// Reload rebuilds the snapshot from the active directory. Concurrent reloads
// of the same directory and type tag share one pass. On error the previous
// snapshot is kept. A pass whose directory was replaced while it ran is not
// published and returns ErrDirectoryChanged.
func (s *Service) Reload(ctx context.Context, typeTag string) (Snapshot, error) {
	dir, ok := s.store.Dir()
	if !ok {
		return Snapshot{}, ErrNotConnected
	}

	v, err, shared := s.group.Do(dir+"\x00"+typeTag, func() (interface{}, error) {
		pinned := s.store.At(dir)
		listing, err := pinned.ListFiles(ctx, typeTag)
		if err != nil {
			return Snapshot{}, err
		}

		snap, err := NewAggregator(pinned, s.logger).Rebuild(ctx, listing.Files)
		if err != nil {
			return Snapshot{}, err
		}
		snap.Dir = listing.Path

		if current, ok := s.store.Dir(); !ok || current != dir {
			s.logger.Debug().Str("dir", dir).Str("current", current).Msg("Discarding reload of previous directory")
			return Snapshot{}, ErrDirectoryChanged
		}

		s.mu.Lock()
		s.current = snap
		callback := s.onUpdate
		s.mu.Unlock()

		if callback != nil {
			callback(snap)
		}
		return snap, nil
	})
	if shared {
		s.logger.Debug().Str("dir", dir).Str("type", typeTag).Msg("Reload coalesced with in-flight pass")
	}
	if err != nil {
		return Snapshot{}, err
	}
	return v.(Snapshot), nil
}

// Snapshot returns the latest snapshot; the zero value before the first reload
func (s *Service) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}
