package service

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/mmcdole/moviehouse/internal/domain"
)

// FavoritesService loads and persists the favorites collection
type FavoritesService struct {
	store  domain.Store
	logger *slog.Logger

	// Save versions; writes are serialized and never go backwards
	mu      sync.Mutex
	staged  uint64
	written uint64
}

// NewFavoritesService creates a new favorites service
func NewFavoritesService(store domain.Store, logger *slog.Logger) *FavoritesService {
	if logger == nil {
		logger = slog.Default()
	}
	return &FavoritesService{store: store, logger: logger}
}

// Load restores favorites from the store. It never fails: a missing or
// unreadable payload yields an empty collection.
func (s *FavoritesService) Load() domain.Favorites {
	favs, found, err := s.store.GetFavorites()
	if err != nil {
		s.logger.Warn("discarding stored favorites", "error", err)
		return domain.Favorites{}
	}
	if !found {
		return domain.Favorites{}
	}

	deduped := favs.Dedupe()
	if len(deduped) != len(favs) {
		s.logger.Warn("dropped duplicate favorites", "before", len(favs), "after", len(deduped))
	}
	s.logger.Debug("loaded favorites", "count", len(deduped))
	return deduped
}

// Save writes the full collection. Failures are logged and returned
// wrapped in domain.ErrPersistenceWrite.
func (s *FavoritesService) Save(favs domain.Favorites) error {
	_, err := s.SaveVersion(s.Stage(), favs)
	return err
}

// Stage reserves the next save version. Call it in the order the snapshots
// were taken; the write itself may then happen later on any goroutine.
func (s *FavoritesService) Stage() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.staged++
	return s.staged
}

// SaveVersion writes favs unless a newer version has already been written.
// Returns false when the snapshot was superseded and skipped.
func (s *FavoritesService) SaveVersion(version uint64, favs domain.Favorites) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if version <= s.written {
		s.logger.Debug("skipping superseded favorites save", "version", version, "written", s.written)
		return false, nil
	}
	s.written = version

	if err := s.store.SaveFavorites(favs); err != nil {
		s.logger.Error("failed to save favorites", "count", len(favs), "error", err)
		if errors.Is(err, domain.ErrPersistenceWrite) {
			return true, err
		}
		return true, fmt.Errorf("%w: %v", domain.ErrPersistenceWrite, err)
	}
	s.logger.Debug("saved favorites", "count", len(favs), "version", version)
	return true, nil
}

// Remove deletes a favorite by ID and persists the result.
// Returns false if no favorite had that ID.
func (s *FavoritesService) Remove(id int) (bool, error) {
	favs, removed := s.Load().Remove(id)
	if !removed {
		return false, nil
	}
	return true, s.Save(favs)
}

// Clear removes all favorites
func (s *FavoritesService) Clear() error {
	return s.Save(domain.Favorites{})
}
