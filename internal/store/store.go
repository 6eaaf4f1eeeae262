package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/mmcdole/moviehouse/internal/domain"
	bolt "go.etcd.io/bbolt"
)

// Bucket names
var (
	bucketKV = []byte("kv")
)

// Keys within the kv bucket
const (
	keyFavorites = "favorites"
	keyGenres    = "genres"
)

// DBFile is the database file name inside the data directory
const DBFile = "moviehouse.db"

// Store implements domain.Store using BoltDB.
type Store struct {
	db *bolt.DB
	mu sync.RWMutex // Protects memory cache

	// In-memory copy of every value written or read (promoted on access)
	cache map[string][]byte
}

// Open opens (or creates) the store in dataDir. An empty dataDir
// gives a memory-only store.
func Open(dataDir string) (*Store, error) {
	if dataDir == "" {
		return &Store{cache: make(map[string][]byte)}, nil
	}

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, err
	}

	dbPath := filepath.Join(dataDir, DBFile)
	db, err := bolt.Open(dbPath, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt db: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketKV)
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db, cache: make(map[string][]byte)}, nil
}

func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// === Generic helpers ===

// getRaw returns the stored bytes for key, or nil if absent
func (s *Store) getRaw(key string) ([]byte, error) {
	s.mu.RLock()
	if data, ok := s.cache[key]; ok {
		s.mu.RUnlock()
		return data, nil
	}
	s.mu.RUnlock()

	if s.db == nil {
		return nil, nil
	}

	var data []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketKV)
		if b == nil {
			return nil
		}
		if v := b.Get([]byte(key)); v != nil {
			data = make([]byte, len(v))
			copy(data, v)
		}
		return nil
	})
	if err != nil || data == nil {
		return nil, err
	}

	// Promote to memory cache
	s.mu.Lock()
	s.cache[key] = data
	s.mu.Unlock()

	return data, nil
}

func (s *Store) set(key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	if s.db != nil {
		err = s.db.Update(func(tx *bolt.Tx) error {
			b := tx.Bucket(bucketKV)
			return b.Put([]byte(key), data)
		})
		if err != nil {
			return err
		}
	}

	s.mu.Lock()
	s.cache[key] = data
	s.mu.Unlock()
	return nil
}

// === Favorites ===

// GetFavorites decodes the persisted favorites array.
// found is false when the key has never been written.
func (s *Store) GetFavorites() (domain.Favorites, bool, error) {
	data, err := s.getRaw(keyFavorites)
	if err != nil {
		return nil, false, fmt.Errorf("%w: %v", domain.ErrPersistenceRead, err)
	}
	if data == nil {
		return nil, false, nil
	}

	var favs domain.Favorites
	if err := json.Unmarshal(data, &favs); err != nil {
		return nil, true, fmt.Errorf("%w: %v", domain.ErrPersistenceRead, err)
	}
	return favs, true, nil
}

// SaveFavorites replaces the persisted favorites with the full list
func (s *Store) SaveFavorites(favs domain.Favorites) error {
	if favs == nil {
		favs = domain.Favorites{}
	}
	if err := s.set(keyFavorites, favs); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrPersistenceWrite, err)
	}
	return nil
}

// === Genres ===

func (s *Store) GetGenres() ([]domain.Genre, bool) {
	data, err := s.getRaw(keyGenres)
	if err != nil || data == nil {
		return nil, false
	}
	var genres []domain.Genre
	if err := json.Unmarshal(data, &genres); err != nil {
		return nil, false
	}
	return genres, true
}

func (s *Store) SaveGenres(genres []domain.Genre) error {
	return s.set(keyGenres, genres)
}
