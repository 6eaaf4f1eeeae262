package domain

import "context"

// Catalog is the remote, read-only movie catalog.
// Implementations must be safe to call from multiple goroutines.
type Catalog interface {
	// Discover returns one page of movies filtered and sorted by the criteria
	Discover(ctx context.Context, criteria Criteria, page int) ([]Movie, error)

	// Search returns movies matching a free-text query
	Search(ctx context.Context, query string) ([]Movie, error)

	// Genres returns the full genre list
	Genres(ctx context.Context) ([]Genre, error)
}

// Store is the local key-value persistence (BoltDB + memory).
type Store interface {
	// GetFavorites returns the persisted favorites.
	// found is false when nothing has been stored yet.
	GetFavorites() (favorites Favorites, found bool, err error)
	SaveFavorites(favorites Favorites) error

	// GetGenres returns the cached genre list
	GetGenres() ([]Genre, bool)
	SaveGenres(genres []Genre) error

	Close() error
}
