package service

import (
	"context"
	"log/slog"

	"github.com/mmcdole/moviehouse/internal/domain"
)

// CatalogService fetches result sets and reference data from the catalog
type CatalogService struct {
	client domain.Catalog
	store  domain.Store
	page   int
	logger *slog.Logger
}

// NewCatalogService creates a new catalog service. store may be nil,
// in which case genres are not cached.
func NewCatalogService(client domain.Catalog, store domain.Store, page int, logger *slog.Logger) *CatalogService {
	if logger == nil {
		logger = slog.Default()
	}
	if page < 1 {
		page = 1
	}
	return &CatalogService{
		client: client,
		store:  store,
		page:   page,
		logger: logger,
	}
}

// Discover fetches the configured page for the full criteria tuple
func (s *CatalogService) Discover(ctx context.Context, criteria domain.Criteria) ([]domain.Movie, error) {
	s.logger.Debug("discover",
		"sort", criteria.SortKey,
		"genre", criteria.GenreID,
		"query", criteria.SearchText,
		"page", s.page,
	)

	movies, err := s.client.Discover(ctx, criteria, s.page)
	if err != nil {
		s.logger.Warn("discover failed", "error", err)
		return nil, err
	}

	s.logger.Debug("discover complete", "results", len(movies))
	return movies, nil
}

// Search runs a free-text search and ranks the results against the query
func (s *CatalogService) Search(ctx context.Context, query string) ([]domain.Movie, error) {
	s.logger.Debug("searching", "query", query)

	movies, err := s.client.Search(ctx, query)
	if err != nil {
		s.logger.Warn("search failed", "query", query, "error", err)
		return nil, err
	}

	ranked := RankResults(movies, query)
	s.logger.Debug("search complete", "query", query, "results", len(ranked))
	return ranked, nil
}

// LoadGenres fetches the genre list and caches it. When the fetch fails and a
// cached list exists, the cached list is returned with cached=true and a nil error.
func (s *CatalogService) LoadGenres(ctx context.Context) (genres []domain.Genre, cached bool, err error) {
	genres, err = s.client.Genres(ctx)
	if err == nil {
		if s.store != nil {
			if saveErr := s.store.SaveGenres(genres); saveErr != nil {
				s.logger.Warn("failed to cache genres", "error", saveErr)
			}
		}
		return genres, false, nil
	}

	s.logger.Warn("genre fetch failed", "error", err)
	if s.store != nil {
		if stored, ok := s.store.GetGenres(); ok {
			s.logger.Info("using cached genres", "count", len(stored))
			return stored, true, nil
		}
	}
	return nil, false, err
}
