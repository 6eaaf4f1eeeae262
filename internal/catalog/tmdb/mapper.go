package tmdb

import "github.com/mmcdole/moviehouse/internal/domain"

// MapMovies converts catalog movie records to domain movies
func MapMovies(results []MovieResult) []domain.Movie {
	movies := make([]domain.Movie, 0, len(results))
	for _, r := range results {
		movies = append(movies, MapMovie(r))
	}
	return movies
}

// MapMovie converts a single catalog movie record
func MapMovie(r MovieResult) domain.Movie {
	title := r.Title
	if title == "" {
		title = r.OriginalTitle
	}

	var poster string
	if r.PosterPath != nil {
		poster = *r.PosterPath
	}

	return domain.Movie{
		ID:          r.ID,
		Title:       title,
		PosterPath:  poster,
		VoteAverage: r.VoteAverage,
		Overview:    r.Overview,
		ReleaseDate: r.ReleaseDate,
		GenreIDs:    r.GenreIDs,
	}
}

// MapGenres converts catalog genre records to domain genres
func MapGenres(results []GenreResult) []domain.Genre {
	genres := make([]domain.Genre, len(results))
	for i, g := range results {
		genres[i] = domain.Genre{ID: g.ID, Name: g.Name}
	}
	return genres
}
