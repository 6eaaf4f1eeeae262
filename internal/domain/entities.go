package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Movie is a catalog entry as returned by the discover and search endpoints.
// The JSON field names match the catalog wire format so the same struct is
// used for the persisted favorites payload.
type Movie struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	PosterPath  string  `json:"poster_path,omitempty"`
	VoteAverage float64 `json:"vote_average"`
	Overview    string  `json:"overview"`
	ReleaseDate string  `json:"release_date,omitempty"` // YYYY-MM-DD
	GenreIDs    []int   `json:"genre_ids,omitempty"`
}

// Year returns the release year parsed from ReleaseDate (0 if unknown)
func (m Movie) Year() int {
	if len(m.ReleaseDate) < 4 {
		return 0
	}
	year, err := strconv.Atoi(m.ReleaseDate[:4])
	if err != nil {
		return 0
	}
	return year
}

// DisplayTitle returns the title with the release year appended when known
func (m Movie) DisplayTitle() string {
	if y := m.Year(); y > 0 {
		return fmt.Sprintf("%s (%d)", m.Title, y)
	}
	return m.Title
}

// FormattedRating returns the vote average with one decimal
func (m Movie) FormattedRating() string {
	return fmt.Sprintf("%.1f", m.VoteAverage)
}

// HasPoster returns true if the catalog supplied a poster path
func (m Movie) HasPoster() bool {
	return m.PosterPath != ""
}

// PosterURL joins the image base URL, the size segment and the poster path.
// Returns "" when the movie has no poster.
func (m Movie) PosterURL(imageBaseURL, size string) string {
	if !m.HasPoster() {
		return ""
	}
	base := strings.TrimRight(imageBaseURL, "/")
	path := m.PosterPath
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return base + "/" + strings.Trim(size, "/") + path
}

// Genre is a catalog genre used to populate the genre filter
type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// GenreName looks up a genre name by ID, returning "" if unknown
func GenreName(genres []Genre, id int) string {
	for _, g := range genres {
		if g.ID == id {
			return g.Name
		}
	}
	return ""
}
