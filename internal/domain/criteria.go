package domain

// SortKey is the catalog sort_by parameter
type SortKey string

const (
	SortPopularityDesc  SortKey = "popularity.desc"
	SortPopularityAsc   SortKey = "popularity.asc"
	SortRatingDesc      SortKey = "vote_average.desc"
	SortRatingAsc       SortKey = "vote_average.asc"
	SortReleaseDateDesc SortKey = "release_date.desc"
	SortReleaseDateAsc  SortKey = "release_date.asc"
)

// DefaultSortKey is used when no valid sort key is configured
const DefaultSortKey = SortPopularityDesc

// SortKeys returns all sort keys in menu order
func SortKeys() []SortKey {
	return []SortKey{
		SortPopularityDesc,
		SortPopularityAsc,
		SortRatingDesc,
		SortRatingAsc,
		SortReleaseDateDesc,
		SortReleaseDateAsc,
	}
}

// Valid reports whether k is one of the supported sort keys
func (k SortKey) Valid() bool {
	for _, s := range SortKeys() {
		if s == k {
			return true
		}
	}
	return false
}

// Label returns the display name for the sort key
func (k SortKey) Label() string {
	switch k {
	case SortPopularityDesc:
		return "Popularity ↓"
	case SortPopularityAsc:
		return "Popularity ↑"
	case SortRatingDesc:
		return "Rating ↓"
	case SortRatingAsc:
		return "Rating ↑"
	case SortReleaseDateDesc:
		return "Release Date ↓"
	case SortReleaseDateAsc:
		return "Release Date ↑"
	default:
		return "Unknown"
	}
}

// ParseSortKey returns the sort key for s, or DefaultSortKey if s is not valid
func ParseSortKey(s string) SortKey {
	if k := SortKey(s); k.Valid() {
		return k
	}
	return DefaultSortKey
}

// AllGenres is the GenreID value meaning "no genre filter"
const AllGenres = 0

// Criteria is the user-controlled query tuple driving the result set
type Criteria struct {
	SearchText string
	SortKey    SortKey
	GenreID    int
}

// DefaultCriteria returns empty search, default sort, all genres
func DefaultCriteria() Criteria {
	return Criteria{SortKey: DefaultSortKey, GenreID: AllGenres}
}

// HasGenre returns true if a genre filter is set
func (c Criteria) HasGenre() bool {
	return c.GenreID != AllGenres
}
