package tmdb

// MovieListResponse is the paginated envelope returned by discover and search
type MovieListResponse struct {
	Page         int           `json:"page"`
	Results      []MovieResult `json:"results"`
	TotalPages   int           `json:"total_pages"`
	TotalResults int           `json:"total_results"`
}

// MovieResult is a single movie record in a list response
type MovieResult struct {
	ID            int     `json:"id"`
	Title         string  `json:"title"`
	OriginalTitle string  `json:"original_title"`
	Overview      string  `json:"overview"`
	PosterPath    *string `json:"poster_path"` // null when the movie has no poster
	BackdropPath  *string `json:"backdrop_path"`
	ReleaseDate   string  `json:"release_date"`
	VoteAverage   float64 `json:"vote_average"`
	VoteCount     int     `json:"vote_count"`
	GenreIDs      []int   `json:"genre_ids"`
	Popularity    float64 `json:"popularity"`
	Adult         bool    `json:"adult"`
}

// GenreListResponse is returned by the genre list endpoint
type GenreListResponse struct {
	Genres []GenreResult `json:"genres"`
}

// GenreResult is a single genre record
type GenreResult struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// ErrorResponse is the body TMDB returns alongside non-2xx statuses
type ErrorResponse struct {
	StatusCode    int    `json:"status_code"`
	StatusMessage string `json:"status_message"`
	Success       bool   `json:"success"`
}
