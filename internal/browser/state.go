// Package browser holds the catalog browser's state and its transitions.
// Nothing here performs I/O: transitions return the requests the caller
// must issue, and responses are fed back with the sequence number they
// were issued under.
package browser

import (
	"fmt"

	"github.com/mmcdole/moviehouse/internal/domain"
)

// DefaultOverviewLimit is the collapsed overview length in characters
const DefaultOverviewLimit = 150

// Ellipsis is appended to every collapsed overview
const Ellipsis = "..."

// RequestKind selects the catalog endpoint for a Request
type RequestKind int

const (
	RequestDiscover RequestKind = iota
	RequestSearch
)

func (k RequestKind) String() string {
	if k == RequestSearch {
		return "search"
	}
	return "discover"
}

// Request is a catalog fetch the caller must perform
type Request struct {
	Seq      uint64
	Kind     RequestKind
	Criteria domain.Criteria // search requests use only SearchText
}

// ToastLevel controls toast styling
type ToastLevel int

const (
	ToastSuccess ToastLevel = iota
	ToastWarning
	ToastError
)

// Toast is a transient notice that hides itself after a delay
type Toast struct {
	Text    string
	Level   ToastLevel
	Visible bool
	Seq     uint64
}

// State is the catalog browser state container
type State struct {
	Criteria  domain.Criteria
	Results   []domain.Movie
	Genres    []domain.Genre
	Favorites domain.Favorites

	// ExpandedID is the movie whose overview is shown in full (0 = none)
	ExpandedID int

	Toast Toast

	// Notice is an inline error for the last failed fetch ("" when none)
	Notice string

	// Loading is true while the latest issued request is in flight
	Loading bool

	overviewLimit int
	issuedSeq     uint64
	toastSeq      uint64
}

// New creates a state with the given starting criteria and favorites
func New(criteria domain.Criteria, favorites domain.Favorites) *State {
	if !criteria.SortKey.Valid() {
		criteria.SortKey = domain.DefaultSortKey
	}
	if favorites == nil {
		favorites = domain.Favorites{}
	}
	return &State{
		Criteria:      criteria,
		Favorites:     favorites.Dedupe(),
		overviewLimit: DefaultOverviewLimit,
	}
}

// SetOverviewLimit changes the collapsed overview length
func (s *State) SetOverviewLimit(limit int) {
	if limit > 0 {
		s.overviewLimit = limit
	}
}

// === Criteria & results ===

func (s *State) issue(kind RequestKind) Request {
	s.issuedSeq++
	s.Loading = true
	return Request{Seq: s.issuedSeq, Kind: kind, Criteria: s.Criteria}
}

// Refresh issues a discover request for the current criteria
func (s *State) Refresh() Request {
	return s.issue(RequestDiscover)
}

// SetSearchText updates the search text. Returns a discover request
// and true if the value changed.
func (s *State) SetSearchText(text string) (Request, bool) {
	if text == s.Criteria.SearchText {
		return Request{}, false
	}
	s.Criteria.SearchText = text
	return s.issue(RequestDiscover), true
}

// SetSortKey updates the sort key. Invalid or unchanged keys issue nothing.
func (s *State) SetSortKey(key domain.SortKey) (Request, bool) {
	if !key.Valid() || key == s.Criteria.SortKey {
		return Request{}, false
	}
	s.Criteria.SortKey = key
	return s.issue(RequestDiscover), true
}

// SetGenre updates the genre filter (domain.AllGenres clears it)
func (s *State) SetGenre(id int) (Request, bool) {
	if id < 0 || id == s.Criteria.GenreID {
		return Request{}, false
	}
	s.Criteria.GenreID = id
	return s.issue(RequestDiscover), true
}

// SubmitSearch issues a search request using only the current search text
func (s *State) SubmitSearch() Request {
	return s.issue(RequestSearch)
}

// IsLatest reports whether seq belongs to the most recently issued request
func (s *State) IsLatest(seq uint64) bool {
	return seq == s.issuedSeq
}

// ApplyResults replaces the result set if seq is the latest issued request.
// Stale responses are dropped and false is returned.
func (s *State) ApplyResults(seq uint64, movies []domain.Movie) bool {
	if !s.IsLatest(seq) {
		return false
	}
	s.Results = movies
	s.Loading = false
	s.Notice = ""
	return true
}

// ApplyError records a failed fetch. The result set is left unchanged.
func (s *State) ApplyError(seq uint64, err error) bool {
	if !s.IsLatest(seq) {
		return false
	}
	s.Loading = false
	s.Notice = describeError(err)
	return true
}

// SetGenres stores the genre reference list
func (s *State) SetGenres(genres []domain.Genre) {
	s.Genres = genres
}

// GenreLabel returns the display name for the current genre filter
func (s *State) GenreLabel() string {
	if !s.Criteria.HasGenre() {
		return "All Genres"
	}
	if name := domain.GenreName(s.Genres, s.Criteria.GenreID); name != "" {
		return name
	}
	return fmt.Sprintf("Genre %d", s.Criteria.GenreID)
}

// === Favorites ===

// AddFavorite appends movie unless its ID is already a favorite. Either way a
// toast is shown; the returned sequence identifies it for HideToast.
func (s *State) AddFavorite(movie domain.Movie) (added bool, toastSeq uint64) {
	favs, added := s.Favorites.Add(movie)
	if !added {
		return false, s.ShowToast(fmt.Sprintf(`"%s" already in favorites`, movie.Title), ToastWarning)
	}
	s.Favorites = favs
	return true, s.ShowToast(fmt.Sprintf(`"%s" added to favorites`, movie.Title), ToastSuccess)
}

// RemoveFavorite drops the favorite with the given ID. Absent IDs are a no-op.
func (s *State) RemoveFavorite(id int) bool {
	favs, removed := s.Favorites.Remove(id)
	if removed {
		s.Favorites = favs
	}
	return removed
}

// IsFavorite reports whether the movie is in favorites
func (s *State) IsFavorite(id int) bool {
	return s.Favorites.Contains(id)
}

// === Description expansion ===

// ToggleDescription expands id, or collapses it if it is already expanded
func (s *State) ToggleDescription(id int) {
	if s.ExpandedID == id {
		s.ExpandedID = 0
		return
	}
	s.ExpandedID = id
}

// IsExpanded reports whether id's overview is shown in full
func (s *State) IsExpanded(id int) bool {
	return id != 0 && s.ExpandedID == id
}

// Overview returns the overview text to render for movie
func (s *State) Overview(movie domain.Movie) string {
	if s.IsExpanded(movie.ID) {
		return movie.Overview
	}
	return TruncateOverview(movie.Overview, s.overviewLimit)
}

// TruncateOverview returns the first limit characters followed by an ellipsis.
// The ellipsis is appended even when the text is shorter than limit.
func TruncateOverview(overview string, limit int) string {
	runes := []rune(overview)
	if len(runes) > limit {
		runes = runes[:limit]
	}
	return string(runes) + Ellipsis
}

// === Toast ===

// ShowToast displays a toast and returns its sequence. Any earlier toast's
// pending hide becomes a no-op.
func (s *State) ShowToast(text string, level ToastLevel) uint64 {
	s.toastSeq++
	s.Toast = Toast{Text: text, Level: level, Visible: true, Seq: s.toastSeq}
	return s.toastSeq
}

// HideToast hides the toast if seq is still the current one
func (s *State) HideToast(seq uint64) bool {
	if seq != s.toastSeq || !s.Toast.Visible {
		return false
	}
	s.Toast.Visible = false
	return true
}
