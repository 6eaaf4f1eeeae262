package tui

import (
	"github.com/mmcdole/moviehouse/internal/browser"
	"github.com/mmcdole/moviehouse/internal/domain"
)

// Message types for the TUI

// MoviesLoadedMsg carries the response to a catalog request
type MoviesLoadedMsg struct {
	Seq    uint64
	Kind   browser.RequestKind
	Movies []domain.Movie
}

// MoviesFailedMsg signals that a catalog request failed
type MoviesFailedMsg struct {
	Seq uint64
	Err error
}

// GenresLoadedMsg carries the genre reference list
type GenresLoadedMsg struct {
	Genres []domain.Genre
	Cached bool // served from local cache after a failed fetch
	Err    error
}

// FavoritesSavedMsg reports the outcome of a favorites write
type FavoritesSavedMsg struct {
	Count      int
	Superseded bool // a newer snapshot was already written
	Err        error
}

// HideToastMsg hides the toast with the given sequence if it is still current
type HideToastMsg struct {
	Seq uint64
}

// OpenedMsg reports the outcome of opening a URL externally
type OpenedMsg struct {
	URL string
	Err error
}

// TickMsg is a general tick message for animations
type TickMsg struct{}
