package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/moviehouse/internal/browser"
	"github.com/mmcdole/moviehouse/internal/domain"
	"github.com/mmcdole/moviehouse/internal/opener"
	"github.com/mmcdole/moviehouse/internal/service"
)

// Command factories for async operations

// FetchMoviesCmd performs a catalog request and reports it under req.Seq
func FetchMoviesCmd(svc *service.CatalogService, req browser.Request, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		var (
			movies []domain.Movie
			err    error
		)
		switch req.Kind {
		case browser.RequestSearch:
			movies, err = svc.Search(ctx, req.Criteria.SearchText)
		default:
			movies, err = svc.Discover(ctx, req.Criteria)
		}
		if err != nil {
			return MoviesFailedMsg{Seq: req.Seq, Err: err}
		}
		return MoviesLoadedMsg{Seq: req.Seq, Kind: req.Kind, Movies: movies}
	}
}

// LoadGenresCmd loads the genre reference list
func LoadGenresCmd(svc *service.CatalogService, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		genres, cached, err := svc.LoadGenres(ctx)
		return GenresLoadedMsg{Genres: genres, Cached: cached, Err: err}
	}
}

// SaveFavoritesCmd persists a snapshot of the favorites collection. The save
// version is staged when the command is built, so a snapshot that finishes
// after a newer one is skipped instead of overwriting it.
func SaveFavoritesCmd(svc *service.FavoritesService, favs domain.Favorites) tea.Cmd {
	snapshot := make(domain.Favorites, len(favs))
	copy(snapshot, favs)
	version := svc.Stage()
	return func() tea.Msg {
		written, err := svc.SaveVersion(version, snapshot)
		return FavoritesSavedMsg{Count: len(snapshot), Superseded: !written, Err: err}
	}
}

// HideToastCmd hides the toast with the given sequence after delay
func HideToastCmd(seq uint64, delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return HideToastMsg{Seq: seq}
	})
}

// OpenURLCmd opens url with the external opener
func OpenURLCmd(o *opener.Opener, url string) tea.Cmd {
	return func() tea.Msg {
		return OpenedMsg{URL: url, Err: o.Open(url)}
	}
}

// TickCmd returns a command that sends a tick after the given duration
func TickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return TickMsg{}
	})
}
