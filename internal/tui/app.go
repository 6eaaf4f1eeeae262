package tui

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/moviehouse/internal/browser"
	"github.com/mmcdole/moviehouse/internal/catalog/tmdb"
	"github.com/mmcdole/moviehouse/internal/domain"
	"github.com/mmcdole/moviehouse/internal/opener"
	"github.com/mmcdole/moviehouse/internal/service"
	"github.com/mmcdole/moviehouse/internal/tui/components"
	"github.com/mmcdole/moviehouse/internal/tui/styles"
)

// Pane identifies which list has focus
type Pane int

const (
	PaneResults Pane = iota
	PaneFavorites
)

const spinnerInterval = 100 * time.Millisecond

// Options holds display and timing settings for the model
type Options struct {
	ImageBaseURL   string
	PosterSize     string
	ToastDuration  time.Duration
	RequestTimeout time.Duration
}

func (o Options) withDefaults() Options {
	if o.ToastDuration <= 0 {
		o.ToastDuration = 2 * time.Second
	}
	if o.RequestTimeout <= 0 {
		o.RequestTimeout = 30 * time.Second
	}
	return o
}

// Model is the main Bubble Tea model for the application
type Model struct {
	// Browser state; all criteria, result, favorites and toast transitions go through it
	State *browser.State
	Ready bool

	// Services
	CatalogSvc   *service.CatalogService
	FavoritesSvc *service.FavoritesService
	Opener       *opener.Opener

	// UI Components
	ResultsList   *components.MovieList
	FavoritesList *components.MovieList
	Inspector     components.Inspector
	SearchInput   textinput.Model
	SortModal     components.SortModal
	GenreModal    components.GenreModal

	ActivePane Pane
	ShowHelp   bool

	// Dimensions
	Width  int
	Height int

	SpinnerFrame int
	lastKind     browser.RequestKind

	opts Options
}

// NewModel creates a new application model
func NewModel(
	state *browser.State,
	catalogSvc *service.CatalogService,
	favoritesSvc *service.FavoritesService,
	op *opener.Opener,
	opts Options,
) Model {
	si := textinput.New()
	si.Placeholder = "search movies..."
	si.Prompt = "Search: "
	si.PromptStyle = styles.FilterPromptStyle
	si.SetValue(state.Criteria.SearchText)

	m := Model{
		State:         state,
		CatalogSvc:    catalogSvc,
		FavoritesSvc:  favoritesSvc,
		Opener:        op,
		ResultsList:   components.NewMovieList("Discover", "No movies found"),
		FavoritesList: components.NewMovieList("Favorites", "No favorites added"),
		Inspector:     components.NewInspector(),
		SearchInput:   si,
		SortModal:     components.NewSortModal(),
		GenreModal:    components.NewGenreModal(),
		opts:          opts.withDefaults(),
	}
	m.ResultsList.SetFavoriteCheck(state.IsFavorite)
	m.FavoritesList.SetFavoriteCheck(state.IsFavorite)
	m.ResultsList.SetFocused(true)
	m.ResultsList.SetLoading(true)
	m.syncFavorites()
	return m
}

// Init loads genres and issues the initial discover request
func (m Model) Init() tea.Cmd {
	req := m.State.Refresh()
	return tea.Batch(
		LoadGenresCmd(m.CatalogSvc, m.opts.RequestTimeout),
		m.fetch(req),
		TickCmd(spinnerInterval),
	)
}

// Update handles all messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Ready = true
		m.updateLayout()
		m.updateInspector()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case TickMsg:
		m.SpinnerFrame++
		if m.State.Loading {
			m.ResultsList.SetSpinnerFrame(m.SpinnerFrame)
		}
		return m, TickCmd(spinnerInterval)

	case MoviesLoadedMsg:
		if !m.State.ApplyResults(msg.Seq, msg.Movies) {
			slog.Debug("dropping stale results", "seq", msg.Seq)
			return m, nil
		}
		m.lastKind = msg.Kind
		m.ResultsList.SetMovies(m.State.Results)
		m.ResultsList.SetTitle(m.resultsTitle())
		m.updateInspector()
		return m, nil

	case MoviesFailedMsg:
		if !m.State.ApplyError(msg.Seq, msg.Err) {
			return m, nil
		}
		slog.Error("catalog request failed", "seq", msg.Seq, "error", msg.Err)
		m.ResultsList.SetLoading(false)
		return m, nil

	case GenresLoadedMsg:
		m.State.SetGenres(msg.Genres)
		m.GenreModal.SetGenres(msg.Genres)
		m.updateInspector()
		switch {
		case msg.Cached:
			return m, m.toast("Could not refresh genres, using cached list", browser.ToastWarning)
		case msg.Err != nil:
			slog.Error("failed to load genres", "error", msg.Err)
			return m, m.toast("Could not load genres", browser.ToastError)
		}
		return m, nil

	case FavoritesSavedMsg:
		if msg.Superseded {
			slog.Debug("favorites snapshot superseded", "count", msg.Count)
			return m, nil
		}
		if msg.Err != nil {
			slog.Error("failed to save favorites", "count", msg.Count, "error", msg.Err)
			return m, m.toast("Could not save favorites", browser.ToastError)
		}
		return m, nil

	case HideToastMsg:
		m.State.HideToast(msg.Seq)
		return m, nil

	case OpenedMsg:
		if msg.Err != nil {
			slog.Error("failed to open url", "url", msg.URL, "error", msg.Err)
			return m, m.toast("Could not open "+msg.URL, browser.ToastError)
		}
		return m, nil
	}

	return m, nil
}

// fetch issues the command for a catalog request
func (m *Model) fetch(req browser.Request) tea.Cmd {
	m.ResultsList.SetLoading(true)
	return FetchMoviesCmd(m.CatalogSvc, req, m.opts.RequestTimeout)
}

// toast shows a toast and schedules its hide
func (m *Model) toast(text string, level browser.ToastLevel) tea.Cmd {
	seq := m.State.ShowToast(text, level)
	return HideToastCmd(seq, m.opts.ToastDuration)
}

// activeList returns the list for the focused pane
func (m Model) activeList() *components.MovieList {
	if m.ActivePane == PaneFavorites {
		return m.FavoritesList
	}
	return m.ResultsList
}

// selectedMovie returns the movie under the cursor in the focused pane
func (m Model) selectedMovie() (domain.Movie, bool) {
	return m.activeList().Selected()
}

func (m *Model) switchPane() {
	if m.ActivePane == PaneResults {
		m.ActivePane = PaneFavorites
	} else {
		m.ActivePane = PaneResults
	}
	m.ResultsList.SetFocused(m.ActivePane == PaneResults)
	m.FavoritesList.SetFocused(m.ActivePane == PaneFavorites)
	m.updateInspector()
}

// addFavorite adds the selected movie and persists on change
func (m *Model) addFavorite() tea.Cmd {
	movie, ok := m.selectedMovie()
	if !ok {
		return nil
	}
	added, seq := m.State.AddFavorite(movie)
	cmds := []tea.Cmd{HideToastCmd(seq, m.opts.ToastDuration)}
	if added {
		m.syncFavorites()
		cmds = append(cmds, SaveFavoritesCmd(m.FavoritesSvc, m.State.Favorites))
	}
	return tea.Batch(cmds...)
}

// removeFavorite removes the selected movie from favorites if present
func (m *Model) removeFavorite() tea.Cmd {
	movie, ok := m.selectedMovie()
	if !ok || !m.State.RemoveFavorite(movie.ID) {
		return nil
	}
	m.syncFavorites()
	return SaveFavoritesCmd(m.FavoritesSvc, m.State.Favorites)
}

// openSelected opens the poster, or the catalog page when there is none
func (m *Model) openSelected() tea.Cmd {
	movie, ok := m.selectedMovie()
	if !ok || m.Opener == nil {
		return nil
	}
	url := movie.PosterURL(m.opts.ImageBaseURL, m.opts.PosterSize)
	if url == "" {
		url = tmdb.MoviePageURL(movie.ID)
	}
	return OpenURLCmd(m.Opener, url)
}

// syncFavorites pushes the favorites collection into its list
func (m *Model) syncFavorites() {
	m.FavoritesList.SyncMovies(m.State.Favorites)
	m.FavoritesList.SetTitle(fmt.Sprintf("Favorites (%d)", len(m.State.Favorites)))
	m.updateInspector()
}

func (m Model) resultsTitle() string {
	if m.lastKind == browser.RequestSearch {
		return fmt.Sprintf("Search: %s (%d)", m.State.Criteria.SearchText, len(m.State.Results))
	}
	return fmt.Sprintf("Discover (%d)", len(m.State.Results))
}

// updateInspector projects the selected movie into the inspector
func (m *Model) updateInspector() {
	movie, ok := m.selectedMovie()
	if !ok {
		m.Inspector.SetDetail(nil)
		return
	}

	var genres []string
	for _, id := range movie.GenreIDs {
		if name := domain.GenreName(m.State.Genres, id); name != "" {
			genres = append(genres, name)
		}
	}

	m.Inspector.SetDetail(&components.MovieDetail{
		Movie:     movie,
		Overview:  m.State.Overview(movie),
		Expanded:  m.State.IsExpanded(movie.ID),
		Favorite:  m.State.IsFavorite(movie.ID),
		PosterURL: movie.PosterURL(m.opts.ImageBaseURL, m.opts.PosterSize),
		Genres:    genres,
	})
}
