package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/moviehouse/internal/domain"
	"github.com/mmcdole/moviehouse/internal/tui/styles"
	"github.com/sahilm/fuzzy"
)

// Layout constants for list panes
const (
	// Border adds 1 char on each side (left+right for width, top+bottom for height)
	BorderWidth  = 2
	BorderHeight = 2

	// Scroll indicators ("↑ more" and "↓ more") each take 1 line
	ScrollIndicatorLines = 2
)

// MovieList is a scrollable, filterable list of movies
type MovieList struct {
	movies []domain.Movie

	// Selection
	cursor     int
	offset     int
	maxVisible int

	// Dimensions
	width   int
	height  int
	focused bool

	title      string
	emptyText  string
	isFavorite func(id int) bool

	// Loading state
	loading      bool
	spinnerFrame int

	// Filter state
	filterActive bool
	filterInput  textinput.Model
	filterQuery  string
	filteredIdx  []int // indices into movies
}

// NewMovieList creates an empty list with the given title
func NewMovieList(title, emptyText string) *MovieList {
	ti := textinput.New()
	ti.Placeholder = "type to filter..."
	ti.Prompt = "/ "
	ti.PromptStyle = styles.FilterPromptStyle
	ti.TextStyle = styles.FilterStyle

	return &MovieList{
		title:       title,
		emptyText:   emptyText,
		filterInput: ti,
	}
}

// SetFavoriteCheck sets the predicate used to mark favorite rows
func (c *MovieList) SetFavoriteCheck(fn func(id int) bool) {
	c.isFavorite = fn
}

// Update handles navigation and filter keys
func (c *MovieList) Update(msg tea.Msg) tea.Cmd {
	// Handle filter input when active AND focused (typing mode)
	if c.filterActive && c.filterInput.Focused() {
		if msg, ok := msg.(tea.KeyMsg); ok {
			switch msg.String() {
			case "esc":
				c.clearFilter()
				return nil
			case "enter":
				// Accept filter, blur input to allow navigation
				c.filterInput.Blur()
				return nil
			case "backspace":
				if c.filterInput.Value() == "" {
					c.clearFilter()
					return nil
				}
			}
		}

		var cmd tea.Cmd
		c.filterInput, cmd = c.filterInput.Update(msg)
		c.applyFilter()
		return cmd
	}

	count := c.ItemCount()
	if count == 0 {
		return nil
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "j", "down":
			if c.cursor < count-1 {
				c.cursor++
				c.ensureVisible()
			}
		case "k", "up":
			if c.cursor > 0 {
				c.cursor--
				c.ensureVisible()
			}
		case "home":
			c.cursor = 0
			c.offset = 0
		case "end":
			c.cursor = count - 1
			c.ensureVisible()
		case "ctrl+d", "pgdown":
			c.cursor += c.maxVisible / 2
			if c.cursor >= count {
				c.cursor = count - 1
			}
			c.ensureVisible()
		case "ctrl+u", "pgup":
			c.cursor -= c.maxVisible / 2
			if c.cursor < 0 {
				c.cursor = 0
			}
			c.ensureVisible()
		}
	}
	return nil
}

// View renders the list inside its border
func (c *MovieList) View() string {
	style := styles.InactiveBorder
	if c.focused {
		style = styles.ActiveBorder
	}

	frameW, frameH := style.GetFrameSize()
	return style.
		Width(c.width - frameW).
		Height(c.height - frameH).
		Render(c.renderContent())
}

// SetSize sets the outer dimensions including the border
func (c *MovieList) SetSize(width, height int) {
	c.width = width
	c.height = height
	c.recalcMaxVisible()
	c.ensureVisible()
}

func (c *MovieList) SetFocused(focused bool) { c.focused = focused }
func (c *MovieList) SetTitle(title string)   { c.title = title }
func (c *MovieList) SetLoading(loading bool) { c.loading = loading }

// SetSpinnerFrame updates the spinner animation frame
func (c *MovieList) SetSpinnerFrame(frame int) {
	c.spinnerFrame = frame
}

// SetMovies replaces the list contents and resets selection and filter
func (c *MovieList) SetMovies(movies []domain.Movie) {
	c.loading = false
	c.movies = movies
	c.cursor = 0
	c.offset = 0
	c.clearFilter()
}

// SyncMovies replaces the contents but keeps the cursor near its old
// position. Used for the favorites list after a removal.
func (c *MovieList) SyncMovies(movies []domain.Movie) {
	c.movies = movies
	if c.filterActive {
		c.applyFilterKeepCursor()
	}
	c.SetSelectedIndex(c.cursor)
}

// Movies returns the unfiltered contents
func (c *MovieList) Movies() []domain.Movie {
	return c.movies
}

// Selected returns the movie under the cursor
func (c *MovieList) Selected() (domain.Movie, bool) {
	count := c.ItemCount()
	if count == 0 || c.cursor >= count {
		return domain.Movie{}, false
	}
	return c.movies[c.mapIndex(c.cursor)], true
}

func (c *MovieList) SelectedIndex() int {
	return c.cursor
}

func (c *MovieList) SetSelectedIndex(idx int) {
	max := c.ItemCount() - 1
	if max < 0 {
		c.cursor = 0
		c.offset = 0
		return
	}
	if idx < 0 {
		idx = 0
	}
	if idx > max {
		idx = max
	}
	c.cursor = idx
	c.ensureVisible()
}

// ItemCount returns the number of visible (filtered) items
func (c *MovieList) ItemCount() int {
	if c.filteredIdx != nil {
		return len(c.filteredIdx)
	}
	return len(c.movies)
}

// ToggleFilter activates the filter input
func (c *MovieList) ToggleFilter() {
	c.filterActive = true
	c.filterInput.Focus()
	c.recalcMaxVisible()
}

// IsFiltering returns true if filter mode is active
func (c *MovieList) IsFiltering() bool {
	return c.filterActive
}

// IsFilterTyping returns true if filter is active AND input is focused
func (c *MovieList) IsFilterTyping() bool {
	return c.filterActive && c.filterInput.Focused()
}

// ClearFilter deactivates the filter and shows all items
func (c *MovieList) ClearFilter() {
	c.clearFilter()
}

// SetFilterQuery applies a filter without going through key input
func (c *MovieList) SetFilterQuery(query string) {
	c.filterActive = true
	c.filterInput.SetValue(query)
	c.applyFilter()
	c.recalcMaxVisible()
}

func (c *MovieList) recalcMaxVisible() {
	// Reserve space for title line and scroll indicators
	interiorHeight := c.height - BorderHeight
	c.maxVisible = interiorHeight - ScrollIndicatorLines - 1
	if c.filterActive {
		c.maxVisible--
	}
	if c.maxVisible < 1 {
		c.maxVisible = 1
	}
}

func (c *MovieList) ensureVisible() {
	if c.maxVisible <= 0 {
		return
	}
	if c.cursor < c.offset {
		c.offset = c.cursor
	}
	if c.cursor >= c.offset+c.maxVisible {
		c.offset = c.cursor - c.maxVisible + 1
	}
}

func (c *MovieList) clearFilter() {
	c.filterActive = false
	c.filterQuery = ""
	c.filteredIdx = nil
	c.filterInput.SetValue("")
	c.filterInput.Blur()
	c.recalcMaxVisible()
}

func (c *MovieList) applyFilter() {
	c.applyFilterKeepCursor()
	c.cursor = 0
	c.offset = 0
}

func (c *MovieList) applyFilterKeepCursor() {
	query := c.filterInput.Value()
	c.filterQuery = query

	if query == "" {
		c.filteredIdx = nil
		return
	}

	titles := make([]string, len(c.movies))
	for i, m := range c.movies {
		titles[i] = strings.ToLower(m.Title)
	}

	matches := fuzzy.Find(strings.ToLower(query), titles)

	c.filteredIdx = make([]int, len(matches))
	for i, match := range matches {
		c.filteredIdx[i] = match.Index
	}
}

func (c *MovieList) mapIndex(i int) int {
	if c.filteredIdx != nil && i < len(c.filteredIdx) {
		return c.filteredIdx[i]
	}
	return i
}

// Rendering

func (c *MovieList) renderContent() string {
	itemWidth := c.width - BorderWidth
	if itemWidth < 10 {
		itemWidth = 10
	}

	titleLine := styles.AccentStyle.Render(styles.Truncate(c.title, itemWidth))

	if c.loading && len(c.movies) == 0 {
		spinner := styles.SpinnerFrames[c.spinnerFrame%len(styles.SpinnerFrames)]
		loadingLine := styles.DimStyle.Render(spinner + " Loading...")
		return titleLine + "\n" + " " + "\n" + loadingLine + "\n" + " "
	}

	count := c.ItemCount()
	if count == 0 {
		emptyMsg := styles.DimStyle.Render(c.emptyText)
		if c.filterActive && c.filterQuery != "" {
			emptyMsg = styles.DimStyle.Render("No matches")
		}
		content := titleLine + "\n" + " " + "\n" + emptyMsg + "\n" + " "
		if c.filterActive {
			content += "\n" + c.renderFilterBar()
		}
		return content
	}

	end := c.offset + c.maxVisible
	if end > count {
		end = count
	}

	lines := make([]string, 0, end-c.offset)
	for i := c.offset; i < end; i++ {
		lines = append(lines, c.renderMovieItem(c.movies[c.mapIndex(i)], i == c.cursor, itemWidth))
	}

	// Always reserve the indicator lines to prevent layout shifts
	header := " "
	if c.offset > 0 {
		header = styles.DimStyle.Render("↑ more")
	}
	footer := " "
	if end < count {
		footer = styles.DimStyle.Render("↓ more")
	}

	content := titleLine + "\n" + header + "\n" + strings.Join(lines, "\n") + "\n" + footer
	if c.filterActive {
		content += "\n" + c.renderFilterBar()
	}
	return content
}

func (c *MovieList) renderMovieItem(movie domain.Movie, selected bool, width int) string {
	marker := " "
	markerFg := styles.Accent
	if c.isFavorite != nil && c.isFavorite(movie.ID) {
		marker = styles.HeartChar
	}

	rating := movie.FormattedRating()
	ratingFg := styles.Gold

	// width - marker(1) - space(1) - space(1) - rating - margins(2)
	availableForTitle := width - 5 - lipgloss.Width(rating)
	if availableForTitle < 5 {
		availableForTitle = 5
	}
	title := styles.Pad(movie.DisplayTitle(), availableForTitle)

	parts := []styles.RowPart{
		{Text: marker, Foreground: &markerFg},
		{Text: " " + title, Foreground: nil},
		{Text: " " + rating, Foreground: &ratingFg},
	}

	return styles.RenderListRow(parts, selected, width)
}

func (c *MovieList) renderFilterBar() string {
	input := c.filterInput.View()
	if c.filterQuery == "" {
		return input
	}
	return input + styles.DimStyle.Render(fmt.Sprintf(" [%d/%d]", c.ItemCount(), len(c.movies)))
}
