package components

import (
	"strings"

	"github.com/mmcdole/moviehouse/internal/domain"
	"github.com/mmcdole/moviehouse/internal/tui/styles"
)

const (
	genreModalWidth   = 24
	genreModalMaxRows = 12
)

// GenreModal is a scrollable popup for choosing the genre filter.
// The first row is always "All Genres".
type GenreModal struct {
	visible bool
	genres  []domain.Genre
	cursor  int
	offset  int
	active  int
}

// NewGenreModal creates a new genre modal
func NewGenreModal() GenreModal {
	return GenreModal{}
}

// SetGenres replaces the selectable genres
func (m *GenreModal) SetGenres(genres []domain.Genre) {
	m.genres = genres
	if m.cursor > len(genres) {
		m.cursor = len(genres)
	}
}

// Show displays the modal with the cursor on the active genre
func (m *GenreModal) Show(active int) {
	m.visible = true
	m.active = active
	m.cursor = 0
	for i, g := range m.genres {
		if g.ID == active {
			m.cursor = i + 1
			break
		}
	}
	m.ensureVisible()
}

// Hide dismisses the modal
func (m *GenreModal) Hide() {
	m.visible = false
}

// IsVisible returns whether the modal is shown
func (m GenreModal) IsVisible() bool {
	return m.visible
}

func (m *GenreModal) rowCount() int {
	return len(m.genres) + 1
}

func (m *GenreModal) idAt(row int) int {
	if row == 0 {
		return domain.AllGenres
	}
	return m.genres[row-1].ID
}

func (m *GenreModal) ensureVisible() {
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+genreModalMaxRows {
		m.offset = m.cursor - genreModalMaxRows + 1
	}
}

// HandleKey processes a key press, returns (handled, selection).
// If selection is non-nil, it holds the chosen genre ID (domain.AllGenres clears).
func (m *GenreModal) HandleKey(key string) (handled bool, selection *int) {
	if !m.visible {
		return false, nil
	}

	switch key {
	case "j", "down":
		if m.cursor < m.rowCount()-1 {
			m.cursor++
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case "home":
		m.cursor = 0
	case "end":
		m.cursor = m.rowCount() - 1
	case "enter":
		id := m.idAt(m.cursor)
		m.visible = false
		return true, &id
	case "esc", "g":
		m.visible = false
		return true, nil
	}
	m.ensureVisible()

	return true, nil
}

// View renders the genre modal
func (m GenreModal) View() string {
	if !m.visible {
		return ""
	}

	end := m.offset + genreModalMaxRows
	if end > m.rowCount() {
		end = m.rowCount()
	}

	var lines []string
	if m.offset > 0 {
		lines = append(lines, styles.DimStyle.Render("↑ more"))
	}
	for row := m.offset; row < end; row++ {
		label := "All Genres"
		if row > 0 {
			label = m.genres[row-1].Name
		}
		lines = append(lines, renderChoice(label, row == m.cursor, m.idAt(row) == m.active, genreModalWidth))
	}
	if end < m.rowCount() {
		lines = append(lines, styles.DimStyle.Render("↓ more"))
	}
	if len(m.genres) == 0 {
		lines = append(lines, styles.DimStyle.Render("  (genres unavailable)"))
	}

	return styles.ModalStyle.Render(styles.ModalTitleStyle.Render("Genre") + "\n" + strings.Join(lines, "\n"))
}
