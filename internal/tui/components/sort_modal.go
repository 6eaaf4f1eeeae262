package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/moviehouse/internal/domain"
	"github.com/mmcdole/moviehouse/internal/tui/styles"
)

const sortModalWidth = 24

// SortModal is a small popup for choosing the catalog sort order
type SortModal struct {
	visible bool
	options []domain.SortKey
	cursor  int
	active  domain.SortKey
}

// NewSortModal creates a new sort modal
func NewSortModal() SortModal {
	return SortModal{options: domain.SortKeys()}
}

// Show displays the modal with the cursor on the active sort key
func (m *SortModal) Show(active domain.SortKey) {
	m.visible = true
	m.active = active
	m.cursor = 0
	for i, opt := range m.options {
		if opt == active {
			m.cursor = i
			break
		}
	}
}

// Hide dismisses the modal
func (m *SortModal) Hide() {
	m.visible = false
}

// IsVisible returns whether the modal is shown
func (m SortModal) IsVisible() bool {
	return m.visible
}

// HandleKey processes a key press, returns (handled, selection).
// If selection is non-nil, the user confirmed a choice.
func (m *SortModal) HandleKey(key string) (handled bool, selection *domain.SortKey) {
	if !m.visible {
		return false, nil
	}

	switch key {
	case "j", "down":
		if m.cursor < len(m.options)-1 {
			m.cursor++
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case "enter":
		chosen := m.options[m.cursor]
		m.visible = false
		return true, &chosen
	case "esc", "s":
		m.visible = false
	}

	return true, nil // consume all keys when visible
}

// View renders the sort modal
func (m SortModal) View() string {
	if !m.visible || len(m.options) == 0 {
		return ""
	}

	lines := make([]string, 0, len(m.options))
	for i, opt := range m.options {
		lines = append(lines, renderChoice(opt.Label(), i == m.cursor, opt == m.active, sortModalWidth))
	}

	return styles.ModalStyle.Render(styles.ModalTitleStyle.Render("Sort by") + "\n" + strings.Join(lines, "\n"))
}

// renderChoice renders one modal row with a check mark on the active choice
func renderChoice(label string, selected, active bool, width int) string {
	prefix := "  "
	if active {
		prefix = "✓ "
	}
	text := styles.Pad(prefix+label, width)

	switch {
	case selected:
		return lipgloss.NewStyle().Foreground(styles.White).Background(styles.SlateLight).Render(text)
	case active:
		return lipgloss.NewStyle().Foreground(styles.Accent).Render(text)
	default:
		return lipgloss.NewStyle().Foreground(styles.LightGray).Render(text)
	}
}
