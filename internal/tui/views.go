package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/moviehouse/internal/browser"
	"github.com/mmcdole/moviehouse/internal/tui/styles"
)

// View renders the application
func (m Model) View() string {
	if !m.Ready {
		return "Loading..."
	}

	if m.ShowHelp {
		return m.renderHelp()
	}

	layout := m.calculatePaneLayout(m.Width)
	content := m.activeList().View()
	if layout.inspectorWidth > 0 {
		content = lipgloss.JoinHorizontal(lipgloss.Top, content, m.Inspector.View())
	}

	view := lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderHeader(),
		m.SearchInput.View(),
		content,
		m.renderFooter(),
	)

	// Overlay modals if visible
	if m.SortModal.IsVisible() {
		view = lipgloss.Place(m.Width, m.Height,
			lipgloss.Center, lipgloss.Center,
			m.SortModal.View())
	}
	if m.GenreModal.IsVisible() {
		view = lipgloss.Place(m.Width, m.Height,
			lipgloss.Center, lipgloss.Center,
			m.GenreModal.View())
	}

	return view
}

// renderHeader renders the logo, pane tabs and active criteria
func (m Model) renderHeader() string {
	resultsTab := fmt.Sprintf("Results (%d)", len(m.State.Results))
	favoritesTab := fmt.Sprintf("Favorites (%d)", len(m.State.Favorites))

	var tabs string
	if m.ActivePane == PaneResults {
		tabs = styles.ActiveTabStyle.Render(resultsTab) + " " + styles.InactiveTabStyle.Render(favoritesTab)
	} else {
		tabs = styles.InactiveTabStyle.Render(resultsTab) + " " + styles.ActiveTabStyle.Render(favoritesTab)
	}

	left := styles.LogoStyle.Render("MovieHouse") + " " + tabs
	right := styles.DimStyle.Render("Sort: ") + styles.SubtitleStyle.Render(m.State.Criteria.SortKey.Label()) +
		styles.DimStyle.Render("  Genre: ") + styles.SubtitleStyle.Render(m.State.GenreLabel())

	gap := m.Width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return left
	}
	return left + strings.Repeat(" ", gap) + right
}

// renderFooter renders a single-line footer: toast, notice, loading or hints
func (m Model) renderFooter() string {
	var left string
	switch {
	case m.State.Toast.Visible:
		left = renderToast(m.State.Toast)
	case m.State.Notice != "":
		left = styles.ErrorStyle.Render(m.State.Notice)
	case m.State.Loading:
		left = RenderSpinner(m.SpinnerFrame) + " " + styles.DimStyle.Render("Loading...")
	default:
		left = hint("a", "Add") + "  " + hint("x", "Remove") + "  " + hint("enter", "Read More") + "  " + hint("o", "Open")
	}

	right := hint("?", "help")

	gap := m.Width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}
	return left + strings.Repeat(" ", gap) + right
}

func hint(k, desc string) string {
	return styles.AccentStyle.Render(k) + styles.DimStyle.Render(" "+desc)
}

func renderToast(t browser.Toast) string {
	switch t.Level {
	case browser.ToastWarning:
		return styles.ToastWarningStyle.Render(t.Text)
	case browser.ToastError:
		return styles.ToastErrorStyle.Render(t.Text)
	default:
		return styles.ToastSuccessStyle.Render(t.Text)
	}
}

// renderHelp renders the help screen from the key map
func (m Model) renderHelp() string {
	var b strings.Builder
	for i, section := range helpSections() {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(styles.TitleStyle.Render(strings.ToUpper(section.Title)))
		b.WriteString("\n")
		for _, binding := range section.Bindings {
			h := binding.Help()
			b.WriteString("  ")
			b.WriteString(styles.HelpKeyStyle.Render(styles.Pad(h.Key, 10)))
			b.WriteString(styles.HelpDescStyle.Render(h.Desc))
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")
	b.WriteString(styles.DimStyle.Render("Press ? or esc to return..."))

	return lipgloss.Place(m.Width, m.Height,
		lipgloss.Center, lipgloss.Center,
		styles.ModalStyle.Render(b.String()))
}

// RenderSpinner renders a loading spinner frame
func RenderSpinner(frame int) string {
	return styles.AccentStyle.Render(styles.SpinnerFrames[frame%len(styles.SpinnerFrames)])
}
