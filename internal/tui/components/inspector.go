package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/moviehouse/internal/domain"
	"github.com/mmcdole/moviehouse/internal/tui/styles"
)

// InspectorBorderHeight is the vertical space taken by the border
const InspectorBorderHeight = 2

// MovieDetail is everything the inspector shows for one movie
type MovieDetail struct {
	Movie     domain.Movie
	Overview  string // already truncated or expanded
	Expanded  bool
	Favorite  bool
	PosterURL string
	Genres    []string
}

// Inspector displays details for the selected movie
type Inspector struct {
	detail   *MovieDetail
	viewport viewport.Model
	width    int
	height   int
}

// NewInspector creates a new inspector component
func NewInspector() Inspector {
	return Inspector{viewport: viewport.New(0, 0)}
}

// SetDetail sets the movie to display. Scroll resets when the movie changes.
func (i *Inspector) SetDetail(detail *MovieDetail) {
	changed := detail == nil || i.detail == nil || detail.Movie.ID != i.detail.Movie.ID
	i.detail = detail
	i.refresh()
	if changed {
		i.viewport.GotoTop()
	}
}

// HasDetail returns true if there is a movie to display
func (i Inspector) HasDetail() bool {
	return i.detail != nil
}

// SetSize updates the component dimensions
func (i *Inspector) SetSize(width, height int) {
	i.width = width
	i.height = height
	i.viewport.Width = i.contentWidth()
	// Title line and the blank line under it
	i.viewport.Height = max(1, height-InspectorBorderHeight-2)
	i.refresh()
}

// ScrollDown scrolls the body by n lines
func (i *Inspector) ScrollDown(n int) {
	i.viewport.ScrollDown(n)
}

// ScrollUp scrolls the body by n lines
func (i *Inspector) ScrollUp(n int) {
	i.viewport.ScrollUp(n)
}

func (i Inspector) contentWidth() int {
	// Border takes 2 chars, leave 1 char safety margin
	return max(10, i.width-3)
}

func (i *Inspector) refresh() {
	i.viewport.SetContent(i.renderBody(i.contentWidth()))
}

// View renders the component
func (i Inspector) View() string {
	style := styles.InactiveBorder
	frameW, frameH := style.GetFrameSize()

	titleLine := styles.AccentStyle.Render(styles.Truncate("Info", i.contentWidth()))
	content := titleLine + "\n\n" + i.viewport.View()

	return style.
		Width(i.width - frameW).
		Height(i.height - frameH).
		Render(content)
}

func (i Inspector) renderBody(width int) string {
	if i.detail == nil {
		return styles.DimStyle.Render("No movie selected")
	}
	d := i.detail
	m := d.Movie

	var b strings.Builder

	title := m.Title
	if d.Favorite {
		title = styles.Heart + " " + title
	}
	b.WriteString(styles.TitleStyle.Width(width).Render(title))
	b.WriteString("\n")

	var meta []string
	if y := m.Year(); y > 0 {
		meta = append(meta, fmt.Sprintf("%d", y))
	}
	meta = append(meta, styles.RatingStyle.Render("★ "+m.FormattedRating()))
	b.WriteString(strings.Join(meta, styles.DimStyle.Render(" • ")))
	b.WriteString("\n")

	if len(d.Genres) > 0 {
		b.WriteString(styles.SubtitleStyle.Width(width).Render(strings.Join(d.Genres, ", ")))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.Overview == "" {
		b.WriteString(styles.DimStyle.Render("No overview available"))
	} else {
		b.WriteString(lipgloss.NewStyle().Width(width).Render(d.Overview))
		b.WriteString("\n")
		hint := "enter: Read More"
		if d.Expanded {
			hint = "enter: Show Less"
		}
		b.WriteString(styles.DimStyle.Render(hint))
	}
	b.WriteString("\n\n")

	if d.PosterURL != "" {
		b.WriteString(styles.DimStyle.Render("Poster"))
		b.WriteString("\n")
		b.WriteString(styles.SubtitleStyle.Width(width).Render(d.PosterURL))
	} else {
		b.WriteString(styles.DimStyle.Render("No poster"))
	}

	return b.String()
}
