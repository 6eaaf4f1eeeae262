package tui

// Layout proportions
const (
	ListColumnPercent = 55 // list pane, the inspector takes the rest
	MinColumnWidth    = 20

	// Vertical chrome: header, search bar and footer lines
	ChromeHeight = 3
)

// paneLayout holds calculated widths for the View
type paneLayout struct {
	listWidth      int
	inspectorWidth int // 0 if not shown
}

// calculatePaneLayout splits the available width between list and inspector
func (m Model) calculatePaneLayout(availableWidth int) paneLayout {
	if availableWidth < MinColumnWidth*2 {
		return paneLayout{listWidth: availableWidth}
	}
	listWidth := max(availableWidth*ListColumnPercent/100, MinColumnWidth)
	return paneLayout{
		listWidth:      listWidth,
		inspectorWidth: availableWidth - listWidth,
	}
}

// updateLayout updates component sizes based on window size
func (m *Model) updateLayout() {
	if m.Width == 0 || m.Height == 0 {
		return
	}

	contentHeight := max(m.Height-ChromeHeight, 5)
	layout := m.calculatePaneLayout(m.Width)

	m.ResultsList.SetSize(layout.listWidth, contentHeight)
	m.FavoritesList.SetSize(layout.listWidth, contentHeight)
	if layout.inspectorWidth > 0 {
		m.Inspector.SetSize(layout.inspectorWidth, contentHeight)
	}
	m.SearchInput.Width = max(m.Width-12, 10)
}
