package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// handleKeyMsg handles keyboard input
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.ShowHelp {
		if key.Matches(msg, Keys.Escape, Keys.Help, Keys.Quit) {
			m.ShowHelp = false
		}
		return m, nil
	}

	// Route to active modal or input if any
	if handled, newModel, cmd := m.routeToModal(msg); handled {
		return newModel, cmd
	}

	list := m.activeList()

	switch {
	case key.Matches(msg, Keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, Keys.Help):
		m.ShowHelp = true
		return m, nil

	case key.Matches(msg, Keys.Escape):
		if list.IsFiltering() {
			list.ClearFilter()
			m.updateInspector()
		}
		return m, nil

	case key.Matches(msg, Keys.Filter):
		list.ToggleFilter()
		return m, nil

	case key.Matches(msg, Keys.SwitchPane):
		m.switchPane()
		return m, nil

	case key.Matches(msg, Keys.Search):
		cmd := m.SearchInput.Focus()
		return m, cmd

	case key.Matches(msg, Keys.Sort):
		m.SortModal.Show(m.State.Criteria.SortKey)
		return m, nil

	case key.Matches(msg, Keys.Genre):
		m.GenreModal.Show(m.State.Criteria.GenreID)
		return m, nil

	case key.Matches(msg, Keys.Refresh):
		return m, m.fetch(m.State.Refresh())

	case key.Matches(msg, Keys.Toggle):
		if movie, ok := m.selectedMovie(); ok {
			m.State.ToggleDescription(movie.ID)
			m.updateInspector()
		}
		return m, nil

	case key.Matches(msg, Keys.AddFavorite):
		cmd := m.addFavorite()
		return m, cmd

	case key.Matches(msg, Keys.RemoveFavorite):
		cmd := m.removeFavorite()
		return m, cmd

	case key.Matches(msg, Keys.Open):
		return m, m.openSelected()

	case key.Matches(msg, Keys.InfoDown):
		m.Inspector.ScrollDown(1)
		return m, nil

	case key.Matches(msg, Keys.InfoUp):
		m.Inspector.ScrollUp(1)
		return m, nil
	}

	// Everything else is list navigation
	cmd := list.Update(msg)
	m.updateInspector()
	return m, cmd
}

// routeToModal routes key input to the active modal, search input or list
// filter. Returns handled=true if input was consumed.
func (m Model) routeToModal(msg tea.KeyMsg) (bool, Model, tea.Cmd) {
	if m.SortModal.IsVisible() {
		_, selection := m.SortModal.HandleKey(msg.String())
		if selection == nil {
			return true, m, nil
		}
		req, changed := m.State.SetSortKey(*selection)
		if !changed {
			return true, m, nil
		}
		return true, m, m.fetch(req)
	}

	if m.GenreModal.IsVisible() {
		_, selection := m.GenreModal.HandleKey(msg.String())
		if selection == nil {
			return true, m, nil
		}
		req, changed := m.State.SetGenre(*selection)
		if !changed {
			return true, m, nil
		}
		return true, m, m.fetch(req)
	}

	if m.SearchInput.Focused() {
		return m.handleSearchInput(msg)
	}

	if list := m.activeList(); list.IsFilterTyping() {
		cmd := list.Update(msg)
		m.updateInspector()
		return true, m, cmd
	}

	return false, m, nil
}

// handleSearchInput edits the search text. Every edit issues a discover
// request; enter submits a text search.
func (m Model) handleSearchInput(msg tea.KeyMsg) (bool, Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.SearchInput.Blur()
		return true, m, nil
	case "enter":
		m.SearchInput.Blur()
		return true, m, m.fetch(m.State.SubmitSearch())
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.SearchInput, cmd = m.SearchInput.Update(msg)
	cmds = append(cmds, cmd)

	if req, changed := m.State.SetSearchText(m.SearchInput.Value()); changed {
		cmds = append(cmds, m.fetch(req))
	}
	return true, m, tea.Batch(cmds...)
}
