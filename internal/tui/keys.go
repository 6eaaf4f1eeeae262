package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all key bindings for the application
type KeyMap struct {
	// Navigation
	Up         key.Binding
	Down       key.Binding
	PageUp     key.Binding
	PageDown   key.Binding
	Home       key.Binding
	End        key.Binding
	SwitchPane key.Binding
	InfoDown   key.Binding
	InfoUp     key.Binding

	// Criteria
	Search key.Binding
	Sort   key.Binding
	Genre  key.Binding
	Filter key.Binding

	// Actions
	Toggle         key.Binding
	AddFavorite    key.Binding
	RemoveFavorite key.Binding
	Open           key.Binding
	Refresh        key.Binding
	Quit           key.Binding
	Help           key.Binding
	Escape         key.Binding
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "down"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup", "ctrl+u"),
			key.WithHelp("PgUp", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", "ctrl+d"),
			key.WithHelp("PgDn", "page down"),
		),
		Home: key.NewBinding(
			key.WithKeys("home"),
			key.WithHelp("home", "go to top"),
		),
		End: key.NewBinding(
			key.WithKeys("end"),
			key.WithHelp("end", "go to bottom"),
		),
		SwitchPane: key.NewBinding(
			key.WithKeys("tab", "shift+tab"),
			key.WithHelp("tab", "results/favorites"),
		),
		InfoDown: key.NewBinding(
			key.WithKeys("J"),
			key.WithHelp("J", "scroll info down"),
		),
		InfoUp: key.NewBinding(
			key.WithKeys("K"),
			key.WithHelp("K", "scroll info up"),
		),

		Search: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "search"),
		),
		Sort: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "sort"),
		),
		Genre: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "genre"),
		),
		Filter: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "filter list"),
		),

		Toggle: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "read more/less"),
		),
		AddFavorite: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add favorite"),
		),
		RemoveFavorite: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "remove favorite"),
		),
		Open: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "open poster"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel/clear"),
		),
	}
}

// Keys is the global key bindings instance
var Keys = DefaultKeyMap()

// helpSections groups bindings for the help overlay
func helpSections() []struct {
	Title    string
	Bindings []key.Binding
} {
	return []struct {
		Title    string
		Bindings []key.Binding
	}{
		{"Navigation", []key.Binding{Keys.Up, Keys.Down, Keys.PageUp, Keys.PageDown, Keys.Home, Keys.End, Keys.SwitchPane, Keys.InfoDown, Keys.InfoUp}},
		{"Browse", []key.Binding{Keys.Search, Keys.Sort, Keys.Genre, Keys.Filter, Keys.Refresh}},
		{"Movie", []key.Binding{Keys.Toggle, Keys.AddFavorite, Keys.RemoveFavorite, Keys.Open}},
		{"General", []key.Binding{Keys.Help, Keys.Escape, Keys.Quit}},
	}
}
