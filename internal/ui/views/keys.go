package views

import "github.com/charmbracelet/bubbles/key"

// KeyMap describes the bindings shown in the help line. Key handling
// itself lives in the input modes.
type KeyMap struct {
	Up        key.Binding
	Down      key.Binding
	PrevPage  key.Binding
	NextPage  key.Binding
	FirstLast key.Binding
	GoToPage  key.Binding
	Open      key.Binding
	Search    key.Binding
	Alpha     key.Binding
	Industry  key.Binding
	Country   key.Binding
	Remove    key.Binding
	Clear     key.Binding
	Sort      key.Binding
	Retry     key.Binding
	Help      key.Binding
	Quit      key.Binding
}

// DefaultKeyMap is the built-in key binding set
var DefaultKeyMap = KeyMap{
	Up:        key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/↑", "up")),
	Down:      key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/↓", "down")),
	PrevPage:  key.NewBinding(key.WithKeys("h", "left", "p"), key.WithHelp("h/←", "prev page")),
	NextPage:  key.NewBinding(key.WithKeys("l", "right", "n"), key.WithHelp("l/→", "next page")),
	FirstLast: key.NewBinding(key.WithKeys("<", ">"), key.WithHelp("</>", "first/last page")),
	GoToPage:  key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "go to page")),
	Open:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "details")),
	Search:    key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
	Alpha:     key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "letter")),
	Industry:  key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "industries")),
	Country:   key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "countries")),
	Remove:    key.NewBinding(key.WithKeys("x", "backspace"), key.WithHelp("x", "remove filter")),
	Clear:     key.NewBinding(key.WithKeys("X"), key.WithHelp("X", "clear filters")),
	Sort:      key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sort")),
	Retry:     key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
	Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Open, k.Search, k.Alpha, k.Industry, k.Country, k.NextPage, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Open},
		{k.PrevPage, k.NextPage, k.FirstLast, k.GoToPage},
		{k.Search, k.Alpha, k.Industry, k.Country},
		{k.Remove, k.Clear, k.Sort, k.Retry},
		{k.Help, k.Quit},
	}
}

// DetailKeyMap lists the bindings of the detail view
type DetailKeyMap struct {
	Back        key.Binding
	Links       key.Binding
	OpenLink    key.Binding
	CopyEmail   key.Binding
	CopyPhone   key.Binding
	CopyWebsite key.Binding
	Description key.Binding
	Quit        key.Binding
}

// DefaultDetailKeyMap is the built-in detail view binding set
var DefaultDetailKeyMap = DetailKeyMap{
	Back:        key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "back")),
	Links:       key.NewBinding(key.WithKeys("tab", "j", "k"), key.WithHelp("tab", "next link")),
	OpenLink:    key.NewBinding(key.WithKeys("enter", "o"), key.WithHelp("enter/1-9", "open link")),
	CopyEmail:   key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "copy email")),
	CopyPhone:   key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "copy phone")),
	CopyWebsite: key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "copy website")),
	Description: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "full description")),
	Quit:        key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
}

// ShortHelp implements help.KeyMap
func (k DetailKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Back, k.Links, k.OpenLink, k.CopyEmail, k.CopyPhone, k.CopyWebsite, k.Description, k.Quit}
}

// FullHelp implements help.KeyMap
func (k DetailKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
