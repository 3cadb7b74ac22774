package search

// State holds the debounce state of the search input
type State struct {
	Pending    string // text typed but not yet committed
	HasPending bool
	Version    int // incremented on every keystroke
}

// SettledMsg is delivered when a debounce window ends. It only commits
// if Version is still the latest.
type SettledMsg struct {
	Version int
}
