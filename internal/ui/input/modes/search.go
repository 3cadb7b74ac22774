package modes

import (
	"github.com/charmbracelet/bubbles/textinput"

	"expodir/internal/ui/input/types"
)

// SearchMode edits the free-text search. Every keystroke is reported as an
// UpdateTextAction; the model debounces them.
type SearchMode struct {
	lineMode
}

func NewSearchMode(ti *textinput.Model) *SearchMode {
	return &SearchMode{
		lineMode: newLineMode(types.ModeSearch, "search", "Search: ", ti),
	}
}
