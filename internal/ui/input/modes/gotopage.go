package modes

import (
	"github.com/charmbracelet/bubbles/textinput"

	"expodir/internal/ui/input/types"
)

// GoToPageMode reads a page number; the model validates it on submit
type GoToPageMode struct {
	lineMode
}

func NewGoToPageMode(ti *textinput.Model) *GoToPageMode {
	return &GoToPageMode{
		lineMode: newLineMode(types.ModeGoToPage, "goto", "Go to page: ", ti),
	}
}
