package modes

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"expodir/internal/ui/input/types"
)

var (
	lineSubmit = key.NewBinding(key.WithKeys("enter"))
	lineCancel = key.NewBinding(key.WithKeys("esc"))
	lineQuit   = key.NewBinding(key.WithKeys("ctrl+c"))
)

// lineMode edits a single line in the shared text input. Keys it does not
// bind fall through to the input itself.
type lineMode struct {
	mode   types.Mode
	name   string
	prompt string
	input  *textinput.Model
}

func newLineMode(mode types.Mode, name, prompt string, ti *textinput.Model) lineMode {
	return lineMode{mode: mode, name: name, prompt: prompt, input: ti}
}

func (m lineMode) Name() string { return m.name }

// Prompt is the label shown in front of the input line
func (m lineMode) Prompt() string { return m.prompt }

func (m lineMode) value() string {
	if m.input == nil {
		return ""
	}
	return m.input.Value()
}

func (m lineMode) Enter(types.Context) []types.Action {
	if m.input != nil {
		m.input.Prompt = ""
	}
	return nil
}

func (m lineMode) Exit(types.Context) []types.Action {
	if m.input != nil {
		m.input.Blur()
	}
	return nil
}

func (m lineMode) HandleKey(msg tea.KeyMsg, _ types.Context) ([]types.Action, bool) {
	back := types.ChangeModeAction{Mode: types.ModeNormal}

	switch {
	case key.Matches(msg, lineQuit):
		return []types.Action{types.QuitAction{Force: true}}, true
	case key.Matches(msg, lineCancel):
		return []types.Action{types.CancelTextAction{Mode: m.mode}, back}, true
	case key.Matches(msg, lineSubmit):
		return []types.Action{types.SubmitTextAction{Text: m.value(), Mode: m.mode}, back}, true
	}
	return nil, false
}
