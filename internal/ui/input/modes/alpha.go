package modes

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"expodir/internal/ui/input/types"
	"expodir/internal/ui/services/filter"
)

// AlphaMode drives the letter bar. A letter or digit jumps straight to it;
// arrows move the cursor and enter picks the entry under it.
type AlphaMode struct{}

func NewAlphaMode() *AlphaMode {
	return &AlphaMode{}
}

func (m *AlphaMode) Name() string {
	return "alpha"
}

func (m *AlphaMode) Enter(ctx types.Context) []types.Action {
	return []types.Action{types.SyncAlphaCursorAction{}}
}

func (m *AlphaMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *AlphaMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	normal := types.ChangeModeAction{Mode: types.ModeNormal}

	switch msg.Type {
	case tea.KeyCtrlC:
		return []types.Action{types.QuitAction{Force: true}}, true
	case tea.KeyEsc:
		return []types.Action{normal}, true
	case tea.KeyLeft:
		return []types.Action{types.MoveAlphaCursorAction{Delta: -1}}, true
	case tea.KeyRight:
		return []types.Action{types.MoveAlphaCursorAction{Delta: 1}}, true
	case tea.KeyEnter:
		return []types.Action{types.PickAlphaAction{}, normal}, true
	case tea.KeyBackspace:
		return []types.Action{types.SetAlphaAction{Letter: filter.AlphaAll}, normal}, true
	}

	key := msg.String()
	switch key {
	case "*":
		return []types.Action{types.SetAlphaAction{Letter: filter.AlphaAll}, normal}, true
	}

	if len(key) == 1 {
		letter := strings.ToUpper(key)
		for _, l := range filter.AlphaLetters {
			if l == letter {
				return []types.Action{types.SetAlphaAction{Letter: letter}, normal}, true
			}
		}
	}
	return nil, true
}
