package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"expodir/internal/ui/input/types"
)

// DetailMode handles keys while one exhibitor is shown in full
type DetailMode struct{}

func NewDetailMode() *DetailMode {
	return &DetailMode{}
}

func (m *DetailMode) Name() string {
	return "detail"
}

func (m *DetailMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *DetailMode) Exit(ctx types.Context) []types.Action {
	return []types.Action{types.CloseDetailAction{}}
}

func (m *DetailMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	back := types.ChangeModeAction{Mode: types.ModeNormal}

	switch msg.Type {
	case tea.KeyCtrlC:
		return []types.Action{types.QuitAction{Force: true}}, true
	case tea.KeyEsc, tea.KeyBackspace:
		return []types.Action{back}, true
	case tea.KeyUp, tea.KeyShiftTab:
		return []types.Action{types.MoveLinkCursorAction{Delta: -1}}, true
	case tea.KeyDown, tea.KeyTab:
		return []types.Action{types.MoveLinkCursorAction{Delta: 1}}, true
	case tea.KeyEnter:
		if ctx.LinkCount() > 0 {
			return []types.Action{types.OpenLinkAction{Index: -1}}, true
		}
		return nil, true
	}

	key := msg.String()
	switch key {
	case "b", "h":
		return []types.Action{back}, true
	case "k":
		return []types.Action{types.MoveLinkCursorAction{Delta: -1}}, true
	case "j":
		return []types.Action{types.MoveLinkCursorAction{Delta: 1}}, true
	case "o":
		if ctx.LinkCount() > 0 {
			return []types.Action{types.OpenLinkAction{Index: -1}}, true
		}
		return nil, true
	case "e":
		return []types.Action{types.CopyAction{Field: types.CopyEmail}}, true
	case "t":
		return []types.Action{types.CopyAction{Field: types.CopyPhone}}, true
	case "w":
		return []types.Action{types.CopyAction{Field: types.CopyWebsite}}, true
	case "d":
		return []types.Action{types.ViewDescriptionAction{}}, true
	case "?":
		return []types.Action{types.ToggleHelpAction{}}, true
	case "q":
		return []types.Action{types.QuitAction{Force: false}}, true
	}

	if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
		n := int(key[0] - '1')
		if n < ctx.LinkCount() {
			return []types.Action{types.OpenLinkAction{Index: n}}, true
		}
	}
	return nil, true
}
