package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"expodir/internal/ui/input/types"
)

// PanelMode is the industry or country checklist. Space toggles the term
// under the cursor; the panel stays open until esc.
type PanelMode struct {
	mode     types.Mode
	name     string
	closeKey string
}

func NewIndustryPanelMode() *PanelMode {
	return &PanelMode{mode: types.ModeIndustryPanel, name: "industries", closeKey: "i"}
}

func NewCountryPanelMode() *PanelMode {
	return &PanelMode{mode: types.ModeCountryPanel, name: "countries", closeKey: "c"}
}

func (m *PanelMode) Name() string {
	return m.name
}

func (m *PanelMode) Enter(ctx types.Context) []types.Action {
	return []types.Action{types.PanelNavigateAction{Direction: "home"}}
}

func (m *PanelMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *PanelMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return []types.Action{types.QuitAction{Force: true}}, true
	case tea.KeyEsc:
		return []types.Action{types.ChangeModeAction{Mode: types.ModeNormal}}, true
	case tea.KeyUp:
		return []types.Action{types.PanelNavigateAction{Direction: "up"}}, true
	case tea.KeyDown:
		return []types.Action{types.PanelNavigateAction{Direction: "down"}}, true
	case tea.KeyPgUp:
		return []types.Action{types.PanelNavigateAction{Direction: "pageup"}}, true
	case tea.KeyPgDown:
		return []types.Action{types.PanelNavigateAction{Direction: "pagedown"}}, true
	case tea.KeyHome:
		return []types.Action{types.PanelNavigateAction{Direction: "home"}}, true
	case tea.KeyEnd:
		return []types.Action{types.PanelNavigateAction{Direction: "end"}}, true
	case tea.KeySpace, tea.KeyEnter:
		return []types.Action{types.TogglePanelItemAction{}}, true
	}

	switch msg.String() {
	case "j":
		return []types.Action{types.PanelNavigateAction{Direction: "down"}}, true
	case "k":
		return []types.Action{types.PanelNavigateAction{Direction: "up"}}, true
	case "g":
		return []types.Action{types.PanelNavigateAction{Direction: "home"}}, true
	case "G":
		return []types.Action{types.PanelNavigateAction{Direction: "end"}}, true
	case " ", "x":
		return []types.Action{types.TogglePanelItemAction{}}, true
	case "q", m.closeKey:
		return []types.Action{types.ChangeModeAction{Mode: types.ModeNormal}}, true
	}
	return nil, true
}
