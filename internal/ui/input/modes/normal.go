package modes

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"expodir/internal/ui/input/types"
)

type NormalMode struct {
	lastKeyWasG bool
	lastGTime   time.Time
}

func NewNormalMode() *NormalMode {
	return &NormalMode{}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return []types.Action{types.QuitAction{Force: true}}, true

	case tea.KeyUp:
		return []types.Action{types.NavigateAction{Direction: "up"}}, true

	case tea.KeyDown:
		return []types.Action{types.NavigateAction{Direction: "down"}}, true

	case tea.KeyLeft:
		return pageMove(ctx, types.PagePrev), true

	case tea.KeyRight:
		return pageMove(ctx, types.PageNext), true

	case tea.KeyPgUp:
		return []types.Action{types.NavigateAction{Direction: "pageup"}}, true

	case tea.KeyPgDown:
		return []types.Action{types.NavigateAction{Direction: "pagedown"}}, true

	case tea.KeyHome:
		return []types.Action{types.NavigateAction{Direction: "home"}}, true

	case tea.KeyEnd:
		return []types.Action{types.NavigateAction{Direction: "end"}}, true

	case tea.KeyEnter:
		if ctx.DetailEnabled() && ctx.TotalItems() > 0 {
			return []types.Action{types.OpenDetailAction{Index: ctx.CurrentIndex()}}, true
		}
		return nil, false

	case tea.KeyBackspace:
		if ctx.BadgeCount() > 0 {
			return []types.Action{types.RemoveLastBadgeAction{}}, true
		}
		return nil, true
	}

	switch msg.String() {
	case "j":
		return []types.Action{types.NavigateAction{Direction: "down"}}, true

	case "k":
		return []types.Action{types.NavigateAction{Direction: "up"}}, true

	case "h", "p":
		return pageMove(ctx, types.PagePrev), true

	case "l", "n":
		return pageMove(ctx, types.PageNext), true

	case "<", "H":
		return []types.Action{types.PageAction{Move: types.PageFirst}}, true

	case ">", "L":
		if ctx.TotalPages() > 0 {
			return []types.Action{types.PageAction{Move: types.PageLast}}, true
		}
		return nil, true

	case ":":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeGoToPage}}, true

	case "/":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeSearch, Data: ctx.CurrentSearch()}}, true

	case "a":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeAlpha}}, true

	case "i":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeIndustryPanel}}, true

	case "c":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeCountryPanel}}, true

	case "x":
		if ctx.BadgeCount() > 0 {
			return []types.Action{types.RemoveLastBadgeAction{}}, true
		}
		return nil, true

	case "X":
		if ctx.HasFilters() {
			return []types.Action{types.ClearFiltersAction{}}, true
		}
		return nil, true

	case "s":
		return []types.Action{types.CycleSortAction{}}, true

	case "r":
		return []types.Action{types.RetryAction{}}, true

	case "?":
		return []types.Action{types.ToggleHelpAction{}}, true

	case "q":
		return []types.Action{types.QuitAction{Force: false}}, true

	case "g":
		if m.lastKeyWasG && time.Since(m.lastGTime) < 500*time.Millisecond {
			m.lastKeyWasG = false
			return []types.Action{types.NavigateAction{Direction: "home"}}, true
		}
		m.lastKeyWasG = true
		m.lastGTime = time.Now()
		return nil, true

	case "G":
		m.lastKeyWasG = false
		return []types.Action{types.NavigateAction{Direction: "end"}}, true

	default:
		m.lastKeyWasG = false
	}

	return nil, false
}

// pageMove steps one page unless the displayed page is already at that
// bound. Unknown totals (0) leave next enabled.
func pageMove(ctx types.Context, move string) []types.Action {
	page, total := ctx.CurrentPage(), ctx.TotalPages()
	switch move {
	case types.PagePrev:
		if page <= 1 {
			return nil
		}
	case types.PageNext:
		if total > 0 && page >= total {
			return nil
		}
	}
	return []types.Action{types.PageAction{Move: move}}
}
