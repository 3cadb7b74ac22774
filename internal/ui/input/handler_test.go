package input

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"expodir/internal/ui/input/types"
)

// stubContext is a fixed types.Context
type stubContext struct {
	items, badges, page, pages, links int
	filters, detail, selected         bool
	search                            string
}

func (c stubContext) CurrentIndex() int { return 0 }
func (c stubContext) TotalItems() int { return c.items }
func (c stubContext) HasFilters() bool { return c.filters }
func (c stubContext) BadgeCount() int { return c.badges }
func (c stubContext) CurrentPage() int { return c.page }
func (c stubContext) TotalPages() int { return c.pages }
func (c stubContext) DetailEnabled() bool { return c.detail }
func (c stubContext) HasSelection() bool { return c.selected }
func (c stubContext) LinkCount() int { return c.links }
func (c stubContext) CurrentSearch() string { return c.search }

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func defaultContext() stubContext {
	return stubContext{items: 5, page: 1, pages: 9, detail: true}
}

func TestNormalModeActions(t *testing.T) {
	tests := []struct {
		name string
		key  tea.KeyMsg
		ctx  stubContext
		want types.Action
	}{
		{name: "down", key: runes("j"), ctx: defaultContext(), want: types.NavigateAction{Direction: "down"}},
		{name: "next page", key: runes("n"), ctx: defaultContext(), want: types.PageAction{Move: types.PageNext}},
		{name: "prev page arrow", key: tea.KeyMsg{Type: tea.KeyLeft}, ctx: stubContext{page: 3, pages: 9}, want: types.PageAction{Move: types.PagePrev}},
		{name: "next page unknown totals", key: tea.KeyMsg{Type: tea.KeyRight}, ctx: stubContext{page: 1}, want: types.PageAction{Move: types.PageNext}},
		{name: "last page", key: runes("L"), ctx: defaultContext(), want: types.PageAction{Move: types.PageLast}},
		{name: "sort", key: runes("s"), ctx: defaultContext(), want: types.CycleSortAction{}},
		{name: "retry", key: runes("r"), ctx: defaultContext(), want: types.RetryAction{}},
		{name: "help", key: runes("?"), ctx: defaultContext(), want: types.ToggleHelpAction{}},
		{name: "open detail", key: tea.KeyMsg{Type: tea.KeyEnter}, ctx: defaultContext(), want: types.OpenDetailAction{Index: 0}},
		{name: "remove badge", key: runes("x"), ctx: stubContext{badges: 2}, want: types.RemoveLastBadgeAction{}},
		{name: "clear", key: runes("X"), ctx: stubContext{filters: true}, want: types.ClearFiltersAction{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := New()
			actions, _ := h.HandleKey(tt.key, tt.ctx)
			require.NotEmpty(t, actions)
			assert.Equal(t, tt.want, actions[0])
			assert.Equal(t, types.ModeNormal, h.CurrentMode())
		})
	}
}

func TestNormalModeGuards(t *testing.T) {
	h := New()

	actions, _ := h.HandleKey(tea.KeyMsg{Type: tea.KeyEnter}, stubContext{items: 3, detail: false})
	assert.Empty(t, actions, "detail disabled")

	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyEnter}, stubContext{detail: true})
	assert.Empty(t, actions, "nothing to open")

	actions, _ = h.HandleKey(runes("x"), stubContext{})
	assert.Empty(t, actions, "no badges")

	actions, _ = h.HandleKey(runes("X"), stubContext{})
	assert.Empty(t, actions, "no filters")
}

func TestPageKeysStopAtBounds(t *testing.T) {
	tests := []struct {
		name string
		key  tea.KeyMsg
		ctx  stubContext
	}{
		{name: "next on last page", key: runes("n"), ctx: stubContext{page: 9, pages: 9}},
		{name: "right arrow on last page", key: tea.KeyMsg{Type: tea.KeyRight}, ctx: stubContext{page: 9, pages: 9}},
		{name: "next past the end", key: runes("l"), ctx: stubContext{page: 12, pages: 9}},
		{name: "prev on first page", key: runes("p"), ctx: stubContext{page: 1, pages: 9}},
		{name: "left arrow on first page", key: tea.KeyMsg{Type: tea.KeyLeft}, ctx: stubContext{page: 1, pages: 9}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := New()
			actions, _ := h.HandleKey(tt.key, tt.ctx)
			assert.Empty(t, actions)
			assert.Equal(t, types.ModeNormal, h.CurrentMode())
		})
	}
}

func TestSearchModeTyping(t *testing.T) {
	h := New()
	ctx := stubContext{search: "rice"}

	_, cmd := h.HandleKey(runes("/"), ctx)
	assert.NotNil(t, cmd, "cursor blink starts")
	assert.Equal(t, types.ModeSearch, h.CurrentMode())
	assert.Equal(t, "Search: ", h.Prompt())
	require.NotNil(t, h.TextInput())
	assert.Equal(t, "rice", h.TextInput().Value(), "prefilled with the committed search")

	actions, _ := h.HandleKey(runes("s"), ctx)
	require.Len(t, actions, 1)
	assert.Equal(t, types.UpdateTextAction{Text: "rices"}, actions[0])

	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyEnter}, ctx)
	require.NotEmpty(t, actions)
	assert.Equal(t, types.SubmitTextAction{Text: "rices", Mode: types.ModeSearch}, actions[0])
	assert.Equal(t, types.ModeNormal, h.CurrentMode())
	assert.Nil(t, h.TextInput())
	assert.Empty(t, h.Prompt())
}

func TestSearchModeCancel(t *testing.T) {
	h := New()
	ctx := defaultContext()

	h.HandleKey(runes("/"), ctx)
	h.HandleKey(runes("a"), ctx)

	actions, _ := h.HandleKey(tea.KeyMsg{Type: tea.KeyEsc}, ctx)
	require.NotEmpty(t, actions)
	assert.Equal(t, types.CancelTextAction{Mode: types.ModeSearch}, actions[0])
	assert.Equal(t, types.ModeNormal, h.CurrentMode())
}

func TestAlphaMode(t *testing.T) {
	h := New()
	ctx := defaultContext()

	actions, _ := h.HandleKey(runes("a"), ctx)
	assert.Equal(t, types.ModeAlpha, h.CurrentMode())
	assert.Contains(t, actions, types.Action(types.SyncAlphaCursorAction{}))

	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyRight}, ctx)
	assert.Equal(t, []types.Action{types.MoveAlphaCursorAction{Delta: 1}}, actions)

	actions, _ = h.HandleKey(runes("q"), ctx)
	require.NotEmpty(t, actions)
	assert.Equal(t, types.SetAlphaAction{Letter: "Q"}, actions[0])
	assert.Equal(t, types.ModeNormal, h.CurrentMode())
}

func TestPanelMode(t *testing.T) {
	h := New()
	ctx := defaultContext()

	actions, _ := h.HandleKey(runes("c"), ctx)
	assert.Equal(t, types.ModeCountryPanel, h.CurrentMode())
	assert.Contains(t, actions, types.Action(types.PanelNavigateAction{Direction: "home"}))

	actions, _ = h.HandleKey(runes("j"), ctx)
	assert.Equal(t, []types.Action{types.PanelNavigateAction{Direction: "down"}}, actions)

	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, ctx)
	assert.Equal(t, []types.Action{types.TogglePanelItemAction{}}, actions)

	h.HandleKey(runes("c"), ctx)
	assert.Equal(t, types.ModeNormal, h.CurrentMode(), "the open key closes the panel")

	h.HandleKey(runes("i"), ctx)
	assert.Equal(t, types.ModeIndustryPanel, h.CurrentMode())
	h.HandleKey(runes("c"), ctx)
	assert.Equal(t, types.ModeIndustryPanel, h.CurrentMode(), "other panel key is ignored")
}

func TestDetailMode(t *testing.T) {
	h := New()
	ctx := stubContext{items: 1, detail: true, selected: true, links: 2}

	h.ChangeMode(types.ModeDetail, "", ctx)
	assert.Equal(t, types.ModeDetail, h.CurrentMode())

	actions, _ := h.HandleKey(runes("2"), ctx)
	assert.Equal(t, []types.Action{types.OpenLinkAction{Index: 1}}, actions)

	actions, _ = h.HandleKey(runes("3"), ctx)
	assert.Empty(t, actions, "no third link")

	actions, _ = h.HandleKey(runes("e"), ctx)
	assert.Equal(t, []types.Action{types.CopyAction{Field: types.CopyEmail}}, actions)

	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyEsc}, ctx)
	assert.Equal(t, []types.Action{types.CloseDetailAction{}}, actions)
	assert.Equal(t, types.ModeNormal, h.CurrentMode())
}

func TestReset(t *testing.T) {
	h := New()
	h.HandleKey(runes(":"), defaultContext())
	require.Equal(t, types.ModeGoToPage, h.CurrentMode())

	h.Reset()
	assert.Equal(t, types.ModeNormal, h.CurrentMode())
	assert.Nil(t, h.TextInput())
}

func TestInputAvailableOutsideTextModes(t *testing.T) {
	h := New()
	require.Equal(t, types.ModeNormal, h.CurrentMode())
	assert.Nil(t, h.TextInput())

	ti := h.Input()
	assert.Empty(t, ti.Value())
	assert.Equal(t, 120, ti.CharLimit)
}
