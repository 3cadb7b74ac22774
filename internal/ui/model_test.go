package ui

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"expodir/internal/config"
	"expodir/internal/domain"
	"expodir/internal/gateway"
	"expodir/internal/logic"
	"expodir/internal/ui/commands"
	inputtypes "expodir/internal/ui/input/types"
	"expodir/internal/ui/services/filter"
	"expodir/internal/ui/services/query"
)

const industriesBody = `[
  {"id": 5, "name": "Food Processing", "slug": "food", "count": 12},
  {"id": 8, "name": "Packaging", "slug": "packaging", "count": 4}
]`

const countriesBody = `[
  {"id": 3, "name": "Indonesia", "slug": "id", "count": 30},
  {"id": 4, "name": "Germany", "slug": "de", "count": 2}
]`

// directoryServer fakes the listing API and records listing queries
type directoryServer struct {
	*httptest.Server

	mu      sync.Mutex
	queries []url.Values
}

func newDirectoryServer(t *testing.T) *directoryServer {
	t.Helper()

	ds := &directoryServer{}
	mux := http.NewServeMux()
	mux.HandleFunc("/v2/industry_category", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(industriesBody))
	})
	mux.HandleFunc("/v2/country", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(countriesBody))
	})
	mux.HandleFunc("/v2/ciptadusa_directory", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		ds.mu.Lock()
		ds.queries = append(ds.queries, q)
		ds.mu.Unlock()

		if q.Get("search") == "boom" {
			http.Error(w, `{"code":"internal"}`, http.StatusInternalServerError)
			return
		}

		w.Header().Set(gateway.HeaderTotal, "42")
		w.Header().Set(gateway.HeaderTotalPages, "9")
		_, _ = w.Write([]byte(listingPage(q.Get("page"))))
	})

	ds.Server = httptest.NewServer(mux)
	t.Cleanup(ds.Close)
	return ds
}

func listingPage(page string) string {
	items := make([]string, 0, 5)
	for i := 1; i <= 5; i++ {
		items = append(items, fmt.Sprintf(`{
  "id": %[1]s%[2]d,
  "exhibitor_name": "Exhibitor %[1]s-%[2]d",
  "is_premium": %[3]t,
  "content": {"rendered": "<p>Quality goods since 1990</p>"},
  "country": [3],
  "industry_category": [5],
  "stand": "B%[2]d",
  "company_url": "https://ex%[2]d.test",
  "company_email": "sales@ex%[2]d.test"
}`, page, i, i == 1))
	}
	return "[" + strings.Join(items, ",") + "]"
}

func (ds *directoryServer) lastQuery() url.Values {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	if len(ds.queries) == 0 {
		return nil
	}
	return ds.queries[len(ds.queries)-1]
}

func (ds *directoryServer) requestCount() int {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	return len(ds.queries)
}

func newTestModel(t *testing.T, ds *directoryServer, opts ...func(*config.Config)) *Model {
	t.Helper()

	cfg := config.DefaultConfig()
	cfg.BaseURL = ds.URL
	cfg.SearchDebounce = "0s"
	for _, opt := range opts {
		opt(cfg)
	}

	client, err := gateway.NewClient(gateway.Options{BaseURL: cfg.BaseURL, Timeout: time.Second})
	require.NoError(t, err)

	m := NewModel(context.Background(), cfg, client, logic.NewMemoryReferenceStore(), nil)
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 50})
	return m
}

// runCmd runs cmd, giving up on commands that wait longer than a short
// timeout (blink and status timers)
func runCmd(cmd tea.Cmd) tea.Msg {
	ch := make(chan tea.Msg, 1)
	go func() { ch <- cmd() }()
	select {
	case msg := <-ch:
		return msg
	case <-time.After(300 * time.Millisecond):
		return nil
	}
}

// drain runs cmd and every command produced while handling its messages
func drain(t *testing.T, m *Model, cmd tea.Cmd) {
	t.Helper()

	queue := []tea.Cmd{cmd}
	for steps := 0; len(queue) > 0; steps++ {
		require.Less(t, steps, 200, "command loop did not settle")

		next := queue[0]
		queue = queue[1:]
		if next == nil {
			continue
		}

		switch msg := runCmd(next).(type) {
		case nil, spinner.TickMsg, tea.QuitMsg:
		case tea.BatchMsg:
			queue = append(queue, msg...)
		default:
			_, c := m.Update(msg)
			queue = append(queue, c)
		}
	}
}

func press(t *testing.T, m *Model, keys ...string) {
	t.Helper()
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "space":
			msg = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
		case "backspace":
			msg = tea.KeyMsg{Type: tea.KeyBackspace}
		case "right":
			msg = tea.KeyMsg{Type: tea.KeyRight}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		_, cmd := m.Update(msg)
		drain(t, m, cmd)
	}
}

func typeText(t *testing.T, m *Model, text string) {
	t.Helper()
	for _, r := range text {
		press(t, m, string(r))
	}
}

func started(t *testing.T) (*Model, *directoryServer) {
	t.Helper()
	ds := newDirectoryServer(t)
	m := newTestModel(t, ds)
	drain(t, m, m.Init())
	return m, ds
}

func TestFreshLoad(t *testing.T) {
	m, ds := started(t)

	view := m.View()
	assert.Contains(t, view, "Showing 42 results")
	assert.Contains(t, view, "[1]")
	for p := 2; p <= 9; p++ {
		assert.Contains(t, view, fmt.Sprintf(" %d", p))
	}
	assert.Contains(t, view, "Page 1 of 9")
	assert.Contains(t, view, "Exhibitor 1-1")
	assert.Contains(t, view, "MAJOR EXHIBITOR")

	q := ds.lastQuery()
	require.NotNil(t, q)
	assert.Equal(t, "1", q.Get("page"))
	assert.Equal(t, "5", q.Get("per_page"))
	assert.Equal(t, "is_premium", q.Get("orderby"))
	assert.Equal(t, "asc", q.Get("order"))
	assert.Empty(t, q.Get("search"))

	assert.False(t, m.state.ReferenceLoading)
	assert.Len(t, m.store.Industries(), 2)
	assert.Contains(t, view, "Food Processing")
}

func TestPageNavigation(t *testing.T) {
	m, ds := started(t)

	press(t, m, "n")
	assert.Equal(t, 2, m.Filters().Page)
	assert.Equal(t, "2", ds.lastQuery().Get("page"))
	assert.Contains(t, m.View(), "Exhibitor 2-1")

	press(t, m, "L")
	assert.Equal(t, 9, m.Filters().Page)

	before := ds.requestCount()
	press(t, m, "n")
	assert.Equal(t, 9, m.Filters().Page, "no page past the last")
	assert.Equal(t, before, ds.requestCount(), "no refetch when nothing changed")

	press(t, m, "<")
	assert.Equal(t, 1, m.Filters().Page)
}

func TestGoToPage(t *testing.T) {
	m, ds := started(t)

	press(t, m, ":")
	typeText(t, m, "4")
	press(t, m, "enter")

	assert.Equal(t, inputtypes.ModeNormal, m.inputHandler.CurrentMode())
	assert.Equal(t, 4, m.Filters().Page)
	assert.Equal(t, "4", ds.lastQuery().Get("page"))

	press(t, m, ":")
	typeText(t, m, "x")
	press(t, m, "enter")
	assert.Equal(t, 4, m.Filters().Page)
	assert.True(t, m.state.StatusIsError)
}

func TestSearchCommitsAfterSettling(t *testing.T) {
	m, ds := started(t)
	press(t, m, "n")

	press(t, m, "/")
	assert.Equal(t, inputtypes.ModeSearch, m.inputHandler.CurrentMode())
	typeText(t, m, "rice")

	assert.Equal(t, "rice", m.Filters().Search)
	assert.Equal(t, 1, m.Filters().Page, "search resets the page")
	assert.Equal(t, "rice", ds.lastQuery().Get("search"))

	press(t, m, "esc")
	assert.Equal(t, inputtypes.ModeNormal, m.inputHandler.CurrentMode())
	assert.Equal(t, "rice", m.Filters().Search, "cancel keeps the committed search")
	assert.Contains(t, m.View(), `Search: "rice"`)
}

func TestSearchDebounceCommitsLastTextOnce(t *testing.T) {
	ds := newDirectoryServer(t)
	m := newTestModel(t, ds, func(cfg *config.Config) { cfg.SearchDebounce = "50ms" })
	drain(t, m, m.Init())

	press(t, m, "/")
	require.Equal(t, inputtypes.ModeSearch, m.inputHandler.CurrentMode())
	before := ds.requestCount()

	var settles []tea.Cmd
	for _, text := range []string{"a", "ab", "abc"} {
		settles = append(settles, m.processAction(inputtypes.UpdateTextAction{Text: text}))
	}
	assert.Equal(t, before, ds.requestCount(), "nothing is sent inside the window")
	assert.Empty(t, m.Filters().Search)

	for _, cmd := range settles {
		drain(t, m, cmd)
	}

	assert.Equal(t, before+1, ds.requestCount(), "one request for the burst")
	assert.Equal(t, "abc", ds.lastQuery().Get("search"))
	assert.Equal(t, "abc", m.Filters().Search)
}

func TestAlphaFilter(t *testing.T) {
	m, ds := started(t)

	press(t, m, "a", "b")
	assert.Equal(t, "B", m.Filters().Alpha)
	assert.Equal(t, "B", ds.lastQuery().Get("search_first"))
	assert.Equal(t, inputtypes.ModeNormal, m.inputHandler.CurrentMode())

	press(t, m, "a", "*")
	assert.Empty(t, m.Filters().Alpha)
	assert.Empty(t, ds.lastQuery().Get("search_first"))
}

func TestIndustryPanelToggle(t *testing.T) {
	m, ds := started(t)

	press(t, m, "i")
	assert.Equal(t, inputtypes.ModeIndustryPanel, m.inputHandler.CurrentMode())
	view := m.View()
	assert.Contains(t, view, "Food Processing")
	assert.Contains(t, view, "Packaging")

	press(t, m, "space")
	fs := m.Filters()
	require.Len(t, fs.IndustryIDs, 1)
	assert.Equal(t, ds.lastQuery().Get("industry_category"), fmt.Sprint(fs.IndustryIDs[0]))

	press(t, m, "esc")
	assert.Equal(t, inputtypes.ModeNormal, m.inputHandler.CurrentMode())
	assert.Len(t, m.filters.Badges(), 1)

	press(t, m, "x")
	assert.Empty(t, m.Filters().IndustryIDs)
	assert.Empty(t, ds.lastQuery().Get("industry_category"))
}

func TestClearFilters(t *testing.T) {
	m, ds := started(t)

	press(t, m, "a", "c", "c", "space", "esc")
	require.True(t, m.Filters().HasFilters())

	press(t, m, "X")
	fs := m.Filters()
	assert.False(t, fs.HasFilters())
	assert.Equal(t, 1, fs.Page)
	q := ds.lastQuery()
	assert.Empty(t, q.Get("search_first"))
	assert.Empty(t, q.Get("country"))
}

func TestDetailView(t *testing.T) {
	m, _ := started(t)

	press(t, m, "j", "enter")
	assert.Equal(t, inputtypes.ModeDetail, m.inputHandler.CurrentMode())
	selected, ok := m.Selected()
	require.True(t, ok)
	assert.Equal(t, "Exhibitor 1-2", selected.Name)

	view := m.View()
	assert.Contains(t, view, "← back")
	assert.Contains(t, view, "Exhibitor 1-2")
	assert.Contains(t, view, "sales@ex2.test")
	assert.Contains(t, view, "Quality goods since 1990")

	press(t, m, "esc")
	assert.Equal(t, inputtypes.ModeNormal, m.inputHandler.CurrentMode())
	_, ok = m.Selected()
	assert.False(t, ok)
}

func TestDetailViewDisabled(t *testing.T) {
	ds := newDirectoryServer(t)
	cfg := config.DefaultConfig()
	cfg.BaseURL = ds.URL
	cfg.DetailView = false
	client, err := gateway.NewClient(gateway.Options{BaseURL: ds.URL})
	require.NoError(t, err)

	m := NewModel(context.Background(), cfg, client, nil, nil)
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 50})
	drain(t, m, m.Init())

	press(t, m, "enter")
	assert.Equal(t, inputtypes.ModeNormal, m.inputHandler.CurrentMode())
	_, ok := m.Selected()
	assert.False(t, ok)
}

func TestCopyAndOpenLink(t *testing.T) {
	m, ds := started(t)
	client, err := gateway.NewClient(gateway.Options{BaseURL: ds.URL})
	require.NoError(t, err)

	var opened, copied []string
	m.SetExecutor(commands.NewExecutorWithContext(&commands.CommandContext{
		Ctx:            context.Background(),
		Listings:       client,
		Resource:       "ciptadusa_directory",
		OpenURL:        func(u string) error { opened = append(opened, u); return nil },
		WriteClipboard: func(s string) error { copied = append(copied, s); return nil },
	}))

	press(t, m, "enter", "e", "1")
	assert.Equal(t, []string{"sales@ex1.test"}, copied)
	assert.Equal(t, []string{"https://ex1.test"}, opened)
	assert.Contains(t, m.View(), "Opened https://ex1.test")

	press(t, m, "t")
	assert.True(t, m.state.StatusIsError, "missing phone reports an error")
}

func TestStaleResultsDiscarded(t *testing.T) {
	m, _ := started(t)

	params := query.Build(m.Filters())
	older := m.results.Begin(params)
	newer := m.results.Begin(params)

	newest := domain.ResultPage{
		Items:      []domain.Exhibitor{{ID: 2, Name: "Newest"}},
		TotalCount: 1,
		TotalPages: 1,
	}
	m.Update(commands.ListingLoadedMsg{Ticket: newer, Page: newest})
	m.Update(commands.ListingLoadedMsg{Ticket: older, Page: domain.ResultPage{
		Items:      []domain.Exhibitor{{ID: 1, Name: "Stale"}},
		TotalCount: 1,
		TotalPages: 1,
	}})
	m.Update(commands.ListingLoadedMsg{Ticket: older, Err: assert.AnError})

	view := m.View()
	assert.Contains(t, view, "Newest")
	assert.NotContains(t, view, "Stale")
	assert.False(t, m.state.StatusIsError)
}

func TestFetchErrorAndRetry(t *testing.T) {
	m, ds := started(t)

	press(t, m, "/")
	typeText(t, m, "boom")
	press(t, m, "enter")

	view := m.View()
	assert.Contains(t, view, "press r to retry")
	assert.True(t, m.state.StatusIsError)

	before := ds.requestCount()
	press(t, m, "r")
	assert.Equal(t, before+1, ds.requestCount())
}

func TestCycleSort(t *testing.T) {
	m, ds := started(t)

	press(t, m, "s")
	fs := m.Filters()
	assert.Equal(t, "title", fs.SortField)
	assert.Equal(t, "asc", fs.SortOrder)
	assert.Contains(t, m.View(), "sort: name a-z")
	assert.Equal(t, fs.SortField, ds.lastQuery().Get("orderby"))
	assert.Equal(t, fs.SortOrder, ds.lastQuery().Get("order"))
}

func TestStatusClearsOnlyLatest(t *testing.T) {
	m, _ := started(t)

	m.flash("first")
	seq := m.statusSeq
	m.flash("second")

	m.Update(clearStatusMsg{seq: seq})
	assert.Equal(t, "second", m.state.StatusMessage)

	m.Update(clearStatusMsg{seq: m.statusSeq})
	assert.Empty(t, m.state.StatusMessage)
}

func TestHelpPopupWithoutProgram(t *testing.T) {
	m, _ := started(t)

	press(t, m, "?")
	assert.True(t, m.state.ShowHelp)
	assert.Contains(t, m.View(), "Filters")

	press(t, m, "esc")
	assert.False(t, m.state.ShowHelp)
}

func TestQuit(t *testing.T) {
	m, _ := started(t)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestAlphaAllEntry(t *testing.T) {
	assert.Equal(t, filter.AlphaAll, (&Model{filters: filter.NewService(filter.NewState(filter.Defaults{}), filter.PageResetOnFilter, nil)}).alphaEntry())
}

func TestPanelScrollMatchesRenderedHeight(t *testing.T) {
	store := logic.NewMemoryReferenceStore()
	terms := make([]domain.Term, 8)
	for i := range terms {
		terms[i] = domain.Term{ID: i + 1, Name: fmt.Sprintf("Industry %d", i+1)}
	}
	store.SetIndustries(terms)

	m := NewModel(context.Background(), config.DefaultConfig(), nil, store, nil)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 24})

	press(t, m, "i", "G")
	m.View()
	vs := m.viewModel.BuildViewState()
	require.NotNil(t, vs.Panel)

	assert.Equal(t, m.panelHeight(), vs.Panel.Height)
	assert.Equal(t, len(terms)-1, m.state.PanelCursor)
	assert.Equal(t, len(terms)-vs.Panel.Height, m.state.PanelOffset, "cursor sits on the last rendered row")
}
