package ui

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"expodir/internal/config"
	"expodir/internal/domain"
	"expodir/internal/eventbus"
	"expodir/internal/logic"
	"expodir/internal/ui/commands"
	"expodir/internal/ui/handlers"
	"expodir/internal/ui/input"
	inputtypes "expodir/internal/ui/input/types"
	"expodir/internal/ui/services/filter"
	"expodir/internal/ui/services/navigation"
	"expodir/internal/ui/services/query"
	"expodir/internal/ui/services/results"
	"expodir/internal/ui/services/search"
	"expodir/internal/ui/services/selection"
	"expodir/internal/ui/services/sorting"
	"expodir/internal/ui/state"
	"expodir/internal/ui/viewmodels"
	"expodir/internal/ui/views"
)

// statusTimeout is how long informational status messages stay visible
const statusTimeout = 3 * time.Second

// Model represents the application state
type Model struct {
	ctx   context.Context
	cfg   *config.Config
	bus   eventbus.EventBus
	store logic.ReferenceStore
	state *state.AppState

	// Services
	filters   *filter.Service
	results   *results.Service
	selection *selection.Service
	search    *search.Service
	navigator *navigation.Service
	sorter    *sorting.Service

	// Presentation
	inputHandler *input.Handler
	viewModel    *viewmodels.ViewModel
	renderer     *views.Renderer
	helpRenderer *HelpRenderer
	spinner      spinner.Model
	spinning     bool

	cmdExecutor  *commands.Executor
	eventHandler *handlers.EventHandler
	pager        *PagerOps
	program      *tea.Program

	width     int
	height    int
	statusSeq int
}

// NewModel creates a new model reading from directory. Reference tables
// are loaded into store; domain events go to bus, which may be nil.
func NewModel(ctx context.Context, cfg *config.Config, directory logic.Directory, store logic.ReferenceStore, bus eventbus.EventBus) *Model {
	if ctx == nil {
		ctx = context.Background()
	}
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if store == nil {
		store = logic.NewMemoryReferenceStore()
	}

	appState := state.NewAppState()
	initial := filter.NewState(filter.Defaults{
		PageSize:  cfg.PageSize,
		SortField: cfg.SortField,
		SortOrder: cfg.SortOrder,
	})

	m := &Model{
		ctx:          ctx,
		cfg:          cfg,
		bus:          bus,
		store:        store,
		state:        appState,
		filters:      filter.NewService(initial, filter.ParsePagePolicy(cfg.PagePolicy), bus),
		results:      results.NewService(bus),
		selection:    selection.NewService(bus, cfg.DetailView),
		search:       search.NewService(cfg.Debounce()),
		navigator:    navigation.NewService(5),
		sorter:       sorting.NewService(initial.SortField, initial.SortOrder),
		inputHandler: input.New(),
		renderer:     views.NewRenderer(),
		helpRenderer: NewHelpRenderer(),
		spinner:      spinner.New(spinner.WithSpinner(spinner.Dot)),
	}

	m.navigator.SetCountFunction(func() int {
		return len(m.results.Page().Items)
	})

	var loader *logic.ReferenceLoader
	if directory != nil {
		loader = logic.NewReferenceLoader(directory, store, bus, query.ReferenceParams().Values())
	}
	m.cmdExecutor = commands.NewExecutor(ctx, directory, loader, cfg.ListingResource)
	m.eventHandler = handlers.NewEventHandler(appState, m.results, m.navigator.Reset)

	m.viewModel = viewmodels.NewViewModel(viewmodels.Sources{
		State:     appState,
		Filters:   m.filters,
		Results:   m.results,
		Selection: m.selection,
		Navigator: m.navigator,
		Sorter:    m.sorter,
		Store:     store,
	}, m.inputHandler.Input())
	m.viewModel.SetHelpContent(m.helpRenderer.RenderHelpContent())

	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.pager = NewPagerOps(p)
}

// SetExecutor replaces the command executor
func (m *Model) SetExecutor(e *commands.Executor) {
	m.cmdExecutor = e
}

// Init loads the reference tables and the first page concurrently
func (m *Model) Init() tea.Cmd {
	loadRefs := m.cmdExecutor.ExecuteLoadReferences()
	if loadRefs != nil {
		m.state.ReferenceLoading = true
	}
	return tea.Batch(loadRefs, m.fetch())
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateViewportHeight()
		return m, nil

	case tea.KeyMsg:
		if m.state.ShowHelp {
			switch msg.String() {
			case "esc", "?", "q", "enter":
				m.state.ShowHelp = false
			case "ctrl+c":
				return m, tea.Quit
			}
			return m, nil
		}

		actions, cmd := m.inputHandler.HandleKey(msg, m.inputContext())

		cmds := []tea.Cmd{}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		cmds = append(cmds, m.processActions(actions)...)

		return m, tea.Batch(cmds...)

	default:
		return m.handleNonKeyboardMsg(msg)
	}
}

// View renders the UI
func (m *Model) View() string {
	if m.state.InPagerMode {
		return ""
	}
	if m.width == 0 {
		return "Loading..."
	}

	m.viewModel.SetDimensions(m.width, m.height)
	m.viewModel.SetInputMode(m.inputHandler.CurrentMode(), m.inputHandler.Prompt())
	if ti := m.inputHandler.TextInput(); ti != nil {
		m.viewModel.UpdateTextInput(*ti)
	}
	m.viewModel.SetSpinner(m.spinner.View())

	return m.renderer.Render(m.viewModel.BuildViewState())
}

func (m *Model) inputContext() *input.ModelContext {
	links := 0
	if selected, ok := m.selection.Selected(); ok {
		links = len(selected.Links())
	}
	return &input.ModelContext{
		Filters:   m.filters,
		Results:   m.results,
		Selection: m.selection,
		Navigator: m.navigator,
		Links:     links,
	}
}

// listChrome is the rows around the card list: padding, title, alpha bar,
// badges, count, pagination, status and help
const listChrome = 16

// updateViewportHeight sizes the card list and checklist to the terminal
func (m *Model) updateViewportHeight() {
	cards := (m.height - listChrome) / views.CardLines
	m.navigator.SetViewportHeight(max(1, cards))
	m.viewModel.SetPanelHeight(m.panelHeight())
}

// panelHeight is the checklist height; the panel header and scroll
// indicators take 4 rows of the list area
func (m *Model) panelHeight() int {
	return max(3, m.height-listChrome-4)
}

// busy reports whether a request is in flight
func (m *Model) busy() bool {
	return m.results.Loading() || m.state.ReferenceLoading
}

// fetch opens a new generation for the current filter state and issues
// its request. Older requests still in flight become stale.
func (m *Model) fetch() tea.Cmd {
	params := query.Build(m.filters.State())
	ticket := m.results.Begin(params)
	return tea.Batch(m.cmdExecutor.ExecuteFetch(ticket), m.startSpinner())
}

// fetchIf refetches when a filter operation changed the query
func (m *Model) fetchIf(changed bool) tea.Cmd {
	if !changed {
		return nil
	}
	return m.fetch()
}

func (m *Model) startSpinner() tea.Cmd {
	if m.spinning {
		return nil
	}
	m.spinning = true
	return m.spinner.Tick
}

// flash shows an informational status that clears itself
func (m *Model) flash(msg string) tea.Cmd {
	m.statusSeq++
	seq := m.statusSeq
	m.state.SetStatus(msg)
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg { return clearStatusMsg{seq: seq} })
}

// fail shows an error status that stays until replaced
func (m *Model) fail(msg string) {
	m.statusSeq++
	m.state.SetError(msg)
}

// commitSearch applies settled search text to the filters
func (m *Model) commitSearch(text string) tea.Cmd {
	m.state.SearchDraft = ""
	return m.fetchIf(m.filters.SetSearch(text))
}

// showInPager runs content in the ov pager, pausing rendering meanwhile
func (m *Model) showInPager(kind, content string) tea.Cmd {
	pager, program := m.pager, m.program
	return func() tea.Msg {
		program.Send(pauseRenderingMsg{})
		err := pager.ShowInPager(content)
		program.Send(resumeRenderingMsg{})
		return pagerMsg{kind: kind, err: err}
	}
}

func (m *Model) processActions(actions []inputtypes.Action) []tea.Cmd {
	var cmds []tea.Cmd
	for _, action := range actions {
		if cmd := m.processAction(action); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return cmds
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	zap.S().Debugf("processAction: %s", action.Type())

	switch a := action.(type) {
	case inputtypes.NavigateAction:
		m.navigator.Navigate(navigation.Direction(a.Direction))

	case inputtypes.QuitAction:
		return tea.Quit

	case inputtypes.ToggleHelpAction:
		if m.program != nil {
			return m.showInPager(pagerHelp, m.helpRenderer.RenderHelpContent())
		}
		m.state.ShowHelp = !m.state.ShowHelp

	case inputtypes.UpdateTextAction:
		if m.inputHandler.CurrentMode() == inputtypes.ModeSearch {
			m.state.SearchDraft = a.Text
			return m.search.Touch(a.Text)
		}

	case inputtypes.SubmitTextAction:
		return m.handleSubmit(a)

	case inputtypes.CancelTextAction:
		if a.Mode == inputtypes.ModeSearch {
			m.search.Cancel()
			m.state.SearchDraft = ""
		}

	case inputtypes.PageAction:
		return m.fetchIf(m.movePage(a.Move))

	case inputtypes.SetAlphaAction:
		changed := m.filters.SetAlpha(a.Letter)
		m.state.SyncAlphaCursor(m.alphaEntry())
		return m.fetchIf(changed)

	case inputtypes.PickAlphaAction:
		changed := m.filters.SetAlpha(m.state.AlphaAtCursor())
		m.state.SyncAlphaCursor(m.alphaEntry())
		return m.fetchIf(changed)

	case inputtypes.SyncAlphaCursorAction:
		m.state.SyncAlphaCursor(m.alphaEntry())

	case inputtypes.MoveAlphaCursorAction:
		m.state.MoveAlphaCursor(a.Delta)

	case inputtypes.PanelNavigateAction:
		terms := viewmodels.PanelTerms(m.store, m.inputHandler.CurrentMode())
		m.state.MovePanelCursor(a.Direction, len(terms), m.panelHeight())

	case inputtypes.TogglePanelItemAction:
		return m.togglePanelItem()

	case inputtypes.RemoveLastBadgeAction:
		badges := m.filters.Badges()
		if len(badges) == 0 {
			return nil
		}
		return m.fetchIf(m.filters.RemoveBadge(badges[len(badges)-1]))

	case inputtypes.ClearFiltersAction:
		m.search.Cancel()
		changed := m.filters.ClearFilters()
		m.state.SyncAlphaCursor(filter.AlphaAll)
		return m.fetchIf(changed)

	case inputtypes.CycleSortAction:
		opt := m.sorter.Next()
		return m.fetchIf(m.filters.SetSort(opt.Field, opt.Order))

	case inputtypes.RetryAction:
		return m.fetch()

	case inputtypes.OpenDetailAction:
		return m.openDetail(a.Index)

	case inputtypes.CloseDetailAction:
		m.selection.Clear()
		m.state.LinkCursor = 0

	case inputtypes.MoveLinkCursorAction:
		if selected, ok := m.selection.Selected(); ok {
			m.state.MoveLinkCursor(a.Delta, len(selected.Links()))
		}

	case inputtypes.OpenLinkAction:
		return m.openLink(a.Index)

	case inputtypes.CopyAction:
		return m.copyField(a.Field)

	case inputtypes.ViewDescriptionAction:
		selected, ok := m.selection.Selected()
		if !ok {
			return nil
		}
		if m.program == nil {
			return m.flash("Full description is shown above")
		}
		return m.showInPager(pagerDescription, m.helpRenderer.RenderDescription(selected.Name, selected.Description()))
	}

	return nil
}

func (m *Model) alphaEntry() string {
	if a := m.filters.State().Alpha; a != "" {
		return a
	}
	return filter.AlphaAll
}

func (m *Model) movePage(move string) bool {
	switch move {
	case inputtypes.PageFirst:
		return m.filters.FirstPage()
	case inputtypes.PagePrev:
		return m.filters.PrevPage()
	case inputtypes.PageNext:
		return m.filters.NextPage()
	case inputtypes.PageLast:
		return m.filters.LastPage(m.results.Page().TotalPages)
	}
	return false
}

func (m *Model) handleSubmit(a inputtypes.SubmitTextAction) tea.Cmd {
	switch a.Mode {
	case inputtypes.ModeSearch:
		m.search.Cancel()
		return m.commitSearch(a.Text)

	case inputtypes.ModeGoToPage:
		text := strings.TrimSpace(a.Text)
		if text == "" {
			return nil
		}
		n, err := strconv.Atoi(text)
		if err != nil || n < 1 {
			m.fail(fmt.Sprintf("Invalid page number %q", text))
			return nil
		}
		return m.fetchIf(m.filters.GoToPage(n))
	}
	return nil
}

func (m *Model) togglePanelItem() tea.Cmd {
	mode := m.inputHandler.CurrentMode()
	terms := viewmodels.PanelTerms(m.store, mode)
	if m.state.PanelCursor < 0 || m.state.PanelCursor >= len(terms) {
		return nil
	}
	term := terms[m.state.PanelCursor]
	fs := m.filters.State()

	var changed bool
	if mode == inputtypes.ModeCountryPanel {
		changed = m.filters.ToggleCountry(term.ID, !slices.Contains(fs.CountryIDs, term.ID))
	} else {
		changed = m.filters.ToggleIndustry(term.ID, !slices.Contains(fs.IndustryIDs, term.ID))
	}
	return m.fetchIf(changed)
}

func (m *Model) openDetail(index int) tea.Cmd {
	item, ok := m.results.ItemAt(index)
	if !ok || !m.selection.Select(item) {
		return nil
	}
	m.state.LinkCursor = 0
	actions := m.inputHandler.ChangeMode(inputtypes.ModeDetail, "", m.inputContext())
	return tea.Batch(m.processActions(actions)...)
}

func (m *Model) openLink(index int) tea.Cmd {
	selected, ok := m.selection.Selected()
	if !ok {
		return nil
	}
	links := selected.Links()
	if index < 0 {
		index = m.state.LinkCursor
	}
	if index < 0 || index >= len(links) {
		return nil
	}
	m.state.LinkCursor = index
	return m.cmdExecutor.ExecuteOpenLink(links[index].URL)
}

func (m *Model) copyField(field string) tea.Cmd {
	selected, ok := m.selection.Selected()
	if !ok {
		return nil
	}

	var value string
	switch field {
	case inputtypes.CopyEmail:
		value = selected.CompanyEmail
	case inputtypes.CopyPhone:
		value = selected.CompanyPhone
	case inputtypes.CopyWebsite:
		value = selected.CompanyURL
	default:
		return nil
	}
	return m.cmdExecutor.ExecuteCopy(field, value)
}

// handleNonKeyboardMsg handles command results, timers and other messages
func (m *Model) handleNonKeyboardMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case commands.ListingLoadedMsg:
		if m.eventHandler.HandleListingLoaded(msg) && msg.Err != nil {
			m.statusSeq++
		}
		return m, nil

	case commands.ReferencesLoadedMsg:
		m.eventHandler.HandleReferencesLoaded(msg)
		return m, nil

	case search.SettledMsg:
		if text, ok := m.search.Settle(msg); ok {
			return m, m.commitSearch(text)
		}
		return m, nil

	case spinner.TickMsg:
		if !m.busy() {
			m.spinning = false
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case commands.LinkOpenedMsg:
		if msg.Err != nil {
			zap.S().Errorf("Failed to open %s: %v", msg.URL, msg.Err)
			m.fail(fmt.Sprintf("Could not open %s: %v", msg.URL, msg.Err))
			return m, nil
		}
		return m, m.flash("Opened " + msg.URL)

	case commands.CopiedMsg:
		if msg.Err != nil {
			m.fail(msg.Err.Error())
			return m, nil
		}
		return m, m.flash(fmt.Sprintf("Copied %s to clipboard", msg.Label))

	case pagerMsg:
		if msg.err != nil {
			zap.S().Warnf("%s pager failed: %v", msg.kind, msg.err)
			if msg.kind == pagerHelp {
				m.state.ShowHelp = true
			}
		}
		return m, nil

	case pauseRenderingMsg:
		m.state.InPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.state.InPagerMode = false
		return m, nil

	case clearStatusMsg:
		if msg.seq == m.statusSeq {
			m.state.ClearStatus()
		}
		return m, nil

	default:
		return m, m.inputHandler.Update(msg)
	}
}

// Selected returns the exhibitor shown in the detail view
func (m *Model) Selected() (*domain.Exhibitor, bool) {
	return m.selection.Selected()
}

// Filters returns the current filter state
func (m *Model) Filters() filter.State {
	return m.filters.State()
}
