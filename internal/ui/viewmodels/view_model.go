package viewmodels

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"

	"expodir/internal/domain"
	"expodir/internal/logic"
	"expodir/internal/ui/input/types"
	"expodir/internal/ui/services/filter"
	"expodir/internal/ui/services/navigation"
	"expodir/internal/ui/services/results"
	"expodir/internal/ui/services/selection"
	"expodir/internal/ui/services/sorting"
	"expodir/internal/ui/state"
	"expodir/internal/ui/views"
)

// Sources bundles the services a view is built from
type Sources struct {
	State     *state.AppState
	Filters   *filter.Service
	Results   *results.Service
	Selection *selection.Service
	Navigator *navigation.Service
	Sorter    *sorting.Service
	Store     logic.ReferenceStore
}

// ViewModel transforms application state into view-ready data
type ViewModel struct {
	src              Sources
	width            int
	height           int
	help             help.Model
	spinner          string
	helpContent      string
	panelHeight      int
	inputTransformer *InputTransformer
}

// NewViewModel creates a new view model
func NewViewModel(src Sources, textInput textinput.Model) *ViewModel {
	return &ViewModel{
		src:              src,
		help:             help.New(),
		inputTransformer: NewInputTransformer(textInput),
	}
}

// SetDimensions sets the current terminal dimensions
func (vm *ViewModel) SetDimensions(width, height int) {
	vm.width = width
	vm.height = height
	vm.help.Width = width - 4
}

// SetInputMode sets the current input mode
func (vm *ViewModel) SetInputMode(mode types.Mode, prompt string) {
	vm.inputTransformer.SetMode(mode, prompt)
}

// UpdateTextInput updates the text input model
func (vm *ViewModel) UpdateTextInput(textInput textinput.Model) {
	vm.inputTransformer.textInput = textInput
}

// SetSpinner sets the rendered spinner frame
func (vm *ViewModel) SetSpinner(frame string) {
	vm.spinner = frame
}

// SetHelpContent sets the text shown in the help popup
func (vm *ViewModel) SetHelpContent(content string) {
	vm.helpContent = content
}

// SetPanelHeight sets how many checklist rows fit on screen
func (vm *ViewModel) SetPanelHeight(h int) {
	vm.panelHeight = h
}

// BuildViewState creates a ViewState for rendering
func (vm *ViewModel) BuildViewState() views.ViewState {
	s := vm.src
	fs := s.Filters.State()
	page := s.Results.Page()
	start, end := s.Navigator.Visible()

	vs := views.ViewState{
		Width:          vm.width,
		Height:         vm.height,
		Busy:           s.Results.Loading() || s.State.ReferenceLoading,
		Spinner:        vm.spinner,
		SortLabel:      s.Sorter.GetModeString(),
		Prompt:         vm.inputTransformer.Prompt(),
		TextInput:      vm.inputTransformer.GetInputText(),
		AlphaEntries:   state.AlphaEntries(),
		Alpha:          fs.Alpha,
		AlphaCursor:    s.State.AlphaCursor,
		AlphaFocused:   vm.inputTransformer.AlphaFocused(),
		Badges:         vm.badges(),
		Search:         fs.Search,
		Loaded:         s.Results.Loaded(),
		Loading:        s.Results.Loading(),
		Failed:         s.Results.Err() != nil,
		OutOfRange:     s.Results.OutOfRange(),
		TotalCount:     page.TotalCount,
		TotalPages:     page.TotalPages,
		Page:           fs.Page,
		Cards:          vm.cards(page.Items),
		Cursor:         s.Navigator.GetCursor(),
		ViewportOffset: start,
		ViewportEnd:    end,
		PageLinks:      s.Results.PageLinks(fs.Page),
		StatusMessage:  s.State.StatusMessage,
		StatusIsError:  s.State.StatusIsError,
		ShowHelp:       s.State.ShowHelp,
		HelpContent:    vm.helpContent,
		HelpModel:      vm.help,
		Keys:           views.DefaultKeyMap,
	}

	switch vm.inputTransformer.mode {
	case types.ModeIndustryPanel, types.ModeCountryPanel:
		vs.Panel = vm.panel(vm.inputTransformer.mode)
	case types.ModeDetail:
		if selected, ok := s.Selection.Selected(); ok {
			vs.Detail = vm.detail(*selected)
			vs.Keys = views.DefaultDetailKeyMap
		}
	}

	return vs
}

func (vm *ViewModel) badges() []views.BadgeView {
	s := vm.src
	out := make([]views.BadgeView, 0)
	for _, b := range s.Filters.Badges() {
		switch b.Kind {
		case filter.BadgeIndustry:
			out = append(out, views.BadgeView{Kind: "Industry", Label: logic.BadgeLabel(s.Store.Industry, b.ID)})
		case filter.BadgeCountry:
			out = append(out, views.BadgeView{Kind: "Country", Label: logic.BadgeLabel(s.Store.Country, b.ID)})
		}
	}
	return out
}

func (vm *ViewModel) cards(items []domain.Exhibitor) []views.CardView {
	cards := make([]views.CardView, len(items))
	for i, e := range items {
		cards[i] = views.CardView{
			ID:         e.ID,
			Name:       e.Name,
			Premium:    e.Premium,
			Stand:      e.Stand,
			Countries:  logic.CountryNames(vm.src.Store, e.CountryIDs),
			Industries: logic.IndustryNames(vm.src.Store, e.IndustryIDs),
			Teaser:     domain.Teaser(e.Description(), domain.TeaserWords),
		}
	}
	return cards
}

// PanelTerms returns the terms listed by the checklist for mode
func PanelTerms(store logic.ReferenceStore, mode types.Mode) []domain.Term {
	if mode == types.ModeCountryPanel {
		return store.Countries()
	}
	return store.Industries()
}

func (vm *ViewModel) panel(mode types.Mode) *views.PanelView {
	s := vm.src
	fs := s.Filters.State()

	title, active := "Industries", fs.IndustryIDs
	if mode == types.ModeCountryPanel {
		title, active = "Countries", fs.CountryIDs
	}

	checked := make(map[int]bool, len(active))
	for _, id := range active {
		checked[id] = true
	}

	terms := PanelTerms(s.Store, mode)
	rows := make([]views.PanelRow, len(terms))
	for i, t := range terms {
		rows[i] = views.PanelRow{ID: t.ID, Label: t.Name, Count: t.Count, Checked: checked[t.ID]}
	}

	return &views.PanelView{
		Title:   title,
		Rows:    rows,
		Cursor:  s.State.PanelCursor,
		Offset:  s.State.PanelOffset,
		Height:  vm.panelHeight,
		Loading: s.State.ReferenceLoading,
		Err:     s.State.ReferenceErr,
	}
}

func (vm *ViewModel) detail(e domain.Exhibitor) *views.DetailView {
	return &views.DetailView{
		Name:        e.Name,
		Premium:     e.Premium,
		Stand:       e.Stand,
		Industries:  logic.IndustryNames(vm.src.Store, e.IndustryIDs),
		Countries:   logic.CountryNames(vm.src.Store, e.CountryIDs),
		Description: e.Description(),
		Website:     e.CompanyURL,
		Email:       e.CompanyEmail,
		Phone:       e.CompanyPhone,
		Address:     e.Address,
		Links:       e.Links(),
		LinkCursor:  vm.src.State.LinkCursor,
		Gallery:     e.Gallery(),
	}
}
