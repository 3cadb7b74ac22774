package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"expodir/internal/ui/services/results"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width  int
	Height int

	// Header
	Busy      bool
	Spinner   string
	SortLabel string

	// Input line; Prompt is "" outside text modes
	Prompt    string
	TextInput string

	// Filter bar
	AlphaEntries []string
	Alpha        string
	AlphaCursor  int
	AlphaFocused bool
	Badges       []BadgeView
	Search       string

	// Results
	Loaded         bool
	Loading        bool
	Failed         bool
	OutOfRange     bool
	TotalCount     int
	TotalPages     int
	Page           int
	Cards          []CardView
	Cursor         int
	ViewportOffset int
	ViewportEnd    int
	PageLinks      []results.PageLink

	// Overlays, at most one is set
	Panel  *PanelView
	Detail *DetailView

	StatusMessage string
	StatusIsError bool

	ShowHelp    bool
	HelpContent string
	HelpModel   help.Model
	Keys        help.KeyMap
}

// Renderer handles all view rendering
type Renderer struct {
	styles       *Styles
	cardRender   *ExhibitorRenderer
	panelRender  *PanelRenderer
	detailRender *DetailRenderer
	popupRender  *PopupRenderer
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:       styles,
		cardRender:   NewExhibitorRenderer(styles),
		panelRender:  NewPanelRenderer(styles),
		detailRender: NewDetailRenderer(styles),
		popupRender:  NewPopupRenderer(styles),
	}
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	if state.ShowHelp {
		box := r.styles.HelpBox.Render(state.HelpContent)
		return r.popupRender.RenderPopup(box, state.Width, state.Height)
	}

	termWidth := state.Width
	if termWidth <= 0 {
		termWidth = 80
	}
	width := termWidth - 4 // main container padding

	content := &strings.Builder{}
	content.WriteString(r.renderTitleLine(state, width))
	content.WriteString("\n\n")

	switch {
	case state.Detail != nil:
		content.WriteString(r.detailRender.RenderDetail(*state.Detail, width))
	case state.Panel != nil:
		content.WriteString(r.renderFilterBar(state))
		content.WriteString(r.panelRender.RenderPanel(*state.Panel, min(width, 60)))
	default:
		content.WriteString(r.renderFilterBar(state))
		content.WriteString(r.renderResults(state, width))
	}

	if state.StatusMessage != "" {
		content.WriteString("\n\n")
		style := r.styles.StatusSuccess
		if state.StatusIsError {
			style = r.styles.StatusError
		}
		content.WriteString(style.Render(state.StatusMessage))
	}

	helpText := ""
	if state.Keys != nil {
		helpText = state.HelpModel.View(state.Keys)
	}

	if helpText != "" {
		currentLines := strings.Count(content.String(), "\n") + 1
		availableLines := state.Height - 2
		if availableLines <= 0 {
			availableLines = 22
		}
		if padding := availableLines - currentLines - 1; padding > 0 {
			content.WriteString(strings.Repeat("\n", padding))
		}
		content.WriteString("\n")
		content.WriteString(helpText)
	}

	mainStyle := r.styles.Main
	if state.Height > 0 {
		mainStyle = mainStyle.MaxHeight(state.Height)
	}
	return mainStyle.Render(content.String())
}

// renderTitleLine renders the logo with the loading and sort indicators
// right-aligned
func (r *Renderer) renderTitleLine(state ViewState, width int) string {
	logo := r.styles.Title.Render("expodir")

	var indicators []string
	if state.Busy {
		indicators = append(indicators, strings.TrimSpace(state.Spinner+" Loading"))
	}
	if state.SortLabel != "" {
		indicators = append(indicators, "sort: "+state.SortLabel)
	}
	if len(indicators) == 0 {
		return logo
	}

	right := r.styles.Dim.Render(strings.Join(indicators, " | "))
	padding := width - lipgloss.Width(logo) - lipgloss.Width(right)
	if padding < 2 {
		padding = 2
	}
	return logo + strings.Repeat(" ", padding) + right
}

// renderFilterBar renders the input line, alpha bar and active badges
func (r *Renderer) renderFilterBar(state ViewState) string {
	var b strings.Builder

	if state.Prompt != "" {
		b.WriteString(r.styles.Prompt.Render(state.Prompt))
		b.WriteString(state.TextInput)
		b.WriteString("\n")
	}

	b.WriteString(r.renderAlphaBar(state.AlphaEntries, state.Alpha, state.AlphaCursor, state.AlphaFocused))
	b.WriteString("\n")

	if badges := r.renderBadges(state.Badges, state.Search); badges != "" {
		b.WriteString(badges)
		b.WriteString("\n")
	}
	b.WriteString("\n")

	return b.String()
}

// renderResults renders the count line, the visible cards and the
// pagination row
func (r *Renderer) renderResults(state ViewState, width int) string {
	switch {
	case !state.Loaded && state.Failed:
		return r.styles.Dim.Render("Could not load exhibitors.")
	case !state.Loaded:
		return r.styles.Dim.Render("Loading exhibitors...")
	}

	var b strings.Builder
	b.WriteString(r.styles.Count.Render(fmt.Sprintf("Showing %d results", state.TotalCount)))
	b.WriteString("\n\n")

	switch {
	case state.OutOfRange:
		b.WriteString(r.styles.Dim.Render("No exhibitors on this page"))
		b.WriteString("\n")
	case len(state.Cards) == 0:
		b.WriteString(r.styles.Dim.Render("No exhibitors found"))
		b.WriteString("\n")
	default:
		start, end := state.ViewportOffset, state.ViewportEnd
		if end <= start || end > len(state.Cards) {
			start, end = 0, len(state.Cards)
		}
		if start > 0 {
			b.WriteString(r.styles.Scroll.Render(fmt.Sprintf("↑ %d more", start)))
			b.WriteString("\n")
		}
		for i := start; i < end; i++ {
			b.WriteString(r.cardRender.RenderCard(state.Cards[i], i == state.Cursor, width))
			b.WriteString("\n\n")
		}
		if end < len(state.Cards) {
			b.WriteString(r.styles.Scroll.Render(fmt.Sprintf("↓ %d more", len(state.Cards)-end)))
			b.WriteString("\n")
		}
	}

	if links := r.renderPageLinks(state.PageLinks); links != "" {
		b.WriteString("\n")
		b.WriteString(links)
		b.WriteString("   ")
		b.WriteString(r.styles.Dim.Render(fmt.Sprintf("Page %d of %d", state.Page, state.TotalPages)))
	}

	return strings.TrimRight(b.String(), "\n")
}
