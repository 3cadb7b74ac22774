package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"
)

// Pager content kinds
const (
	pagerHelp        = "help"
	pagerDescription = "description"
)

// pagerMsg contains the result of a pager command
type pagerMsg struct {
	kind string
	err  error
}

// HelpRenderer handles help content rendering
type HelpRenderer struct {
	titleStyle   lipgloss.Style
	sectionStyle lipgloss.Style
	keyStyle     lipgloss.Style
	descStyle    lipgloss.Style
	noteStyle    lipgloss.Style
}

// NewHelpRenderer creates a new help renderer
func NewHelpRenderer() *HelpRenderer {
	return &HelpRenderer{
		titleStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		sectionStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			MarginTop(1),
		keyStyle:  lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Width(12),
		descStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		noteStyle: lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("241")),
	}
}

type helpEntry struct {
	keys string
	desc string
}

type helpSection struct {
	title   string
	entries []helpEntry
}

var helpSections = []helpSection{
	{"Results", []helpEntry{
		{"↑/↓, j/k", "Move between exhibitors"},
		{"gg/G", "First/last exhibitor on the page"},
		{"Enter", "Show exhibitor details"},
	}},
	{"Pages", []helpEntry{
		{"←/→, h/l", "Previous/next page"},
		{"n/p", "Next/previous page"},
		{"</>, H/L", "First/last page"},
		{":", "Go to page number"},
	}},
	{"Filters", []helpEntry{
		{"/", "Search by name"},
		{"a", "Jump to a letter (0, A-Z, * for all)"},
		{"i", "Choose industries"},
		{"c", "Choose countries"},
		{"x, Backspace", "Remove the last filter"},
		{"X", "Clear all filters"},
		{"s", "Cycle sort order"},
		{"r", "Reload the current page"},
	}},
	{"Details", []helpEntry{
		{"Tab, j/k", "Move between links"},
		{"Enter, 1-9", "Open link in browser"},
		{"e / t / w", "Copy email / phone / website"},
		{"d", "Read the full description"},
		{"Esc, b", "Back to results"},
	}},
	{"Other", []helpEntry{
		{"?", "Toggle this help"},
		{"q", "Quit"},
	}},
}

// RenderHelpContent renders the help information
func (r *HelpRenderer) RenderHelpContent() string {
	var help strings.Builder

	help.WriteString(r.titleStyle.Render("expodir Help"))
	help.WriteString("\n")

	for _, section := range helpSections {
		help.WriteString(r.sectionStyle.Render(section.title))
		help.WriteString("\n")
		for _, e := range section.entries {
			help.WriteString(fmt.Sprintf("  %s %s\n", r.keyStyle.Render(e.keys), r.descStyle.Render(e.desc)))
		}
	}

	help.WriteString("\n")
	help.WriteString(r.noteStyle.Render("  Filters combine: industries AND countries AND search AND letter"))

	return help.String()
}

// RenderDescription renders an exhibitor's full description for the pager
func (r *HelpRenderer) RenderDescription(name, description string) string {
	var b strings.Builder
	b.WriteString(r.titleStyle.Render(name))
	b.WriteString("\n")
	if description == "" {
		b.WriteString(r.noteStyle.Render("No description"))
	} else {
		b.WriteString(lipgloss.NewStyle().Width(78).Render(description))
	}
	b.WriteString("\n")
	return b.String()
}

// PagerOps shows long content in the ov pager
type PagerOps struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewPagerOps creates a new pager operations instance
func NewPagerOps(program *tea.Program) *PagerOps {
	return &PagerOps{
		program: program,
	}
}

// ShowInPager hands the terminal to ov until the user quits it
func (h *PagerOps) ShowInPager(content string) error {
	if h == nil || h.program == nil {
		return fmt.Errorf("program not set")
	}

	if err := h.program.ReleaseTerminal(); err != nil {
		return err
	}

	defer func() {
		// Let ov finish restoring the screen before taking it back
		time.Sleep(100 * time.Millisecond)
		_ = h.program.RestoreTerminal()
	}()

	root, err := oviewer.NewRoot(strings.NewReader(content))
	if err != nil {
		return err
	}

	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}
