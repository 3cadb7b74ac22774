package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// PanelRow is one term in a reference checklist
type PanelRow struct {
	ID      int
	Label   string
	Count   int
	Checked bool
}

// PanelView is the open industry or country checklist
type PanelView struct {
	Title   string
	Rows    []PanelRow
	Cursor  int
	Offset  int
	Height  int
	Loading bool
	Err     error
}

// PanelRenderer handles rendering of the reference checklists
type PanelRenderer struct {
	styles *Styles
}

// NewPanelRenderer creates a new panel renderer
func NewPanelRenderer(styles *Styles) *PanelRenderer {
	return &PanelRenderer{
		styles: styles,
	}
}

// RenderPanel renders the checklist inside a box width columns wide
func (p *PanelRenderer) RenderPanel(panel PanelView, width int) string {
	inner := width - 4
	if inner < 20 {
		inner = 20
	}

	var b strings.Builder
	b.WriteString(p.styles.Title.Render(panel.Title))
	b.WriteString("\n\n")

	switch {
	case panel.Loading && len(panel.Rows) == 0:
		b.WriteString(p.styles.Dim.Render("Loading..."))
	case panel.Err != nil && len(panel.Rows) == 0:
		b.WriteString(p.styles.StatusError.Render(ansi.Truncate(panel.Err.Error(), inner, "…")))
	case len(panel.Rows) == 0:
		b.WriteString(p.styles.Dim.Render("Nothing to filter by"))
	default:
		b.WriteString(p.renderRows(panel, inner))
	}

	b.WriteString("\n\n")
	b.WriteString(p.styles.Help.Render("space toggle • j/k move • esc close"))

	return p.styles.PanelBox.Width(inner).Render(b.String())
}

func (p *PanelRenderer) renderRows(panel PanelView, width int) string {
	height := panel.Height
	if height < 1 {
		height = len(panel.Rows)
	}
	start := max(0, min(panel.Offset, len(panel.Rows)-1))
	end := min(start+height, len(panel.Rows))

	lines := make([]string, 0, end-start+2)
	if start > 0 {
		lines = append(lines, p.styles.Scroll.Render(fmt.Sprintf("↑ %d more", start)))
	}
	for i := start; i < end; i++ {
		row := panel.Rows[i]
		box := "[ ]"
		if row.Checked {
			box = p.styles.Checked.Render("[x]")
		}
		label := ansi.Truncate(fmt.Sprintf("%s (%d)", row.Label, row.Count), width-4, "…")
		line := box + " " + label
		if i == panel.Cursor {
			line = p.styles.Highlight.Render("▸") + line
		} else {
			line = " " + line
		}
		lines = append(lines, line)
	}
	if end < len(panel.Rows) {
		lines = append(lines, p.styles.Scroll.Render(fmt.Sprintf("↓ %d more", len(panel.Rows)-end)))
	}
	return strings.Join(lines, "\n")
}
