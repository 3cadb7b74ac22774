package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"expodir/internal/domain"
)

// DetailView is the full record of the selected exhibitor
type DetailView struct {
	Name        string
	Premium     bool
	Stand       string
	Industries  []string
	Countries   []string
	Description string
	Website     string
	Email       string
	Phone       string
	Address     string
	Links       []domain.Link
	LinkCursor  int
	Gallery     []string
}

// DetailRenderer renders the exhibitor detail view
type DetailRenderer struct {
	styles *Styles
}

// NewDetailRenderer creates a new detail renderer
func NewDetailRenderer(styles *Styles) *DetailRenderer {
	return &DetailRenderer{styles: styles}
}

// RenderDetail renders d wrapped to width columns
func (r *DetailRenderer) RenderDetail(d DetailView, width int) string {
	if width <= 0 {
		width = 76
	}
	wrap := lipgloss.NewStyle().Width(width)

	var b strings.Builder

	b.WriteString(r.styles.Dim.Render("← back"))
	b.WriteString("\n\n")
	b.WriteString(r.styles.Title.Render(d.Name))
	if d.Premium {
		b.WriteString("  ")
		b.WriteString(r.styles.Premium.Render(PremiumLabel))
	}
	b.WriteString("\n")

	if len(d.Industries) > 0 {
		b.WriteString(r.styles.Labels.Render(strings.Join(d.Industries, ", ")))
		b.WriteString("\n")
	}

	b.WriteString(r.field("Stand", d.Stand))
	b.WriteString(r.field("Country", strings.Join(d.Countries, ", ")))

	b.WriteString(r.styles.Section.Render("About"))
	b.WriteString("\n")
	if d.Description == "" {
		b.WriteString(r.styles.Dim.Render("No description"))
	} else {
		b.WriteString(wrap.Render(d.Description))
	}
	b.WriteString("\n")

	b.WriteString(r.styles.Section.Render("Contact"))
	b.WriteString("\n")
	b.WriteString(r.field("Website", d.Website))
	b.WriteString(r.field("Email", d.Email))
	b.WriteString(r.field("Phone", d.Phone))
	b.WriteString(r.field("Address", d.Address))

	if len(d.Links) > 0 {
		b.WriteString(r.styles.Section.Render("Links"))
		b.WriteString("\n")
		for i, link := range d.Links {
			style := r.styles.Link
			marker := "  "
			if i == d.LinkCursor {
				style = r.styles.LinkSelected
				marker = r.styles.Highlight.Render("▸ ")
			}
			b.WriteString(fmt.Sprintf("%s%d. %s\n", marker, i+1, style.Render(link.Label)))
		}
	}

	if len(d.Gallery) > 0 {
		b.WriteString(r.styles.Section.Render("Gallery"))
		b.WriteString("\n")
		for _, title := range d.Gallery {
			b.WriteString("  • " + title + "\n")
		}
	}

	return strings.TrimRight(b.String(), "\n")
}

func (r *DetailRenderer) field(label, value string) string {
	return r.styles.FieldLabel.Render(label) + " " + domain.ValueOrDash(value) + "\n"
}
