package views

import (
	"strings"

	"github.com/charmbracelet/x/ansi"

	"expodir/internal/domain"
)

// PremiumLabel marks premium exhibitors on cards and in the detail view
const PremiumLabel = "MAJOR EXHIBITOR"

// CardView is one exhibitor as shown in the result list
type CardView struct {
	ID         int
	Name       string
	Premium    bool
	Stand      string
	Countries  []string
	Industries []string
	Teaser     string
}

// CardLines is the height of a rendered card including its spacer
const CardLines = 4

// ExhibitorRenderer handles rendering of exhibitor cards
type ExhibitorRenderer struct {
	styles *Styles
}

// NewExhibitorRenderer creates a new exhibitor renderer
func NewExhibitorRenderer(styles *Styles) *ExhibitorRenderer {
	return &ExhibitorRenderer{
		styles: styles,
	}
}

// RenderCard renders one card in width columns. Lines that do not fit
// are truncated.
func (r *ExhibitorRenderer) RenderCard(card CardView, isSelected bool, width int) string {
	if width <= 0 {
		width = 76
	}

	marker := "  "
	nameStyle := r.styles.CardName
	if isSelected {
		marker = r.styles.Highlight.Render("▸ ")
		nameStyle = r.styles.Highlight
	}

	name := card.Name
	if name == "" {
		name = "(unnamed exhibitor)"
	}
	title := marker + nameStyle.Render(ansi.Truncate(name, width-2, "…"))
	if card.Premium {
		withBadge := title + "  " + r.styles.Premium.Render(PremiumLabel)
		if ansi.StringWidth(withBadge) <= width {
			title = withBadge
		}
	}

	var facts []string
	if domain.HasValue(card.Stand) {
		facts = append(facts, "Stand "+card.Stand)
	}
	if len(card.Countries) > 0 {
		facts = append(facts, strings.Join(card.Countries, ", "))
	}
	if len(card.Industries) > 0 {
		facts = append(facts, strings.Join(card.Industries, ", "))
	}
	labels := "  " + r.styles.Labels.Render(ansi.Truncate(strings.Join(facts, " · "), width-2, "…"))

	teaser := "  " + r.styles.Dim.Render(ansi.Truncate(card.Teaser, width-2, "…"))

	return strings.Join([]string{title, labels, teaser}, "\n")
}
