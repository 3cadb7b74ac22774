package views

import (
	"fmt"
	"strconv"
	"strings"

	"expodir/internal/ui/services/results"
)

// BadgeView is one active filter value
type BadgeView struct {
	Kind  string // "Industry" or "Country"
	Label string
}

// renderAlphaBar renders the letter jump bar. active is "" for All.
func (r *Renderer) renderAlphaBar(entries []string, active string, cursor int, focused bool) string {
	if active == "" && len(entries) > 0 {
		active = entries[0]
	}
	parts := make([]string, len(entries))
	for i, e := range entries {
		switch {
		case focused && i == cursor:
			parts[i] = r.styles.AlphaCursor.Render(e)
		case e == active:
			parts[i] = r.styles.AlphaActive.Render(e)
		default:
			parts[i] = r.styles.Dim.Render(e)
		}
	}
	return strings.Join(parts, " ")
}

// renderBadges renders the removable filter badges, newest last
func (r *Renderer) renderBadges(badges []BadgeView, search string) string {
	var parts []string
	for _, b := range badges {
		parts = append(parts, r.styles.Badge.Render(fmt.Sprintf("%s: %s ×", b.Kind, b.Label)))
	}
	if search != "" {
		parts = append(parts, r.styles.Badge.Render(fmt.Sprintf("Search: %q", search)))
	}
	if len(parts) == 0 {
		return ""
	}
	return strings.Join(parts, " ")
}

// renderPageLinks renders the pagination row
func (r *Renderer) renderPageLinks(links []results.PageLink) string {
	if len(links) == 0 {
		return ""
	}
	parts := make([]string, 0, len(links))
	for _, l := range links {
		var text string
		switch l.Kind {
		case results.LinkFirst:
			text = "«"
		case results.LinkPrev:
			text = "‹"
		case results.LinkNext:
			text = "›"
		case results.LinkLast:
			text = "»"
		case results.LinkGap:
			text = "…"
		case results.LinkPage:
			text = strconv.Itoa(l.Page)
		}

		switch {
		case l.Active:
			parts = append(parts, r.styles.PageActive.Render("["+text+"]"))
		case l.Disabled:
			parts = append(parts, r.styles.PageDisabled.Render(text))
		default:
			parts = append(parts, text)
		}
	}
	return strings.Join(parts, " ")
}
