package results

// windowSize is how many numbered pages are shown around the current one
const windowSize = 9

// PageLinks builds the pagination row for current within the displayed
// page's totals. Nothing is shown for a single page.
func (s *Service) PageLinks(current int) []PageLink {
	return BuildPageLinks(current, s.state.Page.TotalPages)
}

// BuildPageLinks lays out first/prev, a window of numbered pages with gaps,
// then next/last. Controls at the bounds are disabled. current may lie
// outside 1..totalPages.
func BuildPageLinks(current, totalPages int) []PageLink {
	if totalPages <= 1 {
		return nil
	}

	atStart := current <= 1
	atEnd := current >= totalPages

	links := []PageLink{
		{Kind: LinkFirst, Page: 1, Disabled: atStart},
		{Kind: LinkPrev, Page: max(current-1, 1), Disabled: atStart},
	}

	lo, hi := 1, totalPages
	if totalPages > windowSize {
		anchor := min(max(current, 1), totalPages)
		lo = max(anchor-windowSize/2, 1)
		hi = lo + windowSize - 1
		if hi > totalPages {
			hi = totalPages
			lo = hi - windowSize + 1
		}
	}

	if lo > 1 {
		links = append(links, PageLink{Kind: LinkGap})
	}
	for p := lo; p <= hi; p++ {
		links = append(links, PageLink{Kind: LinkPage, Page: p, Active: p == current})
	}
	if hi < totalPages {
		links = append(links, PageLink{Kind: LinkGap})
	}

	links = append(links,
		PageLink{Kind: LinkNext, Page: current + 1, Disabled: atEnd},
		PageLink{Kind: LinkLast, Page: totalPages, Disabled: atEnd},
	)
	return links
}
