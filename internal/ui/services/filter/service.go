package filter

import (
	"go.uber.org/zap"

	"expodir/internal/eventbus"
)

// Service owns the current listing query state. Every operation replaces
// the state wholesale and reports whether the effective query changed.
type Service struct {
	state  State
	policy PagePolicy
	bus    eventbus.EventBus
}

// NewService creates a new filter service
func NewService(initial State, policy PagePolicy, bus eventbus.EventBus) *Service {
	return &Service{
		state:  initial.clone(),
		policy: policy,
		bus:    bus,
	}
}

// State returns a copy of the current state
func (s *Service) State() State {
	return s.state.clone()
}

// Policy returns the page policy in effect
func (s *Service) Policy() PagePolicy {
	return s.policy
}

// Badges returns the active filters in insertion order
func (s *Service) Badges() []Badge {
	return s.state.Badges()
}

// ToggleIndustry adds or removes an industry category
func (s *Service) ToggleIndustry(id int, on bool) bool {
	return s.commit("toggle_industry", s.filterPage(s.state.WithIndustry(id, on)))
}

// ToggleCountry adds or removes a country
func (s *Service) ToggleCountry(id int, on bool) bool {
	return s.commit("toggle_country", s.filterPage(s.state.WithCountry(id, on)))
}

// RemoveIndustry removes an industry category. Removing an absent id is a no-op.
func (s *Service) RemoveIndustry(id int) bool {
	return s.commit("remove_industry", s.filterPage(s.state.WithIndustry(id, false)))
}

// RemoveCountry removes a country. Removing an absent id is a no-op.
func (s *Service) RemoveCountry(id int) bool {
	return s.commit("remove_country", s.filterPage(s.state.WithCountry(id, false)))
}

// RemoveBadge removes the filter a badge stands for
func (s *Service) RemoveBadge(b Badge) bool {
	if b.Kind == BadgeCountry {
		return s.RemoveCountry(b.ID)
	}
	return s.RemoveIndustry(b.ID)
}

// SetSearch sets the free-text search; blank text clears it
func (s *Service) SetSearch(text string) bool {
	return s.commit("set_search", s.filterPage(s.state.WithSearch(text)))
}

// SetAlpha sets the alpha bar letter. AlphaAll clears it. Always page 1.
func (s *Service) SetAlpha(letter string) bool {
	return s.commit("set_alpha", s.state.WithAlpha(letter).WithPage(1))
}

// SetSort changes the listing order and returns to page 1
func (s *Service) SetSort(field, order string) bool {
	return s.commit("set_sort", s.state.WithSort(field, order).WithPage(1))
}

// ClearFilters drops every filter and returns to page 1
func (s *Service) ClearFilters() bool {
	return s.commit("clear_filters", s.state.Cleared())
}

// GoToPage moves to page n. Pages below 1 are rejected; pages beyond the
// last known page pass through.
func (s *Service) GoToPage(n int) bool {
	if n < 1 {
		return false
	}
	return s.commit("go_to_page", s.state.WithPage(n))
}

// NextPage moves forward one page
func (s *Service) NextPage() bool {
	return s.commit("next_page", s.state.WithPage(s.state.Page+1))
}

// PrevPage moves back one page; a no-op on page 1
func (s *Service) PrevPage() bool {
	return s.GoToPage(s.state.Page - 1)
}

// FirstPage moves to page 1
func (s *Service) FirstPage() bool {
	return s.commit("first_page", s.state.WithPage(1))
}

// LastPage moves to totalPages. Unknown totals (0) leave the page alone.
func (s *Service) LastPage(totalPages int) bool {
	return s.GoToPage(totalPages)
}

func (s *Service) filterPage(next State) State {
	if s.policy == PageResetOnFilter {
		return next.WithPage(1)
	}
	return next
}

func (s *Service) commit(reason string, next State) bool {
	changed := !next.SameQuery(s.state)
	s.state = next
	if !changed {
		return false
	}

	zap.S().Debugf("Filter changed (%s): page=%d industries=%v countries=%v search=%q alpha=%q",
		reason, next.Page, next.IndustryIDs, next.CountryIDs, next.Search, next.Alpha)

	if s.bus != nil {
		s.bus.Publish(eventbus.FilterChangedEvent{Reason: reason, Page: next.Page})
	}
	return true
}
