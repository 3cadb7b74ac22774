package filter

import (
	"slices"
	"strings"
)

func (s State) clone() State {
	s.IndustryIDs = slices.Clone(s.IndustryIDs)
	s.CountryIDs = slices.Clone(s.CountryIDs)
	s.Fields = slices.Clone(s.Fields)
	return s
}

func toggle(ids []int, id int, on bool) []int {
	has := slices.Contains(ids, id)
	switch {
	case on && !has:
		return append(ids, id)
	case !on && has:
		return slices.DeleteFunc(ids, func(v int) bool { return v == id })
	default:
		return ids
	}
}

// WithIndustry returns a copy with id added to or removed from the industries
func (s State) WithIndustry(id int, on bool) State {
	next := s.clone()
	next.IndustryIDs = toggle(next.IndustryIDs, id, on)
	return next
}

// WithCountry returns a copy with id added to or removed from the countries
func (s State) WithCountry(id int, on bool) State {
	next := s.clone()
	next.CountryIDs = toggle(next.CountryIDs, id, on)
	return next
}

// WithSearch returns a copy with the search text set as typed; "" clears it
func (s State) WithSearch(text string) State {
	next := s.clone()
	next.Search = text
	return next
}

// WithAlpha returns a copy with the alpha letter set. AlphaAll and ""
// clear it. Letters are upper-cased.
func (s State) WithAlpha(letter string) State {
	next := s.clone()
	letter = strings.TrimSpace(letter)
	if letter == "" || strings.EqualFold(letter, AlphaAll) {
		next.Alpha = ""
	} else {
		next.Alpha = strings.ToUpper(letter)
	}
	return next
}

// WithSort returns a copy with the sort field and order set
func (s State) WithSort(field, order string) State {
	next := s.clone()
	next.SortField = field
	next.SortOrder = order
	return next
}

// WithPage returns a copy on page n
func (s State) WithPage(n int) State {
	next := s.clone()
	next.Page = n
	return next
}

// Cleared returns a copy with every filter removed, on page 1
func (s State) Cleared() State {
	next := s.clone()
	next.IndustryIDs = nil
	next.CountryIDs = nil
	next.Search = ""
	next.Alpha = ""
	next.Page = 1
	return next
}

// HasFilters reports whether any filter narrows the listing
func (s State) HasFilters() bool {
	return len(s.IndustryIDs) > 0 || len(s.CountryIDs) > 0 || s.Search != "" || s.Alpha != ""
}

// SameQuery reports whether two states produce the same request. Id
// order does not matter since ids are serialized sorted.
func (s State) SameQuery(o State) bool {
	return sameSet(s.IndustryIDs, o.IndustryIDs) &&
		sameSet(s.CountryIDs, o.CountryIDs) &&
		s.Search == o.Search &&
		s.Alpha == o.Alpha &&
		s.SortField == o.SortField &&
		s.SortOrder == o.SortOrder &&
		s.Page == o.Page &&
		s.PageSize == o.PageSize &&
		slices.Equal(s.Fields, o.Fields)
}

func sameSet(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	as, bs := slices.Clone(a), slices.Clone(b)
	slices.Sort(as)
	slices.Sort(bs)
	return slices.Equal(as, bs)
}

// Badges returns the active industry and country filters in the order
// they were added, industries first
func (s State) Badges() []Badge {
	badges := make([]Badge, 0, len(s.IndustryIDs)+len(s.CountryIDs))
	for _, id := range s.IndustryIDs {
		badges = append(badges, Badge{Kind: BadgeIndustry, ID: id})
	}
	for _, id := range s.CountryIDs {
		badges = append(badges, Badge{Kind: BadgeCountry, ID: id})
	}
	return badges
}
