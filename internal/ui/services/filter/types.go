package filter

import (
	"slices"
	"strings"
)

// PagePolicy decides what filter and search edits do to the current page
type PagePolicy int

const (
	// PageResetOnFilter returns to page 1 on every filter or search change
	PageResetOnFilter PagePolicy = iota
	// PageKeepOnToggle keeps the page on toggles, removals and search
	// edits; only the alpha bar resets it
	PageKeepOnToggle
)

// ParsePagePolicy maps a config value to a policy. Unknown values reset.
func ParsePagePolicy(s string) PagePolicy {
	if strings.EqualFold(strings.TrimSpace(s), "keep") {
		return PageKeepOnToggle
	}
	return PageResetOnFilter
}

func (p PagePolicy) String() string {
	if p == PageKeepOnToggle {
		return "keep"
	}
	return "reset"
}

// AlphaAll is the alpha bar entry that clears the letter filter
const AlphaAll = "All"

// AlphaLetters are the letters offered by the alpha bar, after AlphaAll
var AlphaLetters = []string{
	"0", "A", "B", "C", "D", "E", "F", "G", "H", "I", "J", "K", "L", "M",
	"N", "O", "P", "Q", "R", "S", "T", "U", "V", "W", "X", "Y", "Z",
}

// DefaultFields is the listing field projection sent with every request
var DefaultFields = []string{
	"id", "title", "content", "exhibitor_name", "logo", "is_premium", "banner_logo",
	"description", "country", "industry_category", "stand", "fb_url", "ig_url",
	"twitter_url", "yt_url", "linkedln_url", "company_url", "company_email",
	"company_phone", "address", "gallery_image_1", "gallery_image_2",
	"gallery_title_1", "gallery_title_2",
}

// State is the complete listing query intent. It is a value: every
// mutation returns a new State and never touches the receiver's slices.
type State struct {
	IndustryIDs []int // insertion order, unique
	CountryIDs  []int // insertion order, unique
	Search      string
	Alpha       string // "" means All
	SortField   string
	SortOrder   string
	Page        int
	PageSize    int
	Fields      []string
}

// Defaults holds the session constants a State starts from
type Defaults struct {
	PageSize  int
	SortField string
	SortOrder string
}

// NewState returns the initial state for a session
func NewState(d Defaults) State {
	if d.PageSize < 1 {
		d.PageSize = 5
	}
	if d.SortField == "" {
		d.SortField = "is_premium"
	}
	if d.SortOrder == "" {
		d.SortOrder = "asc"
	}
	return State{
		SortField: d.SortField,
		SortOrder: d.SortOrder,
		Page:      1,
		PageSize:  d.PageSize,
		Fields:    slices.Clone(DefaultFields),
	}
}

// BadgeKind says which filter a badge belongs to
type BadgeKind int

const (
	BadgeIndustry BadgeKind = iota
	BadgeCountry
)

// Badge is one active, removable filter value
type Badge struct {
	Kind BadgeKind
	ID   int
}
