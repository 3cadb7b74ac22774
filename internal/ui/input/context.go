package input

import (
	"expodir/internal/ui/services/filter"
	"expodir/internal/ui/services/navigation"
	"expodir/internal/ui/services/results"
	"expodir/internal/ui/services/selection"
)

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	Filters   *filter.Service
	Results   *results.Service
	Selection *selection.Service
	Navigator *navigation.Service
	Links     int
}

// CurrentIndex returns the card under the cursor
func (c *ModelContext) CurrentIndex() int {
	return c.Navigator.GetCursor()
}

// TotalItems returns the number of cards on the displayed page
func (c *ModelContext) TotalItems() int {
	return len(c.Results.Page().Items)
}

func (c *ModelContext) HasFilters() bool {
	return c.Filters.State().HasFilters()
}

// BadgeCount returns the number of removable industry and country badges
func (c *ModelContext) BadgeCount() int {
	return len(c.Filters.Badges())
}

func (c *ModelContext) CurrentPage() int {
	return c.Filters.State().Page
}

func (c *ModelContext) TotalPages() int {
	return c.Results.Page().TotalPages
}

func (c *ModelContext) DetailEnabled() bool {
	return c.Selection.DetailEnabled()
}

func (c *ModelContext) HasSelection() bool {
	return c.Selection.HasSelection()
}

// LinkCount returns the number of openable links in the detail view
func (c *ModelContext) LinkCount() int {
	return c.Links
}

func (c *ModelContext) CurrentSearch() string {
	return c.Filters.State().Search
}
