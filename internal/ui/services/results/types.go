package results

import (
	"expodir/internal/domain"
	"expodir/internal/ui/services/query"
)

// Ticket identifies one started fetch. Only the ticket of the most recent
// Begin may apply its result.
type Ticket struct {
	Generation uint64
	Params     query.Params
}

// State holds the displayed result set and the fetch in flight
type State struct {
	Page       domain.ResultPage
	Generation uint64
	Loading    bool
	Err        error
	LastParams query.Params
	Loaded     bool // a result has been applied at least once
}

// LinkKind is the role of one pagination control
type LinkKind int

const (
	LinkFirst LinkKind = iota
	LinkPrev
	LinkPage
	LinkNext
	LinkLast
	LinkGap
)

// PageLink is one control in the pagination row
type PageLink struct {
	Kind     LinkKind
	Page     int // target page
	Active   bool
	Disabled bool
}
