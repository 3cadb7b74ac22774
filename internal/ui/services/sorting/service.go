// Package sorting cycles through the listing orders the API supports.
package sorting

import "strings"

// DefaultOptions lists the orders offered to the user. The first is the
// directory's own default: premium exhibitors first.
var DefaultOptions = []Option{
	{Label: "featured", Field: "is_premium", Order: "asc"},
	{Label: "name a-z", Field: "title", Order: "asc"},
	{Label: "name z-a", Field: "title", Order: "desc"},
	{Label: "newest", Field: "date", Order: "desc"},
}

// Service handles sorting logic
type Service struct {
	state   *State
	options []Option
}

// NewService creates a sorting service starting at field/order. An order
// not in the option list is added as a custom first entry.
func NewService(field, order string) *Service {
	options := append([]Option(nil), DefaultOptions...)

	current := -1
	for i, o := range options {
		if o.Field == field && strings.EqualFold(o.Order, order) {
			current = i
			break
		}
	}
	if current < 0 {
		custom := Option{Label: field + " " + strings.ToLower(order), Field: field, Order: strings.ToLower(order)}
		options = append([]Option{custom}, options...)
		current = 0
	}

	return &Service{
		state:   &State{Current: current},
		options: options,
	}
}

// Current returns the active sort option
func (s *Service) Current() Option {
	return s.options[s.state.Current]
}

// Next cycles to the next sort option and returns it
func (s *Service) Next() Option {
	s.state.Current = (s.state.Current + 1) % len(s.options)
	return s.Current()
}

// Options returns every available option
func (s *Service) Options() []Option {
	return append([]Option(nil), s.options...)
}

// GetModeString returns a string representation of the current mode
func (s *Service) GetModeString() string {
	return s.Current().Label
}
