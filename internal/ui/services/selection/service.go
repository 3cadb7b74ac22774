// Package selection holds the exhibitor shown in the detail view.
package selection

import (
	"expodir/internal/domain"
	"expodir/internal/eventbus"
)

// Service handles selection logic. Selecting never touches the network;
// the detail view renders the record already fetched for the list.
type Service struct {
	state         *State
	bus           eventbus.EventBus
	detailEnabled bool
}

// NewService creates a new selection service. With detailEnabled false
// the detail view is unavailable and Select refuses every record.
func NewService(bus eventbus.EventBus, detailEnabled bool) *Service {
	return &Service{
		state:         &State{},
		bus:           bus,
		detailEnabled: detailEnabled,
	}
}

// DetailEnabled reports whether records can be selected
func (s *Service) DetailEnabled() bool {
	return s.detailEnabled
}

// Select makes e the selected exhibitor
func (s *Service) Select(e domain.Exhibitor) bool {
	if !s.detailEnabled {
		return false
	}

	selected := e
	s.state.Selected = &selected
	s.publish(e.ID)
	return true
}

// Clear drops the selection
func (s *Service) Clear() {
	if s.state.Selected == nil {
		return
	}
	s.state.Selected = nil
	s.publish(0)
}

// Selected returns the selected exhibitor
func (s *Service) Selected() (*domain.Exhibitor, bool) {
	return s.state.Selected, s.state.Selected != nil
}

// HasSelection returns true if an exhibitor is selected
func (s *Service) HasSelection() bool {
	return s.state.Selected != nil
}

func (s *Service) publish(id int) {
	if s.bus != nil {
		s.bus.Publish(eventbus.SelectionChangedEvent{ExhibitorID: id})
	}
}
