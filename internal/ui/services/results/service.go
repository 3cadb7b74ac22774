// Package results reconciles asynchronous listing fetches with the
// displayed result page using generation tickets.
package results

import (
	"go.uber.org/zap"

	"expodir/internal/domain"
	"expodir/internal/eventbus"
	"expodir/internal/ui/services/query"
)

// Service applies fetch results in start order. A result whose ticket is
// not the latest is discarded without touching any state.
type Service struct {
	state *State
	bus   eventbus.EventBus
}

// NewService creates a new results service
func NewService(bus eventbus.EventBus) *Service {
	return &Service{
		state: &State{},
		bus:   bus,
	}
}

// Begin opens a new generation for params and marks loading
func (s *Service) Begin(params query.Params) Ticket {
	s.state.Generation++
	s.state.Loading = true
	s.state.LastParams = params

	t := Ticket{Generation: s.state.Generation, Params: params}
	s.publish(eventbus.FetchStartedEvent{Generation: t.Generation, Query: params.Encode()})
	return t
}

// Apply replaces the displayed page if t is current. It reports whether
// the result was applied.
func (s *Service) Apply(t Ticket, page domain.ResultPage) bool {
	if !s.isCurrent(t) {
		zap.S().Debugf("Discarding stale result for generation %d (current %d)", t.Generation, s.state.Generation)
		return false
	}

	s.state.Page = page
	s.state.Loading = false
	s.state.Err = nil
	s.state.Loaded = true

	s.publish(eventbus.ResultsAppliedEvent{
		Generation: t.Generation,
		Items:      len(page.Items),
		TotalCount: page.TotalCount,
		TotalPages: page.TotalPages,
	})
	return true
}

// Fail records err for the current generation. The previous page stays
// displayed. It reports whether the failure was current.
func (s *Service) Fail(t Ticket, err error) bool {
	if !s.isCurrent(t) {
		zap.S().Debugf("Discarding stale failure for generation %d: %v", t.Generation, err)
		return false
	}

	s.state.Loading = false
	s.state.Err = err
	zap.S().Errorf("Listing fetch failed: %v", err)

	s.publish(eventbus.FetchFailedEvent{Generation: t.Generation, Err: err})
	return true
}

// Page returns the displayed result page
func (s *Service) Page() domain.ResultPage {
	return s.state.Page
}

// Loading reports whether the current generation is still in flight
func (s *Service) Loading() bool {
	return s.state.Loading
}

// Err returns the error of the current generation, if it failed
func (s *Service) Err() error {
	return s.state.Err
}

// Generation returns the latest started generation
func (s *Service) Generation() uint64 {
	return s.state.Generation
}

// LastParams returns the params of the latest started fetch
func (s *Service) LastParams() query.Params {
	return s.state.LastParams
}

// Loaded reports whether any result has been applied yet
func (s *Service) Loaded() bool {
	return s.state.Loaded
}

// ItemAt returns the item at index i of the displayed page
func (s *Service) ItemAt(i int) (domain.Exhibitor, bool) {
	items := s.state.Page.Items
	if i < 0 || i >= len(items) {
		return domain.Exhibitor{}, false
	}
	return items[i], true
}

// OutOfRange reports whether the displayed page is empty although the
// listing has pages, i.e. a page past the end was requested
func (s *Service) OutOfRange() bool {
	return s.state.Loaded && s.state.Page.IsEmpty() && s.state.Page.TotalPages > 0
}

func (s *Service) isCurrent(t Ticket) bool {
	return t.Generation == s.state.Generation
}

func (s *Service) publish(e eventbus.DomainEvent) {
	if s.bus != nil {
		s.bus.Publish(e)
	}
}
