package handlers

import (
	"fmt"

	"expodir/internal/ui/commands"
	"expodir/internal/ui/services/results"
	"expodir/internal/ui/state"
)

// EventHandler applies the outcome of background commands to the
// result reconciler and the presentation state
type EventHandler struct {
	state     *state.AppState
	results   *results.Service
	onApplied func()
}

// NewEventHandler creates a new event handler. onApplied runs after a
// result page replaced the displayed one.
func NewEventHandler(appState *state.AppState, res *results.Service, onApplied func()) *EventHandler {
	return &EventHandler{
		state:     appState,
		results:   res,
		onApplied: onApplied,
	}
}

// HandleListingLoaded reconciles a fetch outcome. It reports false when
// the outcome belonged to a superseded fetch and was discarded.
func (h *EventHandler) HandleListingLoaded(msg commands.ListingLoadedMsg) bool {
	if msg.Err != nil {
		if !h.results.Fail(msg.Ticket, msg.Err) {
			return false
		}
		h.state.SetError(fmt.Sprintf("%v (press r to retry)", msg.Err))
		return true
	}

	if !h.results.Apply(msg.Ticket, msg.Page) {
		return false
	}

	if h.state.StatusIsError && h.state.ReferenceErr == nil {
		h.state.ClearStatus()
	}
	if h.onApplied != nil {
		h.onApplied()
	}
	return true
}

// HandleReferencesLoaded records the reference table outcome. Missing
// tables leave labels unresolved; the listing keeps working.
func (h *EventHandler) HandleReferencesLoaded(msg commands.ReferencesLoadedMsg) {
	h.state.ReferenceLoading = false
	h.state.ReferenceErr = msg.Result.Err()

	if h.state.ReferenceErr != nil {
		h.state.SetError(fmt.Sprintf("Filters unavailable: %v", h.state.ReferenceErr))
	}
}
