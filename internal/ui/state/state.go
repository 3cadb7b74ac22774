package state

import "expodir/internal/ui/services/filter"

// AppState contains the presentation state that no service owns
type AppState struct {
	// Popups
	ShowHelp    bool
	InPagerMode bool

	// Status bar
	StatusMessage string
	StatusIsError bool

	// Reference tables
	ReferenceLoading bool
	ReferenceErr     error

	// Checklist panel
	PanelCursor int
	PanelOffset int

	// Alpha bar cursor, 0 is All
	AlphaCursor int

	// Detail view link cursor
	LinkCursor int

	// Text typed into the search box and not yet committed
	SearchDraft string
}

// NewAppState creates a new application state
func NewAppState() *AppState {
	return &AppState{}
}

// SetStatus shows an informational message
func (s *AppState) SetStatus(msg string) {
	s.StatusMessage = msg
	s.StatusIsError = false
}

// SetError shows an error message
func (s *AppState) SetError(msg string) {
	s.StatusMessage = msg
	s.StatusIsError = true
}

// ClearStatus clears the status bar
func (s *AppState) ClearStatus() {
	s.StatusMessage = ""
	s.StatusIsError = false
}

// AlphaEntries returns the alpha bar entries in display order
func AlphaEntries() []string {
	return append([]string{filter.AlphaAll}, filter.AlphaLetters...)
}

// MoveAlphaCursor moves the alpha bar cursor, wrapping at both ends
func (s *AppState) MoveAlphaCursor(delta int) {
	n := len(AlphaEntries())
	s.AlphaCursor = ((s.AlphaCursor+delta)%n + n) % n
}

// AlphaAtCursor returns the entry under the alpha bar cursor
func (s *AppState) AlphaAtCursor() string {
	entries := AlphaEntries()
	if s.AlphaCursor < 0 || s.AlphaCursor >= len(entries) {
		return filter.AlphaAll
	}
	return entries[s.AlphaCursor]
}

// SyncAlphaCursor points the cursor at letter
func (s *AppState) SyncAlphaCursor(letter string) {
	s.AlphaCursor = 0
	for i, e := range AlphaEntries() {
		if e == letter {
			s.AlphaCursor = i
			return
		}
	}
}

// MovePanelCursor moves the checklist cursor within count rows and keeps
// it inside a window of height rows
func (s *AppState) MovePanelCursor(direction string, count, height int) {
	if count == 0 {
		s.PanelCursor, s.PanelOffset = 0, 0
		return
	}
	if height < 1 {
		height = 1
	}

	switch direction {
	case "up":
		s.PanelCursor--
	case "down":
		s.PanelCursor++
	case "pageup":
		s.PanelCursor -= height
	case "pagedown":
		s.PanelCursor += height
	case "home":
		s.PanelCursor = 0
	case "end":
		s.PanelCursor = count - 1
	}
	s.PanelCursor = max(0, min(s.PanelCursor, count-1))

	if s.PanelCursor < s.PanelOffset {
		s.PanelOffset = s.PanelCursor
	}
	if s.PanelCursor >= s.PanelOffset+height {
		s.PanelOffset = s.PanelCursor - height + 1
	}
}

// ResetPanel moves the checklist back to the top
func (s *AppState) ResetPanel() {
	s.PanelCursor, s.PanelOffset = 0, 0
}

// MoveLinkCursor moves the detail link cursor, wrapping within count
func (s *AppState) MoveLinkCursor(delta, count int) {
	if count == 0 {
		s.LinkCursor = 0
		return
	}
	s.LinkCursor = ((s.LinkCursor+delta)%count + count) % count
}
