// Package search coalesces search keystrokes into one committed value per
// quiet period.
package search

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// DefaultWindow is the quiet period before typed text is committed
const DefaultWindow = 500 * time.Millisecond

// Service is a trailing-edge debouncer for the search input. Each Touch
// supersedes the previous one; only the last text survives the window.
type Service struct {
	state  *State
	window time.Duration
}

// NewService creates a debouncer with the given window
func NewService(window time.Duration) *Service {
	if window < 0 {
		window = DefaultWindow
	}
	return &Service{
		state:  &State{},
		window: window,
	}
}

// Window returns the debounce window
func (s *Service) Window() time.Duration {
	return s.window
}

// Touch records text as the pending value and returns the command that
// settles it after the window
func (s *Service) Touch(text string) tea.Cmd {
	s.state.Version++
	s.state.Pending = text
	s.state.HasPending = true

	version := s.state.Version
	if s.window == 0 {
		return func() tea.Msg { return SettledMsg{Version: version} }
	}
	return tea.Tick(s.window, func(time.Time) tea.Msg {
		return SettledMsg{Version: version}
	})
}

// Settle returns the pending text if msg belongs to the latest keystroke
func (s *Service) Settle(msg SettledMsg) (string, bool) {
	if msg.Version != s.state.Version || !s.state.HasPending {
		return "", false
	}
	return s.take()
}

// Flush commits the pending text now. Ticks already scheduled become stale.
func (s *Service) Flush() (string, bool) {
	if !s.state.HasPending {
		return "", false
	}
	s.state.Version++
	return s.take()
}

// Cancel drops the pending text
func (s *Service) Cancel() {
	s.state.Version++
	s.state.Pending = ""
	s.state.HasPending = false
}

// Pending reports whether typed text is waiting for its window
func (s *Service) Pending() bool {
	return s.state.HasPending
}

func (s *Service) take() (string, bool) {
	text := s.state.Pending
	s.state.Pending = ""
	s.state.HasPending = false
	zap.S().Debugf("Search settled on %q", text)
	return text, true
}
