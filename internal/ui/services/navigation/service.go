// Package navigation tracks a cursor and scroll viewport over a list whose
// length can change underneath it.
package navigation

// Service handles cursor movement over a list of Count rows
type Service struct {
	state   *State
	countFn func() int
}

// NewService creates a new navigation service
func NewService(viewportHeight int) *Service {
	if viewportHeight < 1 {
		viewportHeight = 1
	}
	return &Service{
		state: &State{ViewportHeight: viewportHeight},
	}
}

// SetCountFunction sets the function reporting the current row count
func (s *Service) SetCountFunction(fn func() int) {
	s.countFn = fn
}

// GetCursor returns current cursor position
func (s *Service) GetCursor() int {
	return s.state.Cursor
}

// GetViewportOffset returns current viewport offset
func (s *Service) GetViewportOffset() int {
	return s.state.ViewportOffset
}

// GetViewportHeight returns current viewport height
func (s *Service) GetViewportHeight() int {
	return s.state.ViewportHeight
}

// SetViewportHeight updates viewport height
func (s *Service) SetViewportHeight(height int) {
	if height < 1 {
		height = 1
	}
	s.state.ViewportHeight = height
	s.ensureVisible()
}

// Visible returns the half-open row range currently in the viewport
func (s *Service) Visible() (start, end int) {
	s.refresh()
	start = s.state.ViewportOffset
	end = min(start+s.state.ViewportHeight, s.state.Count)
	return start, max(end, start)
}

// Navigate handles navigation in a direction
func (s *Service) Navigate(direction Direction) {
	s.refresh()

	switch direction {
	case DirectionUp:
		s.state.Cursor--
	case DirectionDown:
		s.state.Cursor++
	case DirectionPageUp:
		s.state.Cursor -= max(s.state.ViewportHeight-1, 1)
	case DirectionPageDown:
		s.state.Cursor += max(s.state.ViewportHeight-1, 1)
	case DirectionHome:
		s.state.Cursor = 0
	case DirectionEnd:
		s.state.Cursor = s.state.Count - 1
	}

	s.state.Cursor = s.clampIndex(s.state.Cursor)
	s.ensureVisible()
}

// MoveToIndex moves cursor to specific index
func (s *Service) MoveToIndex(index int) {
	s.refresh()
	s.state.Cursor = s.clampIndex(index)
	s.ensureVisible()
}

// Reset moves the cursor to the top, used when the list is replaced
func (s *Service) Reset() {
	s.state.Cursor = 0
	s.state.ViewportOffset = 0
}

func (s *Service) refresh() {
	if s.countFn != nil {
		s.state.Count = s.countFn()
	}
}

func (s *Service) clampIndex(index int) int {
	if index >= s.state.Count {
		index = s.state.Count - 1
	}
	if index < 0 {
		return 0
	}
	return index
}

func (s *Service) ensureVisible() {
	if s.state.Cursor < s.state.ViewportOffset {
		s.state.ViewportOffset = s.state.Cursor
	} else if s.state.Cursor >= s.state.ViewportOffset+s.state.ViewportHeight {
		s.state.ViewportOffset = s.state.Cursor - s.state.ViewportHeight + 1
	}
}
