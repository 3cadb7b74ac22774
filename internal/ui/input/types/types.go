package types

import tea "github.com/charmbracelet/bubbletea"

// Mode represents an input mode
type Mode int

const (
	ModeNormal Mode = iota
	ModeSearch
	ModeGoToPage
	ModeAlpha
	ModeIndustryPanel
	ModeCountryPanel
	ModeDetail
)

// IsText reports whether the mode edits the shared text input
func (m Mode) IsText() bool {
	return m == ModeSearch || m == ModeGoToPage
}

// IsPanel reports whether the mode shows a reference table checklist
func (m Mode) IsPanel() bool {
	return m == ModeIndustryPanel || m == ModeCountryPanel
}

// Action represents a command the model should execute
type Action interface {
	Type() string
}

// Context provides read-only access to model state needed for input handling
type Context interface {
	CurrentIndex() int
	TotalItems() int
	HasFilters() bool
	BadgeCount() int
	CurrentPage() int
	TotalPages() int
	DetailEnabled() bool
	HasSelection() bool
	LinkCount() int
	CurrentSearch() string
}

// ModeHandler handles input for a specific mode
type ModeHandler interface {
	// HandleKey processes a key message and returns actions and whether to consume the event
	HandleKey(msg tea.KeyMsg, ctx Context) ([]Action, bool)

	// Enter is called when entering this mode
	Enter(ctx Context) []Action

	// Exit is called when leaving this mode
	Exit(ctx Context) []Action

	// Name returns the mode name for display
	Name() string
}
