package types

// Navigation actions
type NavigateAction struct {
	Direction string // "up", "down", "pageup", "pagedown", "home", "end"
}

func (a NavigateAction) Type() string { return "navigate" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
	Data string // initial text for text modes
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

type SubmitTextAction struct {
	Text string
	Mode Mode // Which mode submitted the text
}

func (a SubmitTextAction) Type() string { return "submit_text" }

type CancelTextAction struct {
	Mode Mode
}

func (a CancelTextAction) Type() string { return "cancel_text" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }

type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

// Detail actions
type OpenDetailAction struct {
	Index int
}

func (a OpenDetailAction) Type() string { return "open_detail" }

type CloseDetailAction struct{}

func (a CloseDetailAction) Type() string { return "close_detail" }

// Page moves
const (
	PageFirst = "first"
	PagePrev  = "prev"
	PageNext  = "next"
	PageLast  = "last"
)

type PageAction struct {
	Move string
}

func (a PageAction) Type() string { return "page" }

// Filter actions
type SetAlphaAction struct {
	Letter string // filter.AlphaAll clears
}

func (a SetAlphaAction) Type() string { return "set_alpha" }

// PickAlphaAction applies the letter under the alpha bar cursor
type PickAlphaAction struct{}

func (a PickAlphaAction) Type() string { return "pick_alpha" }

// SyncAlphaCursorAction points the alpha bar cursor at the active letter
type SyncAlphaCursorAction struct{}

func (a SyncAlphaCursorAction) Type() string { return "sync_alpha_cursor" }

type MoveAlphaCursorAction struct {
	Delta int
}

func (a MoveAlphaCursorAction) Type() string { return "move_alpha_cursor" }

// PanelNavigateAction moves the cursor of the open checklist panel
type PanelNavigateAction struct {
	Direction string
}

func (a PanelNavigateAction) Type() string { return "panel_navigate" }

// TogglePanelItemAction flips the term under the panel cursor
type TogglePanelItemAction struct{}

func (a TogglePanelItemAction) Type() string { return "toggle_panel_item" }

type RemoveLastBadgeAction struct{}

func (a RemoveLastBadgeAction) Type() string { return "remove_last_badge" }

type ClearFiltersAction struct{}

func (a ClearFiltersAction) Type() string { return "clear_filters" }

type CycleSortAction struct{}

func (a CycleSortAction) Type() string { return "cycle_sort" }

type RetryAction struct{}

func (a RetryAction) Type() string { return "retry" }

// Detail view actions
type MoveLinkCursorAction struct {
	Delta int
}

func (a MoveLinkCursorAction) Type() string { return "move_link_cursor" }

type OpenLinkAction struct {
	Index int // -1 for the link under the cursor
}

func (a OpenLinkAction) Type() string { return "open_link" }

// Copyable detail fields
const (
	CopyEmail   = "email"
	CopyPhone   = "phone"
	CopyWebsite = "website"
)

type CopyAction struct {
	Field string
}

func (a CopyAction) Type() string { return "copy" }

type ViewDescriptionAction struct{}

func (a ViewDescriptionAction) Type() string { return "view_description" }
