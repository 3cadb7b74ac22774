package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventFilterChanged    EventType = "FilterChanged"
	EventFetchStarted     EventType = "FetchStarted"
	EventResultsApplied   EventType = "ResultsApplied"
	EventFetchFailed      EventType = "FetchFailed"
	EventReferenceLoaded  EventType = "ReferenceLoaded"
	EventSelectionChanged EventType = "SelectionChanged"
	EventError            EventType = "Error"
	EventConfigLoaded     EventType = "ConfigLoaded"
	EventConfigSaved      EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// FilterChangedEvent is emitted when the effective listing query changes
type FilterChangedEvent struct {
	Reason string // which operation changed it, e.g. "toggle_industry"
	Page   int
}

func (e FilterChangedEvent) Type() EventType { return EventFilterChanged }

// FetchStartedEvent is emitted when a listing fetch is begun
type FetchStartedEvent struct {
	Generation uint64
	Query      string
}

func (e FetchStartedEvent) Type() EventType { return EventFetchStarted }

// ResultsAppliedEvent is emitted when a fetch result replaces the current page
type ResultsAppliedEvent struct {
	Generation uint64
	Items      int
	TotalCount int
	TotalPages int
}

func (e ResultsAppliedEvent) Type() EventType { return EventResultsApplied }

// FetchFailedEvent is emitted when the current fetch fails
type FetchFailedEvent struct {
	Generation uint64
	Err        error
}

func (e FetchFailedEvent) Type() EventType { return EventFetchFailed }

// ReferenceLoadedEvent is emitted once a reference table has been loaded
type ReferenceLoadedEvent struct {
	Table string // "industry_category" or "country"
	Count int
}

func (e ReferenceLoadedEvent) Type() EventType { return EventReferenceLoaded }

// SelectionChangedEvent is emitted when the selected exhibitor changes.
// ExhibitorID is zero when the selection was cleared.
type SelectionChangedEvent struct {
	ExhibitorID int
}

func (e SelectionChangedEvent) Type() EventType { return EventSelectionChanged }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	BaseURL string
	Path    string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }
