package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventQueryChanged   EventType = "QueryChanged"
	EventResultsChanged EventType = "ResultsChanged"
	EventCursorMoved    EventType = "CursorMoved"
	EventCommitted      EventType = "Committed"
	EventCancelled      EventType = "Cancelled"
	EventDelivered      EventType = "Delivered"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// QueryChangedEvent is emitted after the query has been re-ranked
type QueryChangedEvent struct {
	Query      string
	MatchCount int
}

func (e QueryChangedEvent) Type() EventType { return EventQueryChanged }

// ResultsChangedEvent is emitted when a session receives a new result list
type ResultsChangedEvent struct {
	Count    int
	Selected int // -1 when nothing is selected
}

func (e ResultsChangedEvent) Type() EventType { return EventResultsChanged }

// CursorMovedEvent is emitted when the selected row changes
type CursorMovedEvent struct {
	OldIndex int
	NewIndex int
}

func (e CursorMovedEvent) Type() EventType { return EventCursorMoved }

// CommittedEvent is emitted when the session ends with a selection
type CommittedEvent struct {
	Match Match
}

func (e CommittedEvent) Type() EventType { return EventCommitted }

// CancelledEvent is emitted when the session ends without a selection
type CancelledEvent struct{}

func (e CancelledEvent) Type() EventType { return EventCancelled }

// DeliveredEvent is emitted once the committed glyph has reached the sink
type DeliveredEvent struct {
	Text string
	Sink string
}

func (e DeliveredEvent) Type() EventType { return EventDelivered }
