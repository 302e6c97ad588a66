package events

// EventType represents the type of an event on the bus
type EventType string

// Event is the base interface for all events
type Event interface {
	GetType() EventType
	IsCancelled() bool
	Cancel()
}

// BaseEvent provides common implementation for all events
type BaseEvent struct {
	Type      EventType
	Cancelled bool
}

func (e *BaseEvent) GetType() EventType { return e.Type }
func (e *BaseEvent) IsCancelled() bool  { return e.Cancelled }
func (e *BaseEvent) Cancel()            { e.Cancelled = true }

// KeyEvent carries the modifier state reported with a key down or key up
type KeyEvent struct {
	BaseEvent
	Alt   bool
	Ctrl  bool
	Shift bool
}

// NewKeyEvent creates a key event of the given type
func NewKeyEvent(eventType EventType, alt, ctrl, shift bool) *KeyEvent {
	return &KeyEvent{
		BaseEvent: BaseEvent{Type: eventType},
		Alt:       alt,
		Ctrl:      ctrl,
		Shift:     shift,
	}
}

// PointerEvent carries client coordinates of a pointer press or release
type PointerEvent struct {
	BaseEvent
	X int
	Y int
}

// NewPointerEvent creates a pointer event of the given type
func NewPointerEvent(eventType EventType, x, y int) *PointerEvent {
	return &PointerEvent{
		BaseEvent: BaseEvent{Type: eventType},
		X:         x,
		Y:         y,
	}
}

// RecordEmittedEvent announces a persisted chat record
type RecordEmittedEvent struct {
	BaseEvent
	RecordID string
	ActorID  string
	ItemID   string
}

// NewRecordEmittedEvent creates a record emitted event
func NewRecordEmittedEvent(recordID, actorID, itemID string) *RecordEmittedEvent {
	return &RecordEmittedEvent{
		BaseEvent: BaseEvent{Type: EventTypeRecordEmitted},
		RecordID:  recordID,
		ActorID:   actorID,
		ItemID:    itemID,
	}
}
