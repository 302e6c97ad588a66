package events

// Event type constants
const (
	// Input events, published by whatever owns the client connection
	EventTypeKeyDown     EventType = "key_down"
	EventTypeKeyUp       EventType = "key_up"
	EventTypePointerDown EventType = "pointer_down"
	EventTypePointerUp   EventType = "pointer_up"

	// EventTypeRecordEmitted fires after a chat record was persisted by the orchestrator
	EventTypeRecordEmitted EventType = "record_emitted"
)
