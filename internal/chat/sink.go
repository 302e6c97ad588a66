package chat

//go:generate mockgen -destination=mock/mock_sink.go -package=mockchat -source=sink.go

import (
	"context"
)

// Sink persists and broadcasts chat records. Create returns once the record
// is durably stored; the returned record carries the assigned ID.
type Sink interface {
	Create(ctx context.Context, record *Record) (*Record, error)
}

// Broadcaster announces a stored record to connected clients
type Broadcaster interface {
	Broadcast(ctx context.Context, record *Record) error
}
