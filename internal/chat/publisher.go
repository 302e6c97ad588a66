package chat

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// Store is the persistence half of a Publisher
type Store interface {
	Create(ctx context.Context, record *Record) (*Record, error)
}

// Publisher is the default Sink: it stores a record and then hands it to
// every broadcaster. Broadcast failures are logged, not returned, since the
// record is already durable at that point.
type Publisher struct {
	store        Store
	broadcasters []Broadcaster
	logger       *zap.Logger
}

// PublisherConfig configures a Publisher
type PublisherConfig struct {
	Store        Store
	Broadcasters []Broadcaster
	Logger       *zap.Logger
}

// NewPublisher creates a Publisher
func NewPublisher(cfg *PublisherConfig) *Publisher {
	if cfg == nil || cfg.Store == nil {
		panic("chat publisher requires a store")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Publisher{
		store:        cfg.Store,
		broadcasters: cfg.Broadcasters,
		logger:       logger,
	}
}

// Create implements Sink
func (p *Publisher) Create(ctx context.Context, record *Record) (*Record, error) {
	if record == nil {
		return nil, fmt.Errorf("record cannot be nil")
	}

	stored, err := p.store.Create(ctx, record)
	if err != nil {
		return nil, fmt.Errorf("failed to store chat record: %w", err)
	}

	for _, b := range p.broadcasters {
		if err := b.Broadcast(ctx, stored); err != nil {
			p.logger.Warn("failed to broadcast chat record",
				zap.String("record_id", stored.ID),
				zap.Error(err))
		}
	}

	return stored, nil
}
