package interfaces

import "context"

// IEventPublisher emits ledger events after a mutation is committed.
type IEventPublisher interface {
	Publish(ctx context.Context, routingKey string, body []byte) error
}
