package ports

import (
	"context"

	"github.com/funkybooboo/alle-sub000/internal/core/domain"
)

// EventPublisher fans domain events out to subscribers. Publish must not block
// on slow subscribers.
type EventPublisher interface {
	Publish(ctx context.Context, event domain.Event)
}
