package service

import (
	"context"
	"strings"
	"time"

	"github.com/funkybooboo/alle-sub000/internal/core/domain"
	"github.com/funkybooboo/alle-sub000/internal/core/ports"
)

// NopPublisher drops every event.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, domain.Event) {}

var _ ports.EventPublisher = NopPublisher{}

// usageRecorder counts how often a preset is applied to a task.
type usageRecorder interface {
	RecordTagUsage(ctx context.Context, name string) error
	RecordColorUsage(ctx context.Context, hex string) error
}

type nopUsage struct{}

func (nopUsage) RecordTagUsage(context.Context, string) error   { return nil }
func (nopUsage) RecordColorUsage(context.Context, string) error { return nil }

func publish(ctx context.Context, events ports.EventPublisher, t domain.EventType, id uint64, now time.Time) {
	events.Publish(ctx, domain.Event{Type: t, EntityID: id, Timestamp: now.UTC()})
}

func orNop(events ports.EventPublisher) ports.EventPublisher {
	if events == nil {
		return NopPublisher{}
	}
	return events
}

func orNow(now func() time.Time) func() time.Time {
	if now == nil {
		return time.Now
	}
	return now
}

func trimmed(s string) (string, error) {
	value := strings.TrimSpace(s)
	if value == "" {
		return "", domain.ErrEmptyText
	}
	return value, nil
}

// checkOrder verifies ids is a permutation of existing.
func checkOrder(existing, ids []uint64) error {
	if len(existing) != len(ids) {
		return domain.ErrInvalidOrder
	}
	seen := make(map[uint64]bool, len(existing))
	for _, id := range existing {
		seen[id] = false
	}
	for _, id := range ids {
		used, ok := seen[id]
		if !ok || used {
			return domain.ErrInvalidOrder
		}
		seen[id] = true
	}
	return nil
}
