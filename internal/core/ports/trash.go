package ports

import (
	"context"
	"time"

	"github.com/funkybooboo/alle-sub000/internal/core/domain"
)

type TrashRepository interface {
	FindAll(ctx context.Context) ([]domain.TrashItem, error)
	FindByID(ctx context.Context, id uint64) (domain.TrashItem, error)
	Create(ctx context.Context, item domain.TrashItem) (domain.TrashItem, error)
	Delete(ctx context.Context, id uint64) (bool, error)
	DeleteAll(ctx context.Context) error
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int, error)
}

type TrashService interface {
	ListTrash(ctx context.Context) ([]domain.TrashItem, error)
	Restore(ctx context.Context, id uint64) (domain.Task, error)
	Undo(ctx context.Context) (domain.Task, error)
	DeleteItem(ctx context.Context, id uint64) error
	Empty(ctx context.Context) error
	PurgeExpired(ctx context.Context, now time.Time) (int, error)
}
