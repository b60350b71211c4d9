package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/funkybooboo/alle-sub000/internal/core/domain"
	"github.com/funkybooboo/alle-sub000/internal/core/ports"
	"github.com/funkybooboo/alle-sub000/internal/metrics"
)

type TrashService struct {
	trash     ports.TrashRepository
	tasks     ports.TaskRepository
	lists     ports.SomedayListRepository
	events    ports.EventPublisher
	retention time.Duration
	now       func() time.Time
}

var _ ports.TrashService = (*TrashService)(nil)

func NewTrashService(
	trash ports.TrashRepository,
	tasks ports.TaskRepository,
	lists ports.SomedayListRepository,
	events ports.EventPublisher,
	retentionDays int,
) *TrashService {
	return &TrashService{
		trash:     trash,
		tasks:     tasks,
		lists:     lists,
		events:    orNop(events),
		retention: time.Duration(retentionDays) * 24 * time.Hour,
		now:       time.Now,
	}
}

func (s *TrashService) ListTrash(ctx context.Context) ([]domain.TrashItem, error) {
	return s.trash.FindAll(ctx)
}

// Restore re-creates the task from its snapshot under a new id, after the
// last task of its day or list. A task whose someday list was deleted in the
// meantime comes back as an undated task.
func (s *TrashService) Restore(ctx context.Context, id uint64) (domain.Task, error) {
	item, err := s.trash.FindByID(ctx, id)
	if err != nil {
		return domain.Task{}, err
	}

	input := domain.CreateTaskInput{
		Text:  item.TaskText,
		Date:  item.TaskDate,
		Notes: item.TaskNotes,
		Color: item.TaskColor,
	}
	if item.SomedayListID != nil {
		_, err := s.lists.FindByID(ctx, *item.SomedayListID)
		switch {
		case err == nil:
			input.ListID = item.SomedayListID
		case !errors.Is(err, domain.ErrListNotFound):
			return domain.Task{}, err
		}
	}

	position, err := nextPosition(ctx, s.tasks, input.Date, input.ListID)
	if err != nil {
		return domain.Task{}, err
	}
	input.Position = position

	task, err := s.tasks.Create(ctx, input)
	if err != nil {
		return domain.Task{}, err
	}
	if item.TaskCompleted {
		completed := true
		if task, err = s.tasks.Update(ctx, task.ID, domain.UpdateTaskInput{Completed: &completed}); err != nil {
			return domain.Task{}, err
		}
	}

	if _, err := s.trash.Delete(ctx, item.ID); err != nil {
		return domain.Task{}, err
	}

	metrics.IncrementTaskOperation("restore")
	publish(ctx, s.events, domain.EventTrashRestored, task.ID, s.now())
	return task, nil
}

// Undo restores the most recently deleted task.
func (s *TrashService) Undo(ctx context.Context) (domain.Task, error) {
	items, err := s.trash.FindAll(ctx)
	if err != nil {
		return domain.Task{}, err
	}
	if len(items) == 0 {
		return domain.Task{}, domain.ErrTrashEmpty
	}
	return s.Restore(ctx, items[0].ID)
}

func (s *TrashService) DeleteItem(ctx context.Context, id uint64) error {
	deleted, err := s.trash.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrTrashItemNotFound
	}
	publish(ctx, s.events, domain.EventTrashChanged, id, s.now())
	return nil
}

func (s *TrashService) Empty(ctx context.Context) error {
	if err := s.trash.DeleteAll(ctx); err != nil {
		return err
	}
	publish(ctx, s.events, domain.EventTrashChanged, 0, s.now())
	return nil
}

// PurgeExpired removes items deleted longer ago than the retention window.
func (s *TrashService) PurgeExpired(ctx context.Context, now time.Time) (int, error) {
	if s.retention <= 0 {
		return 0, nil
	}
	removed, err := s.trash.DeleteOlderThan(ctx, now.Add(-s.retention))
	if err != nil {
		return 0, err
	}
	if removed > 0 {
		metrics.AddTrashPurged(removed)
		publish(ctx, s.events, domain.EventTrashChanged, 0, now)
	}
	return removed, nil
}

// RunJanitor purges expired items every interval until ctx is done.
func (s *TrashService) RunJanitor(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			removed, err := s.PurgeExpired(ctx, s.now())
			if err != nil {
				zap.L().Error("failed to purge trash", zap.Error(err))
				continue
			}
			if removed > 0 {
				zap.L().Info("purged expired trash items", zap.Int("count", removed))
			}
		}
	}
}
