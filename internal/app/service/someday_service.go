package service

import (
	"context"
	"time"

	"github.com/funkybooboo/alle-sub000/internal/core/domain"
	"github.com/funkybooboo/alle-sub000/internal/core/ports"
)

type taskDeleter interface {
	DeleteTask(ctx context.Context, id uint64) (domain.TrashItem, error)
}

type SomedayService struct {
	lists   ports.SomedayListRepository
	tasks   ports.TaskRepository
	deleter taskDeleter
	events  ports.EventPublisher
	now     func() time.Time
}

var _ ports.SomedayService = (*SomedayService)(nil)

func NewSomedayService(
	lists ports.SomedayListRepository,
	tasks ports.TaskRepository,
	deleter taskDeleter,
	events ports.EventPublisher,
) *SomedayService {
	return &SomedayService{
		lists:   lists,
		tasks:   tasks,
		deleter: deleter,
		events:  orNop(events),
		now:     time.Now,
	}
}

func (s *SomedayService) ListLists(ctx context.Context) ([]domain.SomedayList, error) {
	return s.lists.FindAll(ctx)
}

func (s *SomedayService) CreateList(ctx context.Context, name string) (domain.SomedayList, error) {
	name, err := trimmed(name)
	if err != nil {
		return domain.SomedayList{}, err
	}

	list, err := s.lists.Create(ctx, name)
	if err != nil {
		return domain.SomedayList{}, err
	}
	publish(ctx, s.events, domain.EventListChanged, list.ID, s.now())
	return list, nil
}

func (s *SomedayService) RenameList(ctx context.Context, id uint64, name string) (domain.SomedayList, error) {
	name, err := trimmed(name)
	if err != nil {
		return domain.SomedayList{}, err
	}

	list, err := s.lists.Update(ctx, id, &name, nil)
	if err != nil {
		return domain.SomedayList{}, err
	}
	publish(ctx, s.events, domain.EventListChanged, list.ID, s.now())
	return list, nil
}

// ReorderLists assigns positions 1..n following ids, which must name every
// list exactly once.
func (s *SomedayService) ReorderLists(ctx context.Context, ids []uint64) ([]domain.SomedayList, error) {
	existing, err := s.lists.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	current := make([]uint64, 0, len(existing))
	for _, list := range existing {
		current = append(current, list.ID)
	}
	if err := checkOrder(current, ids); err != nil {
		return nil, err
	}

	for i, id := range ids {
		position := i + 1
		if _, err := s.lists.Update(ctx, id, nil, &position); err != nil {
			return nil, err
		}
	}
	publish(ctx, s.events, domain.EventListChanged, 0, s.now())
	return s.lists.FindAll(ctx)
}

// DeleteList moves the list's tasks to the trash, then removes the list.
func (s *SomedayService) DeleteList(ctx context.Context, id uint64) error {
	if _, err := s.lists.FindByID(ctx, id); err != nil {
		return err
	}

	tasks, err := s.tasks.FindByList(ctx, id)
	if err != nil {
		return err
	}
	for _, task := range tasks {
		if _, err := s.deleter.DeleteTask(ctx, task.ID); err != nil {
			return err
		}
	}

	deleted, err := s.lists.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrListNotFound
	}
	publish(ctx, s.events, domain.EventListChanged, id, s.now())
	return nil
}
