package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/funkybooboo/alle-sub000/internal/core/domain"
	"github.com/funkybooboo/alle-sub000/internal/core/ports"
)

type TrashRepository struct {
	mu     sync.RWMutex
	items  map[uint64]domain.TrashItem
	nextID uint64
}

var _ ports.TrashRepository = (*TrashRepository)(nil)

func NewTrashRepository() *TrashRepository {
	return &TrashRepository{
		items:  make(map[uint64]domain.TrashItem),
		nextID: 1,
	}
}

// FindAll returns the newest deletions first.
func (r *TrashRepository) FindAll(_ context.Context) ([]domain.TrashItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]domain.TrashItem, 0, len(r.items))
	for _, item := range r.items {
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool {
		if !items[i].DeletedAt.Equal(items[j].DeletedAt) {
			return items[i].DeletedAt.After(items[j].DeletedAt)
		}
		return items[i].ID > items[j].ID
	})
	return items, nil
}

func (r *TrashRepository) FindByID(_ context.Context, id uint64) (domain.TrashItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[id]
	if !ok {
		return domain.TrashItem{}, domain.ErrTrashItemNotFound
	}
	return item, nil
}

func (r *TrashRepository) Create(_ context.Context, item domain.TrashItem) (domain.TrashItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item.ID = r.nextID
	item.TaskDate = cloneTime(item.TaskDate)
	item.SomedayListID = cloneUint(item.SomedayListID)
	item.TaskNotes = cloneString(item.TaskNotes)
	item.TaskColor = cloneString(item.TaskColor)
	r.items[item.ID] = item
	r.nextID++
	return item, nil
}

func (r *TrashRepository) Delete(_ context.Context, id uint64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return false, nil
	}
	delete(r.items, id)
	return true, nil
}

func (r *TrashRepository) DeleteAll(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items = make(map[uint64]domain.TrashItem)
	return nil
}

func (r *TrashRepository) DeleteOlderThan(_ context.Context, cutoff time.Time) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for id, item := range r.items {
		if item.DeletedAt.Before(cutoff) {
			delete(r.items, id)
			removed++
		}
	}
	return removed, nil
}
