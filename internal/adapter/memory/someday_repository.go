package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/funkybooboo/alle-sub000/internal/core/domain"
	"github.com/funkybooboo/alle-sub000/internal/core/ports"
)

type SomedayListRepository struct {
	mu     sync.RWMutex
	lists  map[uint64]domain.SomedayList
	nextID uint64
	now    func() time.Time
}

var _ ports.SomedayListRepository = (*SomedayListRepository)(nil)

func NewSomedayListRepository(opts ...Option) *SomedayListRepository {
	o := buildOptions(opts)
	return &SomedayListRepository{
		lists:  make(map[uint64]domain.SomedayList),
		nextID: 1,
		now:    o.now,
	}
}

func (r *SomedayListRepository) FindAll(_ context.Context) ([]domain.SomedayList, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	lists := make([]domain.SomedayList, 0, len(r.lists))
	for _, list := range r.lists {
		lists = append(lists, list)
	}
	sort.Slice(lists, func(i, j int) bool {
		if lists[i].Position != lists[j].Position {
			return lists[i].Position < lists[j].Position
		}
		return lists[i].ID < lists[j].ID
	})
	return lists, nil
}

func (r *SomedayListRepository) FindByID(_ context.Context, id uint64) (domain.SomedayList, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list, ok := r.lists[id]
	if !ok {
		return domain.SomedayList{}, domain.ErrListNotFound
	}
	return list, nil
}

func (r *SomedayListRepository) Create(_ context.Context, name string) (domain.SomedayList, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	position := 0
	for _, list := range r.lists {
		position = max(position, list.Position)
	}

	now := r.now()
	list := domain.SomedayList{
		ID:        r.nextID,
		Name:      name,
		Position:  position + 1,
		CreatedAt: now,
		UpdatedAt: now,
	}
	r.lists[list.ID] = list
	r.nextID++
	return list, nil
}

func (r *SomedayListRepository) Update(_ context.Context, id uint64, name *string, position *int) (domain.SomedayList, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	list, ok := r.lists[id]
	if !ok {
		return domain.SomedayList{}, domain.ErrListNotFound
	}
	if name != nil {
		list.Name = *name
	}
	if position != nil {
		list.Position = *position
	}
	list.UpdatedAt = r.now()
	r.lists[id] = list
	return list, nil
}

func (r *SomedayListRepository) Delete(_ context.Context, id uint64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.lists[id]; !ok {
		return false, nil
	}
	delete(r.lists, id)
	return true, nil
}
