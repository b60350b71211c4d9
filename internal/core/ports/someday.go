package ports

import (
	"context"

	"github.com/funkybooboo/alle-sub000/internal/core/domain"
)

// SomedayListRepository stores the backlog lists. Create appends: the new
// list takes the position after the current last one.
type SomedayListRepository interface {
	FindAll(ctx context.Context) ([]domain.SomedayList, error)
	FindByID(ctx context.Context, id uint64) (domain.SomedayList, error)
	Create(ctx context.Context, name string) (domain.SomedayList, error)
	Update(ctx context.Context, id uint64, name *string, position *int) (domain.SomedayList, error)
	Delete(ctx context.Context, id uint64) (bool, error)
}

type SomedayService interface {
	ListLists(ctx context.Context) ([]domain.SomedayList, error)
	CreateList(ctx context.Context, name string) (domain.SomedayList, error)
	RenameList(ctx context.Context, id uint64, name string) (domain.SomedayList, error)
	ReorderLists(ctx context.Context, ids []uint64) ([]domain.SomedayList, error)
	DeleteList(ctx context.Context, id uint64) error
}
