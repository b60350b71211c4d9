package db

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/funkybooboo/alle-sub000/internal/core/domain"
	"github.com/funkybooboo/alle-sub000/internal/core/ports"
)

const somedayColumns = `id, name, position, created_at, updated_at`

const (
	listSomedayQuery = `SELECT ` + somedayColumns + ` FROM someday_lists ORDER BY position, id`

	getSomedayQuery = `SELECT ` + somedayColumns + ` FROM someday_lists WHERE id = ?`

	// The position is computed in the same statement so concurrent creates
	// cannot pick the same slot.
	insertSomedayQuery = `
INSERT INTO someday_lists (name, position, created_at, updated_at)
SELECT ?, COALESCE(MAX(position), 0) + 1, ?, ? FROM someday_lists`

	updateSomedayQuery = `UPDATE someday_lists SET name = ?, position = ?, updated_at = ? WHERE id = ?`
)

type somedayRow struct {
	ID        uint64    `db:"id"`
	Name      string    `db:"name"`
	Position  int       `db:"position"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

type SomedayListRepository struct {
	db  *sqlx.DB
	now func() time.Time
}

var _ ports.SomedayListRepository = (*SomedayListRepository)(nil)

func NewSomedayListRepository(db *sqlx.DB) *SomedayListRepository {
	return &SomedayListRepository{db: db, now: time.Now}
}

// WithClock replaces time.Now for timestamps.
func (r *SomedayListRepository) WithClock(now func() time.Time) *SomedayListRepository {
	r.now = now
	return r
}

func (r *SomedayListRepository) FindAll(ctx context.Context) ([]domain.SomedayList, error) {
	var rows []somedayRow
	if err := r.db.SelectContext(ctx, &rows, listSomedayQuery); err != nil {
		return nil, err
	}

	lists := make([]domain.SomedayList, 0, len(rows))
	for _, row := range rows {
		lists = append(lists, domain.SomedayList(row))
	}
	return lists, nil
}

func (r *SomedayListRepository) FindByID(ctx context.Context, id uint64) (domain.SomedayList, error) {
	return findSomedayList(ctx, r.db, id)
}

func (r *SomedayListRepository) Create(ctx context.Context, name string) (domain.SomedayList, error) {
	now := r.now().UTC()
	result, err := r.db.ExecContext(ctx, insertSomedayQuery, name, now, now)
	if err != nil {
		return domain.SomedayList{}, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return domain.SomedayList{}, err
	}
	return r.FindByID(ctx, uint64(id))
}

func (r *SomedayListRepository) Update(ctx context.Context, id uint64, name *string, position *int) (domain.SomedayList, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return domain.SomedayList{}, err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	list, err := findSomedayList(ctx, tx, id)
	if err != nil {
		return domain.SomedayList{}, err
	}
	if name != nil {
		list.Name = *name
	}
	if position != nil {
		list.Position = *position
	}

	if _, err := tx.ExecContext(ctx, updateSomedayQuery, list.Name, list.Position, r.now().UTC(), id); err != nil {
		return domain.SomedayList{}, err
	}

	list, err = findSomedayList(ctx, tx, id)
	if err != nil {
		return domain.SomedayList{}, err
	}
	return list, tx.Commit()
}

func (r *SomedayListRepository) Delete(ctx context.Context, id uint64) (bool, error) {
	return execAffected(ctx, r.db, `DELETE FROM someday_lists WHERE id = ?`, id)
}

func findSomedayList(ctx context.Context, q sqlx.QueryerContext, id uint64) (domain.SomedayList, error) {
	var row somedayRow
	if err := sqlx.GetContext(ctx, q, &row, getSomedayQuery, id); err != nil {
		return domain.SomedayList{}, notFound(err, domain.ErrListNotFound)
	}
	return domain.SomedayList(row), nil
}
