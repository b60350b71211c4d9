package db

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/funkybooboo/alle-sub000/internal/core/domain"
	"github.com/funkybooboo/alle-sub000/internal/core/ports"
	"github.com/funkybooboo/alle-sub000/pkg/dateutil"
)

const trashColumns = `id, task_id, task_text, task_date, task_completed, task_notes, task_color, task_type, someday_list_id, deleted_at`

const (
	listTrashQuery = `SELECT ` + trashColumns + ` FROM trash_items ORDER BY deleted_at DESC, id DESC`

	getTrashQuery = `SELECT ` + trashColumns + ` FROM trash_items WHERE id = ?`

	insertTrashQuery = `
INSERT INTO trash_items (task_id, task_text, task_date, task_completed, task_notes, task_color, task_type, someday_list_id, deleted_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
)

type trashRow struct {
	ID            uint64         `db:"id"`
	TaskID        uint64         `db:"task_id"`
	TaskText      string         `db:"task_text"`
	TaskDate      sql.NullTime   `db:"task_date"`
	TaskCompleted bool           `db:"task_completed"`
	TaskNotes     sql.NullString `db:"task_notes"`
	TaskColor     sql.NullString `db:"task_color"`
	TaskType      string         `db:"task_type"`
	SomedayListID sql.NullInt64  `db:"someday_list_id"`
	DeletedAt     time.Time      `db:"deleted_at"`
}

type TrashRepository struct {
	db *sqlx.DB
}

var _ ports.TrashRepository = (*TrashRepository)(nil)

func NewTrashRepository(db *sqlx.DB) *TrashRepository {
	return &TrashRepository{db: db}
}

// FindAll returns the newest deletions first.
func (r *TrashRepository) FindAll(ctx context.Context) ([]domain.TrashItem, error) {
	var rows []trashRow
	if err := r.db.SelectContext(ctx, &rows, listTrashQuery); err != nil {
		return nil, err
	}

	items := make([]domain.TrashItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, mapTrashRow(row))
	}
	return items, nil
}

func (r *TrashRepository) FindByID(ctx context.Context, id uint64) (domain.TrashItem, error) {
	var row trashRow
	if err := r.db.GetContext(ctx, &row, getTrashQuery, id); err != nil {
		return domain.TrashItem{}, notFound(err, domain.ErrTrashItemNotFound)
	}
	return mapTrashRow(row), nil
}

func (r *TrashRepository) Create(ctx context.Context, item domain.TrashItem) (domain.TrashItem, error) {
	result, err := r.db.ExecContext(ctx, insertTrashQuery,
		item.TaskID,
		item.TaskText,
		nullDate(item.TaskDate),
		item.TaskCompleted,
		nullString(item.TaskNotes),
		nullString(item.TaskColor),
		string(item.TaskType),
		nullID(item.SomedayListID),
		item.DeletedAt.UTC(),
	)
	if err != nil {
		return domain.TrashItem{}, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return domain.TrashItem{}, err
	}
	return r.FindByID(ctx, uint64(id))
}

func (r *TrashRepository) Delete(ctx context.Context, id uint64) (bool, error) {
	return execAffected(ctx, r.db, `DELETE FROM trash_items WHERE id = ?`, id)
}

func (r *TrashRepository) DeleteAll(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM trash_items`)
	return err
}

func (r *TrashRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM trash_items WHERE deleted_at < ?`, cutoff.UTC())
	if err != nil {
		return 0, err
	}
	affected, err := result.RowsAffected()
	return int(affected), err
}

func mapTrashRow(row trashRow) domain.TrashItem {
	item := domain.TrashItem{
		ID:            row.ID,
		TaskID:        row.TaskID,
		TaskText:      row.TaskText,
		TaskCompleted: row.TaskCompleted,
		TaskType:      domain.TaskType(row.TaskType),
		DeletedAt:     row.DeletedAt,
	}
	if row.TaskDate.Valid {
		value := dateutil.StartOfDay(row.TaskDate.Time)
		item.TaskDate = &value
	}
	if row.TaskNotes.Valid {
		value := row.TaskNotes.String
		item.TaskNotes = &value
	}
	if row.TaskColor.Valid {
		value := row.TaskColor.String
		item.TaskColor = &value
	}
	if row.SomedayListID.Valid {
		value := uint64(row.SomedayListID.Int64)
		item.SomedayListID = &value
	}
	return item
}
