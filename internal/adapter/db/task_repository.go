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

const taskColumns = `id, text, completed, date, list_id, notes, color, position, created_at, updated_at`

const (
	listTasksQuery = `
SELECT ` + taskColumns + `
FROM tasks
ORDER BY CASE WHEN date IS NULL THEN 1 ELSE 0 END, date, created_at, id`

	listTasksByDateQuery = `
SELECT ` + taskColumns + `
FROM tasks
WHERE date >= ? AND date < ?
ORDER BY position, created_at, id`

	listTasksByListQuery = `
SELECT ` + taskColumns + `
FROM tasks
WHERE list_id = ?
ORDER BY position, created_at, id`

	getTaskQuery = `SELECT ` + taskColumns + ` FROM tasks WHERE id = ?`

	insertTaskQuery = `
INSERT INTO tasks (text, completed, date, list_id, notes, color, position, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

	updateTaskQuery = `
UPDATE tasks
SET text = ?, completed = ?, date = ?, list_id = ?, notes = ?, color = ?, position = ?, updated_at = ?
WHERE id = ?`
)

type TaskRepository struct {
	db  *sqlx.DB
	now func() time.Time
}

type taskRow struct {
	ID        uint64         `db:"id"`
	Text      string         `db:"text"`
	Completed bool           `db:"completed"`
	Date      sql.NullTime   `db:"date"`
	ListID    sql.NullInt64  `db:"list_id"`
	Notes     sql.NullString `db:"notes"`
	Color     sql.NullString `db:"color"`
	Position  int            `db:"position"`
	CreatedAt time.Time      `db:"created_at"`
	UpdatedAt time.Time      `db:"updated_at"`
}

var _ ports.TaskRepository = (*TaskRepository)(nil)

func NewTaskRepository(db *sqlx.DB) *TaskRepository {
	return &TaskRepository{db: db, now: time.Now}
}

// WithClock replaces time.Now for timestamps.
func (r *TaskRepository) WithClock(now func() time.Time) *TaskRepository {
	r.now = now
	return r
}

func (r *TaskRepository) FindAll(ctx context.Context) ([]domain.Task, error) {
	return r.selectTasks(ctx, listTasksQuery)
}

func (r *TaskRepository) FindByDate(ctx context.Context, date time.Time) ([]domain.Task, error) {
	start := dateutil.StartOfDay(date)
	return r.selectTasks(ctx, listTasksByDateQuery, start, start.AddDate(0, 0, 1))
}

func (r *TaskRepository) FindByList(ctx context.Context, listID uint64) ([]domain.Task, error) {
	return r.selectTasks(ctx, listTasksByListQuery, listID)
}

func (r *TaskRepository) FindByID(ctx context.Context, id uint64) (domain.Task, error) {
	return findTask(ctx, r.db, id)
}

func (r *TaskRepository) Create(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error) {
	now := r.now().UTC()
	result, err := r.db.ExecContext(ctx, insertTaskQuery,
		input.Text,
		false,
		nullDate(input.Date),
		nullID(input.ListID),
		nullString(input.Notes),
		nullString(input.Color),
		input.Position,
		now,
		now,
	)
	if err != nil {
		return domain.Task{}, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return domain.Task{}, err
	}

	return r.FindByID(ctx, uint64(id))
}

// Update reads the row and writes the merged result in one transaction.
func (r *TaskRepository) Update(ctx context.Context, id uint64, input domain.UpdateTaskInput) (domain.Task, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return domain.Task{}, err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	task, err := findTask(ctx, tx, id)
	if err != nil {
		return domain.Task{}, err
	}

	if input.Text != nil {
		task.Text = *input.Text
	}
	if input.Completed != nil {
		task.Completed = *input.Completed
	}
	if input.DateSet {
		task.Date = input.Date
	}
	if input.ListIDSet {
		task.ListID = input.ListID
	}
	if input.NotesSet {
		task.Notes = input.Notes
	}
	if input.ColorSet {
		task.Color = input.Color
	}
	if input.Position != nil {
		task.Position = *input.Position
	}

	if _, err := tx.ExecContext(ctx, updateTaskQuery,
		task.Text,
		task.Completed,
		nullDate(task.Date),
		nullID(task.ListID),
		nullString(task.Notes),
		nullString(task.Color),
		task.Position,
		r.now().UTC(),
		id,
	); err != nil {
		return domain.Task{}, err
	}

	task, err = findTask(ctx, tx, id)
	if err != nil {
		return domain.Task{}, err
	}

	return task, tx.Commit()
}

func (r *TaskRepository) Delete(ctx context.Context, id uint64) (bool, error) {
	return execAffected(ctx, r.db, `DELETE FROM tasks WHERE id = ?`, id)
}

func (r *TaskRepository) DeleteAll(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM tasks`)
	return err
}

func (r *TaskRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

func (r *TaskRepository) selectTasks(ctx context.Context, query string, args ...any) ([]domain.Task, error) {
	var rows []taskRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, err
	}

	tasks := make([]domain.Task, 0, len(rows))
	for _, row := range rows {
		tasks = append(tasks, mapTaskRowToDomainTask(row))
	}
	return tasks, nil
}

func findTask(ctx context.Context, q sqlx.QueryerContext, id uint64) (domain.Task, error) {
	var row taskRow
	if err := sqlx.GetContext(ctx, q, &row, getTaskQuery, id); err != nil {
		return domain.Task{}, notFound(err, domain.ErrTaskNotFound)
	}
	return mapTaskRowToDomainTask(row), nil
}

func mapTaskRowToDomainTask(row taskRow) domain.Task {
	task := domain.Task{
		ID:        row.ID,
		Text:      row.Text,
		Completed: row.Completed,
		Position:  row.Position,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}

	if row.Date.Valid {
		value := dateutil.StartOfDay(row.Date.Time)
		task.Date = &value
	}

	if row.ListID.Valid {
		value := uint64(row.ListID.Int64)
		task.ListID = &value
	}

	if row.Notes.Valid {
		value := row.Notes.String
		task.Notes = &value
	}

	if row.Color.Valid {
		value := row.Color.String
		task.Color = &value
	}

	return task
}

func nullDate(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: dateutil.StartOfDay(*t), Valid: true}
}

func nullID(id *uint64) sql.NullInt64 {
	if id == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*id), Valid: true}
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}
