package db

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/funkybooboo/alle-sub000/internal/core/domain"
	"github.com/funkybooboo/alle-sub000/internal/core/ports"
)

const attachmentColumns = `id, task_id, file_name, file_size, mime_type, storage_path, created_at`

const (
	listTagsQuery  = `SELECT id, task_id, name, color FROM task_tags WHERE task_id = ? ORDER BY id`
	listLinksQuery = `SELECT id, task_id, url, title FROM task_links WHERE task_id = ? ORDER BY id`

	listAttachmentsQuery = `SELECT ` + attachmentColumns + ` FROM task_attachments WHERE task_id = ? ORDER BY id`
	getAttachmentQuery   = `SELECT ` + attachmentColumns + ` FROM task_attachments WHERE id = ?`

	insertAttachmentQuery = `
INSERT INTO task_attachments (task_id, file_name, file_size, mime_type, storage_path, created_at)
VALUES (?, ?, ?, ?, ?, ?)`
)

type tagRow struct {
	ID     uint64         `db:"id"`
	TaskID uint64         `db:"task_id"`
	Name   string         `db:"name"`
	Color  sql.NullString `db:"color"`
}

type linkRow struct {
	ID     uint64         `db:"id"`
	TaskID uint64         `db:"task_id"`
	URL    string         `db:"url"`
	Title  sql.NullString `db:"title"`
}

type attachmentRow struct {
	ID          uint64    `db:"id"`
	TaskID      uint64    `db:"task_id"`
	FileName    string    `db:"file_name"`
	FileSize    int64     `db:"file_size"`
	MimeType    string    `db:"mime_type"`
	StoragePath string    `db:"storage_path"`
	CreatedAt   time.Time `db:"created_at"`
}

type TaskExtrasRepository struct {
	db  *sqlx.DB
	now func() time.Time
}

var _ ports.TaskExtrasRepository = (*TaskExtrasRepository)(nil)

func NewTaskExtrasRepository(db *sqlx.DB) *TaskExtrasRepository {
	return &TaskExtrasRepository{db: db, now: time.Now}
}

// WithClock replaces time.Now for attachment timestamps.
func (r *TaskExtrasRepository) WithClock(now func() time.Time) *TaskExtrasRepository {
	r.now = now
	return r
}

func (r *TaskExtrasRepository) AddTag(ctx context.Context, tag domain.TaskTag) (domain.TaskTag, error) {
	result, err := r.db.ExecContext(ctx, `INSERT INTO task_tags (task_id, name, color) VALUES (?, ?, ?)`,
		tag.TaskID, tag.Name, nullString(tag.Color))
	if err != nil {
		return domain.TaskTag{}, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return domain.TaskTag{}, err
	}

	tag.ID = uint64(id)
	tag.Color = copyString(tag.Color)
	return tag, nil
}

func (r *TaskExtrasRepository) RemoveTag(ctx context.Context, taskID, tagID uint64) (bool, error) {
	return execAffected(ctx, r.db, `DELETE FROM task_tags WHERE id = ? AND task_id = ?`, tagID, taskID)
}

func (r *TaskExtrasRepository) ListTags(ctx context.Context, taskID uint64) ([]domain.TaskTag, error) {
	var rows []tagRow
	if err := r.db.SelectContext(ctx, &rows, listTagsQuery, taskID); err != nil {
		return nil, err
	}

	tags := make([]domain.TaskTag, 0, len(rows))
	for _, row := range rows {
		tags = append(tags, domain.TaskTag{
			ID:     row.ID,
			TaskID: row.TaskID,
			Name:   row.Name,
			Color:  stringPtr(row.Color),
		})
	}
	return tags, nil
}

func (r *TaskExtrasRepository) AddLink(ctx context.Context, link domain.TaskLink) (domain.TaskLink, error) {
	result, err := r.db.ExecContext(ctx, `INSERT INTO task_links (task_id, url, title) VALUES (?, ?, ?)`,
		link.TaskID, link.URL, nullString(link.Title))
	if err != nil {
		return domain.TaskLink{}, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return domain.TaskLink{}, err
	}

	link.ID = uint64(id)
	link.Title = copyString(link.Title)
	return link, nil
}

func (r *TaskExtrasRepository) RemoveLink(ctx context.Context, taskID, linkID uint64) (bool, error) {
	return execAffected(ctx, r.db, `DELETE FROM task_links WHERE id = ? AND task_id = ?`, linkID, taskID)
}

func (r *TaskExtrasRepository) ListLinks(ctx context.Context, taskID uint64) ([]domain.TaskLink, error) {
	var rows []linkRow
	if err := r.db.SelectContext(ctx, &rows, listLinksQuery, taskID); err != nil {
		return nil, err
	}

	links := make([]domain.TaskLink, 0, len(rows))
	for _, row := range rows {
		links = append(links, domain.TaskLink{
			ID:     row.ID,
			TaskID: row.TaskID,
			URL:    row.URL,
			Title:  stringPtr(row.Title),
		})
	}
	return links, nil
}

func (r *TaskExtrasRepository) AddAttachment(ctx context.Context, attachment domain.TaskAttachment) (domain.TaskAttachment, error) {
	result, err := r.db.ExecContext(ctx, insertAttachmentQuery,
		attachment.TaskID,
		attachment.FileName,
		attachment.FileSize,
		attachment.MimeType,
		attachment.StoragePath,
		r.now().UTC(),
	)
	if err != nil {
		return domain.TaskAttachment{}, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return domain.TaskAttachment{}, err
	}
	return r.GetAttachment(ctx, uint64(id))
}

func (r *TaskExtrasRepository) GetAttachment(ctx context.Context, id uint64) (domain.TaskAttachment, error) {
	return findAttachment(ctx, r.db, id)
}

func (r *TaskExtrasRepository) RemoveAttachment(ctx context.Context, id uint64) (bool, error) {
	return execAffected(ctx, r.db, `DELETE FROM task_attachments WHERE id = ?`, id)
}

func (r *TaskExtrasRepository) ListAttachments(ctx context.Context, taskID uint64) ([]domain.TaskAttachment, error) {
	return selectAttachments(ctx, r.db, taskID)
}

// DeleteByTask drops every extra of a task and returns the removed
// attachments so their files can be cleaned up.
func (r *TaskExtrasRepository) DeleteByTask(ctx context.Context, taskID uint64) ([]domain.TaskAttachment, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	removed, err := selectAttachments(ctx, tx, taskID)
	if err != nil {
		return nil, err
	}
	for _, table := range []string{"task_tags", "task_links", "task_attachments"} {
		if _, err := tx.ExecContext(ctx, `DELETE FROM `+table+` WHERE task_id = ?`, taskID); err != nil {
			return nil, err
		}
	}
	return removed, tx.Commit()
}

func findAttachment(ctx context.Context, q sqlx.QueryerContext, id uint64) (domain.TaskAttachment, error) {
	var row attachmentRow
	if err := sqlx.GetContext(ctx, q, &row, getAttachmentQuery, id); err != nil {
		return domain.TaskAttachment{}, notFound(err, domain.ErrAttachmentNotFound)
	}
	return domain.TaskAttachment(row), nil
}

func selectAttachments(ctx context.Context, q sqlx.QueryerContext, taskID uint64) ([]domain.TaskAttachment, error) {
	var rows []attachmentRow
	if err := sqlx.SelectContext(ctx, q, &rows, listAttachmentsQuery, taskID); err != nil {
		return nil, err
	}

	attachments := make([]domain.TaskAttachment, 0, len(rows))
	for _, row := range rows {
		attachments = append(attachments, domain.TaskAttachment(row))
	}
	return attachments, nil
}

func stringPtr(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	value := s.String
	return &value
}

func copyString(s *string) *string {
	if s == nil {
		return nil
	}
	value := *s
	return &value
}
