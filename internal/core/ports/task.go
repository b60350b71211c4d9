package ports

import (
	"context"
	"io"
	"time"

	"github.com/funkybooboo/alle-sub000/internal/core/domain"
)

// TaskRepository persists tasks. FindByID returns domain.ErrTaskNotFound for
// unknown ids; Delete reports whether a task was removed.
type TaskRepository interface {
	FindAll(ctx context.Context) ([]domain.Task, error)
	FindByDate(ctx context.Context, date time.Time) ([]domain.Task, error)
	FindByList(ctx context.Context, listID uint64) ([]domain.Task, error)
	FindByID(ctx context.Context, id uint64) (domain.Task, error)
	Create(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error)
	Update(ctx context.Context, id uint64, input domain.UpdateTaskInput) (domain.Task, error)
	Delete(ctx context.Context, id uint64) (bool, error)
	DeleteAll(ctx context.Context) error
	Ping(ctx context.Context) error
}

// TaskExtrasRepository stores tags, links and attachment records of tasks.
type TaskExtrasRepository interface {
	AddTag(ctx context.Context, tag domain.TaskTag) (domain.TaskTag, error)
	RemoveTag(ctx context.Context, taskID, tagID uint64) (bool, error)
	ListTags(ctx context.Context, taskID uint64) ([]domain.TaskTag, error)
	AddLink(ctx context.Context, link domain.TaskLink) (domain.TaskLink, error)
	RemoveLink(ctx context.Context, taskID, linkID uint64) (bool, error)
	ListLinks(ctx context.Context, taskID uint64) ([]domain.TaskLink, error)
	AddAttachment(ctx context.Context, attachment domain.TaskAttachment) (domain.TaskAttachment, error)
	GetAttachment(ctx context.Context, id uint64) (domain.TaskAttachment, error)
	RemoveAttachment(ctx context.Context, id uint64) (bool, error)
	ListAttachments(ctx context.Context, taskID uint64) ([]domain.TaskAttachment, error)
	DeleteByTask(ctx context.Context, taskID uint64) ([]domain.TaskAttachment, error)
}

type TaskService interface {
	ListTasks(ctx context.Context) ([]domain.Task, error)
	ListTasksByDate(ctx context.Context, date time.Time) ([]domain.Task, error)
	ListTasksInRange(ctx context.Context, from, to time.Time) ([]domain.Task, error)
	ListTasksByList(ctx context.Context, listID uint64) ([]domain.Task, error)
	GetTask(ctx context.Context, id uint64) (domain.Task, error)
	CreateTask(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error)
	UpdateTask(ctx context.Context, id uint64, input domain.UpdateTaskInput) (domain.Task, error)
	ToggleTask(ctx context.Context, id uint64) (domain.Task, error)
	MoveTask(ctx context.Context, id uint64, input domain.MoveTaskInput) (domain.Task, error)
	DeleteTask(ctx context.Context, id uint64) (domain.TrashItem, error)
	DeleteAllTasks(ctx context.Context) error
}

type TaskExtrasService interface {
	AddTag(ctx context.Context, taskID uint64, name string, color *string) (domain.TaskTag, error)
	RemoveTag(ctx context.Context, taskID, tagID uint64) error
	AddLink(ctx context.Context, taskID uint64, url string, title *string) (domain.TaskLink, error)
	RemoveLink(ctx context.Context, taskID, linkID uint64) error
	ListAttachments(ctx context.Context, taskID uint64) ([]domain.TaskAttachment, error)
	GetAttachment(ctx context.Context, id uint64) (domain.TaskAttachment, error)
	OpenAttachment(ctx context.Context, id uint64) (domain.TaskAttachment, io.ReadCloser, error)
	UploadAttachment(ctx context.Context, input UploadInput) (domain.TaskAttachment, error)
	DeleteAttachment(ctx context.Context, id uint64) error
}
