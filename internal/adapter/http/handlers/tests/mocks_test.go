package tests

import (
	"context"
	"io"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/funkybooboo/alle-sub000/internal/core/domain"
	"github.com/funkybooboo/alle-sub000/internal/core/ports"
)

type taskServiceMock struct {
	mock.Mock
}

var _ ports.TaskService = (*taskServiceMock)(nil)

func (m *taskServiceMock) tasks(args mock.Arguments) ([]domain.Task, error) {
	var tasks []domain.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks, args.Error(1)
}

func (m *taskServiceMock) ListTasks(ctx context.Context) ([]domain.Task, error) {
	return m.tasks(m.Called(ctx))
}

func (m *taskServiceMock) ListTasksByDate(ctx context.Context, date time.Time) ([]domain.Task, error) {
	return m.tasks(m.Called(ctx, date))
}

func (m *taskServiceMock) ListTasksInRange(ctx context.Context, from, to time.Time) ([]domain.Task, error) {
	return m.tasks(m.Called(ctx, from, to))
}

func (m *taskServiceMock) ListTasksByList(ctx context.Context, listID uint64) ([]domain.Task, error) {
	return m.tasks(m.Called(ctx, listID))
}

func (m *taskServiceMock) GetTask(ctx context.Context, id uint64) (domain.Task, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) CreateTask(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) UpdateTask(ctx context.Context, id uint64, input domain.UpdateTaskInput) (domain.Task, error) {
	args := m.Called(ctx, id, input)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) ToggleTask(ctx context.Context, id uint64) (domain.Task, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) MoveTask(ctx context.Context, id uint64, input domain.MoveTaskInput) (domain.Task, error) {
	args := m.Called(ctx, id, input)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) DeleteTask(ctx context.Context, id uint64) (domain.TrashItem, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.TrashItem), args.Error(1)
}

func (m *taskServiceMock) DeleteAllTasks(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type extrasServiceMock struct {
	mock.Mock
}

var _ ports.TaskExtrasService = (*extrasServiceMock)(nil)

func (m *extrasServiceMock) AddTag(ctx context.Context, taskID uint64, name string, color *string) (domain.TaskTag, error) {
	args := m.Called(ctx, taskID, name, color)
	return args.Get(0).(domain.TaskTag), args.Error(1)
}

func (m *extrasServiceMock) RemoveTag(ctx context.Context, taskID, tagID uint64) error {
	return m.Called(ctx, taskID, tagID).Error(0)
}

func (m *extrasServiceMock) AddLink(ctx context.Context, taskID uint64, url string, title *string) (domain.TaskLink, error) {
	args := m.Called(ctx, taskID, url, title)
	return args.Get(0).(domain.TaskLink), args.Error(1)
}

func (m *extrasServiceMock) RemoveLink(ctx context.Context, taskID, linkID uint64) error {
	return m.Called(ctx, taskID, linkID).Error(0)
}

func (m *extrasServiceMock) ListAttachments(ctx context.Context, taskID uint64) ([]domain.TaskAttachment, error) {
	args := m.Called(ctx, taskID)
	var attachments []domain.TaskAttachment
	if value := args.Get(0); value != nil {
		attachments = value.([]domain.TaskAttachment)
	}
	return attachments, args.Error(1)
}

func (m *extrasServiceMock) GetAttachment(ctx context.Context, id uint64) (domain.TaskAttachment, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.TaskAttachment), args.Error(1)
}

func (m *extrasServiceMock) OpenAttachment(ctx context.Context, id uint64) (domain.TaskAttachment, io.ReadCloser, error) {
	args := m.Called(ctx, id)
	var rc io.ReadCloser
	if value := args.Get(1); value != nil {
		rc = value.(io.ReadCloser)
	}
	return args.Get(0).(domain.TaskAttachment), rc, args.Error(2)
}

func (m *extrasServiceMock) UploadAttachment(ctx context.Context, input ports.UploadInput) (domain.TaskAttachment, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(domain.TaskAttachment), args.Error(1)
}

func (m *extrasServiceMock) DeleteAttachment(ctx context.Context, id uint64) error {
	return m.Called(ctx, id).Error(0)
}
