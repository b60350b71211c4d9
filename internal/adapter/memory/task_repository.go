package memory

import (
	"context"
	"sync"
	"time"

	"github.com/funkybooboo/alle-sub000/internal/core/domain"
	"github.com/funkybooboo/alle-sub000/internal/core/ports"
	"github.com/funkybooboo/alle-sub000/pkg/dateutil"
)

type TaskRepository struct {
	mu     sync.RWMutex
	tasks  map[uint64]domain.Task
	nextID uint64
	now    func() time.Time
}

var _ ports.TaskRepository = (*TaskRepository)(nil)

func NewTaskRepository(opts ...Option) *TaskRepository {
	o := buildOptions(opts)
	return &TaskRepository{
		tasks:  make(map[uint64]domain.Task),
		nextID: 1,
		now:    o.now,
	}
}

func (r *TaskRepository) FindAll(_ context.Context) ([]domain.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tasks := make([]domain.Task, 0, len(r.tasks))
	for _, task := range r.tasks {
		tasks = append(tasks, cloneTask(task))
	}
	sortByDate(tasks)
	return tasks, nil
}

func (r *TaskRepository) FindByDate(_ context.Context, date time.Time) ([]domain.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tasks := make([]domain.Task, 0)
	for _, task := range r.tasks {
		if task.Date != nil && dateutil.SameDay(*task.Date, date) {
			tasks = append(tasks, cloneTask(task))
		}
	}
	sortByPosition(tasks)
	return tasks, nil
}

func (r *TaskRepository) FindByList(_ context.Context, listID uint64) ([]domain.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tasks := make([]domain.Task, 0)
	for _, task := range r.tasks {
		if task.ListID != nil && *task.ListID == listID {
			tasks = append(tasks, cloneTask(task))
		}
	}
	sortByPosition(tasks)
	return tasks, nil
}

func (r *TaskRepository) FindByID(_ context.Context, id uint64) (domain.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	task, ok := r.tasks[id]
	if !ok {
		return domain.Task{}, domain.ErrTaskNotFound
	}
	return cloneTask(task), nil
}

func (r *TaskRepository) Create(_ context.Context, input domain.CreateTaskInput) (domain.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	task := domain.Task{
		ID:        r.nextID,
		Text:      input.Text,
		Date:      cloneTime(input.Date),
		ListID:    cloneUint(input.ListID),
		Notes:     cloneString(input.Notes),
		Color:     cloneString(input.Color),
		Position:  input.Position,
		CreatedAt: now,
		UpdatedAt: now,
	}
	r.tasks[task.ID] = task
	r.nextID++
	return cloneTask(task), nil
}

func (r *TaskRepository) Update(_ context.Context, id uint64, input domain.UpdateTaskInput) (domain.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	task, ok := r.tasks[id]
	if !ok {
		return domain.Task{}, domain.ErrTaskNotFound
	}

	if input.Text != nil {
		task.Text = *input.Text
	}
	if input.Completed != nil {
		task.Completed = *input.Completed
	}
	if input.DateSet {
		task.Date = cloneTime(input.Date)
	}
	if input.ListIDSet {
		task.ListID = cloneUint(input.ListID)
	}
	if input.NotesSet {
		task.Notes = cloneString(input.Notes)
	}
	if input.ColorSet {
		task.Color = cloneString(input.Color)
	}
	if input.Position != nil {
		task.Position = *input.Position
	}
	task.UpdatedAt = r.now()

	r.tasks[id] = task
	return cloneTask(task), nil
}

func (r *TaskRepository) Delete(_ context.Context, id uint64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.tasks[id]; !ok {
		return false, nil
	}
	delete(r.tasks, id)
	return true, nil
}

func (r *TaskRepository) DeleteAll(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.tasks = make(map[uint64]domain.Task)
	return nil
}

func (r *TaskRepository) Ping(_ context.Context) error {
	return nil
}
