package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/funkybooboo/alle-sub000/internal/core/domain"
	"github.com/funkybooboo/alle-sub000/internal/core/ports"
	"github.com/funkybooboo/alle-sub000/internal/metrics"
	"github.com/funkybooboo/alle-sub000/pkg/dateutil"
)

type TaskDeps struct {
	Tasks  ports.TaskRepository
	Lists  ports.SomedayListRepository
	Trash  ports.TrashRepository
	Extras ports.TaskExtrasRepository
	Files  ports.FileStorage
	Usage  usageRecorder
	Events ports.EventPublisher
	Now    func() time.Time
}

type TaskService struct {
	tasks  ports.TaskRepository
	lists  ports.SomedayListRepository
	trash  ports.TrashRepository
	extras ports.TaskExtrasRepository
	files  ports.FileStorage
	usage  usageRecorder
	events ports.EventPublisher
	now    func() time.Time
}

var _ ports.TaskService = (*TaskService)(nil)

func NewTaskService(deps TaskDeps) *TaskService {
	usage := deps.Usage
	if usage == nil {
		usage = nopUsage{}
	}
	return &TaskService{
		tasks:  deps.Tasks,
		lists:  deps.Lists,
		trash:  deps.Trash,
		extras: deps.Extras,
		files:  deps.Files,
		usage:  usage,
		events: orNop(deps.Events),
		now:    orNow(deps.Now),
	}
}

func (s *TaskService) ListTasks(ctx context.Context) ([]domain.Task, error) {
	tasks, err := s.tasks.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return s.withExtras(ctx, tasks)
}

func (s *TaskService) ListTasksByDate(ctx context.Context, date time.Time) ([]domain.Task, error) {
	tasks, err := s.tasks.FindByDate(ctx, date)
	if err != nil {
		return nil, err
	}
	return s.withExtras(ctx, tasks)
}

func (s *TaskService) ListTasksInRange(ctx context.Context, from, to time.Time) ([]domain.Task, error) {
	if dateutil.StartOfDay(to).Before(dateutil.StartOfDay(from)) {
		return nil, domain.ErrInvalidRange
	}

	all, err := s.tasks.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	tasks := make([]domain.Task, 0, len(all))
	for _, task := range all {
		if task.Date != nil && dateutil.InRange(*task.Date, from, to) {
			tasks = append(tasks, task)
		}
	}
	return s.withExtras(ctx, tasks)
}

func (s *TaskService) ListTasksByList(ctx context.Context, listID uint64) ([]domain.Task, error) {
	if _, err := s.lists.FindByID(ctx, listID); err != nil {
		return nil, err
	}
	tasks, err := s.tasks.FindByList(ctx, listID)
	if err != nil {
		return nil, err
	}
	return s.withExtras(ctx, tasks)
}

func (s *TaskService) GetTask(ctx context.Context, id uint64) (domain.Task, error) {
	task, err := s.tasks.FindByID(ctx, id)
	if err != nil {
		return domain.Task{}, err
	}
	return s.withTaskExtras(ctx, task)
}

func (s *TaskService) CreateTask(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error) {
	text, err := trimmed(input.Text)
	if err != nil {
		return domain.Task{}, err
	}
	input.Text = text

	if input.Date != nil && input.ListID != nil {
		return domain.Task{}, domain.ErrDateAndList
	}
	if input.Date != nil {
		day := dateutil.StartOfDay(*input.Date)
		input.Date = &day
	}
	if input.ListID != nil {
		if _, err := s.lists.FindByID(ctx, *input.ListID); err != nil {
			return domain.Task{}, err
		}
	}
	if input.Color != nil {
		if err := validateColor(*input.Color); err != nil {
			return domain.Task{}, err
		}
	}
	if input.Position <= 0 {
		position, err := nextPosition(ctx, s.tasks, input.Date, input.ListID)
		if err != nil {
			return domain.Task{}, err
		}
		input.Position = position
	}

	task, err := s.tasks.Create(ctx, input)
	if err != nil {
		return domain.Task{}, err
	}

	if task.Color != nil {
		s.recordColor(ctx, *task.Color)
	}
	metrics.IncrementTaskOperation("create")
	publish(ctx, s.events, domain.EventTaskCreated, task.ID, s.now())
	return task, nil
}

func (s *TaskService) UpdateTask(ctx context.Context, id uint64, input domain.UpdateTaskInput) (domain.Task, error) {
	current, err := s.tasks.FindByID(ctx, id)
	if err != nil {
		return domain.Task{}, err
	}

	if input.Text != nil {
		text, err := trimmed(*input.Text)
		if err != nil {
			return domain.Task{}, err
		}
		input.Text = &text
	}
	if input.DateSet && input.Date != nil {
		day := dateutil.StartOfDay(*input.Date)
		input.Date = &day
	}

	date, listID := current.Date, current.ListID
	if input.DateSet {
		date = input.Date
	}
	if input.ListIDSet {
		listID = input.ListID
	}
	if date != nil && listID != nil {
		return domain.Task{}, domain.ErrDateAndList
	}
	if input.ListIDSet && input.ListID != nil {
		if _, err := s.lists.FindByID(ctx, *input.ListID); err != nil {
			return domain.Task{}, err
		}
	}
	if input.ColorSet && input.Color != nil {
		if err := validateColor(*input.Color); err != nil {
			return domain.Task{}, err
		}
	}

	task, err := s.tasks.Update(ctx, id, input)
	if err != nil {
		return domain.Task{}, err
	}

	if input.ColorSet && task.Color != nil && (current.Color == nil || *current.Color != *task.Color) {
		s.recordColor(ctx, *task.Color)
	}
	metrics.IncrementTaskOperation("update")
	publish(ctx, s.events, domain.EventTaskUpdated, task.ID, s.now())
	return s.withTaskExtras(ctx, task)
}

func (s *TaskService) ToggleTask(ctx context.Context, id uint64) (domain.Task, error) {
	current, err := s.tasks.FindByID(ctx, id)
	if err != nil {
		return domain.Task{}, err
	}
	completed := !current.Completed
	return s.UpdateTask(ctx, id, domain.UpdateTaskInput{Completed: &completed})
}

// MoveTask places a task on a calendar day or in a someday list. Without a
// position the task goes to the end of its new column.
func (s *TaskService) MoveTask(ctx context.Context, id uint64, input domain.MoveTaskInput) (domain.Task, error) {
	if (input.Date == nil) == (input.ListID == nil) {
		return domain.Task{}, domain.ErrMoveTarget
	}
	if _, err := s.tasks.FindByID(ctx, id); err != nil {
		return domain.Task{}, err
	}

	update := domain.UpdateTaskInput{
		Date:      input.Date,
		DateSet:   true,
		ListID:    input.ListID,
		ListIDSet: true,
		Position:  input.Position,
	}
	if update.Position == nil {
		var date *time.Time
		if input.Date != nil {
			day := dateutil.StartOfDay(*input.Date)
			date = &day
		}
		position, err := nextPosition(ctx, s.tasks, date, input.ListID)
		if err != nil {
			return domain.Task{}, err
		}
		update.Position = &position
	}

	return s.UpdateTask(ctx, id, update)
}

// DeleteTask snapshots the task into the trash before removing it.
func (s *TaskService) DeleteTask(ctx context.Context, id uint64) (domain.TrashItem, error) {
	task, err := s.tasks.FindByID(ctx, id)
	if err != nil {
		return domain.TrashItem{}, err
	}

	item, err := s.trash.Create(ctx, domain.NewTrashItem(task, s.now()))
	if err != nil {
		return domain.TrashItem{}, err
	}

	deleted, err := s.tasks.Delete(ctx, id)
	if err != nil {
		return domain.TrashItem{}, err
	}
	if !deleted {
		// Lost a race with another delete; drop the duplicate snapshot.
		_, _ = s.trash.Delete(ctx, item.ID)
		return domain.TrashItem{}, domain.ErrTaskNotFound
	}

	s.dropExtras(ctx, id)
	metrics.IncrementTaskOperation("delete")
	publish(ctx, s.events, domain.EventTaskDeleted, id, s.now())
	return item, nil
}

// DeleteAllTasks wipes every task without keeping trash snapshots.
func (s *TaskService) DeleteAllTasks(ctx context.Context) error {
	tasks, err := s.tasks.FindAll(ctx)
	if err != nil {
		return err
	}
	if err := s.tasks.DeleteAll(ctx); err != nil {
		return err
	}
	for _, task := range tasks {
		s.dropExtras(ctx, task.ID)
	}
	metrics.IncrementTaskOperation("delete_all")
	publish(ctx, s.events, domain.EventTasksCleared, 0, s.now())
	return nil
}

// nextPosition is one past the highest position on the day or in the list.
func nextPosition(ctx context.Context, tasks ports.TaskRepository, date *time.Time, listID *uint64) (int, error) {
	var (
		siblings []domain.Task
		err      error
	)
	switch {
	case listID != nil:
		siblings, err = tasks.FindByList(ctx, *listID)
	case date != nil:
		siblings, err = tasks.FindByDate(ctx, *date)
	default:
		return 1, nil
	}
	if err != nil {
		return 0, err
	}

	position := 0
	for _, task := range siblings {
		if task.Position > position {
			position = task.Position
		}
	}
	return position + 1, nil
}

func (s *TaskService) dropExtras(ctx context.Context, taskID uint64) {
	attachments, err := s.extras.DeleteByTask(ctx, taskID)
	if err != nil {
		zap.L().Warn("failed to delete task extras", zap.Uint64("task_id", taskID), zap.Error(err))
		return
	}
	for _, a := range attachments {
		if err := s.files.Remove(ctx, a.StoragePath); err != nil {
			zap.L().Warn("failed to remove attachment file",
				zap.Uint64("attachment_id", a.ID),
				zap.String("path", a.StoragePath),
				zap.Error(err),
			)
		}
	}
}

func (s *TaskService) recordColor(ctx context.Context, hex string) {
	if err := s.usage.RecordColorUsage(ctx, hex); err != nil {
		zap.L().Warn("failed to record color usage", zap.String("color", hex), zap.Error(err))
	}
}

func (s *TaskService) withExtras(ctx context.Context, tasks []domain.Task) ([]domain.Task, error) {
	for i := range tasks {
		task, err := s.withTaskExtras(ctx, tasks[i])
		if err != nil {
			return nil, err
		}
		tasks[i] = task
	}
	return tasks, nil
}

func (s *TaskService) withTaskExtras(ctx context.Context, task domain.Task) (domain.Task, error) {
	var err error
	if task.Tags, err = s.extras.ListTags(ctx, task.ID); err != nil {
		return domain.Task{}, err
	}
	if task.Links, err = s.extras.ListLinks(ctx, task.ID); err != nil {
		return domain.Task{}, err
	}
	if task.Attachments, err = s.extras.ListAttachments(ctx, task.ID); err != nil {
		return domain.Task{}, err
	}
	return task, nil
}
