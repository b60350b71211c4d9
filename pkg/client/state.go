package client

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/funkybooboo/alle-sub000/pkg/dateutil"
	"github.com/funkybooboo/alle-sub000/pkg/httpclient"
)

// Notifier surfaces a failed call to the user.
type Notifier interface {
	Notify(message string)
}

type NotifierFunc func(message string)

func (f NotifierFunc) Notify(message string) { f(message) }

// State mirrors the tasks, trash and settings of one client. Every mutation
// waits for the server and applies the returned object; nothing is optimistic.
type State struct {
	api      *API
	notifier Notifier
	now      func() time.Time

	mu          sync.RWMutex
	tasks       []Task
	trash       []TrashItem
	settings    Settings
	currentDate time.Time
}

type StateOption func(*State)

// WithClock sets the clock used to find today.
func WithClock(now func() time.Time) StateOption {
	return func(s *State) { s.now = now }
}

func NewState(api *API, notifier Notifier, opts ...StateOption) *State {
	if notifier == nil {
		notifier = NotifierFunc(func(string) {})
	}
	s := &State{api: api, notifier: notifier, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	s.currentDate = dateutil.Today(s.now())
	s.settings = Settings{SingleArrowDays: 1, DoubleArrowDays: 7}
	return s
}

func (s *State) Tasks() []Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Task(nil), s.tasks...)
}

func (s *State) Trash() []TrashItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]TrashItem(nil), s.trash...)
}

func (s *State) Settings() Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

func (s *State) CurrentDate() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.currentDate
}

// Step moves the current date by the configured arrow step; double selects
// the larger step and a negative direction goes back.
func (s *State) Step(direction int, double bool) time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	days := s.settings.SingleArrowDays
	if double {
		days = s.settings.DoubleArrowDays
	}
	if direction < 0 {
		days = -days
	}
	s.currentDate = dateutil.AddDays(s.currentDate, days)
	return s.currentDate
}

func (s *State) GoToToday() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currentDate = dateutil.Today(s.now())
	return s.currentDate
}

// LoadRange replaces the task mirror with the tasks of columns days starting
// at the current date.
func (s *State) LoadRange(ctx context.Context, columns int) error {
	if columns < 1 {
		columns = 1
	}
	from := s.CurrentDate()
	tasks, err := s.api.TasksInRange(ctx, from, dateutil.AddDays(from, columns-1))
	if err != nil {
		return s.fail("Failed to load tasks", err)
	}
	s.mu.Lock()
	s.tasks = tasks
	s.mu.Unlock()
	return nil
}

func (s *State) CreateTask(ctx context.Context, in NewTask) (Task, error) {
	task, err := s.api.CreateTask(ctx, in)
	if err != nil {
		return Task{}, s.fail("Failed to create task", err)
	}
	s.mu.Lock()
	s.tasks = append(s.tasks, task)
	s.mu.Unlock()
	return task, nil
}

func (s *State) UpdateTask(ctx context.Context, taskID uint64, in TaskPatch) (Task, error) {
	task, err := s.api.UpdateTask(ctx, taskID, in)
	if err != nil {
		return Task{}, s.fail("Failed to update task", err)
	}
	s.replaceTask(task)
	return task, nil
}

func (s *State) ToggleTask(ctx context.Context, taskID uint64) (Task, error) {
	task, err := s.api.ToggleTask(ctx, taskID)
	if err != nil {
		return Task{}, s.fail("Failed to update task", err)
	}
	s.replaceTask(task)
	return task, nil
}

func (s *State) DeleteTask(ctx context.Context, taskID uint64) (TrashItem, error) {
	item, err := s.api.DeleteTask(ctx, taskID)
	if err != nil {
		return TrashItem{}, s.fail("Failed to delete task", err)
	}
	s.mu.Lock()
	s.removeTaskLocked(taskID)
	s.trash = append([]TrashItem{item}, s.trash...)
	s.mu.Unlock()
	return item, nil
}

func (s *State) LoadTrash(ctx context.Context) error {
	items, err := s.api.Trash(ctx)
	if err != nil {
		return s.fail("Failed to load trash", err)
	}
	s.mu.Lock()
	s.trash = items
	s.mu.Unlock()
	return nil
}

func (s *State) RestoreTask(ctx context.Context, itemID uint64) (Task, error) {
	task, err := s.api.RestoreTrashItem(ctx, itemID)
	if err != nil {
		return Task{}, s.fail("Failed to restore task", err)
	}
	s.mu.Lock()
	s.removeTrashLocked(itemID)
	s.tasks = append(s.tasks, task)
	s.mu.Unlock()
	return task, nil
}

// Undo restores the most recently deleted task on the server. Which item
// that was is only known server side, so the trash mirror is reloaded.
func (s *State) Undo(ctx context.Context) (Task, error) {
	task, err := s.api.UndoDelete(ctx)
	if err != nil {
		return Task{}, s.fail("Nothing to undo", err)
	}
	s.mu.Lock()
	s.tasks = append(s.tasks, task)
	s.mu.Unlock()

	// LoadTrash reports its own failure; the undo itself went through.
	_ = s.LoadTrash(ctx)
	return task, nil
}

func (s *State) DeleteTrashItem(ctx context.Context, itemID uint64) error {
	if err := s.api.DeleteTrashItem(ctx, itemID); err != nil {
		return s.fail("Failed to delete trash item", err)
	}
	s.mu.Lock()
	s.removeTrashLocked(itemID)
	s.mu.Unlock()
	return nil
}

func (s *State) EmptyTrash(ctx context.Context) error {
	if err := s.api.EmptyTrash(ctx); err != nil {
		return s.fail("Failed to empty trash", err)
	}
	s.mu.Lock()
	s.trash = nil
	s.mu.Unlock()
	return nil
}

func (s *State) LoadSettings(ctx context.Context) error {
	settings, err := s.api.Settings(ctx)
	if err != nil {
		return s.fail("Failed to load settings", err)
	}
	s.setSettings(settings)
	return nil
}

func (s *State) UpdateSettings(ctx context.Context, in SettingsPatch) (Settings, error) {
	settings, err := s.api.UpdateSettings(ctx, in)
	if err != nil {
		return Settings{}, s.fail("Failed to save settings", err)
	}
	s.setSettings(settings)
	return settings, nil
}

func (s *State) ResetSettings(ctx context.Context) (Settings, error) {
	settings, err := s.api.ResetSettings(ctx)
	if err != nil {
		return Settings{}, s.fail("Failed to reset settings", err)
	}
	s.setSettings(settings)
	return settings, nil
}

// TasksOn returns the mirrored tasks dated on day, by position.
func (s *State) TasksOn(day time.Time) []Task {
	want := dateutil.Format(day)
	s.mu.RLock()
	var out []Task
	for _, t := range s.tasks {
		if t.Date != nil && *t.Date == want {
			out = append(out, t)
		}
	}
	s.mu.RUnlock()
	sort.SliceStable(out, func(i, j int) bool { return out[i].Position < out[j].Position })
	return out
}

func (s *State) setSettings(settings Settings) {
	s.mu.Lock()
	s.settings = settings
	s.mu.Unlock()
}

func (s *State) replaceTask(task Task) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.tasks {
		if s.tasks[i].ID == task.ID {
			s.tasks[i] = task
			return
		}
	}
	s.tasks = append(s.tasks, task)
}

func (s *State) removeTaskLocked(taskID uint64) {
	for i := range s.tasks {
		if s.tasks[i].ID == taskID {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return
		}
	}
}

func (s *State) removeTrashLocked(itemID uint64) {
	for i := range s.trash {
		if s.trash[i].ID == itemID {
			s.trash = append(s.trash[:i], s.trash[i+1:]...)
			return
		}
	}
}

func (s *State) fail(action string, err error) error {
	message := action
	if detail := serverMessage(err); detail != "" {
		message += ": " + detail
	}
	zap.L().Warn("api call failed", zap.String("action", action), zap.Error(err))
	s.notifier.Notify(message)
	return err
}

// serverMessage extracts the translated message from an error envelope.
func serverMessage(err error) string {
	var httpErr *httpclient.Error
	if !errors.As(err, &httpErr) {
		return ""
	}
	var envelope struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if json.Unmarshal([]byte(httpErr.Body), &envelope) != nil {
		return ""
	}
	return envelope.Error.Message
}
