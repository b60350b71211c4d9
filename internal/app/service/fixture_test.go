package service_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/funkybooboo/alle-sub000/internal/adapter/memory"
	"github.com/funkybooboo/alle-sub000/internal/adapter/storage"
	"github.com/funkybooboo/alle-sub000/internal/app/service"
	"github.com/funkybooboo/alle-sub000/internal/core/domain"
)

type recordingPublisher struct {
	mu     sync.Mutex
	events []domain.Event
}

func (p *recordingPublisher) Publish(_ context.Context, event domain.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
}

func (p *recordingPublisher) types() []domain.EventType {
	p.mu.Lock()
	defer p.mu.Unlock()
	types := make([]domain.EventType, 0, len(p.events))
	for _, e := range p.events {
		types = append(types, e.Type)
	}
	return types
}

type fixture struct {
	tasksRepo *memory.TaskRepository
	lists     *memory.SomedayListRepository
	trashRepo *memory.TrashRepository
	extras    *memory.TaskExtrasRepository
	events    *recordingPublisher

	tasks    *service.TaskService
	someday  *service.SomedayService
	trash    *service.TrashService
	settings *service.SettingsService
	presets  *service.PresetService
	extrasSv *service.TaskExtrasService
}

const testMaxUpload = 1024

func newFixture(t *testing.T) *fixture {
	t.Helper()

	files, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	f := &fixture{
		tasksRepo: memory.NewTaskRepository(),
		lists:     memory.NewSomedayListRepository(),
		trashRepo: memory.NewTrashRepository(),
		extras:    memory.NewTaskExtrasRepository(),
		events:    &recordingPublisher{},
	}
	f.presets = service.NewPresetService(memory.NewTagPresetRepository(), memory.NewColorPresetRepository(), f.events)
	f.tasks = service.NewTaskService(service.TaskDeps{
		Tasks:  f.tasksRepo,
		Lists:  f.lists,
		Trash:  f.trashRepo,
		Extras: f.extras,
		Files:  files,
		Usage:  f.presets,
		Events: f.events,
	})
	f.someday = service.NewSomedayService(f.lists, f.tasksRepo, f.tasks, f.events)
	f.trash = service.NewTrashService(f.trashRepo, f.tasksRepo, f.lists, f.events, 30)
	f.settings = service.NewSettingsService(memory.NewSettingsRepository(), f.events)
	f.extrasSv = service.NewTaskExtrasService(f.tasksRepo, f.extras, files, f.presets, f.events, testMaxUpload)
	return f
}

func date(value string) *time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return &t
}

func ptr[T any](v T) *T {
	return &v
}
