// Package container builds every adapter and service once, on first use.
package container

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	dbadapter "github.com/funkybooboo/alle-sub000/internal/adapter/db"
	httpadapter "github.com/funkybooboo/alle-sub000/internal/adapter/http"
	"github.com/funkybooboo/alle-sub000/internal/adapter/http/handlers"
	"github.com/funkybooboo/alle-sub000/internal/adapter/memory"
	"github.com/funkybooboo/alle-sub000/internal/adapter/storage"
	"github.com/funkybooboo/alle-sub000/internal/adapter/ws"
	"github.com/funkybooboo/alle-sub000/internal/app/service"
	"github.com/funkybooboo/alle-sub000/internal/config"
	"github.com/funkybooboo/alle-sub000/internal/core/ports"
)

type lazy[T any] struct {
	once  sync.Once
	value T
	err   error
}

func (l *lazy[T]) get(build func() (T, error)) (T, error) {
	l.once.Do(func() {
		l.value, l.err = build()
	})
	return l.value, l.err
}

type Container struct {
	cfg    *config.Config
	logger *zap.Logger

	db       lazy[*sqlx.DB]
	tasks    lazy[ports.TaskRepository]
	lists    lazy[ports.SomedayListRepository]
	trash    lazy[ports.TrashRepository]
	settings lazy[ports.SettingsRepository]
	tagSet   lazy[ports.TagPresetRepository]
	colorSet lazy[ports.ColorPresetRepository]
	extras   lazy[ports.TaskExtrasRepository]
	files    lazy[*storage.LocalStorage]
	hub      lazy[*ws.Hub]

	presetService   lazy[*service.PresetService]
	taskService     lazy[*service.TaskService]
	somedayService  lazy[*service.SomedayService]
	trashService    lazy[*service.TrashService]
	settingsService lazy[*service.SettingsService]
	extrasService   lazy[*service.TaskExtrasService]
}

func New(cfg *config.Config, logger *zap.Logger) *Container {
	return &Container{cfg: cfg, logger: logger}
}

func (c *Container) Config() *config.Config {
	return c.cfg
}

func (c *Container) Logger() *zap.Logger {
	return c.logger
}

// DB is nil when the store is kept in memory.
func (c *Container) DB(ctx context.Context) (*sqlx.DB, error) {
	return c.db.get(func() (*sqlx.DB, error) {
		if c.cfg.StorageDriver == config.StorageMemory {
			return nil, nil
		}
		return dbadapter.ConnectDB(ctx, c.cfg)
	})
}

// repository builds the in-memory or the SQL variant of a store, once, for
// the configured driver. Every SQL store shares the one connection pool.
func repository[T any](ctx context.Context, c *Container, l *lazy[T], inMemory func() T, onDB func(*sqlx.DB) T) (T, error) {
	return l.get(func() (T, error) {
		switch c.cfg.StorageDriver {
		case config.StorageMemory:
			return inMemory(), nil
		case config.StorageSQLite, config.StorageMySQL:
			db, err := c.DB(ctx)
			if err != nil {
				return *new(T), err
			}
			return onDB(db), nil
		}
		return *new(T), fmt.Errorf("unknown storage driver %q", c.cfg.StorageDriver)
	})
}

func (c *Container) TaskRepository(ctx context.Context) (ports.TaskRepository, error) {
	return repository(ctx, c, &c.tasks,
		func() ports.TaskRepository { return memory.NewTaskRepository() },
		func(db *sqlx.DB) ports.TaskRepository { return dbadapter.NewTaskRepository(db) })
}

func (c *Container) SomedayLists(ctx context.Context) (ports.SomedayListRepository, error) {
	return repository(ctx, c, &c.lists,
		func() ports.SomedayListRepository { return memory.NewSomedayListRepository() },
		func(db *sqlx.DB) ports.SomedayListRepository { return dbadapter.NewSomedayListRepository(db) })
}

func (c *Container) Trash(ctx context.Context) (ports.TrashRepository, error) {
	return repository(ctx, c, &c.trash,
		func() ports.TrashRepository { return memory.NewTrashRepository() },
		func(db *sqlx.DB) ports.TrashRepository { return dbadapter.NewTrashRepository(db) })
}

func (c *Container) Settings(ctx context.Context) (ports.SettingsRepository, error) {
	return repository(ctx, c, &c.settings,
		func() ports.SettingsRepository { return memory.NewSettingsRepository() },
		func(db *sqlx.DB) ports.SettingsRepository { return dbadapter.NewSettingsRepository(db) })
}

func (c *Container) TagPresets(ctx context.Context) (ports.TagPresetRepository, error) {
	return repository(ctx, c, &c.tagSet,
		func() ports.TagPresetRepository { return memory.NewTagPresetRepository() },
		func(db *sqlx.DB) ports.TagPresetRepository { return dbadapter.NewTagPresetRepository(db) })
}

func (c *Container) ColorPresets(ctx context.Context) (ports.ColorPresetRepository, error) {
	return repository(ctx, c, &c.colorSet,
		func() ports.ColorPresetRepository { return memory.NewColorPresetRepository() },
		func(db *sqlx.DB) ports.ColorPresetRepository { return dbadapter.NewColorPresetRepository(db) })
}

func (c *Container) Extras(ctx context.Context) (ports.TaskExtrasRepository, error) {
	return repository(ctx, c, &c.extras,
		func() ports.TaskExtrasRepository { return memory.NewTaskExtrasRepository() },
		func(db *sqlx.DB) ports.TaskExtrasRepository { return dbadapter.NewTaskExtrasRepository(db) })
}

func (c *Container) Files() (*storage.LocalStorage, error) {
	return c.files.get(func() (*storage.LocalStorage, error) {
		return storage.NewLocalStorage(c.cfg.UploadDir)
	})
}

// Hub is the event publisher every service reports to. The caller runs it.
func (c *Container) Hub() *ws.Hub {
	hub, _ := c.hub.get(func() (*ws.Hub, error) {
		heartbeat := time.Duration(c.cfg.WSHeartbeatSeconds) * time.Second
		return ws.NewHub(heartbeat, c.cfg.CorsOrigins), nil
	})
	return hub
}

func (c *Container) PresetService(ctx context.Context) (*service.PresetService, error) {
	return c.presetService.get(func() (*service.PresetService, error) {
		tags, err := c.TagPresets(ctx)
		if err != nil {
			return nil, err
		}
		colors, err := c.ColorPresets(ctx)
		if err != nil {
			return nil, err
		}
		return service.NewPresetService(tags, colors, c.Hub()), nil
	})
}

func (c *Container) TaskService(ctx context.Context) (*service.TaskService, error) {
	return c.taskService.get(func() (*service.TaskService, error) {
		var deps service.TaskDeps
		var err error
		if deps.Tasks, err = c.TaskRepository(ctx); err != nil {
			return nil, err
		}
		if deps.Lists, err = c.SomedayLists(ctx); err != nil {
			return nil, err
		}
		if deps.Trash, err = c.Trash(ctx); err != nil {
			return nil, err
		}
		if deps.Extras, err = c.Extras(ctx); err != nil {
			return nil, err
		}
		if deps.Files, err = c.Files(); err != nil {
			return nil, err
		}
		if deps.Usage, err = c.PresetService(ctx); err != nil {
			return nil, err
		}
		deps.Events = c.Hub()
		return service.NewTaskService(deps), nil
	})
}

func (c *Container) SomedayService(ctx context.Context) (*service.SomedayService, error) {
	return c.somedayService.get(func() (*service.SomedayService, error) {
		tasks, err := c.TaskRepository(ctx)
		if err != nil {
			return nil, err
		}
		lists, err := c.SomedayLists(ctx)
		if err != nil {
			return nil, err
		}
		taskService, err := c.TaskService(ctx)
		if err != nil {
			return nil, err
		}
		return service.NewSomedayService(lists, tasks, taskService, c.Hub()), nil
	})
}

func (c *Container) TrashService(ctx context.Context) (*service.TrashService, error) {
	return c.trashService.get(func() (*service.TrashService, error) {
		tasks, err := c.TaskRepository(ctx)
		if err != nil {
			return nil, err
		}
		lists, err := c.SomedayLists(ctx)
		if err != nil {
			return nil, err
		}
		trash, err := c.Trash(ctx)
		if err != nil {
			return nil, err
		}
		return service.NewTrashService(trash, tasks, lists, c.Hub(), c.cfg.TrashRetentionDays), nil
	})
}

func (c *Container) SettingsService(ctx context.Context) (*service.SettingsService, error) {
	return c.settingsService.get(func() (*service.SettingsService, error) {
		settings, err := c.Settings(ctx)
		if err != nil {
			return nil, err
		}
		return service.NewSettingsService(settings, c.Hub()), nil
	})
}

func (c *Container) ExtrasService(ctx context.Context) (*service.TaskExtrasService, error) {
	return c.extrasService.get(func() (*service.TaskExtrasService, error) {
		tasks, err := c.TaskRepository(ctx)
		if err != nil {
			return nil, err
		}
		extras, err := c.Extras(ctx)
		if err != nil {
			return nil, err
		}
		files, err := c.Files()
		if err != nil {
			return nil, err
		}
		presets, err := c.PresetService(ctx)
		if err != nil {
			return nil, err
		}
		return service.NewTaskExtrasService(tasks, extras, files, presets, c.Hub(), c.cfg.MaxUploadBytes), nil
	})
}

// Handlers wires the HTTP handlers to the services.
func (c *Container) Handlers(ctx context.Context) (httpadapter.Handlers, error) {
	tasks, err := c.TaskRepository(ctx)
	if err != nil {
		return httpadapter.Handlers{}, err
	}
	taskService, err := c.TaskService(ctx)
	if err != nil {
		return httpadapter.Handlers{}, err
	}
	somedayService, err := c.SomedayService(ctx)
	if err != nil {
		return httpadapter.Handlers{}, err
	}
	trashService, err := c.TrashService(ctx)
	if err != nil {
		return httpadapter.Handlers{}, err
	}
	extrasService, err := c.ExtrasService(ctx)
	if err != nil {
		return httpadapter.Handlers{}, err
	}
	settingsService, err := c.SettingsService(ctx)
	if err != nil {
		return httpadapter.Handlers{}, err
	}
	presetService, err := c.PresetService(ctx)
	if err != nil {
		return httpadapter.Handlers{}, err
	}

	return httpadapter.Handlers{
		Health:        handlers.NewHealthHandler(tasks, c.Hub()),
		Tasks:         handlers.NewTaskHandler(taskService),
		Extras:        handlers.NewExtrasHandler(extrasService, c.cfg.MaxUploadBytes),
		Someday:       handlers.NewSomedayHandler(somedayService),
		Trash:         handlers.NewTrashHandler(trashService),
		Settings:      handlers.NewSettingsHandler(settingsService),
		Presets:       handlers.NewPresetHandler(presetService),
		Subscriptions: c.Hub(),
	}, nil
}

// Close releases the database connection if one was opened.
func (c *Container) Close() error {
	db, err := c.db.get(func() (*sqlx.DB, error) { return nil, nil })
	if err != nil || db == nil {
		return nil
	}
	return db.Close()
}
