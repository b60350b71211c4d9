package container_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/funkybooboo/alle-sub000/internal/config"
	"github.com/funkybooboo/alle-sub000/internal/container"
	"github.com/funkybooboo/alle-sub000/internal/core/domain"
)

func testConfig(t *testing.T, driver, dsn string) *config.Config {
	t.Helper()
	return &config.Config{
		StorageDriver:      driver,
		DatabaseDSN:        dsn,
		UploadDir:          t.TempDir(),
		MaxUploadBytes:     config.DefaultMaxUploadBytes,
		TrashRetentionDays: 30,
		WSHeartbeatSeconds: 30,
		CorsOrigins:        []string{"*"},
	}
}

func TestContainer_ReturnsSameInstances(t *testing.T) {
	ctx := context.Background()
	c := container.New(testConfig(t, config.StorageMemory, ""), zap.NewNop())

	first, err := c.TaskService(ctx)
	require.NoError(t, err)
	second, err := c.TaskService(ctx)
	require.NoError(t, err)
	assert.Same(t, first, second)

	repoA, err := c.TaskRepository(ctx)
	require.NoError(t, err)
	repoB, err := c.TaskRepository(ctx)
	require.NoError(t, err)
	assert.Same(t, repoA, repoB)

	assert.Same(t, c.Hub(), c.Hub())

	presetsA, err := c.PresetService(ctx)
	require.NoError(t, err)
	presetsB, err := c.PresetService(ctx)
	require.NoError(t, err)
	assert.Same(t, presetsA, presetsB)

	settingsA, err := c.SettingsService(ctx)
	require.NoError(t, err)
	settingsB, err := c.SettingsService(ctx)
	require.NoError(t, err)
	assert.Same(t, settingsA, settingsB)

	db, err := c.DB(ctx)
	require.NoError(t, err)
	assert.Nil(t, db)
	require.NoError(t, c.Close())
}

func TestContainer_UnknownDriver(t *testing.T) {
	c := container.New(testConfig(t, "oracle", ""), zap.NewNop())

	_, err := c.TaskRepository(context.Background())
	require.Error(t, err)

	_, err = c.SomedayLists(context.Background())
	require.Error(t, err)

	_, err = c.Handlers(context.Background())
	require.Error(t, err)
}

func TestContainer_SQLiteBackedHandlers(t *testing.T) {
	ctx := context.Background()
	c := container.New(testConfig(t, config.StorageSQLite, ":memory:"), zap.NewNop())
	defer func() { require.NoError(t, c.Close()) }()

	h, err := c.Handlers(ctx)
	require.NoError(t, err)
	assert.NotNil(t, h.Tasks)
	assert.NotNil(t, h.Subscriptions)

	repo, err := c.TaskRepository(ctx)
	require.NoError(t, err)
	require.NoError(t, repo.Ping(ctx))
}

func TestContainer_SQLiteStateSurvivesRestart(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig(t, config.StorageSQLite, filepath.Join(t.TempDir(), "alle.db"))

	first := container.New(cfg, zap.NewNop())
	someday, err := first.SomedayService(ctx)
	require.NoError(t, err)
	tasks, err := first.TaskService(ctx)
	require.NoError(t, err)
	extras, err := first.ExtrasService(ctx)
	require.NoError(t, err)
	presets, err := first.PresetService(ctx)
	require.NoError(t, err)
	settings, err := first.SettingsService(ctx)
	require.NoError(t, err)

	groceries, err := someday.CreateList(ctx, "Groceries")
	require.NoError(t, err)
	milk, err := tasks.CreateTask(ctx, domain.CreateTaskInput{Text: "Buy milk", ListID: &groceries.ID})
	require.NoError(t, err)
	_, err = presets.CreateTagPreset(ctx, "errand", "#00ff00")
	require.NoError(t, err)
	_, err = extras.AddTag(ctx, milk.ID, "errand", nil)
	require.NoError(t, err)
	_, err = extras.AddLink(ctx, milk.ID, "https://example.com/shop", nil)
	require.NoError(t, err)
	bread, err := tasks.CreateTask(ctx, domain.CreateTaskInput{Text: "Buy bread", ListID: &groceries.ID})
	require.NoError(t, err)
	_, err = tasks.DeleteTask(ctx, bread.ID)
	require.NoError(t, err)
	theme := domain.ThemeDark
	_, err = settings.UpdateSettings(ctx, domain.UpdateSettingsInput{Theme: &theme})
	require.NoError(t, err)
	require.NoError(t, first.Close())

	second := container.New(cfg, zap.NewNop())
	defer func() { require.NoError(t, second.Close()) }()
	someday, err = second.SomedayService(ctx)
	require.NoError(t, err)
	tasks, err = second.TaskService(ctx)
	require.NoError(t, err)

	work, err := someday.CreateList(ctx, "Work")
	require.NoError(t, err)
	assert.NotEqual(t, groceries.ID, work.ID)
	assert.Equal(t, groceries.Position+1, work.Position)

	inWork, err := tasks.ListTasksByList(ctx, work.ID)
	require.NoError(t, err)
	assert.Empty(t, inWork)

	inGroceries, err := tasks.ListTasksByList(ctx, groceries.ID)
	require.NoError(t, err)
	require.Len(t, inGroceries, 1)
	assert.Equal(t, "Buy milk", inGroceries[0].Text)

	extrasRepo, err := second.Extras(ctx)
	require.NoError(t, err)
	tags, err := extrasRepo.ListTags(ctx, milk.ID)
	require.NoError(t, err)
	require.Len(t, tags, 1)
	assert.Equal(t, "errand", tags[0].Name)
	links, err := extrasRepo.ListLinks(ctx, milk.ID)
	require.NoError(t, err)
	assert.Len(t, links, 1)

	trash, err := second.TrashService(ctx)
	require.NoError(t, err)
	items, err := trash.ListTrash(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Buy bread", items[0].TaskText)

	presetService, err := second.PresetService(ctx)
	require.NoError(t, err)
	tagPresets, err := presetService.ListTagPresets(ctx)
	require.NoError(t, err)
	require.Len(t, tagPresets, 1)
	assert.Equal(t, 1, tagPresets[0].UsageCount)

	settingsService, err := second.SettingsService(ctx)
	require.NoError(t, err)
	current, err := settingsService.GetSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.ThemeDark, current.Theme)
}
