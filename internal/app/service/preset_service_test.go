package service_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/funkybooboo/alle-sub000/internal/core/domain"
)

func TestPresetService_TagPresetLifecycle(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	work, err := f.presets.CreateTagPreset(ctx, "work", "#ff0000")
	require.NoError(t, err)
	home, err := f.presets.CreateTagPreset(ctx, "home", "#00ff00")
	require.NoError(t, err)
	assert.Equal(t, 1, work.Position)
	assert.Equal(t, 2, home.Position)

	_, err = f.presets.CreateTagPreset(ctx, "WORK", "#000")
	require.ErrorIs(t, err, domain.ErrDuplicatePresetName)
	_, err = f.presets.CreateTagPreset(ctx, "errands", "blue")
	require.ErrorIs(t, err, domain.ErrInvalidColor)

	renamed, err := f.presets.UpdateTagPreset(ctx, work.ID, domain.PresetInput{Name: ptr("office")})
	require.NoError(t, err)
	assert.Equal(t, "office", renamed.Name)
	assert.Equal(t, "#ff0000", renamed.Color)

	_, err = f.presets.UpdateTagPreset(ctx, work.ID, domain.PresetInput{Name: ptr("Home")})
	require.ErrorIs(t, err, domain.ErrDuplicatePresetName)

	ordered, err := f.presets.ReorderTagPresets(ctx, []uint64{home.ID, work.ID})
	require.NoError(t, err)
	assert.Equal(t, home.ID, ordered[0].ID)
	assert.Equal(t, work.ID, ordered[1].ID)

	require.NoError(t, f.presets.DeleteTagPreset(ctx, home.ID))
	require.ErrorIs(t, f.presets.DeleteTagPreset(ctx, home.ID), domain.ErrPresetNotFound)
}

func TestPresetService_TagUsageCountedOnApply(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	_, err := f.presets.CreateTagPreset(ctx, "urgent", "#f00")
	require.NoError(t, err)
	task, err := f.tasks.CreateTask(ctx, domain.CreateTaskInput{Text: "pay rent"})
	require.NoError(t, err)

	_, err = f.extrasSv.AddTag(ctx, task.ID, "Urgent", nil)
	require.NoError(t, err)
	_, err = f.extrasSv.AddTag(ctx, task.ID, "untracked", nil)
	require.NoError(t, err)

	presets, err := f.presets.ListTagPresets(ctx)
	require.NoError(t, err)
	require.Len(t, presets, 1)
	assert.Equal(t, 1, presets[0].UsageCount)
}

func TestPresetService_ColorPresets(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	red, err := f.presets.CreateColorPreset(ctx, "Red", "#ff0000")
	require.NoError(t, err)
	_, err = f.presets.CreateColorPreset(ctx, "Also red", "#FF0000")
	require.ErrorIs(t, err, domain.ErrDuplicatePresetName)

	updated, err := f.presets.UpdateColorPreset(ctx, red.ID, domain.PresetInput{Color: ptr("#cc0000")})
	require.NoError(t, err)
	assert.Equal(t, "#cc0000", updated.Hex)
	assert.Equal(t, "Red", updated.Name)

	_, err = f.presets.UpdateColorPreset(ctx, 99, domain.PresetInput{Name: ptr("x")})
	require.ErrorIs(t, err, domain.ErrPresetNotFound)

	_, err = f.presets.ReorderColorPresets(ctx, []uint64{red.ID, 99})
	require.ErrorIs(t, err, domain.ErrInvalidOrder)

	require.NoError(t, f.presets.DeleteColorPreset(ctx, red.ID))
	presets, err := f.presets.ListColorPresets(ctx)
	require.NoError(t, err)
	assert.Empty(t, presets)
}

func TestPresetService_ConcurrentTagUsageIsExact(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	_, err := f.presets.CreateTagPreset(ctx, "work", "#ff0000")
	require.NoError(t, err)
	task, err := f.tasks.CreateTask(ctx, domain.CreateTaskInput{Text: "ship release"})
	require.NoError(t, err)

	const applies = 64
	var wg sync.WaitGroup
	for n := 0; n < applies; n++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.extrasSv.AddTag(ctx, task.ID, "work", nil)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	presets, err := f.presets.ListTagPresets(ctx)
	require.NoError(t, err)
	require.Len(t, presets, 1)
	assert.Equal(t, applies, presets[0].UsageCount)
}

func TestPresetService_ConcurrentDuplicateCreateHasOneWinner(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	var (
		wg        sync.WaitGroup
		created   atomic.Int32
		conflicts atomic.Int32
	)
	for n := 0; n < 20; n++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.presets.CreateTagPreset(ctx, "Work", "#ff0000")
			switch {
			case err == nil:
				created.Add(1)
			case errors.Is(err, domain.ErrDuplicatePresetName):
				conflicts.Add(1)
			default:
				assert.NoError(t, err)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), created.Load())
	assert.Equal(t, int32(19), conflicts.Load())

	presets, err := f.presets.ListTagPresets(ctx)
	require.NoError(t, err)
	require.Len(t, presets, 1)
	assert.Equal(t, 1, presets[0].Position)
}
