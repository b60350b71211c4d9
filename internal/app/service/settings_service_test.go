package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/funkybooboo/alle-sub000/internal/core/domain"
)

func TestSettingsService_DefaultsBeforeFirstSave(t *testing.T) {
	f := newFixture(t)

	settings, err := f.settings.GetSettings(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultUserSettings(), settings)
}

func TestSettingsService_PartialUpdateAndReset(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	dark := domain.ThemeDark
	updated, err := f.settings.UpdateSettings(ctx, domain.UpdateSettingsInput{
		ColumnWidth: ptr(320),
		Theme:       &dark,
	})
	require.NoError(t, err)
	assert.Equal(t, 320, updated.ColumnWidth)
	assert.Equal(t, domain.ThemeDark, updated.Theme)
	assert.Equal(t, 7, updated.DoubleArrowDays)

	got, err := f.settings.GetSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, 320, got.ColumnWidth)

	reset, err := f.settings.ResetSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultUserSettings(), reset)

	got, err = f.settings.GetSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, 280, got.ColumnWidth)
}

func TestSettingsService_RejectsInvalidValues(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	unknown := domain.Theme("sepia")

	tests := []struct {
		name  string
		input domain.UpdateSettingsInput
	}{
		{"narrow column", domain.UpdateSettingsInput{ColumnWidth: ptr(100)}},
		{"wide column", domain.UpdateSettingsInput{ColumnWidth: ptr(801)}},
		{"zero step", domain.UpdateSettingsInput{SingleArrowDays: ptr(0)}},
		{"long step", domain.UpdateSettingsInput{DoubleArrowDays: ptr(32)}},
		{"unsorted breakpoints", domain.UpdateSettingsInput{Breakpoints: &domain.Breakpoints{Small: 900, Medium: 800, Large: 1000}}},
		{"unknown theme", domain.UpdateSettingsInput{Theme: &unknown}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.settings.UpdateSettings(ctx, tt.input)
			require.ErrorIs(t, err, domain.ErrInvalidSettings)
		})
	}

	settings, err := f.settings.GetSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultUserSettings(), settings)
}
