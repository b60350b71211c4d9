package ports

import (
	"context"

	"github.com/funkybooboo/alle-sub000/internal/core/domain"
)

// TagPresetRepository stores tag presets. Names are unique ignoring case:
// Create and Save report domain.ErrDuplicatePresetName on a clash. Create
// appends after the last position. IncrementUsage reports false when no
// preset has that name.
type TagPresetRepository interface {
	FindAll(ctx context.Context) ([]domain.TagPreset, error)
	FindByID(ctx context.Context, id uint64) (domain.TagPreset, error)
	FindByName(ctx context.Context, name string) (domain.TagPreset, error)
	Create(ctx context.Context, preset domain.TagPreset) (domain.TagPreset, error)
	Save(ctx context.Context, preset domain.TagPreset) (domain.TagPreset, error)
	Delete(ctx context.Context, id uint64) (bool, error)
	IncrementUsage(ctx context.Context, name string) (bool, error)
}

// ColorPresetRepository is TagPresetRepository keyed by hex value.
type ColorPresetRepository interface {
	FindAll(ctx context.Context) ([]domain.ColorPreset, error)
	FindByID(ctx context.Context, id uint64) (domain.ColorPreset, error)
	FindByHex(ctx context.Context, hex string) (domain.ColorPreset, error)
	Create(ctx context.Context, preset domain.ColorPreset) (domain.ColorPreset, error)
	Save(ctx context.Context, preset domain.ColorPreset) (domain.ColorPreset, error)
	Delete(ctx context.Context, id uint64) (bool, error)
	IncrementUsage(ctx context.Context, hex string) (bool, error)
}

type PresetService interface {
	ListTagPresets(ctx context.Context) ([]domain.TagPreset, error)
	CreateTagPreset(ctx context.Context, name, color string) (domain.TagPreset, error)
	UpdateTagPreset(ctx context.Context, id uint64, input domain.PresetInput) (domain.TagPreset, error)
	DeleteTagPreset(ctx context.Context, id uint64) error
	ReorderTagPresets(ctx context.Context, ids []uint64) ([]domain.TagPreset, error)
	RecordTagUsage(ctx context.Context, name string) error

	ListColorPresets(ctx context.Context) ([]domain.ColorPreset, error)
	CreateColorPreset(ctx context.Context, name, hex string) (domain.ColorPreset, error)
	UpdateColorPreset(ctx context.Context, id uint64, input domain.PresetInput) (domain.ColorPreset, error)
	DeleteColorPreset(ctx context.Context, id uint64) error
	ReorderColorPresets(ctx context.Context, ids []uint64) ([]domain.ColorPreset, error)
	RecordColorUsage(ctx context.Context, hex string) error
}
