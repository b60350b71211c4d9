package service

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/funkybooboo/alle-sub000/internal/core/domain"
	"github.com/funkybooboo/alle-sub000/internal/core/ports"
)

var hexColor = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

func validateColor(color string) error {
	if !hexColor.MatchString(color) {
		return domain.ErrInvalidColor
	}
	return nil
}

type PresetService struct {
	tags   ports.TagPresetRepository
	colors ports.ColorPresetRepository
	events ports.EventPublisher
	now    func() time.Time
}

var (
	_ ports.PresetService = (*PresetService)(nil)
	_ usageRecorder       = (*PresetService)(nil)
)

func NewPresetService(
	tags ports.TagPresetRepository,
	colors ports.ColorPresetRepository,
	events ports.EventPublisher,
) *PresetService {
	return &PresetService{tags: tags, colors: colors, events: orNop(events), now: time.Now}
}

func (s *PresetService) ListTagPresets(ctx context.Context) ([]domain.TagPreset, error) {
	return s.tags.FindAll(ctx)
}

func (s *PresetService) CreateTagPreset(ctx context.Context, name, color string) (domain.TagPreset, error) {
	name, err := trimmed(name)
	if err != nil {
		return domain.TagPreset{}, err
	}
	if err := validateColor(color); err != nil {
		return domain.TagPreset{}, err
	}

	preset, err := s.tags.Create(ctx, domain.TagPreset{Name: name, Color: color})
	if err != nil {
		return domain.TagPreset{}, err
	}
	publish(ctx, s.events, domain.EventPresetsChanged, preset.ID, s.now())
	return preset, nil
}

func (s *PresetService) UpdateTagPreset(ctx context.Context, id uint64, input domain.PresetInput) (domain.TagPreset, error) {
	preset, err := s.tags.FindByID(ctx, id)
	if err != nil {
		return domain.TagPreset{}, err
	}

	if input.Name != nil {
		name, err := trimmed(*input.Name)
		if err != nil {
			return domain.TagPreset{}, err
		}
		preset.Name = name
	}
	if input.Color != nil {
		if err := validateColor(*input.Color); err != nil {
			return domain.TagPreset{}, err
		}
		preset.Color = *input.Color
	}

	saved, err := s.tags.Save(ctx, preset)
	if err != nil {
		return domain.TagPreset{}, err
	}
	publish(ctx, s.events, domain.EventPresetsChanged, saved.ID, s.now())
	return saved, nil
}

func (s *PresetService) DeleteTagPreset(ctx context.Context, id uint64) error {
	deleted, err := s.tags.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrPresetNotFound
	}
	publish(ctx, s.events, domain.EventPresetsChanged, id, s.now())
	return nil
}

func (s *PresetService) ReorderTagPresets(ctx context.Context, ids []uint64) ([]domain.TagPreset, error) {
	existing, err := s.tags.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	byID := make(map[uint64]domain.TagPreset, len(existing))
	current := make([]uint64, 0, len(existing))
	for _, p := range existing {
		byID[p.ID] = p
		current = append(current, p.ID)
	}
	if err := checkOrder(current, ids); err != nil {
		return nil, err
	}

	for i, id := range ids {
		preset := byID[id]
		preset.Position = i + 1
		if _, err := s.tags.Save(ctx, preset); err != nil {
			return nil, err
		}
	}
	publish(ctx, s.events, domain.EventPresetsChanged, 0, s.now())
	return s.tags.FindAll(ctx)
}

// RecordTagUsage bumps the usage counter of the preset with that name.
// Names without a preset are ignored.
func (s *PresetService) RecordTagUsage(ctx context.Context, name string) error {
	_, err := s.tags.IncrementUsage(ctx, strings.TrimSpace(name))
	return err
}

func (s *PresetService) ListColorPresets(ctx context.Context) ([]domain.ColorPreset, error) {
	return s.colors.FindAll(ctx)
}

func (s *PresetService) CreateColorPreset(ctx context.Context, name, hex string) (domain.ColorPreset, error) {
	name, err := trimmed(name)
	if err != nil {
		return domain.ColorPreset{}, err
	}
	if err := validateColor(hex); err != nil {
		return domain.ColorPreset{}, err
	}

	preset, err := s.colors.Create(ctx, domain.ColorPreset{Name: name, Hex: hex})
	if err != nil {
		return domain.ColorPreset{}, err
	}
	publish(ctx, s.events, domain.EventPresetsChanged, preset.ID, s.now())
	return preset, nil
}

func (s *PresetService) UpdateColorPreset(ctx context.Context, id uint64, input domain.PresetInput) (domain.ColorPreset, error) {
	preset, err := s.colors.FindByID(ctx, id)
	if err != nil {
		return domain.ColorPreset{}, err
	}

	if input.Name != nil {
		name, err := trimmed(*input.Name)
		if err != nil {
			return domain.ColorPreset{}, err
		}
		preset.Name = name
	}
	if input.Color != nil {
		if err := validateColor(*input.Color); err != nil {
			return domain.ColorPreset{}, err
		}
		preset.Hex = *input.Color
	}

	saved, err := s.colors.Save(ctx, preset)
	if err != nil {
		return domain.ColorPreset{}, err
	}
	publish(ctx, s.events, domain.EventPresetsChanged, saved.ID, s.now())
	return saved, nil
}

func (s *PresetService) DeleteColorPreset(ctx context.Context, id uint64) error {
	deleted, err := s.colors.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrPresetNotFound
	}
	publish(ctx, s.events, domain.EventPresetsChanged, id, s.now())
	return nil
}

func (s *PresetService) ReorderColorPresets(ctx context.Context, ids []uint64) ([]domain.ColorPreset, error) {
	existing, err := s.colors.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	byID := make(map[uint64]domain.ColorPreset, len(existing))
	current := make([]uint64, 0, len(existing))
	for _, p := range existing {
		byID[p.ID] = p
		current = append(current, p.ID)
	}
	if err := checkOrder(current, ids); err != nil {
		return nil, err
	}

	for i, id := range ids {
		preset := byID[id]
		preset.Position = i + 1
		if _, err := s.colors.Save(ctx, preset); err != nil {
			return nil, err
		}
	}
	publish(ctx, s.events, domain.EventPresetsChanged, 0, s.now())
	return s.colors.FindAll(ctx)
}

// RecordColorUsage bumps the usage counter of the preset with that hex value.
func (s *PresetService) RecordColorUsage(ctx context.Context, hex string) error {
	_, err := s.colors.IncrementUsage(ctx, hex)
	return err
}
