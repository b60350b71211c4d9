package service

import (
	"context"
	"fmt"
	"time"

	"github.com/funkybooboo/alle-sub000/internal/core/domain"
	"github.com/funkybooboo/alle-sub000/internal/core/ports"
)

type SettingsService struct {
	repo   ports.SettingsRepository
	events ports.EventPublisher
	now    func() time.Time
}

var _ ports.SettingsService = (*SettingsService)(nil)

func NewSettingsService(repo ports.SettingsRepository, events ports.EventPublisher) *SettingsService {
	return &SettingsService{repo: repo, events: orNop(events), now: time.Now}
}

// GetSettings returns the saved settings, or the defaults when none were
// saved yet.
func (s *SettingsService) GetSettings(ctx context.Context) (domain.UserSettings, error) {
	settings, ok, err := s.repo.Get(ctx)
	if err != nil {
		return domain.UserSettings{}, err
	}
	if !ok {
		return domain.DefaultUserSettings(), nil
	}
	return settings, nil
}

func (s *SettingsService) UpdateSettings(ctx context.Context, input domain.UpdateSettingsInput) (domain.UserSettings, error) {
	settings, err := s.GetSettings(ctx)
	if err != nil {
		return domain.UserSettings{}, err
	}

	if input.ColumnWidth != nil {
		settings.ColumnWidth = *input.ColumnWidth
	}
	if input.Breakpoints != nil {
		settings.Breakpoints = *input.Breakpoints
	}
	if input.SingleArrowDays != nil {
		settings.SingleArrowDays = *input.SingleArrowDays
	}
	if input.DoubleArrowDays != nil {
		settings.DoubleArrowDays = *input.DoubleArrowDays
	}
	if input.Theme != nil {
		settings.Theme = *input.Theme
	}

	if err := validateSettings(settings); err != nil {
		return domain.UserSettings{}, err
	}

	saved, err := s.repo.Save(ctx, settings)
	if err != nil {
		return domain.UserSettings{}, err
	}
	publish(ctx, s.events, domain.EventSettingsUpdated, 0, s.now())
	return saved, nil
}

func (s *SettingsService) ResetSettings(ctx context.Context) (domain.UserSettings, error) {
	if err := s.repo.Reset(ctx); err != nil {
		return domain.UserSettings{}, err
	}
	publish(ctx, s.events, domain.EventSettingsUpdated, 0, s.now())
	return domain.DefaultUserSettings(), nil
}

func validateSettings(settings domain.UserSettings) error {
	if settings.ColumnWidth < domain.MinColumnWidth || settings.ColumnWidth > domain.MaxColumnWidth {
		return fmt.Errorf("%w: column width must be between %d and %d",
			domain.ErrInvalidSettings, domain.MinColumnWidth, domain.MaxColumnWidth)
	}
	for _, step := range []int{settings.SingleArrowDays, settings.DoubleArrowDays} {
		if step < domain.MinStepDays || step > domain.MaxStepDays {
			return fmt.Errorf("%w: navigation steps must be between %d and %d days",
				domain.ErrInvalidSettings, domain.MinStepDays, domain.MaxStepDays)
		}
	}
	bp := settings.Breakpoints
	if bp.Small <= 0 || bp.Small >= bp.Medium || bp.Medium >= bp.Large {
		return fmt.Errorf("%w: breakpoints must be positive and ascending", domain.ErrInvalidSettings)
	}
	if !settings.Theme.Valid() {
		return fmt.Errorf("%w: unknown theme %q", domain.ErrInvalidSettings, settings.Theme)
	}
	return nil
}
