package ports

import (
	"context"

	"github.com/funkybooboo/alle-sub000/internal/core/domain"
)

// SettingsRepository holds the single settings record. Get reports false when
// nothing was saved yet.
type SettingsRepository interface {
	Get(ctx context.Context) (domain.UserSettings, bool, error)
	Save(ctx context.Context, settings domain.UserSettings) (domain.UserSettings, error)
	Reset(ctx context.Context) error
}

type SettingsService interface {
	GetSettings(ctx context.Context) (domain.UserSettings, error)
	UpdateSettings(ctx context.Context, input domain.UpdateSettingsInput) (domain.UserSettings, error)
	ResetSettings(ctx context.Context) (domain.UserSettings, error)
}
