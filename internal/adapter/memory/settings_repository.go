package memory

import (
	"context"
	"sync"
	"time"

	"github.com/funkybooboo/alle-sub000/internal/core/domain"
	"github.com/funkybooboo/alle-sub000/internal/core/ports"
)

type SettingsRepository struct {
	mu       sync.RWMutex
	settings *domain.UserSettings
	now      func() time.Time
}

var _ ports.SettingsRepository = (*SettingsRepository)(nil)

func NewSettingsRepository(opts ...Option) *SettingsRepository {
	o := buildOptions(opts)
	return &SettingsRepository{now: o.now}
}

func (r *SettingsRepository) Get(_ context.Context) (domain.UserSettings, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.settings == nil {
		return domain.UserSettings{}, false, nil
	}
	return *r.settings, true, nil
}

func (r *SettingsRepository) Save(_ context.Context, settings domain.UserSettings) (domain.UserSettings, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	settings.UpdatedAt = r.now()
	r.settings = &settings
	return settings, nil
}

func (r *SettingsRepository) Reset(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.settings = nil
	return nil
}
