package repository

import (
	"context"

	"tradelens_backend/internal/model"
	"tradelens_backend/internal/util"
)

// SettingsRepository owns the settings document.
type SettingsRepository struct {
	gw *Gateway
}

func NewSettingsRepository(gw *Gateway) *SettingsRepository {
	return &SettingsRepository{gw: gw}
}

// Get returns the stored settings, or the documented defaults when
// nothing has been stored.
func (r *SettingsRepository) Get(ctx context.Context) (model.Settings, error) {
	r.gw.mu.Lock()
	defer r.gw.mu.Unlock()

	var settings model.Settings
	found, err := r.gw.load(ctx, util.KeySettings, &settings)
	if err != nil {
		return model.DefaultSettings(), err
	}
	if !found {
		return model.DefaultSettings(), nil
	}
	return settings, nil
}

// Store overwrites the settings document.
func (r *SettingsRepository) Store(ctx context.Context, settings model.Settings) error {
	r.gw.mu.Lock()
	defer r.gw.mu.Unlock()
	return r.gw.save(ctx, util.KeySettings, settings)
}
