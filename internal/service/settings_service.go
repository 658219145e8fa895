package service

import (
	"context"

	"tradelens_backend/internal/model"
	"tradelens_backend/internal/repository"
)

type SettingsService struct {
	SettingsRepo *repository.SettingsRepository
}

func NewSettingsService(settingsRepo *repository.SettingsRepository) *SettingsService {
	return &SettingsService{SettingsRepo: settingsRepo}
}

func (s *SettingsService) Get(ctx context.Context) (model.Settings, error) {
	return s.SettingsRepo.Get(ctx)
}

// Update overwrites the whole settings document with the provided values.
func (s *SettingsService) Update(ctx context.Context, settings model.Settings) (model.Settings, error) {
	if err := s.SettingsRepo.Store(ctx, settings); err != nil {
		return model.Settings{}, err
	}
	return settings, nil
}
