package services

import (
	"servispro-backend/models"
	"servispro-backend/store"
)

// SettingsService stores the singleton shop profile and the outgoing-mail
// configuration. Mail delivery itself is someone else's job.
type SettingsService struct {
	store store.Store
}

func NewSettingsService(s store.Store) *SettingsService {
	return &SettingsService{store: s}
}

func (s *SettingsService) Get() (models.Settings, error) {
	settings := models.DefaultSettings()
	if _, err := s.store.Get(store.Settings, &settings); err != nil {
		return models.Settings{}, err
	}
	return settings, nil
}

func (s *SettingsService) Update(settings models.Settings) error {
	return s.store.Set(store.Settings, settings)
}

func (s *SettingsService) GetEmailConfig() (models.EmailConfig, error) {
	cfg := models.DefaultEmailConfig()
	if _, err := s.store.Get(store.EmailConfig, &cfg); err != nil {
		return models.EmailConfig{}, err
	}
	return cfg, nil
}

func (s *SettingsService) SaveEmailConfig(cfg models.EmailConfig) error {
	return s.store.Set(store.EmailConfig, cfg)
}
