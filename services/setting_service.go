package services

import (
	"pousada-backend/models"
)

type SettingService struct {
	settings SettingStore
}

func NewSettingService(settings SettingStore) *SettingService {
	return &SettingService{settings: settings}
}

// Get returns the saved settings, or the defaults when nothing was saved.
func (s *SettingService) Get() (*models.PropertySetting, error) {
	setting, err := s.settings.Get()
	if err != nil {
		return nil, err
	}
	if setting == nil {
		return &models.PropertySetting{
			Currency:     "BRL",
			CheckInTime:  "14:00",
			CheckOutTime: "12:00",
		}, nil
	}
	return setting, nil
}

func (s *SettingService) Save(setting *models.PropertySetting) error {
	if setting.Currency == "" {
		setting.Currency = "BRL"
	}
	return s.settings.Save(setting)
}
