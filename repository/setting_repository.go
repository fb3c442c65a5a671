package repository

import (
	"errors"

	"gorm.io/gorm"

	"pousada-backend/models"
)

type SettingRepository struct {
	db *gorm.DB
}

func NewSettingRepository(db *gorm.DB) *SettingRepository {
	return &SettingRepository{db: db}
}

// Get returns the single settings row, or nil when none was saved yet.
func (r *SettingRepository) Get() (*models.PropertySetting, error) {
	var setting models.PropertySetting
	err := r.db.First(&setting).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &setting, nil
}

// Save upserts the single settings row.
func (r *SettingRepository) Save(setting *models.PropertySetting) error {
	existing, err := r.Get()
	if err != nil {
		return err
	}
	if existing != nil {
		setting.ID = existing.ID
	}
	return r.db.Save(setting).Error
}
