package repository

import (
	"gorm.io/gorm"

	"pousada-backend/models"
)

type GuestRepository struct {
	db *gorm.DB
}

func NewGuestRepository(db *gorm.DB) *GuestRepository {
	return &GuestRepository{db: db}
}

func (r *GuestRepository) Create(guest *models.Guest) error {
	return r.db.Create(guest).Error
}

func (r *GuestRepository) FindByID(id uint) (*models.Guest, error) {
	var guest models.Guest
	if err := r.db.First(&guest, id).Error; err != nil {
		return nil, err
	}
	return &guest, nil
}

func (r *GuestRepository) List() ([]models.Guest, error) {
	var out []models.Guest
	err := r.db.Order("full_name").Find(&out).Error
	return out, err
}

func (r *GuestRepository) Updates(id uint, fields map[string]interface{}) error {
	return r.db.Model(&models.Guest{}).Where("id = ?", id).Updates(fields).Error
}

func (r *GuestRepository) Delete(id uint) error {
	return r.db.Delete(&models.Guest{}, id).Error
}
