package repository

import (
	"gorm.io/gorm"

	"pousada-backend/models"
)

type MaintenanceRepository struct {
	db *gorm.DB
}

func NewMaintenanceRepository(db *gorm.DB) *MaintenanceRepository {
	return &MaintenanceRepository{db: db}
}

func (r *MaintenanceRepository) Create(ticket *models.MaintenanceTicket) error {
	return r.db.Create(ticket).Error
}

func (r *MaintenanceRepository) FindByID(id uint) (*models.MaintenanceTicket, error) {
	var ticket models.MaintenanceTicket
	if err := r.db.First(&ticket, id).Error; err != nil {
		return nil, err
	}
	return &ticket, nil
}

func (r *MaintenanceRepository) List() ([]models.MaintenanceTicket, error) {
	var out []models.MaintenanceTicket
	err := r.db.Order("id DESC").Find(&out).Error
	return out, err
}

func (r *MaintenanceRepository) Updates(id uint, fields map[string]interface{}) error {
	return r.db.Model(&models.MaintenanceTicket{}).Where("id = ?", id).Updates(fields).Error
}

func (r *MaintenanceRepository) Delete(id uint) error {
	res := r.db.Delete(&models.MaintenanceTicket{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
