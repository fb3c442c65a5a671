package repository

import (
	"gorm.io/gorm"

	"pousada-backend/models"
)

type ConsultantLogRepository struct {
	db *gorm.DB
}

func NewConsultantLogRepository(db *gorm.DB) *ConsultantLogRepository {
	return &ConsultantLogRepository{db: db}
}

func (r *ConsultantLogRepository) Create(log *models.ConsultantLog) error {
	return r.db.Create(log).Error
}

func (r *ConsultantLogRepository) List(limit int) ([]models.ConsultantLog, error) {
	var out []models.ConsultantLog
	q := r.db.Order("id DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Find(&out).Error
	return out, err
}
