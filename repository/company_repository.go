package repository

import (
	"gorm.io/gorm"

	"pousada-backend/models"
)

type CompanyRepository struct {
	db *gorm.DB
}

func NewCompanyRepository(db *gorm.DB) *CompanyRepository {
	return &CompanyRepository{db: db}
}

func (r *CompanyRepository) Create(company *models.Company) error {
	return r.db.Create(company).Error
}

func (r *CompanyRepository) FindByID(id uint) (*models.Company, error) {
	var company models.Company
	if err := r.db.First(&company, id).Error; err != nil {
		return nil, err
	}
	return &company, nil
}

func (r *CompanyRepository) List() ([]models.Company, error) {
	var out []models.Company
	err := r.db.Order("name").Find(&out).Error
	return out, err
}

func (r *CompanyRepository) Updates(id uint, fields map[string]interface{}) error {
	return r.db.Model(&models.Company{}).Where("id = ?", id).Updates(fields).Error
}

func (r *CompanyRepository) Delete(id uint) error {
	return r.db.Delete(&models.Company{}, id).Error
}
