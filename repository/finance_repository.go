package repository

import (
	"gorm.io/gorm"

	"pousada-backend/models"
)

type FinanceRepository struct {
	db *gorm.DB
}

func NewFinanceRepository(db *gorm.DB) *FinanceRepository {
	return &FinanceRepository{db: db}
}

func (r *FinanceRepository) CreateIncome(income *models.Income) error {
	return r.db.Create(income).Error
}

func (r *FinanceRepository) ListIncomes() ([]models.Income, error) {
	var out []models.Income
	err := r.db.Order("date DESC").Find(&out).Error
	return out, err
}

func (r *FinanceRepository) CreateExpense(expense *models.Expense) error {
	return r.db.Create(expense).Error
}

func (r *FinanceRepository) ListExpenses() ([]models.Expense, error) {
	var out []models.Expense
	err := r.db.Order("date DESC").Find(&out).Error
	return out, err
}
