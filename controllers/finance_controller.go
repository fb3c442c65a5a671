package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pousada-backend/services"
	"pousada-backend/utils"
)

type FinanceController struct {
	service *services.FinanceService
}

func NewFinanceController(service *services.FinanceService) *FinanceController {
	return &FinanceController{service: service}
}

// GET /api/finance/incomes
func (ctl *FinanceController) ListIncomes(c *gin.Context) {
	incomes, err := ctl.service.ListIncomes()
	if err != nil {
		fail(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, incomes)
}

// POST /api/finance/incomes
func (ctl *FinanceController) CreateIncome(c *gin.Context) {
	var in services.IncomeInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}
	income, err := ctl.service.CreateIncome(in)
	if err != nil {
		fail(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, income)
}

// GET /api/finance/expenses
func (ctl *FinanceController) ListExpenses(c *gin.Context) {
	expenses, err := ctl.service.ListExpenses()
	if err != nil {
		fail(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, expenses)
}

// POST /api/finance/expenses
func (ctl *FinanceController) CreateExpense(c *gin.Context) {
	var in services.ExpenseInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}
	expense, err := ctl.service.CreateExpense(in)
	if err != nil {
		fail(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, expense)
}

// GET /api/finance/dashboard
func (ctl *FinanceController) Dashboard(c *gin.Context) {
	dashboard, err := ctl.service.Dashboard()
	if err != nil {
		fail(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, dashboard)
}
