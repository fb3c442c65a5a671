package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pousada-backend/services"
	"pousada-backend/utils"
)

type CompanyController struct {
	service *services.CompanyService
}

func NewCompanyController(service *services.CompanyService) *CompanyController {
	return &CompanyController{service: service}
}

// GET /api/companies
func (ctl *CompanyController) List(c *gin.Context) {
	companies, err := ctl.service.List()
	if err != nil {
		fail(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, companies)
}

// GET /api/companies/:id
func (ctl *CompanyController) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	company, err := ctl.service.GetByID(id)
	if err != nil {
		fail(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, company)
}

// POST /api/companies
func (ctl *CompanyController) Create(c *gin.Context) {
	var in services.CompanyInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}
	company, err := ctl.service.Create(in)
	if err != nil {
		fail(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, company)
}

// PUT /api/companies/:id
func (ctl *CompanyController) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var in services.CompanyInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}
	if err := ctl.service.Update(id, in); err != nil {
		fail(c, err)
		return
	}
	utils.JSONMessage(c, http.StatusOK, "company updated")
}

// POST /api/companies/:id/reservations
func (ctl *CompanyController) NewReservation(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var in services.CompanyInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}
	res, err := ctl.service.NewReservation(id, in)
	if err != nil {
		fail(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, res)
}

// DELETE /api/companies/:id
func (ctl *CompanyController) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := ctl.service.Delete(id); err != nil {
		fail(c, err)
		return
	}
	utils.JSONMessage(c, http.StatusOK, "company and reservations deleted")
}
