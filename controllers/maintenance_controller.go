package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pousada-backend/services"
	"pousada-backend/utils"
)

type MaintenanceController struct {
	service *services.MaintenanceService
}

func NewMaintenanceController(service *services.MaintenanceService) *MaintenanceController {
	return &MaintenanceController{service: service}
}

// GET /api/maintenance
func (ctl *MaintenanceController) List(c *gin.Context) {
	tickets, err := ctl.service.List()
	if err != nil {
		fail(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, tickets)
}

// POST /api/maintenance
func (ctl *MaintenanceController) Open(c *gin.Context) {
	var in services.MaintenanceInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}
	ticket, err := ctl.service.Open(in)
	if err != nil {
		fail(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, ticket)
}

type maintenanceStatusPayload struct {
	Status      string  `json:"status"`
	CompletedOn *string `json:"completedOn"`
	Notes       string  `json:"notes"`
}

// PATCH /api/maintenance/:id/status
func (ctl *MaintenanceController) SetStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var payload maintenanceStatusPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}
	if err := ctl.service.SetStatus(id, payload.Status, payload.CompletedOn, payload.Notes); err != nil {
		fail(c, err)
		return
	}
	utils.JSONMessage(c, http.StatusOK, "maintenance status updated")
}

// DELETE /api/maintenance/:id
func (ctl *MaintenanceController) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := ctl.service.Delete(id); err != nil {
		fail(c, err)
		return
	}
	utils.JSONMessage(c, http.StatusOK, "maintenance ticket deleted")
}
