package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pousada-backend/models"
	"pousada-backend/services"
	"pousada-backend/utils"
)

type SettingsController struct {
	service *services.SettingService
}

func NewSettingsController(service *services.SettingService) *SettingsController {
	return &SettingsController{service: service}
}

// GET /api/settings
func (ctl *SettingsController) Get(c *gin.Context) {
	setting, err := ctl.service.Get()
	if err != nil {
		fail(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, setting)
}

// PUT /api/settings
func (ctl *SettingsController) Save(c *gin.Context) {
	var setting models.PropertySetting
	if err := c.ShouldBindJSON(&setting); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}
	if err := ctl.service.Save(&setting); err != nil {
		fail(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, setting)
}
