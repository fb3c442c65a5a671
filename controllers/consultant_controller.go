package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"pousada-backend/services"
	"pousada-backend/utils"
)

type ConsultantController struct {
	service *services.ConsultantService
}

func NewConsultantController(service *services.ConsultantService) *ConsultantController {
	return &ConsultantController{service: service}
}

type consultantPayload struct {
	Question string `json:"question"`
}

// POST /api/consultant
func (ctl *ConsultantController) Ask(c *gin.Context) {
	var payload consultantPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}
	if strings.TrimSpace(payload.Question) == "" {
		utils.JSONError(c, http.StatusBadRequest, "question is required")
		return
	}

	answer, mode, err := ctl.service.Consult(c.Request.Context(), payload.Question)
	if err != nil {
		fail(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"answer": answer, "mode": mode})
}
