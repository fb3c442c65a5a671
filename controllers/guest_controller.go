package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pousada-backend/services"
	"pousada-backend/utils"
)

type GuestController struct {
	service *services.GuestService
}

func NewGuestController(service *services.GuestService) *GuestController {
	return &GuestController{service: service}
}

// GET /api/guests
func (ctl *GuestController) List(c *gin.Context) {
	guests, err := ctl.service.List()
	if err != nil {
		fail(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, guests)
}

// GET /api/guests/:id
func (ctl *GuestController) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	guest, err := ctl.service.GetByID(id)
	if err != nil {
		fail(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, guest)
}

// POST /api/guests
func (ctl *GuestController) Create(c *gin.Context) {
	var in services.GuestInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}
	guest, err := ctl.service.Create(in)
	if err != nil {
		fail(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, guest)
}

// PUT /api/guests/:id
func (ctl *GuestController) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var in services.GuestInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}
	if err := ctl.service.Update(id, in); err != nil {
		fail(c, err)
		return
	}
	utils.JSONMessage(c, http.StatusOK, "guest updated")
}

// POST /api/guests/:id/reservations
func (ctl *GuestController) NewReservation(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var in services.GuestInput
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

// DELETE /api/guests/:id
func (ctl *GuestController) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := ctl.service.Delete(id); err != nil {
		fail(c, err)
		return
	}
	utils.JSONMessage(c, http.StatusOK, "guest and reservations deleted")
}
