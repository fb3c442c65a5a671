package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pousada-backend/models"
	"pousada-backend/services"
	"pousada-backend/utils"
)

type RoomController struct {
	service *services.RoomService
}

func NewRoomController(service *services.RoomService) *RoomController {
	return &RoomController{service: service}
}

// GET /api/rooms
func (ctl *RoomController) List(c *gin.Context) {
	rooms, err := ctl.service.List()
	if err != nil {
		fail(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rooms)
}

// GET /api/rooms/:id
func (ctl *RoomController) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	room, err := ctl.service.GetByID(id)
	if err != nil {
		fail(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, room)
}

// POST /api/rooms
func (ctl *RoomController) Create(c *gin.Context) {
	var room models.Room
	if err := c.ShouldBindJSON(&room); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}
	if err := ctl.service.Create(&room); err != nil {
		fail(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, room)
}

// PATCH /api/rooms/:id
func (ctl *RoomController) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var fields map[string]interface{}
	if err := c.ShouldBindJSON(&fields); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}
	if err := ctl.service.Update(id, fields); err != nil {
		fail(c, err)
		return
	}
	utils.JSONMessage(c, http.StatusOK, "room updated")
}

// DELETE /api/rooms/:id
func (ctl *RoomController) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := ctl.service.Delete(id); err != nil {
		fail(c, err)
		return
	}
	utils.JSONMessage(c, http.StatusOK, "room deleted")
}

type roomStatusPayload struct {
	Status string `json:"status"`
	Guest  string `json:"guest"`
	Notes  string `json:"notes"`
}

// PATCH /api/rooms/:id/status
func (ctl *RoomController) SetStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var payload roomStatusPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}
	if payload.Status == "" {
		utils.JSONError(c, http.StatusBadRequest, "status is required")
		return
	}
	if err := ctl.service.SetStatus(id, payload.Status, payload.Guest, payload.Notes); err != nil {
		fail(c, err)
		return
	}
	utils.JSONMessage(c, http.StatusOK, "room status updated")
}
