package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pousada-backend/services"
	"pousada-backend/utils"
)

type ReservationController struct {
	service *services.ReservationService
}

func NewReservationController(service *services.ReservationService) *ReservationController {
	return &ReservationController{service: service}
}

// GET /api/reservations
func (ctl *ReservationController) List(c *gin.Context) {
	views, err := ctl.service.List()
	if err != nil {
		fail(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, views)
}

// PATCH /api/reservations/:id/checkin
func (ctl *ReservationController) CheckIn(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := ctl.service.ConfirmCheckIn(id); err != nil {
		fail(c, err)
		return
	}
	utils.JSONMessage(c, http.StatusOK, "check-in confirmed")
}

// PATCH /api/reservations/:id/checkout
func (ctl *ReservationController) CheckOut(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := ctl.service.ConfirmCheckOut(id); err != nil {
		fail(c, err)
		return
	}
	utils.JSONMessage(c, http.StatusOK, "check-out confirmed")
}

type paymentPayload struct {
	Method string   `json:"method"`
	Amount *float64 `json:"amount"`
}

// PATCH /api/reservations/:id/payment
func (ctl *ReservationController) RegisterPayment(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var payload paymentPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}
	if err := ctl.service.RegisterPayment(id, payload.Method, payload.Amount); err != nil {
		fail(c, err)
		return
	}
	utils.JSONMessage(c, http.StatusOK, "payment registered")
}

// PATCH /api/reservations/:id/cancel
func (ctl *ReservationController) Cancel(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := ctl.service.Cancel(id); err != nil {
		fail(c, err)
		return
	}
	utils.JSONMessage(c, http.StatusOK, "reservation cancelled")
}

// POST /api/reservations/backfill-room-numbers
func (ctl *ReservationController) BackfillRoomNumbers(c *gin.Context) {
	updated, err := ctl.service.BackfillRoomNumbers()
	if err != nil {
		fail(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"updated": updated})
}
