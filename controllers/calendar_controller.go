package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"pousada-backend/services"
	"pousada-backend/utils"
)

// CalendarController serves the occupancy calendar, the movement lists and
// the landing-page dashboard, all backed by the read-only aggregator.
type CalendarController struct {
	service *services.OccupancyService
}

func NewCalendarController(service *services.OccupancyService) *CalendarController {
	return &CalendarController{service: service}
}

// GET /api/calendar/occupancy?year=2026&month=3
func (ctl *CalendarController) MonthlyOccupancy(c *gin.Context) {
	now := time.Now()
	year, err := strconv.Atoi(c.DefaultQuery("year", strconv.Itoa(now.Year())))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid year: "+c.Query("year"))
		return
	}
	month, err := strconv.Atoi(c.DefaultQuery("month", strconv.Itoa(int(now.Month()))))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid month: "+c.Query("month"))
		return
	}

	occupancy, err := ctl.service.MonthlyOccupancy(year, month)
	if err != nil {
		fail(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, occupancy)
}

// GET /api/calendar/movements?date=2026-03-10
func (ctl *CalendarController) DailyMovements(c *gin.Context) {
	date := c.DefaultQuery("date", utils.Today().Format(utils.DateLayout))
	movements, err := ctl.service.DailyMovements(date)
	if err != nil {
		fail(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, movements)
}

// GET /api/movements?period=today|week|month
func (ctl *CalendarController) PeriodMovements(c *gin.Context) {
	movements, err := ctl.service.PeriodMovements(c.DefaultQuery("period", "today"))
	if err != nil {
		fail(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, movements)
}

// GET /api/dashboard
func (ctl *CalendarController) Dashboard(c *gin.Context) {
	summary, err := ctl.service.Dashboard()
	if err != nil {
		fail(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, summary)
}
