package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"pousada-backend/controllers"
	"pousada-backend/middleware"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// SetupRouter wires every controller under /api.
func SetupRouter(
	rc *controllers.RoomController,
	gc *controllers.GuestController,
	cc *controllers.CompanyController,
	resc *controllers.ReservationController,
	mc *controllers.MaintenanceController,
	cal *controllers.CalendarController,
	fc *controllers.FinanceController,
	cons *controllers.ConsultantController,
	sc *controllers.SettingsController,
	uc *controllers.UserController,
	logger *zap.Logger,
) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestLogger(logger), gin.Recovery())

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		rooms := api.Group("/rooms")
		{
			rooms.GET("", rc.List)
			rooms.GET("/:id", rc.Get)
			rooms.POST("", rc.Create)
			rooms.PATCH("/:id", rc.Update)
			rooms.PUT("/:id", rc.Update)
			rooms.PATCH("/:id/status", rc.SetStatus)
			rooms.DELETE("/:id", rc.Delete)
		}

		guests := api.Group("/guests")
		{
			guests.GET("", gc.List)
			guests.GET("/:id", gc.Get)
			guests.POST("", gc.Create)
			guests.PUT("/:id", gc.Update)
			guests.POST("/:id/reservations", gc.NewReservation)
			guests.DELETE("/:id", gc.Delete)
		}

		companies := api.Group("/companies")
		{
			companies.GET("", cc.List)
			companies.GET("/:id", cc.Get)
			companies.POST("", cc.Create)
			companies.PUT("/:id", cc.Update)
			companies.POST("/:id/reservations", cc.NewReservation)
			companies.DELETE("/:id", cc.Delete)
		}

		reservations := api.Group("/reservations")
		{
			reservations.GET("", resc.List)
			reservations.PATCH("/:id/checkin", resc.CheckIn)
			reservations.PATCH("/:id/checkout", resc.CheckOut)
			reservations.PATCH("/:id/payment", resc.RegisterPayment)
			reservations.PATCH("/:id/cancel", resc.Cancel)
			reservations.POST("/backfill-room-numbers", resc.BackfillRoomNumbers)
		}

		maintenance := api.Group("/maintenance")
		{
			maintenance.GET("", mc.List)
			maintenance.POST("", mc.Open)
			maintenance.PATCH("/:id/status", mc.SetStatus)
			maintenance.DELETE("/:id", mc.Delete)
		}

		calendar := api.Group("/calendar")
		{
			calendar.GET("/occupancy", cal.MonthlyOccupancy)
			calendar.GET("/movements", cal.DailyMovements)
		}
		api.GET("/movements", cal.PeriodMovements)
		api.GET("/dashboard", cal.Dashboard)

		finance := api.Group("/finance")
		{
			finance.GET("/incomes", fc.ListIncomes)
			finance.POST("/incomes", fc.CreateIncome)
			finance.GET("/expenses", fc.ListExpenses)
			finance.POST("/expenses", fc.CreateExpense)
			finance.GET("/dashboard", fc.Dashboard)
		}

		api.POST("/consultant", cons.Ask)

		settings := api.Group("/settings")
		{
			settings.GET("", sc.Get)
			settings.PUT("", sc.Save)
		}

		users := api.Group("/users")
		{
			users.GET("", uc.List)
			users.POST("", uc.Create)
			users.PATCH("/:id", uc.Update)
			users.DELETE("/:id", uc.Delete)
		}
	}

	return r
}
