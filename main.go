package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"pousada-backend/config"
	"pousada-backend/controllers"
	"pousada-backend/repository"
	"pousada-backend/routes"
	"pousada-backend/services"
)

func main() {
	// .env is optional; a real environment wins.
	_ = godotenv.Load()

	config.InitLogger()
	logger := config.Logger
	defer logger.Sync()

	if err := config.ConnectDatabase(); err != nil {
		logger.Fatal("database connect failed", zap.Error(err))
	}
	db := config.DB
	logger.Info("database connected, migrations applied")

	// Repositories
	roomRepo := repository.NewRoomRepository(db)
	reservationRepo := repository.NewReservationRepository(db)
	guestRepo := repository.NewGuestRepository(db)
	companyRepo := repository.NewCompanyRepository(db)
	maintenanceRepo := repository.NewMaintenanceRepository(db)
	financeRepo := repository.NewFinanceRepository(db)
	settingRepo := repository.NewSettingRepository(db)
	userRepo := repository.NewUserRepository(db)
	consultantLogRepo := repository.NewConsultantLogRepository(db)

	// Services
	roomService := services.NewRoomService(roomRepo, reservationRepo, logger)
	reservationService := services.NewReservationService(reservationRepo, roomRepo, roomService, logger)
	guestService := services.NewGuestService(guestRepo, reservationService, roomService, logger)
	companyService := services.NewCompanyService(companyRepo, reservationService, roomService, logger)
	maintenanceService := services.NewMaintenanceService(maintenanceRepo, roomRepo, reservationRepo, roomService, logger)
	occupancyService := services.NewOccupancyService(reservationRepo, roomRepo, logger)
	financeService := services.NewFinanceService(financeRepo, reservationRepo, logger)
	settingService := services.NewSettingService(settingRepo)
	userService := services.NewUserService(userRepo)

	// The consultant falls back to rule-based answers when no Gemini key is
	// configured.
	var advisor services.Advisor
	if apiKey := os.Getenv("GEMINI_API_KEY"); apiKey != "" {
		gemini, err := services.NewGeminiAdvisor(context.Background(), apiKey, logger)
		if err != nil {
			logger.Warn("gemini advisor unavailable", zap.Error(err))
		} else {
			advisor = gemini
		}
	} else {
		logger.Info("GEMINI_API_KEY not set, consultant runs rule-based only")
	}
	consultantService := services.NewConsultantService(
		reservationRepo, guestRepo, maintenanceRepo, financeRepo, userRepo,
		consultantLogRepo, advisor, logger,
	)

	// Nightly status refresh
	scheduler := cron.New()
	refresher := services.NewStatusRefresher(reservationRepo, roomService, logger)
	if err := refresher.Schedule(scheduler); err != nil {
		logger.Fatal("failed to schedule status refresher", zap.Error(err))
	}
	scheduler.Start()
	defer scheduler.Stop()

	// Controllers
	router := routes.SetupRouter(
		controllers.NewRoomController(roomService),
		controllers.NewGuestController(guestService),
		controllers.NewCompanyController(companyService),
		controllers.NewReservationController(reservationService),
		controllers.NewMaintenanceController(maintenanceService),
		controllers.NewCalendarController(occupancyService),
		controllers.NewFinanceController(financeService),
		controllers.NewConsultantController(consultantService),
		controllers.NewSettingsController(settingService),
		controllers.NewUserController(userService),
		logger,
	)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	addr := ":" + port

	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("server starting", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("listen failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	logger.Info("shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("forced shutdown", zap.Error(err))
	}
	logger.Info("server stopped")
}
