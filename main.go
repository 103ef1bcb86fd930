// File: salonkit/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"salonkit/config"
	"salonkit/database"
	bookingRepo "salonkit/database/repository/booking"
	menuRepo "salonkit/database/repository/menu"
	settingsRepo "salonkit/database/repository/settings"
	shiftRepo "salonkit/database/repository/shift"
	staffRepo "salonkit/database/repository/staff"
	"salonkit/handlers"
	"salonkit/middleware"
	"salonkit/routes"
	"salonkit/services/availability"
	"salonkit/services/reservation"
	"salonkit/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	siteZone, err := time.LoadLocation(config.AppConfig.SiteTimezone)
	if err != nil {
		logger.Sugar().Fatalf("main: invalid SITE_TIMEZONE %q: %v", config.AppConfig.SiteTimezone, err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	router.Use(cors.Default())

	// repositories.
	menus := menuRepo.NewMongoMenuRepo()
	staff := staffRepo.NewMongoStaffRepo()
	shifts := shiftRepo.NewMongoShiftRepo()
	bookings := bookingRepo.NewMongoBookingRepo()
	settings := settingsRepo.NewMongoSettingsRepo()

	// services.
	availabilitySvc := &availability.DefaultAvailabilityService{
		MenuRepo:                menus,
		StaffRepo:               staff,
		ShiftRepo:               shifts,
		BookingRepo:             bookings,
		SettingsRepo:            settings,
		Cache:                   utils.NewRedisCache(utils.GetCacheClient()),
		SiteTimezone:            siteZone,
		EnforceStaffRestriction: config.AppConfig.EnforceStaffRestriction,
	}

	reservationSvc := &reservation.DefaultReservationService{
		MenuRepo:                menus,
		BookingRepo:             bookings,
		SettingsRepo:            settings,
		SiteTimezone:            siteZone,
		EnforceStaffRestriction: config.AppConfig.EnforceStaffRestriction,
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		AvailabilitySvc: availabilitySvc,
		ReservationSvc:  reservationSvc,
		MenuRepo:        menus,
		ShiftRepo:       shifts,
	}

	routes.RegisterAvailabilityRoutes(router, handlerBundle)
	routes.RegisterMenuRoutes(router, handlerBundle)
	routes.RegisterReservationRoutes(router, handlerBundle)
	routes.RegisterShiftRoutes(router, handlerBundle)
	routes.RegisterHealthRoute(router)

	utils.StartHealthMonitor(utils.GetCacheClient(), database.MongoClient)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
