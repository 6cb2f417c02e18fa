// Package main wires together all layers and starts the HTTP server.
package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"eventspace/config"
	_ "eventspace/docs"
	delivery "eventspace/internal/delivery/http"
	"eventspace/internal/delivery/http/controllers"
	"eventspace/internal/delivery/http/middleware"
	"eventspace/internal/identity"
	"eventspace/internal/repository/postgres"
	"eventspace/internal/services"
)

const serviceTimeout = 10 * time.Second

// @title Eventspace API
// @version 1.0
// @description Backend for publishing events and coworking spaces: event registrations, coworking bookings, and occupancy reporting.
// @BasePath /
func main() {
	logger := config.NewLogger()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("load config", "err", err)
		os.Exit(1)
	}

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		logger.Error("open database", "err", err)
		os.Exit(1)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		logger.Error("ping database", "err", err)
		os.Exit(1)
	}
	if err := postgres.EnsureSchema(ctx, db); err != nil {
		logger.Error("ensure schema", "err", err)
		os.Exit(1)
	}

	ids := identity.NewGenerator()

	eventRepo := postgres.NewEventRepository(db)
	organizerRepo := postgres.NewOrganizerRepository(db)
	registrationRepo := postgres.NewEventRegistrationRepository(db)
	spaceRepo := postgres.NewCoworkingSpaceRepository(db)
	bookingRepo := postgres.NewCoworkingBookingRepository(db)

	eventService := services.NewEventService(eventRepo, organizerRepo, registrationRepo, ids, serviceTimeout)
	coworkingService := services.NewCoworkingService(spaceRepo, bookingRepo, ids, cfg.DailyCapacity, serviceTimeout)

	if cfg.SeedData {
		seeder := services.NewSeedService(eventService, coworkingService, logger)
		if err := seeder.Run(ctx); err != nil {
			logger.Error("seed sample data", "err", err)
			os.Exit(1)
		}
	}

	eventController := controllers.NewEventController(logger, eventService)
	coworkingController := controllers.NewCoworkingController(logger, coworkingService)

	mux := delivery.NewRouter(eventController, coworkingController)
	handler := middleware.CORS(cfg.CORSOrigins, middleware.Logging(logger, mux))

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "port", cfg.Port, "env", cfg.Environment)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", "err", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown", "err", err)
	}
	logger.Info("server stopped")
}
