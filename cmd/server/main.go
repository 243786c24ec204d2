package main // Entry point package

import (
	"context"
	"log" // Logging library

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/chiweic/schedule-api/internal/config"
	"github.com/chiweic/schedule-api/internal/database"
	"github.com/chiweic/schedule-api/internal/handler"
	"github.com/chiweic/schedule-api/internal/monitoring"
	"github.com/chiweic/schedule-api/internal/repository"
	"github.com/chiweic/schedule-api/internal/router"
)

func main() {
	_ = godotenv.Load() // optional .env for local development
	cfg := config.Load()

	db, err := database.Open(cfg.DBFile)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer db.Close()

	// Fresh store on every boot: drop and recreate all tables.
	if err := database.Init(context.Background(), db); err != nil {
		log.Fatalf("init database: %v", err)
	}

	validate := validator.New()

	scheduleRepo := repository.NewScheduleRepo(db)
	sectionRepo := repository.NewSectionRepo(db)
	eventRepo := repository.NewEventRepo(db)
	venueRepo := repository.NewVenueRepo(db)

	e := echo.New()
	e.Use(monitoring.Middleware())
	e.GET("/metrics", monitoring.Handler())

	router.RegisterRoutes(e,
		handler.NewScheduleHandler(scheduleRepo, sectionRepo, validate),
		handler.NewSectionHandler(sectionRepo, eventRepo, validate),
		handler.NewEventHandler(eventRepo, sectionRepo, validate),
		handler.NewVenueHandler(venueRepo, validate),
	)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s, db=%s)", addr, cfg.Env, cfg.DBFile)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
