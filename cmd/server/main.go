package main

import (
	"github.com/example/rms/internal/config"
	"github.com/example/rms/internal/database"
	"github.com/example/rms/internal/logging"
	"github.com/example/rms/internal/routes"
)

func main() {
	cfg := config.Load()
	log := logging.New(cfg.LogLevel, cfg.LogFormat)

	db, err := database.Connect(cfg.DatabaseURL, log)
	if err != nil {
		log.Fatalf("database: %v", err)
	}

	app := routes.NewApp(cfg, log)
	if err := routes.Register(app, db, cfg, log); err != nil {
		log.Fatalf("routes: %v", err)
	}

	if cfg.Debug {
		log.Warn("debug mode: error details are returned to clients")
	}

	log.Infof("Starting server on :%s", cfg.AppPort)
	if err := app.Listen(":" + cfg.AppPort); err != nil {
		log.Fatalf("fiber.Listen error: %v", err)
	}
}
