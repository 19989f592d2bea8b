package main

import (
	"log"

	"github.com/devportfolio/portfolio-backend/config"
	"github.com/devportfolio/portfolio-backend/internal/bootstrap"
	"github.com/devportfolio/portfolio-backend/internal/storage/postgres"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	bootstrap.SetGinMode(cfg.App.Environment)
	logger := bootstrap.NewLogger(cfg.App.LogLevel, cfg.App.Environment)

	conn := postgres.NewConnector(postgres.DSN(&cfg.Database))
	db, err := conn.Connect()
	if err != nil {
		logger.WithError(err).Fatal("database connect failed")
	}
	defer conn.Close()

	if err := postgres.Migrate(db); err != nil {
		logger.WithError(err).Fatal("migrations failed")
	}

	sessions, err := bootstrap.NewSessionStore(&cfg.Session)
	if err != nil {
		logger.WithError(err).Fatal("session store init failed")
	}

	r := bootstrap.BuildRouter(bootstrap.RouterDeps{
		Config:   cfg,
		Log:      logger,
		Conn:     conn,
		Sessions: sessions,
	})

	logger.WithField("port", cfg.Server.Port).Info("starting server")
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		logger.WithError(err).Fatal("server stopped")
	}
}
