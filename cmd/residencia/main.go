package main

import (
	"log"
	"time"

	"github.com/jcastell/residencia/internal/config"
	"github.com/jcastell/residencia/internal/db"
	"github.com/jcastell/residencia/internal/logging"
	"github.com/jcastell/residencia/internal/service"
	"github.com/jcastell/residencia/internal/session"
	"github.com/jcastell/residencia/internal/store"
	"github.com/jcastell/residencia/internal/web"
	"github.com/jcastell/residencia/internal/web/templates"
)

func main() {
	cfg := config.Load()

	logger, cleanup, err := logging.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer cleanup()

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		return
	}
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	directory := service.NewDirectoryService(store.NewResidentStore(database), logger)
	movements := service.NewMovementService(store.NewMovementStore(database), directory, logger)

	verifier := session.NewStaticVerifier(cfg.AdminUser, cfg.AdminPassword, cfg.AdminPasswordHash)
	sessions := session.NewManager(verifier, cfg.SessionSecret, time.Duration(cfg.SessionTTLMinutes)*time.Minute)

	server := web.NewServer(directory, movements, sessions, templates.FS, logger)

	if err := server.ListenAndServe(cfg.ListenAddr); err != nil {
		logger.Error("server error", "error", err)
	}
}
