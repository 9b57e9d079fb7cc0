package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/Kaiser28/comptable-dashboard/internal/config"
	"github.com/Kaiser28/comptable-dashboard/internal/db"
	"github.com/Kaiser28/comptable-dashboard/internal/observability"
	"github.com/Kaiser28/comptable-dashboard/internal/render"
)

var migrateOnlyFlag = flag.Bool("migrate-only", false, "Run DB migrations and exit")

func main() {
	flag.Parse()

	// Load environment variables from .env file
	_ = godotenv.Load()

	cfg := config.Load()
	logger := observability.InitLogger("comptable-dashboard", cfg.App.LogLevel, cfg.App.Dev())

	conn, err := db.Connect(cfg.Database, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("database connection failed")
	}

	if *migrateOnlyFlag || cfg.App.Migrations {
		if err := db.Migrate(conn, cfg.Database.DSN, true); err != nil {
			logger.Fatal().Err(err).Msg("migration failed")
		}
		logger.Info().Msg("migrations completed")
		if *migrateOnlyFlag {
			return
		}
	} else if err := db.Migrate(conn, cfg.Database.DSN, false); err != nil {
		logger.Fatal().Err(err).Msg("schema check failed")
	}

	firm, err := config.LoadFirm(cfg.App.FirmConfig)
	if err != nil {
		logger.Fatal().Err(err).Msg("firm configuration")
	}
	if firm.Nom == "" {
		logger.Warn().Msg("no firm configured, documents will carry no firm footer")
	}

	app := NewApp(conn, firm, render.PDF{}, logger)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      observability.RequestLogger(logger, app),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		logger.Info().Str("port", cfg.Server.Port).Str("env", cfg.App.Env).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info().Msg("shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("shutdown")
	}
	if sqlDB, err := conn.DB(); err == nil {
		_ = sqlDB.Close()
	}
	logger.Info().Msg("server stopped gracefully")
}
