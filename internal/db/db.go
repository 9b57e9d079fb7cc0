// Package db opens the database and keeps its schema current.
package db

import (
	"errors"
	"fmt"
	"strings"
	"time"

	migrate "github.com/golang-migrate/migrate/v4"
	// Register the postgres driver and file source for golang-migrate.
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Kaiser28/comptable-dashboard/internal/config"
	"github.com/Kaiser28/comptable-dashboard/internal/models"
)

const (
	connectAttempts = 10
	retryDelay      = 2 * time.Second
	migrationsDir   = "file://migrations"
)

// Models lists every table managed by AutoMigrate.
func Models() []any {
	return []any{&models.Client{}, &models.Associe{}, &models.Acte{}}
}

// Connect opens the database described by cfg. Postgres connections are
// retried while the server starts up.
func Connect(cfg config.DatabaseConfig, log zerolog.Logger) (*gorm.DB, error) {
	dsn := NormalizeDSN(cfg.DSN)
	if dsn == "" {
		return nil, errors.New("DATABASE_DSN est vide, vérifiez la configuration de l'environnement")
	}
	level := logger.Silent
	if cfg.Debug {
		level = logger.Info
	}
	gcfg := &gorm.Config{Logger: logger.Default.LogMode(level)}

	if IsSQLite(dsn) {
		conn, err := gorm.Open(sqlite.Open(strings.TrimSpace(dsn[len(sqlitePrefix):])), gcfg)
		if err != nil {
			return nil, fmt.Errorf("open sqlite: %w", err)
		}
		log.Info().Str("dsn", dsn).Msg("database connected")
		return conn, nil
	}

	var conn *gorm.DB
	var err error
	for i := 1; i <= connectAttempts; i++ {
		conn, err = gorm.Open(postgres.Open(dsn), gcfg)
		if err == nil {
			break
		}
		log.Warn().Err(err).Int("attempt", i).Msg("database not ready, retrying")
		time.Sleep(retryDelay)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect database after retries: %w", err)
	}
	if pingErr := conn.Exec("SELECT 1").Error; pingErr != nil {
		return nil, fmt.Errorf("db ping failed: %w", pingErr)
	}
	log.Info().Str("dsn", Masked(dsn)).Msg("database connected")
	return conn, nil
}

// Migrate brings the schema up to date. With sqlMigrations set on a
// postgres database the versioned files under ./migrations are applied;
// otherwise gorm AutoMigrate is used.
func Migrate(conn *gorm.DB, dsn string, sqlMigrations bool) error {
	dsn = NormalizeDSN(dsn)
	if sqlMigrations && !IsSQLite(dsn) {
		if err := runSQLMigrations(ToURLDSN(dsn)); err != nil {
			return fmt.Errorf("sql migrations failed: %w", err)
		}
	} else {
		for _, m := range Models() {
			if err := conn.AutoMigrate(m); err != nil {
				return fmt.Errorf("automigrate %T: %w", m, err)
			}
		}
	}
	for _, table := range []string{"clients", "associes", "actes"} {
		if !conn.Migrator().HasTable(table) {
			return errors.New("missing table after migration: " + table)
		}
	}
	return nil
}

func runSQLMigrations(dsn string) error {
	m, err := migrate.New(migrationsDir, dsn)
	if err != nil {
		return err
	}
	defer m.Close()
	if err = m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}
