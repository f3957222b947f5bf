package database

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"inventory-backend/internal/config"
	"inventory-backend/internal/database/migrations"

	"github.com/pressly/goose/v3"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// Init opens the shared connection and brings the schema up to date.
func Init(ctx context.Context, cfg *config.Config, log *slog.Logger) error {
	db, err := Open(cfg.DatabaseDSN, cfg.DBMaxOpenConns, log)
	if err != nil {
		return err
	}
	if err := Migrate(ctx, db, "up"); err != nil {
		return err
	}
	DB = db
	log.Info("database connected, migrations applied")
	return nil
}

// Open connects to Postgres. SQL is logged through log at debug level and
// statements slower than 200ms at warn level.
func Open(dsn string, maxOpenConns int, log *slog.Logger) (*gorm.DB, error) {
	level := logger.Warn
	if log.Enabled(context.Background(), slog.LevelDebug) {
		level = logger.Info
	}
	gormLog := logger.New(slog.NewLogLogger(log.Handler(), slog.LevelDebug), logger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  level,
		IgnoreRecordNotFoundError: true,
	})

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{Logger: gormLog})
	if err != nil {
		return nil, fmt.Errorf("could not connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if maxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(maxOpenConns)
		sqlDB.SetMaxIdleConns(maxOpenConns)
	}
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	return db, nil
}

// Migrate runs a goose command ("up", "down" or "status") against the
// embedded migrations.
func Migrate(ctx context.Context, db *gorm.DB, command string) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}

	switch command {
	case "up":
		err = goose.UpContext(ctx, sqlDB, ".")
	case "down":
		err = goose.DownContext(ctx, sqlDB, ".")
	case "status":
		err = goose.StatusContext(ctx, sqlDB, ".")
	default:
		return fmt.Errorf("unknown migrate command %q", command)
	}
	if err != nil {
		return fmt.Errorf("migrate %s: %w", command, err)
	}
	return nil
}
