package sqlite

import (
	"context"
	"fmt"
	"time"

	sqlitedriver "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"github.com/simaogato/statflow-etl/internal/logger"
)

// DB wraps a gorm connection to one SQLite database file
type DB struct {
	gorm      *gorm.DB
	batchSize int
}

// gormWriter routes gorm's printf-style output into the pipeline logger
type gormWriter struct {
	log *logger.Logger
}

func (w gormWriter) Printf(format string, args ...interface{}) {
	w.log.Warn(fmt.Sprintf(format, args...))
}

// Open opens (or creates) the database file at path and provisions the given
// models with AutoMigrate, which only creates what is missing
func Open(ctx context.Context, path string, batchSize int, log *logger.Logger, models ...interface{}) (*DB, error) {
	gormLog := gormLogger.New(
		gormWriter{log: log.With("store", "sqlite", "path", path)},
		gormLogger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  gormLogger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)

	db, err := gorm.Open(sqlitedriver.Open(path), &gorm.Config{
		Logger: gormLog,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database %s: %w", path, err)
	}

	if err := db.WithContext(ctx).AutoMigrate(models...); err != nil {
		closeGorm(db)
		return nil, fmt.Errorf("failed to create schema in %s: %w", path, err)
	}

	if batchSize < 1 {
		batchSize = 1
	}
	return &DB{gorm: db, batchSize: batchSize}, nil
}

// Close closes the underlying connection
func (db *DB) Close() error {
	return closeGorm(db.gorm)
}

func closeGorm(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
