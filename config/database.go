package config

import (
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// OpenDB opens the backing database. With DB_URL set it connects to
// postgres like a hosted deployment; otherwise it falls back to a local
// sqlite file, which suits the single-tenant shop install.
func OpenDB() (*gorm.DB, error) {
	cfg := &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	}

	if dsn := os.Getenv("DB_URL"); dsn != "" {
		return gorm.Open(postgres.Open(dsn), cfg)
	}

	path := os.Getenv("DB_PATH")
	if path == "" {
		path = "servispro.db"
	}
	return gorm.Open(sqlite.Open(path), cfg)
}
