package database

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mrlokans/bookstore/internal/config"
	"github.com/mrlokans/bookstore/internal/entities"
)

// sqlite connection options: enforce foreign keys, wait on locks instead of failing,
// and take the write lock when a transaction begins so check-then-insert sequences
// do not deadlock on lock upgrade.
const sqliteOptions = "_foreign_keys=on&_busy_timeout=5000&_txlock=immediate"

var ErrMissingDSN = errors.New("DATABASE_DSN is required for the mysql driver")

type Database struct {
	DB     *gorm.DB
	Driver config.DatabaseDriver
}

// NewDatabase opens the configured store and migrates the schema.
func NewDatabase(cfg config.Database) (*Database, error) {
	dialector, err := openDialector(cfg)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(gormLogLevel(cfg.LogLevel)),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	database := &Database{DB: db, Driver: driverOrDefault(cfg.Driver)}

	if database.Driver == config.DriverSQLite {
		// A single writer avoids SQLITE_BUSY between pooled connections.
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to access connection pool: %w", err)
		}
		sqlDB.SetMaxOpenConns(1)
	}

	if err := database.Migrate(); err != nil {
		database.Close()
		return nil, err
	}

	return database, nil
}

// Migrate creates or updates the four catalog tables. Authors and categories go
// first so the foreign keys on books can reference them.
func (d *Database) Migrate() error {
	err := d.DB.AutoMigrate(
		&entities.User{},
		&entities.Author{},
		&entities.Category{},
		&entities.Book{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}

func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Ping checks connectivity of the underlying pool.
func (d *Database) Ping(ctx context.Context) error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func openDialector(cfg config.Database) (gorm.Dialector, error) {
	switch driverOrDefault(cfg.Driver) {
	case config.DriverSQLite:
		return sqlite.Open(SQLiteDSN(cfg.Path)), nil
	case config.DriverMySQL:
		if cfg.DSN == "" {
			return nil, ErrMissingDSN
		}
		return mysql.Open(cfg.DSN), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

func driverOrDefault(driver config.DatabaseDriver) config.DatabaseDriver {
	if driver == "" {
		return config.DriverSQLite
	}
	return driver
}

// SQLiteDSN appends the connection options to a sqlite path.
func SQLiteDSN(path string) string {
	if strings.Contains(path, "?") {
		return path + "&" + sqliteOptions
	}
	return path + "?" + sqliteOptions
}

func gormLogLevel(level string) logger.LogLevel {
	switch strings.ToLower(level) {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "info":
		return logger.Info
	default:
		return logger.Warn
	}
}
