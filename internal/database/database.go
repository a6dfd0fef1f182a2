package database

import (
	"context"
	"fmt"
	"log"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mrlokans/locallibrary/internal/entities"
)

type Database struct {
	DB *gorm.DB
}

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type options struct {
	driver   string
	logLevel logger.LogLevel
}

// Option customizes how NewDatabase opens the store.
type Option func(*options)

// WithLogLevel sets gorm's SQL log level by name: silent, error, warn or info.
// Unknown names fall back to warn.
func WithLogLevel(level string) Option {
	return func(o *options) {
		o.logLevel = parseLogLevel(level)
	}
}

// WithDriver selects the SQL backend. An empty name keeps sqlite.
func WithDriver(driver string) Option {
	return func(o *options) {
		if driver != "" {
			o.driver = driver
		}
	}
}

func openDialector(driver, target string) (gorm.Dialector, error) {
	switch strings.ToLower(driver) {
	case DriverSQLite:
		return sqlite.Open(target), nil
	case DriverPostgres:
		return postgres.Open(target), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
}

func parseLogLevel(level string) logger.LogLevel {
	switch strings.ToLower(strings.TrimSpace(level)) {
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

// NewDatabase opens target (a file path for sqlite, a DSN for postgres) and
// migrates the catalog tables.
func NewDatabase(target string, opts ...Option) (*Database, error) {
	o := options{driver: DriverSQLite, logLevel: logger.Warn}
	for _, opt := range opts {
		opt(&o)
	}

	dialector, err := openDialector(o.driver, target)
	if err != nil {
		return nil, err
	}

	// Referential integrity is left to the application: a book whose author row is
	// gone still lists, with an empty author.
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:                                   logger.Default.LogMode(o.logLevel),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	err = db.AutoMigrate(
		&entities.Author{},
		&entities.Genre{},
		&entities.Book{},
		&entities.BookInstance{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	if o.driver == DriverSQLite {
		log.Printf("Database initialized successfully at %s", target)
	} else {
		log.Printf("Database initialized successfully (%s)", o.driver)
	}

	return &Database{DB: db}, nil
}

// Ping checks that the underlying connection is alive.
func (d *Database) Ping(ctx context.Context) error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
