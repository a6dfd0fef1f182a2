package config

import "time"

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"

	// DefaultDatabasePath is the default path for the catalog database
	DefaultDatabasePath = "./locallibrary.db"

	// DefaultStoreQueryTimeout bounds every catalog page's store round-trips
	DefaultStoreQueryTimeout = 5 * time.Second
)
