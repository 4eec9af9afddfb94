package infra

import (
	"fmt"
	"time"

	"github.com/amirasaad/ledger/pkg/config"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DefaultSQLiteURL keeps the sqlite store ephemeral unless a file is configured.
const DefaultSQLiteURL = "file::memory:?cache=shared"

// NewDBConnection opens the gorm connection for the sqlite or postgres store driver.
func NewDBConnection(cnf *config.Store, appEnv string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cnf.Driver {
	case "sqlite":
		url := cnf.URL
		if url == "" {
			url = DefaultSQLiteURL
		}
		dialector = sqlite.Open(url)
	case "postgres":
		if cnf.URL == "" {
			return nil, fmt.Errorf("STORE_URL is required for the postgres store")
		}
		dialector = postgres.Open(cnf.URL)
	default:
		return nil, fmt.Errorf("unsupported store driver %q", cnf.Driver)
	}

	logMode := logger.Silent
	if appEnv == "development" {
		logMode = logger.Info
	}

	connection, err := gorm.Open(dialector, &gorm.Config{
		Logger:                 logger.Default.LogMode(logMode),
		SkipDefaultTransaction: true,
		TranslateError:         true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := connection.DB()
	if err != nil {
		return nil, err
	}
	if cnf.Driver == "sqlite" {
		// One connection: every in-memory connection would otherwise see its own database,
		// and sqlite serializes writers anyway.
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxOpenConns(25)
		sqlDB.SetMaxIdleConns(25)
	}
	sqlDB.SetConnMaxLifetime(1 * time.Hour)

	return connection, nil
}
