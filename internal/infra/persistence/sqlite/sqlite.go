// Package sqlite opens the single-node reminder store on top of a pure-Go
// SQLite driver.
package sqlite

import (
	"strings"

	"reminders/internal/errors"
	"reminders/internal/infra/persistence/model"

	gsqlite "github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// MemoryPath keeps the database in process memory.
const MemoryPath = ":memory:"

// Open opens the database at path. With autoMigrate the reminder tables are
// created or updated from the gorm models.
func Open(path string, autoMigrate bool, gormLogger logger.Interface) (*gorm.DB, error) {
	db, err := gorm.Open(gsqlite.Open(dsn(path)), &gorm.Config{
		TranslateError: true,
		Logger:         gormLogger,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to open sqlite database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get sqlite sql.DB")
	}
	// SQLite allows one writer. For in-memory databases every connection is a
	// separate database, so a single connection is also required for correctness.
	sqlDB.SetMaxOpenConns(1)

	if autoMigrate {
		if err := db.AutoMigrate(model.All()...); err != nil {
			return nil, errors.Wrap(err, "failed to migrate sqlite schema")
		}
	}

	return db, nil
}

func dsn(path string) string {
	if path == MemoryPath {
		return path
	}

	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}

	return path + sep + "_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
}
