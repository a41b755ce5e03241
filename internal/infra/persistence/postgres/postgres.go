// Package postgres holds the gorm repositories and the PostgreSQL connection.
// The repositories only issue portable SQL, so the sqlite driver reuses them.
package postgres

import (
	"reminders/config"
	"reminders/internal/errors"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"gorm.io/gorm"
)

// Open connects to the primary and any configured replicas.
func Open(cfg *config.Config) (*gorm.DB, error) {
	db, err := pgLib.New(cfg.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}
	db.TranslateError = true

	return db, nil
}
