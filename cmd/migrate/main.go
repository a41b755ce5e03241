// Command migrate applies the embedded goose migrations to the configured
// PostgreSQL database. Usage: migrate [up|down|status|redo|version] [args...]
package main

import (
	"context"
	"log/slog"
	"os"

	"reminders/config"
	"reminders/internal/errors"
	"reminders/internal/infra/persistence/postgres"
)

func main() {
	command := "up"
	var args []string
	if len(os.Args) > 1 {
		command = os.Args[1]
		args = os.Args[2:]
	}

	if err := run(context.Background(), command, args); err != nil {
		slog.Error("Migration failed", slog.String("command", command), slog.Any("error", err))
		os.Exit(1)
	}
}

func run(ctx context.Context, command string, args []string) error {
	cfg, err := config.New()
	if err != nil {
		return err
	}

	if cfg.Postgres == nil {
		return errors.New("postgres section is missing")
	}

	db, err := postgres.Open(cfg)
	if err != nil {
		return err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return errors.Wrap(err, "failed to get sql.DB")
	}
	defer sqlDB.Close()

	if err := postgres.Migrate(ctx, sqlDB, command, args...); err != nil {
		return err
	}

	slog.Info("Migration finished", slog.String("command", command))

	return nil
}
