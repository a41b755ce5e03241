// Package persistence opens the configured reminder store.
package persistence

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"reminders/config"
	"reminders/internal/domain/lifecycle"
	"reminders/internal/errors"
	"reminders/internal/infra/metrics"
	"reminders/internal/infra/persistence/gormlog"
	"reminders/internal/infra/persistence/postgres"
	"reminders/internal/infra/persistence/sqlite"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

const (
	dbPoolMonitorInterval       = 5 * time.Second
	dbPoolWarnDurationThreshold = 50 * time.Millisecond
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the database selected by storage.driver and ties it to the fx lifecycle.
func New(params Params) (*gorm.DB, error) {
	cfg := params.Config
	gormLogger := gormlog.New(params.Logger, cfg.Env.Debug)

	var (
		db  *gorm.DB
		err error
	)
	switch cfg.Storage.Driver {
	case config.StorageDriverSQLite:
		db, err = sqlite.Open(cfg.Storage.SQLitePath, cfg.Storage.AutoMigrate, gormLogger)
	default:
		db, err = postgres.Open(cfg)
	}
	if err != nil {
		return nil, err
	}

	db = db.Session(&gorm.Session{
		// Multi-step writes go through TransactionManager.Execute.
		SkipDefaultTransaction: true,
		Logger:                 gormLogger,
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get sql.DB")
	}

	migrateOnStart := cfg.Storage.Driver == config.StorageDriverPostgres && cfg.Storage.AutoMigrate
	monitorCtx, cancelMonitor := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrapf(err, "failed to ping %s", cfg.Storage.Driver)
			}

			if migrateOnStart {
				if err := postgres.Migrate(ctx, sqlDB, "up"); err != nil {
					return err
				}
			}

			go monitorDBPool(monitorCtx, params.Logger, sqlDB, dbPoolMonitorInterval)

			return nil
		},
		OnStop: func(_ context.Context) error {
			cancelMonitor()

			return sqlDB.Close()
		},
	})

	return db, nil
}

func monitorDBPool(ctx context.Context, logger *slog.Logger, sqlDB *sql.DB, interval time.Duration) {
	if logger == nil || sqlDB == nil {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	prev := sqlDB.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cur := sqlDB.Stats()
			metrics.ObserveDBPool(cur)
			waitDelta := cur.WaitCount - prev.WaitCount
			waitDurationDelta := cur.WaitDuration - prev.WaitDuration
			prev = cur

			if waitDelta <= 0 {
				continue
			}

			attrs := []slog.Attr{
				slog.Int64("waitCountDelta", waitDelta),
				slog.Duration("waitDurationDelta", waitDurationDelta),
				slog.Duration("avgWait", waitDurationDelta/time.Duration(waitDelta)),
				slog.Int("maxOpenConns", cur.MaxOpenConnections),
				slog.Int("openConns", cur.OpenConnections),
				slog.Int("inUseConns", cur.InUse),
				slog.Int("idleConns", cur.Idle),
			}
			level := slog.LevelDebug
			if waitDurationDelta >= dbPoolWarnDurationThreshold {
				level = slog.LevelWarn
			}
			logger.LogAttrs(ctx, level, "DB pool wait observed", attrs...)
		}
	}
}
