package geofence

import (
	"context"
	"log/slog"

	"reminders/config"
	"reminders/internal/domain/service"
	"reminders/internal/errors"

	"github.com/valkey-io/valkey-go"
	"go.uber.org/fx"
)

const defaultKeyPrefix = "reminders"

// Params defines the dependencies for creating the geofencing service.
type Params struct {
	fx.In

	Lifecycle fx.Lifecycle
	Config    *config.Config
	Logger    *slog.Logger
}

// NewGeofencingService creates the registry selected by geofence.provider.
func NewGeofencingService(params Params) (service.GeofencingService, error) {
	switch params.Config.Geofence.Provider {
	case config.GeofenceProviderValkey:
		cfg := params.Config.Valkey
		client, err := valkey.NewClient(valkey.ClientOption{
			InitAddress: cfg.Addresses,
			Password:    cfg.Password,
		})
		if err != nil {
			return nil, errors.Wrap(err, "valkey connect")
		}

		params.Lifecycle.Append(fx.Hook{
			OnStop: func(_ context.Context) error {
				client.Close()

				return nil
			},
		})

		prefix := cfg.KeyPrefix
		if prefix == "" {
			prefix = defaultKeyPrefix
		}
		params.Logger.Info("Using Valkey geofence registry", slog.Any("addresses", cfg.Addresses))

		return NewValkeyRegistry(client, prefix), nil
	default:
		params.Logger.Info("Using in-memory geofence registry")

		return NewMemoryRegistry(), nil
	}
}
