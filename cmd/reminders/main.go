package main

import (
	"context"
	"log/slog"
	"os"

	"reminders/config"
	"reminders/internal/delivery"
	"reminders/internal/delivery/api"
	"reminders/internal/delivery/api/middleware"
	"reminders/internal/delivery/api/router/handler"
	"reminders/internal/delivery/api/ws"
	"reminders/internal/domain/service"
	"reminders/internal/infra/auth"
	"reminders/internal/infra/firebase"
	"reminders/internal/infra/geofence"
	logs "reminders/internal/infra/log"
	"reminders/internal/infra/persistence"
	"reminders/internal/infra/persistence/local"
	"reminders/internal/infra/persistence/postgres"
	"reminders/internal/infra/pubsub"
	"reminders/internal/infra/qrcode"
	"reminders/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectMiddleware(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		persistence.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewReminderRepository,
			postgres.NewDeviceRepository,
			postgres.NewTransactionManager,
			local.NewRemindersLocalRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			firebase.Provide,
			auth.NewTokenVerifier,
			geofence.NewGeofencingService,
			pubsub.NewEventPublisher,
			newQRCodeService,
		),
	)
}

func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		return qrcode.NewQRCodeService(0, "")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewReminderService,
			impl.NewLocationService,
			impl.NewDeviceService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			ws.NewHub,
			ws.NewHandler,
			handler.NewHealthHandler,
			handler.NewAuthHandler,
			handler.NewReminderHandler,
			handler.NewLocationHandler,
			handler.NewDeviceHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
