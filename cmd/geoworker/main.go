package main

import (
	"context"
	"log/slog"
	"os"

	"reminders/config"
	"reminders/internal/delivery"
	"reminders/internal/delivery/worker"
	"reminders/internal/delivery/worker/handler"
	"reminders/internal/delivery/worker/subscriber"
	"reminders/internal/domain/constants"
	"reminders/internal/infra/firebase"
	logs "reminders/internal/infra/log"
	"reminders/internal/infra/notification"
	"reminders/internal/infra/persistence"
	"reminders/internal/infra/persistence/local"
	"reminders/internal/infra/persistence/postgres"
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
			notification.NewNotificationService,
			impl.NewTransitionService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewDispatcher,
			handler.NewPushHandler,
		),
	)
}

// injectDelivery always serves the push endpoint and adds the JetStream
// consumer when transitions travel over NATS.
func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				worker.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				newNATSDeliveries,
				fx.ResultTags(`group:"deliveries,flatten"`),
			),
		),
	)
}

func newNATSDeliveries(cfg *config.Config, params subscriber.NATSParams) []delivery.Delivery {
	if cfg.PubSub == nil || cfg.PubSub.Provider != constants.PubSubProviderNATS {
		return nil
	}

	return []delivery.Delivery{subscriber.NewNATSSubscriber(params)}
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start worker", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
