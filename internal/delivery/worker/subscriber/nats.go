// Package subscriber consumes geofence transitions from NATS JetStream.
package subscriber

import (
	"context"
	"log/slog"
	"sync"

	"reminders/config"
	"reminders/internal/delivery"
	"reminders/internal/delivery/worker/handler"
	"reminders/internal/errors"
	"reminders/internal/infra/natsbus"

	"github.com/nats-io/nats.go"
	"go.uber.org/fx"
)

const (
	defaultDurable    = "geoworker"
	defaultMaxDeliver = 1
)

// NATSParams holds dependencies for the JetStream subscriber, injected by Fx.
type NATSParams struct {
	fx.In

	Lc         fx.Lifecycle
	Config     *config.Config
	Dispatcher *handler.Dispatcher
	Logger     *slog.Logger
}

type natsSubscriber struct {
	cfg        *config.NATSConfig
	dispatcher *handler.Dispatcher
	logger     *slog.Logger

	mu  sync.Mutex
	bus *natsbus.Bus
	sub *nats.Subscription
}

// NewNATSSubscriber returns a durable JetStream consumer. Messages are acked
// once handled whatever the outcome, since a failed transition is dropped.
func NewNATSSubscriber(params NATSParams) delivery.Delivery {
	cfg := params.Config.NATS
	if cfg == nil {
		cfg = &config.NATSConfig{}
	}

	s := &natsSubscriber{
		cfg:        cfg,
		dispatcher: params.Dispatcher,
		logger:     params.Logger,
	}

	params.Lc.Append(fx.Hook{
		OnStop: s.stop,
	})

	return s
}

// Serve connects and subscribes, then returns. Messages are handled on the
// client's delivery goroutine until stop.
func (s *natsSubscriber) Serve(_ context.Context) error {
	bus, err := natsbus.Connect(s.cfg)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.bus = bus

	maxDeliver := s.cfg.MaxDeliver
	if maxDeliver <= 0 {
		maxDeliver = defaultMaxDeliver
	}
	durable := s.cfg.Durable
	if durable == "" {
		durable = defaultDurable
	}

	sub, err := bus.JS.Subscribe(bus.Subject, s.handle,
		nats.Durable(durable),
		nats.ManualAck(),
		nats.AckExplicit(),
		nats.MaxDeliver(maxDeliver),
	)
	if err != nil {
		return errors.Wrapf(err, "subscribe %s", bus.Subject)
	}
	s.sub = sub

	s.logger.Info("[Worker] Consuming transitions from NATS",
		slog.String("subject", bus.Subject),
		slog.String("durable", durable),
	)

	return nil
}

func (s *natsSubscriber) handle(msg *nats.Msg) {
	if err := s.dispatcher.Dispatch(context.Background(), msg.Header.Get, msg.Data); err != nil {
		s.logger.Error("[Worker] Dropping message", slog.String("subject", msg.Subject), slog.Any("error", err))
	}

	if err := msg.Ack(); err != nil {
		s.logger.Warn("[Worker] Failed to ack message", slog.Any("error", err))
	}
}

func (s *natsSubscriber) stop(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.bus == nil {
		return nil
	}
	if s.sub != nil {
		if err := s.sub.Drain(); err != nil {
			s.logger.Warn("[Worker] Failed to drain subscription", slog.Any("error", err))
		}
	}

	return s.bus.Close()
}
