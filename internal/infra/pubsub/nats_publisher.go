package pubsub

import (
	"context"
	"encoding/json"
	"log/slog"

	"reminders/internal/domain/service"
	"reminders/internal/infra/natsbus"

	"github.com/nats-io/nats.go"
	"github.com/pkg/errors"
)

// natsPublisher publishes transitions to a JetStream work queue.
type natsPublisher struct {
	bus    *natsbus.Bus
	logger *slog.Logger
}

// NewNATSPublisher creates a publisher on an established bus.
func NewNATSPublisher(bus *natsbus.Bus, logger *slog.Logger) service.EventPublisher {
	return &natsPublisher{bus: bus, logger: logger}
}

func (p *natsPublisher) PublishTransitionEvent(ctx context.Context, event *service.GeofenceTransitionEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	msg := nats.NewMsg(p.bus.Subject)
	msg.Data = data
	for key, value := range transitionAttributes(event) {
		msg.Header.Set(key, value)
	}

	ack, err := p.bus.JS.PublishMsg(msg, nats.Context(ctx))
	if err != nil {
		return errors.Wrap(err, "jetstream publish")
	}

	p.logger.Debug("[NATS] Transition published",
		slog.String("user_id", event.UserID),
		slog.String("stream", ack.Stream),
		slog.Uint64("sequence", ack.Sequence),
	)

	return nil
}

func (p *natsPublisher) Close() error {
	return p.bus.Close()
}
