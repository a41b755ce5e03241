// Package natsbus connects to NATS JetStream and provisions the stream that
// carries geofence transitions.
package natsbus

import (
	"time"

	"reminders/config"
	"reminders/internal/errors"

	"github.com/nats-io/nats.go"
)

const (
	defaultStream  = "REMINDERS"
	defaultSubject = "reminders.geofence.transitions"
	streamMaxAge   = 24 * time.Hour
)

// Bus is a JetStream-enabled connection.
type Bus struct {
	Conn    *nats.Conn
	JS      nats.JetStreamContext
	Subject string
}

// Connect dials NATS and makes sure the transition stream exists.
func Connect(cfg *config.NATSConfig) (*Bus, error) {
	if cfg == nil || cfg.URL == "" {
		return nil, errors.New("nats.url is required for the nats provider")
	}

	conn, err := nats.Connect(cfg.URL,
		nats.RetryOnFailedConnect(true),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
	)
	if err != nil {
		return nil, errors.Wrap(err, "nats connect")
	}

	js, err := conn.JetStream()
	if err != nil {
		conn.Close()

		return nil, errors.Wrap(err, "jetstream")
	}

	subject := orDefault(cfg.Subject, defaultSubject)
	streamCfg := &nats.StreamConfig{
		Name:      orDefault(cfg.Stream, defaultStream),
		Subjects:  []string{subject},
		Retention: nats.WorkQueuePolicy,
		MaxAge:    streamMaxAge,
		Storage:   nats.FileStorage,
	}
	if _, err := js.AddStream(streamCfg); err != nil {
		// The stream may already exist.
		if _, err := js.UpdateStream(streamCfg); err != nil {
			conn.Close()

			return nil, errors.Wrapf(err, "ensure stream %s", streamCfg.Name)
		}
	}

	return &Bus{Conn: conn, JS: js, Subject: subject}, nil
}

// Close drains pending messages and closes the connection.
func (b *Bus) Close() error {
	return errors.WithStack(b.Conn.Drain())
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}

	return value
}
