package pubsub

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"reminders/config"
	"reminders/internal/domain/constants"
	"reminders/internal/domain/entity"
	"reminders/internal/domain/service"
	"reminders/internal/infra/natsbus"

	natsserver "github.com/nats-io/nats-server/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBus(t *testing.T) *natsbus.Bus {
	t.Helper()

	opts := natsserver.DefaultTestOptions
	opts.Port = -1
	opts.JetStream = true
	opts.StoreDir = t.TempDir()

	srv := natsserver.RunServer(&opts)
	t.Cleanup(srv.Shutdown)

	bus, err := natsbus.Connect(&config.NATSConfig{URL: srv.ClientURL()})
	require.NoError(t, err)

	return bus
}

func TestNATSPublisher_SetsRoutingHeaders(t *testing.T) {
	bus := newTestBus(t)
	publisher := NewNATSPublisher(bus, newDiscardLogger())
	t.Cleanup(func() { _ = publisher.Close() })

	sub, err := bus.JS.SubscribeSync(bus.Subject)
	require.NoError(t, err)

	event := &service.GeofenceTransitionEvent{
		RequestID:   "req-1",
		UserID:      "user-1",
		RequestIDs:  []string{"r1"},
		Transition:  entity.TransitionEnter,
		Latitude:    37.7694,
		Longitude:   -122.4862,
		TriggeredAt: time.Now().UTC().Truncate(time.Second),
	}
	require.NoError(t, publisher.PublishTransitionEvent(context.Background(), event))

	msg, err := sub.NextMsg(5 * time.Second)
	require.NoError(t, err)

	assert.Equal(t, constants.ActionGeofenceEvent, msg.Header.Get(constants.AttributeAction))
	assert.Equal(t, "user-1", msg.Header.Get(constants.AttributeUserID))
	assert.Equal(t, "req-1", msg.Header.Get(constants.AttributeRequestID))

	var got service.GeofenceTransitionEvent
	require.NoError(t, json.Unmarshal(msg.Data, &got))
	assert.Equal(t, event.RequestIDs, got.RequestIDs)
	assert.Equal(t, event.UserID, got.UserID)
	assert.True(t, event.TriggeredAt.Equal(got.TriggeredAt))
}

func TestNATSPublisher_OmitsEmptyRequestID(t *testing.T) {
	bus := newTestBus(t)
	publisher := NewNATSPublisher(bus, newDiscardLogger())
	t.Cleanup(func() { _ = publisher.Close() })

	sub, err := bus.JS.SubscribeSync(bus.Subject)
	require.NoError(t, err)

	require.NoError(t, publisher.PublishTransitionEvent(context.Background(), &service.GeofenceTransitionEvent{
		UserID:     "user-1",
		RequestIDs: []string{"r1"},
		Transition: entity.TransitionEnter,
	}))

	msg, err := sub.NextMsg(5 * time.Second)
	require.NoError(t, err)
	assert.Empty(t, msg.Header.Values(constants.AttributeRequestID))
	assert.Equal(t, constants.ActionGeofenceEvent, msg.Header.Get(constants.AttributeAction))
}
