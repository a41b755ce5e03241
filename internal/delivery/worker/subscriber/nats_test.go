package subscriber

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"reminders/config"
	deliverycontext "reminders/internal/delivery/context"
	"reminders/internal/delivery/worker/handler"
	"reminders/internal/domain/constants"
	"reminders/internal/domain/entity"
	"reminders/internal/domain/service"
	"reminders/internal/infra/natsbus"
	"reminders/internal/infra/pubsub"
	mockUsecase "reminders/internal/mocks/usecase"

	natsserver "github.com/nats-io/nats-server/v2/test"
	"github.com/nats-io/nats.go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

type fixture struct {
	natsCfg      *config.NATSConfig
	transitionUC *mockUsecase.MockTransitionUsecase
	publisher    service.EventPublisher
	bus          *natsbus.Bus
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	opts := natsserver.DefaultTestOptions
	opts.Port = -1
	opts.JetStream = true
	opts.StoreDir = t.TempDir()

	srv := natsserver.RunServer(&opts)
	t.Cleanup(srv.Shutdown)

	natsCfg := &config.NATSConfig{URL: srv.ClientURL(), Durable: "geoworker-test"}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	transitionUC := mockUsecase.NewMockTransitionUsecase(t)

	lc := fxtest.NewLifecycle(t)
	lc.RequireStart()
	sub := NewNATSSubscriber(NATSParams{
		Lc:         lc,
		Config:     &config.Config{NATS: natsCfg},
		Dispatcher: handler.NewDispatcher(transitionUC, logger),
		Logger:     logger,
	})
	require.NoError(t, sub.Serve(context.Background()))
	t.Cleanup(func() { lc.RequireStop() })

	bus, err := natsbus.Connect(natsCfg)
	require.NoError(t, err)
	publisher := pubsub.NewNATSPublisher(bus, logger)
	t.Cleanup(func() { _ = publisher.Close() })

	return &fixture{
		natsCfg:      natsCfg,
		transitionUC: transitionUC,
		publisher:    publisher,
		bus:          bus,
	}
}

func natsMsg(subject string, data []byte) *nats.Msg {
	msg := nats.NewMsg(subject)
	msg.Data = data
	msg.Header.Set(constants.AttributeAction, constants.ActionGeofenceEvent)

	return msg
}

// waitDrained blocks until the durable consumer has acked everything.
func (f *fixture) waitDrained(t *testing.T) {
	t.Helper()

	require.Eventually(t, func() bool {
		info, err := f.bus.JS.ConsumerInfo("REMINDERS", f.natsCfg.Durable)
		if err != nil {
			return false
		}

		return info.NumPending == 0 && info.NumAckPending == 0
	}, 5*time.Second, 20*time.Millisecond)
}

func TestNATSSubscriber_DeliversPublishedTransition(t *testing.T) {
	f := newFixture(t)

	type delivered struct {
		requestID string
		event     *service.GeofenceTransitionEvent
	}
	got := make(chan delivered, 1)
	f.transitionUC.EXPECT().
		HandleTransition(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, event *service.GeofenceTransitionEvent) {
			got <- delivered{requestID: deliverycontext.GetRequestIDFromContext(ctx), event: event}
		}).
		Return(nil).
		Once()

	require.NoError(t, f.publisher.PublishTransitionEvent(context.Background(), &service.GeofenceTransitionEvent{
		RequestID:  "req-9",
		UserID:     "user-1",
		RequestIDs: []string{"r1"},
		Transition: entity.TransitionEnter,
	}))

	select {
	case d := <-got:
		assert.Equal(t, "req-9", d.requestID)
		assert.Equal(t, "user-1", d.event.UserID)
		assert.Equal(t, []string{"r1"}, d.event.RequestIDs)
		assert.Equal(t, entity.TransitionEnter, d.event.Transition)
	case <-time.After(5 * time.Second):
		t.Fatal("transition was not delivered")
	}

	f.waitDrained(t)
}

func TestNATSSubscriber_AcksFailedTransition(t *testing.T) {
	f := newFixture(t)

	f.transitionUC.EXPECT().
		HandleTransition(mock.Anything, mock.Anything).
		Return(assert.AnError).
		Once()

	require.NoError(t, f.publisher.PublishTransitionEvent(context.Background(), &service.GeofenceTransitionEvent{
		UserID:     "user-1",
		RequestIDs: []string{"r1"},
		Transition: entity.TransitionEnter,
	}))

	f.waitDrained(t)
}

func TestNATSSubscriber_AcksForeignAndMalformedMessages(t *testing.T) {
	f := newFixture(t)

	// No action header: ignored without reaching the use case.
	_, err := f.bus.JS.Publish(f.bus.Subject, []byte(`{"user_id":"user-1"}`))
	require.NoError(t, err)

	// Geofence action with an undecodable payload.
	msg := natsMsg(f.bus.Subject, []byte("not json"))
	_, err = f.bus.JS.PublishMsg(msg)
	require.NoError(t, err)

	f.waitDrained(t)
	f.transitionUC.AssertNotCalled(t, "HandleTransition", mock.Anything, mock.Anything)
}
