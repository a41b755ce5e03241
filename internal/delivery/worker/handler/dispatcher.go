// Package handler decodes transition messages and hands them to the
// transition use case.
package handler

import (
	"context"
	"encoding/json"
	"log/slog"

	deliverycontext "reminders/internal/delivery/context"
	"reminders/internal/domain/constants"
	"reminders/internal/domain/service"
	"reminders/internal/errors"
	"reminders/internal/usecase"

	"github.com/google/uuid"
)

// ErrMalformedEvent marks a payload that can never be processed.
var ErrMalformedEvent = errors.New("malformed transition event")

// Attributes reads a message attribute or header by key.
type Attributes func(key string) string

// Dispatcher routes geofence transition messages to TransitionUsecase. It is
// shared by every transport the worker listens on.
type Dispatcher struct {
	transitionUC usecase.TransitionUsecase
	logger       *slog.Logger
}

func NewDispatcher(transitionUC usecase.TransitionUsecase, logger *slog.Logger) *Dispatcher {
	return &Dispatcher{transitionUC: transitionUC, logger: logger}
}

// Dispatch ignores messages whose action is not a geofence event and drops
// events the use case cannot handle. Only an undecodable payload is an error.
func (d *Dispatcher) Dispatch(ctx context.Context, attrs Attributes, data []byte) error {
	if action := attrs(constants.AttributeAction); action != constants.ActionGeofenceEvent {
		d.logger.Debug("[Worker] Ignoring message", slog.String("action", action))

		return nil
	}

	var event service.GeofenceTransitionEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return errors.Wrap(ErrMalformedEvent, err.Error())
	}

	requestID := requestIDOf(ctx, attrs, &event)
	logger := d.logger.With(slog.String("request_id", requestID))
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, logger)

	logger.Info("[Worker] Processing geofence transition",
		slog.String("user_id", event.UserID),
		slog.String("transition", string(event.Transition)),
		slog.Int("geofences", len(event.RequestIDs)),
	)

	if err := d.transitionUC.HandleTransition(ctx, &event); err != nil {
		logger.Error("[Worker] Failed to handle transition", slog.Any("error", err))
	}

	return nil
}

// requestIDOf prefers the message attribute, then the payload, then the
// inbound request, and mints one as a last resort.
func requestIDOf(ctx context.Context, attrs Attributes, event *service.GeofenceTransitionEvent) string {
	if id := attrs(constants.AttributeRequestID); id != "" {
		return id
	}
	if event.RequestID != "" {
		return event.RequestID
	}
	if id := deliverycontext.GetRequestIDFromContext(ctx); id != "" {
		return id
	}

	return uuid.NewString()
}
