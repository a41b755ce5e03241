package service

import (
	"context"
	"time"

	"reminders/internal/domain/entity"
)

// GeofenceTransitionEvent is the message published for every detected
// transition and consumed by the geo worker.
type GeofenceTransitionEvent struct {
	RequestID   string                `json:"request_id,omitempty"` // For distributed tracing
	UserID      string                `json:"user_id"`
	RequestIDs  []string              `json:"geofence_request_ids"` // Triggering geofences, first one wins
	Transition  entity.TransitionType `json:"transition"`
	Latitude    float64               `json:"latitude"`
	Longitude   float64               `json:"longitude"`
	TriggeredAt time.Time             `json:"triggered_at"`
}

// NewGeofenceTransitionEvent builds the event for a transition.
func NewGeofenceTransitionEvent(requestID string, transition *entity.GeofenceTransition) *GeofenceTransitionEvent {
	return &GeofenceTransitionEvent{
		RequestID:   requestID,
		UserID:      transition.Owner,
		RequestIDs:  transition.RequestIDs,
		Transition:  transition.Transition,
		Latitude:    transition.Location.Latitude,
		Longitude:   transition.Location.Longitude,
		TriggeredAt: transition.TriggeredAt,
	}
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishTransitionEvent publishes a geofence transition for async processing
	PublishTransitionEvent(ctx context.Context, event *GeofenceTransitionEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
