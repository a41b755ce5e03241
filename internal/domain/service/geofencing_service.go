package service

import (
	"context"

	"reminders/internal/domain/entity"
)

// GeofencingService monitors circular regions per owner and reports boundary
// crossings as devices report their positions.
type GeofencingService interface {
	// AddGeofences registers the request's geofences. When the request has an
	// initial trigger and the owner's last known location is already inside a
	// fence, the matching transition is returned.
	AddGeofences(ctx context.Context, request *entity.GeofencingRequest) ([]*entity.GeofenceTransition, error)

	// RemoveGeofences drops every geofence registered under owner.
	RemoveGeofences(ctx context.Context, owner string) error

	// UpdateLocation records the owner's position and returns new transitions.
	UpdateLocation(ctx context.Context, owner string, point entity.LatLng) ([]*entity.GeofenceTransition, error)
}
