package geofence

import (
	"context"
	"sync"
	"time"

	"reminders/internal/domain/entity"
	"reminders/internal/domain/service"
	"reminders/internal/errors"
)

// ErrInvalidRequest is returned for geofencing requests that cannot be monitored.
var ErrInvalidRequest = errors.New("invalid geofencing request")

type memoryRegistry struct {
	mu     sync.Mutex
	owners map[string]*ownerState
	now    func() time.Time
}

// NewMemoryRegistry returns a process-local geofencing service.
func NewMemoryRegistry() service.GeofencingService {
	return newMemoryRegistry(time.Now)
}

func newMemoryRegistry(now func() time.Time) *memoryRegistry {
	return &memoryRegistry{
		owners: make(map[string]*ownerState),
		now:    now,
	}
}

func (r *memoryRegistry) AddGeofences(_ context.Context, request *entity.GeofencingRequest) ([]*entity.GeofenceTransition, error) {
	if err := validateRequest(request); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	state := r.ownerLocked(request.Owner)
	now := r.now()
	state.purgeExpired(now)
	entered := state.add(request.Geofences, request.InitialTrigger)
	if len(entered) == 0 {
		return nil, nil
	}

	return newTransition(request.Owner, entered, *state.Location, now), nil
}

func (r *memoryRegistry) RemoveGeofences(_ context.Context, owner string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	state, ok := r.owners[owner]
	if !ok {
		return nil
	}
	state.Fences = make(map[string]*entity.Geofence)
	state.Inside = make(map[string]bool)

	return nil
}

func (r *memoryRegistry) UpdateLocation(_ context.Context, owner string, point entity.LatLng) ([]*entity.GeofenceTransition, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	state := r.ownerLocked(owner)
	now := r.now()
	state.purgeExpired(now)

	return newTransition(owner, state.enter(point), point, now), nil
}

func (r *memoryRegistry) ownerLocked(owner string) *ownerState {
	state, ok := r.owners[owner]
	if !ok {
		state = newOwnerState()
		r.owners[owner] = state
	}

	return state
}

func validateRequest(request *entity.GeofencingRequest) error {
	if request == nil || request.Owner == "" || len(request.Geofences) == 0 {
		return errors.Wrap(ErrInvalidRequest, "owner and at least one geofence are required")
	}

	for _, fence := range request.Geofences {
		switch {
		case fence.RequestID == "":
			return errors.Wrap(ErrInvalidRequest, "geofence request id is empty")
		case fence.RadiusMeters <= 0:
			return errors.Wrapf(ErrInvalidRequest, "geofence %s radius must be positive", fence.RequestID)
		case len(fence.TransitionTypes) == 0:
			return errors.Wrapf(ErrInvalidRequest, "geofence %s has no transition types", fence.RequestID)
		}
	}

	return nil
}
