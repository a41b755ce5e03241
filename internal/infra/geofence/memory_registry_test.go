package geofence

import (
	"context"
	"testing"
	"time"

	"reminders/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	// Golden Gate Park, San Francisco.
	parkCenter = entity.LatLng{Latitude: 37.7694, Longitude: -122.4862}
	// ~300 m east of the center.
	nearPark = entity.LatLng{Latitude: 37.7694, Longitude: -122.4828}
	// ~2 km away.
	farFromPark = entity.LatLng{Latitude: 37.7880, Longitude: -122.4862}
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func newFence(id string, expiresAt time.Time) *entity.Geofence {
	return &entity.Geofence{
		RequestID:       id,
		Center:          parkCenter,
		RadiusMeters:    500,
		ExpiresAt:       expiresAt,
		TransitionTypes: []entity.TransitionType{entity.TransitionEnter},
	}
}

func newRequest(fences ...*entity.Geofence) *entity.GeofencingRequest {
	return &entity.GeofencingRequest{
		Owner:          "user-1",
		Geofences:      fences,
		InitialTrigger: entity.TransitionEnter,
	}
}

func TestDistanceMeters(t *testing.T) {
	assert.InDelta(t, 300, DistanceMeters(parkCenter, nearPark), 10)
	assert.Greater(t, DistanceMeters(parkCenter, farFromPark), 2000.0)
}

func TestMemoryRegistry_EnterRaisedOnce(t *testing.T) {
	ctx := context.Background()
	clock := &fakeClock{now: time.Now()}
	r := newMemoryRegistry(clock.Now)

	_, err := r.AddGeofences(ctx, newRequest(newFence("r1", clock.now.Add(time.Hour))))
	require.NoError(t, err)

	transitions, err := r.UpdateLocation(ctx, "user-1", farFromPark)
	require.NoError(t, err)
	assert.Empty(t, transitions)

	transitions, err = r.UpdateLocation(ctx, "user-1", nearPark)
	require.NoError(t, err)
	require.Len(t, transitions, 1)
	assert.Equal(t, []string{"r1"}, transitions[0].RequestIDs)
	assert.Equal(t, entity.TransitionEnter, transitions[0].Transition)
	assert.Equal(t, "user-1", transitions[0].Owner)

	transitions, err = r.UpdateLocation(ctx, "user-1", parkCenter)
	require.NoError(t, err)
	assert.Empty(t, transitions, "staying inside raises nothing")

	_, err = r.UpdateLocation(ctx, "user-1", farFromPark)
	require.NoError(t, err)
	transitions, err = r.UpdateLocation(ctx, "user-1", nearPark)
	require.NoError(t, err)
	assert.Len(t, transitions, 1, "re-entering raises again")
}

func TestMemoryRegistry_InitialTriggerEnter(t *testing.T) {
	ctx := context.Background()
	r := newMemoryRegistry(time.Now)

	_, err := r.UpdateLocation(ctx, "user-1", nearPark)
	require.NoError(t, err)

	transitions, err := r.AddGeofences(ctx, newRequest(newFence("r1", time.Time{})))
	require.NoError(t, err)
	require.Len(t, transitions, 1)
	assert.Equal(t, []string{"r1"}, transitions[0].RequestIDs)

	transitions, err = r.UpdateLocation(ctx, "user-1", parkCenter)
	require.NoError(t, err)
	assert.Empty(t, transitions)
}

func TestMemoryRegistry_RemoveGeofences(t *testing.T) {
	ctx := context.Background()
	r := newMemoryRegistry(time.Now)

	_, err := r.AddGeofences(ctx, newRequest(newFence("r1", time.Time{})))
	require.NoError(t, err)
	require.NoError(t, r.RemoveGeofences(ctx, "user-1"))
	require.NoError(t, r.RemoveGeofences(ctx, "nobody"))

	transitions, err := r.UpdateLocation(ctx, "user-1", nearPark)
	require.NoError(t, err)
	assert.Empty(t, transitions)
}

func TestMemoryRegistry_ExpiredFenceIgnored(t *testing.T) {
	ctx := context.Background()
	clock := &fakeClock{now: time.Now()}
	r := newMemoryRegistry(clock.Now)

	_, err := r.AddGeofences(ctx, newRequest(newFence("r1", clock.now.Add(24*time.Hour))))
	require.NoError(t, err)

	clock.now = clock.now.Add(25 * time.Hour)

	transitions, err := r.UpdateLocation(ctx, "user-1", nearPark)
	require.NoError(t, err)
	assert.Empty(t, transitions)
}

func TestMemoryRegistry_ExitOnlyFenceNeverEnters(t *testing.T) {
	ctx := context.Background()
	r := newMemoryRegistry(time.Now)

	fence := newFence("r1", time.Time{})
	fence.TransitionTypes = []entity.TransitionType{entity.TransitionExit}
	_, err := r.AddGeofences(ctx, newRequest(fence))
	require.NoError(t, err)

	transitions, err := r.UpdateLocation(ctx, "user-1", nearPark)
	require.NoError(t, err)
	assert.Empty(t, transitions)
}

func TestMemoryRegistry_OwnersAreIsolated(t *testing.T) {
	ctx := context.Background()
	r := newMemoryRegistry(time.Now)

	_, err := r.AddGeofences(ctx, newRequest(newFence("r1", time.Time{})))
	require.NoError(t, err)

	transitions, err := r.UpdateLocation(ctx, "user-2", nearPark)
	require.NoError(t, err)
	assert.Empty(t, transitions)
}

func TestValidateRequest(t *testing.T) {
	tests := []struct {
		name    string
		request *entity.GeofencingRequest
	}{
		{name: "nil request", request: nil},
		{name: "no owner", request: &entity.GeofencingRequest{Geofences: []*entity.Geofence{newFence("r1", time.Time{})}}},
		{name: "no fences", request: &entity.GeofencingRequest{Owner: "user-1"}},
		{name: "empty request id", request: newRequest(newFence("", time.Time{}))},
		{name: "zero radius", request: newRequest(&entity.Geofence{RequestID: "r1", TransitionTypes: []entity.TransitionType{entity.TransitionEnter}})},
		{name: "no transitions", request: newRequest(&entity.Geofence{RequestID: "r1", RadiusMeters: 500})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, validateRequest(tt.request), ErrInvalidRequest)
		})
	}
}
