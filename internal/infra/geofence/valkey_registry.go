package geofence

import (
	"context"
	"encoding/json"
	"math/rand/v2"
	"time"

	"reminders/internal/domain/entity"
	"reminders/internal/domain/service"
	"reminders/internal/errors"

	"github.com/valkey-io/valkey-go"
)

const (
	maxTxAttempts = 5
	// txBackoffBase is the first retry delay, doubled on every further attempt
	// and jittered so contending writers spread out.
	txBackoffBase = 2 * time.Millisecond
	// minStateTTL keeps the last known location around when no fence is registered.
	minStateTTL = 24 * time.Hour
)

// ErrConcurrentUpdate is returned when an owner's state kept changing under
// every optimistic transaction attempt.
var ErrConcurrentUpdate = errors.New("geofence state changed concurrently")

// valkeyRegistry stores one JSON document per owner and updates it with
// WATCH/MULTI so several API replicas can share the registry.
type valkeyRegistry struct {
	client valkey.Client
	prefix string
	now    func() time.Time
}

// NewValkeyRegistry returns a geofencing service backed by Valkey.
func NewValkeyRegistry(client valkey.Client, keyPrefix string) service.GeofencingService {
	return &valkeyRegistry{
		client: client,
		prefix: keyPrefix,
		now:    time.Now,
	}
}

func (r *valkeyRegistry) AddGeofences(ctx context.Context, request *entity.GeofencingRequest) ([]*entity.GeofenceTransition, error) {
	if err := validateRequest(request); err != nil {
		return nil, err
	}

	var transitions []*entity.GeofenceTransition
	err := r.mutate(ctx, request.Owner, func(state *ownerState, now time.Time) {
		transitions = nil
		state.purgeExpired(now)
		if entered := state.add(request.Geofences, request.InitialTrigger); len(entered) > 0 {
			transitions = newTransition(request.Owner, entered, *state.Location, now)
		}
	})
	if err != nil {
		return nil, err
	}

	return transitions, nil
}

func (r *valkeyRegistry) RemoveGeofences(ctx context.Context, owner string) error {
	return r.mutate(ctx, owner, func(state *ownerState, _ time.Time) {
		state.Fences = make(map[string]*entity.Geofence)
		state.Inside = make(map[string]bool)
	})
}

func (r *valkeyRegistry) UpdateLocation(ctx context.Context, owner string, point entity.LatLng) ([]*entity.GeofenceTransition, error) {
	var transitions []*entity.GeofenceTransition
	err := r.mutate(ctx, owner, func(state *ownerState, now time.Time) {
		state.purgeExpired(now)
		transitions = newTransition(owner, state.enter(point), point, now)
	})
	if err != nil {
		return nil, err
	}

	return transitions, nil
}

func (r *valkeyRegistry) key(owner string) string {
	return r.prefix + ":geofence:" + owner
}

// mutate loads the owner's state, applies fn and writes it back atomically.
// fn may run more than once and must not keep side effects from earlier runs.
func (r *valkeyRegistry) mutate(ctx context.Context, owner string, fn func(state *ownerState, now time.Time)) error {
	key := r.key(owner)

	for attempt := range maxTxAttempts {
		if attempt > 0 {
			if err := sleepCtx(ctx, txBackoff(attempt)); err != nil {
				return errors.WithStack(err)
			}
		}

		committed := false
		err := r.client.Dedicated(func(c valkey.DedicatedClient) error {
			if err := c.Do(ctx, c.B().Watch().Key(key).Build()).Error(); err != nil {
				return errors.Wrap(err, "watch geofence state")
			}

			state, err := loadState(ctx, c, key)
			if err != nil {
				return err
			}

			now := r.now()
			fn(state, now)

			payload, err := json.Marshal(state)
			if err != nil {
				return errors.Wrap(err, "marshal geofence state")
			}

			resps := c.DoMulti(ctx,
				c.B().Multi().Build(),
				c.B().Set().Key(key).Value(valkey.BinaryString(payload)).Ex(stateTTL(state, now)).Build(),
				c.B().Exec().Build(),
			)
			for _, resp := range resps[:2] {
				if err := resp.Error(); err != nil {
					return errors.Wrap(err, "queue geofence state")
				}
			}
			if err := resps[2].Error(); err != nil {
				if valkey.IsValkeyNil(err) {
					// The watched key changed, retry with fresh state.
					return nil
				}

				return errors.Wrap(err, "exec geofence state")
			}
			committed = true

			return nil
		})
		if err != nil {
			return err
		}
		if committed {
			return nil
		}
	}

	return errors.Wrapf(ErrConcurrentUpdate, "owner %s", owner)
}

// txBackoff returns a delay in [d/2, d) with d = txBackoffBase << attempt.
func txBackoff(attempt int) time.Duration {
	d := txBackoffBase << attempt
	half := d / 2

	return half + rand.N(half)
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func loadState(ctx context.Context, c valkey.CoreClient, key string) (*ownerState, error) {
	raw, err := c.Do(ctx, c.B().Get().Key(key).Build()).AsBytes()
	if err != nil {
		if valkey.IsValkeyNil(err) {
			return newOwnerState(), nil
		}

		return nil, errors.Wrap(err, "get geofence state")
	}

	state := newOwnerState()
	if err := json.Unmarshal(raw, state); err != nil {
		return nil, errors.Wrap(err, "unmarshal geofence state")
	}
	if state.Fences == nil {
		state.Fences = make(map[string]*entity.Geofence)
	}
	if state.Inside == nil {
		state.Inside = make(map[string]bool)
	}

	return state, nil
}

// stateTTL outlives the longest-lived fence and never drops below minStateTTL.
// A fence without expiration keeps the state alive for minStateTTL after the
// latest write, which every location report refreshes.
func stateTTL(state *ownerState, now time.Time) time.Duration {
	ttl := minStateTTL
	for _, fence := range state.Fences {
		if fence.ExpiresAt.IsZero() {
			continue
		}
		if remaining := fence.ExpiresAt.Sub(now); remaining > ttl {
			ttl = remaining
		}
	}

	return ttl
}
