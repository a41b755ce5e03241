package geofence

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"testing"
	"time"

	"reminders/internal/domain/entity"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valkey-io/valkey-go"
)

func newTestValkeyClient(t *testing.T, mr *miniredis.Miniredis) valkey.Client {
	t.Helper()

	client, err := valkey.NewClient(valkey.ClientOption{
		InitAddress:  []string{mr.Addr()},
		DisableCache: true,
	})
	require.NoError(t, err)
	t.Cleanup(client.Close)

	return client
}

func newTestValkeyRegistry(t *testing.T) (*valkeyRegistry, *miniredis.Miniredis, valkey.Client) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := newTestValkeyClient(t, mr)

	return NewValkeyRegistry(client, "reminders").(*valkeyRegistry), mr, client
}

func TestValkeyRegistry_InitialTriggerAndRepeat(t *testing.T) {
	ctx := context.Background()
	r, _, _ := newTestValkeyRegistry(t)

	transitions, err := r.UpdateLocation(ctx, "user-1", nearPark)
	require.NoError(t, err)
	assert.Empty(t, transitions)

	transitions, err = r.AddGeofences(ctx, newRequest(newFence("r1", time.Now().Add(24*time.Hour))))
	require.NoError(t, err)
	require.Len(t, transitions, 1)
	assert.Equal(t, []string{"r1"}, transitions[0].RequestIDs)
	assert.Equal(t, entity.TransitionEnter, transitions[0].Transition)

	transitions, err = r.UpdateLocation(ctx, "user-1", parkCenter)
	require.NoError(t, err)
	assert.Empty(t, transitions, "staying inside raises nothing")

	_, err = r.UpdateLocation(ctx, "user-1", farFromPark)
	require.NoError(t, err)
	transitions, err = r.UpdateLocation(ctx, "user-1", nearPark)
	require.NoError(t, err)
	assert.Len(t, transitions, 1, "re-entering raises again")
}

func TestValkeyRegistry_StoredDocument(t *testing.T) {
	ctx := context.Background()
	r, mr, client := newTestValkeyRegistry(t)

	expiresAt := time.Now().Add(48 * time.Hour).Truncate(time.Second)
	_, err := r.AddGeofences(ctx, newRequest(newFence("r1", expiresAt)))
	require.NoError(t, err)
	_, err = r.UpdateLocation(ctx, "user-1", nearPark)
	require.NoError(t, err)

	raw, err := mr.Get("reminders:geofence:user-1")
	require.NoError(t, err)

	var stored ownerState
	require.NoError(t, json.Unmarshal([]byte(raw), &stored))
	require.Contains(t, stored.Fences, "r1")
	assert.True(t, stored.Fences["r1"].ExpiresAt.Equal(expiresAt))
	assert.InDelta(t, 500.0, stored.Fences["r1"].RadiusMeters, 0.0001)
	assert.True(t, stored.Inside["r1"])
	require.NotNil(t, stored.Location)
	assert.Equal(t, nearPark, *stored.Location)

	ttl := mr.TTL("reminders:geofence:user-1")
	assert.Greater(t, ttl, 47*time.Hour)
	assert.LessOrEqual(t, ttl, 48*time.Hour)

	// A second replica reading the same document sees the inside state.
	other := NewValkeyRegistry(client, "reminders")
	transitions, err := other.UpdateLocation(ctx, "user-1", parkCenter)
	require.NoError(t, err)
	assert.Empty(t, transitions)
}

func TestValkeyRegistry_RemoveGeofences(t *testing.T) {
	ctx := context.Background()
	r, _, _ := newTestValkeyRegistry(t)

	_, err := r.AddGeofences(ctx, newRequest(newFence("r1", time.Time{})))
	require.NoError(t, err)
	require.NoError(t, r.RemoveGeofences(ctx, "user-1"))
	require.NoError(t, r.RemoveGeofences(ctx, "nobody"))

	transitions, err := r.UpdateLocation(ctx, "user-1", nearPark)
	require.NoError(t, err)
	assert.Empty(t, transitions)
}

func TestValkeyRegistry_ExpiredFenceIgnored(t *testing.T) {
	ctx := context.Background()
	r, _, _ := newTestValkeyRegistry(t)
	clock := &fakeClock{now: time.Now()}
	r.now = clock.Now

	_, err := r.AddGeofences(ctx, newRequest(newFence("r1", clock.now.Add(24*time.Hour))))
	require.NoError(t, err)

	clock.now = clock.now.Add(25 * time.Hour)

	transitions, err := r.UpdateLocation(ctx, "user-1", nearPark)
	require.NoError(t, err)
	assert.Empty(t, transitions)
}

func TestValkeyRegistry_RetriesAbortedExec(t *testing.T) {
	ctx := context.Background()
	r, _, client := newTestValkeyRegistry(t)
	key := r.key("user-1")

	calls := 0
	err := r.mutate(ctx, "user-1", func(state *ownerState, _ time.Time) {
		calls++
		if calls == 1 {
			// Touch the watched key from another connection so EXEC aborts.
			require.NoError(t, client.Do(ctx, client.B().Set().Key(key).Value(`{"fences":{},"inside":{}}`).Build()).Error())
		}
		state.Fences["r1"] = newFence("r1", time.Time{})
	})
	require.NoError(t, err)
	assert.Equal(t, 2, calls)

	state, err := loadState(ctx, client, key)
	require.NoError(t, err)
	assert.Contains(t, state.Fences, "r1")
}

func TestValkeyRegistry_GivesUpAfterMaxAttempts(t *testing.T) {
	ctx := context.Background()
	r, _, client := newTestValkeyRegistry(t)
	key := r.key("user-1")

	calls := 0
	err := r.mutate(ctx, "user-1", func(_ *ownerState, _ time.Time) {
		calls++
		require.NoError(t, client.Do(ctx, client.B().Set().Key(key).Value(`{}`).Build()).Error())
	})
	require.ErrorIs(t, err, ErrConcurrentUpdate)
	assert.Equal(t, maxTxAttempts, calls)
}

func TestValkeyRegistry_ConcurrentAddsLoseNothing(t *testing.T) {
	ctx := context.Background()
	r, _, client := newTestValkeyRegistry(t)

	const writers = 8

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		committed []string
	)
	for i := range writers {
		wg.Add(1)
		go func() {
			defer wg.Done()

			id := fmt.Sprintf("r%d", i)
			_, err := r.AddGeofences(ctx, newRequest(newFence(id, time.Time{})))
			if err != nil {
				assert.ErrorIs(t, err, ErrConcurrentUpdate)

				return
			}
			mu.Lock()
			committed = append(committed, id)
			mu.Unlock()
		}()
	}
	wg.Wait()

	require.NotEmpty(t, committed)

	state, err := loadState(ctx, client, r.key("user-1"))
	require.NoError(t, err)
	assert.Len(t, state.Fences, len(committed))
	for _, id := range committed {
		assert.Contains(t, state.Fences, id)
	}
}

func TestTxBackoff(t *testing.T) {
	for attempt := 1; attempt < maxTxAttempts; attempt++ {
		d := txBackoffBase << attempt
		for range 20 {
			got := txBackoff(attempt)
			assert.GreaterOrEqual(t, got, d/2)
			assert.Less(t, got, d)
		}
	}
}

func TestStateTTL(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name   string
		fences []*entity.Geofence
		want   time.Duration
	}{
		{name: "no fences", want: minStateTTL},
		{name: "short fence", fences: []*entity.Geofence{newFence("a", now.Add(time.Hour))}, want: minStateTTL},
		{name: "no expiration", fences: []*entity.Geofence{newFence("a", time.Time{})}, want: minStateTTL},
		{
			name: "longest fence wins",
			fences: []*entity.Geofence{
				newFence("a", now.Add(48*time.Hour)),
				newFence("b", now.Add(72*time.Hour)),
			},
			want: 72 * time.Hour,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := newOwnerState()
			for _, fence := range tt.fences {
				state.Fences[fence.RequestID] = fence
			}

			assert.Equal(t, tt.want, stateTTL(state, now))
		})
	}
}

func TestValkeyRegistry_Key(t *testing.T) {
	r := &valkeyRegistry{prefix: "reminders"}

	assert.Equal(t, "reminders:geofence:user-1", r.key("user-1"))
}
