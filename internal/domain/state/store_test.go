package state

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_SubscribeReceivesCurrentValue(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store := NewStore(3)
	ch := store.Subscribe(ctx)

	assert.Equal(t, 3, <-ch)
}

func TestStore_SlowSubscriberSeesLatest(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store := NewStore(0)
	ch := store.Subscribe(ctx)

	for i := 1; i <= 10; i++ {
		store.Set(i)
	}

	assert.Equal(t, 10, <-ch)
	assert.Equal(t, 10, store.Get())
}

func TestStore_Update(t *testing.T) {
	store := NewStore([]string{})

	got := store.Update(func(v []string) []string {
		return append(v, "a")
	})

	assert.Equal(t, []string{"a"}, got)
	assert.Equal(t, []string{"a"}, store.Get())
}

func TestStore_ChannelClosedOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	store := NewStore("x")
	ch := store.Subscribe(ctx)
	<-ch

	cancel()

	require.Eventually(t, func() bool {
		select {
		case _, ok := <-ch:
			return !ok
		default:
			return false
		}
	}, time.Second, 5*time.Millisecond)

	// Set after unsubscribe must not panic on a closed channel.
	store.Set("y")
}

func TestStore_ConcurrentSet(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store := NewStore(0)
	_ = store.Subscribe(ctx)

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			store.Set(i)
		}()
	}
	wg.Wait()
}

func TestEvents_DropsOldestWhenFull(t *testing.T) {
	events := NewEvents[int]()

	for i := range defaultEventBuffer + 2 {
		events.Emit(i)
	}

	assert.Equal(t, 2, <-events.C())
}
