package client

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKey_CanonicalAcrossTypes(t *testing.T) {
	assert.Equal(t, Key("workspace-folders", "ws_abc"), Key("workspace-folders", "ws_abc"))
	assert.NotEqual(t, Key("workspace-folders", "ws_abc"), Key("workspace-folders", "ws_def"))
	assert.Equal(t, Key("user", 42), Key("user", 42))
}

func TestGet_MissBlocksOnFetch(t *testing.T) {
	qc := NewQueryCache(time.Minute)

	value, err := qc.Get(context.Background(), "k", func(ctx context.Context) (any, error) {
		return "v1", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "v1", value)

	state := qc.State("k")
	assert.True(t, state.IsFetched)
	assert.False(t, state.IsPending)
	assert.False(t, state.IsFetching)
}

func TestGet_FreshHitSkipsFetch(t *testing.T) {
	qc := NewQueryCache(time.Minute)
	var calls int32
	fetch := func(ctx context.Context) (any, error) {
		atomic.AddInt32(&calls, 1)
		return "v1", nil
	}

	_, err := qc.Get(context.Background(), "k", fetch)
	require.NoError(t, err)
	_, err = qc.Get(context.Background(), "k", fetch)
	require.NoError(t, err)

	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestGet_StaleHitReturnsCachedAndRevalidates(t *testing.T) {
	qc := NewQueryCache(time.Minute)
	now := time.Now()
	qc.now = func() time.Time { return now }

	refreshed := make(chan struct{})
	var calls int32
	fetch := func(ctx context.Context) (any, error) {
		n := atomic.AddInt32(&calls, 1)
		if n == 2 {
			defer close(refreshed)
			return "v2", nil
		}
		return "v1", nil
	}

	_, err := qc.Get(context.Background(), "k", fetch)
	require.NoError(t, err)

	// Move past the freshness window; the stale value comes back
	// immediately while the refresh runs in the background.
	now = now.Add(2 * time.Minute)
	value, err := qc.Get(context.Background(), "k", fetch)
	require.NoError(t, err)
	assert.Equal(t, "v1", value)

	select {
	case <-refreshed:
	case <-time.After(2 * time.Second):
		t.Fatal("background revalidation never ran")
	}

	require.Eventually(t, func() bool {
		value, err := qc.Get(context.Background(), "k", fetch)
		return err == nil && value == "v2"
	}, 2*time.Second, 10*time.Millisecond)
}

func TestGet_ConcurrentMissesShareOneFetch(t *testing.T) {
	qc := NewQueryCache(time.Minute)
	var calls int32
	gate := make(chan struct{})
	fetch := func(ctx context.Context) (any, error) {
		atomic.AddInt32(&calls, 1)
		<-gate
		return "v1", nil
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			value, err := qc.Get(context.Background(), "k", fetch)
			assert.NoError(t, err)
			assert.Equal(t, "v1", value)
		}()
	}

	// Give the goroutines a moment to pile onto the same key.
	time.Sleep(50 * time.Millisecond)
	close(gate)
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestRefetch_BypassesFreshness(t *testing.T) {
	qc := NewQueryCache(time.Minute)
	var calls int32
	fetch := func(ctx context.Context) (any, error) {
		return atomic.AddInt32(&calls, 1), nil
	}

	first, err := qc.Get(context.Background(), "k", fetch)
	require.NoError(t, err)
	second, err := qc.Refetch(context.Background(), "k", fetch)
	require.NoError(t, err)

	assert.Equal(t, int32(1), first)
	assert.Equal(t, int32(2), second)
}

func TestInvalidate_ForcesFullFetch(t *testing.T) {
	qc := NewQueryCache(time.Minute)
	var calls int32
	fetch := func(ctx context.Context) (any, error) {
		return atomic.AddInt32(&calls, 1), nil
	}

	_, err := qc.Get(context.Background(), "k", fetch)
	require.NoError(t, err)

	qc.Invalidate("k")
	assert.True(t, qc.State("k").IsPending)

	value, err := qc.Get(context.Background(), "k", fetch)
	require.NoError(t, err)
	assert.Equal(t, int32(2), value)
}

func TestGet_FailedRefreshKeepsCachedValue(t *testing.T) {
	qc := NewQueryCache(time.Minute)
	now := time.Now()
	qc.now = func() time.Time { return now }

	_, err := qc.Get(context.Background(), "k", func(ctx context.Context) (any, error) {
		return "v1", nil
	})
	require.NoError(t, err)

	now = now.Add(2 * time.Minute)
	value, err := qc.Refetch(context.Background(), "k", func(ctx context.Context) (any, error) {
		return nil, errors.New("upstream down")
	})
	require.Error(t, err)
	assert.Equal(t, "v1", value)

	// The stale value remains readable after the failed refresh.
	value, err = qc.Get(context.Background(), "k", func(ctx context.Context) (any, error) {
		return nil, errors.New("upstream down")
	})
	require.NoError(t, err)
	assert.Equal(t, "v1", value)
}

func TestState_UnknownKeyIsPending(t *testing.T) {
	qc := NewQueryCache(time.Minute)

	state := qc.State("nope")
	assert.True(t, state.IsPending)
	assert.False(t, state.IsFetched)
	assert.False(t, state.IsFetching)
}
