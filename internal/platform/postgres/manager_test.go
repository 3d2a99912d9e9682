package postgres

import (
	"context"
	"database/sql"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_EnsureConnectsOnce(t *testing.T) {
	t.Parallel()

	var attempts atomic.Int32
	db := &sql.DB{}
	manager := NewManagerWithOpener(func(ctx context.Context) (*sql.DB, error) {
		attempts.Add(1)
		return db, nil
	})

	got, err := manager.Ensure(context.Background())
	require.NoError(t, err)
	assert.Same(t, db, got)
	assert.Equal(t, StateConnected, manager.State())

	// An established handle is never re-dialed.
	got, err = manager.Ensure(context.Background())
	require.NoError(t, err)
	assert.Same(t, db, got)
	assert.Equal(t, int32(1), attempts.Load())
}

func TestManager_ConcurrentEnsureSharesOneAttempt(t *testing.T) {
	t.Parallel()

	const callers = 20

	var attempts atomic.Int32
	release := make(chan struct{})
	db := &sql.DB{}
	manager := NewManagerWithOpener(func(ctx context.Context) (*sql.DB, error) {
		attempts.Add(1)
		<-release
		return db, nil
	})

	var wg sync.WaitGroup
	errs := make([]error, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = manager.Ensure(context.Background())
		}(i)
	}

	// Let every goroutine either start the attempt or queue on it, then
	// let the single dial complete.
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	for i, err := range errs {
		require.NoError(t, err, "caller %d", i)
	}
	assert.Equal(t, int32(1), attempts.Load(), "all callers share one attempt")
	assert.Equal(t, StateConnected, manager.State())
}

func TestManager_FailedAttemptAllowsRetry(t *testing.T) {
	t.Parallel()

	dialErr := errors.New("connection refused")
	var attempts atomic.Int32
	db := &sql.DB{}
	manager := NewManagerWithOpener(func(ctx context.Context) (*sql.DB, error) {
		if attempts.Add(1) == 1 {
			return nil, dialErr
		}
		return db, nil
	})

	_, err := manager.Ensure(context.Background())
	assert.ErrorIs(t, err, dialErr)
	assert.Equal(t, StateDisconnected, manager.State())

	got, err := manager.Ensure(context.Background())
	require.NoError(t, err)
	assert.Same(t, db, got)
	assert.Equal(t, int32(2), attempts.Load())
}

func TestManager_WaiterHonorsContext(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	manager := NewManagerWithOpener(func(ctx context.Context) (*sql.DB, error) {
		<-release
		return &sql.DB{}, nil
	})

	started := make(chan struct{})
	go func() {
		close(started)
		_, _ = manager.Ensure(context.Background())
	}()
	<-started

	// Wait until the first caller has moved the manager into connecting.
	require.Eventually(t, func() bool {
		return manager.State() == StateConnecting
	}, time.Second, time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := manager.Ensure(ctx)
	assert.ErrorIs(t, err, context.Canceled, "a waiter abandons rather than blocking forever")

	close(release)
}

func TestManager_DBDoesNotDial(t *testing.T) {
	t.Parallel()

	var attempts atomic.Int32
	manager := NewManagerWithOpener(func(ctx context.Context) (*sql.DB, error) {
		attempts.Add(1)
		return &sql.DB{}, nil
	})

	_, err := manager.DB()
	assert.ErrorIs(t, err, ErrNotConnected)
	assert.Equal(t, int32(0), attempts.Load())
}
