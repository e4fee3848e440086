package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyLock_SerializesSameKey(t *testing.T) {
	locks := NewKeyLock()
	ctx := t.Context()

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		inside  int
		maxSeen int
	)

	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()

			unlock, err := locks.Lock(ctx, "user@example.com")
			if !assert.NoError(t, err) {
				return
			}
			defer unlock()

			mu.Lock()
			inside++
			maxSeen = max(maxSeen, inside)
			mu.Unlock()

			time.Sleep(time.Millisecond)

			mu.Lock()
			inside--
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, maxSeen)
	assert.Zero(t, locks.size())
}

func TestKeyLock_DifferentKeysDoNotBlock(t *testing.T) {
	locks := NewKeyLock()
	ctx := t.Context()

	unlockA, err := locks.Lock(ctx, "a")
	require.NoError(t, err)
	defer unlockA()

	timeout, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()

	unlockB, err := locks.Lock(timeout, "b")
	require.NoError(t, err)
	unlockB()
}

func TestKeyLock_ContextDone(t *testing.T) {
	locks := NewKeyLock()

	unlock, err := locks.Lock(t.Context(), "a")
	require.NoError(t, err)

	timeout, cancel := context.WithTimeout(t.Context(), 10*time.Millisecond)
	defer cancel()

	_, err = locks.Lock(timeout, "a")
	require.ErrorIs(t, err, context.DeadlineExceeded)

	unlock()
	// a second call is a no-op
	unlock()

	assert.Zero(t, locks.size())
}
