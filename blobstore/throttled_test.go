package blobstore

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func TestThrottledStoreDelegates(t *testing.T) {
	ctx := context.Background()
	store := Throttled(NewMemoryStore(), rate.NewLimiter(rate.Inf, 1))

	require.NoError(t, store.Put(ctx, "blob", []byte("payload")))

	rc, err := store.Open(ctx, "blob")
	require.NoError(t, err)
	rc.Close()

	names, err := store.List(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"blob"}, names)

	_, err = store.Open(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestThrottledStoreHonorsContext(t *testing.T) {
	// One token per minute: the second operation must block, so a
	// canceled context surfaces instead of a hang.
	limiter := rate.NewLimiter(rate.Every(time.Minute), 1)
	store := Throttled(NewMemoryStore(), limiter)

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, store.Put(ctx, "blob", nil))

	cancel()
	_, err := store.Open(ctx, "blob")
	assert.Error(t, err)
}
