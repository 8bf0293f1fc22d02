package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cachedScale struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

func newTestManager(t *testing.T) (*CacheManager, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewCacheManager(client), mr
}

func TestCacheHelper_SetGet(t *testing.T) {
	cm, mr := newTestManager(t)
	ctx := context.Background()

	require.NoError(t, cm.Scale.Set(ctx, "all", []cachedScale{{ID: 1, Name: "Anxiety"}}, time.Minute))
	assert.True(t, mr.Exists("scale:all"))

	var got []cachedScale
	require.NoError(t, cm.Scale.Get(ctx, "all", &got))
	assert.Equal(t, []cachedScale{{ID: 1, Name: "Anxiety"}}, got)

	err := cm.Scale.Get(ctx, "missing", &got)
	assert.ErrorIs(t, err, ErrCacheNotFound)
}

func TestCacheHelper_CacheOrExecute(t *testing.T) {
	cm, mr := newTestManager(t)
	ctx := context.Background()

	calls := 0
	fetch := func() (interface{}, error) {
		calls++
		return &cachedScale{ID: 7, Name: "Stress"}, nil
	}

	var first cachedScale
	require.NoError(t, cm.Tool.CacheOrExecute(ctx, "id:7", &first, time.Minute, fetch))
	assert.Equal(t, "Stress", first.Name)
	assert.Equal(t, 1, calls)

	assert.Eventually(t, func() bool { return mr.Exists("tool:id:7") }, time.Second, 10*time.Millisecond)

	var second cachedScale
	require.NoError(t, cm.Tool.CacheOrExecute(ctx, "id:7", &second, time.Minute, fetch))
	assert.Equal(t, first, second)
	assert.Equal(t, 1, calls, "second call must be served from cache")
}

func TestCacheHelper_CacheOrExecuteFetchError(t *testing.T) {
	cm, _ := newTestManager(t)
	boom := errors.New("boom")

	var dest cachedScale
	err := cm.Tool.CacheOrExecute(context.Background(), "id:1", &dest, time.Minute, func() (interface{}, error) {
		return nil, boom
	})
	assert.ErrorIs(t, err, boom)
}

func TestCacheManager_WithoutClient(t *testing.T) {
	cm := NewCacheManager(nil)
	ctx := context.Background()

	assert.False(t, cm.Enabled())
	assert.ErrorIs(t, cm.HealthCheck(ctx), ErrCacheNotAvailable)
	assert.NoError(t, cm.Scale.Set(ctx, "all", 1, time.Minute))

	var dest cachedScale
	require.NoError(t, cm.Scale.CacheOrExecute(ctx, "all", &dest, time.Minute, func() (interface{}, error) {
		return cachedScale{ID: 2, Name: "Mood"}, nil
	}))
	assert.Equal(t, uint(2), dest.ID)
}

func TestCacheManager_HealthCheck(t *testing.T) {
	cm, mr := newTestManager(t)
	assert.NoError(t, cm.HealthCheck(context.Background()))

	mr.Close()
	assert.Error(t, cm.HealthCheck(context.Background()))
}
