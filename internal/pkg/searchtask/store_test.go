//go:build unit

package searchtask

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	s := NewMemoryStore(0)
	ctx := context.Background()

	latest, err := s.Latest(ctx, "hotels:a")
	require.NoError(t, err)
	assert.Equal(t, int64(0), latest)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = s.Next(ctx, "hotels:a")
		}()
	}
	wg.Wait()

	latest, err = s.Latest(ctx, "hotels:a")
	require.NoError(t, err)
	assert.Equal(t, int64(50), latest)

	other, err := s.Next(ctx, "trains:a")
	require.NoError(t, err)
	assert.Equal(t, int64(1), other)
}

func TestMemoryStore_ExpiresIdleKeys(t *testing.T) {
	ctx := context.Background()
	clock := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	s := NewMemoryStore(time.Hour)
	s.now = func() time.Time { return clock }

	_, err := s.Next(ctx, "flights:old")
	require.NoError(t, err)
	_, err = s.Next(ctx, "flights:old")
	require.NoError(t, err)

	clock = clock.Add(30 * time.Minute)
	_, err = s.Next(ctx, "flights:fresh")
	require.NoError(t, err)

	clock = clock.Add(45 * time.Minute)

	latest, err := s.Latest(ctx, "flights:old")
	require.NoError(t, err)
	assert.Equal(t, int64(0), latest, "idle key reads as unset")

	latest, err = s.Latest(ctx, "flights:fresh")
	require.NoError(t, err)
	assert.Equal(t, int64(1), latest)

	n, err := s.Next(ctx, "flights:fresh")
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
	assert.Equal(t, 1, s.Len(), "expired key is swept")

	restarted, err := s.Next(ctx, "flights:old")
	require.NoError(t, err)
	assert.Equal(t, int64(1), restarted)
}

func TestMemoryStore_DistinctSessionsStayBounded(t *testing.T) {
	ctx := context.Background()
	clock := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	s := NewMemoryStore(time.Minute)
	s.now = func() time.Time { return clock }
	tracker := NewTracker(s)

	for i := 0; i < 10000; i++ {
		task := tracker.Begin(ctx, SessionKey("flights", fmt.Sprintf("sess-%d", i)))
		task.Finish()
		clock = clock.Add(time.Second)
	}

	assert.LessOrEqual(t, s.Len(), 121)
	assert.Empty(t, tracker.inflight)
}

func TestMemoryStore_ZeroTTLKeepsKeys(t *testing.T) {
	ctx := context.Background()
	clock := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	s := NewMemoryStore(0)
	s.now = func() time.Time { return clock }

	_, err := s.Next(ctx, "trains:a")
	require.NoError(t, err)
	clock = clock.Add(24 * time.Hour)

	latest, err := s.Latest(ctx, "trains:a")
	require.NoError(t, err)
	assert.Equal(t, int64(1), latest)
}

func TestRedisStore_Next_Closure(t *testing.T) {
	nextRequest := func(mockSetup func(m *MockRedisClient), want int64, wantErr bool) func(t *testing.T) {
		return func(t *testing.T) {
			m := NewMockRedisClient(t)
			mockSetup(m)
			s := NewRedisStore(m, time.Hour)

			got, err := s.Next(context.Background(), "flights:sess")
			if wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, want, got)
		}
	}

	t.Run("increments_and_refreshes_ttl", nextRequest(func(m *MockRedisClient) {
		m.On("Incr", mock.Anything, "search:seq:flights:sess").Return(redis.NewIntResult(7, nil))
		m.On("Expire", mock.Anything, "search:seq:flights:sess", time.Hour).Return(redis.NewBoolResult(true, nil))
	}, 7, false))

	t.Run("incr_error", nextRequest(func(m *MockRedisClient) {
		m.On("Incr", mock.Anything, "search:seq:flights:sess").Return(redis.NewIntResult(0, errors.New("connection refused")))
	}, 0, true))
}

func TestRedisStore_Latest_Closure(t *testing.T) {
	latestRequest := func(cmd *redis.StringCmd, want int64, wantErr bool) func(t *testing.T) {
		return func(t *testing.T) {
			m := NewMockRedisClient(t)
			m.On("Get", mock.Anything, "search:seq:trains:sess").Return(cmd)
			s := NewRedisStore(m, time.Hour)

			got, err := s.Latest(context.Background(), "trains:sess")
			if wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, want, got)
		}
	}

	t.Run("existing", latestRequest(redis.NewStringResult("3", nil), 3, false))
	t.Run("missing_key_is_zero", latestRequest(redis.NewStringResult("", redis.Nil), 0, false))
	t.Run("redis_down", latestRequest(redis.NewStringResult("", errors.New("timeout")), 0, true))
}
