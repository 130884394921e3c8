package redis_test

import (
	"context"
	"testing"
	"time"

	"upi-guard/internal/adapter/storage/redis"
	"upi-guard/internal/core/domain"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) (*redis.PayeeCache, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return redis.NewPayeeCache(client), mr
}

func TestPayeeCache_SetGet(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()

	payee := &domain.Payee{
		ID:           uuid.New(),
		BusinessName: "Corner Grocery",
		AgeDays:      560,
		UPIID:        "grocery@upi",
		Active:       true,
	}

	require.NoError(t, cache.Set(ctx, payee))

	got, err := cache.Get(ctx, "grocery@upi")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, payee.ID, got.ID)
	assert.Equal(t, payee.AgeDays, got.AgeDays)
	assert.Equal(t, payee.UPIID, got.UPIID)
}

func TestPayeeCache_Miss(t *testing.T) {
	cache, _ := newTestCache(t)

	got, err := cache.Get(context.Background(), "ghost@upi")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestPayeeCache_Expiry(t *testing.T) {
	cache, mr := newTestCache(t)
	ctx := context.Background()

	payee := &domain.Payee{ID: uuid.New(), UPIID: "grocery@upi", Active: true}
	require.NoError(t, cache.Set(ctx, payee))

	mr.FastForward(11 * time.Minute)

	got, err := cache.Get(ctx, "grocery@upi")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestPayeeCache_CorruptedEntry(t *testing.T) {
	cache, mr := newTestCache(t)

	require.NoError(t, mr.Set("payee:bad@upi", "{not json"))

	got, err := cache.Get(context.Background(), "bad@upi")
	assert.Error(t, err)
	assert.Nil(t, got)
}
