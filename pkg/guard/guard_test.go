package guard

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocal_Acquire(t *testing.T) {
	g := NewLocal()
	ctx := context.Background()

	release, err := g.Acquire(ctx, "roi")
	require.NoError(t, err)

	_, err = g.Acquire(ctx, "roi")
	assert.ErrorIs(t, err, ErrBusy)

	other, err := g.Acquire(ctx, "levels")
	require.NoError(t, err)
	other()

	release()
	release()

	again, err := g.Acquire(ctx, "roi")
	require.NoError(t, err)
	again()
}

func TestLocal_OnlyOneWinner(t *testing.T) {
	g := NewLocal()
	var wins atomic.Int32
	var wg sync.WaitGroup
	start := make(chan struct{})

	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			if _, err := g.Acquire(context.Background(), "roi"); err == nil {
				wins.Add(1)
			}
		}()
	}
	close(start)
	wg.Wait()

	assert.Equal(t, int32(1), wins.Load())
}

func TestRedis_Defaults(t *testing.T) {
	r := NewRedis(nil, " app: ", 0)
	assert.Equal(t, "app", r.prefix)
	assert.Equal(t, time.Hour, r.ttl)

	r = NewRedis(nil, "", time.Minute)
	assert.Equal(t, "stakeledger:batch", r.prefix)
}

func TestRedis_AcquireUnreachable(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()

	_, err := NewRedis(client, "test", time.Second).Acquire(context.Background(), "roi")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrBusy)
}
