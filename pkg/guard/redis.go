package guard

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
  return redis.call("DEL", KEYS[1])
end
return 0
`)

// Redis shares the guard between instances. The TTL bounds how long a crashed holder blocks the job.
type Redis struct {
	client redis.UniversalClient
	prefix string
	ttl    time.Duration
}

func NewRedis(client redis.UniversalClient, prefix string, ttl time.Duration) *Redis {
	prefix = strings.TrimSuffix(strings.TrimSpace(prefix), ":")
	if prefix == "" {
		prefix = "stakeledger:batch"
	}
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &Redis{client: client, prefix: prefix, ttl: ttl}
}

func (r *Redis) Acquire(ctx context.Context, key string) (Release, error) {
	fullKey := r.prefix + ":" + key
	token := uuid.NewString()

	ok, err := r.client.SetNX(ctx, fullKey, token, r.ttl).Result()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrBusy
	}

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := releaseScript.Run(ctx, r.client, []string{fullKey}, token).Err(); err != nil {
			zap.L().Error("failed to release batch guard", zap.String("key", fullKey), zap.Error(err))
		}
	}, nil
}
