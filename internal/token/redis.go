package token

import (
    "context"
    "time"

    redis "github.com/redis/go-redis/v9"
)

const redisKey = "pikndel:token"

// Redis shares the cached token across replicas via a single key.
type Redis struct {
    rdb *redis.Client
}

func NewRedis(url string) (*Redis, error) {
    opt, err := redis.ParseURL(url)
    if err != nil { return nil, err }
    return &Redis{rdb: redis.NewClient(opt)}, nil
}

func (r *Redis) Get(ctx context.Context) string {
    ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
    defer cancel()
    v, err := r.rdb.Get(ctx, redisKey).Result()
    if err != nil { return "" }
    return v
}

func (r *Redis) Set(ctx context.Context, token string) {
    ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
    defer cancel()
    _ = r.rdb.Set(ctx, redisKey, token, 0).Err()
}

func (r *Redis) Clear(ctx context.Context) {
    ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
    defer cancel()
    _ = r.rdb.Del(ctx, redisKey).Err()
}
