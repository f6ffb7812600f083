package rdx

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

var Conn *redis.Client

// Init connects the package-level redis client. Redis backs the local
// persistence store, the logout token blacklist, and event publishing.
func Init(addr string) error {
	Conn = redis.NewClient(&redis.Options{Addr: addr})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	return Conn.Ping(ctx).Err()
}

func Set(ctx context.Context, key, value string, ttl time.Duration) error {
	return Conn.Set(ctx, key, value, ttl).Err()
}

func Get(ctx context.Context, key string) (string, error) {
	return Conn.Get(ctx, key).Result()
}

func Del(ctx context.Context, key string) error {
	return Conn.Del(ctx, key).Err()
}

func Exists(ctx context.Context, key string) (bool, error) {
	n, err := Conn.Exists(ctx, key).Result()
	return n > 0, err
}
