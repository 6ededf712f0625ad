package config

import (
	"context"
	"log/slog"
	"os"

	"github.com/redis/go-redis/v9"
)

var RDB *redis.Client
var Ctx = context.Background()

// ConnectRedis wires the optional identity cache. Redis is a nice-to-have:
// when REDIS_ADDR is unset or the server is unreachable the client stays nil
// and the auth middleware falls back to the database on every request.
func ConnectRedis() {
	redisAddr := os.Getenv("REDIS_ADDR")
	if redisAddr == "" {
		slog.Warn("REDIS_ADDR is not set, identity caching disabled")
		return
	}

	RDB = redis.NewClient(&redis.Options{
		Addr: redisAddr,
	})

	if _, err := RDB.Ping(Ctx).Result(); err != nil {
		slog.Error("failed to connect to Redis, identity caching disabled", "error", err)
		RDB = nil
		return
	}

	slog.Info("connected to Redis")
}
