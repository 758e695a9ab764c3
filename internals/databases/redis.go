package database

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"mali_scheduler_backend/internals/configs"
)

// RDB stays nil when REDIS_ADDR is unset or unreachable; callers fall back to no cache.
var RDB *redis.Client

func ConnectRedis() {
	addr := configs.GetEnv("REDIS_ADDR")
	if addr == "" {
		log.Println("[REDIS] REDIS_ADDR not set, caching disabled")
		return
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: configs.GetEnv("REDIS_PASSWORD"),
		DB:       configs.GetEnvInt("REDIS_DB", 0),
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("[REDIS] ping failed, caching disabled: %v", err)
		_ = client.Close()
		return
	}

	RDB = client
	log.Println("✅ Redis connected.")
}

func CloseRedis() {
	if RDB != nil {
		_ = RDB.Close()
	}
}
