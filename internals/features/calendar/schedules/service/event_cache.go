// file: internals/features/calendar/schedules/service/event_cache.go
package service

import (
	"context"
	"errors"
	"log"
	"strconv"
	"time"

	"github.com/bytedance/sonic"
	"github.com/redis/go-redis/v9"
)

// Invalidator is called after every committed mutation that changes calendar input.
type Invalidator interface {
	Invalidate(ctx context.Context)
}

// EventCache stores the aggregated calendar. Get returns the version it read;
// Set must be given that version so a build that raced an invalidation is
// written under a key nobody reads anymore.
type EventCache interface {
	Invalidator
	Get(ctx context.Context) (events []CalendarEvent, version int64, hit bool)
	Set(ctx context.Context, version int64, events []CalendarEvent)
}

/* =========================
   No-op (Redis disabled)
   ========================= */

type NoopCache struct{}

func (NoopCache) Invalidate(context.Context) {}

func (NoopCache) Get(context.Context) ([]CalendarEvent, int64, bool) { return nil, 0, false }

func (NoopCache) Set(context.Context, int64, []CalendarEvent) {}

/* =========================
   Redis
   ========================= */

const defaultCachePrefix = "mali:calendar"

type RedisCache struct {
	Client *redis.Client
	TTL    time.Duration
	Prefix string
}

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &RedisCache{Client: client, TTL: ttl, Prefix: defaultCachePrefix}
}

// NewEventCache picks Redis when a client is available.
func NewEventCache(client *redis.Client, ttl time.Duration) EventCache {
	if client == nil {
		return NoopCache{}
	}
	return NewRedisCache(client, ttl)
}

func (r *RedisCache) versionKey() string { return r.Prefix + ":version" }

func (r *RedisCache) eventsKey(version int64) string {
	return r.Prefix + ":events:v" + strconv.FormatInt(version, 10)
}

func (r *RedisCache) version(ctx context.Context) (int64, error) {
	v, err := r.Client.Get(ctx, r.versionKey()).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return v, err
}

func (r *RedisCache) Get(ctx context.Context) ([]CalendarEvent, int64, bool) {
	ver, err := r.version(ctx)
	if err != nil {
		log.Printf("[CACHE] read version: %v", err)
		// -1 makes the following Set a no-op
		return nil, -1, false
	}
	raw, err := r.Client.Get(ctx, r.eventsKey(ver)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Printf("[CACHE] read events: %v", err)
		}
		return nil, ver, false
	}
	var events []CalendarEvent
	if err := sonic.Unmarshal(raw, &events); err != nil {
		log.Printf("[CACHE] decode events: %v", err)
		return nil, ver, false
	}
	return events, ver, true
}

func (r *RedisCache) Set(ctx context.Context, version int64, events []CalendarEvent) {
	if version < 0 {
		return
	}
	raw, err := sonic.Marshal(events)
	if err != nil {
		log.Printf("[CACHE] encode events: %v", err)
		return
	}
	if err := r.Client.Set(ctx, r.eventsKey(version), raw, r.TTL).Err(); err != nil {
		log.Printf("[CACHE] write events: %v", err)
	}
}

func (r *RedisCache) Invalidate(ctx context.Context) {
	if err := r.Client.Incr(ctx, r.versionKey()).Err(); err != nil {
		log.Printf("[CACHE] invalidate: %v", err)
	}
}
