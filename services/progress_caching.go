package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"main/model"
	"time"

	"github.com/redis/go-redis/v9"
)

// ProgressCache keeps computed progress snapshots in Redis for a short TTL
// and hands out the daily-reset run lock. Every method tolerates a missing
// or unreachable Redis: callers just recompute.
type ProgressCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewProgressCache(redisURL string, ttl time.Duration) (*ProgressCache, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %v", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %v", err)
	}

	return &ProgressCache{client: client, ttl: ttl}, nil
}

func progressKey(userID string) string {
	return "progress:" + userID
}

// Get returns a cached snapshot, or false on miss or cache trouble
func (c *ProgressCache) Get(ctx context.Context, userID string) (*model.ProgressSnapshot, bool) {
	if c == nil {
		return nil, false
	}
	data, err := c.client.Get(ctx, progressKey(userID)).Bytes()
	if err != nil {
		return nil, false
	}
	var snapshot model.ProgressSnapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, false
	}
	return &snapshot, true
}

// Set stores a snapshot under the cache TTL
func (c *ProgressCache) Set(ctx context.Context, userID string, snapshot *model.ProgressSnapshot) {
	if c == nil {
		return
	}
	data, err := json.Marshal(snapshot)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, progressKey(userID), data, c.ttl).Err(); err != nil {
		log.Printf("Failed to cache progress for user %s: %v", userID, err)
	}
}

// Invalidate drops a user's snapshot after any entity mutation
func (c *ProgressCache) Invalidate(ctx context.Context, userID string) {
	if c == nil {
		return
	}
	if err := c.client.Del(ctx, progressKey(userID)).Err(); err != nil {
		log.Printf("Failed to invalidate progress cache for user %s: %v", userID, err)
	}
}

// AcquireResetLock claims the daily-reset run for one instance. The key is
// scoped to the reset date so the next day's run starts fresh; with no
// Redis configured the lock is granted so a single instance still resets.
func (c *ProgressCache) AcquireResetLock(ctx context.Context, date string) bool {
	if c == nil {
		return true
	}
	ok, err := c.client.SetNX(ctx, "daily_reset:"+date, time.Now().UTC().Format(time.RFC3339), 23*time.Hour).Result()
	if err != nil {
		log.Printf("Failed to acquire reset lock: %v", err)
		return true
	}
	return ok
}
