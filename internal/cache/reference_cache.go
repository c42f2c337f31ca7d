package cache

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"travelapp/internal/domain/models"

	"github.com/redis/go-redis/v9"
)

const (
	referenceKeyPrefix  = "travel:reference:v1:"
	referenceVersionKey = "travel:reference:version"
)

// snapshotKey names the snapshot written under one generation. Invalidate
// moves readers to a new generation, so a loader that read the database
// before a write can only populate a key nobody reads anymore.
func snapshotKey(version int64) string {
	return referenceKeyPrefix + strconv.FormatInt(version, 10)
}

// ReferenceSnapshot is the loader output kept between searches.
type ReferenceSnapshot struct {
	Destinations []models.Destination `json:"destinations"`
	Segments     []models.Segment     `json:"segments"`
}

// ReferenceCache stores the destination/segment snapshot in redis.
type ReferenceCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewReferenceCache connects to redisURL. An empty url disables caching and
// returns nil without error.
func NewReferenceCache(ctx context.Context, redisURL string, ttl time.Duration) (*ReferenceCache, error) {
	if redisURL == "" || ttl <= 0 {
		return nil, nil
	}
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}
	opt.PoolSize = 10
	opt.MinIdleConns = 2

	client := redis.NewClient(opt)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	return &ReferenceCache{client: client, ttl: ttl}, nil
}

// Version returns the current snapshot generation. ok is false when redis
// cannot answer, in which case the caller should neither read nor write.
func (c *ReferenceCache) Version(ctx context.Context) (int64, bool) {
	if c == nil {
		return 0, false
	}
	v, err := c.client.Get(ctx, referenceVersionKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, true
	}
	if err != nil {
		return 0, false
	}
	return v, true
}

// Get returns the snapshot stored for version. Any redis or decode error is
// a miss.
func (c *ReferenceCache) Get(ctx context.Context, version int64) (ReferenceSnapshot, bool) {
	var snap ReferenceSnapshot
	if c == nil {
		return snap, false
	}
	val, err := c.client.Get(ctx, snapshotKey(version)).Bytes()
	if err != nil {
		return snap, false
	}
	return snap, json.Unmarshal(val, &snap) == nil
}

func (c *ReferenceCache) Set(ctx context.Context, version int64, snap ReferenceSnapshot) {
	if c == nil {
		return
	}
	data, err := json.Marshal(snap)
	if err != nil {
		return
	}
	c.client.Set(ctx, snapshotKey(version), data, c.ttl)
}

// Invalidate starts a new generation after a reference-data write. The old
// snapshot is left to expire with its ttl.
func (c *ReferenceCache) Invalidate(ctx context.Context) {
	if c == nil {
		return
	}
	c.client.Incr(ctx, referenceVersionKey)
}

func (c *ReferenceCache) Close() error {
	if c == nil {
		return nil
	}
	return c.client.Close()
}
