package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/tubescope/tubescope-go/pkg/hash"
)

// Cache TTLs: channel samples change slowly, target video snippets may be
// edited by their owner mid-optimization.
const (
	SampleCacheTTL = 15 * time.Minute
	VideoCacheTTL  = 5 * time.Minute
)

// CacheService provides a Redis cache-aside layer for resolved channel
// samples and target-video snippets.
type CacheService struct {
	rdb *redis.Client
}

// NewCacheService creates a new CacheService. If redisURL is empty or connection
// fails, it returns a CacheService with a nil client (cache operations become no-ops).
func NewCacheService(redisURL string) *CacheService {
	if redisURL == "" {
		log.Println("redis: no URL configured, caching disabled")
		return &CacheService{}
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Printf("redis: invalid URL %q, caching disabled: %v", redisURL, err)
		return &CacheService{}
	}

	rdb := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Printf("redis: connection failed, caching disabled: %v", err)
		return &CacheService{}
	}

	log.Println("redis: connected, caching enabled")
	return &CacheService{rdb: rdb}
}

// Client returns the underlying Redis client (for health checks). May be nil.
func (c *CacheService) Client() *redis.Client {
	return c.rdb
}

// GetSample retrieves a cached channel sample by its reference.
// Returns nil if not cached or cache is disabled.
func (c *CacheService) GetSample(ctx context.Context, ref string) ([]byte, error) {
	if c.rdb == nil {
		return nil, nil
	}
	data, err := c.rdb.Get(ctx, sampleKey(ref)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	return data, err
}

// SetSample stores a channel sample under its reference.
func (c *CacheService) SetSample(ctx context.Context, ref string, data interface{}) error {
	if c.rdb == nil {
		return nil
	}
	b, err := json.Marshal(data)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, sampleKey(ref), b, SampleCacheTTL).Err()
}

// InvalidateSample removes a channel sample from cache (called after a
// background refresh replaces the stored sample).
func (c *CacheService) InvalidateSample(ctx context.Context, ref string) error {
	if c.rdb == nil {
		return nil
	}
	return c.rdb.Del(ctx, sampleKey(ref)).Err()
}

// GetVideo retrieves a cached target-video snippet. Returns nil if not cached.
func (c *CacheService) GetVideo(ctx context.Context, videoID string) ([]byte, error) {
	if c.rdb == nil {
		return nil, nil
	}
	data, err := c.rdb.Get(ctx, videoKey(videoID)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	return data, err
}

// SetVideo stores a target-video snippet in cache.
func (c *CacheService) SetVideo(ctx context.Context, videoID string, data interface{}) error {
	if c.rdb == nil {
		return nil
	}
	b, err := json.Marshal(data)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, videoKey(videoID), b, VideoCacheTTL).Err()
}

// Close shuts down the Redis connection.
func (c *CacheService) Close() error {
	if c.rdb == nil {
		return nil
	}
	return c.rdb.Close()
}

// sampleKey hashes the free-form channel reference so arbitrary user input
// never becomes a raw Redis key.
func sampleKey(ref string) string {
	return fmt.Sprintf("sample:%s", hash.ShortHash(ref, 16))
}

func videoKey(videoID string) string {
	return fmt.Sprintf("video:%s", videoID)
}
