package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Client wraps redis.Client and degrades to a no-op when Redis is missing or
// unreachable. Callers treat every failure as a cache miss.
type Client struct {
	client *redis.Client
}

// New creates a new Redis client.
func New(addr, password string, db int) *Client {
	return &Client{client: redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})}
}

func (c *Client) disabled() bool {
	return c == nil || c.client == nil
}

// Get returns the value for key, or nil on a miss or Redis failure.
func (c *Client) Get(ctx context.Context, key string) ([]byte, error) {
	if c.disabled() {
		return nil, nil
	}
	res, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		// redis.Nil and connectivity errors both read as a miss
		return nil, nil
	}
	return res, nil
}

// Set stores value with a TTL, ignoring Redis failures.
func (c *Client) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if c.disabled() {
		return nil
	}
	_ = c.client.Set(ctx, key, value, ttl).Err()
	return nil
}

// Delete removes a key, ignoring Redis failures.
func (c *Client) Delete(ctx context.Context, key string) error {
	if c.disabled() {
		return nil
	}
	_ = c.client.Del(ctx, key).Err()
	return nil
}

// Exists reports whether key is present. Failures read as absent.
func (c *Client) Exists(ctx context.Context, key string) (bool, error) {
	if c.disabled() {
		return false, nil
	}
	n, err := c.client.Exists(ctx, key).Result()
	if err != nil {
		return false, nil
	}
	return n > 0, nil
}
