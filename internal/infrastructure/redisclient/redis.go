package redisclient

import (
	"strings"

	"github.com/redis/go-redis/v9"
)

// Open returns a Redis client for url, or nil when url is empty.
// The connection is lazy; callers ping when they need to know.
func Open(url string) (*redis.Client, error) {
	url = strings.TrimSpace(url)
	if url == "" {
		return nil, nil
	}
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	return redis.NewClient(opt), nil
}
