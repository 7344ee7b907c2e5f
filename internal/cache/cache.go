// Package cache keeps the full doctor listing in Redis so directory searches
// can be answered without a database round-trip.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/harentsoaR/tabibi-api/internal/models"
)

const (
	doctorsKey    = "tabibi:directory:doctors"
	generationKey = "tabibi:directory:generation"
)

var errStale = errors.New("directory changed since generation was read")

type DirectoryCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewDirectoryCache(rdb *redis.Client, ttl time.Duration) *DirectoryCache {
	return &DirectoryCache{rdb: rdb, ttl: ttl}
}

// Connect parses a redis:// URL and checks the server answers.
func Connect(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("redis url: %w", err)
	}
	rdb := redis.NewClient(opts)
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return rdb, nil
}

// Doctors returns the cached listing. ok is false on a miss.
func (c *DirectoryCache) Doctors(ctx context.Context) (doctors []models.User, ok bool, err error) {
	raw, err := c.rdb.Get(ctx, doctorsKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get: %w", err)
	}
	if err := json.Unmarshal(raw, &doctors); err != nil {
		return nil, false, fmt.Errorf("decode cached doctors: %w", err)
	}
	return doctors, true, nil
}

// Generation returns the listing generation. Read it before loading the
// listing from the store and hand it to StoreDoctors.
func (c *DirectoryCache) Generation(ctx context.Context) (int64, error) {
	n, err := c.rdb.Get(ctx, generationKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("redis get generation: %w", err)
	}
	return n, nil
}

// StoreDoctors caches doctors unless Invalidate ran after gen was read, in
// which case doctors may predate the write and nothing is stored. It reports
// whether the listing was written.
func (c *DirectoryCache) StoreDoctors(ctx context.Context, gen int64, doctors []models.User) (bool, error) {
	raw, err := json.Marshal(doctors)
	if err != nil {
		return false, fmt.Errorf("encode doctors: %w", err)
	}

	err = c.rdb.Watch(ctx, func(tx *redis.Tx) error {
		cur, err := tx.Get(ctx, generationKey).Int64()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		if cur != gen {
			return errStale
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, doctorsKey, raw, c.ttl)
			return nil
		})
		return err
	}, generationKey)
	if errors.Is(err, errStale) || errors.Is(err, redis.TxFailedErr) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("redis set: %w", err)
	}
	return true, nil
}

// Invalidate drops the listing and bumps the generation so fills already in
// flight are discarded.
func (c *DirectoryCache) Invalidate(ctx context.Context) error {
	_, err := c.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, generationKey)
		pipe.Del(ctx, doctorsKey)
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis invalidate: %w", err)
	}
	return nil
}
