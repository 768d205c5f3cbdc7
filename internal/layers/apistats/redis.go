package apistats

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisConfig holds Redis sink configuration
type RedisConfig struct {
	// Addr is the Redis server address (host:port)
	Addr string
	// Password is the Redis password (optional)
	Password string
	// DB is the Redis database number
	DB int
	// Prefix is prepended to every key the sink writes
	Prefix string
}

// DefaultRedisConfig returns a default Redis configuration
func DefaultRedisConfig() RedisConfig {
	return RedisConfig{
		Addr:   "localhost:6379",
		Prefix: "cldispatch:stats:",
	}
}

// RedisSink keeps two hashes per implementation, calls and duration_ns,
// each keyed by entry point name.
type RedisSink struct {
	client *redis.Client
	prefix string
}

// NewRedisSink connects to Redis and verifies the connection.
func NewRedisSink(config RedisConfig) (*RedisSink, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     config.Addr,
		Password: config.Password,
		DB:       config.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return NewRedisSinkWithClient(client, config.Prefix), nil
}

// NewRedisSinkWithClient creates a sink over an existing client
func NewRedisSinkWithClient(client *redis.Client, prefix string) *RedisSink {
	return &RedisSink{client: client, prefix: prefix}
}

func (r *RedisSink) callsKey(impl string) string    { return r.prefix + impl + ":calls" }
func (r *RedisSink) durationKey(impl string) string { return r.prefix + impl + ":duration_ns" }
func (r *RedisSink) indexKey() string               { return r.prefix + "implementations" }

// Write implements Sink.
func (r *RedisSink) Write(ctx context.Context, stats []Stat) error {
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, st := range stats {
			pipe.SAdd(ctx, r.indexKey(), st.Implementation)
			pipe.HSet(ctx, r.callsKey(st.Implementation), st.EntryPoint, st.Calls)
			pipe.HSet(ctx, r.durationKey(st.Implementation), st.EntryPoint, int64(st.Duration))
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to write stats to redis: %w", err)
	}
	return nil
}

// Read returns everything stored under the sink's prefix in snapshot order.
func (r *RedisSink) Read(ctx context.Context) ([]Stat, error) {
	impls, err := r.client.SMembers(ctx, r.indexKey()).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	sort.Strings(impls)

	var stats []Stat
	for _, impl := range impls {
		calls, err := r.client.HGetAll(ctx, r.callsKey(impl)).Result()
		if err != nil {
			return nil, err
		}
		durations, err := r.client.HGetAll(ctx, r.durationKey(impl)).Result()
		if err != nil {
			return nil, err
		}

		eps := make([]string, 0, len(calls))
		for ep := range calls {
			eps = append(eps, ep)
		}
		sort.Strings(eps)

		for _, ep := range eps {
			n, err := strconv.ParseUint(calls[ep], 10, 64)
			if err != nil {
				return nil, fmt.Errorf("bad call count for %s/%s: %w", impl, ep, err)
			}
			ns, err := strconv.ParseInt(strings.TrimSpace(durations[ep]), 10, 64)
			if err != nil {
				return nil, fmt.Errorf("bad duration for %s/%s: %w", impl, ep, err)
			}
			stats = append(stats, Stat{
				Implementation: impl,
				EntryPoint:     ep,
				Calls:          n,
				Duration:       time.Duration(ns),
			})
		}
	}
	return stats, nil
}

// Close closes the Redis connection
func (r *RedisSink) Close() error {
	return r.client.Close()
}
