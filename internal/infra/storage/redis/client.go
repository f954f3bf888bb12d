// Package redis implements the storage interfaces of the application on top
// of Redis: transaction snapshots for txstore and loaded Safes for safe.
package redis

import (
	"context"
	"fmt"

	redis "github.com/redis/go-redis/v9"
)

// Options locates and authenticates the Redis server.
type Options struct {
	Addr     string
	Username string
	Password string
	DB       int
}

type client struct {
	conn *redis.Client
}

// Close closes the underlying connection pool.
func (c *client) Close() error {
	return c.conn.Close()
}

// NewClient connects to the server described by opts and checks the
// connection with a PING.
func NewClient(ctx context.Context, opts Options) (*client, error) {
	conn := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Username: opts.Username,
		Password: opts.Password,
		DB:       opts.DB,
	})

	if err := conn.Ping(ctx).Err(); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("ping redis at %s: %w", opts.Addr, err)
	}

	return &client{conn: conn}, nil
}
