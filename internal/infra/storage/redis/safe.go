package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/gabapcia/safedesk/internal/safe"

	"github.com/redis/go-redis/v9"
)

// safeKeyPrefix is the namespace prefix for every key holding loaded Safes.
const safeKeyPrefix = "safe"

// safeInfoKey returns the hash holding one JSON encoded safe.Info per address.
//
// Format: "safe:info"
func safeInfoKey() string {
	return fmt.Sprintf("%s:info", safeKeyPrefix)
}

// safeViewedKey returns the sorted set of Safe addresses scored by the time
// they were last loaded.
//
// Format: "safe:viewed"
func safeViewedKey() string {
	return fmt.Sprintf("%s:viewed", safeKeyPrefix)
}

// now is replaced in tests.
var now = time.Now

// SaveSafe stores info and marks its Safe as the most recently viewed one.
func (c *client) SaveSafe(ctx context.Context, info safe.Info) error {
	data, err := json.Marshal(info)
	if err != nil {
		return err
	}

	_, err = c.conn.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, safeInfoKey(), info.Address, data)
		pipe.ZAdd(ctx, safeViewedKey(), redis.Z{
			Score:  float64(now().UnixMilli()),
			Member: info.Address,
		})
		return nil
	})

	return err
}

// ListSafes returns the stored Safes, most recently viewed first.
func (c *client) ListSafes(ctx context.Context) ([]safe.Info, error) {
	addresses, err := c.conn.ZRevRange(ctx, safeViewedKey(), 0, -1).Result()
	if err != nil {
		return nil, err
	}

	if len(addresses) == 0 {
		return []safe.Info{}, nil
	}

	values, err := c.conn.HMGet(ctx, safeInfoKey(), addresses...).Result()
	if err != nil {
		return nil, err
	}

	safes := make([]safe.Info, 0, len(values))
	for i, v := range values {
		data, ok := v.(string)
		if !ok {
			continue
		}

		var info safe.Info
		if err := json.Unmarshal([]byte(data), &info); err != nil {
			return nil, fmt.Errorf("decode safe %s: %w", addresses[i], err)
		}

		safes = append(safes, info)
	}

	return safes, nil
}

// Compile-time assertion to ensure client implements the SafeStorage interface.
var _ safe.SafeStorage = new(client)
