package redis

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/gabapcia/safedesk/internal/txstore"

	"github.com/redis/go-redis/v9"
)

// txstoreKeyPrefix is the namespace prefix for every key owned by the transaction store.
const txstoreKeyPrefix = "txstore"

// txstoreGroupsKey returns the hash holding one JSON encoded transaction list
// per Safe address.
//
// Format: "txstore:groups"
func txstoreGroupsKey() string {
	return fmt.Sprintf("%s:groups", txstoreKeyPrefix)
}

// decodeTransactions decodes a stored transaction list. Numbers are kept as
// json.Number so large nonces survive the round trip.
func decodeTransactions(data string) ([]txstore.Transaction, error) {
	dec := json.NewDecoder(bytes.NewBufferString(data))
	dec.UseNumber()

	var txs []txstore.Transaction
	if err := dec.Decode(&txs); err != nil {
		return nil, err
	}

	return txs, nil
}

// LoadGroups returns every stored transaction list, or
// txstore.ErrNoSnapshot when none is stored.
func (c *client) LoadGroups(ctx context.Context) (txstore.Groups, error) {
	fields, err := c.conn.HGetAll(ctx, txstoreGroupsKey()).Result()
	if err != nil {
		return nil, err
	}

	if len(fields) == 0 {
		return nil, txstore.ErrNoSnapshot
	}

	groups := make(txstore.Groups, len(fields))
	for address, data := range fields {
		txs, err := decodeTransactions(data)
		if err != nil {
			return nil, fmt.Errorf("decode transactions of %s: %w", address, err)
		}

		groups[address] = txs
	}

	return groups, nil
}

// SaveGroups atomically replaces every stored transaction list with groups.
func (c *client) SaveGroups(ctx context.Context, groups txstore.Groups) error {
	values := make([]any, 0, len(groups)*2)
	for address, txs := range groups {
		data, err := json.Marshal(txs)
		if err != nil {
			return fmt.Errorf("encode transactions of %s: %w", address, err)
		}

		values = append(values, address, data)
	}

	key := txstoreGroupsKey()
	_, err := c.conn.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, key)
		if len(values) > 0 {
			pipe.HSet(ctx, key, values...)
		}
		return nil
	})

	return err
}

// SaveGroup replaces the stored transaction list of a single Safe.
func (c *client) SaveGroup(ctx context.Context, safeAddress string, txs []txstore.Transaction) error {
	data, err := json.Marshal(txs)
	if err != nil {
		return fmt.Errorf("encode transactions of %s: %w", safeAddress, err)
	}

	return c.conn.HSet(ctx, txstoreGroupsKey(), safeAddress, data).Err()
}

// Compile-time assertion to ensure client implements the SnapshotStorage interface.
var _ txstore.SnapshotStorage = new(client)
