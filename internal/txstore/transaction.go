// Package txstore keeps the transaction lists of every loaded Safe, grouped by
// Safe address, and merges incremental updates into them by nonce.
//
// The merge rules are pure functions over immutable Groups values. Service
// adds a single writer on top of them and persists every change through a
// SnapshotStorage.
package txstore

import (
	"encoding/json"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/gabapcia/safedesk/internal/pkg/types"
)

// NonceField is the record field used as merge identity.
const NonceField = "nonce"

// Transaction is an opaque transaction record. Only its nonce is interpreted.
type Transaction map[string]any

// Groups maps a Safe address to its ordered list of transactions.
type Groups map[string][]Transaction

// Nonce returns the normalized nonce of tx. Integers, integral floats (as
// produced by encoding/json), json.Number, decimal strings and 0x-prefixed hex
// strings are accepted; anything else, including negative values, reports
// false.
func (tx Transaction) Nonce() (uint64, bool) {
	if tx == nil {
		return 0, false
	}

	return normalizeNonce(tx[NonceField])
}

func normalizeNonce(v any) (uint64, bool) {
	switch n := v.(type) {
	case int:
		return signed(int64(n))
	case int8:
		return signed(int64(n))
	case int16:
		return signed(int64(n))
	case int32:
		return signed(int64(n))
	case int64:
		return signed(n)
	case uint:
		return uint64(n), true
	case uint8:
		return uint64(n), true
	case uint16:
		return uint64(n), true
	case uint32:
		return uint64(n), true
	case uint64:
		return n, true
	case float32:
		return integral(float64(n))
	case float64:
		return integral(n)
	case json.Number:
		return parseNonce(string(n))
	case types.Hex:
		return parseNonce(string(n))
	case string:
		return parseNonce(n)
	default:
		return 0, false
	}
}

func signed(n int64) (uint64, bool) {
	if n < 0 {
		return 0, false
	}
	return uint64(n), true
}

func integral(f float64) (uint64, bool) {
	if f < 0 || f != math.Trunc(f) || f >= math.MaxUint64 {
		return 0, false
	}
	return uint64(f), true
}

func parseNonce(s string) (uint64, bool) {
	s = strings.TrimSpace(s)
	if types.IsHex(s) {
		h, err := types.HexFromString(s)
		if err != nil {
			return 0, false
		}
		return h.Uint64(), true
	}

	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// sameNonce reports whether both records carry the same nonce. Nonces that
// normalize to an integer are compared by value, any other identifier is
// compared as is when both values are comparable.
func sameNonce(a, b Transaction) bool {
	va, ok := a[NonceField]
	if !ok {
		return false
	}

	vb, ok := b[NonceField]
	if !ok {
		return false
	}

	na, okA := normalizeNonce(va)
	nb, okB := normalizeNonce(vb)
	if okA && okB {
		return na == nb
	}

	return isComparable(va) && isComparable(vb) && va == vb
}

// isComparable reports whether v can be used with == without panicking.
// Structs and arrays are refused since their fields may hold maps or slices.
func isComparable(v any) bool {
	if v == nil {
		return true
	}

	t := reflect.TypeOf(v)
	switch t.Kind() {
	case reflect.Struct, reflect.Array:
		return false
	default:
		return t.Comparable()
	}
}
