package txstore

import (
	"context"
	"errors"
)

// ErrNoSnapshot is returned by SnapshotStorage.LoadGroups when nothing has
// been saved yet.
var ErrNoSnapshot = errors.New("no transaction snapshot found")

// SnapshotStorage persists the transaction groups so a restarted process can
// resume from the last known state.
type SnapshotStorage interface {
	// LoadGroups returns the last saved state, or ErrNoSnapshot.
	LoadGroups(ctx context.Context) (Groups, error)

	// SaveGroups replaces the whole saved state with groups.
	SaveGroups(ctx context.Context, groups Groups) error

	// SaveGroup replaces the saved list of a single Safe.
	SaveGroup(ctx context.Context, safeAddress string, txs []Transaction) error
}
