package txstore

import (
	"context"
	"errors"
	"maps"
	"sync"

	"github.com/gabapcia/safedesk/internal/pkg/logger"
)

// Service holds the in-memory transaction state of every loaded Safe.
type Service interface {
	// Start loads the last saved snapshot. A missing snapshot starts from an
	// empty state.
	Start(ctx context.Context) error

	// ReplaceAll replaces the whole state with groups.
	ReplaceAll(ctx context.Context, groups Groups) error

	// MergeOne merges tx into the safeAddress group. It reports whether a
	// record with the same nonce was found. A missing group or nonce is not an
	// error.
	MergeOne(ctx context.Context, safeAddress string, tx Transaction) (bool, error)

	// Transactions returns a copy of the list of a Safe, or nil when it is
	// unknown.
	Transactions(safeAddress string) []Transaction

	// Groups returns a copy of the whole state.
	Groups() Groups
}

// service applies every change under a single writer lock and commits it in
// memory only after it has been persisted.
type service struct {
	mu      sync.RWMutex
	state   Groups
	storage SnapshotStorage
}

var _ Service = (*service)(nil)

// New creates a transaction store persisting its state through storage.
func New(storage SnapshotStorage) *service {
	return &service{
		state:   Groups{},
		storage: storage,
	}
}

func (s *service) Start(ctx context.Context) error {
	groups, err := s.storage.LoadGroups(ctx)
	if errors.Is(err, ErrNoSnapshot) {
		logger.Info(ctx, "no transaction snapshot found, starting empty")
		return nil
	}
	if err != nil {
		return err
	}

	if groups == nil {
		groups = Groups{}
	}

	s.mu.Lock()
	s.state = groups
	s.mu.Unlock()

	logger.Info(ctx, "transaction snapshot loaded", "safes", len(groups))
	return nil
}

func (s *service) ReplaceAll(ctx context.Context, groups Groups) error {
	if groups == nil {
		groups = Groups{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := Reduce(s.state, AddTransactions{Groups: groups})
	if err := s.storage.SaveGroups(ctx, next); err != nil {
		return err
	}

	s.state = next
	logger.Debug(ctx, "transactions replaced", "safes", len(next))
	return nil
}

func (s *service) MergeOne(ctx context.Context, safeAddress string, tx Transaction) (bool, error) {
	ctx = logger.Derive(ctx, "safe", safeAddress)

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.state[safeAddress]; !ok {
		logger.Debug(ctx, "transaction update ignored, safe not loaded")
		return false, nil
	}

	next, merged := mergeOne(s.state, safeAddress, tx)
	if !merged {
		logger.Debug(ctx, "transaction update ignored, nonce not found", "nonce", tx[NonceField])
		return false, nil
	}

	if err := s.storage.SaveGroup(ctx, safeAddress, next[safeAddress]); err != nil {
		return false, err
	}

	s.state = next
	logger.Debug(ctx, "transaction merged", "nonce", tx[NonceField])
	return true, nil
}

func (s *service) Transactions(safeAddress string) []Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return cloneList(s.state[safeAddress])
}

func (s *service) Groups() Groups {
	s.mu.RLock()
	defer s.mu.RUnlock()

	groups := make(Groups, len(s.state))
	for address, list := range s.state {
		groups[address] = cloneList(list)
	}
	return groups
}

// cloneList copies list and its records so callers cannot reach the state.
func cloneList(list []Transaction) []Transaction {
	if list == nil {
		return nil
	}

	cloned := make([]Transaction, len(list))
	for i, tx := range list {
		cloned[i] = maps.Clone(tx)
	}
	return cloned
}
