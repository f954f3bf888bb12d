package txstore

import (
	"maps"
	"slices"
)

// ReplaceAll returns groups as the new state. The input is trusted as-is.
func ReplaceAll(groups Groups) Groups {
	return groups
}

// MergeOne merges tx into the record of the safeAddress group sharing its
// nonce. The matching record is replaced, in place, by its shallow merge with
// tx: fields of tx win, other fields are kept.
//
// When the group does not exist or no record has the same nonce, state is
// returned unchanged. state is never mutated: only the touched group list is
// copied, the other groups are shared with the input.
func MergeOne(state Groups, safeAddress string, tx Transaction) Groups {
	next, _ := mergeOne(state, safeAddress, tx)
	return next
}

// mergeOne is MergeOne also reporting whether a record matched.
func mergeOne(state Groups, safeAddress string, tx Transaction) (Groups, bool) {
	list, ok := state[safeAddress]
	if !ok {
		return state, false
	}

	index := slices.IndexFunc(list, func(existing Transaction) bool {
		return sameNonce(existing, tx)
	})
	if index < 0 {
		return state, false
	}

	merged := make(Transaction, len(list[index])+len(tx))
	maps.Copy(merged, list[index])
	maps.Copy(merged, tx)

	updated := slices.Clone(list)
	updated[index] = merged

	next := maps.Clone(state)
	next[safeAddress] = updated
	return next, true
}

// Action is a state change applied by Reduce.
type Action interface {
	apply(state Groups) Groups
}

// AddTransactions replaces the whole state with Groups.
type AddTransactions struct {
	Groups Groups
}

func (a AddTransactions) apply(Groups) Groups {
	return ReplaceAll(a.Groups)
}

// UpdateTransaction merges Transaction into the SafeAddress group.
type UpdateTransaction struct {
	SafeAddress string
	Transaction Transaction
}

func (a UpdateTransaction) apply(state Groups) Groups {
	return MergeOne(state, a.SafeAddress, a.Transaction)
}

// Reduce applies action to state. A nil action leaves state unchanged.
func Reduce(state Groups, action Action) Groups {
	if action == nil {
		return state
	}
	return action.apply(state)
}
