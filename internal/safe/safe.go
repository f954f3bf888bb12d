// Package safe implements loading an existing Safe into the application: a
// three page wizard asking for its name and address, fetching its owners and
// threshold from the chain, and persisting the result once reviewed.
package safe

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"math"
	"strconv"
	"strings"

	"github.com/gabapcia/safedesk/internal/wizard"
)

var (
	// ErrMissingAddress is returned when the wizard values carry no Safe address.
	ErrMissingAddress = errors.New("safe address is missing")

	// ErrInvalidThreshold is returned when the threshold is zero or greater
	// than the number of owners.
	ErrInvalidThreshold = errors.New("invalid safe threshold")
)

// Form field names shared by the load wizard pages.
const (
	FieldName      = "name"
	FieldAddress   = "address"
	FieldThreshold = "threshold"
)

// OwnerAddressField returns the field holding the address of the i-th owner.
func OwnerAddressField(i int) string {
	return fmt.Sprintf("owner%dAddress", i)
}

// OwnerNameField returns the field holding the name of the i-th owner.
func OwnerNameField(i int) string {
	return fmt.Sprintf("owner%dName", i)
}

// DefaultOwnerName is the name proposed for the i-th owner.
func DefaultOwnerName(i int) string {
	return fmt.Sprintf("Owner #%d", i+1)
}

// Owner is a Safe owner and the name the user gave it.
type Owner struct {
	Name    string `json:"name" validate:"required"`
	Address string `json:"address" validate:"required,eth_addr"`
}

// Info is a loaded Safe.
type Info struct {
	Address   string  `json:"address" validate:"required,eth_addr"`
	Name      string  `json:"name" validate:"required"`
	Owners    []Owner `json:"owners" validate:"required,min=1,dive"`
	Threshold uint64  `json:"threshold" validate:"gte=1"`
}

// ContractReader reads the configuration of a Safe contract.
type ContractReader interface {
	// GetOwners returns the owner addresses of the Safe at address.
	GetOwners(ctx context.Context, address string) ([]string, error)

	// GetThreshold returns the number of confirmations the Safe requires.
	GetThreshold(ctx context.Context, address string) (uint64, error)
}

// SafeStorage persists loaded Safes.
type SafeStorage interface {
	// SaveSafe stores info, replacing any Safe with the same address.
	SaveSafe(ctx context.Context, info Info) error

	// ListSafes returns the stored Safes, most recently loaded first.
	ListSafes(ctx context.Context) ([]Info, error)
}

// CalculateSafeValues returns a copy of values holding the address of every
// owner, in the given order, and the threshold.
func CalculateSafeValues(owners []string, threshold uint64, values wizard.Values) wizard.Values {
	out := make(wizard.Values, len(values)+len(owners)+1)
	maps.Copy(out, values)

	for i, owner := range owners {
		out[OwnerAddressField(i)] = owner
	}
	out[FieldThreshold] = threshold

	return out
}

// stringValue returns the trimmed string stored under field, or "".
func stringValue(values wizard.Values, field string) string {
	switch v := values[field].(type) {
	case string:
		return strings.TrimSpace(v)
	case fmt.Stringer:
		return strings.TrimSpace(v.String())
	default:
		return ""
	}
}

// uintValue decodes the unsigned integer stored under field. Values typed in
// a terminal arrive as strings, values computed by the owner hook as uint64.
func uintValue(values wizard.Values, field string) (uint64, bool) {
	switch v := values[field].(type) {
	case uint64:
		return v, true
	case uint:
		return uint64(v), true
	case int:
		return uint64(v), v >= 0
	case int64:
		return uint64(v), v >= 0
	case float64:
		return uint64(v), v >= 0 && v == math.Trunc(v)
	case string:
		n, err := strconv.ParseUint(strings.TrimSpace(v), 10, 64)
		return n, err == nil
	default:
		return 0, false
	}
}

// ownerCount returns how many consecutive owner address fields values holds.
func ownerCount(values wizard.Values) int {
	n := 0
	for stringValue(values, OwnerAddressField(n)) != "" {
		n++
	}
	return n
}

// infoFromValues builds the Safe described by the wizard values. It does not
// validate the result.
func infoFromValues(values wizard.Values) Info {
	threshold, _ := uintValue(values, FieldThreshold)

	owners := make([]Owner, ownerCount(values))
	for i := range owners {
		owners[i] = Owner{
			Name:    stringValue(values, OwnerNameField(i)),
			Address: stringValue(values, OwnerAddressField(i)),
		}
	}

	return Info{
		Address:   stringValue(values, FieldAddress),
		Name:      stringValue(values, FieldName),
		Owners:    owners,
		Threshold: threshold,
	}
}
