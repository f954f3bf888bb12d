// Package ethereum provides an implementation of the safe.ContractReader
// interface for Ethereum-compatible nodes using a JSON-RPC client. Safe
// contract calls are ABI-encoded and sent through eth_call.
package ethereum

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"sync"

	"github.com/gabapcia/safedesk/internal/pkg/transport/jsonrpc"
	"github.com/gabapcia/safedesk/internal/safe"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

var (
	// ErrInvalidAddress is returned when the Safe address is not a 20 byte hex address.
	ErrInvalidAddress = errors.New("invalid ethereum address")

	// ErrNotASafe is returned when the call returns no data, which happens
	// when no contract is deployed at the address.
	ErrNotASafe = errors.New("address is not a safe contract")

	// ErrUnexpectedOutput is returned when the call output cannot be decoded.
	ErrUnexpectedOutput = errors.New("unexpected contract output")
)

// safeABIJSON holds the subset of the Safe contract ABI read by the client.
const safeABIJSON = `[
	{"type":"function","name":"getOwners","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"address[]"}]},
	{"type":"function","name":"getThreshold","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"uint256"}]},
	{"type":"function","name":"nonce","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"uint256"}]}
]`

var loadSafeABI = sync.OnceValues(func() (abi.ABI, error) {
	return abi.JSON(strings.NewReader(safeABIJSON))
})

// callRequest is the transaction object of an eth_call.
type callRequest struct {
	To   string `json:"to"`
	Data string `json:"data"`
}

// client implements the safe.ContractReader interface for Ethereum-based networks.
// It communicates with an Ethereum node via a JSON-RPC client.
type client struct {
	conn jsonrpc.Client
}

var _ safe.ContractReader = (*client)(nil)

// NewClient creates a new Safe contract reader using the provided JSON-RPC connection.
func NewClient(conn jsonrpc.Client) *client {
	return &client{
		conn: conn,
	}
}

// call runs the view method of the Safe at address against the latest block
// and returns its decoded outputs.
func (c *client) call(ctx context.Context, address, method string) ([]any, error) {
	if !common.IsHexAddress(address) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAddress, address)
	}

	safeABI, err := loadSafeABI()
	if err != nil {
		return nil, err
	}

	input, err := safeABI.Pack(method)
	if err != nil {
		return nil, err
	}

	req := callRequest{
		To:   common.HexToAddress(address).Hex(),
		Data: hexutil.Encode(input),
	}

	var output hexutil.Bytes
	if err := jsonrpc.Call(ctx, c.conn, &output, "eth_call", req, "latest"); err != nil {
		return nil, err
	}

	if len(output) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNotASafe, req.To)
	}

	values, err := safeABI.Unpack(method, output)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrUnexpectedOutput, method, err)
	}

	if len(values) != 1 {
		return nil, fmt.Errorf("%w: %s returned %d values", ErrUnexpectedOutput, method, len(values))
	}

	return values, nil
}

// uint256 decodes the single uint256 output of method.
func (c *client) uint256(ctx context.Context, address, method string) (uint64, error) {
	values, err := c.call(ctx, address, method)
	if err != nil {
		return 0, err
	}

	n, ok := values[0].(*big.Int)
	if !ok || !n.IsUint64() {
		return 0, fmt.Errorf("%w: %s is not a uint64", ErrUnexpectedOutput, method)
	}

	return n.Uint64(), nil
}

// GetOwners returns the checksummed owner addresses of the Safe at address.
func (c *client) GetOwners(ctx context.Context, address string) ([]string, error) {
	values, err := c.call(ctx, address, "getOwners")
	if err != nil {
		return nil, err
	}

	addresses, ok := values[0].([]common.Address)
	if !ok {
		return nil, fmt.Errorf("%w: getOwners is not an address list", ErrUnexpectedOutput)
	}

	owners := make([]string, len(addresses))
	for i, addr := range addresses {
		owners[i] = addr.Hex()
	}

	return owners, nil
}

// GetThreshold returns the number of confirmations required by the Safe at address.
func (c *client) GetThreshold(ctx context.Context, address string) (uint64, error) {
	return c.uint256(ctx, address, "getThreshold")
}

// GetNonce returns the nonce of the next transaction of the Safe at address.
func (c *client) GetNonce(ctx context.Context, address string) (uint64, error) {
	return c.uint256(ctx, address, "nonce")
}

// Retryable reports whether err may go away on a later attempt. Invalid
// addresses and addresses without a Safe never do.
func Retryable(err error) bool {
	return !errors.Is(err, ErrInvalidAddress) &&
		!errors.Is(err, ErrNotASafe) &&
		!errors.Is(err, ErrUnexpectedOutput)
}
