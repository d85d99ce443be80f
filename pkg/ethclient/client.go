// Package ethclient provides the node RPC calls needed to submit transactions
// from a node-managed account.
package ethclient

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/linki/go-wanchain/internal/constant"
)

// Client defines typed wrappers for the node's personal and eth RPC APIs.
type Client struct {
	c *rpc.Client
}

// DialContext connects a client to the given URL, identifying itself with
// the tool's User-Agent on HTTP and websocket endpoints.
func DialContext(ctx context.Context, rawurl string) (*Client, error) {
	c, err := rpc.DialOptions(ctx, rawurl, rpc.WithHeader("User-Agent", constant.Agent))
	if err != nil {
		return nil, err
	}
	return NewClient(c), nil
}

// NewClient creates a client that uses the given RPC client.
func NewClient(c *rpc.Client) *Client {
	return &Client{c}
}

func (ec *Client) Close() {
	ec.c.Close()
}

// TransactionArgs are the fields of an eth_sendTransaction request. The node
// fills in the nonce and signs with the unlocked account.
type TransactionArgs struct {
	From     common.Address  `json:"from"`
	To       *common.Address `json:"to,omitempty"`
	Gas      *hexutil.Uint64 `json:"gas,omitempty"`
	GasPrice *hexutil.Big    `json:"gasPrice,omitempty"`
	Value    *hexutil.Big    `json:"value,omitempty"`
	Data     hexutil.Bytes   `json:"data,omitempty"`
}

// NewTransactionArgs builds arguments for a call from one account to another.
// A zero gas or nil gasPrice is left for the node to decide.
func NewTransactionArgs(from, to common.Address, value *big.Int, gas uint64, gasPrice *big.Int, data []byte) TransactionArgs {
	args := TransactionArgs{
		From: from,
		To:   &to,
		Data: data,
	}
	if value != nil {
		args.Value = (*hexutil.Big)(value)
	}
	if gas != 0 {
		g := hexutil.Uint64(gas)
		args.Gas = &g
	}
	if gasPrice != nil {
		args.GasPrice = (*hexutil.Big)(gasPrice)
	}
	return args
}

// UnlockAccount unlocks the node-managed account for the given number of
// seconds. A zero duration leaves the node default in place.
func (ec *Client) UnlockAccount(ctx context.Context, account common.Address, password string, seconds uint64) (bool, error) {
	var (
		ok       bool
		duration *uint64
	)
	if seconds != 0 {
		duration = &seconds
	}
	err := ec.c.CallContext(ctx, &ok, "personal_unlockAccount", account, password, duration)
	return ok, err
}

// SendTransaction asks the node to sign and submit the transaction, returning its hash.
func (ec *Client) SendTransaction(ctx context.Context, args TransactionArgs) (common.Hash, error) {
	var hash common.Hash
	if err := ec.c.CallContext(ctx, &hash, "eth_sendTransaction", args); err != nil {
		return common.Hash{}, err
	}
	if hash == (common.Hash{}) {
		return common.Hash{}, fmt.Errorf("node returned empty transaction hash")
	}
	return hash, nil
}
