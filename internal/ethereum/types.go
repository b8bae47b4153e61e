// Package ethereum implements the ledger-data provider on top of Ethereum JSON-RPC methods.
package ethereum

import (
	"context"
	"encoding/json"
	"time"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

const (
	methodGetTransactionReceipt = "eth_getTransactionReceipt"
	methodGetTransactionByHash  = "eth_getTransactionByHash"
	methodBlockNumber           = "eth_blockNumber"
)

type (
	// Caller executes a JSON-RPC method and returns the raw result payload.
	Caller interface {
		Call(ctx context.Context, method string, args ...any) (json.RawMessage, error)
	}
	// CallMetrics records metrics for provider calls.
	CallMetrics interface {
		Observe(operation string, err error, started time.Time)
	}
)
