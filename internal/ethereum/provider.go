package ethereum

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/goodnatureofminers/txprogress-backend/internal/model"
)

var errEmptyResult = errors.New("empty result")

type receiptResult struct {
	TransactionHash string          `json:"transactionHash"`
	BlockNumber     *hexutil.Uint64 `json:"blockNumber"`
}

type transactionResult struct {
	Hash        string          `json:"hash"`
	BlockNumber *hexutil.Uint64 `json:"blockNumber"`
}

// Provider answers receipt and chain head queries through a Caller.
type Provider struct {
	caller        Caller
	lookupMempool bool
}

// NewProvider creates a Provider. With lookupMempool set, a missing receipt is followed by a
// transaction lookup so that known but unmined transactions are reported as pending.
func NewProvider(caller Caller, lookupMempool bool) *Provider {
	return &Provider{
		caller:        caller,
		lookupMempool: lookupMempool,
	}
}

// Receipt classifies the transaction by its receipt.
func (p *Provider) Receipt(ctx context.Context, txHash string) (model.ReceiptLookup, error) {
	raw, err := p.caller.Call(ctx, methodGetTransactionReceipt, txHash)
	if err != nil {
		return model.ReceiptLookup{}, fmt.Errorf("get receipt %s: %w", txHash, err)
	}
	if isNull(raw) {
		if p.lookupMempool {
			return p.transaction(ctx, txHash)
		}
		return model.NotFoundReceipt(), nil
	}

	var receipt receiptResult
	if err := json.Unmarshal(raw, &receipt); err != nil {
		return model.ReceiptLookup{}, fmt.Errorf("decode receipt %s: %w", txHash, err)
	}
	if receipt.BlockNumber == nil {
		return model.PendingReceipt(), nil
	}
	return model.MinedReceipt(uint64(*receipt.BlockNumber)), nil
}

// transaction reports a transaction without a receipt as pending when the node knows it.
func (p *Provider) transaction(ctx context.Context, txHash string) (model.ReceiptLookup, error) {
	raw, err := p.caller.Call(ctx, methodGetTransactionByHash, txHash)
	if err != nil {
		return model.ReceiptLookup{}, fmt.Errorf("get transaction %s: %w", txHash, err)
	}
	if isNull(raw) {
		return model.NotFoundReceipt(), nil
	}

	var tx transactionResult
	if err := json.Unmarshal(raw, &tx); err != nil {
		return model.ReceiptLookup{}, fmt.Errorf("decode transaction %s: %w", txHash, err)
	}
	return model.PendingReceipt(), nil
}

// ChainHead returns the current head height.
func (p *Provider) ChainHead(ctx context.Context) (uint64, error) {
	raw, err := p.caller.Call(ctx, methodBlockNumber)
	if err != nil {
		return 0, fmt.Errorf("get block number: %w", err)
	}
	if isNull(raw) {
		return 0, fmt.Errorf("get block number: %w", errEmptyResult)
	}

	var head hexutil.Uint64
	if err := json.Unmarshal(raw, &head); err != nil {
		return 0, fmt.Errorf("decode block number %s: %w", raw, err)
	}
	return uint64(head), nil
}

func isNull(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}
