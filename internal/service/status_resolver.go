// Package service contains the status resolver behind the status API.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/goodnatureofminers/txprogress-backend/internal/model"
	"go.uber.org/zap"
)

var (
	// ErrProviderUnavailable reports that the chain head could not be obtained.
	ErrProviderUnavailable = errors.New("provider unavailable")
	// ErrInvalidTarget reports a non-positive confirmation target.
	ErrInvalidTarget = errors.New("target confirmations must be positive")
)

// StatusResolver derives a TxStatusReport from provider responses. It holds no state between calls.
type StatusResolver struct {
	provider LedgerProvider
	metrics  ResolverMetrics
	logger   *zap.Logger
}

// NewStatusResolver builds a StatusResolver.
func NewStatusResolver(provider LedgerProvider, metrics ResolverMetrics, logger *zap.Logger) (*StatusResolver, error) {
	if provider == nil {
		return nil, errors.New("ledger provider is required")
	}
	if metrics == nil {
		return nil, errors.New("resolver metrics is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StatusResolver{
		provider: provider,
		metrics:  metrics,
		logger:   logger,
	}, nil
}

// NormalizeTxHash trims whitespace and lower-cases the hash.
func NormalizeTxHash(txHash string) string {
	return strings.ToLower(strings.TrimSpace(txHash))
}

// Resolve reports the confirmation progress of txHash against target. Only a failed chain head
// query is an error; a failed receipt query is reported as not_found.
func (r *StatusResolver) Resolve(ctx context.Context, txHash string, target uint64) (report *model.TxStatusReport, err error) {
	started := time.Now()
	defer func() {
		var status model.Status
		if report != nil {
			status = report.Status
		}
		r.metrics.ObserveResolve(status, err, started)
	}()

	if target == 0 {
		return nil, ErrInvalidTarget
	}
	hash := NormalizeTxHash(txHash)
	logger := r.logger.With(zap.String("tx_hash", hash), zap.Uint64("target", target))

	receipt, err := r.provider.Receipt(ctx, hash)
	if err != nil {
		logger.Warn("receipt lookup failed, reporting not found", zap.Error(err))
		r.metrics.ObserveReceiptFallback()
		receipt = model.NotFoundReceipt()
	}

	// The head is sampled after the receipt so it is never older than the mining block.
	latest, err := r.provider.ChainHead(ctx)
	if err != nil {
		logger.Error("chain head lookup failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrProviderUnavailable, err)
	}

	switch receipt.Outcome {
	case model.ReceiptNotFound:
		report, err = model.NewUnminedReport(model.StatusNotFound, target, latest)
	case model.ReceiptPending:
		report, err = model.NewUnminedReport(model.StatusPending, target, latest)
	case model.ReceiptMined:
		report, err = model.NewMinedReport(receipt.BlockNumber, latest, target)
	default:
		err = fmt.Errorf("unknown receipt outcome %d", receipt.Outcome)
	}
	if err != nil {
		return nil, err
	}

	logger.Debug("status resolved",
		zap.String("status", string(report.Status)),
		zap.Uint64("confirmations", report.Confirmations),
		zap.Uint64("latest", latest),
	)
	return report, nil
}
