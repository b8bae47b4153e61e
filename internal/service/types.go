package service

import (
	"context"
	"time"

	"github.com/goodnatureofminers/txprogress-backend/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	LedgerProvider interface {
		Receipt(ctx context.Context, txHash string) (model.ReceiptLookup, error)
		ChainHead(ctx context.Context) (uint64, error)
	}
	ResolverMetrics interface {
		ObserveResolve(status model.Status, err error, started time.Time)
		ObserveReceiptFallback()
	}
)
